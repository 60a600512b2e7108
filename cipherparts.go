package pqcontainer

// IVSize and AuthTagSize are the fixed AES-256-GCM IV and tag lengths used
// for the payload's cipher parts (spec.md §3). These coincide with
// NonceSize and TagSize; they are named separately here because they
// describe the payload AEAD call site, not the generic AEAD wrapper.
const (
	IVSize      = NonceSize
	AuthTagSize = TagSize
)

// MaxPayloadCiphertextSize is the largest payload ciphertext this package
// will encode or decode: 512 MiB (spec.md §3, §6).
const MaxPayloadCiphertextSize = 512 * 1024 * 1024

// CipherParts is the sealed payload: a 12-byte IV, the AES-256-GCM
// ciphertext, and a 16-byte authentication tag, kept separate to match the
// v1 wire layout (spec.md §3, §4.B).
type CipherParts struct {
	IV         [IVSize]byte
	Ciphertext []byte
	AuthTag    [AuthTagSize]byte
}

// NewCipherParts validates iv and authTag lengths and assembles a
// CipherParts. It copies ciphertext so the value owns its storage.
func NewCipherParts(iv []byte, ciphertext []byte, authTag []byte) (CipherParts, error) {
	if len(iv) != IVSize {
		return CipherParts{}, newErr(KindInvalidFormat, "iv must be 12 bytes")
	}
	if len(authTag) != AuthTagSize {
		return CipherParts{}, newErr(KindInvalidFormat, "auth tag must be 16 bytes")
	}
	var cp CipherParts
	copy(cp.IV[:], iv)
	cp.Ciphertext = make([]byte, len(ciphertext))
	copy(cp.Ciphertext, ciphertext)
	copy(cp.AuthTag[:], authTag)
	return cp, nil
}

// Equal reports whether c and other carry the same IV, ciphertext and tag.
func (c CipherParts) Equal(other CipherParts) bool {
	if c.IV != other.IV || c.AuthTag != other.AuthTag {
		return false
	}
	return bytesEqual(c.Ciphertext, other.Ciphertext)
}
