package pqcontainer

// SymmetricKeySize is the length in bytes of every symmetric key handled by
// this package: the DEK, and the AES-256-GCM wrap key derived from a KEM
// shared secret.
const SymmetricKeySize = 32

// SymmetricKey is a named wrapper around raw key bytes. It exists so that
// the AEAD and KDF component signatures carry the key length in the type
// system instead of passing bare []byte, the way filippo.io/age instead
// leans on local constants like fileKeySize. The DEK, the wrap key and the
// KEM shared secret all use this one type, so the wrapper separates key
// material from arbitrary byte slices but does not keep those three from
// being interchanged with each other.
type SymmetricKey struct {
	b [SymmetricKeySize]byte
}

// NewSymmetricKey copies raw into a SymmetricKey. raw must be exactly
// SymmetricKeySize bytes.
func NewSymmetricKey(raw []byte) (SymmetricKey, error) {
	var k SymmetricKey
	if len(raw) != SymmetricKeySize {
		return k, newErr(KindInvalidFormat, "symmetric key must be 32 bytes")
	}
	copy(k.b[:], raw)
	return k, nil
}

// Bytes returns the key's raw bytes. The returned slice aliases the key's
// internal storage; callers must not retain it past a call to Zero.
func (k *SymmetricKey) Bytes() []byte {
	return k.b[:]
}

// Zero overwrites the key's backing bytes. Per spec.md §3/§5/§9 this is a
// best-effort defense-in-depth measure, not a guarantee against
// compiler-driven elision.
func (k *SymmetricKey) Zero() {
	for i := range k.b {
		k.b[i] = 0
	}
}
