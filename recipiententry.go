package pqcontainer

// RecipientEntry is a single recipient's wrapped-DEK record (spec.md §3):
// the recipient's Fingerprint, the KEM ciphertext encapsulated to that
// recipient, and the resulting wrapped DEK. Per-entry size bounds
// (1..2048 bytes for the KEM ciphertext, 1..128 for the wrapped DEK) are
// enforced by the encoder and decoder at their own boundaries (spec.md
// §4.H, §4.I), not by this constructor — RecipientEntry itself only
// enforces that the identity field is a well-formed Fingerprint.
type RecipientEntry struct {
	RecipientKeyID Fingerprint
	KEMCiphertext  []byte
	WrappedDEK     []byte
}

// NewRecipientEntry assembles a RecipientEntry. It copies the given byte
// slices so the entry owns its storage independently of the caller.
func NewRecipientEntry(recipientKeyID Fingerprint, kemCiphertext, wrappedDEK []byte) RecipientEntry {
	ct := make([]byte, len(kemCiphertext))
	copy(ct, kemCiphertext)
	wd := make([]byte, len(wrappedDEK))
	copy(wd, wrappedDEK)
	return RecipientEntry{
		RecipientKeyID: recipientKeyID,
		KEMCiphertext:  ct,
		WrappedDEK:     wd,
	}
}

// Equal reports whether r and other carry the same fingerprint and bytes.
func (r RecipientEntry) Equal(other RecipientEntry) bool {
	if !r.RecipientKeyID.Equal(other.RecipientKeyID) {
		return false
	}
	return bytesEqual(r.KEMCiphertext, other.KEMCiphertext) && bytesEqual(r.WrappedDEK, other.WrappedDEK)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
