package pqcontainer

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// MaxKDFOutputLength is the largest number of bytes deriveBytes/deriveKey
// will produce in a single call (spec.md §4.C).
const MaxKDFOutputLength = 1024

// deriveBytes runs HKDF-SHA-256 extract-then-expand over ikm, bound to salt
// and info, and returns length raw bytes. Grounded on the hkdf.New call in
// the teacher's mlkem.go and internal/age/primitives.go, which both use
// golang.org/x/crypto/hkdf with SHA-256 the same way.
func deriveBytes(ikm, salt, info []byte, length int) ([]byte, error) {
	if length < 1 || length > MaxKDFOutputLength {
		return nil, newErr(KindInvalidKDFOutputLength, "")
	}
	h := hkdf.New(sha256.New, ikm, salt, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(h, out); err != nil {
		return nil, newErr(KindInvalidKDFOutputLength, "")
	}
	return out, nil
}

// deriveKey is deriveBytes specialized to produce a SymmetricKey (length
// fixed at SymmetricKeySize).
func deriveKey(ikm, salt, info []byte) (SymmetricKey, error) {
	b, err := deriveBytes(ikm, salt, info, SymmetricKeySize)
	if err != nil {
		return SymmetricKey{}, err
	}
	defer zeroBytes(b)
	return NewSymmetricKey(b)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
