package pqcontainer

import (
	"crypto/aes"
	"crypto/cipher"
)

// NonceSize is the required AES-256-GCM nonce length for this package.
const NonceSize = 12

// TagSize is the required AES-256-GCM authentication tag length.
const TagSize = 16

// sealAEAD encrypts plaintext under key with nonce and aad, returning the
// ciphertext and authentication tag separately (spec.md §4.B: "not
// concatenated, to match the v1 wire layout").
//
// There is no third-party AEAD library in the retrieval pack that covers
// AES-GCM (the teacher and its age-plugin siblings all build on
// golang.org/x/crypto/chacha20poly1305 instead) — crypto/aes + crypto/cipher
// is the ecosystem's own standard construction for AES-GCM and nothing in
// the pack supersedes it, so this component is one of the few built
// directly on the standard library.
func sealAEAD(plaintext []byte, key SymmetricKey, nonce, aad []byte) (ciphertext, tag []byte, err error) {
	if len(nonce) != NonceSize {
		return nil, nil, newErr(KindInvalidNonceLength, "nonce must be 12 bytes")
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, newErr(KindAEADFailed, "")
	}
	sealed := aead.Seal(nil, nonce, plaintext, aad)
	ctLen := len(sealed) - TagSize
	ciphertext = make([]byte, ctLen)
	copy(ciphertext, sealed[:ctLen])
	tag = make([]byte, TagSize)
	copy(tag, sealed[ctLen:])
	return ciphertext, tag, nil
}

// openAEAD authenticates and decrypts ciphertext‖tag under key and nonce. Any
// failure beyond the two length preconditions — wrong key, tampered
// ciphertext, tampered tag, wrong AAD, wrong nonce bytes — collapses to the
// single aeadFailed kind, per spec.md §4.B and §7: callers must not be able
// to distinguish among those causes.
func openAEAD(ciphertext, tag []byte, key SymmetricKey, nonce, aad []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, newErr(KindInvalidNonceLength, "nonce must be 12 bytes")
	}
	if len(tag) != TagSize {
		return nil, newErr(KindInvalidTagLength, "tag must be 16 bytes")
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, newErr(KindAEADFailed, "")
	}
	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)
	plaintext, err := aead.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, newErr(KindAEADFailed, "")
	}
	return plaintext, nil
}

func newGCM(key SymmetricKey) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithTagSize(block, TagSize)
}
