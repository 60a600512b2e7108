package pqcontainer

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func randomKey(t *testing.T) SymmetricKey {
	t.Helper()
	var raw [SymmetricKeySize]byte
	if _, err := rand.Read(raw[:]); err != nil {
		t.Fatal(err)
	}
	k, err := NewSymmetricKey(raw[:])
	if err != nil {
		t.Fatal(err)
	}
	return k
}

// TestAEADKnownRoundTrip is spec.md §8 scenario E1.
func TestAEADKnownRoundTrip(t *testing.T) {
	key := randomKey(t)
	nonce := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B}
	plaintext := []byte("hello pq")

	ciphertext, tag, err := sealAEAD(plaintext, key, nonce, nil)
	if err != nil {
		t.Fatalf("sealAEAD: %v", err)
	}
	got, err := openAEAD(ciphertext, tag, key, nonce, nil)
	if err != nil {
		t.Fatalf("openAEAD: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round-trip = %q, want %q", got, plaintext)
	}
}

// TestAEADTamper is spec.md §8 scenario E2.
func TestAEADTamper(t *testing.T) {
	key := randomKey(t)
	nonce := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B}
	plaintext := []byte("hello pq")

	ciphertext, tag, err := sealAEAD(plaintext, key, nonce, nil)
	if err != nil {
		t.Fatalf("sealAEAD: %v", err)
	}

	t.Run("flipped ciphertext byte", func(t *testing.T) {
		tampered := append([]byte(nil), ciphertext...)
		tampered[0] ^= 0x01
		if _, err := openAEAD(tampered, tag, key, nonce, nil); !errors.Is(err, ErrAEADFailed) {
			t.Fatalf("error = %v, want aeadFailed", err)
		}
	})

	t.Run("flipped tag byte", func(t *testing.T) {
		tampered := append([]byte(nil), tag...)
		tampered[0] ^= 0x01
		if _, err := openAEAD(ciphertext, tampered, key, nonce, nil); !errors.Is(err, ErrAEADFailed) {
			t.Fatalf("error = %v, want aeadFailed", err)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		other := randomKey(t)
		if _, err := openAEAD(ciphertext, tag, other, nonce, nil); !errors.Is(err, ErrAEADFailed) {
			t.Fatalf("error = %v, want aeadFailed", err)
		}
	})

	t.Run("wrong aad", func(t *testing.T) {
		ct, tg, err := sealAEAD(plaintext, key, nonce, []byte("context-a"))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := openAEAD(ct, tg, key, nonce, []byte("context-b")); !errors.Is(err, ErrAEADFailed) {
			t.Fatalf("error = %v, want aeadFailed", err)
		}
	})
}

// TestAEADNonceAndTagLengthValidation is spec.md §8 universal invariant 7.
func TestAEADNonceAndTagLengthValidation(t *testing.T) {
	key := randomKey(t)

	for _, n := range []int{0, 11, 13, 16} {
		_, _, err := sealAEAD([]byte("x"), key, make([]byte, n), nil)
		if !errors.Is(err, ErrInvalidNonceLength) {
			t.Fatalf("seal with %d-byte nonce: error = %v, want invalidNonceLength", n, err)
		}
	}

	validNonce := make([]byte, NonceSize)
	for _, tagLen := range []int{0, 15, 17, 32} {
		_, err := openAEAD([]byte("x"), make([]byte, tagLen), key, validNonce, nil)
		if !errors.Is(err, ErrInvalidTagLength) {
			t.Fatalf("open with %d-byte tag: error = %v, want invalidTagLength", tagLen, err)
		}
	}

	for _, n := range []int{0, 11, 13} {
		_, err := openAEAD([]byte("x"), make([]byte, TagSize), key, make([]byte, n), nil)
		if !errors.Is(err, ErrInvalidNonceLength) {
			t.Fatalf("open with %d-byte nonce: error = %v, want invalidNonceLength", n, err)
		}
	}
}
