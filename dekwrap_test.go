package pqcontainer

import (
	"bytes"
	"errors"
	"testing"
)

func mustSymmetricKey(t *testing.T, b byte) SymmetricKey {
	t.Helper()
	k, err := NewSymmetricKey(bytes.Repeat([]byte{b}, SymmetricKeySize))
	if err != nil {
		t.Fatal(err)
	}
	return k
}

func mustContainerID(t *testing.T) ContainerID {
	t.Helper()
	raw := make([]byte, ContainerIDSize)
	for i := range raw {
		raw[i] = byte(i)
	}
	id, err := NewContainerID(raw)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func mustFingerprint(t *testing.T, b byte) Fingerprint {
	t.Helper()
	fp, err := NewFingerprint(bytes.Repeat([]byte{b}, FingerprintSize))
	if err != nil {
		t.Fatal(err)
	}
	return fp
}

// TestDEKWrapRoundTrip is spec.md §8 scenario E3 (round-trip half).
func TestDEKWrapRoundTrip(t *testing.T) {
	dek, err := NewSymmetricKey(bytes.Repeat([]byte{0x07}, SymmetricKeySize))
	if err != nil {
		t.Fatal(err)
	}
	ss := mustSymmetricKey(t, 0x42)
	cid := mustContainerID(t)
	rid := mustFingerprint(t, 0xAA)

	wrapped, err := WrapDEK(dek, cid, rid, ss)
	if err != nil {
		t.Fatalf("WrapDEK: %v", err)
	}
	if len(wrapped) != SymmetricKeySize+AuthTagSize {
		t.Fatalf("len(wrapped) = %d, want %d", len(wrapped), SymmetricKeySize+AuthTagSize)
	}

	got, err := UnwrapDEK(wrapped, cid, rid, ss)
	if err != nil {
		t.Fatalf("UnwrapDEK: %v", err)
	}
	if !bytes.Equal(got.Bytes(), dek.Bytes()) {
		t.Fatalf("UnwrapDEK = %x, want %x", got.Bytes(), dek.Bytes())
	}
}

// TestDEKWrapBinding is spec.md §8 scenario E3 (tamper half) and universal
// invariant 5.
func TestDEKWrapBinding(t *testing.T) {
	dek, err := NewSymmetricKey(bytes.Repeat([]byte{0x07}, SymmetricKeySize))
	if err != nil {
		t.Fatal(err)
	}
	ss := mustSymmetricKey(t, 0x42)
	cid := mustContainerID(t)
	rid := mustFingerprint(t, 0xAA)

	wrapped, err := WrapDEK(dek, cid, rid, ss)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("wrong shared secret", func(t *testing.T) {
		other := mustSymmetricKey(t, 0x22)
		if _, err := UnwrapDEK(wrapped, cid, rid, other); !errors.Is(err, ErrAEADFailed) {
			t.Fatalf("error = %v, want aeadFailed", err)
		}
	})

	t.Run("flipped wrapped byte", func(t *testing.T) {
		tampered := append([]byte(nil), wrapped...)
		tampered[0] ^= 0x01
		if _, err := UnwrapDEK(tampered, cid, rid, ss); !errors.Is(err, ErrAEADFailed) {
			t.Fatalf("error = %v, want aeadFailed", err)
		}
	})

	t.Run("wrong container id", func(t *testing.T) {
		raw := cid.Bytes()
		raw[0] ^= 0x01
		otherCID, err := NewContainerID(raw)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := UnwrapDEK(wrapped, otherCID, rid, ss); !errors.Is(err, ErrAEADFailed) {
			t.Fatalf("error = %v, want aeadFailed", err)
		}
	})

	t.Run("wrong recipient key id", func(t *testing.T) {
		otherRID := mustFingerprint(t, 0xBB)
		if _, err := UnwrapDEK(wrapped, cid, otherRID, ss); !errors.Is(err, ErrAEADFailed) {
			t.Fatalf("error = %v, want aeadFailed", err)
		}
	})
}

func TestUnwrapDEKShortInput(t *testing.T) {
	ss := mustSymmetricKey(t, 0x42)
	cid := mustContainerID(t)
	rid := mustFingerprint(t, 0xAA)

	for _, n := range []int{0, 1, AuthTagSize} {
		_, err := UnwrapDEK(make([]byte, n), cid, rid, ss)
		if !errors.Is(err, ErrInvalidWrappedDEKRepresentation) {
			t.Fatalf("len=%d: error = %v, want invalidWrappedDEKRepresentation", n, err)
		}
	}
}
