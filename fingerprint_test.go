package pqcontainer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFingerprintLengthValidation(t *testing.T) {
	for _, n := range []int{31, 33, 0} {
		if _, err := NewFingerprint(make([]byte, n)); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("NewFingerprint(%d bytes) error = %v, want invalidFormat", n, err)
		}
	}
	if _, err := NewFingerprint(make([]byte, FingerprintSize)); err != nil {
		t.Fatalf("NewFingerprint(32 bytes) = %v, want success", err)
	}
}

// TestFingerprintStability is spec.md §8 universal invariant 1.
func TestFingerprintStability(t *testing.T) {
	pk, _, err := GenerateKEMKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	a := FingerprintFromPublicKey(pk)
	b := FingerprintFromPublicKey(pk)
	if !a.Equal(b) {
		t.Fatal("FingerprintFromPublicKey is not stable across repeated calls")
	}

	roundTripped, err := NewKEMPublicKeyFromBase64(pk.Base64())
	if err != nil {
		t.Fatal(err)
	}
	c := FingerprintFromPublicKey(roundTripped)
	if !a.Equal(c) {
		t.Fatal("FingerprintFromPublicKey is not stable across a base64 export/import round trip")
	}
}

func TestFingerprintGroupedHex(t *testing.T) {
	zero, err := NewFingerprint(make([]byte, FingerprintSize))
	if err != nil {
		t.Fatal(err)
	}
	hexStr := zero.GroupedHex()
	if len(hexStr) != 71 {
		t.Fatalf("len(GroupedHex()) = %d, want 71", len(hexStr))
	}
	if strings.Count(hexStr, " ") != 7 {
		t.Fatalf("GroupedHex() has %d spaces, want 7", strings.Count(hexStr, " "))
	}
	want := strings.Repeat("00000000 ", 7) + "00000000"
	if hexStr != want {
		t.Fatalf("GroupedHex() = %q, want %q", hexStr, want)
	}
	if strings.HasSuffix(hexStr, " ") {
		t.Fatal("GroupedHex() has a trailing space")
	}

	ff, err := NewFingerprint(bytes.Repeat([]byte{0xFF}, FingerprintSize))
	if err != nil {
		t.Fatal(err)
	}
	wantFF := strings.Repeat("ffffffff ", 7) + "ffffffff"
	if got := ff.GroupedHex(); got != wantFF {
		t.Fatalf("GroupedHex() = %q, want %q", got, wantFF)
	}
}
