package pqcontainer

import (
	"crypto/mlkem"
	"encoding/base64"
)

// KEMPublicKeySize, KEMPrivateKeySize and KEMCiphertextSize are the ML-KEM-768
// byte lengths fixed by the registered suite (spec.md §3, §4.D).
const (
	KEMPublicKeySize  = mlkem.EncapsulationKeySize768
	KEMPrivateKeySize = mlkem.SeedSize
	KEMCiphertextSize = mlkem.CiphertextSize768
)

// KEMPublicKey is a validated ML-KEM-768 encapsulation key. Grounded on
// MLKEMRecipient.theirPublicKey in the teacher's mlkem.go, generalized from
// an age Recipient into a standalone value type since this spec's KEM
// facade is a component in its own right, not behind an age-style
// Recipient interface.
type KEMPublicKey struct {
	raw []byte
}

// NewKEMPublicKey validates raw as an ML-KEM-768 encapsulation key.
func NewKEMPublicKey(raw []byte) (KEMPublicKey, error) {
	if len(raw) != KEMPublicKeySize {
		return KEMPublicKey{}, newErr(KindInvalidKeyRepresentation, "public key must be 1184 bytes")
	}
	if _, err := mlkem.NewEncapsulationKey768(raw); err != nil {
		return KEMPublicKey{}, newErr(KindInvalidKeyRepresentation, "")
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return KEMPublicKey{raw: cp}, nil
}

// NewKEMPublicKeyFromBase64 decodes s as standard base64 and validates the
// result as an ML-KEM-768 encapsulation key.
func NewKEMPublicKeyFromBase64(s string) (KEMPublicKey, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return KEMPublicKey{}, newErr(KindInvalidBase64, "")
	}
	return NewKEMPublicKey(raw)
}

// Bytes returns the raw encapsulation key bytes.
func (k KEMPublicKey) Bytes() []byte {
	cp := make([]byte, len(k.raw))
	copy(cp, k.raw)
	return cp
}

// Base64 returns the standard base64 encoding of the raw key bytes.
func (k KEMPublicKey) Base64() string {
	return base64.StdEncoding.EncodeToString(k.raw)
}

// KEMPrivateKey is an ML-KEM-768 decapsulation key seed, grounded on
// MLKEMIdentity.privateKey in the teacher's mlkem.go.
type KEMPrivateKey struct {
	seed      []byte
	publicKey KEMPublicKey
}

// NewKEMPrivateKey validates seed as an ML-KEM-768 private-key seed and
// derives the corresponding public key.
func NewKEMPrivateKey(seed []byte) (KEMPrivateKey, error) {
	if len(seed) != KEMPrivateKeySize {
		return KEMPrivateKey{}, newErr(KindInvalidKeyRepresentation, "private key must be 64 bytes")
	}
	decapKey, err := mlkem.NewDecapsulationKey768(seed)
	if err != nil {
		return KEMPrivateKey{}, newErr(KindInvalidKeyRepresentation, "")
	}
	pub, err := NewKEMPublicKey(decapKey.EncapsulationKey().Bytes())
	if err != nil {
		return KEMPrivateKey{}, newErr(KindInvalidKeyRepresentation, "")
	}
	cp := make([]byte, len(seed))
	copy(cp, seed)
	return KEMPrivateKey{seed: cp, publicKey: pub}, nil
}

// PublicKey returns the KEMPublicKey corresponding to k.
func (k KEMPrivateKey) PublicKey() KEMPublicKey {
	return k.publicKey
}

// GenerateKEMKeyPair produces a fresh ML-KEM-768 key pair from the runtime's
// secure random source (crypto/mlkem.GenerateKey768, as in the teacher's
// GenerateMLKEMIdentity).
func GenerateKEMKeyPair() (KEMPublicKey, KEMPrivateKey, error) {
	decapKey, err := mlkem.GenerateKey768()
	if err != nil {
		return KEMPublicKey{}, KEMPrivateKey{}, newErr(KindKeyGenerationFailed, "")
	}
	priv, err := NewKEMPrivateKey(decapKey.Bytes())
	if err != nil {
		return KEMPublicKey{}, KEMPrivateKey{}, newErr(KindKeyGenerationFailed, "")
	}
	return priv.PublicKey(), priv, nil
}

// KEMCiphertext is a validated, fixed-length ML-KEM-768 encapsulation
// ciphertext (spec.md §4.D).
type KEMCiphertext struct {
	raw []byte
}

// NewKEMCiphertext validates raw as an ML-KEM-768 ciphertext.
func NewKEMCiphertext(raw []byte) (KEMCiphertext, error) {
	if len(raw) != KEMCiphertextSize {
		return KEMCiphertext{}, newErr(KindInvalidCiphertextRepresentation, "ciphertext must be 1088 bytes")
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return KEMCiphertext{raw: cp}, nil
}

// Bytes returns the raw ciphertext bytes.
func (c KEMCiphertext) Bytes() []byte {
	cp := make([]byte, len(c.raw))
	copy(cp, c.raw)
	return cp
}

// Encapsulate generates a fresh shared secret for to and returns it together
// with the KEM ciphertext that lets the holder of the matching private key
// recover it. Grounded on MLKEMRecipient.Wrap in the teacher's mlkem.go.
func Encapsulate(to KEMPublicKey) (SymmetricKey, KEMCiphertext, error) {
	encapKey, err := mlkem.NewEncapsulationKey768(to.raw)
	if err != nil {
		return SymmetricKey{}, KEMCiphertext{}, newErr(KindKEMEncapsulationFailed, "")
	}
	sharedSecret, ciphertext := encapKey.Encapsulate()
	defer zeroBytes(sharedSecret)
	ss, err := NewSymmetricKey(sharedSecret)
	if err != nil {
		return SymmetricKey{}, KEMCiphertext{}, newErr(KindKEMEncapsulationFailed, "")
	}
	ct, err := NewKEMCiphertext(ciphertext)
	if err != nil {
		return SymmetricKey{}, KEMCiphertext{}, newErr(KindKEMEncapsulationFailed, "")
	}
	return ss, ct, nil
}

// Decapsulate recovers the shared secret encapsulated in ct for priv.
//
// ML-KEM decapsulation never "rejects" on a malformed or foreign
// ciphertext in the cryptographic sense: it deterministically returns some
// shared secret for any well-formed ciphertext, and correctness is instead
// established by the DEK-wrap AEAD check downstream (spec.md §4.D). This
// function only maps genuine provider failures (a malformed private key,
// for instance) to kemDecapsulationFailed; it must not attempt to
// second-guess the returned shared secret.
func Decapsulate(priv KEMPrivateKey, ct KEMCiphertext) (SymmetricKey, error) {
	decapKey, err := mlkem.NewDecapsulationKey768(priv.seed)
	if err != nil {
		return SymmetricKey{}, newErr(KindKEMDecapsulationFailed, "")
	}
	sharedSecret, err := decapKey.Decapsulate(ct.raw)
	if err != nil {
		return SymmetricKey{}, newErr(KindKEMDecapsulationFailed, "")
	}
	defer zeroBytes(sharedSecret)
	ss, err := NewSymmetricKey(sharedSecret)
	if err != nil {
		return SymmetricKey{}, newErr(KindKEMDecapsulationFailed, "")
	}
	return ss, nil
}
