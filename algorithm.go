package pqcontainer

// AlgorithmID identifies the cryptographic suite a container was produced
// with. It is carried verbatim by the decoder and is not itself enforced
// against an allowlist — see the Open Question resolution in SPEC_FULL.md
// §9 and spec.md §9 ("Algorithm agility").
type AlgorithmID uint16

// RegisteredSuiteMLKEM768HKDFSHA256AESGCM is the single suite this package
// implements: ML-KEM-768 + HKDF-SHA-256 + AES-256-GCM (spec.md §3). An
// orchestration layer built on top of this package is expected to compare
// a decoded container's AlgorithmID against this constant before
// attempting KEM+KDF+AEAD operations on it; this package does not perform
// that check itself.
const RegisteredSuiteMLKEM768HKDFSHA256AESGCM AlgorithmID = 0x0001
