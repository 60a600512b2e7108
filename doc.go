// Package pqcontainer implements the cryptographic core and container v1
// codec for multi-recipient, post-quantum encrypted file containers: a
// payload is sealed once under a per-container data encryption key, and
// that key is independently wrapped for each recipient using a key
// derived from an ML-KEM-768 encapsulation.
//
// This package defines the components the format is built from — the KEM
// facade, the HKDF derivation, the AEAD wrapper, the DEK wrap protocol,
// and the binary encoder/decoder — and the container v1 wire format
// itself. It does not define a "build a container from plaintext and
// recipient public keys" orchestration; that is composed from these
// components by the caller.
package pqcontainer
