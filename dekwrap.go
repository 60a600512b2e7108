package pqcontainer

// wrapKeyInfo and wrapNonceInfo are the exact ASCII HKDF info strings that
// bind a derived wrap key and wrap nonce to their purpose. These bytes are
// part of the wire contract (spec.md §4.F, §6): changing them changes the
// derived keys and breaks interoperability with any other implementation
// of this suite.
var (
	wrapKeyInfo   = []byte("DEK_WRAP_KEY")
	wrapNonceInfo = []byte("DEK_WRAP_NONCE")
)

// wrapContext builds the 48-byte HKDF salt / AEAD AAD shared by WrapDEK and
// UnwrapDEK: containerID ‖ recipientKeyID, in that order (spec.md §4.F).
func wrapContext(containerID ContainerID, recipientKeyID Fingerprint) []byte {
	ctx := make([]byte, 0, ContainerIDSize+FingerprintSize)
	ctx = append(ctx, containerID.Bytes()...)
	ctx = append(ctx, recipientKeyID.Bytes()...)
	return ctx
}

// WrapDEK derives a per-recipient wrap key and nonce from sharedSecret and
// context, then seals dek under them, returning ciphertext‖tag as a single
// 48-byte value for a 32-byte DEK under this suite (spec.md §4.F).
func WrapDEK(dek SymmetricKey, containerID ContainerID, recipientKeyID Fingerprint, sharedSecret SymmetricKey) ([]byte, error) {
	ctx := wrapContext(containerID, recipientKeyID)

	wrapKey, err := deriveKey(sharedSecret.Bytes(), ctx, wrapKeyInfo)
	if err != nil {
		return nil, err
	}
	defer wrapKey.Zero()

	nonce, err := deriveBytes(sharedSecret.Bytes(), ctx, wrapNonceInfo, NonceSize)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(nonce)

	plaintext := dek.Bytes()
	defer zeroBytes(plaintext)

	ciphertext, tag, err := sealAEAD(plaintext, wrapKey, nonce, ctx)
	if err != nil {
		return nil, err
	}

	wrapped := make([]byte, 0, len(ciphertext)+len(tag))
	wrapped = append(wrapped, ciphertext...)
	wrapped = append(wrapped, tag...)
	return wrapped, nil
}

// UnwrapDEK reverses WrapDEK: it re-derives the same wrap key and nonce
// from context and sharedSecret, authenticates and opens wrappedDEK, and
// returns the recovered DEK. Any authentication failure — wrong
// sharedSecret, tampered wrappedDEK bytes, wrong containerID or
// recipientKeyID — surfaces as aeadFailed without distinguishing the
// cause (spec.md §4.F, §7).
func UnwrapDEK(wrappedDEK []byte, containerID ContainerID, recipientKeyID Fingerprint, sharedSecret SymmetricKey) (SymmetricKey, error) {
	if len(wrappedDEK) <= AuthTagSize {
		return SymmetricKey{}, newErr(KindInvalidWrappedDEKRepresentation, "")
	}
	split := len(wrappedDEK) - AuthTagSize
	ciphertext := wrappedDEK[:split]
	tag := wrappedDEK[split:]

	ctx := wrapContext(containerID, recipientKeyID)

	wrapKey, err := deriveKey(sharedSecret.Bytes(), ctx, wrapKeyInfo)
	if err != nil {
		return SymmetricKey{}, err
	}
	defer wrapKey.Zero()

	nonce, err := deriveBytes(sharedSecret.Bytes(), ctx, wrapNonceInfo, NonceSize)
	if err != nil {
		return SymmetricKey{}, err
	}
	defer zeroBytes(nonce)

	plaintext, err := openAEAD(ciphertext, tag, wrapKey, nonce, ctx)
	if err != nil {
		return SymmetricKey{}, err
	}
	defer zeroBytes(plaintext)

	if len(plaintext) != SymmetricKeySize {
		return SymmetricKey{}, newErr(KindInvalidWrappedDEKRepresentation, "")
	}
	return NewSymmetricKey(plaintext)
}
