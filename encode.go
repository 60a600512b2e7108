package pqcontainer

import "github.com/tniur/PQContainerKit/internal/wire"

// Encode serializes a fully-validated Container to its v1 wire bytes
// (spec.md §4.H, §6). Every structural and size check runs before any byte
// is written; Encode returns either a complete, valid byte slice or an
// error with no partial output visible (spec.md §7).
func Encode(c Container) ([]byte, error) {
	if int(c.Header.RecipientsCount) != len(c.Recipients) {
		return nil, newErr(KindInvalidFormat, "header recipient count does not match recipient list")
	}
	if len(c.Recipients) < MinRecipients || len(c.Recipients) > MaxRecipients {
		return nil, newErr(KindLimitsExceeded, "recipient count out of range")
	}

	headerBytes := c.Header.marshal()
	if len(headerBytes) != HeaderSize {
		return nil, newErr(KindInvalidFormat, "serialized header has unexpected length")
	}
	if len(headerBytes) > MaxHeaderSize {
		return nil, newErr(KindLimitsExceeded, "header too large")
	}

	for _, r := range c.Recipients {
		if len(r.KEMCiphertext) < MinKEMCiphertextSize || len(r.KEMCiphertext) > MaxKEMCiphertextSize || len(r.KEMCiphertext) > 0xFFFF {
			return nil, newErr(KindLimitsExceeded, "kem ciphertext length out of range")
		}
		if len(r.WrappedDEK) < MinWrappedDEKSize || len(r.WrappedDEK) > MaxWrappedDEKSize || len(r.WrappedDEK) > 0xFFFF {
			return nil, newErr(KindLimitsExceeded, "wrapped dek length out of range")
		}
	}

	if len(c.CipherParts.Ciphertext) > MaxPayloadCiphertextSize {
		return nil, newErr(KindLimitsExceeded, "payload ciphertext too large")
	}

	capHint := 4 + 2 + 4 + len(headerBytes)
	for _, r := range c.Recipients {
		capHint += FingerprintSize + 2 + len(r.KEMCiphertext) + 2 + len(r.WrappedDEK)
	}
	capHint += IVSize + 8 + len(c.CipherParts.Ciphertext) + AuthTagSize

	w := wire.NewWriter(capHint)
	w.Append(Magic[:])
	w.AppendU16LE(Version)
	w.AppendU32LE(uint32(len(headerBytes)))
	w.Append(headerBytes)

	for _, r := range c.Recipients {
		w.Append(r.RecipientKeyID.Bytes())
		w.AppendU16LE(uint16(len(r.KEMCiphertext)))
		w.Append(r.KEMCiphertext)
		w.AppendU16LE(uint16(len(r.WrappedDEK)))
		w.Append(r.WrappedDEK)
	}

	w.Append(c.CipherParts.IV[:])
	w.AppendU64LE(uint64(len(c.CipherParts.Ciphertext)))
	w.Append(c.CipherParts.Ciphertext)
	w.Append(c.CipherParts.AuthTag[:])

	return w.Bytes(), nil
}
