package pqcontainer

import (
	"math"

	"github.com/tniur/PQContainerKit/internal/wire"
)

// Decode parses buf into a Container, enforcing every structural and size
// invariant of the v1 format (spec.md §4.I). Decode performs no
// cryptographic operations: it does not check that recipients are unique,
// that AlgorithmID is a supported suite, or that sizes are mutually
// sensible beyond the declared limits — those are left to the caller
// (spec.md §4.I, §9).
func Decode(buf []byte) (Container, error) {
	r, err := wire.NewReader(buf, 0)
	if err != nil {
		return Container{}, newErr(KindInvalidFormat, "")
	}

	magic, err := r.ReadBytes(4)
	if err != nil || magic[0] != Magic[0] || magic[1] != Magic[1] || magic[2] != Magic[2] || magic[3] != Magic[3] {
		return Container{}, newErr(KindInvalidFormat, "bad magic")
	}

	version, err := r.ReadU16LE()
	if err != nil {
		return Container{}, newErr(KindInvalidFormat, "")
	}
	if version != Version {
		return Container{}, newErr(KindUnsupportedVersion, "")
	}

	headerLength, err := r.ReadU32LE()
	if err != nil {
		return Container{}, newErr(KindInvalidFormat, "")
	}
	if headerLength == 0 || headerLength < HeaderSize {
		return Container{}, newErr(KindInvalidFormat, "header length too small")
	}
	if headerLength > MaxHeaderSize {
		return Container{}, newErr(KindLimitsExceeded, "header length too large")
	}

	headerBytes, err := r.ReadBytes(int(headerLength))
	if err != nil {
		return Container{}, newErr(KindInvalidFormat, "")
	}
	header, err := parseHeaderBody(headerBytes[:HeaderSize])
	if err != nil {
		return Container{}, err
	}

	recipientsCount := int(header.RecipientsCount)
	if recipientsCount < MinRecipients || recipientsCount > MaxRecipients {
		return Container{}, newErr(KindLimitsExceeded, "recipient count out of range")
	}

	recipients := make([]RecipientEntry, 0, recipientsCount)
	for i := 0; i < recipientsCount; i++ {
		keyIDBytes, err := r.ReadBytes(FingerprintSize)
		if err != nil {
			return Container{}, newErr(KindInvalidFormat, "")
		}
		keyID, err := NewFingerprint(keyIDBytes)
		if err != nil {
			return Container{}, newErr(KindInvalidFormat, "")
		}

		kemLen, err := r.ReadU16LE()
		if err != nil {
			return Container{}, newErr(KindInvalidFormat, "")
		}
		if kemLen == 0 {
			return Container{}, newErr(KindInvalidFormat, "zero-length kem ciphertext")
		}
		if int(kemLen) > MaxKEMCiphertextSize {
			return Container{}, newErr(KindLimitsExceeded, "kem ciphertext too large")
		}
		kemCiphertext, err := r.ReadBytes(int(kemLen))
		if err != nil {
			return Container{}, newErr(KindInvalidFormat, "")
		}

		wrappedLen, err := r.ReadU16LE()
		if err != nil {
			return Container{}, newErr(KindInvalidFormat, "")
		}
		if wrappedLen == 0 {
			return Container{}, newErr(KindInvalidFormat, "zero-length wrapped dek")
		}
		if int(wrappedLen) > MaxWrappedDEKSize {
			return Container{}, newErr(KindLimitsExceeded, "wrapped dek too large")
		}
		wrappedDEK, err := r.ReadBytes(int(wrappedLen))
		if err != nil {
			return Container{}, newErr(KindInvalidFormat, "")
		}

		recipients = append(recipients, NewRecipientEntry(keyID, kemCiphertext, wrappedDEK))
	}

	iv, err := r.ReadBytes(IVSize)
	if err != nil {
		return Container{}, newErr(KindInvalidFormat, "")
	}

	ctLen, err := r.ReadU64LE()
	if err != nil {
		return Container{}, newErr(KindInvalidFormat, "")
	}
	if ctLen > MaxPayloadCiphertextSize || ctLen > uint64(math.MaxInt) {
		return Container{}, newErr(KindLimitsExceeded, "payload ciphertext too large")
	}
	ciphertext, err := r.ReadBytes(int(ctLen))
	if err != nil {
		return Container{}, newErr(KindInvalidFormat, "")
	}

	authTag, err := r.ReadBytes(AuthTagSize)
	if err != nil {
		return Container{}, newErr(KindInvalidFormat, "")
	}

	if r.Remaining() != 0 {
		return Container{}, newErr(KindInvalidFormat, "trailing bytes")
	}

	cipherParts, err := NewCipherParts(iv, ciphertext, authTag)
	if err != nil {
		return Container{}, err
	}

	return NewContainer(header, recipients, cipherParts), nil
}
