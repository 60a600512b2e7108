package pqcontainer

// Kind identifies one of the stable, user-visible error variants produced by
// this package. Callers should compare against the package-level sentinel
// values with errors.Is rather than inspecting Error strings, which carry no
// contract.
type Kind uint8

const (
	_ Kind = iota
	KindInvalidBase64
	KindInvalidKeyRepresentation
	KindKeyGenerationFailed
	KindKEMEncapsulationFailed
	KindKEMDecapsulationFailed
	KindInvalidCiphertextRepresentation
	KindInvalidKDFOutputLength
	KindInvalidNonceLength
	KindInvalidTagLength
	KindAEADFailed
	KindInvalidWrappedDEKRepresentation
	KindUnsupportedVersion
	KindInvalidFormat
	KindLimitsExceeded
	KindAccessDenied
	KindCannotOpen
)

func (k Kind) String() string {
	switch k {
	case KindInvalidBase64:
		return "invalidBase64"
	case KindInvalidKeyRepresentation:
		return "invalidKeyRepresentation"
	case KindKeyGenerationFailed:
		return "keyGenerationFailed"
	case KindKEMEncapsulationFailed:
		return "kemEncapsulationFailed"
	case KindKEMDecapsulationFailed:
		return "kemDecapsulationFailed"
	case KindInvalidCiphertextRepresentation:
		return "invalidCiphertextRepresentation"
	case KindInvalidKDFOutputLength:
		return "invalidKDFOutputLength"
	case KindInvalidNonceLength:
		return "invalidNonceLength"
	case KindInvalidTagLength:
		return "invalidTagLength"
	case KindAEADFailed:
		return "aeadFailed"
	case KindInvalidWrappedDEKRepresentation:
		return "invalidWrappedDEKRepresentation"
	case KindUnsupportedVersion:
		return "unsupportedVersion"
	case KindInvalidFormat:
		return "invalidFormat"
	case KindLimitsExceeded:
		return "limitsExceeded"
	case KindAccessDenied:
		return "accessDenied"
	case KindCannotOpen:
		return "cannotOpen"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by this package. Its Kind is the
// stable, comparable part of the contract; Detail is a short human-readable
// note that must never leak the underlying cryptographic cause (spec.md §7:
// "Nothing is retried ... no CLI").
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "pqcontainer: " + e.Kind.String()
	}
	return "pqcontainer: " + e.Kind.String() + ": " + e.Detail
}

// Is reports whether target is a *Error with the same Kind, so that
// errors.Is(err, ErrAEADFailed) works regardless of Detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newErr(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Sentinel values, one per Kind, for use with errors.Is. Detail is empty on
// the sentinels; components construct their own *Error with a Detail and
// callers compare it against these with errors.Is.
var (
	ErrInvalidBase64                   = &Error{Kind: KindInvalidBase64}
	ErrInvalidKeyRepresentation        = &Error{Kind: KindInvalidKeyRepresentation}
	ErrKeyGenerationFailed             = &Error{Kind: KindKeyGenerationFailed}
	ErrKEMEncapsulationFailed          = &Error{Kind: KindKEMEncapsulationFailed}
	ErrKEMDecapsulationFailed          = &Error{Kind: KindKEMDecapsulationFailed}
	ErrInvalidCiphertextRepresentation = &Error{Kind: KindInvalidCiphertextRepresentation}
	ErrInvalidKDFOutputLength          = &Error{Kind: KindInvalidKDFOutputLength}
	ErrInvalidNonceLength              = &Error{Kind: KindInvalidNonceLength}
	ErrInvalidTagLength                = &Error{Kind: KindInvalidTagLength}
	ErrAEADFailed                      = &Error{Kind: KindAEADFailed}
	ErrInvalidWrappedDEKRepresentation = &Error{Kind: KindInvalidWrappedDEKRepresentation}
	ErrUnsupportedVersion              = &Error{Kind: KindUnsupportedVersion}
	ErrInvalidFormat                   = &Error{Kind: KindInvalidFormat}
	ErrLimitsExceeded                  = &Error{Kind: KindLimitsExceeded}
	ErrAccessDenied                    = &Error{Kind: KindAccessDenied}
	ErrCannotOpen                      = &Error{Kind: KindCannotOpen}
)
