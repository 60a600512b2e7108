package pqcontainer

// Recipient and payload limits enforced by the encoder and decoder
// (spec.md §3, §6).
const (
	MinRecipients = 1
	MaxRecipients = 100

	MinKEMCiphertextSize = 1
	MaxKEMCiphertextSize = 2048

	MinWrappedDEKSize = 1
	MaxWrappedDEKSize = 128

	MaxHeaderSize = 4096
)

// Magic is the 4-byte magic value at the start of every v1 container.
var Magic = [4]byte{'P', 'Q', 'C', 'K'}

// Version is the only container format version this package produces or
// accepts.
const Version uint16 = 1

// Container is a fully-validated, in-memory container: a header, its
// ordered recipient entries, and the sealed payload (spec.md §3). It is
// produced either by assembling one directly (for encoding) or by the
// decoder (component I), and is the shared model both sides of the codec
// operate on (spec.md §2, component G).
type Container struct {
	Header      ContainerHeader
	Recipients  []RecipientEntry
	CipherParts CipherParts
}

// NewContainer assembles a Container. It does not itself check that
// header.RecipientsCount matches len(recipients), or any of the other
// cross-field limits in spec.md §3 — those are enforced by Encode (spec.md
// §4.H) immediately before serialization, so that a Container can still be
// constructed and inspected even when it is not yet (or no longer)
// encodable.
func NewContainer(header ContainerHeader, recipients []RecipientEntry, cipherParts CipherParts) Container {
	rs := make([]RecipientEntry, len(recipients))
	copy(rs, recipients)
	return Container{Header: header, Recipients: rs, CipherParts: cipherParts}
}

// FindRecipient scans Recipients in wire order for the first entry whose
// RecipientKeyID matches fp (spec.md §9: "Single-recipient search
// semantics"). Duplicate key ids are tolerated; the first match wins.
func (c Container) FindRecipient(fp Fingerprint) (RecipientEntry, bool) {
	for _, r := range c.Recipients {
		if r.RecipientKeyID.Equal(fp) {
			return r, true
		}
	}
	return RecipientEntry{}, false
}

// Equal reports whether c and other are structurally equal: same header,
// same recipients in the same order, and same cipher parts.
func (c Container) Equal(other Container) bool {
	if c.Header != other.Header {
		return false
	}
	if len(c.Recipients) != len(other.Recipients) {
		return false
	}
	for i := range c.Recipients {
		if !c.Recipients[i].Equal(other.Recipients[i]) {
			return false
		}
	}
	return c.CipherParts.Equal(other.CipherParts)
}
