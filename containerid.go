package pqcontainer

import "crypto/rand"

// ContainerIDSize is the fixed length of a ContainerID.
const ContainerIDSize = 16

// ContainerID is a 16-byte random identifier binding all per-recipient
// wraps in a container together. It is semantically UUID-shaped but is not
// parsed or validated as a UUID (spec.md §3).
type ContainerID struct {
	b [ContainerIDSize]byte
}

// NewContainerID validates raw as exactly ContainerIDSize bytes.
func NewContainerID(raw []byte) (ContainerID, error) {
	var id ContainerID
	if len(raw) != ContainerIDSize {
		return id, newErr(KindInvalidFormat, "container id must be 16 bytes")
	}
	copy(id.b[:], raw)
	return id, nil
}

// GenerateContainerID returns a uniformly random ContainerID.
func GenerateContainerID() (ContainerID, error) {
	var id ContainerID
	if _, err := rand.Read(id.b[:]); err != nil {
		return ContainerID{}, newErr(KindKeyGenerationFailed, "")
	}
	return id, nil
}

// Bytes returns the container id's raw bytes.
func (id ContainerID) Bytes() []byte {
	cp := make([]byte, ContainerIDSize)
	copy(cp, id.b[:])
	return cp
}

// Equal reports whether id and other are byte-equal.
func (id ContainerID) Equal(other ContainerID) bool {
	return id.b == other.b
}
