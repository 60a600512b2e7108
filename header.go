package pqcontainer

import "github.com/tniur/PQContainerKit/internal/wire"

// HeaderReservedSize is the fixed length of the header's reserved field.
const HeaderReservedSize = 16

// HeaderSize is the fixed on-wire length of a v1 ContainerHeader: algId(2) +
// containerId(16) + recipientsCount(2) + flags(4) + reserved(16) = 40.
const HeaderSize = 2 + ContainerIDSize + 2 + 4 + HeaderReservedSize

// ContainerHeader is the fixed 40-byte v1 header record (spec.md §3). Flags
// is preserved verbatim; no flag bits are defined in v1.
type ContainerHeader struct {
	AlgorithmID     AlgorithmID
	ContainerID     ContainerID
	RecipientsCount uint16
	Flags           uint32
	Reserved        [HeaderReservedSize]byte
}

// NewContainerHeader validates reserved as exactly HeaderReservedSize bytes
// and assembles a ContainerHeader. Every other field is already
// length-bounded by its own type.
func NewContainerHeader(algID AlgorithmID, containerID ContainerID, recipientsCount uint16, flags uint32, reserved []byte) (ContainerHeader, error) {
	if len(reserved) != HeaderReservedSize {
		return ContainerHeader{}, newErr(KindInvalidFormat, "header reserved field must be 16 bytes")
	}
	h := ContainerHeader{
		AlgorithmID:     algID,
		ContainerID:     containerID,
		RecipientsCount: recipientsCount,
		Flags:           flags,
	}
	copy(h.Reserved[:], reserved)
	return h, nil
}

// marshal serializes the header to its fixed 40-byte wire form.
func (h ContainerHeader) marshal() []byte {
	w := wire.NewWriter(HeaderSize)
	w.AppendU16LE(uint16(h.AlgorithmID))
	w.Append(h.ContainerID.Bytes())
	w.AppendU16LE(h.RecipientsCount)
	w.AppendU32LE(h.Flags)
	w.Append(h.Reserved[:])
	return w.Bytes()
}

// parseHeaderBody parses the bytes of a single header block (already
// isolated by the caller using the declared headerLength) into a
// ContainerHeader. Any bytes beyond the fixed 40-byte v1 layout are
// ignored, per the forward-compatibility rule in spec.md §9: a future v1
// producer may append trailing bytes to the header block without breaking
// this decoder.
func parseHeaderBody(body []byte) (ContainerHeader, error) {
	r, err := wire.NewReader(body, 0)
	if err != nil {
		return ContainerHeader{}, newErr(KindInvalidFormat, "")
	}
	algID, err := r.ReadU16LE()
	if err != nil {
		return ContainerHeader{}, newErr(KindInvalidFormat, "")
	}
	cidBytes, err := r.ReadBytes(ContainerIDSize)
	if err != nil {
		return ContainerHeader{}, newErr(KindInvalidFormat, "")
	}
	cid, err := NewContainerID(cidBytes)
	if err != nil {
		return ContainerHeader{}, newErr(KindInvalidFormat, "")
	}
	recipientsCount, err := r.ReadU16LE()
	if err != nil {
		return ContainerHeader{}, newErr(KindInvalidFormat, "")
	}
	flags, err := r.ReadU32LE()
	if err != nil {
		return ContainerHeader{}, newErr(KindInvalidFormat, "")
	}
	reserved, err := r.ReadBytes(HeaderReservedSize)
	if err != nil {
		return ContainerHeader{}, newErr(KindInvalidFormat, "")
	}
	return NewContainerHeader(AlgorithmID(algID), cid, recipientsCount, flags, reserved)
}
