package cdis

import "github.com/discdis/gateway/dis"

/*
Header is the small C-DIS envelope prefixing every compressed PDU
(spec.md §4.6/§6: "prefixed by a small C-DIS header... carries its own
length in bits"). Unlike the DIS header it has no per-version tail —
C-DIS is a single wire generation — and its length field counts bits,
not bytes, since the body that follows is bit-packed.
*/
type Header struct {
	ExerciseID UVInt8
	PduType    dis.PduType
	Timestamp  uint32
	// PduLengthBits is the total bit length of header + body; callers
	// never set it directly, Finalize recomputes it from the body.
	PduLengthBits uint16
}

func ParseHeader(r *BitReader) (Header, error) {
	exerciseID, err := DecodeUVInt8(r)
	if err != nil {
		return Header{}, err
	}
	typeCode, err := r.TakeUnsigned(8)
	if err != nil {
		return Header{}, err
	}
	timestamp, err := r.TakeUnsigned(32)
	if err != nil {
		return Header{}, err
	}
	lengthBits, err := r.TakeUnsigned(16)
	if err != nil {
		return Header{}, err
	}
	return Header{
		ExerciseID:    exerciseID,
		PduType:       dis.PduTypeFromWire(uint8(typeCode)),
		Timestamp:     uint32(timestamp),
		PduLengthBits: uint16(lengthBits),
	}, nil
}

func (h Header) SerializeDIS(w *BitWriter) error {
	if err := h.ExerciseID.Encode(w); err != nil {
		return err
	}
	w.WriteUnsigned(uint64(h.PduType.Wire()), 8)
	w.WriteUnsigned(uint64(h.Timestamp), 32)
	w.WriteUnsigned(uint64(h.PduLengthBits), 16)
	return nil
}

// BitLength is the header's own footprint: ExerciseID's VarInt width
// plus 56 fixed bits (8-bit type, 32-bit timestamp, 16-bit length).
func (h Header) BitLength() int { return h.ExerciseID.BitLength() + 8 + 32 + 16 }
