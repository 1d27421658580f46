package cdis

import (
	"github.com/discdis/gateway/dis"
	"github.com/discdis/gateway/pkg/dislog"
)

// Pdu is a C-DIS header paired with its parsed body (spec.md §4.6).
type Pdu struct {
	Header Header
	Body   Body
}

// Finalize stamps PduLengthBits and PduType onto header, the C-DIS
// analogue of dis.FinalizeFromParts.
func Finalize(header Header, body Body, timestamp uint32) Pdu {
	header.Timestamp = timestamp
	header.PduType = body.BodyType()
	header.PduLengthBits = uint16(header.BitLength() + body.BodyBitLength())
	// BodyBitLength leaves out the padding that byte-aligned payloads
	// insert, so measure the serialized form whenever it can be written.
	w := NewBitWriter(DefaultBitBufferBytes)
	if header.SerializeDIS(w) == nil && body.SerializeDIS(w) == nil {
		header.PduLengthBits = uint16(w.BitLen())
	}
	return Pdu{Header: header, Body: body}
}

// ParseCdis reads a single bit-packed PDU from a datagram. Unlike DIS,
// a C-DIS datagram holds exactly one PDU per the layout this codec
// targets (spec.md §4.6 "C-DIS dispatch mirrors this, but over a bit
// cursor"); trailing bits beyond the declared length are ignored.
func ParseCdis(data []byte, opts ...Option) (Pdu, error) {
	o := NewOptions(opts...)
	r := NewBitReader(data)
	header, err := ParseHeader(r)
	if err != nil {
		return Pdu{}, err
	}
	body, err := parseBody(header.PduType, r, o)
	if err != nil {
		return Pdu{}, err
	}
	dislog.Get().Debugf("cdis: parsed %s pdu, bitlength=%d", header.PduType, header.PduLengthBits)
	return Pdu{Header: header, Body: body}, nil
}

// SerializeCdis writes header then body into a bit buffer sized per
// opts.BitBufferBytes, returning the written bytes truncated to the
// final byte boundary.
func SerializeCdis(pdu Pdu, opts ...Option) ([]byte, error) {
	o := NewOptions(opts...)
	w := NewBitWriter(o.BitBufferBytes)
	if err := pdu.Header.SerializeDIS(w); err != nil {
		return nil, err
	}
	if err := pdu.Body.SerializeDIS(w); err != nil {
		return nil, err
	}
	w.AlignToByte()
	dislog.Get().Debugf("cdis: serialized %s pdu, %d bits", pdu.Header.PduType, w.BitLen())
	return w.Bytes(), nil
}

// Encode converts a DIS PDU to its C-DIS form. Returns
// UnsupportedPduTypeError if the body's PduType has no C-DIS wire
// form (spec.md §4.4).
func Encode(p dis.Pdu, timestamp uint32) (Pdu, error) {
	body, err := encodeBody(p.Body)
	if err != nil {
		return Pdu{}, err
	}
	header := Header{ExerciseID: NewUVInt8(p.Header.ExerciseID)}
	return Finalize(header, body, timestamp), nil
}

// Decode lifts a C-DIS PDU back to its lossless DIS form.
func Decode(p Pdu, timestamp uint32) dis.Pdu {
	return dis.FinalizeFromParts(dis.Header{ExerciseID: uint8(p.Header.ExerciseID.Value), ProtocolVersion: dis.ProtocolVersion7}, p.Body.EncodeDIS(), timestamp)
}
