package dis

import "github.com/discdis/gateway/pkg/dislog"

// Pdu is a DIS header paired with its parsed body (spec.md §3).
type Pdu struct {
	Header Header
	Body   PduBody
}

// FinalizeFromParts stamps PduLength, Timestamp and ProtocolFamily onto
// header, matching dis-rs's Pdu::finalize_from_parts (spec.md §4.5):
// pdu_length is never set by callers directly.
func FinalizeFromParts(header Header, body PduBody, timestamp uint32) Pdu {
	header.Timestamp = timestamp
	header.ProtocolFamily = ProtocolFamilyOf(body.BodyType())
	header.PduType = body.BodyType()
	header.PduLength = uint16(PduHeaderLenBytes + body.BodyLengthBytes())
	return Pdu{Header: header, Body: body}
}

// Parse reads zero or more concatenated PDUs from a single datagram
// (spec.md §4.6). A short trailing region smaller than a full header
// fails the whole call with InsufficientHeaderError; a header whose
// PduLength exceeds the remaining bytes fails with
// InsufficientBodyError. Partial results already parsed are returned
// alongside the error.
func Parse(data []byte, opts ...Option) ([]Pdu, error) {
	o := NewOptions(opts...)
	r := NewByteReader(data)
	var pdus []Pdu
	for r.Remaining() > 0 {
		if r.Remaining() < PduHeaderLenBytes {
			return pdus, InsufficientHeaderError{Have: r.Remaining()}
		}
		header, err := ParseHeader(r)
		if err != nil {
			return pdus, err
		}
		bodyLen := int(header.PduLength) - PduHeaderLenBytes
		if bodyLen < 0 || r.Remaining() < bodyLen {
			return pdus, InsufficientBodyError{Expected: bodyLen, Have: r.Remaining()}
		}
		body, err := parseBody(header.PduType, r, bodyLen, o)
		if err != nil {
			return pdus, err
		}
		dislog.Get().Debugf("dis: parsed %s pdu, version=%d, length=%d", header.PduType, header.ProtocolVersion, header.PduLength)
		pdus = append(pdus, Pdu{Header: header, Body: body})
	}
	return pdus, nil
}

// Serialize appends header then body to w, returning the total bytes
// written; w grows as needed.
func Serialize(pdu Pdu, w *ByteWriter) (uint16, error) {
	headerBytes := pdu.Header.SerializeDIS(w)
	bodyBytes := pdu.Body.SerializeDIS(w)
	dislog.Get().Debugf("dis: serialized %s pdu, %d bytes", pdu.Header.PduType, headerBytes+bodyBytes)
	return uint16(headerBytes + bodyBytes), nil
}
