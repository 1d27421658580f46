package dis

// Other preserves the raw body bytes of a PDU type this codec does not
// recognize, so unrecognized traffic round-trips unchanged rather than
// failing to parse (spec.md §7: unknown PDU type is never an error).
type Other struct {
	Raw []byte
}

func NewOther(raw []byte) Other { return Other{Raw: raw} }

func parseOtherBody(raw []byte) (PduBody, error) {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return Other{Raw: cp}, nil
}

func (o Other) SerializeDIS(w *ByteWriter) int {
	w.PutN(o.Raw)
	return len(o.Raw)
}

func (o Other) BodyLengthBytes() int { return len(o.Raw) }
func (o Other) BodyType() PduType    { return PduTypeOther }
