package cdis

import "github.com/discdis/gateway/dis"

// SetData shares Data's wire shape exactly (spec.md §4.4), so its
// field-level helpers are reused via struct-type conversion, matching
// dis.SetData's own reuse of dis.Data's fields helper.
type SetData struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     UVInt32
	Datums        DatumSpecification
}

func EncodeSetData(d dis.SetData) SetData {
	return SetData(EncodeData(dis.Data(d)))
}

func (d SetData) Decode() dis.SetData {
	return dis.SetData(Data(d).Decode())
}

func parseSetDataBody(r *BitReader) (Body, error) {
	fields, err := parseDataFields(r)
	if err != nil {
		return nil, err
	}
	return SetData(fields), nil
}

func (d SetData) SerializeDIS(w *BitWriter) error { return Data(d).serializeFields(w) }
func (d SetData) BodyBitLength() int              { return Data(d).fieldsBitLength() }
func (d SetData) BodyType() dis.PduType           { return dis.PduTypeSetData }
func (d SetData) EncodeDIS() dis.PduBody          { return d.Decode() }
