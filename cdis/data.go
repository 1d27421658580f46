package cdis

import "github.com/discdis/gateway/dis"

// Data mirrors dis.Data (spec.md §4.4); no padding field survives
// compression since C-DIS has no 4-byte alignment requirement.
type Data struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     UVInt32
	Datums        DatumSpecification
}

func EncodeData(d dis.Data) Data {
	return Data{
		OriginatingID: EncodeEntityId(d.OriginatingID),
		ReceivingID:   EncodeEntityId(d.ReceivingID),
		RequestID:     NewUVInt32(d.RequestID),
		Datums:        EncodeDatumSpecification(d.Datums),
	}
}

func (d Data) Decode() dis.Data {
	return dis.Data{
		OriginatingID: d.OriginatingID.Decode(),
		ReceivingID:   d.ReceivingID.Decode(),
		RequestID:     d.RequestID.Value,
		Datums:        d.Datums.Decode(),
	}
}

func parseDataFields(r *BitReader) (Data, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return Data{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return Data{}, err
	}
	requestID, err := DecodeUVInt32(r)
	if err != nil {
		return Data{}, err
	}
	datums, err := ParseDatumSpecification(r)
	if err != nil {
		return Data{}, err
	}
	return Data{OriginatingID: originatingID, ReceivingID: receivingID, RequestID: requestID, Datums: datums}, nil
}

func (d Data) serializeFields(w *BitWriter) error {
	if err := d.OriginatingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.ReceivingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.RequestID.Encode(w); err != nil {
		return err
	}
	return d.Datums.SerializeDIS(w)
}

func (d Data) fieldsBitLength() int {
	return d.OriginatingID.BitLength() + d.ReceivingID.BitLength() + d.RequestID.BitLength() + d.Datums.BitLength()
}

func parseDataBody(r *BitReader) (Body, error) { return parseDataFields(r) }

func (d Data) SerializeDIS(w *BitWriter) error { return d.serializeFields(w) }
func (d Data) BodyBitLength() int              { return d.fieldsBitLength() }
func (d Data) BodyType() dis.PduType           { return dis.PduTypeData }
func (d Data) EncodeDIS() dis.PduBody          { return d.Decode() }
