package cdis

import "github.com/discdis/gateway/dis"

// EventReport mirrors dis.EventReport (spec.md §4.4).
type EventReport struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	EventType     UVInt32
	Datums        DatumSpecification
}

func EncodeEventReport(e dis.EventReport) EventReport {
	return EventReport{
		OriginatingID: EncodeEntityId(e.OriginatingID),
		ReceivingID:   EncodeEntityId(e.ReceivingID),
		EventType:     NewUVInt32(e.EventType),
		Datums:        EncodeDatumSpecification(e.Datums),
	}
}

func (e EventReport) Decode() dis.EventReport {
	return dis.EventReport{
		OriginatingID: e.OriginatingID.Decode(),
		ReceivingID:   e.ReceivingID.Decode(),
		EventType:     e.EventType.Value,
		Datums:        e.Datums.Decode(),
	}
}

func parseEventReportBody(r *BitReader) (Body, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	eventType, err := DecodeUVInt32(r)
	if err != nil {
		return nil, err
	}
	datums, err := ParseDatumSpecification(r)
	if err != nil {
		return nil, err
	}
	return EventReport{OriginatingID: originatingID, ReceivingID: receivingID, EventType: eventType, Datums: datums}, nil
}

func (e EventReport) SerializeDIS(w *BitWriter) error {
	if err := e.OriginatingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := e.ReceivingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := e.EventType.Encode(w); err != nil {
		return err
	}
	return e.Datums.SerializeDIS(w)
}

func (e EventReport) BodyBitLength() int {
	return e.OriginatingID.BitLength() + e.ReceivingID.BitLength() + e.EventType.BitLength() + e.Datums.BitLength()
}

func (e EventReport) BodyType() dis.PduType  { return dis.PduTypeEventReport }
func (e EventReport) EncodeDIS() dis.PduBody { return e.Decode() }
