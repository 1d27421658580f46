package cdis

import "github.com/discdis/gateway/dis"

// CreateEntity mirrors dis.CreateEntity (spec.md §4.4).
type CreateEntity struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     UVInt32
}

func EncodeCreateEntity(c dis.CreateEntity) CreateEntity {
	return CreateEntity{
		OriginatingID: EncodeEntityId(c.OriginatingID),
		ReceivingID:   EncodeEntityId(c.ReceivingID),
		RequestID:     NewUVInt32(c.RequestID),
	}
}

func (c CreateEntity) Decode() dis.CreateEntity {
	return dis.CreateEntity{
		OriginatingID: c.OriginatingID.Decode(),
		ReceivingID:   c.ReceivingID.Decode(),
		RequestID:     c.RequestID.Value,
	}
}

func parseCreateEntityBody(r *BitReader) (Body, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	requestID, err := DecodeUVInt32(r)
	if err != nil {
		return nil, err
	}
	return CreateEntity{OriginatingID: originatingID, ReceivingID: receivingID, RequestID: requestID}, nil
}

func (c CreateEntity) SerializeDIS(w *BitWriter) error {
	if err := c.OriginatingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := c.ReceivingID.SerializeDIS(w); err != nil {
		return err
	}
	return c.RequestID.Encode(w)
}

func (c CreateEntity) BodyBitLength() int {
	return c.OriginatingID.BitLength() + c.ReceivingID.BitLength() + c.RequestID.BitLength()
}

func (c CreateEntity) BodyType() dis.PduType  { return dis.PduTypeCreateEntity }
func (c CreateEntity) EncodeDIS() dis.PduBody { return c.Decode() }
