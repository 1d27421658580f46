package cdis

import "github.com/discdis/gateway/dis"

// RemoveEntity mirrors dis.RemoveEntity (spec.md §4.4).
type RemoveEntity struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     UVInt32
}

func EncodeRemoveEntity(c dis.RemoveEntity) RemoveEntity {
	return RemoveEntity{
		OriginatingID: EncodeEntityId(c.OriginatingID),
		ReceivingID:   EncodeEntityId(c.ReceivingID),
		RequestID:     NewUVInt32(c.RequestID),
	}
}

func (c RemoveEntity) Decode() dis.RemoveEntity {
	return dis.RemoveEntity{
		OriginatingID: c.OriginatingID.Decode(),
		ReceivingID:   c.ReceivingID.Decode(),
		RequestID:     c.RequestID.Value,
	}
}

func parseRemoveEntityBody(r *BitReader) (Body, error) {
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
	return RemoveEntity{OriginatingID: originatingID, ReceivingID: receivingID, RequestID: requestID}, nil
}

func (c RemoveEntity) SerializeDIS(w *BitWriter) error {
	if err := c.OriginatingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := c.ReceivingID.SerializeDIS(w); err != nil {
		return err
	}
	return c.RequestID.Encode(w)
}

func (c RemoveEntity) BodyBitLength() int {
	return c.OriginatingID.BitLength() + c.ReceivingID.BitLength() + c.RequestID.BitLength()
}

func (c RemoveEntity) BodyType() dis.PduType  { return dis.PduTypeRemoveEntity }
func (c RemoveEntity) EncodeDIS() dis.PduBody { return c.Decode() }
