package cdis

import "github.com/discdis/gateway/dis"

// Acknowledge mirrors dis.Acknowledge, compressing its two u16 flag
// fields and request id into VarInts (spec.md §4.4).
type Acknowledge struct {
	OriginatingID   EntityId
	ReceivingID     EntityId
	AcknowledgeFlag UVInt16
	ResponseFlag    UVInt16
	RequestID       UVInt32
}

func EncodeAcknowledge(a dis.Acknowledge) Acknowledge {
	return Acknowledge{
		OriginatingID:   EncodeEntityId(a.OriginatingID),
		ReceivingID:     EncodeEntityId(a.ReceivingID),
		AcknowledgeFlag: NewUVInt16(uint16(a.AcknowledgeFlag)),
		ResponseFlag:    NewUVInt16(uint16(a.ResponseFlag)),
		RequestID:       NewUVInt32(a.RequestID),
	}
}

func (a Acknowledge) Decode() dis.Acknowledge {
	return dis.Acknowledge{
		OriginatingID:   a.OriginatingID.Decode(),
		ReceivingID:     a.ReceivingID.Decode(),
		AcknowledgeFlag: dis.AcknowledgeFlagFromWire(a.AcknowledgeFlag.Value),
		ResponseFlag:    dis.ResponseFlagFromWire(a.ResponseFlag.Value),
		RequestID:       a.RequestID.Value,
	}
}

func parseAcknowledgeBody(r *BitReader) (Body, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	ackFlag, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	respFlag, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	requestID, err := DecodeUVInt32(r)
	if err != nil {
		return nil, err
	}
	return Acknowledge{
		OriginatingID:   originatingID,
		ReceivingID:     receivingID,
		AcknowledgeFlag: ackFlag,
		ResponseFlag:    respFlag,
		RequestID:       requestID,
	}, nil
}

func (a Acknowledge) SerializeDIS(w *BitWriter) error {
	if err := a.OriginatingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := a.ReceivingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := a.AcknowledgeFlag.Encode(w); err != nil {
		return err
	}
	if err := a.ResponseFlag.Encode(w); err != nil {
		return err
	}
	return a.RequestID.Encode(w)
}

func (a Acknowledge) BodyBitLength() int {
	return a.OriginatingID.BitLength() + a.ReceivingID.BitLength() +
		a.AcknowledgeFlag.BitLength() + a.ResponseFlag.BitLength() + a.RequestID.BitLength()
}

func (a Acknowledge) BodyType() dis.PduType { return dis.PduTypeAcknowledge }
func (a Acknowledge) EncodeDIS() dis.PduBody { return a.Decode() }
