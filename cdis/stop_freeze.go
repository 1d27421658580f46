package cdis

import "github.com/discdis/gateway/dis"

// StopFreeze mirrors dis.StopFreeze; the reason/frozen-behavior fields
// stay byte-width since they are already small closed enumerations
// (spec.md §4.4).
type StopFreeze struct {
	OriginatingID  EntityId
	ReceivingID    EntityId
	RealWorldTime  ClockTime
	Reason         UVInt8
	FrozenBehavior UVInt8
	RequestID      UVInt32
}

func EncodeStopFreeze(s dis.StopFreeze) StopFreeze {
	return StopFreeze{
		OriginatingID:  EncodeEntityId(s.OriginatingID),
		ReceivingID:    EncodeEntityId(s.ReceivingID),
		RealWorldTime:  EncodeClockTime(s.RealWorldTime),
		Reason:         NewUVInt8(s.Reason.Wire()),
		FrozenBehavior: NewUVInt8(s.FrozenBehavior.Wire()),
		RequestID:      NewUVInt32(s.RequestID),
	}
}

func (s StopFreeze) Decode() dis.StopFreeze {
	return dis.StopFreeze{
		OriginatingID:  s.OriginatingID.Decode(),
		ReceivingID:    s.ReceivingID.Decode(),
		RealWorldTime:  s.RealWorldTime.Decode(),
		Reason:         dis.StopFreezeReasonFromWire(s.Reason.Value),
		FrozenBehavior: frozenBehaviorFromWire(s.FrozenBehavior.Value),
		RequestID:      s.RequestID.Value,
	}
}

func frozenBehaviorFromWire(b uint8) dis.FrozenBehavior {
	return dis.FrozenBehavior{
		RunSimulationClock: b&0x01 != 0,
		TransmitPdus:       b&0x02 != 0,
		ReceivePdus:        b&0x04 != 0,
	}
}

func parseStopFreezeBody(r *BitReader) (Body, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	realWorldTime, err := ParseClockTime(r)
	if err != nil {
		return nil, err
	}
	reason, err := DecodeUVInt8(r)
	if err != nil {
		return nil, err
	}
	behavior, err := DecodeUVInt8(r)
	if err != nil {
		return nil, err
	}
	requestID, err := DecodeUVInt32(r)
	if err != nil {
		return nil, err
	}
	return StopFreeze{
		OriginatingID:  originatingID,
		ReceivingID:    receivingID,
		RealWorldTime:  realWorldTime,
		Reason:         reason,
		FrozenBehavior: behavior,
		RequestID:      requestID,
	}, nil
}

func (s StopFreeze) SerializeDIS(w *BitWriter) error {
	if err := s.OriginatingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := s.ReceivingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := s.RealWorldTime.SerializeDIS(w); err != nil {
		return err
	}
	if err := s.Reason.Encode(w); err != nil {
		return err
	}
	if err := s.FrozenBehavior.Encode(w); err != nil {
		return err
	}
	return s.RequestID.Encode(w)
}

func (s StopFreeze) BodyBitLength() int {
	return s.OriginatingID.BitLength() + s.ReceivingID.BitLength() + s.RealWorldTime.BitLength() +
		s.Reason.BitLength() + s.FrozenBehavior.BitLength() + s.RequestID.BitLength()
}

func (s StopFreeze) BodyType() dis.PduType  { return dis.PduTypeStopFreeze }
func (s StopFreeze) EncodeDIS() dis.PduBody { return s.Decode() }
