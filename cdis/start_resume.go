package cdis

import "github.com/discdis/gateway/dis"

// StartResume mirrors dis.StartResume (spec.md §4.4).
type StartResume struct {
	OriginatingID  EntityId
	ReceivingID    EntityId
	RealWorldTime  ClockTime
	SimulationTime ClockTime
	RequestID      UVInt32
}

func EncodeStartResume(s dis.StartResume) StartResume {
	return StartResume{
		OriginatingID:  EncodeEntityId(s.OriginatingID),
		ReceivingID:    EncodeEntityId(s.ReceivingID),
		RealWorldTime:  EncodeClockTime(s.RealWorldTime),
		SimulationTime: EncodeClockTime(s.SimulationTime),
		RequestID:      NewUVInt32(s.RequestID),
	}
}

func (s StartResume) Decode() dis.StartResume {
	return dis.StartResume{
		OriginatingID:  s.OriginatingID.Decode(),
		ReceivingID:    s.ReceivingID.Decode(),
		RealWorldTime:  s.RealWorldTime.Decode(),
		SimulationTime: s.SimulationTime.Decode(),
		RequestID:      s.RequestID.Value,
	}
}

func parseStartResumeBody(r *BitReader) (Body, error) {
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
	simulationTime, err := ParseClockTime(r)
	if err != nil {
		return nil, err
	}
	requestID, err := DecodeUVInt32(r)
	if err != nil {
		return nil, err
	}
	return StartResume{
		OriginatingID:  originatingID,
		ReceivingID:    receivingID,
		RealWorldTime:  realWorldTime,
		SimulationTime: simulationTime,
		RequestID:      requestID,
	}, nil
}

func (s StartResume) SerializeDIS(w *BitWriter) error {
	if err := s.OriginatingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := s.ReceivingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := s.RealWorldTime.SerializeDIS(w); err != nil {
		return err
	}
	if err := s.SimulationTime.SerializeDIS(w); err != nil {
		return err
	}
	return s.RequestID.Encode(w)
}

func (s StartResume) BodyBitLength() int {
	return s.OriginatingID.BitLength() + s.ReceivingID.BitLength() +
		s.RealWorldTime.BitLength() + s.SimulationTime.BitLength() + s.RequestID.BitLength()
}

func (s StartResume) BodyType() dis.PduType  { return dis.PduTypeStartResume }
func (s StartResume) EncodeDIS() dis.PduBody { return s.Decode() }
