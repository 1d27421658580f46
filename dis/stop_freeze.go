package dis

/*
StopFreeze notifies that simulation time should stop or freeze at a
given real-world time; StopFreeze-R is the reliable-service
counterpart. Grounded on
original_source/dis-rs/src/common/stop_freeze/{model,parser,writer}.rs:
EntityId + EntityId + ClockTime + u8 reason + u8 frozen-behavior flags +
u16 padding + u32 request id, 28 bytes.
*/

// StopFreezeReason enumerates why the simulation is being stopped.
type StopFreezeReason uint8

const (
	StopFreezeReasonOther              StopFreezeReason = 0
	StopFreezeReasonRecess             StopFreezeReason = 1
	StopFreezeReasonTermination        StopFreezeReason = 2
	StopFreezeReasonSystemFailure      StopFreezeReason = 3
	StopFreezeReasonSecurityViolation  StopFreezeReason = 4
	StopFreezeReasonEntityReconstitution StopFreezeReason = 5
	StopFreezeReasonStopForReset       StopFreezeReason = 6
	StopFreezeReasonStopForRestart     StopFreezeReason = 7
	StopFreezeReasonAbortTrainingReturnToTacticalOps StopFreezeReason = 8
)

func StopFreezeReasonFromWire(code uint8) StopFreezeReason {
	switch code {
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return StopFreezeReason(code)
	default:
		return StopFreezeReasonOther
	}
}

func (s StopFreezeReason) Wire() uint8 { return uint8(s) }

// FrozenBehavior packs the three run/transmit/receive frozen-behavior
// bits defined for StopFreeze (spec.md §4.4 record catalog).
type FrozenBehavior struct {
	RunSimulationClock bool
	TransmitPdus       bool
	ReceivePdus        bool
}

func frozenBehaviorFromWire(b uint8) FrozenBehavior {
	return FrozenBehavior{
		RunSimulationClock: b&0x01 != 0,
		TransmitPdus:       b&0x02 != 0,
		ReceivePdus:        b&0x04 != 0,
	}
}

func (f FrozenBehavior) Wire() uint8 {
	var b uint8
	if f.RunSimulationClock {
		b |= 0x01
	}
	if f.TransmitPdus {
		b |= 0x02
	}
	if f.ReceivePdus {
		b |= 0x04
	}
	return b
}

type StopFreeze struct {
	OriginatingID  EntityId
	ReceivingID    EntityId
	RealWorldTime  ClockTime
	Reason         StopFreezeReason
	FrozenBehavior FrozenBehavior
	RequestID      uint32
}

func NewStopFreeze() StopFreeze { return StopFreeze{} }

func (s StopFreeze) WithOriginatingID(id EntityId) StopFreeze        { s.OriginatingID = id; return s }
func (s StopFreeze) WithReceivingID(id EntityId) StopFreeze          { s.ReceivingID = id; return s }
func (s StopFreeze) WithRealWorldTime(t ClockTime) StopFreeze        { s.RealWorldTime = t; return s }
func (s StopFreeze) WithReason(r StopFreezeReason) StopFreeze        { s.Reason = r; return s }
func (s StopFreeze) WithFrozenBehavior(b FrozenBehavior) StopFreeze  { s.FrozenBehavior = b; return s }
func (s StopFreeze) WithRequestID(id uint32) StopFreeze              { s.RequestID = id; return s }

func parseStopFreezeFields(r *ByteReader) (StopFreeze, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return StopFreeze{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return StopFreeze{}, err
	}
	realWorldTime, err := ParseClockTime(r)
	if err != nil {
		return StopFreeze{}, err
	}
	reason, err := r.TakeU8()
	if err != nil {
		return StopFreeze{}, err
	}
	behavior, err := r.TakeU8()
	if err != nil {
		return StopFreeze{}, err
	}
	if err := r.Skip(2); err != nil {
		return StopFreeze{}, err
	}
	requestID, err := r.TakeU32()
	if err != nil {
		return StopFreeze{}, err
	}
	return StopFreeze{
		OriginatingID:  originatingID,
		ReceivingID:    receivingID,
		RealWorldTime:  realWorldTime,
		Reason:         StopFreezeReasonFromWire(reason),
		FrozenBehavior: frozenBehaviorFromWire(behavior),
		RequestID:      requestID,
	}, nil
}

func (s StopFreeze) serializeFields(w *ByteWriter) int {
	n := s.OriginatingID.SerializeDIS(w)
	n += s.ReceivingID.SerializeDIS(w)
	n += s.RealWorldTime.SerializeDIS(w)
	w.PutU8(s.Reason.Wire())
	w.PutU8(s.FrozenBehavior.Wire())
	w.PadZero(2)
	w.PutU32(s.RequestID)
	return n + 1 + 1 + 2 + 4
}

func stopFreezeFieldsLengthBytes() int {
	return EntityIdLengthBytes*2 + ClockTimeLengthBytes + 1 + 1 + 2 + 4
}

func parseStopFreezeBody(r *ByteReader, _ Options) (PduBody, error) {
	return parseStopFreezeFields(r)
}

func (s StopFreeze) SerializeDIS(w *ByteWriter) int { return s.serializeFields(w) }
func (s StopFreeze) BodyLengthBytes() int           { return stopFreezeFieldsLengthBytes() }
func (s StopFreeze) BodyType() PduType              { return PduTypeStopFreeze }
func (s StopFreeze) Originator() *EntityId          { return &s.OriginatingID }
func (s StopFreeze) Receiver() *EntityId            { return &s.ReceivingID }

// StopFreezeR is StopFreeze sent via the reliable simulation management
// service; same wire shape, distinct PduType.
type StopFreezeR struct {
	StopFreeze
}

func NewStopFreezeR() StopFreezeR { return StopFreezeR{} }

func parseStopFreezeRBody(r *ByteReader, _ Options) (PduBody, error) {
	fields, err := parseStopFreezeFields(r)
	if err != nil {
		return nil, err
	}
	return StopFreezeR{fields}, nil
}

func (s StopFreezeR) SerializeDIS(w *ByteWriter) int { return s.serializeFields(w) }
func (s StopFreezeR) BodyLengthBytes() int           { return stopFreezeFieldsLengthBytes() }
func (s StopFreezeR) BodyType() PduType              { return PduTypeStopFreezeR }
