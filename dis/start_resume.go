package dis

/*
StartResume notifies that simulation time has started or resumed after
a freeze; StartResume-R is the reliable-service counterpart. Grounded
on original_source/dis-rs/src/common/start_resume/{model,parser,writer}.rs:
EntityId + EntityId + ClockTime(real-world) + ClockTime(simulation) +
u32 request id, 32 bytes.
*/
type StartResume struct {
	OriginatingID   EntityId
	ReceivingID     EntityId
	RealWorldTime   ClockTime
	SimulationTime  ClockTime
	RequestID       uint32
}

func NewStartResume() StartResume { return StartResume{} }

func (s StartResume) WithOriginatingID(id EntityId) StartResume  { s.OriginatingID = id; return s }
func (s StartResume) WithReceivingID(id EntityId) StartResume    { s.ReceivingID = id; return s }
func (s StartResume) WithRealWorldTime(t ClockTime) StartResume  { s.RealWorldTime = t; return s }
func (s StartResume) WithSimulationTime(t ClockTime) StartResume { s.SimulationTime = t; return s }
func (s StartResume) WithRequestID(id uint32) StartResume        { s.RequestID = id; return s }

func parseStartResumeFields(r *ByteReader) (StartResume, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return StartResume{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return StartResume{}, err
	}
	realWorldTime, err := ParseClockTime(r)
	if err != nil {
		return StartResume{}, err
	}
	simulationTime, err := ParseClockTime(r)
	if err != nil {
		return StartResume{}, err
	}
	requestID, err := r.TakeU32()
	if err != nil {
		return StartResume{}, err
	}
	return StartResume{
		OriginatingID:  originatingID,
		ReceivingID:    receivingID,
		RealWorldTime:  realWorldTime,
		SimulationTime: simulationTime,
		RequestID:      requestID,
	}, nil
}

func (s StartResume) serializeFields(w *ByteWriter) int {
	n := s.OriginatingID.SerializeDIS(w)
	n += s.ReceivingID.SerializeDIS(w)
	n += s.RealWorldTime.SerializeDIS(w)
	n += s.SimulationTime.SerializeDIS(w)
	w.PutU32(s.RequestID)
	return n + 4
}

func startResumeFieldsLengthBytes() int {
	return EntityIdLengthBytes*2 + ClockTimeLengthBytes*2 + 4
}

func parseStartResumeBody(r *ByteReader, _ Options) (PduBody, error) {
	return parseStartResumeFields(r)
}

func (s StartResume) SerializeDIS(w *ByteWriter) int { return s.serializeFields(w) }
func (s StartResume) BodyLengthBytes() int           { return startResumeFieldsLengthBytes() }
func (s StartResume) BodyType() PduType              { return PduTypeStartResume }
func (s StartResume) Originator() *EntityId          { return &s.OriginatingID }
func (s StartResume) Receiver() *EntityId            { return &s.ReceivingID }

// StartResumeR is StartResume sent via the reliable simulation
// management service; same wire shape, distinct PduType.
type StartResumeR struct {
	StartResume
}

func NewStartResumeR() StartResumeR { return StartResumeR{} }

func parseStartResumeRBody(r *ByteReader, _ Options) (PduBody, error) {
	fields, err := parseStartResumeFields(r)
	if err != nil {
		return nil, err
	}
	return StartResumeR{fields}, nil
}

func (s StartResumeR) SerializeDIS(w *ByteWriter) int { return s.serializeFields(w) }
func (s StartResumeR) BodyLengthBytes() int           { return startResumeFieldsLengthBytes() }
func (s StartResumeR) BodyType() PduType              { return PduTypeStartResumeR }
