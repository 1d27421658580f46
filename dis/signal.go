package dis

/*
Signal carries encoded radio traffic (voice, data, or TDL waveform)
transmitted by a radio. Grounded on
original_source/dis-rs/src/common/signal/{model,parser,writer}.rs:
EntityId + u16 radio id + u16 encoding scheme + u16 tdl type + u32
sample rate + u16 data length in bits + u16 sample count + data bytes
(padded to a 4-byte boundary).
*/
type Signal struct {
	EntityID       EntityId
	RadioID        uint16
	EncodingScheme uint16
	TdlType        uint16
	SampleRate     uint32
	SampleCount    uint16
	Data           []byte
}

func NewSignal() Signal { return Signal{} }

func (s Signal) WithEntityID(id EntityId) Signal            { s.EntityID = id; return s }
func (s Signal) WithRadioID(id uint16) Signal                { s.RadioID = id; return s }
func (s Signal) WithEncodingScheme(e uint16) Signal          { s.EncodingScheme = e; return s }
func (s Signal) WithTdlType(t uint16) Signal                 { s.TdlType = t; return s }
func (s Signal) WithSampleRate(r uint32) Signal              { s.SampleRate = r; return s }
func (s Signal) WithSampleCount(c uint16) Signal             { s.SampleCount = c; return s }
func (s Signal) WithData(data []byte) Signal                 { s.Data = data; return s }

func parseSignalBody(r *ByteReader, _ Options) (PduBody, error) {
	entityID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	radioID, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	encoding, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	tdlType, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	sampleRate, err := r.TakeU32()
	if err != nil {
		return nil, err
	}
	dataLengthBits, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	sampleCount, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	dataLengthBytes := (int((dataLengthBits+7)/8) + 3) &^ 3
	data, err := r.TakeN(dataLengthBytes)
	if err != nil {
		return nil, err
	}
	return Signal{
		EntityID:       entityID,
		RadioID:        radioID,
		EncodingScheme: encoding,
		TdlType:        tdlType,
		SampleRate:     sampleRate,
		SampleCount:    sampleCount,
		Data:           data,
	}, nil
}

func (s Signal) SerializeDIS(w *ByteWriter) int {
	n := s.EntityID.SerializeDIS(w)
	w.PutU16(s.RadioID)
	w.PutU16(s.EncodingScheme)
	w.PutU16(s.TdlType)
	n += 2 + 2 + 2
	w.PutU32(s.SampleRate)
	n += 4
	w.PutU16(uint16(len(s.Data) * 8))
	w.PutU16(s.SampleCount)
	n += 2 + 2
	w.PutN(s.Data)
	padded := (len(s.Data) + 3) &^ 3
	w.PadZero(padded - len(s.Data))
	n += padded
	return n
}

func (s Signal) BodyLengthBytes() int {
	return EntityIdLengthBytes + 2 + 2 + 2 + 4 + 2 + 2 + (len(s.Data)+3)&^3
}

func (s Signal) BodyType() PduType     { return PduTypeSignal }
func (s Signal) Originator() *EntityId { return &s.EntityID }
func (s Signal) Receiver() *EntityId   { return nil }
