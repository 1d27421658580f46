package dis

/*
Receiver reports the receive state of a radio and, when it is locked
onto a transmission, which Transmitter it is receiving. Grounded on
original_source/dis-rs/src/common/receiver/{model,parser,writer}.rs:
EntityId + u16 radio id + u16 receiver state + u16 padding + float32
received power + EntityId (transmitter) + u16 transmitter radio id.
*/
type Receiver struct {
	EntityID             EntityId
	RadioID              uint16
	ReceiverState        ReceiverState
	ReceivedPower        float32
	TransmitterEntityID  EntityId
	TransmitterRadioID   uint16
}

func NewReceiver() Receiver { return Receiver{} }

func (r Receiver) WithEntityID(id EntityId) Receiver       { r.EntityID = id; return r }
func (r Receiver) WithRadioID(id uint16) Receiver           { r.RadioID = id; return r }
func (r Receiver) WithReceiverState(s ReceiverState) Receiver {
	r.ReceiverState = s
	return r
}
func (r Receiver) WithReceivedPower(p float32) Receiver { r.ReceivedPower = p; return r }
func (r Receiver) WithTransmitterEntityID(id EntityId) Receiver {
	r.TransmitterEntityID = id
	return r
}
func (r Receiver) WithTransmitterRadioID(id uint16) Receiver {
	r.TransmitterRadioID = id
	return r
}

func parseReceiverBody(r *ByteReader, _ Options) (PduBody, error) {
	entityID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	radioID, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	state, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	power, err := r.TakeF32()
	if err != nil {
		return nil, err
	}
	transmitterEntityID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	transmitterRadioID, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	return Receiver{
		EntityID:            entityID,
		RadioID:             radioID,
		ReceiverState:       ReceiverStateFromWire(state),
		ReceivedPower:       power,
		TransmitterEntityID: transmitterEntityID,
		TransmitterRadioID:  transmitterRadioID,
	}, nil
}

func (r Receiver) SerializeDIS(w *ByteWriter) int {
	n := r.EntityID.SerializeDIS(w)
	w.PutU16(r.RadioID)
	w.PutU16(r.ReceiverState.Wire())
	w.PadZero(2)
	n += 2 + 2 + 2
	w.PutF32(r.ReceivedPower)
	n += 4
	n += r.TransmitterEntityID.SerializeDIS(w)
	w.PutU16(r.TransmitterRadioID)
	n += 2
	return n
}

func (r Receiver) BodyLengthBytes() int {
	return EntityIdLengthBytes + 2 + 2 + 2 + 4 + EntityIdLengthBytes + 2
}

func (r Receiver) BodyType() PduType     { return PduTypeReceiver }
func (r Receiver) Originator() *EntityId { return &r.TransmitterEntityID }
func (r Receiver) Receiver() *EntityId   { return &r.EntityID }
