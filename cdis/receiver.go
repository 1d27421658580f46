package cdis

import "github.com/discdis/gateway/dis"

// Receiver mirrors dis.Receiver (spec.md §4.4); ReceivedPower keeps
// full float32 precision, matching the original's treatment of
// received signal strength as a measured quantity rather than a
// scaled kinematic field.
type Receiver struct {
	EntityID            EntityId
	RadioID             UVInt16
	ReceiverState       UVInt16
	ReceivedPower       float32
	TransmitterEntityID EntityId
	TransmitterRadioID  UVInt16
}

func EncodeReceiver(r dis.Receiver) Receiver {
	return Receiver{
		EntityID:            EncodeEntityId(r.EntityID),
		RadioID:             NewUVInt16(r.RadioID),
		ReceiverState:       NewUVInt16(uint16(r.ReceiverState)),
		ReceivedPower:       r.ReceivedPower,
		TransmitterEntityID: EncodeEntityId(r.TransmitterEntityID),
		TransmitterRadioID:  NewUVInt16(r.TransmitterRadioID),
	}
}

func (r Receiver) Decode() dis.Receiver {
	return dis.Receiver{
		EntityID:            r.EntityID.Decode(),
		RadioID:             r.RadioID.Value,
		ReceiverState:       dis.ReceiverStateFromWire(r.ReceiverState.Value),
		ReceivedPower:       r.ReceivedPower,
		TransmitterEntityID: r.TransmitterEntityID.Decode(),
		TransmitterRadioID:  r.TransmitterRadioID.Value,
	}
}

func parseReceiverBody(r *BitReader) (Body, error) {
	entityID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	radioID, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	state, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	power, err := r.TakeUnsigned(32)
	if err != nil {
		return nil, err
	}
	transmitterEntityID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	transmitterRadioID, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	return Receiver{
		EntityID: entityID, RadioID: radioID, ReceiverState: state,
		ReceivedPower:       float32FromBits(uint32(power)),
		TransmitterEntityID: transmitterEntityID, TransmitterRadioID: transmitterRadioID,
	}, nil
}

func (r Receiver) SerializeDIS(w *BitWriter) error {
	if err := r.EntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := r.RadioID.Encode(w); err != nil {
		return err
	}
	if err := r.ReceiverState.Encode(w); err != nil {
		return err
	}
	w.WriteUnsigned(uint64(float32Bits(r.ReceivedPower)), 32)
	if err := r.TransmitterEntityID.SerializeDIS(w); err != nil {
		return err
	}
	return r.TransmitterRadioID.Encode(w)
}

func (r Receiver) BodyBitLength() int {
	return r.EntityID.BitLength() + r.RadioID.BitLength() + r.ReceiverState.BitLength() + 32 +
		r.TransmitterEntityID.BitLength() + r.TransmitterRadioID.BitLength()
}

func (r Receiver) BodyType() dis.PduType  { return dis.PduTypeReceiver }
func (r Receiver) EncodeDIS() dis.PduBody { return r.Decode() }
