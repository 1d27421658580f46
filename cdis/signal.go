package cdis

import "github.com/discdis/gateway/dis"

// Signal mirrors dis.Signal; its payload is the fields-present-bitmap
// example spec.md §4.4 names for Signal — a single bit gates whether
// any encoded audio follows the fixed header fields.
type Signal struct {
	EntityID       EntityId
	RadioID        UVInt16
	EncodingScheme UVInt16
	TdlType        UVInt16
	SampleRate     UVInt32
	SampleCount    UVInt16
	DataPresent    bool
	Data           []byte
}

func EncodeSignal(s dis.Signal) Signal {
	return Signal{
		EntityID:       EncodeEntityId(s.EntityID),
		RadioID:        NewUVInt16(s.RadioID),
		EncodingScheme: NewUVInt16(s.EncodingScheme),
		TdlType:        NewUVInt16(s.TdlType),
		SampleRate:     NewUVInt32(s.SampleRate),
		SampleCount:    NewUVInt16(s.SampleCount),
		DataPresent:    len(s.Data) > 0,
		Data:           s.Data,
	}
}

func (s Signal) Decode() dis.Signal {
	data := s.Data
	if !s.DataPresent {
		data = nil
	}
	return dis.Signal{
		EntityID:       s.EntityID.Decode(),
		RadioID:        s.RadioID.Value,
		EncodingScheme: s.EncodingScheme.Value,
		TdlType:        s.TdlType.Value,
		SampleRate:     s.SampleRate.Value,
		SampleCount:    s.SampleCount.Value,
		Data:           data,
	}
}

func parseSignalBody(r *BitReader) (Body, error) {
	entityID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	radioID, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	encoding, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	tdlType, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	sampleRate, err := DecodeUVInt32(r)
	if err != nil {
		return nil, err
	}
	sampleCount, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	presentBit, err := r.TakeUnsigned(1)
	if err != nil {
		return nil, err
	}
	present := presentBit != 0
	var data []byte
	if present {
		length, err := DecodeUVInt32(r)
		if err != nil {
			return nil, err
		}
		r.AlignToByte()
		data = make([]byte, length.Value)
		for i := range data {
			b, err := r.TakeUnsigned(8)
			if err != nil {
				return nil, err
			}
			data[i] = byte(b)
		}
	}
	return Signal{
		EntityID: entityID, RadioID: radioID, EncodingScheme: encoding, TdlType: tdlType,
		SampleRate: sampleRate, SampleCount: sampleCount, DataPresent: present, Data: data,
	}, nil
}

func (s Signal) SerializeDIS(w *BitWriter) error {
	if err := s.EntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := s.RadioID.Encode(w); err != nil {
		return err
	}
	if err := s.EncodingScheme.Encode(w); err != nil {
		return err
	}
	if err := s.TdlType.Encode(w); err != nil {
		return err
	}
	if err := s.SampleRate.Encode(w); err != nil {
		return err
	}
	if err := s.SampleCount.Encode(w); err != nil {
		return err
	}
	if !s.DataPresent {
		w.WriteUnsigned(0, 1)
		return nil
	}
	w.WriteUnsigned(1, 1)
	if err := NewUVInt32(uint32(len(s.Data))).Encode(w); err != nil {
		return err
	}
	w.AlignToByte()
	for _, b := range s.Data {
		w.WriteUnsigned(uint64(b), 8)
	}
	return nil
}

func (s Signal) BodyBitLength() int {
	n := s.EntityID.BitLength() + s.RadioID.BitLength() + s.EncodingScheme.BitLength() +
		s.TdlType.BitLength() + s.SampleRate.BitLength() + s.SampleCount.BitLength() + 1
	if s.DataPresent {
		n += NewUVInt32(uint32(len(s.Data))).BitLength() + len(s.Data)*8
	}
	return n
}

func (s Signal) BodyType() dis.PduType  { return dis.PduTypeSignal }
func (s Signal) EncodeDIS() dis.PduBody { return s.Decode() }
