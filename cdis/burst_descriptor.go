package cdis

import "github.com/discdis/gateway/dis"

// BurstDescriptor mirrors dis.BurstDescriptor, shared by Fire and Detonation.
type BurstDescriptor struct {
	Munition EntityType
	Warhead  UVInt16
	Fuse     UVInt16
	Quantity UVInt16
	Rate     UVInt16
}

func EncodeBurstDescriptor(b dis.BurstDescriptor) BurstDescriptor {
	return BurstDescriptor{
		Munition: EncodeEntityType(b.Munition),
		Warhead:  NewUVInt16(b.Warhead),
		Fuse:     NewUVInt16(b.Fuse),
		Quantity: NewUVInt16(b.Quantity),
		Rate:     NewUVInt16(b.Rate),
	}
}

func (b BurstDescriptor) Decode() dis.BurstDescriptor {
	return dis.BurstDescriptor{
		Munition: b.Munition.Decode(),
		Warhead:  b.Warhead.Value,
		Fuse:     b.Fuse.Value,
		Quantity: b.Quantity.Value,
		Rate:     b.Rate.Value,
	}
}

func ParseBurstDescriptor(r *BitReader) (BurstDescriptor, error) {
	var b BurstDescriptor
	var err error
	if b.Munition, err = ParseEntityType(r); err != nil {
		return BurstDescriptor{}, err
	}
	if b.Warhead, err = DecodeUVInt16(r); err != nil {
		return BurstDescriptor{}, err
	}
	if b.Fuse, err = DecodeUVInt16(r); err != nil {
		return BurstDescriptor{}, err
	}
	if b.Quantity, err = DecodeUVInt16(r); err != nil {
		return BurstDescriptor{}, err
	}
	if b.Rate, err = DecodeUVInt16(r); err != nil {
		return BurstDescriptor{}, err
	}
	return b, nil
}

func (b BurstDescriptor) SerializeDIS(w *BitWriter) error {
	if err := b.Munition.SerializeDIS(w); err != nil {
		return err
	}
	for _, f := range []UVInt16{b.Warhead, b.Fuse, b.Quantity, b.Rate} {
		if err := f.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (b BurstDescriptor) BitLength() int {
	return b.Munition.BitLength() + b.Warhead.BitLength() + b.Fuse.BitLength() + b.Quantity.BitLength() + b.Rate.BitLength()
}
