package cdis

import "github.com/discdis/gateway/dis"

/*
Datum records mirror dis.FixedDatum/VariableDatum/DatumSpecification,
grounded on the same shared-records family (spec.md §3 "datum
records"). Counts are UVInt8 per spec.md §4.4's "count... serialized
as a UVINT (C-DIS)" rule rather than carried as a fixed 32-bit field;
variable datum payloads stay byte-aligned so arbitrary-length data can
be read back without a bit-level length table, the same trade-off
start_resume/model.rs documents for oversized datum payloads.
*/

type FixedDatum struct {
	ID    UVInt32
	Value uint32
}

func EncodeFixedDatum(d dis.FixedDatum) FixedDatum {
	return FixedDatum{ID: NewUVInt32(d.ID), Value: d.Value}
}

func (d FixedDatum) Decode() dis.FixedDatum {
	return dis.FixedDatum{ID: d.ID.Value, Value: d.Value}
}

func ParseFixedDatum(r *BitReader) (FixedDatum, error) {
	id, err := DecodeUVInt32(r)
	if err != nil {
		return FixedDatum{}, err
	}
	v, err := r.TakeUnsigned(32)
	if err != nil {
		return FixedDatum{}, err
	}
	return FixedDatum{ID: id, Value: uint32(v)}, nil
}

func (d FixedDatum) SerializeDIS(w *BitWriter) error {
	if err := d.ID.Encode(w); err != nil {
		return err
	}
	w.WriteUnsigned(uint64(d.Value), 32)
	return nil
}

func (d FixedDatum) BitLength() int { return d.ID.BitLength() + 32 }

type VariableDatum struct {
	ID   UVInt32
	Data []byte
}

func EncodeVariableDatum(d dis.VariableDatum) VariableDatum {
	return VariableDatum{ID: NewUVInt32(d.ID), Data: d.Data}
}

func (d VariableDatum) Decode() dis.VariableDatum {
	return dis.VariableDatum{ID: d.ID.Value, LengthBits: uint32(len(d.Data) * 8), Data: d.Data}
}

func ParseVariableDatum(r *BitReader) (VariableDatum, error) {
	id, err := DecodeUVInt32(r)
	if err != nil {
		return VariableDatum{}, err
	}
	length, err := DecodeUVInt32(r)
	if err != nil {
		return VariableDatum{}, err
	}
	r.AlignToByte()
	data := make([]byte, length.Value)
	for i := range data {
		b, err := r.TakeUnsigned(8)
		if err != nil {
			return VariableDatum{}, err
		}
		data[i] = byte(b)
	}
	return VariableDatum{ID: id, Data: data}, nil
}

func (d VariableDatum) SerializeDIS(w *BitWriter) error {
	if err := d.ID.Encode(w); err != nil {
		return err
	}
	if err := NewUVInt32(uint32(len(d.Data))).Encode(w); err != nil {
		return err
	}
	w.AlignToByte()
	for _, b := range d.Data {
		w.WriteUnsigned(uint64(b), 8)
	}
	return nil
}

func (d VariableDatum) BitLength() int {
	return d.ID.BitLength() + NewUVInt32(uint32(len(d.Data))).BitLength() + len(d.Data)*8
}

type DatumSpecification struct {
	FixedDatums    []FixedDatum
	VariableDatums []VariableDatum
}

func EncodeDatumSpecification(d dis.DatumSpecification) DatumSpecification {
	fixed := make([]FixedDatum, len(d.FixedDatums))
	for i, fd := range d.FixedDatums {
		fixed[i] = EncodeFixedDatum(fd)
	}
	variable := make([]VariableDatum, len(d.VariableDatums))
	for i, vd := range d.VariableDatums {
		variable[i] = EncodeVariableDatum(vd)
	}
	return DatumSpecification{FixedDatums: fixed, VariableDatums: variable}
}

func (d DatumSpecification) Decode() dis.DatumSpecification {
	fixed := make([]dis.FixedDatum, len(d.FixedDatums))
	for i, fd := range d.FixedDatums {
		fixed[i] = fd.Decode()
	}
	variable := make([]dis.VariableDatum, len(d.VariableDatums))
	for i, vd := range d.VariableDatums {
		variable[i] = vd.Decode()
	}
	return dis.NewDatumSpecification(fixed, variable)
}

func ParseDatumSpecification(r *BitReader) (DatumSpecification, error) {
	numFixed, err := DecodeUVInt8(r)
	if err != nil {
		return DatumSpecification{}, err
	}
	numVariable, err := DecodeUVInt8(r)
	if err != nil {
		return DatumSpecification{}, err
	}
	fixed := make([]FixedDatum, 0, numFixed.Value)
	for i := uint8(0); i < numFixed.Value; i++ {
		fd, err := ParseFixedDatum(r)
		if err != nil {
			return DatumSpecification{}, err
		}
		fixed = append(fixed, fd)
	}
	variable := make([]VariableDatum, 0, numVariable.Value)
	for i := uint8(0); i < numVariable.Value; i++ {
		vd, err := ParseVariableDatum(r)
		if err != nil {
			return DatumSpecification{}, err
		}
		variable = append(variable, vd)
	}
	return DatumSpecification{FixedDatums: fixed, VariableDatums: variable}, nil
}

func (d DatumSpecification) SerializeDIS(w *BitWriter) error {
	if err := NewUVInt8(uint8(len(d.FixedDatums))).Encode(w); err != nil {
		return err
	}
	if err := NewUVInt8(uint8(len(d.VariableDatums))).Encode(w); err != nil {
		return err
	}
	for _, fd := range d.FixedDatums {
		if err := fd.SerializeDIS(w); err != nil {
			return err
		}
	}
	for _, vd := range d.VariableDatums {
		if err := vd.SerializeDIS(w); err != nil {
			return err
		}
	}
	return nil
}

func (d DatumSpecification) BitLength() int {
	n := NewUVInt8(uint8(len(d.FixedDatums))).BitLength() + NewUVInt8(uint8(len(d.VariableDatums))).BitLength()
	for _, fd := range d.FixedDatums {
		n += fd.BitLength()
	}
	for _, vd := range d.VariableDatums {
		n += vd.BitLength()
	}
	return n
}
