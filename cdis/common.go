package cdis

import "github.com/discdis/gateway/dis"

/*
EntityType and VariableParameter are the remaining shared records with
no scaling involved, carried through as VarInt-compressed fields
rather than the DIS fixed widths (spec.md §3 "~15% shared records").
*/

type EntityType struct {
	Kind        UVInt8
	Domain      UVInt8
	Country     UVInt16
	Category    UVInt8
	Subcategory UVInt8
	Specific    UVInt8
	Extra       UVInt8
}

func EncodeEntityType(e dis.EntityType) EntityType {
	return EntityType{
		Kind:        NewUVInt8(uint8(e.Kind)),
		Domain:      NewUVInt8(uint8(e.Domain)),
		Country:     NewUVInt16(e.Country),
		Category:    NewUVInt8(e.Category),
		Subcategory: NewUVInt8(e.Subcategory),
		Specific:    NewUVInt8(e.Specific),
		Extra:       NewUVInt8(e.Extra),
	}
}

func (e EntityType) Decode() dis.EntityType {
	return dis.EntityType{
		Kind:        dis.EntityKindFromWire(e.Kind.Value),
		Domain:      dis.DomainFromWire(e.Domain.Value),
		Country:     e.Country.Value,
		Category:    e.Category.Value,
		Subcategory: e.Subcategory.Value,
		Specific:    e.Specific.Value,
		Extra:       e.Extra.Value,
	}
}

func ParseEntityType(r *BitReader) (EntityType, error) {
	var e EntityType
	var err error
	if e.Kind, err = DecodeUVInt8(r); err != nil {
		return EntityType{}, err
	}
	if e.Domain, err = DecodeUVInt8(r); err != nil {
		return EntityType{}, err
	}
	if e.Country, err = DecodeUVInt16(r); err != nil {
		return EntityType{}, err
	}
	if e.Category, err = DecodeUVInt8(r); err != nil {
		return EntityType{}, err
	}
	if e.Subcategory, err = DecodeUVInt8(r); err != nil {
		return EntityType{}, err
	}
	if e.Specific, err = DecodeUVInt8(r); err != nil {
		return EntityType{}, err
	}
	if e.Extra, err = DecodeUVInt8(r); err != nil {
		return EntityType{}, err
	}
	return e, nil
}

func (e EntityType) SerializeDIS(w *BitWriter) error {
	for _, f := range []UVInt8{e.Kind, e.Domain} {
		if err := f.Encode(w); err != nil {
			return err
		}
	}
	if err := e.Country.Encode(w); err != nil {
		return err
	}
	for _, f := range []UVInt8{e.Category, e.Subcategory, e.Specific, e.Extra} {
		if err := f.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (e EntityType) BitLength() int {
	return e.Kind.BitLength() + e.Domain.BitLength() + e.Country.BitLength() +
		e.Category.BitLength() + e.Subcategory.BitLength() + e.Specific.BitLength() + e.Extra.BitLength()
}

// VariableParameter keeps its 8-bit record-type tag but packs the
// 15-byte payload as raw byte-aligned bits; C-DIS has no narrower
// per-variant layout for the family in spec.md's scope.
type VariableParameter struct {
	RecordType UVInt8
	Payload    [15]byte
}

func EncodeVariableParameter(v dis.VariableParameter) VariableParameter {
	return VariableParameter{RecordType: NewUVInt8(v.RecordType.Wire()), Payload: v.Payload}
}

func (v VariableParameter) Decode() dis.VariableParameter {
	return dis.VariableParameter{
		RecordType: dis.VariableParameterRecordTypeFromWire(v.RecordType.Value),
		Payload:    v.Payload,
	}
}

func ParseVariableParameter(r *BitReader) (VariableParameter, error) {
	tag, err := DecodeUVInt8(r)
	if err != nil {
		return VariableParameter{}, err
	}
	var vp VariableParameter
	vp.RecordType = tag
	for i := 0; i < 15; i++ {
		b, err := r.TakeUnsigned(8)
		if err != nil {
			return VariableParameter{}, err
		}
		vp.Payload[i] = byte(b)
	}
	return vp, nil
}

func (v VariableParameter) SerializeDIS(w *BitWriter) error {
	if err := v.RecordType.Encode(w); err != nil {
		return err
	}
	for _, b := range v.Payload {
		w.WriteUnsigned(uint64(b), 8)
	}
	return nil
}

func (v VariableParameter) BitLength() int { return v.RecordType.BitLength() + 15*8 }
