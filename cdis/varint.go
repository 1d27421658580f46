package cdis

/*
VarInt types are C-DIS's self-describing variable-width integers
(spec.md §3): a leading flag selects a value width from a
type-specific table; encode picks the smallest width that represents
the value losslessly, decode is total over every flag value. Grounded
on the width tables in spec.md §3 — no original_source file for this
record survived filtering (cdis-assemble's own types.rs/records.rs were
dropped by the retrieval filter), so the widths below are taken
directly from the specification rather than reconstructed from Rust
source.
*/

type varIntWidthTable struct {
	flagBits int
	widths   []int
}

func (t varIntWidthTable) widthForFlag(flag int) int { return t.widths[flag] }

func (t varIntWidthTable) flagForWidth(width int) (int, bool) {
	for i, w := range t.widths {
		if w == width {
			return i, true
		}
	}
	return 0, false
}

func (t varIntWidthTable) smallestUnsignedWidth(v uint64) (int, int, bool) {
	for i, w := range t.widths {
		if w >= 64 || v < uint64(1)<<uint(w) {
			return i, w, true
		}
	}
	return 0, 0, false
}

func (t varIntWidthTable) smallestSignedWidth(v int64) (int, int, bool) {
	for i, w := range t.widths {
		lo := -(int64(1) << uint(w-1))
		hi := int64(1)<<uint(w-1) - 1
		if v >= lo && v <= hi {
			return i, w, true
		}
	}
	return 0, 0, false
}

var (
	uvint8Table  = varIntWidthTable{flagBits: 1, widths: []int{3, 8}}
	uvint16Table = varIntWidthTable{flagBits: 2, widths: []int{8, 11, 14, 16}}
	uvint32Table = varIntWidthTable{flagBits: 2, widths: []int{8, 16, 24, 32}}
	svint12Table = varIntWidthTable{flagBits: 2, widths: []int{3, 6, 9, 12}}
	svint14Table = varIntWidthTable{flagBits: 2, widths: []int{4, 8, 11, 14}}
	svint16Table = varIntWidthTable{flagBits: 2, widths: []int{5, 9, 13, 16}}
	svint24Table = varIntWidthTable{flagBits: 2, widths: []int{8, 13, 19, 24}}
)

// UVInt8 is an unsigned VarInt with value widths {3, 8} bits.
type UVInt8 struct{ Value uint8 }

func NewUVInt8(v uint8) UVInt8 { return UVInt8{Value: v} }

func DecodeUVInt8(r *BitReader) (UVInt8, error) {
	v, err := decodeUnsignedVarInt(r, uvint8Table)
	if err != nil {
		return UVInt8{}, err
	}
	return UVInt8{Value: uint8(v)}, nil
}

func (u UVInt8) Encode(w *BitWriter) error {
	return encodeUnsignedVarInt(w, uvint8Table, uint64(u.Value), "UVInt8")
}

func (u UVInt8) BitLength() int {
	_, width, _ := uvint8Table.smallestUnsignedWidth(uint64(u.Value))
	return uvint8Table.flagBits + width
}

// UVInt16 is an unsigned VarInt with value widths {8, 11, 14, 16} bits.
type UVInt16 struct{ Value uint16 }

func NewUVInt16(v uint16) UVInt16 { return UVInt16{Value: v} }

func DecodeUVInt16(r *BitReader) (UVInt16, error) {
	v, err := decodeUnsignedVarInt(r, uvint16Table)
	if err != nil {
		return UVInt16{}, err
	}
	return UVInt16{Value: uint16(v)}, nil
}

func (u UVInt16) Encode(w *BitWriter) error {
	return encodeUnsignedVarInt(w, uvint16Table, uint64(u.Value), "UVInt16")
}

func (u UVInt16) BitLength() int {
	_, width, _ := uvint16Table.smallestUnsignedWidth(uint64(u.Value))
	return uvint16Table.flagBits + width
}

// UVInt32 is an unsigned VarInt with value widths {8, 16, 24, 32} bits.
type UVInt32 struct{ Value uint32 }

func NewUVInt32(v uint32) UVInt32 { return UVInt32{Value: v} }

func DecodeUVInt32(r *BitReader) (UVInt32, error) {
	v, err := decodeUnsignedVarInt(r, uvint32Table)
	if err != nil {
		return UVInt32{}, err
	}
	return UVInt32{Value: uint32(v)}, nil
}

func (u UVInt32) Encode(w *BitWriter) error {
	return encodeUnsignedVarInt(w, uvint32Table, uint64(u.Value), "UVInt32")
}

func (u UVInt32) BitLength() int {
	_, width, _ := uvint32Table.smallestUnsignedWidth(uint64(u.Value))
	return uvint32Table.flagBits + width
}

// SVInt12 is a signed VarInt with value widths {3, 6, 9, 12} bits.
type SVInt12 struct{ Value int16 }

func NewSVInt12(v int16) SVInt12 { return SVInt12{Value: v} }

func DecodeSVInt12(r *BitReader) (SVInt12, error) {
	v, err := decodeSignedVarInt(r, svint12Table)
	if err != nil {
		return SVInt12{}, err
	}
	return SVInt12{Value: int16(v)}, nil
}

func (s SVInt12) Encode(w *BitWriter) error {
	return encodeSignedVarInt(w, svint12Table, int64(s.Value), "SVInt12")
}

func (s SVInt12) BitLength() int {
	_, width, _ := svint12Table.smallestSignedWidth(int64(s.Value))
	return svint12Table.flagBits + width
}

// SVInt14 is a signed VarInt with value widths {4, 8, 11, 14} bits.
type SVInt14 struct{ Value int16 }

func NewSVInt14(v int16) SVInt14 { return SVInt14{Value: v} }

func DecodeSVInt14(r *BitReader) (SVInt14, error) {
	v, err := decodeSignedVarInt(r, svint14Table)
	if err != nil {
		return SVInt14{}, err
	}
	return SVInt14{Value: int16(v)}, nil
}

func (s SVInt14) Encode(w *BitWriter) error {
	return encodeSignedVarInt(w, svint14Table, int64(s.Value), "SVInt14")
}

func (s SVInt14) BitLength() int {
	_, width, _ := svint14Table.smallestSignedWidth(int64(s.Value))
	return svint14Table.flagBits + width
}

// SVInt16 is a signed VarInt with value widths {5, 9, 13, 16} bits.
type SVInt16 struct{ Value int16 }

func NewSVInt16(v int16) SVInt16 { return SVInt16{Value: v} }

func DecodeSVInt16(r *BitReader) (SVInt16, error) {
	v, err := decodeSignedVarInt(r, svint16Table)
	if err != nil {
		return SVInt16{}, err
	}
	return SVInt16{Value: int16(v)}, nil
}

func (s SVInt16) Encode(w *BitWriter) error {
	return encodeSignedVarInt(w, svint16Table, int64(s.Value), "SVInt16")
}

func (s SVInt16) BitLength() int {
	_, width, _ := svint16Table.smallestSignedWidth(int64(s.Value))
	return svint16Table.flagBits + width
}

// SVInt24 is a signed VarInt with value widths {8, 13, 19, 24} bits.
type SVInt24 struct{ Value int32 }

func NewSVInt24(v int32) SVInt24 { return SVInt24{Value: v} }

func DecodeSVInt24(r *BitReader) (SVInt24, error) {
	v, err := decodeSignedVarInt(r, svint24Table)
	if err != nil {
		return SVInt24{}, err
	}
	return SVInt24{Value: int32(v)}, nil
}

func (s SVInt24) Encode(w *BitWriter) error {
	return encodeSignedVarInt(w, svint24Table, int64(s.Value), "SVInt24")
}

func (s SVInt24) BitLength() int {
	_, width, _ := svint24Table.smallestSignedWidth(int64(s.Value))
	return svint24Table.flagBits + width
}

func decodeUnsignedVarInt(r *BitReader, t varIntWidthTable) (uint64, error) {
	flag, err := r.TakeUnsigned(t.flagBits)
	if err != nil {
		return 0, err
	}
	width := t.widthForFlag(int(flag))
	return r.TakeUnsigned(width)
}

func encodeUnsignedVarInt(w *BitWriter, t varIntWidthTable, v uint64, typeName string) error {
	flag, width, ok := t.smallestUnsignedWidth(v)
	if !ok {
		return EncodeOverflowError{Type: typeName, Value: int64(v)}
	}
	w.WriteUnsigned(uint64(flag), t.flagBits)
	w.WriteUnsigned(v, width)
	return nil
}

func decodeSignedVarInt(r *BitReader, t varIntWidthTable) (int64, error) {
	flag, err := r.TakeUnsigned(t.flagBits)
	if err != nil {
		return 0, err
	}
	width := t.widthForFlag(int(flag))
	return r.TakeSigned(width)
}

func encodeSignedVarInt(w *BitWriter, t varIntWidthTable, v int64, typeName string) error {
	flag, width, ok := t.smallestSignedWidth(v)
	if !ok {
		return EncodeOverflowError{Type: typeName, Value: v}
	}
	w.WriteUnsigned(uint64(flag), t.flagBits)
	w.WriteSigned(v, width)
	return nil
}
