package cdis

import "testing"

func TestUVInt8BoundaryWidths(t *testing.T) {
	tests := []struct {
		v        uint8
		wantBits int
	}{
		{0, 3},
		{7, 3},
		{8, 8},
		{255, 8},
	}
	for _, tt := range tests {
		u := NewUVInt8(tt.v)
		if got := u.BitLength(); got != tt.wantBits {
			t.Errorf("NewUVInt8(%d).BitLength() = %d, want %d", tt.v, got, tt.wantBits)
		}
		w := NewBitWriter(4)
		if err := u.Encode(w); err != nil {
			t.Fatalf("Encode(%d): %v", tt.v, err)
		}
		w.AlignToByte()
		r := NewBitReader(w.Bytes())
		got, err := DecodeUVInt8(r)
		if err != nil {
			t.Fatalf("DecodeUVInt8: %v", err)
		}
		if got.Value != tt.v {
			t.Errorf("round-trip %d -> %d", tt.v, got.Value)
		}
	}
}

func TestUVInt16BoundaryWidths(t *testing.T) {
	tests := []struct {
		v        uint16
		wantBits int
	}{
		{0, 10},
		{255, 10},
		{256, 13},
		{2047, 13},
		{2048, 16},
		{16383, 16},
		{16384, 18},
		{65535, 18},
	}
	for _, tt := range tests {
		u := NewUVInt16(tt.v)
		if got := u.BitLength(); got != tt.wantBits {
			t.Errorf("NewUVInt16(%d).BitLength() = %d, want %d", tt.v, got, tt.wantBits)
		}
		w := NewBitWriter(4)
		if err := u.Encode(w); err != nil {
			t.Fatalf("Encode(%d): %v", tt.v, err)
		}
		w.AlignToByte()
		r := NewBitReader(w.Bytes())
		got, err := DecodeUVInt16(r)
		if err != nil {
			t.Fatalf("DecodeUVInt16: %v", err)
		}
		if got.Value != tt.v {
			t.Errorf("round-trip %d -> %d", tt.v, got.Value)
		}
	}
}

func TestSVInt14BoundaryWidths(t *testing.T) {
	tests := []struct {
		v        int16
		wantBits int
	}{
		{0, 6},
		{7, 6},
		{-8, 6},
		{8, 10},
		{-9, 10},
		{127, 10},
		{-128, 10},
		{128, 13},
		{1023, 13},
		{1024, 16},
		{-8192, 16},
		{8191, 16},
	}
	for _, tt := range tests {
		s := NewSVInt14(tt.v)
		if got := s.BitLength(); got != tt.wantBits {
			t.Errorf("NewSVInt14(%d).BitLength() = %d, want %d", tt.v, got, tt.wantBits)
		}
		w := NewBitWriter(4)
		if err := s.Encode(w); err != nil {
			t.Fatalf("Encode(%d): %v", tt.v, err)
		}
		w.AlignToByte()
		r := NewBitReader(w.Bytes())
		got, err := DecodeSVInt14(r)
		if err != nil {
			t.Fatalf("DecodeSVInt14: %v", err)
		}
		if got.Value != tt.v {
			t.Errorf("round-trip %d -> %d", tt.v, got.Value)
		}
	}
}

// TestVarIntMinimalityIsMonotonic checks a UVInt16's declared bit
// length never shrinks as the value it holds grows, sampling every
// 137th value; that each width is the smallest that fits is checked by
// the boundary-width tests above.
func TestVarIntMinimalityIsMonotonic(t *testing.T) {
	prev := 0
	for v := 0; v <= 65535; v += 137 {
		bits := NewUVInt16(uint16(v)).BitLength()
		if bits < prev {
			t.Fatalf("BitLength(%d) = %d, smaller than previous %d", v, bits, prev)
		}
		prev = bits
	}
}
