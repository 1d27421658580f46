package cdis

import "testing"

func TestBitWriterReaderUnsignedRoundTrip(t *testing.T) {
	w := NewBitWriter(4)
	w.WriteUnsigned(0, 1)
	w.WriteUnsigned(5, 3)
	w.WriteUnsigned(255, 8)
	w.WriteUnsigned(1<<20, 24)
	w.AlignToByte()

	r := NewBitReader(w.Bytes())
	if v, err := r.TakeUnsigned(1); err != nil || v != 0 {
		t.Fatalf("bit 1 = %d, %v", v, err)
	}
	if v, err := r.TakeUnsigned(3); err != nil || v != 5 {
		t.Fatalf("bits 3 = %d, %v", v, err)
	}
	if v, err := r.TakeUnsigned(8); err != nil || v != 255 {
		t.Fatalf("bits 8 = %d, %v", v, err)
	}
	if v, err := r.TakeUnsigned(24); err != nil || v != 1<<20 {
		t.Fatalf("bits 24 = %d, %v", v, err)
	}
}

func TestBitWriterReaderSignedRoundTrip(t *testing.T) {
	tests := []int64{0, -1, 1, -8, 7, -4096, 4095}
	w := NewBitWriter(8)
	for _, v := range tests {
		w.WriteSigned(v, 13)
	}
	w.AlignToByte()
	r := NewBitReader(w.Bytes())
	for _, want := range tests {
		got, err := r.TakeSigned(13)
		if err != nil {
			t.Fatalf("TakeSigned: %v", err)
		}
		if got != want {
			t.Errorf("TakeSigned() = %d, want %d", got, want)
		}
	}
}

func TestBitReaderRunsOutCleanly(t *testing.T) {
	r := NewBitReader([]byte{0xff})
	if _, err := r.TakeUnsigned(8); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if _, err := r.TakeUnsigned(1); err == nil {
		t.Fatal("expected error reading past end of buffer")
	}
}

func TestAlignToByteSkipsPadding(t *testing.T) {
	w := NewBitWriter(4)
	w.WriteUnsigned(1, 3)
	w.AlignToByte()
	w.WriteUnsigned(0xab, 8)

	r := NewBitReader(w.Bytes())
	if _, err := r.TakeUnsigned(3); err != nil {
		t.Fatalf("TakeUnsigned(3): %v", err)
	}
	r.AlignToByte()
	v, err := r.TakeUnsigned(8)
	if err != nil {
		t.Fatalf("TakeUnsigned(8): %v", err)
	}
	if v != 0xab {
		t.Errorf("got %x, want 0xab", v)
	}
}
