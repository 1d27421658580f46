package dis

import (
	"encoding/binary"
	"math"
)

/*
ByteReader is a cursor over a contiguous, big-endian byte sequence.

Every take operation advances the cursor (a peek does not), and every
take/peek fails with NotEnoughInputError when fewer bytes remain than
requested; the cursor
never rewinds (no seek), mirroring the DIS standard's byte-aligned,
single-pass PDU layout.
*/
type ByteReader struct {
	data []byte
	pos  int
}

// NewByteReader wraps data for sequential big-endian reads.
func NewByteReader(data []byte) *ByteReader {
	return &ByteReader{data: data}
}

// Pos returns the current cursor position in bytes.
func (r *ByteReader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *ByteReader) Remaining() int { return len(r.data) - r.pos }

func (r *ByteReader) need(n int) error {
	if r.Remaining() < n {
		return NotEnoughInputError{Need: n, Have: r.Remaining()}
	}
	return nil
}

// PeekU8 reads the next byte without advancing the cursor.
func (r *ByteReader) PeekU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	return r.data[r.pos], nil
}

// TakeU8 reads and consumes one byte.
func (r *ByteReader) TakeU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// TakeU16 reads and consumes a big-endian uint16.
func (r *ByteReader) TakeU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// TakeI16 reads and consumes a big-endian int16.
func (r *ByteReader) TakeI16() (int16, error) {
	v, err := r.TakeU16()
	return int16(v), err
}

// TakeU32 reads and consumes a big-endian uint32.
func (r *ByteReader) TakeU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// TakeI32 reads and consumes a big-endian int32.
func (r *ByteReader) TakeI32() (int32, error) {
	v, err := r.TakeU32()
	return int32(v), err
}

// TakeU64 reads and consumes a big-endian uint64.
func (r *ByteReader) TakeU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

// TakeF32 reads and consumes a big-endian IEEE-754 float32.
func (r *ByteReader) TakeF32() (float32, error) {
	v, err := r.TakeU32()
	return math.Float32frombits(v), err
}

// TakeF64 reads and consumes a big-endian IEEE-754 float64.
func (r *ByteReader) TakeF64() (float64, error) {
	v, err := r.TakeU64()
	return math.Float64frombits(v), err
}

// TakeN consumes and returns the next n bytes.
func (r *ByteReader) TakeN(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.data[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

// Skip advances the cursor by n bytes without returning them; used to
// consume declared DIS padding.
func (r *ByteReader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

/*
ByteWriter is a growable big-endian byte buffer. It is caller-owned for
the duration of a single serialize call, same as the DIS standard's
buffer-ownership model in spec.md §5.
*/
type ByteWriter struct {
	buf []byte
}

// NewByteWriter returns an empty, growable byte writer.
func NewByteWriter() *ByteWriter {
	return &ByteWriter{}
}

// Bytes returns the accumulated buffer.
func (w *ByteWriter) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *ByteWriter) Len() int { return len(w.buf) }

func (w *ByteWriter) PutU8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *ByteWriter) PutU16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *ByteWriter) PutI16(v int16) { w.PutU16(uint16(v)) }

func (w *ByteWriter) PutU32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *ByteWriter) PutI32(v int32) { w.PutU32(uint32(v)) }

func (w *ByteWriter) PutU64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *ByteWriter) PutF32(v float32) { w.PutU32(math.Float32bits(v)) }

func (w *ByteWriter) PutF64(v float64) { w.PutU64(math.Float64bits(v)) }

// PutN appends raw bytes verbatim.
func (w *ByteWriter) PutN(b []byte) {
	w.buf = append(w.buf, b...)
}

// PadZero appends n zero bytes; writers must emit declared padding.
func (w *ByteWriter) PadZero(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}
