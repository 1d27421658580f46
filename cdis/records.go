package cdis

import "github.com/discdis/gateway/dis"

/*
Shared records mirror dis package types field-for-field but encode
each field as a VarInt or fixed-width scaled integer per spec.md §3.
Each record exposes ParseCdis/SerializeDIS-equivalent pairs plus
Encode/Decode against the dis package's lossless DIS form, following
the record.rs `encode`/`decode` pairing convention seen throughout
original_source/cdis-assemble (e.g. acknowledge/model.rs's
CdisEntityId, start_resume/model.rs's CdisClockTime).
*/

// EntityId is the C-DIS form of dis.EntityId: each field a UVInt16.
type EntityId struct {
	Site        UVInt16
	Application UVInt16
	Entity      UVInt16
}

func EncodeEntityId(e dis.EntityId) EntityId {
	return EntityId{Site: NewUVInt16(e.Site), Application: NewUVInt16(e.Application), Entity: NewUVInt16(e.Entity)}
}

func (e EntityId) Decode() dis.EntityId {
	return dis.EntityId{Site: e.Site.Value, Application: e.Application.Value, Entity: e.Entity.Value}
}

func ParseEntityId(r *BitReader) (EntityId, error) {
	site, err := DecodeUVInt16(r)
	if err != nil {
		return EntityId{}, err
	}
	application, err := DecodeUVInt16(r)
	if err != nil {
		return EntityId{}, err
	}
	entity, err := DecodeUVInt16(r)
	if err != nil {
		return EntityId{}, err
	}
	return EntityId{Site: site, Application: application, Entity: entity}, nil
}

func (e EntityId) SerializeDIS(w *BitWriter) error {
	if err := e.Site.Encode(w); err != nil {
		return err
	}
	if err := e.Application.Encode(w); err != nil {
		return err
	}
	return e.Entity.Encode(w)
}

func (e EntityId) BitLength() int {
	return e.Site.BitLength() + e.Application.BitLength() + e.Entity.BitLength()
}

// EventId is the C-DIS form of dis.EventId.
type EventId struct {
	Site        UVInt16
	Application UVInt16
	EventNumber UVInt16
}

func EncodeEventId(e dis.EventId) EventId {
	return EventId{Site: NewUVInt16(e.Site), Application: NewUVInt16(e.Application), EventNumber: NewUVInt16(e.EventNumber)}
}

func (e EventId) Decode() dis.EventId {
	return dis.EventId{Site: e.Site.Value, Application: e.Application.Value, EventNumber: e.EventNumber.Value}
}

func ParseEventId(r *BitReader) (EventId, error) {
	site, err := DecodeUVInt16(r)
	if err != nil {
		return EventId{}, err
	}
	application, err := DecodeUVInt16(r)
	if err != nil {
		return EventId{}, err
	}
	eventNumber, err := DecodeUVInt16(r)
	if err != nil {
		return EventId{}, err
	}
	return EventId{Site: site, Application: application, EventNumber: eventNumber}, nil
}

func (e EventId) SerializeDIS(w *BitWriter) error {
	if err := e.Site.Encode(w); err != nil {
		return err
	}
	if err := e.Application.Encode(w); err != nil {
		return err
	}
	return e.EventNumber.Encode(w)
}

func (e EventId) BitLength() int {
	return e.Site.BitLength() + e.Application.BitLength() + e.EventNumber.BitLength()
}

// LinearVelocity is a C-DIS vector scaled as 3 signed 14-bit
// decimeters/second fields (spec.md §3).
type LinearVelocity struct {
	X, Y, Z SVInt14
}

const linearVelocityScale = 10.0 // decimeters per meter

func EncodeLinearVelocity(v dis.VectorF32) LinearVelocity {
	return LinearVelocity{
		X: NewSVInt14(clampInt16(int32(v.X * linearVelocityScale))),
		Y: NewSVInt14(clampInt16(int32(v.Y * linearVelocityScale))),
		Z: NewSVInt14(clampInt16(int32(v.Z * linearVelocityScale))),
	}
}

func (v LinearVelocity) Decode() dis.VectorF32 {
	return dis.VectorF32{
		X: float32(v.X.Value) / linearVelocityScale,
		Y: float32(v.Y.Value) / linearVelocityScale,
		Z: float32(v.Z.Value) / linearVelocityScale,
	}
}

func ParseLinearVelocity(r *BitReader) (LinearVelocity, error) {
	x, err := DecodeSVInt14(r)
	if err != nil {
		return LinearVelocity{}, err
	}
	y, err := DecodeSVInt14(r)
	if err != nil {
		return LinearVelocity{}, err
	}
	z, err := DecodeSVInt14(r)
	if err != nil {
		return LinearVelocity{}, err
	}
	return LinearVelocity{X: x, Y: y, Z: z}, nil
}

func (v LinearVelocity) SerializeDIS(w *BitWriter) error {
	if err := v.X.Encode(w); err != nil {
		return err
	}
	if err := v.Y.Encode(w); err != nil {
		return err
	}
	return v.Z.Encode(w)
}

func (v LinearVelocity) BitLength() int { return v.X.BitLength() + v.Y.BitLength() + v.Z.BitLength() }

// EntityCoordinates is a C-DIS vector scaled as 3 signed 16-bit
// centimeters-from-reference fields.
type EntityCoordinates struct {
	X, Y, Z int32
}

const entityCoordinatesScale = 100.0 // centimeters per meter

func EncodeEntityCoordinates(v dis.VectorF32) EntityCoordinates {
	return EntityCoordinates{
		X: clampInt32_16(int64(v.X * entityCoordinatesScale)),
		Y: clampInt32_16(int64(v.Y * entityCoordinatesScale)),
		Z: clampInt32_16(int64(v.Z * entityCoordinatesScale)),
	}
}

func (v EntityCoordinates) Decode() dis.VectorF32 {
	return dis.VectorF32{
		X: float32(v.X) / entityCoordinatesScale,
		Y: float32(v.Y) / entityCoordinatesScale,
		Z: float32(v.Z) / entityCoordinatesScale,
	}
}

func ParseEntityCoordinates(r *BitReader) (EntityCoordinates, error) {
	x, err := r.TakeSigned(16)
	if err != nil {
		return EntityCoordinates{}, err
	}
	y, err := r.TakeSigned(16)
	if err != nil {
		return EntityCoordinates{}, err
	}
	z, err := r.TakeSigned(16)
	if err != nil {
		return EntityCoordinates{}, err
	}
	return EntityCoordinates{X: int32(x), Y: int32(y), Z: int32(z)}, nil
}

func (v EntityCoordinates) SerializeDIS(w *BitWriter) error {
	w.WriteSigned(int64(v.X), 16)
	w.WriteSigned(int64(v.Y), 16)
	w.WriteSigned(int64(v.Z), 16)
	return nil
}

func (v EntityCoordinates) BitLength() int { return 16 * 3 }

// WorldCoordinates carries full 64-bit scaled geodetic components, per
// spec.md §3 ("world coordinates: 3 x 64-bit scaled").
type WorldCoordinates struct {
	X, Y, Z int64
}

const worldCoordinatesScale = 1000.0 // millimeters per meter

func EncodeWorldCoordinates(w dis.WorldCoordinates) WorldCoordinates {
	return WorldCoordinates{
		X: int64(w.X * worldCoordinatesScale),
		Y: int64(w.Y * worldCoordinatesScale),
		Z: int64(w.Z * worldCoordinatesScale),
	}
}

func (w WorldCoordinates) Decode() dis.WorldCoordinates {
	return dis.WorldCoordinates{
		X: float64(w.X) / worldCoordinatesScale,
		Y: float64(w.Y) / worldCoordinatesScale,
		Z: float64(w.Z) / worldCoordinatesScale,
	}
}

func ParseWorldCoordinates(r *BitReader) (WorldCoordinates, error) {
	x, err := r.TakeSigned(64)
	if err != nil {
		return WorldCoordinates{}, err
	}
	y, err := r.TakeSigned(64)
	if err != nil {
		return WorldCoordinates{}, err
	}
	z, err := r.TakeSigned(64)
	if err != nil {
		return WorldCoordinates{}, err
	}
	return WorldCoordinates{X: x, Y: y, Z: z}, nil
}

func (w WorldCoordinates) SerializeDIS(bw *BitWriter) error {
	bw.WriteSigned(w.X, 64)
	bw.WriteSigned(w.Y, 64)
	bw.WriteSigned(w.Z, 64)
	return nil
}

func (w WorldCoordinates) BitLength() int { return 64 * 3 }

// Orientation is 3 fixed-point radian fields, each an SVInt16 VarInt
// (5, 9, 13 or 16 value bits), LSB = pi/8192 radians so +-pi maps to
// +-8192; the fields are not a fixed 13-bit width.
type Orientation struct {
	Psi, Theta, Phi SVInt16
}

const orientationLSBsPerRadian = 8192.0 / 3.14159265358979323846

func EncodeOrientation(o dis.Orientation) Orientation {
	return Orientation{
		Psi:   NewSVInt16(clampInt16(int32(o.Psi * orientationLSBsPerRadian))),
		Theta: NewSVInt16(clampInt16(int32(o.Theta * orientationLSBsPerRadian))),
		Phi:   NewSVInt16(clampInt16(int32(o.Phi * orientationLSBsPerRadian))),
	}
}

func (o Orientation) Decode() dis.Orientation {
	return dis.Orientation{
		Psi:   float32(o.Psi.Value) / orientationLSBsPerRadian,
		Theta: float32(o.Theta.Value) / orientationLSBsPerRadian,
		Phi:   float32(o.Phi.Value) / orientationLSBsPerRadian,
	}
}

func ParseOrientation(r *BitReader) (Orientation, error) {
	psi, err := DecodeSVInt16(r)
	if err != nil {
		return Orientation{}, err
	}
	theta, err := DecodeSVInt16(r)
	if err != nil {
		return Orientation{}, err
	}
	phi, err := DecodeSVInt16(r)
	if err != nil {
		return Orientation{}, err
	}
	return Orientation{Psi: psi, Theta: theta, Phi: phi}, nil
}

func (o Orientation) SerializeDIS(w *BitWriter) error {
	if err := o.Psi.Encode(w); err != nil {
		return err
	}
	if err := o.Theta.Encode(w); err != nil {
		return err
	}
	return o.Phi.Encode(w)
}

func (o Orientation) BitLength() int {
	return o.Psi.BitLength() + o.Theta.BitLength() + o.Phi.BitLength()
}

// ClockTime is identical between formats: 32-bit hour + 32-bit
// time-past-hour (spec.md §3).
type ClockTime struct {
	Hour         uint32
	TimePastHour uint32
}

func EncodeClockTime(c dis.ClockTime) ClockTime {
	return ClockTime{Hour: c.Hour, TimePastHour: c.TimePastHour}
}

func (c ClockTime) Decode() dis.ClockTime {
	return dis.ClockTime{Hour: c.Hour, TimePastHour: c.TimePastHour}
}

func ParseClockTime(r *BitReader) (ClockTime, error) {
	hour, err := r.TakeUnsigned(32)
	if err != nil {
		return ClockTime{}, err
	}
	timePastHour, err := r.TakeUnsigned(32)
	if err != nil {
		return ClockTime{}, err
	}
	return ClockTime{Hour: uint32(hour), TimePastHour: uint32(timePastHour)}, nil
}

func (c ClockTime) SerializeDIS(w *BitWriter) error {
	w.WriteUnsigned(uint64(c.Hour), 32)
	w.WriteUnsigned(uint64(c.TimePastHour), 32)
	return nil
}

func (c ClockTime) BitLength() int { return 64 }

func clampInt16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

func clampInt32_16(v int64) int32 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int32(v)
}
