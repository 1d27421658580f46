package dis

/*
Shared records used across PDU bodies, per spec.md §3/§4.3. Each record
exposes a ParseXxx function and a SerializeDIS method, plus an
XxxLengthBytes constant when fixed-size or a LengthBytes method when
variable-size, grounded on
the entity_id/event_id/vec3_f32/clock_time parser helpers called
throughout original_source's dis-rs parser.rs files.
*/

// EntityId identifies a simulated entity: (site, application, entity).
// (0,0,0) is reserved to mean "no entity" (spec.md §3).
type EntityId struct {
	Site        uint16
	Application uint16
	Entity      uint16
}

// NoEntity is the reserved "no entity" EntityId.
var NoEntity = EntityId{}

func (e EntityId) IsNoEntity() bool { return e == NoEntity }

func ParseEntityId(r *ByteReader) (EntityId, error) {
	site, err := r.TakeU16()
	if err != nil {
		return EntityId{}, err
	}
	app, err := r.TakeU16()
	if err != nil {
		return EntityId{}, err
	}
	ent, err := r.TakeU16()
	if err != nil {
		return EntityId{}, err
	}
	return EntityId{Site: site, Application: app, Entity: ent}, nil
}

func (e EntityId) SerializeDIS(w *ByteWriter) int {
	w.PutU16(e.Site)
	w.PutU16(e.Application)
	w.PutU16(e.Entity)
	return 6
}

const EntityIdLengthBytes = 6

// EventId identifies an event raised by an entity: (site, application,
// event number). Same wire shape as EntityId.
type EventId struct {
	Site        uint16
	Application uint16
	EventNumber uint16
}

func ParseEventId(r *ByteReader) (EventId, error) {
	site, err := r.TakeU16()
	if err != nil {
		return EventId{}, err
	}
	app, err := r.TakeU16()
	if err != nil {
		return EventId{}, err
	}
	num, err := r.TakeU16()
	if err != nil {
		return EventId{}, err
	}
	return EventId{Site: site, Application: app, EventNumber: num}, nil
}

func (e EventId) SerializeDIS(w *ByteWriter) int {
	w.PutU16(e.Site)
	w.PutU16(e.Application)
	w.PutU16(e.EventNumber)
	return 6
}

const EventIdLengthBytes = 6

// VectorF32 is three IEEE-754 32-bit floats, used for location,
// velocity, acceleration and angular velocity fields.
type VectorF32 struct {
	X, Y, Z float32
}

func ParseVectorF32(r *ByteReader) (VectorF32, error) {
	x, err := r.TakeF32()
	if err != nil {
		return VectorF32{}, err
	}
	y, err := r.TakeF32()
	if err != nil {
		return VectorF32{}, err
	}
	z, err := r.TakeF32()
	if err != nil {
		return VectorF32{}, err
	}
	return VectorF32{X: x, Y: y, Z: z}, nil
}

func (v VectorF32) SerializeDIS(w *ByteWriter) int {
	w.PutF32(v.X)
	w.PutF32(v.Y)
	w.PutF32(v.Z)
	return 12
}

const VectorF32LengthBytes = 12

// Orientation is three 32-bit float radians: psi, theta, phi.
type Orientation struct {
	Psi, Theta, Phi float32
}

func ParseOrientation(r *ByteReader) (Orientation, error) {
	psi, err := r.TakeF32()
	if err != nil {
		return Orientation{}, err
	}
	theta, err := r.TakeF32()
	if err != nil {
		return Orientation{}, err
	}
	phi, err := r.TakeF32()
	if err != nil {
		return Orientation{}, err
	}
	return Orientation{Psi: psi, Theta: theta, Phi: phi}, nil
}

func (o Orientation) SerializeDIS(w *ByteWriter) int {
	w.PutF32(o.Psi)
	w.PutF32(o.Theta)
	w.PutF32(o.Phi)
	return 12
}

const OrientationLengthBytes = 12

// WorldCoordinates is the geocentric (x, y, z) location of an entity,
// three 64-bit floats in DIS.
type WorldCoordinates struct {
	X, Y, Z float64
}

func ParseWorldCoordinates(r *ByteReader) (WorldCoordinates, error) {
	x, err := r.TakeF64()
	if err != nil {
		return WorldCoordinates{}, err
	}
	y, err := r.TakeF64()
	if err != nil {
		return WorldCoordinates{}, err
	}
	z, err := r.TakeF64()
	if err != nil {
		return WorldCoordinates{}, err
	}
	return WorldCoordinates{X: x, Y: y, Z: z}, nil
}

func (w WorldCoordinates) SerializeDIS(bw *ByteWriter) int {
	bw.PutF64(w.X)
	bw.PutF64(w.Y)
	bw.PutF64(w.Z)
	return 24
}

const WorldCoordinatesLengthBytes = 24

// ClockTime is a 32-bit hour count plus a 32-bit time-past-the-hour,
// grounded on start_resume/parser.rs's clock_time(input) calls.
type ClockTime struct {
	Hour            uint32
	TimePastHour    uint32
}

func ParseClockTime(r *ByteReader) (ClockTime, error) {
	hour, err := r.TakeU32()
	if err != nil {
		return ClockTime{}, err
	}
	tph, err := r.TakeU32()
	if err != nil {
		return ClockTime{}, err
	}
	return ClockTime{Hour: hour, TimePastHour: tph}, nil
}

func (c ClockTime) SerializeDIS(w *ByteWriter) int {
	w.PutU32(c.Hour)
	w.PutU32(c.TimePastHour)
	return 8
}

const ClockTimeLengthBytes = 8

// EntityType is the kind/domain/country/category/subcategory/specific/
// extra record, 8 bytes in DIS.
type EntityType struct {
	Kind       EntityKind
	Domain     Domain
	Country    uint16
	Category   uint8
	Subcategory uint8
	Specific   uint8
	Extra      uint8
}

func ParseEntityType(r *ByteReader) (EntityType, error) {
	kind, err := r.TakeU8()
	if err != nil {
		return EntityType{}, err
	}
	domain, err := r.TakeU8()
	if err != nil {
		return EntityType{}, err
	}
	country, err := r.TakeU16()
	if err != nil {
		return EntityType{}, err
	}
	category, err := r.TakeU8()
	if err != nil {
		return EntityType{}, err
	}
	sub, err := r.TakeU8()
	if err != nil {
		return EntityType{}, err
	}
	specific, err := r.TakeU8()
	if err != nil {
		return EntityType{}, err
	}
	extra, err := r.TakeU8()
	if err != nil {
		return EntityType{}, err
	}
	return EntityType{
		Kind: EntityKindFromWire(kind), Domain: DomainFromWire(domain), Country: country,
		Category: category, Subcategory: sub, Specific: specific, Extra: extra,
	}, nil
}

func (e EntityType) SerializeDIS(w *ByteWriter) int {
	w.PutU8(e.Kind.Wire())
	w.PutU8(e.Domain.Wire())
	w.PutU16(e.Country)
	w.PutU8(e.Category)
	w.PutU8(e.Subcategory)
	w.PutU8(e.Specific)
	w.PutU8(e.Extra)
	return 8
}

const EntityTypeLengthBytes = 8

// SupplyQuantity is EntityType + a float32 quantity, 12 bytes; see
// DESIGN.md for why this shape is a standard-conformance reconstruction.
type SupplyQuantity struct {
	SupplyType EntityType
	Quantity   float32
}

func ParseSupplyQuantity(r *ByteReader) (SupplyQuantity, error) {
	st, err := ParseEntityType(r)
	if err != nil {
		return SupplyQuantity{}, err
	}
	q, err := r.TakeF32()
	if err != nil {
		return SupplyQuantity{}, err
	}
	return SupplyQuantity{SupplyType: st, Quantity: q}, nil
}

func (s SupplyQuantity) SerializeDIS(w *ByteWriter) int {
	n := s.SupplyType.SerializeDIS(w)
	w.PutF32(s.Quantity)
	return n + 4
}

const SupplyQuantityLengthBytes = 12

// FixedDatum is a (32-bit ID, 32-bit value) pair.
type FixedDatum struct {
	ID    uint32
	Value uint32
}

func ParseFixedDatum(r *ByteReader) (FixedDatum, error) {
	id, err := r.TakeU32()
	if err != nil {
		return FixedDatum{}, err
	}
	v, err := r.TakeU32()
	if err != nil {
		return FixedDatum{}, err
	}
	return FixedDatum{ID: id, Value: v}, nil
}

func (f FixedDatum) SerializeDIS(w *ByteWriter) int {
	w.PutU32(f.ID)
	w.PutU32(f.Value)
	return 8
}

const FixedDatumLengthBytes = 8

// VariableDatum is a (32-bit ID, 32-bit length-in-bits, payload padded
// to a 64-bit boundary). LengthBits must be in 0..=2040 (spec.md §7).
type VariableDatum struct {
	ID        uint32
	LengthBits uint32
	Data      []byte // unpadded payload, len = ceil(LengthBits/8)
}

func ParseVariableDatum(r *ByteReader, opts Options) (VariableDatum, error) {
	id, err := r.TakeU32()
	if err != nil {
		return VariableDatum{}, err
	}
	lengthBits, err := r.TakeU32()
	if err != nil {
		return VariableDatum{}, err
	}
	if opts.Strict && lengthBits > 2040 {
		return VariableDatum{}, MalformedFieldError{Field: "VariableDatum.LengthBits", Reason: "exceeds 2040 bits"}
	}
	payloadBytes := int((lengthBits + 7) / 8)
	data, err := r.TakeN(payloadBytes)
	if err != nil {
		return VariableDatum{}, err
	}
	padded := paddedLen(payloadBytes)
	if padded > payloadBytes {
		if err := r.Skip(padded - payloadBytes); err != nil {
			return VariableDatum{}, err
		}
	}
	out := make([]byte, payloadBytes)
	copy(out, data)
	return VariableDatum{ID: id, LengthBits: lengthBits, Data: out}, nil
}

// paddedLen rounds n up to the next multiple of 8 (64-bit boundary).
func paddedLen(n int) int {
	if rem := n % 8; rem != 0 {
		return n + (8 - rem)
	}
	return n
}

func (v VariableDatum) SerializeDIS(w *ByteWriter) int {
	w.PutU32(v.ID)
	w.PutU32(v.LengthBits)
	w.PutN(v.Data)
	padded := paddedLen(len(v.Data))
	w.PadZero(padded - len(v.Data))
	return 8 + padded
}

func (v VariableDatum) LengthBytes() int {
	return 8 + paddedLen(len(v.Data))
}

// DatumSpecification is an ordered pair of fixed and variable datum
// sequences, grounded on set_data/data/comment codec.rs's
// DatumSpecification::new(fixed, variable) construction.
type DatumSpecification struct {
	FixedDatums    []FixedDatum
	VariableDatums []VariableDatum
}

func NewDatumSpecification(fixed []FixedDatum, variable []VariableDatum) DatumSpecification {
	return DatumSpecification{FixedDatums: fixed, VariableDatums: variable}
}

// LengthBytes is the count fields (8 bytes) plus each datum's length;
// the count is always recomputed from the slice lengths (spec.md §4.4).
func (d DatumSpecification) LengthBytes() int {
	n := 8
	n += len(d.FixedDatums) * FixedDatumLengthBytes
	for _, v := range d.VariableDatums {
		n += v.LengthBytes()
	}
	return n
}

func ParseDatumSpecification(r *ByteReader, opts Options) (DatumSpecification, error) {
	numFixed, err := r.TakeU32()
	if err != nil {
		return DatumSpecification{}, err
	}
	numVariable, err := r.TakeU32()
	if err != nil {
		return DatumSpecification{}, err
	}
	fixed := make([]FixedDatum, 0, numFixed)
	for i := uint32(0); i < numFixed; i++ {
		fd, err := ParseFixedDatum(r)
		if err != nil {
			return DatumSpecification{}, err
		}
		fixed = append(fixed, fd)
	}
	variable := make([]VariableDatum, 0, numVariable)
	for i := uint32(0); i < numVariable; i++ {
		vd, err := ParseVariableDatum(r, opts)
		if err != nil {
			return DatumSpecification{}, err
		}
		variable = append(variable, vd)
	}
	return DatumSpecification{FixedDatums: fixed, VariableDatums: variable}, nil
}

func (d DatumSpecification) SerializeDIS(w *ByteWriter) int {
	w.PutU32(uint32(len(d.FixedDatums)))
	w.PutU32(uint32(len(d.VariableDatums)))
	n := 8
	for _, fd := range d.FixedDatums {
		n += fd.SerializeDIS(w)
	}
	for _, vd := range d.VariableDatums {
		n += vd.SerializeDIS(w)
	}
	return n
}

// RecordSpecification is the ordered-record-set analogue of
// DatumSpecification used by the SetRecordR and TransferOwnership bodies
// (spec.md §2 component 3 "record specifications"; supplemented per
// SPEC_FULL.md §7 since it belongs to the same shared-records family).
type RecordSpecification struct {
	Records []VariableDatum
}

func ParseRecordSpecification(r *ByteReader, opts Options) (RecordSpecification, error) {
	numRecords, err := r.TakeU32()
	if err != nil {
		return RecordSpecification{}, err
	}
	records := make([]VariableDatum, 0, numRecords)
	for i := uint32(0); i < numRecords; i++ {
		vd, err := ParseVariableDatum(r, opts)
		if err != nil {
			return RecordSpecification{}, err
		}
		records = append(records, vd)
	}
	return RecordSpecification{Records: records}, nil
}

func (rs RecordSpecification) SerializeDIS(w *ByteWriter) int {
	w.PutU32(uint32(len(rs.Records)))
	n := 4
	for _, rec := range rs.Records {
		n += rec.SerializeDIS(w)
	}
	return n
}

func (rs RecordSpecification) LengthBytes() int {
	n := 4
	for _, rec := range rs.Records {
		n += rec.LengthBytes()
	}
	return n
}

const VariableParameterLengthBytes = 16

// VariableParameter is a 16-octet tagged record; its 15-byte Payload is
// interpreted according to RecordType.
type VariableParameter struct {
	RecordType VariableParameterRecordType
	Payload    [15]byte
}

func ParseVariableParameter(r *ByteReader) (VariableParameter, error) {
	tag, err := r.TakeU8()
	if err != nil {
		return VariableParameter{}, err
	}
	payload, err := r.TakeN(15)
	if err != nil {
		return VariableParameter{}, err
	}
	var vp VariableParameter
	vp.RecordType = VariableParameterRecordTypeFromWire(tag)
	copy(vp.Payload[:], payload)
	return vp, nil
}

func (v VariableParameter) SerializeDIS(w *ByteWriter) int {
	w.PutU8(v.RecordType.Wire())
	w.PutN(v.Payload[:])
	return VariableParameterLengthBytes
}
