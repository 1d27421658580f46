package dis

/*
EntityState reports an entity's identity, kind, kinematic state and
appearance; the most frequently exchanged DIS PDU. Grounded on
original_source/dis-rs/src/common/entity_state/{model,parser,
writer}.rs: EntityId + u8 force id + u8 articulation count + EntityType
+ EntityType(alternative) + VectorF32(velocity) + WorldCoordinates
(location) + Orientation + u32 appearance + DeadReckoningParameters +
EntityMarking + u32 capabilities + VariableParameter[].
*/

// DeadReckoningAlgorithm selects how a receiver should extrapolate an
// entity's position between updates.
type DeadReckoningAlgorithm uint8

const (
	DeadReckoningAlgorithmOther                  DeadReckoningAlgorithm = 0
	DeadReckoningAlgorithmStatic                 DeadReckoningAlgorithm = 1
	DeadReckoningAlgorithmFPW                    DeadReckoningAlgorithm = 2
	DeadReckoningAlgorithmRPW                    DeadReckoningAlgorithm = 3
	DeadReckoningAlgorithmRVW                    DeadReckoningAlgorithm = 4
	DeadReckoningAlgorithmFVW                    DeadReckoningAlgorithm = 5
	DeadReckoningAlgorithmFPB                    DeadReckoningAlgorithm = 6
	DeadReckoningAlgorithmRPB                    DeadReckoningAlgorithm = 7
	DeadReckoningAlgorithmRVB                    DeadReckoningAlgorithm = 8
	DeadReckoningAlgorithmFVB                    DeadReckoningAlgorithm = 9
)

func DeadReckoningAlgorithmFromWire(code uint8) DeadReckoningAlgorithm {
	if code <= 9 {
		return DeadReckoningAlgorithm(code)
	}
	return DeadReckoningAlgorithmOther
}

func (d DeadReckoningAlgorithm) Wire() uint8 { return uint8(d) }

// DeadReckoningParameters carries the linear/angular extrapolation
// state used between EntityState updates.
type DeadReckoningParameters struct {
	Algorithm        DeadReckoningAlgorithm
	OtherParameters   [15]byte
	LinearAcceleration VectorF32
	AngularVelocity    VectorF32
}

const DeadReckoningParametersLengthBytes = 1 + 15 + VectorF32LengthBytes*2

func ParseDeadReckoningParameters(r *ByteReader) (DeadReckoningParameters, error) {
	algorithm, err := r.TakeU8()
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	other, err := r.TakeN(15)
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	linear, err := ParseVectorF32(r)
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	angular, err := ParseVectorF32(r)
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	d := DeadReckoningParameters{
		Algorithm:          DeadReckoningAlgorithmFromWire(algorithm),
		LinearAcceleration: linear,
		AngularVelocity:    angular,
	}
	copy(d.OtherParameters[:], other)
	return d, nil
}

func (d DeadReckoningParameters) SerializeDIS(w *ByteWriter) int {
	w.PutU8(d.Algorithm.Wire())
	w.PutN(d.OtherParameters[:])
	n := 1 + 15
	n += d.LinearAcceleration.SerializeDIS(w)
	n += d.AngularVelocity.SerializeDIS(w)
	return n
}

// EntityMarking is the 11-character entity label plus its character
// set identifier.
type EntityMarking struct {
	CharacterSet uint8
	Characters   [11]byte
}

const EntityMarkingLengthBytes = 12

func ParseEntityMarking(r *ByteReader) (EntityMarking, error) {
	charset, err := r.TakeU8()
	if err != nil {
		return EntityMarking{}, err
	}
	chars, err := r.TakeN(11)
	if err != nil {
		return EntityMarking{}, err
	}
	m := EntityMarking{CharacterSet: charset}
	copy(m.Characters[:], chars)
	return m, nil
}

func (m EntityMarking) SerializeDIS(w *ByteWriter) int {
	w.PutU8(m.CharacterSet)
	w.PutN(m.Characters[:])
	return EntityMarkingLengthBytes
}

func (m EntityMarking) String() string {
	n := 0
	for ; n < len(m.Characters); n++ {
		if m.Characters[n] == 0 {
			break
		}
	}
	return string(m.Characters[:n])
}

func NewEntityMarkingFromString(charset uint8, s string) EntityMarking {
	m := EntityMarking{CharacterSet: charset}
	copy(m.Characters[:], s)
	return m
}

type EntityState struct {
	EntityID                EntityId
	ForceID                 ForceId
	EntityType              EntityType
	AlternativeEntityType   EntityType
	EntityLinearVelocity    VectorF32
	EntityLocation          WorldCoordinates
	EntityOrientation       Orientation
	EntityAppearance        uint32
	DeadReckoningParameters DeadReckoningParameters
	EntityMarking           EntityMarking
	Capabilities            uint32
	VariableParameters      []VariableParameter
}

func NewEntityState() EntityState { return EntityState{} }

func (e EntityState) WithEntityID(id EntityId) EntityState { e.EntityID = id; return e }
func (e EntityState) WithForceID(f ForceId) EntityState    { e.ForceID = f; return e }
func (e EntityState) WithEntityType(t EntityType) EntityState {
	e.EntityType = t
	return e
}
func (e EntityState) WithAlternativeEntityType(t EntityType) EntityState {
	e.AlternativeEntityType = t
	return e
}
func (e EntityState) WithEntityLinearVelocity(v VectorF32) EntityState {
	e.EntityLinearVelocity = v
	return e
}
func (e EntityState) WithEntityLocation(l WorldCoordinates) EntityState {
	e.EntityLocation = l
	return e
}
func (e EntityState) WithEntityOrientation(o Orientation) EntityState {
	e.EntityOrientation = o
	return e
}
func (e EntityState) WithEntityAppearance(a uint32) EntityState {
	e.EntityAppearance = a
	return e
}
func (e EntityState) WithDeadReckoningParameters(d DeadReckoningParameters) EntityState {
	e.DeadReckoningParameters = d
	return e
}
func (e EntityState) WithEntityMarking(m EntityMarking) EntityState {
	e.EntityMarking = m
	return e
}
func (e EntityState) WithCapabilities(c uint32) EntityState { e.Capabilities = c; return e }
func (e EntityState) WithVariableParameters(vps []VariableParameter) EntityState {
	e.VariableParameters = vps
	return e
}

func parseEntityStateBody(r *ByteReader, _ Options) (PduBody, error) {
	entityID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	forceID, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	vpCount, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	entityType, err := ParseEntityType(r)
	if err != nil {
		return nil, err
	}
	altType, err := ParseEntityType(r)
	if err != nil {
		return nil, err
	}
	velocity, err := ParseVectorF32(r)
	if err != nil {
		return nil, err
	}
	location, err := ParseWorldCoordinates(r)
	if err != nil {
		return nil, err
	}
	orientation, err := ParseOrientation(r)
	if err != nil {
		return nil, err
	}
	appearance, err := r.TakeU32()
	if err != nil {
		return nil, err
	}
	drp, err := ParseDeadReckoningParameters(r)
	if err != nil {
		return nil, err
	}
	marking, err := ParseEntityMarking(r)
	if err != nil {
		return nil, err
	}
	capabilities, err := r.TakeU32()
	if err != nil {
		return nil, err
	}
	vps := make([]VariableParameter, vpCount)
	for i := range vps {
		vp, err := ParseVariableParameter(r)
		if err != nil {
			return nil, err
		}
		vps[i] = vp
	}
	return EntityState{
		EntityID:                entityID,
		ForceID:                 ForceIdFromWire(forceID),
		EntityType:              entityType,
		AlternativeEntityType:   altType,
		EntityLinearVelocity:    velocity,
		EntityLocation:          location,
		EntityOrientation:       orientation,
		EntityAppearance:        appearance,
		DeadReckoningParameters: drp,
		EntityMarking:           marking,
		Capabilities:            capabilities,
		VariableParameters:      vps,
	}, nil
}

func (e EntityState) SerializeDIS(w *ByteWriter) int {
	n := e.EntityID.SerializeDIS(w)
	w.PutU8(e.ForceID.Wire())
	w.PutU8(uint8(len(e.VariableParameters)))
	n += 2
	n += e.EntityType.SerializeDIS(w)
	n += e.AlternativeEntityType.SerializeDIS(w)
	n += e.EntityLinearVelocity.SerializeDIS(w)
	n += e.EntityLocation.SerializeDIS(w)
	n += e.EntityOrientation.SerializeDIS(w)
	w.PutU32(e.EntityAppearance)
	n += 4
	n += e.DeadReckoningParameters.SerializeDIS(w)
	n += e.EntityMarking.SerializeDIS(w)
	w.PutU32(e.Capabilities)
	n += 4
	for _, vp := range e.VariableParameters {
		n += vp.SerializeDIS(w)
	}
	return n
}

func (e EntityState) BodyLengthBytes() int {
	return EntityIdLengthBytes + 2 + EntityTypeLengthBytes*2 + VectorF32LengthBytes +
		WorldCoordinatesLengthBytes + OrientationLengthBytes + 4 + DeadReckoningParametersLengthBytes +
		EntityMarkingLengthBytes + 4 + VariableParameterLengthBytes*len(e.VariableParameters)
}

func (e EntityState) BodyType() PduType     { return PduTypeEntityState }
func (e EntityState) Originator() *EntityId { return &e.EntityID }
func (e EntityState) Receiver() *EntityId   { return nil }
