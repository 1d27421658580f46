package dis

/*
EntityStateUpdate carries only the kinematic fields of EntityState that
change frequently, omitting entity type/marking/capabilities to save
bandwidth. Grounded on
original_source/dis-rs/src/common/entity_state_update/{model,parser,
writer}.rs: EntityId + u8 padding + u8 vp count + VectorF32(velocity) +
WorldCoordinates(location) + Orientation + u32 appearance +
VariableParameter[].
*/
type EntityStateUpdate struct {
	EntityID             EntityId
	EntityLinearVelocity VectorF32
	EntityLocation       WorldCoordinates
	EntityOrientation    Orientation
	EntityAppearance     uint32
	VariableParameters   []VariableParameter
}

func NewEntityStateUpdate() EntityStateUpdate { return EntityStateUpdate{} }

func (e EntityStateUpdate) WithEntityID(id EntityId) EntityStateUpdate { e.EntityID = id; return e }
func (e EntityStateUpdate) WithEntityLinearVelocity(v VectorF32) EntityStateUpdate {
	e.EntityLinearVelocity = v
	return e
}
func (e EntityStateUpdate) WithEntityLocation(l WorldCoordinates) EntityStateUpdate {
	e.EntityLocation = l
	return e
}
func (e EntityStateUpdate) WithEntityOrientation(o Orientation) EntityStateUpdate {
	e.EntityOrientation = o
	return e
}
func (e EntityStateUpdate) WithEntityAppearance(a uint32) EntityStateUpdate {
	e.EntityAppearance = a
	return e
}
func (e EntityStateUpdate) WithVariableParameters(vps []VariableParameter) EntityStateUpdate {
	e.VariableParameters = vps
	return e
}

func parseEntityStateUpdateBody(r *ByteReader, _ Options) (PduBody, error) {
	entityID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	if err := r.Skip(1); err != nil {
		return nil, err
	}
	vpCount, err := r.TakeU8()
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
	vps := make([]VariableParameter, vpCount)
	for i := range vps {
		vp, err := ParseVariableParameter(r)
		if err != nil {
			return nil, err
		}
		vps[i] = vp
	}
	return EntityStateUpdate{
		EntityID:             entityID,
		EntityLinearVelocity: velocity,
		EntityLocation:       location,
		EntityOrientation:    orientation,
		EntityAppearance:     appearance,
		VariableParameters:   vps,
	}, nil
}

func (e EntityStateUpdate) SerializeDIS(w *ByteWriter) int {
	n := e.EntityID.SerializeDIS(w)
	w.PadZero(1)
	w.PutU8(uint8(len(e.VariableParameters)))
	n += 2
	n += e.EntityLinearVelocity.SerializeDIS(w)
	n += e.EntityLocation.SerializeDIS(w)
	n += e.EntityOrientation.SerializeDIS(w)
	w.PutU32(e.EntityAppearance)
	n += 4
	for _, vp := range e.VariableParameters {
		n += vp.SerializeDIS(w)
	}
	return n
}

func (e EntityStateUpdate) BodyLengthBytes() int {
	return EntityIdLengthBytes + 2 + VectorF32LengthBytes + WorldCoordinatesLengthBytes +
		OrientationLengthBytes + 4 + VariableParameterLengthBytes*len(e.VariableParameters)
}

func (e EntityStateUpdate) BodyType() PduType     { return PduTypeEntityStateUpdate }
func (e EntityStateUpdate) Originator() *EntityId { return &e.EntityID }
func (e EntityStateUpdate) Receiver() *EntityId   { return nil }
