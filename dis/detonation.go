package dis

/*
Detonation reports a munition detonation or expendable event. Grounded
on original_source/dis-rs/src/common/detonation/{model,parser,
writer}.rs: EntityId (firing) + EntityId (target) + EntityId (munition)
+ EventId + VectorF32 velocity + WorldCoordinates location + Burst
Descriptor + VectorF32 location in entity coords + u8 detonation
result + u8 articulation count + u16 padding + VariableParameter[].
*/
type Detonation struct {
	FiringEntityID       EntityId
	TargetEntityID       EntityId
	MunitionEntityID     EntityId
	EventID              EventId
	Velocity             VectorF32
	Location             WorldCoordinates
	Burst                BurstDescriptor
	LocationInEntityCoords VectorF32
	Result               DetonationResult
	VariableParameters   []VariableParameter
}

func NewDetonation() Detonation { return Detonation{} }

func (d Detonation) WithFiringEntityID(id EntityId) Detonation   { d.FiringEntityID = id; return d }
func (d Detonation) WithTargetEntityID(id EntityId) Detonation   { d.TargetEntityID = id; return d }
func (d Detonation) WithMunitionEntityID(id EntityId) Detonation { d.MunitionEntityID = id; return d }
func (d Detonation) WithEventID(id EventId) Detonation           { d.EventID = id; return d }
func (d Detonation) WithVelocity(v VectorF32) Detonation         { d.Velocity = v; return d }
func (d Detonation) WithLocation(l WorldCoordinates) Detonation  { d.Location = l; return d }
func (d Detonation) WithBurst(b BurstDescriptor) Detonation      { d.Burst = b; return d }
func (d Detonation) WithLocationInEntityCoords(v VectorF32) Detonation {
	d.LocationInEntityCoords = v
	return d
}
func (d Detonation) WithResult(res DetonationResult) Detonation { d.Result = res; return d }
func (d Detonation) WithVariableParameters(vps []VariableParameter) Detonation {
	d.VariableParameters = vps
	return d
}

func parseDetonationBody(r *ByteReader, _ Options) (PduBody, error) {
	firing, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	target, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	munition, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	eventID, err := ParseEventId(r)
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
	burst, err := ParseBurstDescriptor(r)
	if err != nil {
		return nil, err
	}
	locInEntity, err := ParseVectorF32(r)
	if err != nil {
		return nil, err
	}
	result, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	vpCount, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(2); err != nil {
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
	return Detonation{
		FiringEntityID:         firing,
		TargetEntityID:         target,
		MunitionEntityID:       munition,
		EventID:                eventID,
		Velocity:               velocity,
		Location:               location,
		Burst:                  burst,
		LocationInEntityCoords: locInEntity,
		Result:                 DetonationResultFromWire(result),
		VariableParameters:     vps,
	}, nil
}

func (d Detonation) SerializeDIS(w *ByteWriter) int {
	n := d.FiringEntityID.SerializeDIS(w)
	n += d.TargetEntityID.SerializeDIS(w)
	n += d.MunitionEntityID.SerializeDIS(w)
	n += d.EventID.SerializeDIS(w)
	n += d.Velocity.SerializeDIS(w)
	n += d.Location.SerializeDIS(w)
	n += d.Burst.SerializeDIS(w)
	n += d.LocationInEntityCoords.SerializeDIS(w)
	w.PutU8(d.Result.Wire())
	w.PutU8(uint8(len(d.VariableParameters)))
	w.PadZero(2)
	n += 1 + 1 + 2
	for _, vp := range d.VariableParameters {
		n += vp.SerializeDIS(w)
	}
	return n
}

func (d Detonation) BodyLengthBytes() int {
	return EntityIdLengthBytes*3 + EventIdLengthBytes + VectorF32LengthBytes + WorldCoordinatesLengthBytes +
		BurstDescriptorLengthBytes + VectorF32LengthBytes + 1 + 1 + 2 + VariableParameterLengthBytes*len(d.VariableParameters)
}

func (d Detonation) BodyType() PduType     { return PduTypeDetonation }
func (d Detonation) Originator() *EntityId { return &d.FiringEntityID }
func (d Detonation) Receiver() *EntityId   { return &d.TargetEntityID }
