package cdis

import "github.com/discdis/gateway/dis"

// DeadReckoningParameters mirrors dis.DeadReckoningParameters; the
// opaque 15-byte algorithm-specific block stays raw and byte-aligned
// since C-DIS defines no narrower layout for it.
type DeadReckoningParameters struct {
	Algorithm          UVInt8
	OtherParameters    [15]byte
	LinearAcceleration LinearVelocity
	AngularVelocity    LinearVelocity
}

func EncodeDeadReckoningParameters(d dis.DeadReckoningParameters) DeadReckoningParameters {
	return DeadReckoningParameters{
		Algorithm:          NewUVInt8(d.Algorithm.Wire()),
		OtherParameters:    d.OtherParameters,
		LinearAcceleration: EncodeLinearVelocity(d.LinearAcceleration),
		AngularVelocity:    EncodeLinearVelocity(d.AngularVelocity),
	}
}

func (d DeadReckoningParameters) Decode() dis.DeadReckoningParameters {
	return dis.DeadReckoningParameters{
		Algorithm:          dis.DeadReckoningAlgorithmFromWire(d.Algorithm.Value),
		OtherParameters:    d.OtherParameters,
		LinearAcceleration: d.LinearAcceleration.Decode(),
		AngularVelocity:    d.AngularVelocity.Decode(),
	}
}

func ParseDeadReckoningParameters(r *BitReader) (DeadReckoningParameters, error) {
	algorithm, err := DecodeUVInt8(r)
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	r.AlignToByte()
	var other [15]byte
	for i := range other {
		b, err := r.TakeUnsigned(8)
		if err != nil {
			return DeadReckoningParameters{}, err
		}
		other[i] = byte(b)
	}
	linear, err := ParseLinearVelocity(r)
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	angular, err := ParseLinearVelocity(r)
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	return DeadReckoningParameters{Algorithm: algorithm, OtherParameters: other, LinearAcceleration: linear, AngularVelocity: angular}, nil
}

func (d DeadReckoningParameters) SerializeDIS(w *BitWriter) error {
	if err := d.Algorithm.Encode(w); err != nil {
		return err
	}
	w.AlignToByte()
	for _, b := range d.OtherParameters {
		w.WriteUnsigned(uint64(b), 8)
	}
	if err := d.LinearAcceleration.SerializeDIS(w); err != nil {
		return err
	}
	return d.AngularVelocity.SerializeDIS(w)
}

func (d DeadReckoningParameters) BitLength() int {
	return d.Algorithm.BitLength() + 15*8 + d.LinearAcceleration.BitLength() + d.AngularVelocity.BitLength()
}

// EntityMarking mirrors dis.EntityMarking; kept as a raw byte-aligned
// 12-byte block since the character payload is already as compact as
// a variable-width integer encoding would make it.
type EntityMarking struct {
	CharacterSet uint8
	Characters   [11]byte
}

func EncodeEntityMarking(m dis.EntityMarking) EntityMarking {
	return EntityMarking{CharacterSet: m.CharacterSet, Characters: m.Characters}
}

func (m EntityMarking) Decode() dis.EntityMarking {
	return dis.EntityMarking{CharacterSet: m.CharacterSet, Characters: m.Characters}
}

func ParseEntityMarking(r *BitReader) (EntityMarking, error) {
	r.AlignToByte()
	charset, err := r.TakeUnsigned(8)
	if err != nil {
		return EntityMarking{}, err
	}
	var chars [11]byte
	for i := range chars {
		b, err := r.TakeUnsigned(8)
		if err != nil {
			return EntityMarking{}, err
		}
		chars[i] = byte(b)
	}
	return EntityMarking{CharacterSet: uint8(charset), Characters: chars}, nil
}

func (m EntityMarking) SerializeDIS(w *BitWriter) error {
	w.AlignToByte()
	w.WriteUnsigned(uint64(m.CharacterSet), 8)
	for _, b := range m.Characters {
		w.WriteUnsigned(uint64(b), 8)
	}
	return nil
}

func (m EntityMarking) BitLength() int { return 12 * 8 }

// EntityState mirrors dis.EntityState; this is the PDU spec.md names
// as the fields-present-bitmap example alongside Comment and Signal —
// two leading bits gate whether dead-reckoning parameters and the
// marking follow the always-present kinematic fields, since entities
// that aren't dead-reckoned or haven't changed marking needn't resend
// either block on every update.
type EntityState struct {
	EntityID                EntityId
	ForceID                 UVInt8
	EntityType              EntityType
	AlternativeEntityType   EntityType
	EntityLinearVelocity    LinearVelocity
	EntityLocation          WorldCoordinates
	EntityOrientation       Orientation
	EntityAppearance        uint32
	DeadReckoningPresent    bool
	DeadReckoningParameters DeadReckoningParameters
	MarkingPresent          bool
	EntityMarking           EntityMarking
	Capabilities            uint32
	VariableParameters      []VariableParameter
}

func EncodeEntityState(e dis.EntityState) EntityState {
	vps := make([]VariableParameter, len(e.VariableParameters))
	for i, vp := range e.VariableParameters {
		vps[i] = EncodeVariableParameter(vp)
	}
	return EntityState{
		EntityID:                EncodeEntityId(e.EntityID),
		ForceID:                 NewUVInt8(e.ForceID.Wire()),
		EntityType:              EncodeEntityType(e.EntityType),
		AlternativeEntityType:   EncodeEntityType(e.AlternativeEntityType),
		EntityLinearVelocity:    EncodeLinearVelocity(e.EntityLinearVelocity),
		EntityLocation:          EncodeWorldCoordinates(e.EntityLocation),
		EntityOrientation:       EncodeOrientation(e.EntityOrientation),
		EntityAppearance:        e.EntityAppearance,
		DeadReckoningPresent:    e.DeadReckoningParameters.Algorithm != dis.DeadReckoningAlgorithmOther,
		DeadReckoningParameters: EncodeDeadReckoningParameters(e.DeadReckoningParameters),
		MarkingPresent:          e.EntityMarking.String() != "",
		EntityMarking:           EncodeEntityMarking(e.EntityMarking),
		Capabilities:            e.Capabilities,
		VariableParameters:      vps,
	}
}

func (e EntityState) Decode() dis.EntityState {
	vps := make([]dis.VariableParameter, len(e.VariableParameters))
	for i, vp := range e.VariableParameters {
		vps[i] = vp.Decode()
	}
	drp := dis.DeadReckoningParameters{}
	if e.DeadReckoningPresent {
		drp = e.DeadReckoningParameters.Decode()
	}
	marking := dis.EntityMarking{}
	if e.MarkingPresent {
		marking = e.EntityMarking.Decode()
	}
	return dis.EntityState{
		EntityID:                e.EntityID.Decode(),
		ForceID:                 dis.ForceIdFromWire(e.ForceID.Value),
		EntityType:              e.EntityType.Decode(),
		AlternativeEntityType:   e.AlternativeEntityType.Decode(),
		EntityLinearVelocity:    e.EntityLinearVelocity.Decode(),
		EntityLocation:          e.EntityLocation.Decode(),
		EntityOrientation:       e.EntityOrientation.Decode(),
		EntityAppearance:        e.EntityAppearance,
		DeadReckoningParameters: drp,
		EntityMarking:           marking,
		Capabilities:            e.Capabilities,
		VariableParameters:      vps,
	}
}

func parseEntityStateBody(r *BitReader) (Body, error) {
	entityID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	forceID, err := DecodeUVInt8(r)
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
	velocity, err := ParseLinearVelocity(r)
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
	appearance, err := r.TakeUnsigned(32)
	if err != nil {
		return nil, err
	}
	drBit, err := r.TakeUnsigned(1)
	if err != nil {
		return nil, err
	}
	var drp DeadReckoningParameters
	if drBit != 0 {
		drp, err = ParseDeadReckoningParameters(r)
		if err != nil {
			return nil, err
		}
	}
	markingBit, err := r.TakeUnsigned(1)
	if err != nil {
		return nil, err
	}
	var marking EntityMarking
	if markingBit != 0 {
		marking, err = ParseEntityMarking(r)
		if err != nil {
			return nil, err
		}
	}
	capabilities, err := r.TakeUnsigned(32)
	if err != nil {
		return nil, err
	}
	vpCount, err := DecodeUVInt8(r)
	if err != nil {
		return nil, err
	}
	vps := make([]VariableParameter, 0, vpCount.Value)
	for i := uint8(0); i < vpCount.Value; i++ {
		vp, err := ParseVariableParameter(r)
		if err != nil {
			return nil, err
		}
		vps = append(vps, vp)
	}
	return EntityState{
		EntityID: entityID, ForceID: forceID, EntityType: entityType, AlternativeEntityType: altType,
		EntityLinearVelocity: velocity, EntityLocation: location, EntityOrientation: orientation,
		EntityAppearance: uint32(appearance), DeadReckoningPresent: drBit != 0, DeadReckoningParameters: drp,
		MarkingPresent: markingBit != 0, EntityMarking: marking, Capabilities: uint32(capabilities),
		VariableParameters: vps,
	}, nil
}

func (e EntityState) SerializeDIS(w *BitWriter) error {
	if err := e.EntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := e.ForceID.Encode(w); err != nil {
		return err
	}
	if err := e.EntityType.SerializeDIS(w); err != nil {
		return err
	}
	if err := e.AlternativeEntityType.SerializeDIS(w); err != nil {
		return err
	}
	if err := e.EntityLinearVelocity.SerializeDIS(w); err != nil {
		return err
	}
	if err := e.EntityLocation.SerializeDIS(w); err != nil {
		return err
	}
	if err := e.EntityOrientation.SerializeDIS(w); err != nil {
		return err
	}
	w.WriteUnsigned(uint64(e.EntityAppearance), 32)
	if e.DeadReckoningPresent {
		w.WriteUnsigned(1, 1)
		if err := e.DeadReckoningParameters.SerializeDIS(w); err != nil {
			return err
		}
	} else {
		w.WriteUnsigned(0, 1)
	}
	if e.MarkingPresent {
		w.WriteUnsigned(1, 1)
		if err := e.EntityMarking.SerializeDIS(w); err != nil {
			return err
		}
	} else {
		w.WriteUnsigned(0, 1)
	}
	w.WriteUnsigned(uint64(e.Capabilities), 32)
	if err := NewUVInt8(uint8(len(e.VariableParameters))).Encode(w); err != nil {
		return err
	}
	for _, vp := range e.VariableParameters {
		if err := vp.SerializeDIS(w); err != nil {
			return err
		}
	}
	return nil
}

func (e EntityState) BodyBitLength() int {
	n := e.EntityID.BitLength() + e.ForceID.BitLength() + e.EntityType.BitLength() +
		e.AlternativeEntityType.BitLength() + e.EntityLinearVelocity.BitLength() + e.EntityLocation.BitLength() +
		e.EntityOrientation.BitLength() + 32 + 1 + 1 + 32 + NewUVInt8(uint8(len(e.VariableParameters))).BitLength()
	if e.DeadReckoningPresent {
		n += e.DeadReckoningParameters.BitLength()
	}
	if e.MarkingPresent {
		n += e.EntityMarking.BitLength()
	}
	for _, vp := range e.VariableParameters {
		n += vp.BitLength()
	}
	return n
}

func (e EntityState) BodyType() dis.PduType  { return dis.PduTypeEntityState }
func (e EntityState) EncodeDIS() dis.PduBody { return e.Decode() }
