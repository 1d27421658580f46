package cdis

import "github.com/discdis/gateway/dis"

// EntityStateUpdate mirrors dis.EntityStateUpdate, the bandwidth-saving
// sibling of EntityState that omits type/marking/capabilities.
type EntityStateUpdate struct {
	EntityID             EntityId
	EntityLinearVelocity LinearVelocity
	EntityLocation       WorldCoordinates
	EntityOrientation    Orientation
	EntityAppearance     uint32
	VariableParameters   []VariableParameter
}

func EncodeEntityStateUpdate(e dis.EntityStateUpdate) EntityStateUpdate {
	vps := make([]VariableParameter, len(e.VariableParameters))
	for i, vp := range e.VariableParameters {
		vps[i] = EncodeVariableParameter(vp)
	}
	return EntityStateUpdate{
		EntityID:             EncodeEntityId(e.EntityID),
		EntityLinearVelocity: EncodeLinearVelocity(e.EntityLinearVelocity),
		EntityLocation:       EncodeWorldCoordinates(e.EntityLocation),
		EntityOrientation:    EncodeOrientation(e.EntityOrientation),
		EntityAppearance:     e.EntityAppearance,
		VariableParameters:   vps,
	}
}

func (e EntityStateUpdate) Decode() dis.EntityStateUpdate {
	vps := make([]dis.VariableParameter, len(e.VariableParameters))
	for i, vp := range e.VariableParameters {
		vps[i] = vp.Decode()
	}
	return dis.EntityStateUpdate{
		EntityID:             e.EntityID.Decode(),
		EntityLinearVelocity: e.EntityLinearVelocity.Decode(),
		EntityLocation:       e.EntityLocation.Decode(),
		EntityOrientation:    e.EntityOrientation.Decode(),
		EntityAppearance:     e.EntityAppearance,
		VariableParameters:   vps,
	}
}

func parseEntityStateUpdateBody(r *BitReader) (Body, error) {
	entityID, err := ParseEntityId(r)
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
	return EntityStateUpdate{
		EntityID: entityID, EntityLinearVelocity: velocity, EntityLocation: location,
		EntityOrientation: orientation, EntityAppearance: uint32(appearance), VariableParameters: vps,
	}, nil
}

func (e EntityStateUpdate) SerializeDIS(w *BitWriter) error {
	if err := e.EntityID.SerializeDIS(w); err != nil {
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

func (e EntityStateUpdate) BodyBitLength() int {
	n := e.EntityID.BitLength() + e.EntityLinearVelocity.BitLength() + e.EntityLocation.BitLength() +
		e.EntityOrientation.BitLength() + 32 + NewUVInt8(uint8(len(e.VariableParameters))).BitLength()
	for _, vp := range e.VariableParameters {
		n += vp.BitLength()
	}
	return n
}

func (e EntityStateUpdate) BodyType() dis.PduType  { return dis.PduTypeEntityStateUpdate }
func (e EntityStateUpdate) EncodeDIS() dis.PduBody { return e.Decode() }
