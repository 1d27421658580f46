package cdis

import "github.com/discdis/gateway/dis"

// Detonation mirrors dis.Detonation; VariableParameters count is a
// UVInt8 rather than the DIS fixed u8 + 2 bytes padding, per the
// counts-vs-bitmaps rule.
type Detonation struct {
	FiringEntityID         EntityId
	TargetEntityID         EntityId
	MunitionEntityID       EntityId
	EventID                EventId
	Velocity               LinearVelocity
	Location               WorldCoordinates
	Burst                  BurstDescriptor
	LocationInEntityCoords EntityCoordinates
	Result                 UVInt8
	VariableParameters     []VariableParameter
}

func EncodeDetonation(d dis.Detonation) Detonation {
	vps := make([]VariableParameter, len(d.VariableParameters))
	for i, vp := range d.VariableParameters {
		vps[i] = EncodeVariableParameter(vp)
	}
	return Detonation{
		FiringEntityID:         EncodeEntityId(d.FiringEntityID),
		TargetEntityID:         EncodeEntityId(d.TargetEntityID),
		MunitionEntityID:       EncodeEntityId(d.MunitionEntityID),
		EventID:                EncodeEventId(d.EventID),
		Velocity:               EncodeLinearVelocity(d.Velocity),
		Location:               EncodeWorldCoordinates(d.Location),
		Burst:                  EncodeBurstDescriptor(d.Burst),
		LocationInEntityCoords: EncodeEntityCoordinates(d.LocationInEntityCoords),
		Result:                 NewUVInt8(d.Result.Wire()),
		VariableParameters:     vps,
	}
}

func (d Detonation) Decode() dis.Detonation {
	vps := make([]dis.VariableParameter, len(d.VariableParameters))
	for i, vp := range d.VariableParameters {
		vps[i] = vp.Decode()
	}
	return dis.Detonation{
		FiringEntityID:         d.FiringEntityID.Decode(),
		TargetEntityID:         d.TargetEntityID.Decode(),
		MunitionEntityID:       d.MunitionEntityID.Decode(),
		EventID:                d.EventID.Decode(),
		Velocity:               d.Velocity.Decode(),
		Location:               d.Location.Decode(),
		Burst:                  d.Burst.Decode(),
		LocationInEntityCoords: d.LocationInEntityCoords.Decode(),
		Result:                 dis.DetonationResultFromWire(d.Result.Value),
		VariableParameters:     vps,
	}
}

func parseDetonationBody(r *BitReader) (Body, error) {
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
	velocity, err := ParseLinearVelocity(r)
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
	locInEntity, err := ParseEntityCoordinates(r)
	if err != nil {
		return nil, err
	}
	result, err := DecodeUVInt8(r)
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
	return Detonation{
		FiringEntityID: firing, TargetEntityID: target, MunitionEntityID: munition, EventID: eventID,
		Velocity: velocity, Location: location, Burst: burst, LocationInEntityCoords: locInEntity,
		Result: result, VariableParameters: vps,
	}, nil
}

func (d Detonation) SerializeDIS(w *BitWriter) error {
	if err := d.FiringEntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.TargetEntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.MunitionEntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.EventID.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.Velocity.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.Location.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.Burst.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.LocationInEntityCoords.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.Result.Encode(w); err != nil {
		return err
	}
	if err := NewUVInt8(uint8(len(d.VariableParameters))).Encode(w); err != nil {
		return err
	}
	for _, vp := range d.VariableParameters {
		if err := vp.SerializeDIS(w); err != nil {
			return err
		}
	}
	return nil
}

func (d Detonation) BodyBitLength() int {
	n := d.FiringEntityID.BitLength() + d.TargetEntityID.BitLength() + d.MunitionEntityID.BitLength() +
		d.EventID.BitLength() + d.Velocity.BitLength() + d.Location.BitLength() + d.Burst.BitLength() +
		d.LocationInEntityCoords.BitLength() + d.Result.BitLength() +
		NewUVInt8(uint8(len(d.VariableParameters))).BitLength()
	for _, vp := range d.VariableParameters {
		n += vp.BitLength()
	}
	return n
}

func (d Detonation) BodyType() dis.PduType  { return dis.PduTypeDetonation }
func (d Detonation) EncodeDIS() dis.PduBody { return d.Decode() }
