package cdis

import "github.com/discdis/gateway/dis"

// Fire mirrors dis.Fire.
type Fire struct {
	FiringEntityID   EntityId
	TargetEntityID   EntityId
	MunitionEntityID EntityId
	EventID          EventId
	FireMissionIndex UVInt32
	Location         WorldCoordinates
	Burst            BurstDescriptor
	Velocity         LinearVelocity
	Range            float32
}

func EncodeFire(f dis.Fire) Fire {
	return Fire{
		FiringEntityID:   EncodeEntityId(f.FiringEntityID),
		TargetEntityID:   EncodeEntityId(f.TargetEntityID),
		MunitionEntityID: EncodeEntityId(f.MunitionEntityID),
		EventID:          EncodeEventId(f.EventID),
		FireMissionIndex: NewUVInt32(f.FireMissionIndex),
		Location:         EncodeWorldCoordinates(f.Location),
		Burst:            EncodeBurstDescriptor(f.Burst),
		Velocity:         EncodeLinearVelocity(f.Velocity),
		Range:            f.Range,
	}
}

func (f Fire) Decode() dis.Fire {
	return dis.Fire{
		FiringEntityID:   f.FiringEntityID.Decode(),
		TargetEntityID:   f.TargetEntityID.Decode(),
		MunitionEntityID: f.MunitionEntityID.Decode(),
		EventID:          f.EventID.Decode(),
		FireMissionIndex: f.FireMissionIndex.Value,
		Location:         f.Location.Decode(),
		Burst:            f.Burst.Decode(),
		Velocity:         f.Velocity.Decode(),
		Range:            f.Range,
	}
}

func parseFireBody(r *BitReader) (Body, error) {
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
	missionIndex, err := DecodeUVInt32(r)
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
	velocity, err := ParseLinearVelocity(r)
	if err != nil {
		return nil, err
	}
	rangeBits, err := r.TakeUnsigned(32)
	if err != nil {
		return nil, err
	}
	return Fire{
		FiringEntityID: firing, TargetEntityID: target, MunitionEntityID: munition, EventID: eventID,
		FireMissionIndex: missionIndex, Location: location, Burst: burst, Velocity: velocity,
		Range: float32FromBits(uint32(rangeBits)),
	}, nil
}

func (f Fire) SerializeDIS(w *BitWriter) error {
	if err := f.FiringEntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := f.TargetEntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := f.MunitionEntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := f.EventID.SerializeDIS(w); err != nil {
		return err
	}
	if err := f.FireMissionIndex.Encode(w); err != nil {
		return err
	}
	if err := f.Location.SerializeDIS(w); err != nil {
		return err
	}
	if err := f.Burst.SerializeDIS(w); err != nil {
		return err
	}
	if err := f.Velocity.SerializeDIS(w); err != nil {
		return err
	}
	w.WriteUnsigned(uint64(float32Bits(f.Range)), 32)
	return nil
}

func (f Fire) BodyBitLength() int {
	return f.FiringEntityID.BitLength() + f.TargetEntityID.BitLength() + f.MunitionEntityID.BitLength() +
		f.EventID.BitLength() + f.FireMissionIndex.BitLength() + f.Location.BitLength() + f.Burst.BitLength() +
		f.Velocity.BitLength() + 32
}

func (f Fire) BodyType() dis.PduType  { return dis.PduTypeFire }
func (f Fire) EncodeDIS() dis.PduBody { return f.Decode() }
