package dis

/*
BurstDescriptor characterizes the munition used in a Fire or Detonation
event. Grounded on
original_source/dis-rs/src/common/model/burst_descriptor.rs: EntityType
+ u16 warhead + u16 fuse + u16 quantity + u16 rate, 16 bytes.
*/
type BurstDescriptor struct {
	Munition EntityType
	Warhead  uint16
	Fuse     uint16
	Quantity uint16
	Rate     uint16
}

const BurstDescriptorLengthBytes = EntityTypeLengthBytes + 2 + 2 + 2 + 2

func ParseBurstDescriptor(r *ByteReader) (BurstDescriptor, error) {
	munition, err := ParseEntityType(r)
	if err != nil {
		return BurstDescriptor{}, err
	}
	warhead, err := r.TakeU16()
	if err != nil {
		return BurstDescriptor{}, err
	}
	fuse, err := r.TakeU16()
	if err != nil {
		return BurstDescriptor{}, err
	}
	quantity, err := r.TakeU16()
	if err != nil {
		return BurstDescriptor{}, err
	}
	rate, err := r.TakeU16()
	if err != nil {
		return BurstDescriptor{}, err
	}
	return BurstDescriptor{Munition: munition, Warhead: warhead, Fuse: fuse, Quantity: quantity, Rate: rate}, nil
}

func (b BurstDescriptor) SerializeDIS(w *ByteWriter) int {
	n := b.Munition.SerializeDIS(w)
	w.PutU16(b.Warhead)
	w.PutU16(b.Fuse)
	w.PutU16(b.Quantity)
	w.PutU16(b.Rate)
	return n + 8
}

/*
Fire reports a weapon discharge event. Grounded on
original_source/dis-rs/src/common/fire/{model,parser,writer}.rs:
EntityId (firing) + EntityId (target) + EntityId (munition) + EventId +
u32 fire mission index + WorldCoordinates location + BurstDescriptor +
VectorF32 velocity + float32 range.
*/
type Fire struct {
	FiringEntityID    EntityId
	TargetEntityID    EntityId
	MunitionEntityID  EntityId
	EventID           EventId
	FireMissionIndex  uint32
	Location          WorldCoordinates
	Burst             BurstDescriptor
	Velocity          VectorF32
	Range             float32
}

func NewFire() Fire { return Fire{} }

func (f Fire) WithFiringEntityID(id EntityId) Fire   { f.FiringEntityID = id; return f }
func (f Fire) WithTargetEntityID(id EntityId) Fire   { f.TargetEntityID = id; return f }
func (f Fire) WithMunitionEntityID(id EntityId) Fire { f.MunitionEntityID = id; return f }
func (f Fire) WithEventID(id EventId) Fire           { f.EventID = id; return f }
func (f Fire) WithFireMissionIndex(i uint32) Fire    { f.FireMissionIndex = i; return f }
func (f Fire) WithLocation(l WorldCoordinates) Fire  { f.Location = l; return f }
func (f Fire) WithBurst(b BurstDescriptor) Fire      { f.Burst = b; return f }
func (f Fire) WithVelocity(v VectorF32) Fire         { f.Velocity = v; return f }
func (f Fire) WithRange(r float32) Fire              { f.Range = r; return f }

func parseFireBody(r *ByteReader, _ Options) (PduBody, error) {
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
	missionIndex, err := r.TakeU32()
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
	velocity, err := ParseVectorF32(r)
	if err != nil {
		return nil, err
	}
	rng, err := r.TakeF32()
	if err != nil {
		return nil, err
	}
	return Fire{
		FiringEntityID:   firing,
		TargetEntityID:   target,
		MunitionEntityID: munition,
		EventID:          eventID,
		FireMissionIndex: missionIndex,
		Location:         location,
		Burst:            burst,
		Velocity:         velocity,
		Range:            rng,
	}, nil
}

func (f Fire) SerializeDIS(w *ByteWriter) int {
	n := f.FiringEntityID.SerializeDIS(w)
	n += f.TargetEntityID.SerializeDIS(w)
	n += f.MunitionEntityID.SerializeDIS(w)
	n += f.EventID.SerializeDIS(w)
	w.PutU32(f.FireMissionIndex)
	n += 4
	n += f.Location.SerializeDIS(w)
	n += f.Burst.SerializeDIS(w)
	n += f.Velocity.SerializeDIS(w)
	w.PutF32(f.Range)
	n += 4
	return n
}

func (f Fire) BodyLengthBytes() int {
	return EntityIdLengthBytes*3 + EventIdLengthBytes + 4 + WorldCoordinatesLengthBytes +
		BurstDescriptorLengthBytes + VectorF32LengthBytes + 4
}

func (f Fire) BodyType() PduType     { return PduTypeFire }
func (f Fire) Originator() *EntityId { return &f.FiringEntityID }
func (f Fire) Receiver() *EntityId   { return &f.TargetEntityID }
