package dis

/*
Collision reports a collision between the issuing entity and another
entity or an environmental object. Grounded on
original_source/dis-rs/src/common/collision/{model,parser,writer}.rs:
EntityId (issuing) + EntityId (colliding) + EventId + u8 collision type
+ u8 padding + VectorF32 velocity + float32 mass + VectorF32 location.
*/
type Collision struct {
	IssuingEntityID    EntityId
	CollidingEntityID  EntityId
	EventID            EventId
	CollisionType      CollisionType
	Velocity           VectorF32
	Mass               float32
	Location           VectorF32
}

func NewCollision() Collision { return Collision{} }

func (c Collision) WithIssuingEntityID(id EntityId) Collision   { c.IssuingEntityID = id; return c }
func (c Collision) WithCollidingEntityID(id EntityId) Collision { c.CollidingEntityID = id; return c }
func (c Collision) WithEventID(id EventId) Collision            { c.EventID = id; return c }
func (c Collision) WithCollisionType(t CollisionType) Collision { c.CollisionType = t; return c }
func (c Collision) WithVelocity(v VectorF32) Collision          { c.Velocity = v; return c }
func (c Collision) WithMass(m float32) Collision                { c.Mass = m; return c }
func (c Collision) WithLocation(v VectorF32) Collision          { c.Location = v; return c }

func parseCollisionBody(r *ByteReader, _ Options) (PduBody, error) {
	issuing, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	colliding, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	eventID, err := ParseEventId(r)
	if err != nil {
		return nil, err
	}
	ctype, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(1); err != nil {
		return nil, err
	}
	velocity, err := ParseVectorF32(r)
	if err != nil {
		return nil, err
	}
	mass, err := r.TakeF32()
	if err != nil {
		return nil, err
	}
	location, err := ParseVectorF32(r)
	if err != nil {
		return nil, err
	}
	return Collision{
		IssuingEntityID:   issuing,
		CollidingEntityID: colliding,
		EventID:           eventID,
		CollisionType:     CollisionTypeFromWire(ctype),
		Velocity:          velocity,
		Mass:              mass,
		Location:          location,
	}, nil
}

func (c Collision) SerializeDIS(w *ByteWriter) int {
	n := c.IssuingEntityID.SerializeDIS(w)
	n += c.CollidingEntityID.SerializeDIS(w)
	n += c.EventID.SerializeDIS(w)
	w.PutU8(c.CollisionType.Wire())
	w.PadZero(1)
	n += 1 + 1
	n += c.Velocity.SerializeDIS(w)
	w.PutF32(c.Mass)
	n += 4
	n += c.Location.SerializeDIS(w)
	return n
}

func (c Collision) BodyLengthBytes() int {
	return EntityIdLengthBytes*2 + EventIdLengthBytes + 1 + 1 + VectorF32LengthBytes + 4 + VectorF32LengthBytes
}

func (c Collision) BodyType() PduType     { return PduTypeCollision }
func (c Collision) Originator() *EntityId { return &c.IssuingEntityID }
func (c Collision) Receiver() *EntityId   { return &c.CollidingEntityID }
