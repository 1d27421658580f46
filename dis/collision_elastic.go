package dis

/*
CollisionElastic reports an elastic collision with enough detail to
reconstruct post-collision momentum; an extension of Collision added in
IEEE 1278.1-2012. Grounded on
original_source/dis-rs/src/common/collision_elastic/{model,parser,
writer}.rs: EntityId (issuing) + EntityId (colliding) + EventId + u16
padding + VectorF32 contact velocity + float32 mass + VectorF32 location
+ VectorF32 intermediate result surface normal + VectorF32 intermediate
result angular velocity + float32 mass (collision) + float32 collision
intermediate result coefficient of restitution.
*/
type CollisionElastic struct {
	IssuingEntityID      EntityId
	CollidingEntityID    EntityId
	EventID              EventId
	ContactVelocity      VectorF32
	Mass                 float32
	Location             VectorF32
	IntermediateNormal   VectorF32
	IntermediateAngular  VectorF32
	CollisionMass        float32
	CoefficientOfRestitution float32
}

func NewCollisionElastic() CollisionElastic { return CollisionElastic{} }

func (c CollisionElastic) WithIssuingEntityID(id EntityId) CollisionElastic {
	c.IssuingEntityID = id
	return c
}
func (c CollisionElastic) WithCollidingEntityID(id EntityId) CollisionElastic {
	c.CollidingEntityID = id
	return c
}
func (c CollisionElastic) WithEventID(id EventId) CollisionElastic { c.EventID = id; return c }
func (c CollisionElastic) WithContactVelocity(v VectorF32) CollisionElastic {
	c.ContactVelocity = v
	return c
}
func (c CollisionElastic) WithMass(m float32) CollisionElastic { c.Mass = m; return c }
func (c CollisionElastic) WithLocation(v VectorF32) CollisionElastic {
	c.Location = v
	return c
}
func (c CollisionElastic) WithIntermediateNormal(v VectorF32) CollisionElastic {
	c.IntermediateNormal = v
	return c
}
func (c CollisionElastic) WithIntermediateAngular(v VectorF32) CollisionElastic {
	c.IntermediateAngular = v
	return c
}
func (c CollisionElastic) WithCollisionMass(m float32) CollisionElastic {
	c.CollisionMass = m
	return c
}
func (c CollisionElastic) WithCoefficientOfRestitution(v float32) CollisionElastic {
	c.CoefficientOfRestitution = v
	return c
}

func parseCollisionElasticBody(r *ByteReader, _ Options) (PduBody, error) {
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
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	contactVelocity, err := ParseVectorF32(r)
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
	normal, err := ParseVectorF32(r)
	if err != nil {
		return nil, err
	}
	angular, err := ParseVectorF32(r)
	if err != nil {
		return nil, err
	}
	collisionMass, err := r.TakeF32()
	if err != nil {
		return nil, err
	}
	restitution, err := r.TakeF32()
	if err != nil {
		return nil, err
	}
	return CollisionElastic{
		IssuingEntityID:          issuing,
		CollidingEntityID:        colliding,
		EventID:                  eventID,
		ContactVelocity:          contactVelocity,
		Mass:                     mass,
		Location:                 location,
		IntermediateNormal:       normal,
		IntermediateAngular:      angular,
		CollisionMass:            collisionMass,
		CoefficientOfRestitution: restitution,
	}, nil
}

func (c CollisionElastic) SerializeDIS(w *ByteWriter) int {
	n := c.IssuingEntityID.SerializeDIS(w)
	n += c.CollidingEntityID.SerializeDIS(w)
	n += c.EventID.SerializeDIS(w)
	w.PadZero(2)
	n += 2
	n += c.ContactVelocity.SerializeDIS(w)
	w.PutF32(c.Mass)
	n += 4
	n += c.Location.SerializeDIS(w)
	n += c.IntermediateNormal.SerializeDIS(w)
	n += c.IntermediateAngular.SerializeDIS(w)
	w.PutF32(c.CollisionMass)
	w.PutF32(c.CoefficientOfRestitution)
	n += 4 + 4
	return n
}

func (c CollisionElastic) BodyLengthBytes() int {
	return EntityIdLengthBytes*2 + EventIdLengthBytes + 2 + VectorF32LengthBytes*4 + 4 + 4 + 4
}

func (c CollisionElastic) BodyType() PduType     { return PduTypeCollisionElastic }
func (c CollisionElastic) Originator() *EntityId { return &c.IssuingEntityID }
func (c CollisionElastic) Receiver() *EntityId   { return &c.CollidingEntityID }
