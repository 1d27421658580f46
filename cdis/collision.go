package cdis

import "github.com/discdis/gateway/dis"

// Collision mirrors dis.Collision; Velocity and Location are both
// small offset vectors (not world-frame), so both take the entity
// coordinate/velocity scaling rather than full WorldCoordinates.
type Collision struct {
	IssuingEntityID   EntityId
	CollidingEntityID EntityId
	EventID           EventId
	CollisionType      UVInt8
	Velocity          LinearVelocity
	Mass              float32
	Location          EntityCoordinates
}

func EncodeCollision(c dis.Collision) Collision {
	return Collision{
		IssuingEntityID:   EncodeEntityId(c.IssuingEntityID),
		CollidingEntityID: EncodeEntityId(c.CollidingEntityID),
		EventID:           EncodeEventId(c.EventID),
		CollisionType:     NewUVInt8(c.CollisionType.Wire()),
		Velocity:          EncodeLinearVelocity(c.Velocity),
		Mass:              c.Mass,
		Location:          EncodeEntityCoordinates(c.Location),
	}
}

func (c Collision) Decode() dis.Collision {
	return dis.Collision{
		IssuingEntityID:   c.IssuingEntityID.Decode(),
		CollidingEntityID: c.CollidingEntityID.Decode(),
		EventID:           c.EventID.Decode(),
		CollisionType:     dis.CollisionTypeFromWire(c.CollisionType.Value),
		Velocity:          c.Velocity.Decode(),
		Mass:              c.Mass,
		Location:          c.Location.Decode(),
	}
}

func parseCollisionBody(r *BitReader) (Body, error) {
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
	ctype, err := DecodeUVInt8(r)
	if err != nil {
		return nil, err
	}
	velocity, err := ParseLinearVelocity(r)
	if err != nil {
		return nil, err
	}
	massBits, err := r.TakeUnsigned(32)
	if err != nil {
		return nil, err
	}
	location, err := ParseEntityCoordinates(r)
	if err != nil {
		return nil, err
	}
	return Collision{
		IssuingEntityID: issuing, CollidingEntityID: colliding, EventID: eventID,
		CollisionType: ctype, Velocity: velocity, Mass: float32FromBits(uint32(massBits)), Location: location,
	}, nil
}

func (c Collision) SerializeDIS(w *BitWriter) error {
	if err := c.IssuingEntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := c.CollidingEntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := c.EventID.SerializeDIS(w); err != nil {
		return err
	}
	if err := c.CollisionType.Encode(w); err != nil {
		return err
	}
	if err := c.Velocity.SerializeDIS(w); err != nil {
		return err
	}
	w.WriteUnsigned(uint64(float32Bits(c.Mass)), 32)
	return c.Location.SerializeDIS(w)
}

func (c Collision) BodyBitLength() int {
	return c.IssuingEntityID.BitLength() + c.CollidingEntityID.BitLength() + c.EventID.BitLength() +
		c.CollisionType.BitLength() + c.Velocity.BitLength() + 32 + c.Location.BitLength()
}

func (c Collision) BodyType() dis.PduType  { return dis.PduTypeCollision }
func (c Collision) EncodeDIS() dis.PduBody { return c.Decode() }
