package cdis

import "github.com/discdis/gateway/dis"

// Designator mirrors dis.Designator; Power/Wavelength stay full
// precision floats, SpotRelativeToDesignated is a small offset vector
// (entity-coordinate scaling) and SpotLocation a full world point.
type Designator struct {
	DesignatingEntityID      EntityId
	CodeName                 UVInt16
	DesignatedEntityID       EntityId
	DesignatorCode           UVInt16
	Power                    float32
	Wavelength               float32
	SpotRelativeToDesignated EntityCoordinates
	SpotLocation             WorldCoordinates
	DeadReckoningAlgorithm   UVInt8
}

func EncodeDesignator(d dis.Designator) Designator {
	return Designator{
		DesignatingEntityID:      EncodeEntityId(d.DesignatingEntityID),
		CodeName:                 NewUVInt16(d.CodeName),
		DesignatedEntityID:       EncodeEntityId(d.DesignatedEntityID),
		DesignatorCode:           NewUVInt16(d.DesignatorCode),
		Power:                    d.Power,
		Wavelength:               d.Wavelength,
		SpotRelativeToDesignated: EncodeEntityCoordinates(d.SpotRelativeToDesignated),
		SpotLocation:             EncodeWorldCoordinates(d.SpotLocation),
		DeadReckoningAlgorithm:   NewUVInt8(d.DeadReckoningAlgorithm.Wire()),
	}
}

func (d Designator) Decode() dis.Designator {
	return dis.Designator{
		DesignatingEntityID:      d.DesignatingEntityID.Decode(),
		CodeName:                 d.CodeName.Value,
		DesignatedEntityID:       d.DesignatedEntityID.Decode(),
		DesignatorCode:           d.DesignatorCode.Value,
		Power:                    d.Power,
		Wavelength:               d.Wavelength,
		SpotRelativeToDesignated: d.SpotRelativeToDesignated.Decode(),
		SpotLocation:             d.SpotLocation.Decode(),
		DeadReckoningAlgorithm:   dis.DeadReckoningAlgorithmFromWire(d.DeadReckoningAlgorithm.Value),
	}
}

func parseDesignatorBody(r *BitReader) (Body, error) {
	designating, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	codeName, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	designated, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	designatorCode, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	powerBits, err := r.TakeUnsigned(32)
	if err != nil {
		return nil, err
	}
	wavelengthBits, err := r.TakeUnsigned(32)
	if err != nil {
		return nil, err
	}
	spot, err := ParseEntityCoordinates(r)
	if err != nil {
		return nil, err
	}
	location, err := ParseWorldCoordinates(r)
	if err != nil {
		return nil, err
	}
	algorithm, err := DecodeUVInt8(r)
	if err != nil {
		return nil, err
	}
	return Designator{
		DesignatingEntityID: designating, CodeName: codeName, DesignatedEntityID: designated,
		DesignatorCode: designatorCode, Power: float32FromBits(uint32(powerBits)),
		Wavelength: float32FromBits(uint32(wavelengthBits)), SpotRelativeToDesignated: spot,
		SpotLocation: location, DeadReckoningAlgorithm: algorithm,
	}, nil
}

func (d Designator) SerializeDIS(w *BitWriter) error {
	if err := d.DesignatingEntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.CodeName.Encode(w); err != nil {
		return err
	}
	if err := d.DesignatedEntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.DesignatorCode.Encode(w); err != nil {
		return err
	}
	w.WriteUnsigned(uint64(float32Bits(d.Power)), 32)
	w.WriteUnsigned(uint64(float32Bits(d.Wavelength)), 32)
	if err := d.SpotRelativeToDesignated.SerializeDIS(w); err != nil {
		return err
	}
	if err := d.SpotLocation.SerializeDIS(w); err != nil {
		return err
	}
	return d.DeadReckoningAlgorithm.Encode(w)
}

func (d Designator) BodyBitLength() int {
	return d.DesignatingEntityID.BitLength() + d.CodeName.BitLength() + d.DesignatedEntityID.BitLength() +
		d.DesignatorCode.BitLength() + 32 + 32 + d.SpotRelativeToDesignated.BitLength() +
		d.SpotLocation.BitLength() + d.DeadReckoningAlgorithm.BitLength()
}

func (d Designator) BodyType() dis.PduType  { return dis.PduTypeDesignator }
func (d Designator) EncodeDIS() dis.PduBody { return d.Decode() }
