package dis

/*
Designator reports where a laser/IR designator is pointing relative to
a designated entity. Grounded on
original_source/dis-rs/src/common/designator/{model,parser,writer}.rs:
EntityId (designating) + u16 code name + EntityId (designated) + u16
designator code + float32 power + float32 wavelength + VectorF32 spot
w.r.t. designated entity + WorldCoordinates spot location + u8 dead
reckoning algorithm + 3 bytes padding.
*/
type Designator struct {
	DesignatingEntityID EntityId
	CodeName            uint16
	DesignatedEntityID  EntityId
	DesignatorCode      uint16
	Power               float32
	Wavelength          float32
	SpotRelativeToDesignated VectorF32
	SpotLocation        WorldCoordinates
	DeadReckoningAlgorithm DeadReckoningAlgorithm
}

func NewDesignator() Designator { return Designator{} }

func (d Designator) WithDesignatingEntityID(id EntityId) Designator {
	d.DesignatingEntityID = id
	return d
}
func (d Designator) WithCodeName(c uint16) Designator { d.CodeName = c; return d }
func (d Designator) WithDesignatedEntityID(id EntityId) Designator {
	d.DesignatedEntityID = id
	return d
}
func (d Designator) WithDesignatorCode(c uint16) Designator { d.DesignatorCode = c; return d }
func (d Designator) WithPower(p float32) Designator         { d.Power = p; return d }
func (d Designator) WithWavelength(w float32) Designator    { d.Wavelength = w; return d }
func (d Designator) WithSpotRelativeToDesignated(v VectorF32) Designator {
	d.SpotRelativeToDesignated = v
	return d
}
func (d Designator) WithSpotLocation(l WorldCoordinates) Designator {
	d.SpotLocation = l
	return d
}
func (d Designator) WithDeadReckoningAlgorithm(a DeadReckoningAlgorithm) Designator {
	d.DeadReckoningAlgorithm = a
	return d
}

func parseDesignatorBody(r *ByteReader, _ Options) (PduBody, error) {
	designating, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	codeName, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	designated, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	designatorCode, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	power, err := r.TakeF32()
	if err != nil {
		return nil, err
	}
	wavelength, err := r.TakeF32()
	if err != nil {
		return nil, err
	}
	spot, err := ParseVectorF32(r)
	if err != nil {
		return nil, err
	}
	location, err := ParseWorldCoordinates(r)
	if err != nil {
		return nil, err
	}
	algorithm, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(3); err != nil {
		return nil, err
	}
	return Designator{
		DesignatingEntityID:      designating,
		CodeName:                 codeName,
		DesignatedEntityID:       designated,
		DesignatorCode:           designatorCode,
		Power:                    power,
		Wavelength:               wavelength,
		SpotRelativeToDesignated: spot,
		SpotLocation:             location,
		DeadReckoningAlgorithm:   DeadReckoningAlgorithmFromWire(algorithm),
	}, nil
}

func (d Designator) SerializeDIS(w *ByteWriter) int {
	n := d.DesignatingEntityID.SerializeDIS(w)
	w.PutU16(d.CodeName)
	n += 2
	n += d.DesignatedEntityID.SerializeDIS(w)
	w.PutU16(d.DesignatorCode)
	n += 2
	w.PutF32(d.Power)
	w.PutF32(d.Wavelength)
	n += 4 + 4
	n += d.SpotRelativeToDesignated.SerializeDIS(w)
	n += d.SpotLocation.SerializeDIS(w)
	w.PutU8(d.DeadReckoningAlgorithm.Wire())
	w.PadZero(3)
	n += 1 + 3
	return n
}

func (d Designator) BodyLengthBytes() int {
	return EntityIdLengthBytes*2 + 2 + 2 + 4 + 4 + VectorF32LengthBytes + WorldCoordinatesLengthBytes + 1 + 3
}

func (d Designator) BodyType() PduType     { return PduTypeDesignator }
func (d Designator) Originator() *EntityId { return &d.DesignatingEntityID }
func (d Designator) Receiver() *EntityId   { return &d.DesignatedEntityID }
