package dis

/*
RadioEntityType identifies the kind of radio mounted on an entity,
distinct from EntityType. Grounded on
original_source/dis-rs/src/common/model/radio_entity_type.rs: u8 kind +
u8 domain + u16 country + u8 category + u8 nomenclature version + u16
nomenclature, 8 bytes.
*/
type RadioEntityType struct {
	EntityKind            EntityKind
	Domain                Domain
	Country               uint16
	Category              uint8
	NomenclatureVersion   uint8
	Nomenclature          uint16
}

const RadioEntityTypeLengthBytes = 8

func ParseRadioEntityType(r *ByteReader) (RadioEntityType, error) {
	kind, err := r.TakeU8()
	if err != nil {
		return RadioEntityType{}, err
	}
	domain, err := r.TakeU8()
	if err != nil {
		return RadioEntityType{}, err
	}
	country, err := r.TakeU16()
	if err != nil {
		return RadioEntityType{}, err
	}
	category, err := r.TakeU8()
	if err != nil {
		return RadioEntityType{}, err
	}
	version, err := r.TakeU8()
	if err != nil {
		return RadioEntityType{}, err
	}
	nomenclature, err := r.TakeU16()
	if err != nil {
		return RadioEntityType{}, err
	}
	return RadioEntityType{
		EntityKind:          EntityKindFromWire(kind),
		Domain:              DomainFromWire(domain),
		Country:             country,
		Category:            category,
		NomenclatureVersion: version,
		Nomenclature:        nomenclature,
	}, nil
}

func (t RadioEntityType) SerializeDIS(w *ByteWriter) int {
	w.PutU8(t.EntityKind.Wire())
	w.PutU8(t.Domain.Wire())
	w.PutU16(t.Country)
	w.PutU8(t.Category)
	w.PutU8(t.NomenclatureVersion)
	w.PutU16(t.Nomenclature)
	return RadioEntityTypeLengthBytes
}

// ModulationType describes how a radio's carrier is modulated.
type ModulationType struct {
	SpreadSpectrum uint16
	Major          uint16
	Detail         uint16
	System         uint16
}

const ModulationTypeLengthBytes = 8

func ParseModulationType(r *ByteReader) (ModulationType, error) {
	spread, err := r.TakeU16()
	if err != nil {
		return ModulationType{}, err
	}
	major, err := r.TakeU16()
	if err != nil {
		return ModulationType{}, err
	}
	detail, err := r.TakeU16()
	if err != nil {
		return ModulationType{}, err
	}
	system, err := r.TakeU16()
	if err != nil {
		return ModulationType{}, err
	}
	return ModulationType{SpreadSpectrum: spread, Major: major, Detail: detail, System: system}, nil
}

func (m ModulationType) SerializeDIS(w *ByteWriter) int {
	w.PutU16(m.SpreadSpectrum)
	w.PutU16(m.Major)
	w.PutU16(m.Detail)
	w.PutU16(m.System)
	return ModulationTypeLengthBytes
}

/*
Transmitter reports a radio's configuration and transmit state.
Grounded on original_source/dis-rs/src/common/transmitter/{model,
parser,writer}.rs: EntityId + u16 radio id + RadioEntityType + u8
transmit state + u8 input source + u16 padding + WorldCoordinates
antenna location + VectorF32 relative antenna location + u16 antenna
pattern type + u16 antenna pattern param length + u64 frequency +
float32 transmit frequency bandwidth + float32 power + ModulationType
+ u16 crypto system + u16 crypto key id + u8 modulation param count +
3 bytes padding + modulation parameters (raw, padded to 8-byte
boundary) + antenna pattern parameters (raw, padded to 8-byte
boundary).
*/
type Transmitter struct {
	RadioEntityID            EntityId
	RadioID                  uint16
	EntityType               RadioEntityType
	TransmitState            uint8
	InputSource              uint8
	AntennaLocation          WorldCoordinates
	RelativeAntennaLocation  VectorF32
	AntennaPatternType       uint16
	Frequency                uint64
	TransmitFrequencyBandwidth float32
	Power                    float32
	Modulation               ModulationType
	CryptoSystem             uint16
	CryptoKeyID              uint16
	ModulationParameters     []byte
	AntennaPatternParameters []byte
}

func NewTransmitter() Transmitter { return Transmitter{} }

func (t Transmitter) WithRadioEntityID(id EntityId) Transmitter { t.RadioEntityID = id; return t }
func (t Transmitter) WithRadioID(id uint16) Transmitter         { t.RadioID = id; return t }
func (t Transmitter) WithEntityType(et RadioEntityType) Transmitter {
	t.EntityType = et
	return t
}
func (t Transmitter) WithTransmitState(s uint8) Transmitter { t.TransmitState = s; return t }
func (t Transmitter) WithInputSource(s uint8) Transmitter   { t.InputSource = s; return t }
func (t Transmitter) WithAntennaLocation(l WorldCoordinates) Transmitter {
	t.AntennaLocation = l
	return t
}
func (t Transmitter) WithRelativeAntennaLocation(v VectorF32) Transmitter {
	t.RelativeAntennaLocation = v
	return t
}
func (t Transmitter) WithAntennaPatternType(a uint16) Transmitter {
	t.AntennaPatternType = a
	return t
}
func (t Transmitter) WithFrequency(f uint64) Transmitter { t.Frequency = f; return t }
func (t Transmitter) WithTransmitFrequencyBandwidth(b float32) Transmitter {
	t.TransmitFrequencyBandwidth = b
	return t
}
func (t Transmitter) WithPower(p float32) Transmitter { t.Power = p; return t }
func (t Transmitter) WithModulation(m ModulationType) Transmitter {
	t.Modulation = m
	return t
}
func (t Transmitter) WithCryptoSystem(c uint16) Transmitter { t.CryptoSystem = c; return t }
func (t Transmitter) WithCryptoKeyID(c uint16) Transmitter  { t.CryptoKeyID = c; return t }
func (t Transmitter) WithModulationParameters(b []byte) Transmitter {
	t.ModulationParameters = b
	return t
}
func (t Transmitter) WithAntennaPatternParameters(b []byte) Transmitter {
	t.AntennaPatternParameters = b
	return t
}

func parseTransmitterBody(r *ByteReader, _ Options) (PduBody, error) {
	radioEntityID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	radioID, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	entityType, err := ParseRadioEntityType(r)
	if err != nil {
		return nil, err
	}
	transmitState, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	inputSource, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	antennaLocation, err := ParseWorldCoordinates(r)
	if err != nil {
		return nil, err
	}
	relativeAntenna, err := ParseVectorF32(r)
	if err != nil {
		return nil, err
	}
	antennaPatternType, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	antennaPatternParamLen, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	frequency, err := r.TakeU64()
	if err != nil {
		return nil, err
	}
	bandwidth, err := r.TakeF32()
	if err != nil {
		return nil, err
	}
	power, err := r.TakeF32()
	if err != nil {
		return nil, err
	}
	modulation, err := ParseModulationType(r)
	if err != nil {
		return nil, err
	}
	cryptoSystem, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	cryptoKeyID, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	modParamCount, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(3); err != nil {
		return nil, err
	}
	modParams, err := r.TakeN(paddedLen(int(modParamCount)))
	if err != nil {
		return nil, err
	}
	antennaParams, err := r.TakeN(paddedLen(int(antennaPatternParamLen)))
	if err != nil {
		return nil, err
	}
	return Transmitter{
		RadioEntityID:              radioEntityID,
		RadioID:                    radioID,
		EntityType:                 entityType,
		TransmitState:              transmitState,
		InputSource:                inputSource,
		AntennaLocation:            antennaLocation,
		RelativeAntennaLocation:    relativeAntenna,
		AntennaPatternType:         antennaPatternType,
		Frequency:                  frequency,
		TransmitFrequencyBandwidth: bandwidth,
		Power:                      power,
		Modulation:                 modulation,
		CryptoSystem:               cryptoSystem,
		CryptoKeyID:                cryptoKeyID,
		ModulationParameters:       modParams,
		AntennaPatternParameters:   antennaParams,
	}, nil
}

func (t Transmitter) SerializeDIS(w *ByteWriter) int {
	n := t.RadioEntityID.SerializeDIS(w)
	w.PutU16(t.RadioID)
	n += 2
	n += t.EntityType.SerializeDIS(w)
	w.PutU8(t.TransmitState)
	w.PutU8(t.InputSource)
	w.PadZero(2)
	n += 1 + 1 + 2
	n += t.AntennaLocation.SerializeDIS(w)
	n += t.RelativeAntennaLocation.SerializeDIS(w)
	w.PutU16(t.AntennaPatternType)
	w.PutU16(uint16(len(t.AntennaPatternParameters)))
	n += 2 + 2
	w.PutU64(t.Frequency)
	n += 8
	w.PutF32(t.TransmitFrequencyBandwidth)
	w.PutF32(t.Power)
	n += 4 + 4
	n += t.Modulation.SerializeDIS(w)
	w.PutU16(t.CryptoSystem)
	w.PutU16(t.CryptoKeyID)
	n += 2 + 2
	w.PutU8(uint8(len(t.ModulationParameters)))
	w.PadZero(3)
	n += 1 + 3
	w.PutN(t.ModulationParameters)
	w.PadZero(paddedLen(len(t.ModulationParameters)) - len(t.ModulationParameters))
	n += paddedLen(len(t.ModulationParameters))
	w.PutN(t.AntennaPatternParameters)
	w.PadZero(paddedLen(len(t.AntennaPatternParameters)) - len(t.AntennaPatternParameters))
	n += paddedLen(len(t.AntennaPatternParameters))
	return n
}

func (t Transmitter) BodyLengthBytes() int {
	return EntityIdLengthBytes + 2 + RadioEntityTypeLengthBytes + 1 + 1 + 2 + WorldCoordinatesLengthBytes +
		VectorF32LengthBytes + 2 + 2 + 8 + 4 + 4 + ModulationTypeLengthBytes + 2 + 2 + 1 + 3 +
		paddedLen(len(t.ModulationParameters)) + paddedLen(len(t.AntennaPatternParameters))
}

func (t Transmitter) BodyType() PduType     { return PduTypeTransmitter }
func (t Transmitter) Originator() *EntityId { return &t.RadioEntityID }
func (t Transmitter) Receiver() *EntityId   { return nil }
