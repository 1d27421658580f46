package cdis

import "github.com/discdis/gateway/dis"

// RadioEntityType mirrors dis.RadioEntityType.
type RadioEntityType struct {
	EntityKind          UVInt8
	Domain              UVInt8
	Country             UVInt16
	Category            UVInt8
	NomenclatureVersion UVInt8
	Nomenclature        UVInt16
}

func EncodeRadioEntityType(t dis.RadioEntityType) RadioEntityType {
	return RadioEntityType{
		EntityKind:          NewUVInt8(uint8(t.EntityKind)),
		Domain:              NewUVInt8(uint8(t.Domain)),
		Country:             NewUVInt16(t.Country),
		Category:            NewUVInt8(t.Category),
		NomenclatureVersion: NewUVInt8(t.NomenclatureVersion),
		Nomenclature:        NewUVInt16(t.Nomenclature),
	}
}

func (t RadioEntityType) Decode() dis.RadioEntityType {
	return dis.RadioEntityType{
		EntityKind:          dis.EntityKindFromWire(t.EntityKind.Value),
		Domain:              dis.DomainFromWire(t.Domain.Value),
		Country:             t.Country.Value,
		Category:            t.Category.Value,
		NomenclatureVersion: t.NomenclatureVersion.Value,
		Nomenclature:        t.Nomenclature.Value,
	}
}

func ParseRadioEntityType(r *BitReader) (RadioEntityType, error) {
	var t RadioEntityType
	var err error
	if t.EntityKind, err = DecodeUVInt8(r); err != nil {
		return RadioEntityType{}, err
	}
	if t.Domain, err = DecodeUVInt8(r); err != nil {
		return RadioEntityType{}, err
	}
	if t.Country, err = DecodeUVInt16(r); err != nil {
		return RadioEntityType{}, err
	}
	if t.Category, err = DecodeUVInt8(r); err != nil {
		return RadioEntityType{}, err
	}
	if t.NomenclatureVersion, err = DecodeUVInt8(r); err != nil {
		return RadioEntityType{}, err
	}
	if t.Nomenclature, err = DecodeUVInt16(r); err != nil {
		return RadioEntityType{}, err
	}
	return t, nil
}

func (t RadioEntityType) SerializeDIS(w *BitWriter) error {
	for _, f := range []UVInt8{t.EntityKind, t.Domain} {
		if err := f.Encode(w); err != nil {
			return err
		}
	}
	if err := t.Country.Encode(w); err != nil {
		return err
	}
	for _, f := range []UVInt8{t.Category, t.NomenclatureVersion} {
		if err := f.Encode(w); err != nil {
			return err
		}
	}
	return t.Nomenclature.Encode(w)
}

func (t RadioEntityType) BitLength() int {
	return t.EntityKind.BitLength() + t.Domain.BitLength() + t.Country.BitLength() +
		t.Category.BitLength() + t.NomenclatureVersion.BitLength() + t.Nomenclature.BitLength()
}

// ModulationType mirrors dis.ModulationType.
type ModulationType struct {
	SpreadSpectrum UVInt16
	Major          UVInt16
	Detail         UVInt16
	System         UVInt16
}

func EncodeModulationType(m dis.ModulationType) ModulationType {
	return ModulationType{
		SpreadSpectrum: NewUVInt16(m.SpreadSpectrum),
		Major:          NewUVInt16(m.Major),
		Detail:         NewUVInt16(m.Detail),
		System:         NewUVInt16(m.System),
	}
}

func (m ModulationType) Decode() dis.ModulationType {
	return dis.ModulationType{
		SpreadSpectrum: m.SpreadSpectrum.Value, Major: m.Major.Value, Detail: m.Detail.Value, System: m.System.Value,
	}
}

func ParseModulationType(r *BitReader) (ModulationType, error) {
	var m ModulationType
	var err error
	if m.SpreadSpectrum, err = DecodeUVInt16(r); err != nil {
		return ModulationType{}, err
	}
	if m.Major, err = DecodeUVInt16(r); err != nil {
		return ModulationType{}, err
	}
	if m.Detail, err = DecodeUVInt16(r); err != nil {
		return ModulationType{}, err
	}
	if m.System, err = DecodeUVInt16(r); err != nil {
		return ModulationType{}, err
	}
	return m, nil
}

func (m ModulationType) SerializeDIS(w *BitWriter) error {
	for _, f := range []UVInt16{m.SpreadSpectrum, m.Major, m.Detail, m.System} {
		if err := f.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (m ModulationType) BitLength() int {
	return m.SpreadSpectrum.BitLength() + m.Major.BitLength() + m.Detail.BitLength() + m.System.BitLength()
}

// Transmitter mirrors dis.Transmitter; antenna location stays a full
// WorldCoordinates (equipment placement, not entity kinematics) and
// the two variable-length parameter blocks are byte-aligned raw bytes
// same as Signal's audio payload.
type Transmitter struct {
	RadioEntityID              EntityId
	RadioID                    UVInt16
	EntityType                 RadioEntityType
	TransmitState              UVInt8
	InputSource                UVInt8
	AntennaLocation            WorldCoordinates
	RelativeAntennaLocation    EntityCoordinates
	AntennaPatternType         UVInt16
	Frequency                  uint64
	TransmitFrequencyBandwidth float32
	Power                      float32
	Modulation                 ModulationType
	CryptoSystem               UVInt16
	CryptoKeyID                UVInt16
	ModulationParameters       []byte
	AntennaPatternParameters   []byte
}

func EncodeTransmitter(t dis.Transmitter) Transmitter {
	return Transmitter{
		RadioEntityID:              EncodeEntityId(t.RadioEntityID),
		RadioID:                    NewUVInt16(t.RadioID),
		EntityType:                 EncodeRadioEntityType(t.EntityType),
		TransmitState:              NewUVInt8(t.TransmitState),
		InputSource:                NewUVInt8(t.InputSource),
		AntennaLocation:            EncodeWorldCoordinates(t.AntennaLocation),
		RelativeAntennaLocation:    EncodeEntityCoordinates(t.RelativeAntennaLocation),
		AntennaPatternType:         NewUVInt16(t.AntennaPatternType),
		Frequency:                  t.Frequency,
		TransmitFrequencyBandwidth: t.TransmitFrequencyBandwidth,
		Power:                      t.Power,
		Modulation:                 EncodeModulationType(t.Modulation),
		CryptoSystem:               NewUVInt16(t.CryptoSystem),
		CryptoKeyID:                NewUVInt16(t.CryptoKeyID),
		ModulationParameters:       t.ModulationParameters,
		AntennaPatternParameters:   t.AntennaPatternParameters,
	}
}

func (t Transmitter) Decode() dis.Transmitter {
	return dis.Transmitter{
		RadioEntityID:              t.RadioEntityID.Decode(),
		RadioID:                    t.RadioID.Value,
		EntityType:                 t.EntityType.Decode(),
		TransmitState:              t.TransmitState.Value,
		InputSource:                t.InputSource.Value,
		AntennaLocation:            t.AntennaLocation.Decode(),
		RelativeAntennaLocation:    t.RelativeAntennaLocation.Decode(),
		AntennaPatternType:         t.AntennaPatternType.Value,
		Frequency:                  t.Frequency,
		TransmitFrequencyBandwidth: t.TransmitFrequencyBandwidth,
		Power:                      t.Power,
		Modulation:                 t.Modulation.Decode(),
		CryptoSystem:               t.CryptoSystem.Value,
		CryptoKeyID:                t.CryptoKeyID.Value,
		ModulationParameters:       t.ModulationParameters,
		AntennaPatternParameters:   t.AntennaPatternParameters,
	}
}

func parseVarBytes(r *BitReader) ([]byte, error) {
	length, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	r.AlignToByte()
	data := make([]byte, length.Value)
	for i := range data {
		b, err := r.TakeUnsigned(8)
		if err != nil {
			return nil, err
		}
		data[i] = byte(b)
	}
	return data, nil
}

func serializeVarBytes(w *BitWriter, data []byte) error {
	if err := NewUVInt16(uint16(len(data))).Encode(w); err != nil {
		return err
	}
	w.AlignToByte()
	for _, b := range data {
		w.WriteUnsigned(uint64(b), 8)
	}
	return nil
}

func varBytesBitLength(data []byte) int {
	return NewUVInt16(uint16(len(data))).BitLength() + len(data)*8
}

func parseTransmitterBody(r *BitReader) (Body, error) {
	radioEntityID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	radioID, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	entityType, err := ParseRadioEntityType(r)
	if err != nil {
		return nil, err
	}
	transmitState, err := DecodeUVInt8(r)
	if err != nil {
		return nil, err
	}
	inputSource, err := DecodeUVInt8(r)
	if err != nil {
		return nil, err
	}
	antennaLocation, err := ParseWorldCoordinates(r)
	if err != nil {
		return nil, err
	}
	relativeAntenna, err := ParseEntityCoordinates(r)
	if err != nil {
		return nil, err
	}
	antennaPatternType, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	frequency, err := r.TakeUnsigned(64)
	if err != nil {
		return nil, err
	}
	bandwidthBits, err := r.TakeUnsigned(32)
	if err != nil {
		return nil, err
	}
	powerBits, err := r.TakeUnsigned(32)
	if err != nil {
		return nil, err
	}
	modulation, err := ParseModulationType(r)
	if err != nil {
		return nil, err
	}
	cryptoSystem, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	cryptoKeyID, err := DecodeUVInt16(r)
	if err != nil {
		return nil, err
	}
	modulationParams, err := parseVarBytes(r)
	if err != nil {
		return nil, err
	}
	antennaPatternParams, err := parseVarBytes(r)
	if err != nil {
		return nil, err
	}
	return Transmitter{
		RadioEntityID: radioEntityID, RadioID: radioID, EntityType: entityType,
		TransmitState: transmitState, InputSource: inputSource,
		AntennaLocation: antennaLocation, RelativeAntennaLocation: relativeAntenna,
		AntennaPatternType: antennaPatternType, Frequency: uint64(frequency),
		TransmitFrequencyBandwidth: float32FromBits(uint32(bandwidthBits)),
		Power:                      float32FromBits(uint32(powerBits)),
		Modulation:                 modulation, CryptoSystem: cryptoSystem, CryptoKeyID: cryptoKeyID,
		ModulationParameters: modulationParams, AntennaPatternParameters: antennaPatternParams,
	}, nil
}

func (t Transmitter) SerializeDIS(w *BitWriter) error {
	if err := t.RadioEntityID.SerializeDIS(w); err != nil {
		return err
	}
	if err := t.RadioID.Encode(w); err != nil {
		return err
	}
	if err := t.EntityType.SerializeDIS(w); err != nil {
		return err
	}
	if err := t.TransmitState.Encode(w); err != nil {
		return err
	}
	if err := t.InputSource.Encode(w); err != nil {
		return err
	}
	if err := t.AntennaLocation.SerializeDIS(w); err != nil {
		return err
	}
	if err := t.RelativeAntennaLocation.SerializeDIS(w); err != nil {
		return err
	}
	if err := t.AntennaPatternType.Encode(w); err != nil {
		return err
	}
	w.WriteUnsigned(t.Frequency, 64)
	w.WriteUnsigned(uint64(float32Bits(t.TransmitFrequencyBandwidth)), 32)
	w.WriteUnsigned(uint64(float32Bits(t.Power)), 32)
	if err := t.Modulation.SerializeDIS(w); err != nil {
		return err
	}
	if err := t.CryptoSystem.Encode(w); err != nil {
		return err
	}
	if err := t.CryptoKeyID.Encode(w); err != nil {
		return err
	}
	if err := serializeVarBytes(w, t.ModulationParameters); err != nil {
		return err
	}
	return serializeVarBytes(w, t.AntennaPatternParameters)
}

func (t Transmitter) BodyBitLength() int {
	return t.RadioEntityID.BitLength() + t.RadioID.BitLength() + t.EntityType.BitLength() +
		t.TransmitState.BitLength() + t.InputSource.BitLength() + t.AntennaLocation.BitLength() +
		t.RelativeAntennaLocation.BitLength() + t.AntennaPatternType.BitLength() + 64 + 32 + 32 +
		t.Modulation.BitLength() + t.CryptoSystem.BitLength() + t.CryptoKeyID.BitLength() +
		varBytesBitLength(t.ModulationParameters) + varBytesBitLength(t.AntennaPatternParameters)
}

func (t Transmitter) BodyType() dis.PduType  { return dis.PduTypeTransmitter }
func (t Transmitter) EncodeDIS() dis.PduBody { return t.Decode() }
