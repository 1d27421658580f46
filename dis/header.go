package dis

// PduHeaderLenBytes is the fixed DIS PDU header length (spec.md §3/§6).
const PduHeaderLenBytes = 12

/*
PduStatus is the v7 6-bit status bitmap whose meaning depends on the
PDU type it rides with (spec.md §4.5/§9). Bit layout follows IEEE
1278.1-2012 Table 5, per the design-notes' direction to resolve the
partially-specified original this way.
*/
type PduStatus uint8

const (
	pduStatusTEIBit  = 0x01 // Transferred Entity Indicator
	pduStatusLVCMask = 0x06 // LVC Indicator, 2 bits
	pduStatusCEIBit  = 0x08 // Coupled Extension Indicator
	pduStatusFTIBit  = 0x10 // Fire Type Indicator / Radio Attached Indicator
	pduStatusDTIBit  = 0x20 // Detonation Type Indicator / Intercom Attached Indicator
)

// LVCIndicator enumerates the Live/Virtual/Constructive status bits.
type LVCIndicator uint8

const (
	LVCIndicatorNoStatement LVCIndicator = 0
	LVCIndicatorLive        LVCIndicator = 1
	LVCIndicatorVirtual     LVCIndicator = 2
	LVCIndicatorConstructive LVCIndicator = 3
)

// TransferredEntityIndicator reports whether ownership transfer is
// indicated; applicable to EntityState per Table 5.
func (s PduStatus) TransferredEntityIndicator(t PduType) (bool, bool) {
	if t != PduTypeEntityState {
		return false, false
	}
	return s&pduStatusTEIBit != 0, true
}

// LVC reports the Live/Virtual/Constructive indicator; applicable to
// all PDU types per Table 5.
func (s PduStatus) LVC() LVCIndicator {
	return LVCIndicator((s & pduStatusLVCMask) >> 1)
}

// CoupledExtensionIndicator reports whether this is a coupled PDU;
// applicable to Detonation and IsPartOf per Table 5.
func (s PduStatus) CoupledExtensionIndicator(t PduType) (bool, bool) {
	if t != PduTypeDetonation && t != PduTypeIsPartOf {
		return false, false
	}
	return s&pduStatusCEIBit != 0, true
}

// FireTypeIndicator/RadioAttachedIndicator share bit 4; meaning
// depends on PDU type per Table 5.
func (s PduStatus) FireTypeIndicator(t PduType) (bool, bool) {
	if t != PduTypeFire && t != PduTypeDetonation {
		return false, false
	}
	return s&pduStatusFTIBit != 0, true
}

func (s PduStatus) RadioAttachedIndicator(t PduType) (bool, bool) {
	switch t {
	case PduTypeTransmitter, PduTypeSignal, PduTypeReceiver:
		return s&pduStatusFTIBit != 0, true
	default:
		return false, false
	}
}

// DetonationTypeIndicator reports the munition/expendable distinction
// on a Detonation PDU per Table 5.
func (s PduStatus) DetonationTypeIndicator(t PduType) (bool, bool) {
	if t != PduTypeDetonation {
		return false, false
	}
	return s&pduStatusDTIBit != 0, true
}

// NewPduStatus composes a PduStatus from its component bits.
func NewPduStatus(transferredEntity bool, lvc LVCIndicator, coupled, fireOrDetOrRadio, detonationType bool) PduStatus {
	var s PduStatus
	if transferredEntity {
		s |= pduStatusTEIBit
	}
	s |= PduStatus(lvc) << 1
	if coupled {
		s |= pduStatusCEIBit
	}
	if fireOrDetOrRadio {
		s |= pduStatusFTIBit
	}
	if detonationType {
		s |= pduStatusDTIBit
	}
	return s
}

// Header is the common 12-byte DIS PDU header, v6 and v7, per spec.md §3/§4.5.
type Header struct {
	ProtocolVersion uint8
	ExerciseID      uint8
	PduType         PduType
	ProtocolFamily  ProtocolFamily
	Timestamp       uint32
	PduLength       uint16
	// PduStatus is only meaningful when ProtocolVersion == 7.
	PduStatus PduStatus
}

const (
	ProtocolVersion6 uint8 = 6
	ProtocolVersion7 uint8 = 7
)

// PeekProtocolVersion inspects the first header byte to decide between
// v6 and v7 body dispatch without consuming input (spec.md §4.5).
func PeekProtocolVersion(r *ByteReader) (uint8, error) {
	return r.PeekU8()
}

// ParseHeader parses the 12-byte header common prefix, handling both
// v6 (2 bytes padding) and v7 (status byte + 1 byte padding) tails.
func ParseHeader(r *ByteReader) (Header, error) {
	if r.Remaining() < PduHeaderLenBytes {
		return Header{}, InsufficientHeaderError{Have: r.Remaining()}
	}
	version, err := r.TakeU8()
	if err != nil {
		return Header{}, err
	}
	if version != ProtocolVersion6 && version != ProtocolVersion7 {
		return Header{}, UnsupportedVersionError{Version: version}
	}
	exerciseID, err := r.TakeU8()
	if err != nil {
		return Header{}, err
	}
	typeCode, err := r.TakeU8()
	if err != nil {
		return Header{}, err
	}
	familyCode, err := r.TakeU8()
	if err != nil {
		return Header{}, err
	}
	timestamp, err := r.TakeU32()
	if err != nil {
		return Header{}, err
	}
	pduLength, err := r.TakeU16()
	if err != nil {
		return Header{}, err
	}
	h := Header{
		ProtocolVersion: version,
		ExerciseID:      exerciseID,
		PduType:         PduTypeFromWire(typeCode),
		ProtocolFamily:  ProtocolFamily(familyCode),
		Timestamp:       timestamp,
		PduLength:       pduLength,
	}
	if version == ProtocolVersion7 {
		status, err := r.TakeU8()
		if err != nil {
			return Header{}, err
		}
		h.PduStatus = PduStatus(status)
		if err := r.Skip(1); err != nil {
			return Header{}, err
		}
	} else {
		if err := r.Skip(2); err != nil {
			return Header{}, err
		}
	}
	return h, nil
}

// SerializeDIS writes the header; callers must have already finalized
// PduLength via FinalizeFromParts.
func (h Header) SerializeDIS(w *ByteWriter) int {
	w.PutU8(h.ProtocolVersion)
	w.PutU8(h.ExerciseID)
	w.PutU8(h.PduType.Wire())
	w.PutU8(uint8(h.ProtocolFamily))
	w.PutU32(h.Timestamp)
	w.PutU16(h.PduLength)
	if h.ProtocolVersion == ProtocolVersion7 {
		w.PutU8(uint8(h.PduStatus))
		w.PadZero(1)
	} else {
		w.PadZero(2)
	}
	return PduHeaderLenBytes
}
