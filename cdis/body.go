package cdis

import "github.com/discdis/gateway/dis"

/*
Body is the C-DIS analogue of dis.PduBody: exhaustive switch dispatch
over the closed set of C-DIS-capable PDU types (spec.md §4.4's "for
variants with a C-DIS counterpart" subset of the full PDU type list).
*/
type Body interface {
	BodyType() dis.PduType
	BodyBitLength() int
	SerializeDIS(w *BitWriter) error
	// EncodeDIS lifts this C-DIS body back to its lossless DIS form.
	EncodeDIS() dis.PduBody
}

// parseBody dispatches on pduType to the matching bit-level parser.
// Every case here corresponds to a dis.PduType with a C-DIS
// counterpart; types with none (the "-R" reliable variants, Other,
// TransferOwnership, RecordQueryR, SetRecordR, and the remaining
// simulation-management/supply bodies) have no C-DIS wire form at all;
// a header naming one of them makes ParseCdis fail with
// UnsupportedPduTypeError.
func parseBody(t dis.PduType, r *BitReader, opts Options) (Body, error) {
	switch t {
	case dis.PduTypeAcknowledge:
		return parseAcknowledgeBody(r)
	case dis.PduTypeCreateEntity:
		return parseCreateEntityBody(r)
	case dis.PduTypeRemoveEntity:
		return parseRemoveEntityBody(r)
	case dis.PduTypeStartResume:
		return parseStartResumeBody(r)
	case dis.PduTypeStopFreeze:
		return parseStopFreezeBody(r)
	case dis.PduTypeData:
		return parseDataBody(r)
	case dis.PduTypeSetData:
		return parseSetDataBody(r)
	case dis.PduTypeComment:
		return parseCommentBody(r)
	case dis.PduTypeEventReport:
		return parseEventReportBody(r)
	case dis.PduTypeSignal:
		return parseSignalBody(r)
	case dis.PduTypeReceiver:
		return parseReceiverBody(r)
	case dis.PduTypeTransmitter:
		return parseTransmitterBody(r)
	case dis.PduTypeCollision:
		return parseCollisionBody(r)
	case dis.PduTypeDetonation:
		return parseDetonationBody(r)
	case dis.PduTypeFire:
		return parseFireBody(r)
	case dis.PduTypeEntityState:
		return parseEntityStateBody(r)
	case dis.PduTypeEntityStateUpdate:
		return parseEntityStateUpdateBody(r)
	case dis.PduTypeIsPartOf:
		return parseIsPartOfBody(r)
	case dis.PduTypeDesignator:
		return parseDesignatorBody(r)
	default:
		return nil, UnsupportedPduTypeError{Type: t}
	}
}

// UnsupportedPduTypeError reports a DIS PduType with no C-DIS wire
// form; callers attempting Encode on such a Pdu get this instead of a
// silently wrong compression.
type UnsupportedPduTypeError struct {
	Type dis.PduType
}

func (e UnsupportedPduTypeError) Error() string {
	return "cdis: " + e.Type.String() + " has no C-DIS counterpart"
}
