package dis

/*
PduBody is the capability set every PDU body implements: BodyInfo
(length + type) from spec.md §9 design notes. A finite, standardized
set of PDU types makes open extension unnecessary, so dispatch below is
an exhaustive switch rather than a registry or virtual dispatch table.
*/
type PduBody interface {
	BodyType() PduType
	BodyLengthBytes() int
	SerializeDIS(w *ByteWriter) int
}

// Interaction is implemented by bodies that name an originator and/or
// receiver EntityId, per spec.md §9.
type Interaction interface {
	Originator() *EntityId
	Receiver() *EntityId
}

// parseBody dispatches on the PDU type alone to the matching body
// parser. Unknown PDU types never fail: ParseHeader already
// folded them to PduTypeOther, so an unrecognized body is handled by
// parseOtherBody, which preserves the raw remaining bytes verbatim.
func parseBody(t PduType, r *ByteReader, bodyLen int, opts Options) (PduBody, error) {
	raw, err := r.TakeN(bodyLen)
	if err != nil {
		return nil, err
	}
	br := NewByteReader(raw)
	switch t {
	case PduTypeAcknowledge:
		return parseAcknowledgeBody(br, opts)
	case PduTypeAcknowledgeR:
		return parseAcknowledgeRBody(br, opts)
	case PduTypeCreateEntity:
		return parseCreateEntityBody(br, opts)
	case PduTypeCreateEntityR:
		return parseCreateEntityRBody(br, opts)
	case PduTypeRemoveEntity:
		return parseRemoveEntityBody(br, opts)
	case PduTypeRemoveEntityR:
		return parseRemoveEntityRBody(br, opts)
	case PduTypeStartResume:
		return parseStartResumeBody(br, opts)
	case PduTypeStartResumeR:
		return parseStartResumeRBody(br, opts)
	case PduTypeStopFreeze:
		return parseStopFreezeBody(br, opts)
	case PduTypeStopFreezeR:
		return parseStopFreezeRBody(br, opts)
	case PduTypeData:
		return parseDataBody(br, opts)
	case PduTypeDataR:
		return parseDataRBody(br, opts)
	case PduTypeSetData:
		return parseSetDataBody(br, opts)
	case PduTypeSetDataR:
		return parseSetDataRBody(br, opts)
	case PduTypeDataQuery:
		return parseDataQueryBody(br, opts)
	case PduTypeDataQueryR:
		return parseDataQueryRBody(br, opts)
	case PduTypeEventReport:
		return parseEventReportBody(br, opts)
	case PduTypeEventReportR:
		return parseEventReportRBody(br, opts)
	case PduTypeComment:
		return parseCommentBody(br, opts)
	case PduTypeCommentR:
		return parseCommentRBody(br, opts)
	case PduTypeRecordQueryR:
		return parseRecordQueryRBody(br, opts)
	case PduTypeSetRecordR:
		return parseSetRecordRBody(br, opts)
	case PduTypeActionRequest:
		return parseActionRequestBody(br, opts)
	case PduTypeActionRequestR:
		return parseActionRequestRBody(br, opts)
	case PduTypeActionResponse:
		return parseActionResponseBody(br, opts)
	case PduTypeActionResponseR:
		return parseActionResponseRBody(br, opts)
	case PduTypeCollision:
		return parseCollisionBody(br, opts)
	case PduTypeCollisionElastic:
		return parseCollisionElasticBody(br, opts)
	case PduTypeServiceRequest:
		return parseServiceRequestBody(br, opts)
	case PduTypeResupplyOffer:
		return parseResupplyOfferBody(br, opts)
	case PduTypeResupplyReceived:
		return parseResupplyReceivedBody(br, opts)
	case PduTypeResupplyCancel:
		return parseResupplyCancelBody(br, opts)
	case PduTypeRepairComplete:
		return parseRepairCompleteBody(br, opts)
	case PduTypeRepairResponse:
		return parseRepairResponseBody(br, opts)
	case PduTypeEntityState:
		return parseEntityStateBody(br, opts)
	case PduTypeEntityStateUpdate:
		return parseEntityStateUpdateBody(br, opts)
	case PduTypeFire:
		return parseFireBody(br, opts)
	case PduTypeDetonation:
		return parseDetonationBody(br, opts)
	case PduTypeDesignator:
		return parseDesignatorBody(br, opts)
	case PduTypeTransmitter:
		return parseTransmitterBody(br, opts)
	case PduTypeSignal:
		return parseSignalBody(br, opts)
	case PduTypeReceiver:
		return parseReceiverBody(br, opts)
	case PduTypeIsPartOf:
		return parseIsPartOfBody(br, opts)
	case PduTypeTransferOwnership:
		return parseTransferOwnershipBody(br, opts)
	default:
		return parseOtherBody(raw)
	}
}
