package dis

/*
Enumerations are treated as data, not hand-maintained code, per spec.md
§9 design notes: in the original they are generated from SISO-REF-010
at build time. This file hand-writes the same shape a generator would
produce — one typed wire-width integer per enum, a total From<code>
mapping to a defined default for unknown codes (never failing), and a
lossless Into<code>. Grounded on the From<u8>/Into<u8> pattern used by
every enum in original_source (AcknowledgeFlag::from, CollisionType::from,
ReceiverState::from, etc., read throughout cdis-assemble/dis-rs parsers).
*/

// PduType identifies the kind of PDU body that follows a header.
type PduType uint8

const (
	PduTypeOther                 PduType = 0
	PduTypeEntityState           PduType = 1
	PduTypeFire                  PduType = 2
	PduTypeDetonation            PduType = 3
	PduTypeCollision             PduType = 4
	PduTypeServiceRequest        PduType = 5
	PduTypeResupplyOffer         PduType = 6
	PduTypeResupplyReceived      PduType = 7
	PduTypeResupplyCancel        PduType = 8
	PduTypeRepairComplete        PduType = 9
	PduTypeRepairResponse        PduType = 10
	PduTypeCreateEntity          PduType = 11
	PduTypeRemoveEntity          PduType = 12
	PduTypeStartResume           PduType = 13
	PduTypeStopFreeze            PduType = 14
	PduTypeAcknowledge           PduType = 15
	PduTypeActionRequest         PduType = 16
	PduTypeActionResponse        PduType = 17
	PduTypeDataQuery             PduType = 18
	PduTypeSetData               PduType = 19
	PduTypeData                  PduType = 20
	PduTypeEventReport           PduType = 21
	PduTypeComment               PduType = 22
	PduTypeEntityStateUpdate     PduType = 23
	PduTypeCollisionElastic      PduType = 66
	PduTypeIsPartOf              PduType = 70
	PduTypeDesignator            PduType = 24
	PduTypeTransmitter           PduType = 25
	PduTypeSignal                PduType = 26
	PduTypeReceiver              PduType = 27
	PduTypeCreateEntityR         PduType = 51
	PduTypeRemoveEntityR         PduType = 52
	PduTypeStartResumeR          PduType = 53
	PduTypeStopFreezeR           PduType = 54
	PduTypeAcknowledgeR          PduType = 55
	PduTypeActionRequestR        PduType = 56
	PduTypeActionResponseR       PduType = 57
	PduTypeDataQueryR            PduType = 58
	PduTypeSetDataR              PduType = 59
	PduTypeDataR                 PduType = 60
	PduTypeEventReportR          PduType = 61
	PduTypeCommentR              PduType = 62
	PduTypeRecordQueryR          PduType = 63
	PduTypeSetRecordR            PduType = 64
	PduTypeTransferOwnership     PduType = 35
)

var pduTypeNames = map[PduType]string{
	PduTypeOther: "Other", PduTypeEntityState: "EntityState", PduTypeFire: "Fire",
	PduTypeDetonation: "Detonation", PduTypeCollision: "Collision",
	PduTypeServiceRequest: "ServiceRequest", PduTypeResupplyOffer: "ResupplyOffer",
	PduTypeResupplyReceived: "ResupplyReceived", PduTypeResupplyCancel: "ResupplyCancel",
	PduTypeRepairComplete: "RepairComplete", PduTypeRepairResponse: "RepairResponse",
	PduTypeCreateEntity: "CreateEntity", PduTypeRemoveEntity: "RemoveEntity",
	PduTypeStartResume: "StartResume", PduTypeStopFreeze: "StopFreeze",
	PduTypeAcknowledge: "Acknowledge", PduTypeActionRequest: "ActionRequest",
	PduTypeActionResponse: "ActionResponse", PduTypeDataQuery: "DataQuery",
	PduTypeSetData: "SetData", PduTypeData: "Data", PduTypeEventReport: "EventReport",
	PduTypeComment: "Comment", PduTypeEntityStateUpdate: "EntityStateUpdate",
	PduTypeCollisionElastic: "CollisionElastic", PduTypeIsPartOf: "IsPartOf",
	PduTypeDesignator: "Designator", PduTypeTransmitter: "Transmitter",
	PduTypeSignal: "Signal", PduTypeReceiver: "Receiver",
	PduTypeCreateEntityR: "CreateEntity-R", PduTypeRemoveEntityR: "RemoveEntity-R",
	PduTypeStartResumeR: "StartResume-R", PduTypeStopFreezeR: "StopFreeze-R",
	PduTypeAcknowledgeR: "Acknowledge-R", PduTypeActionRequestR: "ActionRequest-R",
	PduTypeActionResponseR: "ActionResponse-R", PduTypeDataQueryR: "DataQuery-R",
	PduTypeSetDataR: "SetData-R", PduTypeDataR: "Data-R", PduTypeEventReportR: "EventReport-R",
	PduTypeCommentR: "Comment-R", PduTypeRecordQueryR: "RecordQueryR",
	PduTypeSetRecordR: "SetRecordR", PduTypeTransferOwnership: "TransferOwnership",
}

// PduTypeFromWire maps a wire code to a PduType; unknown codes become
// PduTypeOther rather than failing (spec.md §7 UnknownPduType policy).
func PduTypeFromWire(code uint8) PduType {
	if _, ok := pduTypeNames[PduType(code)]; ok {
		return PduType(code)
	}
	return PduTypeOther
}

// Wire returns the wire-width code for this PduType.
func (t PduType) Wire() uint8 { return uint8(t) }

func (t PduType) String() string {
	if name, ok := pduTypeNames[t]; ok {
		return name
	}
	return "Other"
}

// ProtocolFamily groups PDU types for dispatch and PduStatus
// interpretation, per IEEE 1278.1 table 4.
type ProtocolFamily uint8

const (
	ProtocolFamilyOther                     ProtocolFamily = 0
	ProtocolFamilyEntityInformation          ProtocolFamily = 1
	ProtocolFamilyWarfare                   ProtocolFamily = 2
	ProtocolFamilyLogistics                 ProtocolFamily = 3
	ProtocolFamilyRadioCommunications        ProtocolFamily = 4
	ProtocolFamilySimulationManagement        ProtocolFamily = 5
	ProtocolFamilyDistributedEmission        ProtocolFamily = 6
	ProtocolFamilyEntityManagement          ProtocolFamily = 7
	ProtocolFamilySimulationManagementReliable ProtocolFamily = 8
)

// ProtocolFamilyOf derives the protocol family for a PduType, per
// spec.md §4.5 "protocol_family (u8): derived from pdu_type".
func ProtocolFamilyOf(t PduType) ProtocolFamily {
	switch t {
	case PduTypeEntityState, PduTypeEntityStateUpdate, PduTypeCollision, PduTypeCollisionElastic:
		return ProtocolFamilyEntityInformation
	case PduTypeFire, PduTypeDetonation:
		return ProtocolFamilyWarfare
	case PduTypeServiceRequest, PduTypeResupplyOffer, PduTypeResupplyReceived,
		PduTypeResupplyCancel, PduTypeRepairComplete, PduTypeRepairResponse:
		return ProtocolFamilyLogistics
	case PduTypeTransmitter, PduTypeSignal, PduTypeReceiver:
		return ProtocolFamilyRadioCommunications
	case PduTypeCreateEntity, PduTypeRemoveEntity, PduTypeStartResume, PduTypeStopFreeze,
		PduTypeAcknowledge, PduTypeActionRequest, PduTypeActionResponse, PduTypeDataQuery,
		PduTypeSetData, PduTypeData, PduTypeEventReport, PduTypeComment:
		return ProtocolFamilySimulationManagement
	case PduTypeCreateEntityR, PduTypeRemoveEntityR, PduTypeStartResumeR, PduTypeStopFreezeR,
		PduTypeAcknowledgeR, PduTypeActionRequestR, PduTypeActionResponseR, PduTypeDataQueryR,
		PduTypeSetDataR, PduTypeDataR, PduTypeEventReportR, PduTypeCommentR,
		PduTypeRecordQueryR, PduTypeSetRecordR:
		return ProtocolFamilySimulationManagementReliable
	case PduTypeDesignator, PduTypeIsPartOf, PduTypeTransferOwnership:
		return ProtocolFamilyEntityManagement
	default:
		return ProtocolFamilyOther
	}
}

// ForceId identifies which side an entity belongs to.
type ForceId uint8

const (
	ForceIdOther    ForceId = 0
	ForceIdFriendly ForceId = 1
	ForceIdOpposing ForceId = 2
	ForceIdNeutral  ForceId = 3
)

func ForceIdFromWire(code uint8) ForceId {
	if code <= 3 {
		return ForceId(code)
	}
	return ForceIdOther
}
func (f ForceId) Wire() uint8 { return uint8(f) }

// EntityKind is the top-level field of an EntityType record.
type EntityKind uint8

const (
	EntityKindOther        EntityKind = 0
	EntityKindPlatform     EntityKind = 1
	EntityKindMunition     EntityKind = 2
	EntityKindLifeForm     EntityKind = 3
	EntityKindEnvironmental EntityKind = 4
	EntityKindCulturalFeature EntityKind = 5
	EntityKindSupply       EntityKind = 6
	EntityKindRadio        EntityKind = 7
	EntityKindExpendable   EntityKind = 8
	EntityKindSensorEmitter EntityKind = 9
)

func EntityKindFromWire(code uint8) EntityKind {
	if code <= 9 {
		return EntityKind(code)
	}
	return EntityKindOther
}
func (k EntityKind) Wire() uint8 { return uint8(k) }

// Domain is the second field of an EntityType record.
type Domain uint8

const (
	DomainOther     Domain = 0
	DomainLand      Domain = 1
	DomainAir       Domain = 2
	DomainSurface   Domain = 3
	DomainSubsurface Domain = 4
	DomainSpace     Domain = 5
)

func DomainFromWire(code uint8) Domain {
	if code <= 5 {
		return Domain(code)
	}
	return DomainOther
}
func (d Domain) Wire() uint8 { return uint8(d) }

// AcknowledgeFlag identifies what an Acknowledge PDU is acknowledging.
type AcknowledgeFlag uint16

const (
	AcknowledgeFlagOther        AcknowledgeFlag = 0
	AcknowledgeFlagCreateEntity AcknowledgeFlag = 1
	AcknowledgeFlagRemoveEntity AcknowledgeFlag = 2
	AcknowledgeFlagStartResume  AcknowledgeFlag = 3
	AcknowledgeFlagStopFreeze   AcknowledgeFlag = 4
	AcknowledgeFlagTransferControlRequest AcknowledgeFlag = 5
)

func AcknowledgeFlagFromWire(code uint16) AcknowledgeFlag {
	if code <= 5 {
		return AcknowledgeFlag(code)
	}
	return AcknowledgeFlagOther
}
func (a AcknowledgeFlag) Wire() uint16 { return uint16(a) }

// ResponseFlag is the response carried by an Acknowledge PDU.
type ResponseFlag uint16

const (
	ResponseFlagOther               ResponseFlag = 0
	ResponseFlagAbleToComply        ResponseFlag = 1
	ResponseFlagUnableToComply      ResponseFlag = 2
	ResponseFlagPendingOperatorAction ResponseFlag = 3
)

func ResponseFlagFromWire(code uint16) ResponseFlag {
	if code <= 3 {
		return ResponseFlag(code)
	}
	return ResponseFlagOther
}
func (r ResponseFlag) Wire() uint16 { return uint16(r) }

// ReceiverState is the on/off state carried by a Receiver PDU.
type ReceiverState uint16

const (
	ReceiverStateOff ReceiverState = 0
	ReceiverStateOn  ReceiverState = 1
)

func ReceiverStateFromWire(code uint16) ReceiverState {
	if code <= 1 {
		return ReceiverState(code)
	}
	return ReceiverStateOff
}
func (r ReceiverState) Wire() uint16 { return uint16(r) }

// CollisionType classifies a Collision PDU's physics model.
type CollisionType uint8

const (
	CollisionTypeInelastic CollisionType = 0
	CollisionTypeElastic   CollisionType = 1
)

func CollisionTypeFromWire(code uint8) CollisionType {
	if code <= 1 {
		return CollisionType(code)
	}
	return CollisionTypeInelastic
}
func (c CollisionType) Wire() uint8 { return uint8(c) }

// DetonationResult classifies the outcome of a Detonation PDU.
type DetonationResult uint8

const (
	DetonationResultOther                DetonationResult = 0
	DetonationResultEntityImpact          DetonationResult = 1
	DetonationResultEntityProximateDetonation DetonationResult = 2
	DetonationResultGroundImpact          DetonationResult = 3
	DetonationResultGroundProximateDetonation DetonationResult = 4
	DetonationResultDetonation            DetonationResult = 5
	DetonationResultNone                  DetonationResult = 6
)

func DetonationResultFromWire(code uint8) DetonationResult {
	if code <= 6 {
		return DetonationResult(code)
	}
	return DetonationResultOther
}
func (d DetonationResult) Wire() uint8 { return uint8(d) }

// RequestStatus is returned by ActionResponse/DataQuery-family PDUs.
type RequestStatus uint8

const (
	RequestStatusOther               RequestStatus = 0
	RequestStatusPending              RequestStatus = 1
	RequestStatusExecuting            RequestStatus = 2
	RequestStatusPartiallyComplete    RequestStatus = 3
	RequestStatusComplete             RequestStatus = 4
	RequestStatusRequestRejected      RequestStatus = 5
	RequestStatusRetransmitRequestNow RequestStatus = 6
	RequestStatusRetransmitRequestLater RequestStatus = 7
	RequestStatusInvalidTimeParameters RequestStatus = 8
	RequestStatusSimulationTimeExceeded RequestStatus = 9
	RequestStatusRequestDone          RequestStatus = 10
)

func RequestStatusFromWire(code uint8) RequestStatus {
	if code <= 10 {
		return RequestStatus(code)
	}
	return RequestStatusOther
}
func (r RequestStatus) Wire() uint8 { return uint8(r) }

// RepairCompleteRepair identifies the repair type in a RepairComplete PDU.
type RepairCompleteRepair uint16

const (
	RepairCompleteRepairOther RepairCompleteRepair = 0
)

func RepairCompleteRepairFromWire(code uint16) RepairCompleteRepair {
	return RepairCompleteRepair(code)
}
func (r RepairCompleteRepair) Wire() uint16 { return uint16(r) }

// RepairResponseRepairResult is the outcome field of a RepairResponse PDU.
type RepairResponseRepairResult uint8

const (
	RepairResponseRepairResultOther      RepairResponseRepairResult = 0
	RepairResponseRepairResultRepairEnded RepairResponseRepairResult = 1
	RepairResponseRepairResultInvalidRepair RepairResponseRepairResult = 2
)

func RepairResponseRepairResultFromWire(code uint8) RepairResponseRepairResult {
	if code <= 2 {
		return RepairResponseRepairResult(code)
	}
	return RepairResponseRepairResultOther
}
func (r RepairResponseRepairResult) Wire() uint8 { return uint8(r) }

// ServiceRequestServiceTypeRequested identifies the kind of resupply
// or repair service requested, grounded on service_request/builder.rs's
// with_service_type_requested(ServiceRequestServiceTypeRequested).
type ServiceRequestServiceTypeRequested uint8

const (
	ServiceTypeRequestedOther   ServiceRequestServiceTypeRequested = 0
	ServiceTypeRequestedResupply ServiceRequestServiceTypeRequested = 1
	ServiceTypeRequestedRepair  ServiceRequestServiceTypeRequested = 2
)

func ServiceTypeRequestedFromWire(code uint8) ServiceRequestServiceTypeRequested {
	if code <= 2 {
		return ServiceRequestServiceTypeRequested(code)
	}
	return ServiceTypeRequestedOther
}
func (s ServiceRequestServiceTypeRequested) Wire() uint8 { return uint8(s) }

// ActionRequestActionID identifies the action requested by an
// ActionRequest PDU.
type ActionRequestActionID uint32

const (
	ActionIDOther ActionRequestActionID = 0
)

func ActionRequestActionIDFromWire(code uint32) ActionRequestActionID {
	return ActionRequestActionID(code)
}
func (a ActionRequestActionID) Wire() uint32 { return uint32(a) }

// VariableParameterRecordType selects the interpretation of a 16-octet
// VariableParameter record, per spec.md §3.
type VariableParameterRecordType uint8

const (
	VariableParameterArticulatedPart  VariableParameterRecordType = 0
	VariableParameterAttachedPart     VariableParameterRecordType = 1
	VariableParameterEntitySeparation VariableParameterRecordType = 2
	VariableParameterEntityType       VariableParameterRecordType = 3
	VariableParameterEntityAssociation VariableParameterRecordType = 4
)

func VariableParameterRecordTypeFromWire(code uint8) VariableParameterRecordType {
	if code <= 4 {
		return VariableParameterRecordType(code)
	}
	return VariableParameterArticulatedPart
}
func (v VariableParameterRecordType) Wire() uint8 { return uint8(v) }
