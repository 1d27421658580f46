package dis

/*
Acknowledge confirms receipt of a simulation-management request;
Acknowledge-R is the same shape sent over the reliable service.
Grounded on original_source/dis-rs/src/common/acknowledge/{model,
builder,parser,writer}.rs: EntityId + EntityId + u16 flag + u16 flag +
u32 request id, 20 bytes.
*/
type Acknowledge struct {
	OriginatingID   EntityId
	ReceivingID     EntityId
	AcknowledgeFlag AcknowledgeFlag
	ResponseFlag    ResponseFlag
	RequestID       uint32
}

func NewAcknowledge() Acknowledge { return Acknowledge{} }

func (a Acknowledge) WithOriginatingID(id EntityId) Acknowledge { a.OriginatingID = id; return a }
func (a Acknowledge) WithReceivingID(id EntityId) Acknowledge   { a.ReceivingID = id; return a }
func (a Acknowledge) WithAcknowledgeFlag(f AcknowledgeFlag) Acknowledge {
	a.AcknowledgeFlag = f
	return a
}
func (a Acknowledge) WithResponseFlag(f ResponseFlag) Acknowledge { a.ResponseFlag = f; return a }
func (a Acknowledge) WithRequestID(id uint32) Acknowledge         { a.RequestID = id; return a }

func parseAcknowledgeFields(r *ByteReader) (Acknowledge, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return Acknowledge{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return Acknowledge{}, err
	}
	ackFlag, err := r.TakeU16()
	if err != nil {
		return Acknowledge{}, err
	}
	respFlag, err := r.TakeU16()
	if err != nil {
		return Acknowledge{}, err
	}
	requestID, err := r.TakeU32()
	if err != nil {
		return Acknowledge{}, err
	}
	return Acknowledge{
		OriginatingID:   originatingID,
		ReceivingID:     receivingID,
		AcknowledgeFlag: AcknowledgeFlagFromWire(ackFlag),
		ResponseFlag:    ResponseFlagFromWire(respFlag),
		RequestID:       requestID,
	}, nil
}

func (a Acknowledge) serializeFields(w *ByteWriter) int {
	n := a.OriginatingID.SerializeDIS(w)
	n += a.ReceivingID.SerializeDIS(w)
	w.PutU16(a.AcknowledgeFlag.Wire())
	w.PutU16(a.ResponseFlag.Wire())
	w.PutU32(a.RequestID)
	return n + 2 + 2 + 4
}

func acknowledgeFieldsLengthBytes() int { return EntityIdLengthBytes*2 + 2 + 2 + 4 }

func parseAcknowledgeBody(r *ByteReader, _ Options) (PduBody, error) {
	return parseAcknowledgeFields(r)
}

func (a Acknowledge) SerializeDIS(w *ByteWriter) int { return a.serializeFields(w) }
func (a Acknowledge) BodyLengthBytes() int           { return acknowledgeFieldsLengthBytes() }
func (a Acknowledge) BodyType() PduType              { return PduTypeAcknowledge }
func (a Acknowledge) Originator() *EntityId          { return &a.OriginatingID }
func (a Acknowledge) Receiver() *EntityId            { return &a.ReceivingID }

// AcknowledgeR is Acknowledge sent via the reliable simulation
// management service (spec.md §4.4); same wire shape, different PduType.
type AcknowledgeR struct {
	Acknowledge
}

func NewAcknowledgeR() AcknowledgeR { return AcknowledgeR{} }

func parseAcknowledgeRBody(r *ByteReader, _ Options) (PduBody, error) {
	fields, err := parseAcknowledgeFields(r)
	if err != nil {
		return nil, err
	}
	return AcknowledgeR{fields}, nil
}

func (a AcknowledgeR) SerializeDIS(w *ByteWriter) int { return a.serializeFields(w) }
func (a AcknowledgeR) BodyLengthBytes() int           { return acknowledgeFieldsLengthBytes() }
func (a AcknowledgeR) BodyType() PduType              { return PduTypeAcknowledgeR }
