package dis

/*
ActionRequest asks a receiving entity to perform a named action;
ActionRequest-R is the reliable-service counterpart. Grounded on
original_source/dis-rs/src/common/action_request/{model,parser,
writer}.rs: EntityId + EntityId + u32 request id + u32 action id +
DatumSpecification.
*/
type ActionRequest struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     uint32
	ActionID      ActionRequestActionID
	Datums        DatumSpecification
}

func NewActionRequest() ActionRequest { return ActionRequest{} }

func (a ActionRequest) WithOriginatingID(id EntityId) ActionRequest { a.OriginatingID = id; return a }
func (a ActionRequest) WithReceivingID(id EntityId) ActionRequest   { a.ReceivingID = id; return a }
func (a ActionRequest) WithRequestID(id uint32) ActionRequest       { a.RequestID = id; return a }
func (a ActionRequest) WithActionID(id ActionRequestActionID) ActionRequest {
	a.ActionID = id
	return a
}
func (a ActionRequest) WithDatums(spec DatumSpecification) ActionRequest {
	a.Datums = spec
	return a
}

func parseActionRequestFields(r *ByteReader, opts Options) (ActionRequest, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return ActionRequest{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return ActionRequest{}, err
	}
	requestID, err := r.TakeU32()
	if err != nil {
		return ActionRequest{}, err
	}
	actionID, err := r.TakeU32()
	if err != nil {
		return ActionRequest{}, err
	}
	datums, err := ParseDatumSpecification(r, opts)
	if err != nil {
		return ActionRequest{}, err
	}
	return ActionRequest{
		OriginatingID: originatingID,
		ReceivingID:   receivingID,
		RequestID:     requestID,
		ActionID:      ActionRequestActionIDFromWire(actionID),
		Datums:        datums,
	}, nil
}

func (a ActionRequest) serializeFields(w *ByteWriter) int {
	n := a.OriginatingID.SerializeDIS(w)
	n += a.ReceivingID.SerializeDIS(w)
	w.PutU32(a.RequestID)
	w.PutU32(a.ActionID.Wire())
	n += 4 + 4
	n += a.Datums.SerializeDIS(w)
	return n
}

func actionRequestFieldsLengthBytes(a ActionRequest) int {
	return EntityIdLengthBytes*2 + 4 + 4 + a.Datums.LengthBytes()
}

func parseActionRequestBody(r *ByteReader, opts Options) (PduBody, error) {
	return parseActionRequestFields(r, opts)
}

func (a ActionRequest) SerializeDIS(w *ByteWriter) int { return a.serializeFields(w) }
func (a ActionRequest) BodyLengthBytes() int           { return actionRequestFieldsLengthBytes(a) }
func (a ActionRequest) BodyType() PduType              { return PduTypeActionRequest }
func (a ActionRequest) Originator() *EntityId          { return &a.OriginatingID }
func (a ActionRequest) Receiver() *EntityId            { return &a.ReceivingID }

// ActionRequestR is ActionRequest sent via the reliable simulation
// management service; same wire shape, distinct PduType.
type ActionRequestR struct {
	ActionRequest
}

func NewActionRequestR() ActionRequestR { return ActionRequestR{} }

func parseActionRequestRBody(r *ByteReader, opts Options) (PduBody, error) {
	fields, err := parseActionRequestFields(r, opts)
	if err != nil {
		return nil, err
	}
	return ActionRequestR{fields}, nil
}

func (a ActionRequestR) SerializeDIS(w *ByteWriter) int { return a.serializeFields(w) }
func (a ActionRequestR) BodyLengthBytes() int {
	return actionRequestFieldsLengthBytes(a.ActionRequest)
}
func (a ActionRequestR) BodyType() PduType { return PduTypeActionRequestR }
