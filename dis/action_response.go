package dis

/*
ActionResponse reports the outcome of a previously requested action;
ActionResponse-R is the reliable-service counterpart. Grounded on
original_source/dis-rs/src/common/action_response/{model,parser,
writer}.rs: EntityId + EntityId + u32 request id + u32 request status +
DatumSpecification.
*/
type ActionResponse struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     uint32
	RequestStatus RequestStatus
	Datums        DatumSpecification
}

func NewActionResponse() ActionResponse { return ActionResponse{} }

func (a ActionResponse) WithOriginatingID(id EntityId) ActionResponse {
	a.OriginatingID = id
	return a
}
func (a ActionResponse) WithReceivingID(id EntityId) ActionResponse { a.ReceivingID = id; return a }
func (a ActionResponse) WithRequestID(id uint32) ActionResponse     { a.RequestID = id; return a }
func (a ActionResponse) WithRequestStatus(st RequestStatus) ActionResponse {
	a.RequestStatus = st
	return a
}
func (a ActionResponse) WithDatums(spec DatumSpecification) ActionResponse {
	a.Datums = spec
	return a
}

func parseActionResponseFields(r *ByteReader, opts Options) (ActionResponse, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return ActionResponse{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return ActionResponse{}, err
	}
	requestID, err := r.TakeU32()
	if err != nil {
		return ActionResponse{}, err
	}
	status, err := r.TakeU32()
	if err != nil {
		return ActionResponse{}, err
	}
	datums, err := ParseDatumSpecification(r, opts)
	if err != nil {
		return ActionResponse{}, err
	}
	return ActionResponse{
		OriginatingID: originatingID,
		ReceivingID:   receivingID,
		RequestID:     requestID,
		RequestStatus: RequestStatusFromWire(uint8(status)),
		Datums:        datums,
	}, nil
}

func (a ActionResponse) serializeFields(w *ByteWriter) int {
	n := a.OriginatingID.SerializeDIS(w)
	n += a.ReceivingID.SerializeDIS(w)
	w.PutU32(a.RequestID)
	w.PutU32(uint32(a.RequestStatus.Wire()))
	n += 4 + 4
	n += a.Datums.SerializeDIS(w)
	return n
}

func actionResponseFieldsLengthBytes(a ActionResponse) int {
	return EntityIdLengthBytes*2 + 4 + 4 + a.Datums.LengthBytes()
}

func parseActionResponseBody(r *ByteReader, opts Options) (PduBody, error) {
	return parseActionResponseFields(r, opts)
}

func (a ActionResponse) SerializeDIS(w *ByteWriter) int { return a.serializeFields(w) }
func (a ActionResponse) BodyLengthBytes() int           { return actionResponseFieldsLengthBytes(a) }
func (a ActionResponse) BodyType() PduType              { return PduTypeActionResponse }
func (a ActionResponse) Originator() *EntityId          { return &a.OriginatingID }
func (a ActionResponse) Receiver() *EntityId            { return &a.ReceivingID }

// ActionResponseR is ActionResponse sent via the reliable simulation
// management service; same wire shape, distinct PduType.
type ActionResponseR struct {
	ActionResponse
}

func NewActionResponseR() ActionResponseR { return ActionResponseR{} }

func parseActionResponseRBody(r *ByteReader, opts Options) (PduBody, error) {
	fields, err := parseActionResponseFields(r, opts)
	if err != nil {
		return nil, err
	}
	return ActionResponseR{fields}, nil
}

func (a ActionResponseR) SerializeDIS(w *ByteWriter) int { return a.serializeFields(w) }
func (a ActionResponseR) BodyLengthBytes() int {
	return actionResponseFieldsLengthBytes(a.ActionResponse)
}
func (a ActionResponseR) BodyType() PduType { return PduTypeActionResponseR }
