package dis

/*
CreateEntity requests that the receiving simulation instantiate a new
entity; CreateEntity-R is the reliable-service counterpart. Grounded on
original_source/dis-rs/src/common/create_entity/{model,parser,writer}.rs:
EntityId + EntityId + u32 request id, 16 bytes.
*/
type CreateEntity struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     uint32
}

func NewCreateEntity() CreateEntity { return CreateEntity{} }

func (c CreateEntity) WithOriginatingID(id EntityId) CreateEntity { c.OriginatingID = id; return c }
func (c CreateEntity) WithReceivingID(id EntityId) CreateEntity   { c.ReceivingID = id; return c }
func (c CreateEntity) WithRequestID(id uint32) CreateEntity       { c.RequestID = id; return c }

func parseCreateEntityFields(r *ByteReader) (CreateEntity, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return CreateEntity{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return CreateEntity{}, err
	}
	requestID, err := r.TakeU32()
	if err != nil {
		return CreateEntity{}, err
	}
	return CreateEntity{OriginatingID: originatingID, ReceivingID: receivingID, RequestID: requestID}, nil
}

func (c CreateEntity) serializeFields(w *ByteWriter) int {
	n := c.OriginatingID.SerializeDIS(w)
	n += c.ReceivingID.SerializeDIS(w)
	w.PutU32(c.RequestID)
	return n + 4
}

func createEntityFieldsLengthBytes() int { return EntityIdLengthBytes*2 + 4 }

func parseCreateEntityBody(r *ByteReader, _ Options) (PduBody, error) {
	return parseCreateEntityFields(r)
}

func (c CreateEntity) SerializeDIS(w *ByteWriter) int { return c.serializeFields(w) }
func (c CreateEntity) BodyLengthBytes() int           { return createEntityFieldsLengthBytes() }
func (c CreateEntity) BodyType() PduType              { return PduTypeCreateEntity }
func (c CreateEntity) Originator() *EntityId          { return &c.OriginatingID }
func (c CreateEntity) Receiver() *EntityId             { return &c.ReceivingID }

// CreateEntityR is CreateEntity sent via the reliable simulation
// management service; same wire shape, distinct PduType.
type CreateEntityR struct {
	CreateEntity
}

func NewCreateEntityR() CreateEntityR { return CreateEntityR{} }

func parseCreateEntityRBody(r *ByteReader, _ Options) (PduBody, error) {
	fields, err := parseCreateEntityFields(r)
	if err != nil {
		return nil, err
	}
	return CreateEntityR{fields}, nil
}

func (c CreateEntityR) SerializeDIS(w *ByteWriter) int { return c.serializeFields(w) }
func (c CreateEntityR) BodyLengthBytes() int           { return createEntityFieldsLengthBytes() }
func (c CreateEntityR) BodyType() PduType              { return PduTypeCreateEntityR }
