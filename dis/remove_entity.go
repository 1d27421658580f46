package dis

/*
RemoveEntity requests that the receiving simulation delete an entity;
RemoveEntity-R is the reliable-service counterpart. Grounded on
original_source/dis-rs/src/common/remove_entity/{model,parser,writer}.rs:
EntityId + EntityId + u32 request id, 16 bytes.
*/
type RemoveEntity struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     uint32
}

func NewRemoveEntity() RemoveEntity { return RemoveEntity{} }

func (r RemoveEntity) WithOriginatingID(id EntityId) RemoveEntity { r.OriginatingID = id; return r }
func (r RemoveEntity) WithReceivingID(id EntityId) RemoveEntity   { r.ReceivingID = id; return r }
func (r RemoveEntity) WithRequestID(id uint32) RemoveEntity       { r.RequestID = id; return r }

func parseRemoveEntityFields(r *ByteReader) (RemoveEntity, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return RemoveEntity{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return RemoveEntity{}, err
	}
	requestID, err := r.TakeU32()
	if err != nil {
		return RemoveEntity{}, err
	}
	return RemoveEntity{OriginatingID: originatingID, ReceivingID: receivingID, RequestID: requestID}, nil
}

func (r RemoveEntity) serializeFields(w *ByteWriter) int {
	n := r.OriginatingID.SerializeDIS(w)
	n += r.ReceivingID.SerializeDIS(w)
	w.PutU32(r.RequestID)
	return n + 4
}

func removeEntityFieldsLengthBytes() int { return EntityIdLengthBytes*2 + 4 }

func parseRemoveEntityBody(r *ByteReader, _ Options) (PduBody, error) {
	return parseRemoveEntityFields(r)
}

func (r RemoveEntity) SerializeDIS(w *ByteWriter) int { return r.serializeFields(w) }
func (r RemoveEntity) BodyLengthBytes() int           { return removeEntityFieldsLengthBytes() }
func (r RemoveEntity) BodyType() PduType              { return PduTypeRemoveEntity }
func (r RemoveEntity) Originator() *EntityId          { return &r.OriginatingID }
func (r RemoveEntity) Receiver() *EntityId            { return &r.ReceivingID }

// RemoveEntityR is RemoveEntity sent via the reliable simulation
// management service; same wire shape, distinct PduType.
type RemoveEntityR struct {
	RemoveEntity
}

func NewRemoveEntityR() RemoveEntityR { return RemoveEntityR{} }

func parseRemoveEntityRBody(r *ByteReader, _ Options) (PduBody, error) {
	fields, err := parseRemoveEntityFields(r)
	if err != nil {
		return nil, err
	}
	return RemoveEntityR{fields}, nil
}

func (r RemoveEntityR) SerializeDIS(w *ByteWriter) int { return r.serializeFields(w) }
func (r RemoveEntityR) BodyLengthBytes() int           { return removeEntityFieldsLengthBytes() }
func (r RemoveEntityR) BodyType() PduType              { return PduTypeRemoveEntityR }
