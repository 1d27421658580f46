package dis

/*
RecordQueryR requests specific record values from a receiving entity;
it has no non-reliable counterpart (spec.md §4.4). Reconstructed from
the RecordSpecification convention shared with SetRecordR: EntityId +
EntityId + u32 request id + u16 event type + u16 padding + u32 record
count + record IDs[] u32 + record counts[] u32.
*/
type RecordQueryR struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     uint32
	EventType     uint16
	RecordIDs     []uint32
	RecordCounts  []uint32
}

func NewRecordQueryR() RecordQueryR { return RecordQueryR{} }

func (r RecordQueryR) WithOriginatingID(id EntityId) RecordQueryR { r.OriginatingID = id; return r }
func (r RecordQueryR) WithReceivingID(id EntityId) RecordQueryR   { r.ReceivingID = id; return r }
func (r RecordQueryR) WithRequestID(id uint32) RecordQueryR       { r.RequestID = id; return r }
func (r RecordQueryR) WithEventType(t uint16) RecordQueryR        { r.EventType = t; return r }
func (r RecordQueryR) WithRecords(ids, counts []uint32) RecordQueryR {
	r.RecordIDs = ids
	r.RecordCounts = counts
	return r
}

func parseRecordQueryRBody(r *ByteReader, _ Options) (PduBody, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	requestID, err := r.TakeU32()
	if err != nil {
		return nil, err
	}
	eventType, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	count, err := r.TakeU32()
	if err != nil {
		return nil, err
	}
	ids := make([]uint32, count)
	for i := range ids {
		v, err := r.TakeU32()
		if err != nil {
			return nil, err
		}
		ids[i] = v
	}
	counts := make([]uint32, count)
	for i := range counts {
		v, err := r.TakeU32()
		if err != nil {
			return nil, err
		}
		counts[i] = v
	}
	return RecordQueryR{
		OriginatingID: originatingID,
		ReceivingID:   receivingID,
		RequestID:     requestID,
		EventType:     eventType,
		RecordIDs:     ids,
		RecordCounts:  counts,
	}, nil
}

func (r RecordQueryR) SerializeDIS(w *ByteWriter) int {
	n := r.OriginatingID.SerializeDIS(w)
	n += r.ReceivingID.SerializeDIS(w)
	w.PutU32(r.RequestID)
	w.PutU16(r.EventType)
	w.PadZero(2)
	w.PutU32(uint32(len(r.RecordIDs)))
	n += 4 + 2 + 2 + 4
	for _, id := range r.RecordIDs {
		w.PutU32(id)
		n += 4
	}
	for _, c := range r.RecordCounts {
		w.PutU32(c)
		n += 4
	}
	return n
}

func (r RecordQueryR) BodyLengthBytes() int {
	return EntityIdLengthBytes*2 + 4 + 2 + 2 + 4 + 4*len(r.RecordIDs) + 4*len(r.RecordCounts)
}

func (r RecordQueryR) BodyType() PduType     { return PduTypeRecordQueryR }
func (r RecordQueryR) Originator() *EntityId { return &r.OriginatingID }
func (r RecordQueryR) Receiver() *EntityId   { return &r.ReceivingID }
