package dis

/*
SetRecordR pushes record values to configure a receiving entity over
the reliable service; it has no non-reliable counterpart (spec.md
§4.4). Grounded on the RecordSpecification shared record (records.go),
reconstructed per spec.md's supplemented-features note: EntityId +
EntityId + u32 request id + u8 request status + 3 bytes padding +
RecordSpecification.
*/
type SetRecordR struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     uint32
	RequestStatus RequestStatus
	Records       RecordSpecification
}

func NewSetRecordR() SetRecordR { return SetRecordR{} }

func (s SetRecordR) WithOriginatingID(id EntityId) SetRecordR { s.OriginatingID = id; return s }
func (s SetRecordR) WithReceivingID(id EntityId) SetRecordR   { s.ReceivingID = id; return s }
func (s SetRecordR) WithRequestID(id uint32) SetRecordR       { s.RequestID = id; return s }
func (s SetRecordR) WithRequestStatus(st RequestStatus) SetRecordR {
	s.RequestStatus = st
	return s
}
func (s SetRecordR) WithRecords(rs RecordSpecification) SetRecordR { s.Records = rs; return s }

func parseSetRecordRBody(r *ByteReader, opts Options) (PduBody, error) {
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
	status, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(3); err != nil {
		return nil, err
	}
	records, err := ParseRecordSpecification(r, opts)
	if err != nil {
		return nil, err
	}
	return SetRecordR{
		OriginatingID: originatingID,
		ReceivingID:   receivingID,
		RequestID:     requestID,
		RequestStatus: RequestStatusFromWire(status),
		Records:       records,
	}, nil
}

func (s SetRecordR) SerializeDIS(w *ByteWriter) int {
	n := s.OriginatingID.SerializeDIS(w)
	n += s.ReceivingID.SerializeDIS(w)
	w.PutU32(s.RequestID)
	w.PutU8(s.RequestStatus.Wire())
	w.PadZero(3)
	n += 4 + 1 + 3
	n += s.Records.SerializeDIS(w)
	return n
}

func (s SetRecordR) BodyLengthBytes() int {
	return EntityIdLengthBytes*2 + 4 + 1 + 3 + s.Records.LengthBytes()
}

func (s SetRecordR) BodyType() PduType     { return PduTypeSetRecordR }
func (s SetRecordR) Originator() *EntityId { return &s.OriginatingID }
func (s SetRecordR) Receiver() *EntityId   { return &s.ReceivingID }
