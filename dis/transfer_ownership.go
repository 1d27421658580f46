package dis

/*
TransferOwnership hands control of an entity from one simulation to
another. Grounded on
original_source/dis-rs/src/common/transfer_ownership/{model,parser,
writer}.rs: EntityId (originating) + EntityId (receiving) + u32 request
id + u8 request status + u8 transfer type + EntityId (transferred
entity) + u16 padding + RecordSpecification.
*/
type TransferOwnership struct {
	OriginatingID     EntityId
	ReceivingID       EntityId
	RequestID         uint32
	RequestStatus     RequestStatus
	TransferType      uint8
	TransferredEntityID EntityId
	Records           RecordSpecification
}

func NewTransferOwnership() TransferOwnership { return TransferOwnership{} }

func (t TransferOwnership) WithOriginatingID(id EntityId) TransferOwnership {
	t.OriginatingID = id
	return t
}
func (t TransferOwnership) WithReceivingID(id EntityId) TransferOwnership {
	t.ReceivingID = id
	return t
}
func (t TransferOwnership) WithRequestID(id uint32) TransferOwnership {
	t.RequestID = id
	return t
}
func (t TransferOwnership) WithRequestStatus(st RequestStatus) TransferOwnership {
	t.RequestStatus = st
	return t
}
func (t TransferOwnership) WithTransferType(tt uint8) TransferOwnership {
	t.TransferType = tt
	return t
}
func (t TransferOwnership) WithTransferredEntityID(id EntityId) TransferOwnership {
	t.TransferredEntityID = id
	return t
}
func (t TransferOwnership) WithRecords(rs RecordSpecification) TransferOwnership {
	t.Records = rs
	return t
}

func parseTransferOwnershipBody(r *ByteReader, opts Options) (PduBody, error) {
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
	transferType, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	transferredID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	records, err := ParseRecordSpecification(r, opts)
	if err != nil {
		return nil, err
	}
	return TransferOwnership{
		OriginatingID:       originatingID,
		ReceivingID:         receivingID,
		RequestID:           requestID,
		RequestStatus:       RequestStatusFromWire(status),
		TransferType:        transferType,
		TransferredEntityID: transferredID,
		Records:             records,
	}, nil
}

func (t TransferOwnership) SerializeDIS(w *ByteWriter) int {
	n := t.OriginatingID.SerializeDIS(w)
	n += t.ReceivingID.SerializeDIS(w)
	w.PutU32(t.RequestID)
	w.PutU8(t.RequestStatus.Wire())
	w.PutU8(t.TransferType)
	n += 4 + 1 + 1
	n += t.TransferredEntityID.SerializeDIS(w)
	w.PadZero(2)
	n += 2
	n += t.Records.SerializeDIS(w)
	return n
}

func (t TransferOwnership) BodyLengthBytes() int {
	return EntityIdLengthBytes*3 + 4 + 1 + 1 + 2 + t.Records.LengthBytes()
}

func (t TransferOwnership) BodyType() PduType     { return PduTypeTransferOwnership }
func (t TransferOwnership) Originator() *EntityId { return &t.OriginatingID }
func (t TransferOwnership) Receiver() *EntityId   { return &t.ReceivingID }
