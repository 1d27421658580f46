package dis

// RepairResponse acknowledges a RepairComplete. Grounded on
// original_source/dis-rs/src/common/repair_response/{model,parser,
// writer}.rs: EntityId (receiving) + EntityId (repairing) + u8 repair
// result + 3 bytes padding.
type RepairResponse struct {
	ReceivingEntityID EntityId
	RepairingEntityID EntityId
	RepairResult      RepairResponseRepairResult
}

func NewRepairResponse() RepairResponse { return RepairResponse{} }

func (r RepairResponse) WithReceivingEntityID(id EntityId) RepairResponse {
	r.ReceivingEntityID = id
	return r
}
func (r RepairResponse) WithRepairingEntityID(id EntityId) RepairResponse {
	r.RepairingEntityID = id
	return r
}
func (r RepairResponse) WithRepairResult(res RepairResponseRepairResult) RepairResponse {
	r.RepairResult = res
	return r
}

func parseRepairResponseBody(r *ByteReader, _ Options) (PduBody, error) {
	receiving, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	repairing, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	result, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(3); err != nil {
		return nil, err
	}
	return RepairResponse{
		ReceivingEntityID: receiving,
		RepairingEntityID: repairing,
		RepairResult:      RepairResponseRepairResultFromWire(result),
	}, nil
}

func (r RepairResponse) SerializeDIS(w *ByteWriter) int {
	n := r.ReceivingEntityID.SerializeDIS(w)
	n += r.RepairingEntityID.SerializeDIS(w)
	w.PutU8(r.RepairResult.Wire())
	w.PadZero(3)
	n += 1 + 3
	return n
}

func (r RepairResponse) BodyLengthBytes() int  { return EntityIdLengthBytes*2 + 1 + 3 }
func (r RepairResponse) BodyType() PduType     { return PduTypeRepairResponse }
func (r RepairResponse) Originator() *EntityId { return &r.RepairingEntityID }
func (r RepairResponse) Receiver() *EntityId   { return &r.ReceivingEntityID }
