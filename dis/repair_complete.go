package dis

// RepairComplete reports that a requested repair has finished.
// Grounded on original_source/dis-rs/src/common/repair_complete/
// {model,parser,writer}.rs: EntityId (receiving) + EntityId (repairing)
// + u16 repair kind + u16 padding.
type RepairComplete struct {
	ReceivingEntityID EntityId
	RepairingEntityID EntityId
	Repair            RepairCompleteRepair
}

func NewRepairComplete() RepairComplete { return RepairComplete{} }

func (r RepairComplete) WithReceivingEntityID(id EntityId) RepairComplete {
	r.ReceivingEntityID = id
	return r
}
func (r RepairComplete) WithRepairingEntityID(id EntityId) RepairComplete {
	r.RepairingEntityID = id
	return r
}
func (r RepairComplete) WithRepair(k RepairCompleteRepair) RepairComplete { r.Repair = k; return r }

func parseRepairCompleteBody(r *ByteReader, _ Options) (PduBody, error) {
	receiving, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	repairing, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	kind, err := r.TakeU16()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	return RepairComplete{
		ReceivingEntityID: receiving,
		RepairingEntityID: repairing,
		Repair:            RepairCompleteRepairFromWire(kind),
	}, nil
}

func (r RepairComplete) SerializeDIS(w *ByteWriter) int {
	n := r.ReceivingEntityID.SerializeDIS(w)
	n += r.RepairingEntityID.SerializeDIS(w)
	w.PutU16(r.Repair.Wire())
	w.PadZero(2)
	n += 2 + 2
	return n
}

func (r RepairComplete) BodyLengthBytes() int  { return EntityIdLengthBytes*2 + 2 + 2 }
func (r RepairComplete) BodyType() PduType     { return PduTypeRepairComplete }
func (r RepairComplete) Originator() *EntityId { return &r.RepairingEntityID }
func (r RepairComplete) Receiver() *EntityId   { return &r.ReceivingEntityID }
