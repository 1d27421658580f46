package dis

// ResupplyCancel cancels an in-progress resupply. Grounded on
// original_source/dis-rs/src/common/resupply_cancel/{model,parser,
// writer}.rs: EntityId (receiving) + EntityId (supplying), 12 bytes.
type ResupplyCancel struct {
	ReceivingEntityID EntityId
	SupplyingEntityID EntityId
}

func NewResupplyCancel() ResupplyCancel { return ResupplyCancel{} }

func (r ResupplyCancel) WithReceivingEntityID(id EntityId) ResupplyCancel {
	r.ReceivingEntityID = id
	return r
}
func (r ResupplyCancel) WithSupplyingEntityID(id EntityId) ResupplyCancel {
	r.SupplyingEntityID = id
	return r
}

func parseResupplyCancelBody(r *ByteReader, _ Options) (PduBody, error) {
	receiving, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	supplying, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	return ResupplyCancel{ReceivingEntityID: receiving, SupplyingEntityID: supplying}, nil
}

func (r ResupplyCancel) SerializeDIS(w *ByteWriter) int {
	n := r.ReceivingEntityID.SerializeDIS(w)
	n += r.SupplyingEntityID.SerializeDIS(w)
	return n
}

func (r ResupplyCancel) BodyLengthBytes() int { return EntityIdLengthBytes * 2 }
func (r ResupplyCancel) BodyType() PduType    { return PduTypeResupplyCancel }
func (r ResupplyCancel) Originator() *EntityId { return &r.ReceivingEntityID }
func (r ResupplyCancel) Receiver() *EntityId   { return &r.SupplyingEntityID }
