package dis

/*
ResupplyReceived reports supplies actually received, which may be less
than what was offered. Same wire shape as ResupplyOffer (spec.md
§4.4): EntityId (receiving) + EntityId (supplying) + u8 supply count +
3 bytes padding + SupplyQuantity[].
*/
type ResupplyReceived struct {
	ReceivingEntityID EntityId
	SupplyingEntityID EntityId
	Supplies          []SupplyQuantity
}

func NewResupplyReceived() ResupplyReceived { return ResupplyReceived{} }

func (r ResupplyReceived) WithReceivingEntityID(id EntityId) ResupplyReceived {
	r.ReceivingEntityID = id
	return r
}
func (r ResupplyReceived) WithSupplyingEntityID(id EntityId) ResupplyReceived {
	r.SupplyingEntityID = id
	return r
}
func (r ResupplyReceived) WithSupplies(supplies []SupplyQuantity) ResupplyReceived {
	r.Supplies = supplies
	return r
}

func parseResupplyReceivedBody(r *ByteReader, _ Options) (PduBody, error) {
	receiving, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	supplying, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	count, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(3); err != nil {
		return nil, err
	}
	supplies := make([]SupplyQuantity, count)
	for i := range supplies {
		sq, err := ParseSupplyQuantity(r)
		if err != nil {
			return nil, err
		}
		supplies[i] = sq
	}
	return ResupplyReceived{ReceivingEntityID: receiving, SupplyingEntityID: supplying, Supplies: supplies}, nil
}

func (r ResupplyReceived) SerializeDIS(w *ByteWriter) int {
	n := r.ReceivingEntityID.SerializeDIS(w)
	n += r.SupplyingEntityID.SerializeDIS(w)
	w.PutU8(uint8(len(r.Supplies)))
	w.PadZero(3)
	n += 1 + 3
	for _, sq := range r.Supplies {
		n += sq.SerializeDIS(w)
	}
	return n
}

func (r ResupplyReceived) BodyLengthBytes() int {
	return EntityIdLengthBytes*2 + 1 + 3 + SupplyQuantityLengthBytes*len(r.Supplies)
}

func (r ResupplyReceived) BodyType() PduType     { return PduTypeResupplyReceived }
func (r ResupplyReceived) Originator() *EntityId { return &r.ReceivingEntityID }
func (r ResupplyReceived) Receiver() *EntityId   { return &r.SupplyingEntityID }
