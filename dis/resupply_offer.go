package dis

/*
ResupplyOffer offers a list of supplies to a receiving entity in
response to a ServiceRequest. Grounded on
original_source/dis-rs/src/common/resupply_offer/{model,parser,
writer}.rs: EntityId (receiving) + EntityId (supplying) + u8 supply
count + 3 bytes padding + SupplyQuantity[].
*/
type ResupplyOffer struct {
	ReceivingEntityID EntityId
	SupplyingEntityID EntityId
	Supplies          []SupplyQuantity
}

func NewResupplyOffer() ResupplyOffer { return ResupplyOffer{} }

func (r ResupplyOffer) WithReceivingEntityID(id EntityId) ResupplyOffer {
	r.ReceivingEntityID = id
	return r
}
func (r ResupplyOffer) WithSupplyingEntityID(id EntityId) ResupplyOffer {
	r.SupplyingEntityID = id
	return r
}
func (r ResupplyOffer) WithSupplies(supplies []SupplyQuantity) ResupplyOffer {
	r.Supplies = supplies
	return r
}

func parseResupplyOfferBody(r *ByteReader, _ Options) (PduBody, error) {
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
	return ResupplyOffer{ReceivingEntityID: receiving, SupplyingEntityID: supplying, Supplies: supplies}, nil
}

func (r ResupplyOffer) SerializeDIS(w *ByteWriter) int {
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

func (r ResupplyOffer) BodyLengthBytes() int {
	return EntityIdLengthBytes*2 + 1 + 3 + SupplyQuantityLengthBytes*len(r.Supplies)
}

func (r ResupplyOffer) BodyType() PduType     { return PduTypeResupplyOffer }
func (r ResupplyOffer) Originator() *EntityId { return &r.SupplyingEntityID }
func (r ResupplyOffer) Receiver() *EntityId   { return &r.ReceivingEntityID }
