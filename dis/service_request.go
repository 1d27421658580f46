package dis

/*
ServiceRequest asks a supplying entity for resupply or repair service.
Grounded on
original_source/dis-rs/src/common/service_request/{model,parser,
writer}.rs: EntityId (requesting) + EntityId (servicing) + u8 service
type requested + u8 supply count + u16 padding + SupplyQuantity[].
*/
type ServiceRequest struct {
	RequestingEntityID EntityId
	ServicingEntityID  EntityId
	ServiceType        ServiceRequestServiceTypeRequested
	Supplies           []SupplyQuantity
}

func NewServiceRequest() ServiceRequest { return ServiceRequest{} }

func (s ServiceRequest) WithRequestingEntityID(id EntityId) ServiceRequest {
	s.RequestingEntityID = id
	return s
}
func (s ServiceRequest) WithServicingEntityID(id EntityId) ServiceRequest {
	s.ServicingEntityID = id
	return s
}
func (s ServiceRequest) WithServiceType(t ServiceRequestServiceTypeRequested) ServiceRequest {
	s.ServiceType = t
	return s
}
func (s ServiceRequest) WithSupplies(supplies []SupplyQuantity) ServiceRequest {
	s.Supplies = supplies
	return s
}

func parseServiceRequestBody(r *ByteReader, _ Options) (PduBody, error) {
	requesting, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	servicing, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	serviceType, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	count, err := r.TakeU8()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(2); err != nil {
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
	return ServiceRequest{
		RequestingEntityID: requesting,
		ServicingEntityID:  servicing,
		ServiceType:        ServiceTypeRequestedFromWire(serviceType),
		Supplies:           supplies,
	}, nil
}

func (s ServiceRequest) SerializeDIS(w *ByteWriter) int {
	n := s.RequestingEntityID.SerializeDIS(w)
	n += s.ServicingEntityID.SerializeDIS(w)
	w.PutU8(s.ServiceType.Wire())
	w.PutU8(uint8(len(s.Supplies)))
	w.PadZero(2)
	n += 1 + 1 + 2
	for _, sq := range s.Supplies {
		n += sq.SerializeDIS(w)
	}
	return n
}

func (s ServiceRequest) BodyLengthBytes() int {
	return EntityIdLengthBytes*2 + 1 + 1 + 2 + SupplyQuantityLengthBytes*len(s.Supplies)
}

func (s ServiceRequest) BodyType() PduType     { return PduTypeServiceRequest }
func (s ServiceRequest) Originator() *EntityId { return &s.RequestingEntityID }
func (s ServiceRequest) Receiver() *EntityId   { return &s.ServicingEntityID }
