package dis

/*
IsPartOf attaches an entity as a part of a larger host entity (e.g. a
turret as part of a vehicle). Grounded on
original_source/dis-rs/src/common/is_part_of/{model,parser,writer}.rs:
EntityId (originating/part) + EntityId (receiving/host) + VectorF32
part location + VariableParameter part type, 40 bytes.
*/
type IsPartOf struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	PartLocation  VectorF32
	PartType      VariableParameter
}

func NewIsPartOf() IsPartOf { return IsPartOf{} }

func (i IsPartOf) WithOriginatingID(id EntityId) IsPartOf { i.OriginatingID = id; return i }
func (i IsPartOf) WithReceivingID(id EntityId) IsPartOf   { i.ReceivingID = id; return i }
func (i IsPartOf) WithPartLocation(v VectorF32) IsPartOf  { i.PartLocation = v; return i }
func (i IsPartOf) WithPartType(p VariableParameter) IsPartOf {
	i.PartType = p
	return i
}

func parseIsPartOfBody(r *ByteReader, _ Options) (PduBody, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	location, err := ParseVectorF32(r)
	if err != nil {
		return nil, err
	}
	partType, err := ParseVariableParameter(r)
	if err != nil {
		return nil, err
	}
	return IsPartOf{
		OriginatingID: originatingID,
		ReceivingID:   receivingID,
		PartLocation:  location,
		PartType:      partType,
	}, nil
}

func (i IsPartOf) SerializeDIS(w *ByteWriter) int {
	n := i.OriginatingID.SerializeDIS(w)
	n += i.ReceivingID.SerializeDIS(w)
	n += i.PartLocation.SerializeDIS(w)
	n += i.PartType.SerializeDIS(w)
	return n
}

func (i IsPartOf) BodyLengthBytes() int {
	return EntityIdLengthBytes*2 + VectorF32LengthBytes + VariableParameterLengthBytes
}

func (i IsPartOf) BodyType() PduType     { return PduTypeIsPartOf }
func (i IsPartOf) Originator() *EntityId { return &i.OriginatingID }
func (i IsPartOf) Receiver() *EntityId   { return &i.ReceivingID }
