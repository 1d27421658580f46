package dis

/*
Data carries fixed/variable datum records pushed from originator to
receiver, typically in answer to a DataQuery; Data-R is the
reliable-service counterpart. Grounded on
original_source/dis-rs/src/common/data/{model,parser,writer}.rs:
EntityId + EntityId + u32 request id + u32 padding + DatumSpecification.
*/
type Data struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     uint32
	Datums        DatumSpecification
}

func NewData() Data { return Data{} }

func (d Data) WithOriginatingID(id EntityId) Data          { d.OriginatingID = id; return d }
func (d Data) WithReceivingID(id EntityId) Data            { d.ReceivingID = id; return d }
func (d Data) WithRequestID(id uint32) Data                { d.RequestID = id; return d }
func (d Data) WithDatums(spec DatumSpecification) Data     { d.Datums = spec; return d }

func parseDataFields(r *ByteReader, opts Options) (Data, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return Data{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return Data{}, err
	}
	requestID, err := r.TakeU32()
	if err != nil {
		return Data{}, err
	}
	if err := r.Skip(4); err != nil {
		return Data{}, err
	}
	datums, err := ParseDatumSpecification(r, opts)
	if err != nil {
		return Data{}, err
	}
	return Data{OriginatingID: originatingID, ReceivingID: receivingID, RequestID: requestID, Datums: datums}, nil
}

func (d Data) serializeFields(w *ByteWriter) int {
	n := d.OriginatingID.SerializeDIS(w)
	n += d.ReceivingID.SerializeDIS(w)
	w.PutU32(d.RequestID)
	w.PadZero(4)
	n += 4 + 4
	n += d.Datums.SerializeDIS(w)
	return n
}

func dataFieldsLengthBytes(d Data) int {
	return EntityIdLengthBytes*2 + 4 + 4 + d.Datums.LengthBytes()
}

func parseDataBody(r *ByteReader, opts Options) (PduBody, error) {
	return parseDataFields(r, opts)
}

func (d Data) SerializeDIS(w *ByteWriter) int { return d.serializeFields(w) }
func (d Data) BodyLengthBytes() int           { return dataFieldsLengthBytes(d) }
func (d Data) BodyType() PduType              { return PduTypeData }
func (d Data) Originator() *EntityId          { return &d.OriginatingID }
func (d Data) Receiver() *EntityId            { return &d.ReceivingID }

// DataR is Data sent via the reliable simulation management service;
// same wire shape, distinct PduType.
type DataR struct {
	Data
}

func NewDataR() DataR { return DataR{} }

func parseDataRBody(r *ByteReader, opts Options) (PduBody, error) {
	fields, err := parseDataFields(r, opts)
	if err != nil {
		return nil, err
	}
	return DataR{fields}, nil
}

func (d DataR) SerializeDIS(w *ByteWriter) int { return d.serializeFields(w) }
func (d DataR) BodyLengthBytes() int           { return dataFieldsLengthBytes(d.Data) }
func (d DataR) BodyType() PduType              { return PduTypeDataR }
