package dis

/*
DataQuery requests specific fixed/variable datum values from a
receiving entity at a given polling interval; DataQuery-R is the
reliable-service counterpart. Grounded on
original_source/dis-rs/src/common/data_query/{model,parser,writer}.rs:
EntityId + EntityId + u32 request id + u32 time interval + u32 fixed
count + u32 variable count + fixed datum IDs[] + variable datum IDs[].
Unlike Data/SetData, only datum IDs are carried, never values.
*/
type DataQuery struct {
	OriginatingID     EntityId
	ReceivingID       EntityId
	RequestID         uint32
	TimeInterval      uint32
	FixedDatumIDs     []uint32
	VariableDatumIDs  []uint32
}

func NewDataQuery() DataQuery { return DataQuery{} }

func (d DataQuery) WithOriginatingID(id EntityId) DataQuery     { d.OriginatingID = id; return d }
func (d DataQuery) WithReceivingID(id EntityId) DataQuery       { d.ReceivingID = id; return d }
func (d DataQuery) WithRequestID(id uint32) DataQuery            { d.RequestID = id; return d }
func (d DataQuery) WithTimeInterval(t uint32) DataQuery          { d.TimeInterval = t; return d }
func (d DataQuery) WithFixedDatumIDs(ids []uint32) DataQuery    { d.FixedDatumIDs = ids; return d }
func (d DataQuery) WithVariableDatumIDs(ids []uint32) DataQuery { d.VariableDatumIDs = ids; return d }

func parseDataQueryFields(r *ByteReader) (DataQuery, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return DataQuery{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return DataQuery{}, err
	}
	requestID, err := r.TakeU32()
	if err != nil {
		return DataQuery{}, err
	}
	interval, err := r.TakeU32()
	if err != nil {
		return DataQuery{}, err
	}
	fixedCount, err := r.TakeU32()
	if err != nil {
		return DataQuery{}, err
	}
	variableCount, err := r.TakeU32()
	if err != nil {
		return DataQuery{}, err
	}
	fixedIDs := make([]uint32, fixedCount)
	for i := range fixedIDs {
		v, err := r.TakeU32()
		if err != nil {
			return DataQuery{}, err
		}
		fixedIDs[i] = v
	}
	variableIDs := make([]uint32, variableCount)
	for i := range variableIDs {
		v, err := r.TakeU32()
		if err != nil {
			return DataQuery{}, err
		}
		variableIDs[i] = v
	}
	return DataQuery{
		OriginatingID:    originatingID,
		ReceivingID:      receivingID,
		RequestID:        requestID,
		TimeInterval:     interval,
		FixedDatumIDs:    fixedIDs,
		VariableDatumIDs: variableIDs,
	}, nil
}

func (d DataQuery) serializeFields(w *ByteWriter) int {
	n := d.OriginatingID.SerializeDIS(w)
	n += d.ReceivingID.SerializeDIS(w)
	w.PutU32(d.RequestID)
	w.PutU32(d.TimeInterval)
	w.PutU32(uint32(len(d.FixedDatumIDs)))
	w.PutU32(uint32(len(d.VariableDatumIDs)))
	n += 4 + 4 + 4 + 4
	for _, id := range d.FixedDatumIDs {
		w.PutU32(id)
		n += 4
	}
	for _, id := range d.VariableDatumIDs {
		w.PutU32(id)
		n += 4
	}
	return n
}

func dataQueryFieldsLengthBytes(d DataQuery) int {
	return EntityIdLengthBytes*2 + 4 + 4 + 4 + 4 + 4*len(d.FixedDatumIDs) + 4*len(d.VariableDatumIDs)
}

func parseDataQueryBody(r *ByteReader, _ Options) (PduBody, error) {
	return parseDataQueryFields(r)
}

func (d DataQuery) SerializeDIS(w *ByteWriter) int { return d.serializeFields(w) }
func (d DataQuery) BodyLengthBytes() int           { return dataQueryFieldsLengthBytes(d) }
func (d DataQuery) BodyType() PduType              { return PduTypeDataQuery }
func (d DataQuery) Originator() *EntityId          { return &d.OriginatingID }
func (d DataQuery) Receiver() *EntityId            { return &d.ReceivingID }

// DataQueryR is DataQuery sent via the reliable simulation management
// service; same wire shape, distinct PduType.
type DataQueryR struct {
	DataQuery
}

func NewDataQueryR() DataQueryR { return DataQueryR{} }

func parseDataQueryRBody(r *ByteReader, _ Options) (PduBody, error) {
	fields, err := parseDataQueryFields(r)
	if err != nil {
		return nil, err
	}
	return DataQueryR{fields}, nil
}

func (d DataQueryR) SerializeDIS(w *ByteWriter) int { return d.serializeFields(w) }
func (d DataQueryR) BodyLengthBytes() int           { return dataQueryFieldsLengthBytes(d.DataQuery) }
func (d DataQueryR) BodyType() PduType              { return PduTypeDataQueryR }
