package dis

/*
SetData pushes fixed/variable datum records to configure a receiving
entity; SetData-R is the reliable-service counterpart. Shares SetData's
wire shape with Data exactly (spec.md §4.4), so the field-level helpers
are reused directly.
*/
type SetData struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     uint32
	Datums        DatumSpecification
}

func NewSetData() SetData { return SetData{} }

func (d SetData) WithOriginatingID(id EntityId) SetData      { d.OriginatingID = id; return d }
func (d SetData) WithReceivingID(id EntityId) SetData        { d.ReceivingID = id; return d }
func (d SetData) WithRequestID(id uint32) SetData             { d.RequestID = id; return d }
func (d SetData) WithDatums(spec DatumSpecification) SetData { d.Datums = spec; return d }

func parseSetDataFields(r *ByteReader, opts Options) (SetData, error) {
	fields, err := parseDataFields(r, opts)
	if err != nil {
		return SetData{}, err
	}
	return SetData(fields), nil
}

func (d SetData) serializeFields(w *ByteWriter) int { return Data(d).serializeFields(w) }

func setDataFieldsLengthBytes(d SetData) int { return dataFieldsLengthBytes(Data(d)) }

func parseSetDataBody(r *ByteReader, opts Options) (PduBody, error) {
	return parseSetDataFields(r, opts)
}

func (d SetData) SerializeDIS(w *ByteWriter) int { return d.serializeFields(w) }
func (d SetData) BodyLengthBytes() int           { return setDataFieldsLengthBytes(d) }
func (d SetData) BodyType() PduType              { return PduTypeSetData }
func (d SetData) Originator() *EntityId          { return &d.OriginatingID }
func (d SetData) Receiver() *EntityId            { return &d.ReceivingID }

// SetDataR is SetData sent via the reliable simulation management
// service; same wire shape, distinct PduType.
type SetDataR struct {
	SetData
}

func NewSetDataR() SetDataR { return SetDataR{} }

func parseSetDataRBody(r *ByteReader, opts Options) (PduBody, error) {
	fields, err := parseSetDataFields(r, opts)
	if err != nil {
		return nil, err
	}
	return SetDataR{fields}, nil
}

func (d SetDataR) SerializeDIS(w *ByteWriter) int { return d.serializeFields(w) }
func (d SetDataR) BodyLengthBytes() int           { return setDataFieldsLengthBytes(d.SetData) }
func (d SetDataR) BodyType() PduType              { return PduTypeSetDataR }
