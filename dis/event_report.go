package dis

/*
EventReport carries an event notification plus supporting datum
records; EventReport-R is the reliable-service counterpart. Grounded
on original_source/dis-rs/src/common/event_report/{model,parser,writer}.rs:
EntityId + EntityId + u32 event type + u32 padding + DatumSpecification.
*/
type EventReport struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	EventType     uint32
	Datums        DatumSpecification
}

func NewEventReport() EventReport { return EventReport{} }

func (e EventReport) WithOriginatingID(id EntityId) EventReport         { e.OriginatingID = id; return e }
func (e EventReport) WithReceivingID(id EntityId) EventReport           { e.ReceivingID = id; return e }
func (e EventReport) WithEventType(t uint32) EventReport                { e.EventType = t; return e }
func (e EventReport) WithDatums(spec DatumSpecification) EventReport    { e.Datums = spec; return e }

func parseEventReportFields(r *ByteReader, opts Options) (EventReport, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return EventReport{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return EventReport{}, err
	}
	eventType, err := r.TakeU32()
	if err != nil {
		return EventReport{}, err
	}
	if err := r.Skip(4); err != nil {
		return EventReport{}, err
	}
	datums, err := ParseDatumSpecification(r, opts)
	if err != nil {
		return EventReport{}, err
	}
	return EventReport{OriginatingID: originatingID, ReceivingID: receivingID, EventType: eventType, Datums: datums}, nil
}

func (e EventReport) serializeFields(w *ByteWriter) int {
	n := e.OriginatingID.SerializeDIS(w)
	n += e.ReceivingID.SerializeDIS(w)
	w.PutU32(e.EventType)
	w.PadZero(4)
	n += 4 + 4
	n += e.Datums.SerializeDIS(w)
	return n
}

func eventReportFieldsLengthBytes(e EventReport) int {
	return EntityIdLengthBytes*2 + 4 + 4 + e.Datums.LengthBytes()
}

func parseEventReportBody(r *ByteReader, opts Options) (PduBody, error) {
	return parseEventReportFields(r, opts)
}

func (e EventReport) SerializeDIS(w *ByteWriter) int { return e.serializeFields(w) }
func (e EventReport) BodyLengthBytes() int           { return eventReportFieldsLengthBytes(e) }
func (e EventReport) BodyType() PduType              { return PduTypeEventReport }
func (e EventReport) Originator() *EntityId          { return &e.OriginatingID }
func (e EventReport) Receiver() *EntityId            { return &e.ReceivingID }

// EventReportR is EventReport sent via the reliable simulation
// management service; same wire shape, distinct PduType.
type EventReportR struct {
	EventReport
}

func NewEventReportR() EventReportR { return EventReportR{} }

func parseEventReportRBody(r *ByteReader, opts Options) (PduBody, error) {
	fields, err := parseEventReportFields(r, opts)
	if err != nil {
		return nil, err
	}
	return EventReportR{fields}, nil
}

func (e EventReportR) SerializeDIS(w *ByteWriter) int { return e.serializeFields(w) }
func (e EventReportR) BodyLengthBytes() int           { return eventReportFieldsLengthBytes(e.EventReport) }
func (e EventReportR) BodyType() PduType              { return PduTypeEventReportR }
