package dis

/*
Comment carries free-form datum records with no request/response
semantics of its own; Comment-R is the reliable-service counterpart.
Grounded on original_source/dis-rs/src/common/comment/{model,parser,
writer}.rs: EntityId + EntityId + DatumSpecification, no request id.
*/
type Comment struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	Datums        DatumSpecification
}

func NewComment() Comment { return Comment{} }

func (c Comment) WithOriginatingID(id EntityId) Comment      { c.OriginatingID = id; return c }
func (c Comment) WithReceivingID(id EntityId) Comment        { c.ReceivingID = id; return c }
func (c Comment) WithDatums(spec DatumSpecification) Comment { c.Datums = spec; return c }

func parseCommentFields(r *ByteReader, opts Options) (Comment, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return Comment{}, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return Comment{}, err
	}
	datums, err := ParseDatumSpecification(r, opts)
	if err != nil {
		return Comment{}, err
	}
	return Comment{OriginatingID: originatingID, ReceivingID: receivingID, Datums: datums}, nil
}

func (c Comment) serializeFields(w *ByteWriter) int {
	n := c.OriginatingID.SerializeDIS(w)
	n += c.ReceivingID.SerializeDIS(w)
	n += c.Datums.SerializeDIS(w)
	return n
}

func commentFieldsLengthBytes(c Comment) int {
	return EntityIdLengthBytes*2 + c.Datums.LengthBytes()
}

func parseCommentBody(r *ByteReader, opts Options) (PduBody, error) {
	return parseCommentFields(r, opts)
}

func (c Comment) SerializeDIS(w *ByteWriter) int { return c.serializeFields(w) }
func (c Comment) BodyLengthBytes() int           { return commentFieldsLengthBytes(c) }
func (c Comment) BodyType() PduType              { return PduTypeComment }
func (c Comment) Originator() *EntityId          { return &c.OriginatingID }
func (c Comment) Receiver() *EntityId            { return &c.ReceivingID }

// CommentR is Comment sent via the reliable simulation management
// service; same wire shape, distinct PduType.
type CommentR struct {
	Comment
}

func NewCommentR() CommentR { return CommentR{} }

func parseCommentRBody(r *ByteReader, opts Options) (PduBody, error) {
	fields, err := parseCommentFields(r, opts)
	if err != nil {
		return nil, err
	}
	return CommentR{fields}, nil
}

func (c CommentR) SerializeDIS(w *ByteWriter) int { return c.serializeFields(w) }
func (c CommentR) BodyLengthBytes() int           { return commentFieldsLengthBytes(c.Comment) }
func (c CommentR) BodyType() PduType              { return PduTypeCommentR }
