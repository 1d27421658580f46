package cdis

import "github.com/discdis/gateway/dis"

// Comment mirrors dis.Comment; Signal/Comment/EntityState are the
// fields-present-bitmap examples spec.md §4.4 names, and Comment's
// single optional group (its datum records) is flagged by one bit.
type Comment struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	DatumsPresent bool
	Datums        DatumSpecification
}

func EncodeComment(c dis.Comment) Comment {
	present := len(c.Datums.FixedDatums) > 0 || len(c.Datums.VariableDatums) > 0
	return Comment{
		OriginatingID: EncodeEntityId(c.OriginatingID),
		ReceivingID:   EncodeEntityId(c.ReceivingID),
		DatumsPresent: present,
		Datums:        EncodeDatumSpecification(c.Datums),
	}
}

func (c Comment) Decode() dis.Comment {
	datums := c.Datums.Decode()
	if !c.DatumsPresent {
		datums = dis.NewDatumSpecification(nil, nil)
	}
	return dis.Comment{
		OriginatingID: c.OriginatingID.Decode(),
		ReceivingID:   c.ReceivingID.Decode(),
		Datums:        datums,
	}
}

func parseCommentBody(r *BitReader) (Body, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	presentBit, err := r.TakeUnsigned(1)
	if err != nil {
		return nil, err
	}
	present := presentBit != 0
	var datums DatumSpecification
	if present {
		datums, err = ParseDatumSpecification(r)
		if err != nil {
			return nil, err
		}
	}
	return Comment{OriginatingID: originatingID, ReceivingID: receivingID, DatumsPresent: present, Datums: datums}, nil
}

func (c Comment) SerializeDIS(w *BitWriter) error {
	if err := c.OriginatingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := c.ReceivingID.SerializeDIS(w); err != nil {
		return err
	}
	if c.DatumsPresent {
		w.WriteUnsigned(1, 1)
		return c.Datums.SerializeDIS(w)
	}
	w.WriteUnsigned(0, 1)
	return nil
}

func (c Comment) BodyBitLength() int {
	n := c.OriginatingID.BitLength() + c.ReceivingID.BitLength() + 1
	if c.DatumsPresent {
		n += c.Datums.BitLength()
	}
	return n
}

func (c Comment) BodyType() dis.PduType  { return dis.PduTypeComment }
func (c Comment) EncodeDIS() dis.PduBody { return c.Decode() }
