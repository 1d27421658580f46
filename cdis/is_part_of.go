package cdis

import "github.com/discdis/gateway/dis"

// IsPartOf mirrors dis.IsPartOf.
type IsPartOf struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	PartLocation  EntityCoordinates
	PartType      VariableParameter
}

func EncodeIsPartOf(i dis.IsPartOf) IsPartOf {
	return IsPartOf{
		OriginatingID: EncodeEntityId(i.OriginatingID),
		ReceivingID:   EncodeEntityId(i.ReceivingID),
		PartLocation:  EncodeEntityCoordinates(i.PartLocation),
		PartType:      EncodeVariableParameter(i.PartType),
	}
}

func (i IsPartOf) Decode() dis.IsPartOf {
	return dis.IsPartOf{
		OriginatingID: i.OriginatingID.Decode(),
		ReceivingID:   i.ReceivingID.Decode(),
		PartLocation:  i.PartLocation.Decode(),
		PartType:      i.PartType.Decode(),
	}
}

func parseIsPartOfBody(r *BitReader) (Body, error) {
	originatingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	receivingID, err := ParseEntityId(r)
	if err != nil {
		return nil, err
	}
	location, err := ParseEntityCoordinates(r)
	if err != nil {
		return nil, err
	}
	partType, err := ParseVariableParameter(r)
	if err != nil {
		return nil, err
	}
	return IsPartOf{OriginatingID: originatingID, ReceivingID: receivingID, PartLocation: location, PartType: partType}, nil
}

func (i IsPartOf) SerializeDIS(w *BitWriter) error {
	if err := i.OriginatingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := i.ReceivingID.SerializeDIS(w); err != nil {
		return err
	}
	if err := i.PartLocation.SerializeDIS(w); err != nil {
		return err
	}
	return i.PartType.SerializeDIS(w)
}

func (i IsPartOf) BodyBitLength() int {
	return i.OriginatingID.BitLength() + i.ReceivingID.BitLength() + i.PartLocation.BitLength() + i.PartType.BitLength()
}

func (i IsPartOf) BodyType() dis.PduType  { return dis.PduTypeIsPartOf }
func (i IsPartOf) EncodeDIS() dis.PduBody { return i.Decode() }
