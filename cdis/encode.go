package cdis

import "github.com/discdis/gateway/dis"

// encodeBody dispatches on the concrete DIS body type to its C-DIS
// encoder, the mirror image of parseBody's dispatch-by-PduType.
func encodeBody(body dis.PduBody) (Body, error) {
	switch b := body.(type) {
	case dis.Acknowledge:
		return EncodeAcknowledge(b), nil
	case dis.CreateEntity:
		return EncodeCreateEntity(b), nil
	case dis.RemoveEntity:
		return EncodeRemoveEntity(b), nil
	case dis.StartResume:
		return EncodeStartResume(b), nil
	case dis.StopFreeze:
		return EncodeStopFreeze(b), nil
	case dis.Data:
		return EncodeData(b), nil
	case dis.SetData:
		return EncodeSetData(b), nil
	case dis.Comment:
		return EncodeComment(b), nil
	case dis.EventReport:
		return EncodeEventReport(b), nil
	case dis.Signal:
		return EncodeSignal(b), nil
	case dis.Receiver:
		return EncodeReceiver(b), nil
	case dis.Transmitter:
		return EncodeTransmitter(b), nil
	case dis.Collision:
		return EncodeCollision(b), nil
	case dis.Detonation:
		return EncodeDetonation(b), nil
	case dis.Fire:
		return EncodeFire(b), nil
	case dis.EntityState:
		return EncodeEntityState(b), nil
	case dis.EntityStateUpdate:
		return EncodeEntityStateUpdate(b), nil
	case dis.IsPartOf:
		return EncodeIsPartOf(b), nil
	case dis.Designator:
		return EncodeDesignator(b), nil
	default:
		return nil, UnsupportedPduTypeError{Type: body.BodyType()}
	}
}
