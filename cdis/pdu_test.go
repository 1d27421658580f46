package cdis

import (
	"testing"

	"github.com/discdis/gateway/dis"
)

func roundTripCdis(t *testing.T, body dis.PduBody) dis.PduBody {
	t.Helper()
	cdisPdu, err := Encode(dis.FinalizeFromParts(dis.Header{ProtocolVersion: dis.ProtocolVersion7, ExerciseID: 3}, body, 500), 500)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	wire, err := SerializeCdis(cdisPdu)
	if err != nil {
		t.Fatalf("SerializeCdis: %v", err)
	}
	parsed, err := ParseCdis(wire)
	if err != nil {
		t.Fatalf("ParseCdis: %v", err)
	}
	if int(parsed.Header.PduLengthBits) > len(wire)*8 {
		t.Errorf("PduLengthBits = %d exceeds wire length %d bits", parsed.Header.PduLengthBits, len(wire)*8)
	}
	return Decode(parsed, 500).Body
}

func TestAcknowledgeRoundTrip(t *testing.T) {
	want := dis.Acknowledge{
		OriginatingID:   dis.EntityId{Site: 1, Application: 2, Entity: 3},
		ReceivingID:     dis.EntityId{Site: 4, Application: 5, Entity: 6},
		AcknowledgeFlag: dis.AcknowledgeFlagFromWire(1),
		ResponseFlag:    dis.ResponseFlagFromWire(1),
		RequestID:       12345,
	}
	got := roundTripCdis(t, want)
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestCommentRoundTripWithDatums(t *testing.T) {
	want := dis.NewComment().
		WithOriginatingID(dis.EntityId{Site: 1, Application: 1, Entity: 1}).
		WithReceivingID(dis.NoEntity).
		WithDatums(dis.NewDatumSpecification(
			[]dis.FixedDatum{{ID: 7, Value: 99}},
			[]dis.VariableDatum{{ID: 8, Data: []byte("hello")}},
		))
	got := roundTripCdis(t, want).(dis.Comment)
	if got.OriginatingID != want.OriginatingID || got.ReceivingID != want.ReceivingID {
		t.Errorf("entity ids mismatch: got %+v, want %+v", got, want)
	}
	if len(got.Datums.FixedDatums) != 1 || got.Datums.FixedDatums[0].Value != 99 {
		t.Errorf("fixed datums = %+v", got.Datums.FixedDatums)
	}
	if len(got.Datums.VariableDatums) != 1 || string(got.Datums.VariableDatums[0].Data) != "hello" {
		t.Errorf("variable datums = %+v", got.Datums.VariableDatums)
	}
}

func TestCommentRoundTripWithoutDatums(t *testing.T) {
	want := dis.NewComment().WithOriginatingID(dis.EntityId{Site: 1, Application: 1, Entity: 1})
	got := roundTripCdis(t, want).(dis.Comment)
	if len(got.Datums.FixedDatums) != 0 || len(got.Datums.VariableDatums) != 0 {
		t.Errorf("expected empty datums, got %+v", got.Datums)
	}
}

func TestSignalRoundTripWithAudio(t *testing.T) {
	want := dis.Signal{
		EntityID:       dis.EntityId{Site: 9, Application: 9, Entity: 9},
		RadioID:        1,
		EncodingScheme: 2,
		TdlType:        3,
		SampleRate:     8000,
		SampleCount:    4,
		Data:           []byte{1, 2, 3, 4},
	}
	got := roundTripCdis(t, want).(dis.Signal)
	if string(got.Data) != string(want.Data) {
		t.Errorf("Data = %v, want %v", got.Data, want.Data)
	}
	if got.SampleRate != want.SampleRate {
		t.Errorf("SampleRate = %d, want %d", got.SampleRate, want.SampleRate)
	}
}

func TestSignalRoundTripWithoutAudio(t *testing.T) {
	want := dis.Signal{EntityID: dis.EntityId{Site: 1, Application: 1, Entity: 1}, RadioID: 1}
	got := roundTripCdis(t, want).(dis.Signal)
	if len(got.Data) != 0 {
		t.Errorf("expected no audio payload, got %v", got.Data)
	}
}

func TestCollisionRoundTripWithinTolerance(t *testing.T) {
	want := dis.Collision{
		IssuingEntityID:   dis.EntityId{Site: 1, Application: 1, Entity: 1},
		CollidingEntityID: dis.EntityId{Site: 2, Application: 2, Entity: 2},
		EventID:           dis.EventId{Site: 1, Application: 1, EventNumber: 1},
		CollisionType:     dis.CollisionTypeElastic,
		Velocity:          dis.VectorF32{X: 10, Y: -5, Z: 0},
		Mass:              1500,
		Location:          dis.VectorF32{X: 1.5, Y: 2.5, Z: -3.5},
	}
	got := roundTripCdis(t, want).(dis.Collision)
	if got.IssuingEntityID != want.IssuingEntityID || got.CollidingEntityID != want.CollidingEntityID {
		t.Errorf("entity ids mismatch: got %+v, want %+v", got, want)
	}
	if got.Mass != want.Mass {
		t.Errorf("Mass = %v, want %v (full precision float, no lossy scaling)", got.Mass, want.Mass)
	}
	const tol = 0.02 // two 1/100 m entity-coordinate quantization steps
	if abs32(got.Velocity.X-want.Velocity.X) > tol || abs32(got.Velocity.Y-want.Velocity.Y) > tol {
		t.Errorf("Velocity = %+v, want %+v within %v", got.Velocity, want.Velocity, tol)
	}
	if abs32(got.Location.X-want.Location.X) > tol || abs32(got.Location.Z-want.Location.Z) > tol {
		t.Errorf("Location = %+v, want %+v within %v", got.Location, want.Location, tol)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestSetDataReusesDataWireLayout(t *testing.T) {
	data := dis.Data{
		OriginatingID: dis.EntityId{Site: 1, Application: 1, Entity: 1},
		ReceivingID:   dis.EntityId{Site: 2, Application: 2, Entity: 2},
		RequestID:     7,
		Datums:        dis.NewDatumSpecification([]dis.FixedDatum{{ID: 1, Value: 2}}, nil),
	}
	setData := dis.SetData(data)

	dataBits := EncodeData(data).BodyBitLength()
	setDataBits := EncodeSetData(setData).BodyBitLength()
	if dataBits != setDataBits {
		t.Errorf("Data/SetData bit lengths diverge: %d vs %d", dataBits, setDataBits)
	}

	got := roundTripCdis(t, setData).(dis.SetData)
	if got.RequestID != setData.RequestID || got.Datums.FixedDatums[0].Value != 2 {
		t.Errorf("round trip = %+v, want %+v", got, setData)
	}
}

func TestEntityStateRoundTripWithOptionalGroups(t *testing.T) {
	want := dis.NewEntityState().
		WithEntityID(dis.EntityId{Site: 1, Application: 2, Entity: 3}).
		WithForceID(dis.ForceIdFriendly).
		WithEntityType(dis.EntityType{Kind: 1, Domain: 2, Country: 225, Category: 1, Subcategory: 1, Specific: 1, Extra: 0}).
		WithEntityLocation(dis.WorldCoordinates{X: 100, Y: 200, Z: 300}).
		WithEntityOrientation(dis.Orientation{Psi: 1, Theta: 2, Phi: 3}).
		WithEntityMarking(dis.NewEntityMarkingFromString(1, "TANK-1")).
		WithDeadReckoningParameters(dis.DeadReckoningParameters{Algorithm: dis.DeadReckoningAlgorithmFPW})

	got := roundTripCdis(t, want).(dis.EntityState)
	if got.EntityID != want.EntityID {
		t.Errorf("EntityID = %+v, want %+v", got.EntityID, want.EntityID)
	}
	if got.EntityMarking.String() != "TANK-1" {
		t.Errorf("EntityMarking = %q, want %q", got.EntityMarking.String(), "TANK-1")
	}
	if got.DeadReckoningParameters.Algorithm != dis.DeadReckoningAlgorithmFPW {
		t.Errorf("DeadReckoningParameters.Algorithm = %v, want FPW", got.DeadReckoningParameters.Algorithm)
	}
}

func TestEntityStateRoundTripWithoutOptionalGroups(t *testing.T) {
	want := dis.NewEntityState().WithEntityID(dis.EntityId{Site: 1, Application: 1, Entity: 1})
	got := roundTripCdis(t, want).(dis.EntityState)
	if got.EntityMarking.String() != "" {
		t.Errorf("expected empty marking, got %q", got.EntityMarking.String())
	}
	if got.DeadReckoningParameters.Algorithm != dis.DeadReckoningAlgorithmOther {
		t.Errorf("expected DeadReckoningAlgorithmOther, got %v", got.DeadReckoningParameters.Algorithm)
	}
}

func TestEncodeUnsupportedPduType(t *testing.T) {
	_, err := Encode(dis.FinalizeFromParts(dis.Header{ProtocolVersion: dis.ProtocolVersion7}, dis.ActionRequest{}, 1), 1)
	if _, ok := err.(UnsupportedPduTypeError); !ok {
		t.Fatalf("err = %v (%T), want UnsupportedPduTypeError", err, err)
	}
}
