package dis

import "testing"

func TestParseSerializeAcknowledgeRoundTrip(t *testing.T) {
	body := Acknowledge{
		OriginatingID:   EntityId{Site: 1, Application: 2, Entity: 3},
		ReceivingID:     EntityId{Site: 4, Application: 5, Entity: 6},
		AcknowledgeFlag: AcknowledgeFlagFromWire(1),
		ResponseFlag:    ResponseFlagFromWire(1),
		RequestID:       42,
	}
	pdu := FinalizeFromParts(Header{ProtocolVersion: ProtocolVersion7, ExerciseID: 1}, body, 1000)

	w := NewByteWriter()
	n, err := Serialize(pdu, w)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if int(n) != int(pdu.Header.PduLength) {
		t.Errorf("serialized %d bytes, header declares PduLength %d", n, pdu.Header.PduLength)
	}

	pdus, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(pdus) != 1 {
		t.Fatalf("got %d pdus, want 1", len(pdus))
	}
	got, ok := pdus[0].Body.(Acknowledge)
	if !ok {
		t.Fatalf("body type = %T, want Acknowledge", pdus[0].Body)
	}
	if got != body {
		t.Errorf("round-tripped body = %+v, want %+v", got, body)
	}
	if pdus[0].Header.PduType != PduTypeAcknowledge {
		t.Errorf("PduType = %v, want %v", pdus[0].Header.PduType, PduTypeAcknowledge)
	}
}

func TestParseMultiplePdusInOneDatagram(t *testing.T) {
	a := FinalizeFromParts(Header{ProtocolVersion: ProtocolVersion7}, Acknowledge{RequestID: 1}, 1)
	b := FinalizeFromParts(Header{ProtocolVersion: ProtocolVersion7}, Acknowledge{RequestID: 2}, 2)

	w := NewByteWriter()
	if _, err := Serialize(a, w); err != nil {
		t.Fatalf("Serialize a: %v", err)
	}
	if _, err := Serialize(b, w); err != nil {
		t.Fatalf("Serialize b: %v", err)
	}

	pdus, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(pdus) != 2 {
		t.Fatalf("got %d pdus, want 2", len(pdus))
	}
	if pdus[0].Body.(Acknowledge).RequestID != 1 || pdus[1].Body.(Acknowledge).RequestID != 2 {
		t.Errorf("pdus out of order or corrupted: %+v", pdus)
	}
}

func TestParseInsufficientHeader(t *testing.T) {
	_, err := Parse(make([]byte, PduHeaderLenBytes-1))
	if _, ok := err.(InsufficientHeaderError); !ok {
		t.Fatalf("err = %v (%T), want InsufficientHeaderError", err, err)
	}
}

func TestParseInsufficientBody(t *testing.T) {
	pdu := FinalizeFromParts(Header{ProtocolVersion: ProtocolVersion7}, Acknowledge{}, 1)
	w := NewByteWriter()
	if _, err := Serialize(pdu, w); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	truncated := w.Bytes()[:len(w.Bytes())-4]
	_, err := Parse(truncated)
	if _, ok := err.(InsufficientBodyError); !ok {
		t.Fatalf("err = %v (%T), want InsufficientBodyError", err, err)
	}
}

// TestOtherPduPreservesRawBytes documents spec.md's "unknown PDU types
// pass through verbatim" requirement: a body with no dedicated parser
// still round-trips through Other without data loss.
func TestOtherPduPreservesRawBytes(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02}
	body := Other{Raw: raw}
	pdu := FinalizeFromParts(Header{ProtocolVersion: ProtocolVersion7}, body, 7)

	w := NewByteWriter()
	if _, err := Serialize(pdu, w); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	pdus, err := Parse(w.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, ok := pdus[0].Body.(Other)
	if !ok {
		t.Fatalf("body type = %T, want Other", pdus[0].Body)
	}
	if string(got.Raw) != string(raw) {
		t.Errorf("Raw = %x, want %x", got.Raw, raw)
	}
}
