package protocol

import "testing"

func TestEncodeDecodeControl(t *testing.T) {
	in := Control{Op: OpSetSpeed, Value: 2.5}
	b, err := Encode(MsgControl, in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgControl {
		t.Fatalf("envelope type = %q", env.T)
	}

	out, err := DecodePayload[Control](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip = %+v, want %+v", out, in)
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	if _, err := Encode("", Control{}); err == nil {
		t.Fatalf("empty type accepted")
	}
	if _, err := Encode(MsgControl, nil); err == nil {
		t.Fatalf("nil payload accepted")
	}
}

func TestDecodeRejectsEmpty(t *testing.T) {
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Fatalf("empty message accepted")
	}
	if _, err := DecodePayload[Control](Envelope{T: MsgControl}); err == nil {
		t.Fatalf("empty payload accepted")
	}
}
