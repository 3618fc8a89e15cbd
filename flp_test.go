package flp

import (
	"bytes"
	"testing"

	"github.com/flp-go/flp/event"
)

// Scenario A (spec.md §8): tag 0, payload 0x2A round-trips byte-identically.
func TestParseSerializeScenarioA(t *testing.T) {
	in := []byte{0x00, 0x2A}
	s, err := Parse(in, Config{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(s.Events) != 1 || s.Events[0].Tag != 0 || !bytes.Equal(s.Events[0].Body, []byte{0x2A}) {
		t.Fatalf("unexpected parse result: %+v", s.Events)
	}
	if got := s.Serialize(); !bytes.Equal(got, in) {
		t.Errorf("Serialize() = %v, want %v", got, in)
	}
}

// Scenario B (spec.md §8): tag 192, varlen=3, body [1,2,3].
func TestParseSerializeScenarioB(t *testing.T) {
	in := []byte{0xC0, 0x03, 0x01, 0x02, 0x03}
	s, err := Parse(in, Config{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(s.Events) != 1 || s.Events[0].Tag != 192 || !bytes.Equal(s.Events[0].Body, []byte{1, 2, 3}) {
		t.Fatalf("unexpected parse result: %+v", s.Events)
	}
	if got := s.Serialize(); !bytes.Equal(got, in) {
		t.Errorf("Serialize() = %v, want %v", got, in)
	}
}

func TestParseTruncatedStream(t *testing.T) {
	if _, err := Parse([]byte{0xC0, 0x05, 0x01}, Config{}); err == nil {
		t.Fatal("expected an error for a truncated varlen body")
	}
}

// Scenario E (spec.md §8) through the Stream API: a malformed params blob
// parses without failing the whole stream and is recorded as a warning.
func TestStreamMixerWithMalformedParamsBlob(t *testing.T) {
	body := make([]byte, 13)
	data := append([]byte{byte(event.TagMixerParams)}, encodeVarlenForTest(len(body))...)
	data = append(data, body...)

	s, err := Parse(data, Config{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	mixer := s.Mixer()
	if mixer.APDC() {
		t.Error("expected APDC to default false when MixerID.APDC is absent")
	}
	if len(s.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(s.Warnings))
	}
	if got := s.Serialize(); !bytes.Equal(got, data) {
		t.Error("malformed params blob must round-trip unchanged")
	}
}

func encodeVarlenForTest(n int) []byte {
	var out []byte
	for {
		b := byte(n & 0x7F)
		n >>= 7
		if n != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if n == 0 {
			break
		}
	}
	return out
}
