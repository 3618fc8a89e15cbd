package event_test

import (
	"bytes"
	"testing"

	"github.com/flp-go/flp/event"
)

func TestParseStreamScenarioA(t *testing.T) {
	// tag 0, 1-byte payload 0x2A.
	in := []byte{0x00, 0x2A}
	events, err := event.ParseStream(in)
	if err != nil {
		t.Fatalf("ParseStream: %v", err)
	}
	if len(events) != 1 || events[0].Tag != 0 || !bytes.Equal(events[0].Body, []byte{0x2A}) {
		t.Fatalf("got %+v, want one scalar8 event (tag=0, body=[0x2A])", events)
	}
	if got := event.SerializeStream(events); !bytes.Equal(got, in) {
		t.Fatalf("SerializeStream = %x, want %x", got, in)
	}
}

func TestParseStreamScenarioB(t *testing.T) {
	// tag 192, varlen=3, 3 body bytes.
	in := []byte{0xC0, 0x03, 0x01, 0x02, 0x03}
	events, err := event.ParseStream(in)
	if err != nil {
		t.Fatalf("ParseStream: %v", err)
	}
	if len(events) != 1 || events[0].Tag != 192 || !bytes.Equal(events[0].Body, []byte{1, 2, 3}) {
		t.Fatalf("got %+v, want one data event (tag=192, body=[1,2,3])", events)
	}
	if got := event.SerializeStream(events); !bytes.Equal(got, in) {
		t.Fatalf("SerializeStream = %x, want %x", got, in)
	}
}

func TestRoundTripIdentity(t *testing.T) {
	in := []byte{
		0x00, 0x2A, // scalar8
		0x41, 0xAD, 0xDE, // scalar16 (tag 65)
		0x81, 0x04, 0x03, 0x02, 0x01, // scalar32 (tag 129)
		0xC5, 0x02, 0x48, 0x69, // data (tag 197), varlen 2, "Hi"
	}
	events, err := event.ParseStream(in)
	if err != nil {
		t.Fatalf("ParseStream: %v", err)
	}
	out := event.SerializeStream(events)
	if !bytes.Equal(out, in) {
		t.Fatalf("round-trip mismatch:\n got %x\nwant %x", out, in)
	}
}

func TestOrderPreservation(t *testing.T) {
	in := []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03}
	events, err := event.ParseStream(in)
	if err != nil {
		t.Fatalf("ParseStream: %v", err)
	}
	reparsed, err := event.ParseStream(event.SerializeStream(events))
	if err != nil {
		t.Fatalf("ParseStream (reparse): %v", err)
	}
	if len(events) != len(reparsed) {
		t.Fatalf("event count changed: %d vs %d", len(events), len(reparsed))
	}
	for i := range events {
		if events[i].Tag != reparsed[i].Tag {
			t.Fatalf("tag sequence changed at %d: %d vs %d", i, events[i].Tag, reparsed[i].Tag)
		}
	}
}

func TestParseStreamTruncated(t *testing.T) {
	cases := [][]byte{
		{0x41}, // scalar16 tag with no body at all
		{0x41, 0xAD}, // scalar16 tag with only 1 of 2 body bytes
		{0xC0, 0x03, 0x01}, // data tag, varlen says 3, only 1 present
	}
	for _, in := range cases {
		if _, err := event.ParseStream(in); err == nil {
			t.Fatalf("ParseStream(%x): expected truncated-stream error, got nil", in)
		}
	}
}

func TestFramingLength(t *testing.T) {
	// Testable property 2: serialized length = 1 + size_prefix_len + body_len.
	e := &event.Event{Tag: 200, Body: make([]byte, 130)} // 130 >= 128 needs a 2-byte varlen prefix
	out := event.SerializeStream([]*event.Event{e})
	wantLen := 1 + 2 + len(e.Body)
	if len(out) != wantLen {
		t.Fatalf("serialized length = %d, want %d", len(out), wantLen)
	}
}
