package model_test

import (
	"testing"

	"github.com/flp-go/flp/event"
	"github.com/flp-go/flp/model"
)

func scalarEvent(tag event.Tag, body []byte) *event.Event {
	return &event.Event{Tag: tag, Body: body}
}

// buildTwoInsertMixer builds a minimal event stream for a master insert
// (logical index 0) followed by one track (logical index 1), each closed
// by an InsertID.Output marker, plus a params blob with Volume/Pan records
// and one send level for the track, routed to the master.
func buildTwoInsertMixer(t *testing.T) (*model.Mixer, []*event.Event) {
	t.Helper()
	var body []byte
	body = append(body, record(model.ParamVolume, 0, 0, 12800)...)
	body = append(body, record(model.ParamPan, 0, 0, 0)...)
	body = append(body, record(model.ParamID(64), 1, 0, 500)...) // send level to insert 0

	params, err := model.ParseMixerParams(body)
	if err != nil {
		t.Fatalf("ParseMixerParams: %v", err)
	}

	events := []*event.Event{
		scalarEvent(event.TagInsertFlags, []byte{0, 0, 0, 0, 0x08, 0, 0, 0, 0, 0, 0, 0}), // Enabled
		scalarEvent(event.TagInsertOutput, event.EncodeI32(0)),                          // closes insert 0 (master)
		scalarEvent(event.TagInsertName, event.EncodeText("Track 1", false, true)),
		scalarEvent(event.TagInsertFlags, []byte{0, 0, 0, 0, 0x80, 0, 0, 0, 0, 0, 0, 0}), // DockRight
		scalarEvent(event.TagInsertRouting, []byte{1}),                                  // routed to insert 0
		scalarEvent(event.TagInsertOutput, event.EncodeI32(0)),                          // closes insert 1 (track)
	}

	return model.NewMixer(events, params, false, 127, 0, nil), events
}

func TestMixerInsertsIndexingAndLen(t *testing.T) {
	m, _ := buildTwoInsertMixer(t)

	n, err := m.Len()
	if err != nil {
		t.Fatalf("Len: %v", err)
	}
	if n != 2 {
		t.Fatalf("Len() = %d, want 2", n)
	}

	inserts := m.Inserts()
	if len(inserts) != 2 {
		t.Fatalf("len(Inserts()) = %d, want 2", len(inserts))
	}
	if inserts[0].Index() != 0 || inserts[1].Index() != 1 {
		t.Fatalf("indices = %d, %d, want 0, 1", inserts[0].Index(), inserts[1].Index())
	}

	master, err := m.Insert(0)
	if err != nil {
		t.Fatalf("Insert(0): %v", err)
	}
	if !master.Enabled() {
		t.Error("expected master insert to be Enabled")
	}

	track, err := m.Insert("Track 1")
	if err != nil {
		t.Fatalf("Insert(\"Track 1\"): %v", err)
	}
	if track.Dock() != model.DockRight {
		t.Errorf("Dock() = %v, want DockRight", track.Dock())
	}

	if _, err := m.Insert(99); err == nil {
		t.Error("expected ModelNotFound-equivalent error for a missing index")
	}
}

func TestMixerInsertVolumeSetterLocality(t *testing.T) {
	m, _ := buildTwoInsertMixer(t)
	master, err := m.Insert(0)
	if err != nil {
		t.Fatalf("Insert(0): %v", err)
	}
	vol, ok := master.Volume()
	if !ok || vol != 12800 {
		t.Fatalf("Volume() = %d, %v, want 12800, true", vol, ok)
	}
	if err := master.SetVolume(16000); err != nil {
		t.Fatalf("SetVolume: %v", err)
	}
	vol, _ = master.Volume()
	if vol != 16000 {
		t.Errorf("Volume() after SetVolume = %d, want 16000", vol)
	}

	track, _ := m.Insert(1)
	if _, ok := track.Volume(); ok {
		t.Error("expected track 1 to have no Volume record in this fixture")
	}
	if err := track.SetVolume(1); err != model.ErrPropertyCannotBeSet {
		t.Errorf("SetVolume on absent record = %v, want ErrPropertyCannotBeSet", err)
	}
}

func TestMixerInsertRoutes(t *testing.T) {
	m, _ := buildTwoInsertMixer(t)
	track, err := m.Insert(1)
	if err != nil {
		t.Fatalf("Insert(1): %v", err)
	}
	routes := track.Routes()
	if len(routes) != 1 || routes[0] != 500 {
		t.Fatalf("Routes() = %v, want [500]", routes)
	}
}

func TestMixerInsertRoutesLengthMismatchWarns(t *testing.T) {
	var body []byte
	body = append(body, record(model.ParamID(64), 1, 0, 500)...) // one send level for insert 1

	params, err := model.ParseMixerParams(body)
	if err != nil {
		t.Fatalf("ParseMixerParams: %v", err)
	}

	events := []*event.Event{
		scalarEvent(event.TagInsertOutput, event.EncodeI32(0)), // closes insert 0 (master)
		scalarEvent(event.TagInsertRouting, []byte{1, 1}),      // routed to two inserts, only one has a send level
		scalarEvent(event.TagInsertOutput, event.EncodeI32(0)), // closes insert 1 (track)
	}

	var warnings []string
	m := model.NewMixer(events, params, false, 127, 0, func(op, message string) {
		warnings = append(warnings, op+": "+message)
	})

	track, err := m.Insert(1)
	if err != nil {
		t.Fatalf("Insert(1): %v", err)
	}
	routes := track.Routes()
	if len(routes) != 1 || routes[0] != 500 {
		t.Fatalf("Routes() = %v, want [500] (stopped at the shorter sequence)", routes)
	}
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
}

func TestInsertSlotsPadToMaxSlotsPlusOne(t *testing.T) {
	events := []*event.Event{
		scalarEvent(event.TagInsertOutput, event.EncodeI32(0)),
	}
	m := model.NewMixer(events, nil, false, 127, 8, nil)
	inserts := m.Inserts()
	if len(inserts) != 1 {
		t.Fatalf("len(Inserts()) = %d, want 1", len(inserts))
	}
	slots := inserts[0].Slots()
	if len(slots) != 9 {
		t.Fatalf("len(Slots()) = %d, want 9 (maxSlots+1)", len(slots))
	}
}
