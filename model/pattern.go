package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flp-go/flp/event"
)

const noteRecordSize = 24
const controllerRecordSize = 12

// noteNames are the 12 sharp-only pitch-class names a raw key value maps
// onto (spec.md §4.6): NOTE_NAMES[key%12] + key/12.
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// keyNameOrder lists the same names longest-first so a sharp ("C#") is
// matched before its natural prefix ("C") when parsing a key name back to a
// raw value.
var keyNameOrder = []struct {
	name string
	idx  int
}{
	{"C#", 1}, {"D#", 3}, {"F#", 6}, {"G#", 8}, {"A#", 10},
	{"C", 0}, {"D", 2}, {"E", 4}, {"F", 5}, {"G", 7}, {"A", 9}, {"B", 11},
}

// Note is a single 24-byte note record (spec.md §6 layout), borrowed from
// the owning Notes event's body.
type Note struct {
	raw []byte
}

func (n Note) Position() uint32     { return event.DecodeU32(n.raw[0:4]) }
func (n Note) SetPosition(v uint32) { copy(n.raw[0:4], event.EncodeU32(v)) }

const noteFlagSlide = 1 << 3

// Slide reports whether the note is a sliding note.
func (n Note) Slide() bool { return event.DecodeU16(n.raw[4:6])&noteFlagSlide != 0 }
func (n Note) SetSlide(v bool) {
	flags := event.DecodeU16(n.raw[4:6])
	if v {
		flags |= noteFlagSlide
	} else {
		flags &^= noteFlagSlide
	}
	copy(n.raw[4:6], event.EncodeU16(flags))
}

// RackChannel is the containing channel's IID.
func (n Note) RackChannel() uint16     { return event.DecodeU16(n.raw[6:8]) }
func (n Note) SetRackChannel(v uint16) { copy(n.raw[6:8], event.EncodeU16(v)) }

// Length is 0 for notes punched in through the step sequencer.
func (n Note) Length() uint32     { return event.DecodeU32(n.raw[8:12]) }
func (n Note) SetLength(v uint32) { copy(n.raw[8:12], event.EncodeU32(v)) }

func (n Note) rawKey() uint16      { return event.DecodeU16(n.raw[12:14]) }
func (n Note) setRawKey(v uint16)  { copy(n.raw[12:14], event.EncodeU16(v)) }

// Group is a number shared by notes in the same group, or 0 if ungrouped.
func (n Note) Group() uint16     { return event.DecodeU16(n.raw[14:16]) }
func (n Note) SetGroup(v uint16) { copy(n.raw[14:16], event.EncodeU16(v)) }

// FinePitch ranges 0..240, linear, 120 = no fine tuning (+-1200 cents).
func (n Note) FinePitch() uint8     { return n.raw[16] }
func (n Note) SetFinePitch(v uint8) { n.raw[16] = v }

// Release ranges 0..128, default 64.
func (n Note) Release() uint8     { return n.raw[18] }
func (n Note) SetRelease(v uint8) { n.raw[18] = v }

// MIDIChannel doubles as a color index on some FL Studio versions
// (0..15, +128 if dragged in from MIDI).
func (n Note) MIDIChannel() uint8     { return n.raw[19] }
func (n Note) SetMIDIChannel(v uint8) { n.raw[19] = v }

// Pan ranges 0..128, 64 = centered.
func (n Note) Pan() uint8     { return n.raw[20] }
func (n Note) SetPan(v uint8) { n.raw[20] = v }

// Velocity ranges 0..128, default 100.
func (n Note) Velocity() uint8     { return n.raw[21] }
func (n Note) SetVelocity(v uint8) { n.raw[21] = v }

// ModX/ModY are plugin-configurable parameters, range 0..255, default 128.
func (n Note) ModX() uint8     { return n.raw[22] }
func (n Note) SetModX(v uint8) { n.raw[22] = v }
func (n Note) ModY() uint8     { return n.raw[23] }
func (n Note) SetModY(v uint8) { n.raw[23] = v }

// Key returns the raw key value, an integer in [0, 132).
func (n Note) Key() int { return int(n.rawKey()) }

// SetKey sets the raw key value, rejecting anything outside [0, 132).
func (n Note) SetKey(v int) error {
	if v < 0 || v >= 132 {
		return fmt.Errorf("%w: key %d outside [0, 132)", ErrInvalidValue, v)
	}
	n.setRawKey(uint16(v))
	return nil
}

// KeyName returns the note's name with octave, e.g. "C5" or "A#3", ranging
// from C0 to B10. Only sharp names are used, never flats.
func (n Note) KeyName() string {
	k := n.Key()
	return noteNames[k%12] + strconv.Itoa(k/12)
}

// SetKeyName parses a name in {note-name}{octave} form -- e.g. "C#4" -- and
// sets the raw key accordingly. Sharp names are matched before their
// natural prefix so "C#4" resolves to C#, not C.
func (n Note) SetKeyName(name string) error {
	for _, k := range keyNameOrder {
		if !strings.HasPrefix(name, k.name) {
			continue
		}
		octave, err := strconv.Atoi(strings.TrimPrefix(name, k.name))
		if err != nil {
			return fmt.Errorf("%w: invalid octave in key name %q", ErrInvalidValue, name)
		}
		return n.SetKey(octave*12 + k.idx)
	}
	return fmt.Errorf("%w: unrecognized key name %q", ErrInvalidValue, name)
}

// Controller is a single 12-byte parameter-automation record.
type Controller struct {
	raw []byte
}

// Position is the automation point's time, in the same units as Note.Position.
func (c Controller) Position() uint32     { return event.DecodeU32(c.raw[0:4]) }
func (c Controller) SetPosition(v uint32) { copy(c.raw[0:4], event.EncodeU32(v)) }

// Channel corresponds to the containing channel's IID.
func (c Controller) Channel() uint8     { return c.raw[6] }
func (c Controller) SetChannel(v uint8) { c.raw[6] = v }

func (c Controller) Value() float32     { return event.DecodeF32(c.raw[8:12]) }
func (c Controller) SetValue(v float32) { copy(c.raw[8:12], event.EncodeF32(v)) }

// Pattern is a MIDI region: a list of notes, optional controller
// automation, and a handful of scalar properties, all grouped under one or
// more PatternID.New markers sharing the same payload (spec.md §4.6).
type Pattern struct {
	events []*event.Event
	wide   bool
}

func newPattern(events []*event.Event, wide bool) *Pattern {
	return &Pattern{events: events, wide: wide}
}

func (p *Pattern) firstEvent(tag event.Tag) *event.Event {
	for _, e := range p.events {
		if e.Tag == tag {
			return e
		}
	}
	return nil
}

// Index is the pattern's 1-based internal index, read from its (doubled)
// PatternID.New event.
func (p *Pattern) Index() int {
	if e := p.firstEvent(event.TagPatternNew); e != nil {
		return int(event.DecodeU16(e.Body))
	}
	return 0
}

// SetIndex updates every occurrence of PatternID.New (there are exactly two
// per pattern, sharing the same payload) to value.
func (p *Pattern) SetIndex(value int) {
	for _, e := range p.events {
		if e.Tag == event.TagPatternNew {
			e.Body = event.EncodeU16(uint16(value))
		}
	}
}

func (p *Pattern) Color() (event.Color, bool) { return colorValue(p.firstEvent(event.TagPatternColor)) }
func (p *Pattern) SetColor(c event.Color)     { setColorValue(p.firstEvent(event.TagPatternColor), c) }

func (p *Pattern) Name() string     { return textValue(p.firstEvent(event.TagPatternName), p.wide) }
func (p *Pattern) SetName(v string) { setTextValue(p.firstEvent(event.TagPatternName), p.wide, v) }

// Length is the number of steps multiplied by the project's PPQ, or absent
// if the pattern is in Auto mode (Looped == false).
func (p *Pattern) Length() (uint32, bool) {
	e := p.firstEvent(event.TagPatternLength)
	if e == nil {
		return 0, false
	}
	return event.DecodeU32(e.Body), true
}
func (p *Pattern) SetLength(v uint32) {
	if e := p.firstEvent(event.TagPatternLength); e != nil {
		e.Body = event.EncodeU32(v)
	}
}

// Looped reports whether the pattern is in loop mode; defaults to false
// when PatternID.Looped is absent.
func (p *Pattern) Looped() bool     { return boolValue(p.firstEvent(event.TagPatternLooped)) }
func (p *Pattern) SetLooped(v bool) { setBoolValue(p.firstEvent(event.TagPatternLooped), v) }

// Notes iterates the notes contained in the pattern's single Notes event,
// if present.
func (p *Pattern) Notes() []Note {
	e := p.firstEvent(event.TagPatternNotes)
	if e == nil {
		return nil
	}
	n := event.ListCount(e.Body, noteRecordSize)
	out := make([]Note, n)
	for i := 0; i < n; i++ {
		out[i] = Note{raw: event.ListRecord(e.Body, noteRecordSize, i)}
	}
	return out
}

// Controllers iterates the parameter automations in the pattern's single
// Controllers event, if present.
func (p *Pattern) Controllers() []Controller {
	e := p.firstEvent(event.TagPatternControllers)
	if e == nil {
		return nil
	}
	n := event.ListCount(e.Body, controllerRecordSize)
	out := make([]Controller, n)
	for i := 0; i < n; i++ {
		out[i] = Controller{raw: event.ListRecord(e.Body, controllerRecordSize, i)}
	}
	return out
}

// Patterns owns the ordered collection of Patterns found in the project.
type Patterns struct {
	events []*event.Event
	wide   bool
}

// NewPatterns builds a Patterns view over events (only the subset relevant
// to patterns need be passed).
func NewPatterns(events []*event.Event, wide bool) *Patterns {
	return &Patterns{events: events, wide: wide}
}

// All groups the event stream into one Pattern per distinct PatternID.New
// value, in first-seen order.
func (ps *Patterns) All() []*Pattern {
	var order []int
	grouped := make(map[int][]*event.Event)
	curID := 0
	for _, e := range ps.events {
		if !event.InPatternFamily(e.Tag) {
			continue
		}
		if e.Tag == event.TagPatternNew {
			curID = int(event.DecodeU16(e.Body))
		}
		if _, seen := grouped[curID]; !seen {
			order = append(order, curID)
		}
		grouped[curID] = append(grouped[curID], e)
	}

	out := make([]*Pattern, 0, len(order))
	for _, id := range order {
		out = append(out, newPattern(grouped[id], ps.wide))
	}
	return out
}

// Len reports the number of distinct patterns (by PatternID.New value, not
// by occurrence count -- the marker appears twice per pattern).
func (ps *Patterns) Len() (int, error) {
	seen := make(map[int]bool)
	found := false
	for _, e := range ps.events {
		if e.Tag == event.TagPatternNew {
			found = true
			seen[int(event.DecodeU16(e.Body))] = true
		}
	}
	if !found {
		return 0, ErrNoModels
	}
	return len(seen), nil
}

// Pattern returns the pattern with internal index i (1-based; 0 is invalid,
// spec.md invariant 5), or by name.
func (ps *Patterns) Pattern(i interface{}) (*Pattern, error) {
	if idx, ok := i.(int); ok && idx == 0 {
		return nil, fmt.Errorf("%w: patterns are 1-based, 0 is invalid", ErrInvalidValue)
	}
	for _, p := range ps.All() {
		switch q := i.(type) {
		case int:
			if p.Index() == q {
				return p, nil
			}
		case string:
			if p.Name() == q {
				return p, nil
			}
		}
	}
	return nil, &NotFoundError{Query: i}
}

// PlayCutNotes reports whether truncated notes of patterns placed in the
// playlist should continue playing.
func (ps *Patterns) PlayCutNotes() bool {
	for _, e := range ps.events {
		if e.Tag == event.TagPatternsPlayTruncatedNotes {
			return event.DecodeBool(e.Body)
		}
	}
	return false
}

// Current returns the currently selected pattern, if any.
func (ps *Patterns) Current() (*Pattern, error) {
	for _, e := range ps.events {
		if e.Tag == event.TagPatternsCurrentlySelected {
			return ps.Pattern(int(event.DecodeU16(e.Body)))
		}
	}
	return nil, &NotFoundError{Query: "current"}
}
