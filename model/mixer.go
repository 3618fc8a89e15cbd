package model

import (
	"fmt"

	"github.com/flp-go/flp/event"
)

// InsertDock is the position an insert is docked at in the mixer panel
// (spec.md §4.5).
type InsertDock int

const (
	DockLeft InsertDock = iota
	DockMiddle
	DockRight
)

func (d InsertDock) String() string {
	switch d {
	case DockMiddle:
		return "middle"
	case DockRight:
		return "right"
	default:
		return "left"
	}
}

// textValue/setTextValue, colorValue/setColorValue and the scalar
// equivalents below read and write an event's body through a single shared
// path, so every typed accessor on Insert/Slot stays a one-liner. A nil
// event reads as the zero value and ignores writes -- this module mutates
// events that already exist, it does not synthesize new ones into the
// stream.
func textValue(e *event.Event, wide bool) string {
	if e == nil {
		return ""
	}
	s, _ := event.DecodeText(e.Body, wide)
	return s
}

func setTextValue(e *event.Event, wide bool, v string) {
	if e == nil {
		return
	}
	_, hadNUL := event.DecodeText(e.Body, wide)
	e.Body = event.EncodeText(v, wide, hadNUL)
}

func colorValue(e *event.Event) (event.Color, bool) {
	if e == nil {
		return event.Color{}, false
	}
	return event.DecodeColor(e.Body), true
}

func setColorValue(e *event.Event, c event.Color) {
	if e == nil {
		return
	}
	e.Body = event.EncodeColor(c)
}

func i32Value(e *event.Event) (int32, bool) {
	if e == nil {
		return 0, false
	}
	return event.DecodeI32(e.Body), true
}

func setI32Value(e *event.Event, v int32) {
	if e == nil {
		return
	}
	e.Body = event.EncodeI32(v)
}

func i16Value(e *event.Event) (int16, bool) {
	if e == nil {
		return 0, false
	}
	return event.DecodeI16(e.Body), true
}

func boolValue(e *event.Event) bool {
	return e != nil && event.DecodeBool(e.Body)
}

func setBoolValue(e *event.Event, v bool) {
	if e == nil {
		return
	}
	e.Body = event.EncodeBool(v)
}

// Mixer projects the ordered event stream into the insert collection.
// MaxInserts/MaxSlots are resolved by the caller from the project's FL
// Studio version (spec.md §4.5/§6, version gating is a root-package
// concern) and supplied as already-resolved bounds.
type Mixer struct {
	events     []*event.Event
	params     *MixerParams
	wide       bool
	MaxInserts int
	MaxSlots   int
	warn       func(op, message string)
}

// NewMixer builds a Mixer view over events (only the subset relevant to the
// mixer need be passed; irrelevant events are ignored). params may be nil
// if the project has no MixerID.Params event. warn, if non-nil, is called
// with a non-fatal condition discovered while reading the mixer (e.g. a
// routing/send-level length mismatch in Insert.Routes); it is the caller's
// Stream.addWarning, threaded through so degraded views still surface a
// Warning (spec.md §7).
func NewMixer(events []*event.Event, params *MixerParams, wide bool, maxInserts, maxSlots int, warn func(op, message string)) *Mixer {
	return &Mixer{events: events, params: params, wide: wide, MaxInserts: maxInserts, MaxSlots: maxSlots, warn: warn}
}

// APDC reports whether automatic plugin delay compensation is enabled.
func (m *Mixer) APDC() bool {
	for _, e := range m.events {
		if e.Tag == event.TagMixerAPDC {
			return event.DecodeBool(e.Body)
		}
	}
	return false
}

// SetAPDC sets the APDC flag, if the event is present.
func (m *Mixer) SetAPDC(v bool) {
	for _, e := range m.events {
		if e.Tag == event.TagMixerAPDC {
			setBoolValue(e, v)
			return
		}
	}
}

// Inserts returns every insert in the mixer, in declared (emission) order.
// Insert.Index() is the insert's emission-order position starting at 0
// (0 = master, 1..N = the inserts after it), which is also the key into the
// params blob.
func (m *Mixer) Inserts() []*Insert {
	var out []*Insert
	var buf []*event.Event
	emissionIdx := 0
	for _, e := range m.events {
		if event.InInsertFamily(e.Tag) {
			buf = append(buf, e)
		}
		if e.Tag == event.TagInsertOutput {
			out = append(out, newInsert(buf, emissionIdx, emissionIdx, m.MaxSlots, m.params, m.wide, m.warn))
			buf = nil
			emissionIdx++
		}
	}
	return out
}

// Len reports the number of inserts in the mixer, counting InsertID.Output
// markers rather than InsertID.Flags occurrences (spec.md §9 Open
// Question: Output is also the iteration boundary and can never be absent
// for an emitted insert, where Flags could be).
func (m *Mixer) Len() (int, error) {
	n := 0
	for _, e := range m.events {
		if e.Tag == event.TagInsertOutput {
			n++
		}
	}
	if n == 0 {
		return 0, ErrNoModels
	}
	return n, nil
}

// Insert returns the insert matching i, which may be an int (Insert.Index)
// or a string (insert name).
func (m *Mixer) Insert(i interface{}) (*Insert, error) {
	for _, ins := range m.Inserts() {
		switch q := i.(type) {
		case int:
			if ins.Index() == q {
				return ins, nil
			}
		case string:
			if ins.Name() == q {
				return ins, nil
			}
		}
	}
	return nil, &NotFoundError{Query: i}
}

// InsertsInRange returns every insert whose logical index falls in the
// half-open range [lo, hi).
func (m *Mixer) InsertsInRange(lo, hi int) []*Insert {
	var out []*Insert
	for _, ins := range m.Inserts() {
		if ins.Index() >= lo && ins.Index() < hi {
			out = append(out, ins)
		}
	}
	return out
}

// Insert represents a mixer channel strip: master (index 0), a track
// (1..N), a send, or the "current" insert.
type Insert struct {
	events    []*event.Event
	index     int // emission-order position, see Index.
	paramsIdx int // emission-order index, keys into the params blob.
	maxSlots  int
	params    *MixerParams
	wide      bool
	warn      func(op, message string)
}

func newInsert(events []*event.Event, index, paramsIdx, maxSlots int, params *MixerParams, wide bool, warn func(op, message string)) *Insert {
	return &Insert{events: events, index: index, paramsIdx: paramsIdx, maxSlots: maxSlots, params: params, wide: wide, warn: warn}
}

func (ins *Insert) firstEvent(tag event.Tag) *event.Event {
	for _, e := range ins.events {
		if e.Tag == tag {
			return e
		}
	}
	return nil
}

// Index returns the insert's position in emission order: 0 for the first
// insert (master), 1..N for the tracks and sends after it.
func (ins *Insert) Index() int { return ins.index }

func (ins *Insert) Icon() (int16, bool) { return i16Value(ins.firstEvent(event.TagInsertIcon)) }

func (ins *Insert) Output() (int32, bool) { return i32Value(ins.firstEvent(event.TagInsertOutput)) }
func (ins *Insert) SetOutput(v int32)     { setI32Value(ins.firstEvent(event.TagInsertOutput), v) }

// Color defaults to #636C71 (granite gray) in FL Studio; absent here if the
// project predates FL Studio 4.0, which introduced InsertID.Color.
func (ins *Insert) Color() (event.Color, bool) { return colorValue(ins.firstEvent(event.TagInsertColor)) }
func (ins *Insert) SetColor(c event.Color)     { setColorValue(ins.firstEvent(event.TagInsertColor), c) }

func (ins *Insert) Input() (int32, bool) { return i32Value(ins.firstEvent(event.TagInsertInput)) }
func (ins *Insert) SetInput(v int32)     { setI32Value(ins.firstEvent(event.TagInsertInput), v) }

// Name was introduced in FL Studio v3.5.4; absent on older projects.
func (ins *Insert) Name() string    { return textValue(ins.firstEvent(event.TagInsertName), ins.wide) }
func (ins *Insert) SetName(v string) { setTextValue(ins.firstEvent(event.TagInsertName), ins.wide, v) }

func (ins *Insert) flags() flagsView { return flagsView{ev: ins.firstEvent(event.TagInsertFlags)} }

// Bypassed reports whether all of the insert's slots are bypassed; stored
// inverted in the wire flag (EnableEffects).
func (ins *Insert) Bypassed() bool      { return !ins.flags().get(FlagEnableEffects) }
func (ins *Insert) SetBypassed(v bool)  { ins.flags().set(FlagEnableEffects, !v) }
func (ins *Insert) ChannelsSwapped() bool     { return ins.flags().get(FlagSwapLeftRight) }
func (ins *Insert) SetChannelsSwapped(v bool) { ins.flags().set(FlagSwapLeftRight, v) }
func (ins *Insert) Enabled() bool             { return ins.flags().get(FlagEnabled) }
func (ins *Insert) SetEnabled(v bool)         { ins.flags().set(FlagEnabled, v) }
func (ins *Insert) IsSolo() bool              { return ins.flags().get(FlagSolo) }
func (ins *Insert) SetIsSolo(v bool)          { ins.flags().set(FlagSolo, v) }
func (ins *Insert) Locked() bool              { return ins.flags().get(FlagLocked) }
func (ins *Insert) SetLocked(v bool)          { ins.flags().set(FlagLocked, v) }
func (ins *Insert) PolarityReversed() bool    { return ins.flags().get(FlagPolarityReversed) }
func (ins *Insert) SetPolarityReversed(v bool) { ins.flags().set(FlagPolarityReversed, v) }
func (ins *Insert) SeparatorShown() bool      { return ins.flags().get(FlagSeparatorShown) }
func (ins *Insert) SetSeparatorShown(v bool)  { ins.flags().set(FlagSeparatorShown, v) }

// Dock reports the position (left, middle, right) the insert is docked at.
// A project without InsertID.Flags defaults to left, matching the wire's
// all-bits-unset meaning.
func (ins *Insert) Dock() InsertDock {
	fl := ins.flags()
	switch {
	case fl.get(FlagDockMiddle):
		return DockMiddle
	case fl.get(FlagDockRight):
		return DockRight
	default:
		return DockLeft
	}
}

func (ins *Insert) paramOwn(id ParamID) (Record, bool) {
	if ins.params == nil {
		return Record{}, false
	}
	return ins.params.Own(ins.paramsIdx, id)
}

// Volume is linear: 0 = -infdB, 12800 = 0dB (default), 16000 = +5.6dB.
func (ins *Insert) Volume() (int32, bool) { r, ok := ins.paramOwn(ParamVolume); return msgOr0(r, ok) }
func (ins *Insert) SetVolume(v int32) error { return ins.setOwn(ParamVolume, v) }

// Pan is linear, -6400 (100% left) to 6400 (100% right), 0 centred.
func (ins *Insert) Pan() (int32, bool) { r, ok := ins.paramOwn(ParamPan); return msgOr0(r, ok) }
func (ins *Insert) SetPan(v int32) error { return ins.setOwn(ParamPan, v) }

// StereoSeparation is stored and returned raw with no clamping, per
// spec.md §9: its documented range is asymmetric (min 64, max -64) and the
// core performs no validation on it.
func (ins *Insert) StereoSeparation() (int32, bool) {
	r, ok := ins.paramOwn(ParamStereoSeparation)
	return msgOr0(r, ok)
}
func (ins *Insert) SetStereoSeparation(v int32) error { return ins.setOwn(ParamStereoSeparation, v) }

func (ins *Insert) setOwn(id ParamID, v int32) error {
	r, ok := ins.paramOwn(id)
	if !ok {
		return ErrPropertyCannotBeSet
	}
	r.SetMsg(v)
	return nil
}

func msgOr0(r Record, ok bool) (int32, bool) {
	if !ok {
		return 0, false
	}
	return r.Msg(), true
}

// Routes yields the send level to each routed insert, in the order declared
// by InsertID.Routing. The routing bitmap and the params blob's send-level
// records are two parallel sequences; they're zipped positionally and
// stopped at the shorter if their lengths disagree (spec.md §9).
func (ins *Insert) Routes() []int32 {
	if ins.params == nil {
		return nil
	}
	routingEv := ins.firstEvent(event.TagInsertRouting)
	if routingEv == nil {
		return nil
	}
	sends := ins.params.SendLevels(ins.paramsIdx)
	n := event.ListCount(routingEv.Body, 1)
	if len(sends) != n {
		if ins.warn != nil {
			ins.warn("Insert.Routes", fmt.Sprintf(
				"insert %d: routing bitmap has %d entries but the params blob has %d send levels; stopping at the shorter",
				ins.index, n, len(sends)))
		}
		if len(sends) < n {
			n = len(sends)
		}
	}
	var out []int32
	for i := 0; i < n; i++ {
		rec := event.ListRecord(routingEv.Body, 1, i)
		if rec[0] != 0 {
			out = append(out, sends[i].Msg())
		}
	}
	return out
}

// InsertEQBand is one of InsertEQ's three bands: a (gain, freq, Q) triple
// stored as three records in the params blob. A field reads as absent
// (false) if its owning record was never classified, e.g. an unparsed
// params blob.
type InsertEQBand struct {
	gain, freq, q          Record
	hasGain, hasFreq, hasQ bool
}

// Gain ranges -1800..1800, default 0.
func (b InsertEQBand) Gain() (int32, bool) { return msgOr0(b.gain, b.hasGain) }
func (b InsertEQBand) SetGain(v int32) error {
	if !b.hasGain {
		return ErrPropertyCannotBeSet
	}
	b.gain.SetMsg(v)
	return nil
}

// Freq ranges 0..65536.
func (b InsertEQBand) Freq() (int32, bool) { return msgOr0(b.freq, b.hasFreq) }
func (b InsertEQBand) SetFreq(v int32) error {
	if !b.hasFreq {
		return ErrPropertyCannotBeSet
	}
	b.freq.SetMsg(v)
	return nil
}

// Reso (Q) ranges 0..65536, default 17500.
func (b InsertEQBand) Reso() (int32, bool) { return msgOr0(b.q, b.hasQ) }
func (b InsertEQBand) SetReso(v int32) error {
	if !b.hasQ {
		return ErrPropertyCannotBeSet
	}
	b.q.SetMsg(v)
	return nil
}

// InsertEQ is an insert's post-effect 3-band EQ.
type InsertEQ struct {
	Low, Mid, High InsertEQBand
}

// EQ returns the insert's 3-band EQ view over the params blob.
func (ins *Insert) EQ() InsertEQ {
	band := func(freqID, gainID, qID ParamID) InsertEQBand {
		var b InsertEQBand
		b.gain, b.hasGain = ins.paramOwn(gainID)
		b.freq, b.hasFreq = ins.paramOwn(freqID)
		b.q, b.hasQ = ins.paramOwn(qID)
		return b
	}
	return InsertEQ{
		Low:  band(ParamLowFreq, ParamLowGain, ParamLowQ),
		Mid:  band(ParamMidFreq, ParamMidGain, ParamMidQ),
		High: band(ParamHighFreq, ParamHighGain, ParamHighQ),
	}
}

// Slots returns exactly MaxSlots+1 slots, padding with empty slots where no
// events exist for that position (spec.md invariant 6).
func (ins *Insert) Slots() []*Slot {
	occurrences := make(map[event.Tag][]*event.Event)
	for _, e := range ins.events {
		if event.InSlotFamily(e.Tag) {
			occurrences[e.Tag] = append(occurrences[e.Tag], e)
		}
	}

	out := make([]*Slot, 0, ins.maxSlots+1)
	for i := 0; i <= ins.maxSlots; i++ {
		var slotEvents []*event.Event
		for tag, evs := range occurrences {
			if i < len(evs) {
				slotEvents = append(slotEvents, evs[i])
			}
		}
		out = append(out, newSlot(slotEvents, i, ins.paramsIdx, ins.params, ins.wide))
	}
	return out
}

// Slot returns the slot matching i, which may be an int (0..MaxSlots) or a
// string (plugin name).
func (ins *Insert) Slot(i interface{}) (*Slot, error) {
	for idx, s := range ins.Slots() {
		switch q := i.(type) {
		case int:
			if idx == q {
				return s, nil
			}
		case string:
			if s.Name() == q {
				return s, nil
			}
		}
	}
	return nil, &NotFoundError{Query: i}
}

// Slot is an effect slot within an insert: the plugin's identifying events
// plus its enable/mix parameter pair.
type Slot struct {
	events          []*event.Event
	index           int
	insertParamsIdx int
	params          *MixerParams
	wide            bool
}

func newSlot(events []*event.Event, index, insertParamsIdx int, params *MixerParams, wide bool) *Slot {
	return &Slot{events: events, index: index, insertParamsIdx: insertParamsIdx, params: params, wide: wide}
}

func (s *Slot) firstEvent(tag event.Tag) *event.Event {
	for _, e := range s.events {
		if e.Tag == tag {
			return e
		}
	}
	return nil
}

// Index returns SlotID.Index's value if present, else the slot's position
// within its insert's dense iteration.
func (s *Slot) Index() int {
	if e := s.firstEvent(event.TagSlotIndex); e != nil {
		return int(event.DecodeU16(e.Body))
	}
	return s.index
}

func (s *Slot) Name() string     { return textValue(s.firstEvent(event.TagPluginName), s.wide) }
func (s *Slot) SetName(v string) { setTextValue(s.firstEvent(event.TagPluginName), s.wide, v) }

// InternalName is "Fruity Wrapper" for VST/AU plugins, or the factory name
// for native plugins.
func (s *Slot) InternalName() string {
	return textValue(s.firstEvent(event.TagPluginInternalName), s.wide)
}
func (s *Slot) SetInternalName(v string) {
	setTextValue(s.firstEvent(event.TagPluginInternalName), s.wide, v)
}

func (s *Slot) Icon() (int16, bool)            { return i16Value(s.firstEvent(event.TagPluginIcon)) }
func (s *Slot) Color() (event.Color, bool)     { return colorValue(s.firstEvent(event.TagPluginColor)) }
func (s *Slot) SetColor(c event.Color)         { setColorValue(s.firstEvent(event.TagPluginColor), c) }

// HasPlugin reports whether the slot has plugin data loaded. Decoding the
// plugin's own parameters is out of scope (spec.md §1); the blob is only
// ever preserved, never parsed.
func (s *Slot) HasPlugin() bool { return s.firstEvent(event.TagPluginData) != nil }

func (s *Slot) paramSlot(id ParamID) (Record, bool) {
	if s.params == nil {
		return Record{}, false
	}
	return s.params.Slot(s.insertParamsIdx, s.index, id)
}

func (s *Slot) Enabled() (bool, bool) {
	r, ok := s.paramSlot(ParamSlotEnabled)
	if !ok {
		return false, false
	}
	return r.Msg() != 0, true
}

func (s *Slot) SetEnabled(v bool) error {
	r, ok := s.paramSlot(ParamSlotEnabled)
	if !ok {
		return ErrPropertyCannotBeSet
	}
	if v {
		r.SetMsg(1)
	} else {
		r.SetMsg(0)
	}
	return nil
}

// Mix is the slot's dry/wet mix: -6400 (100% left/dry) to 6400 (100%
// right/wet), 0 centred (default).
func (s *Slot) Mix() (int32, bool) { r, ok := s.paramSlot(ParamSlotMix); return msgOr0(r, ok) }
func (s *Slot) SetMix(v int32) error {
	r, ok := s.paramSlot(ParamSlotMix)
	if !ok {
		return ErrPropertyCannotBeSet
	}
	r.SetMsg(v)
	return nil
}
