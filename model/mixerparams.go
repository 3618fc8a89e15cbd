// Package model projects the flat, ordered event stream produced by the
// event package into the higher-level entities a project is made of: the
// mixer and its inserts/slots/EQ, and the pattern collection with its notes
// and controller automation. Every model here is a borrowing view over the
// events it was built from -- none of it copies event bodies, so writes
// through a model's accessors mutate the owning event in place.
package model

import (
	"fmt"

	"github.com/flp-go/flp/event"
)

// ParamID identifies the kind of value a single mixer-params record holds.
// See spec.md §3's "Mixer params blob" partitioning.
type ParamID uint8

const (
	ParamSlotEnabled ParamID = 0
	ParamSlotMix     ParamID = 1

	ParamRouteVolStart ParamID = 64
	ParamRouteVolEnd   ParamID = 191

	ParamVolume           ParamID = 192
	ParamPan              ParamID = 193
	ParamStereoSeparation ParamID = 194

	ParamLowGain  ParamID = 208
	ParamMidGain  ParamID = 209
	ParamHighGain ParamID = 210
	ParamLowFreq  ParamID = 216
	ParamMidFreq  ParamID = 217
	ParamHighFreq ParamID = 218
	ParamLowQ     ParamID = 224
	ParamMidQ     ParamID = 225
	ParamHighQ    ParamID = 226
)

const mixerParamsRecordSize = 12

// Record is a single 12-byte mixer-params record, held as a sub-slice of the
// owning event's body. Mutating it through SetMsg writes straight through to
// the backing bytes -- there is no separate serialize step for this part of
// the model, the bytes are always already correct.
type Record struct {
	raw []byte
}

// ParamID returns the record's parameter id (offset 4).
func (r Record) ParamID() ParamID { return ParamID(r.raw[4]) }

// channelData returns the raw 2-byte channel_data field (offset 6).
func (r Record) channelData() uint16 { return event.DecodeU16(r.raw[6:8]) }

// InsertIndex returns the insert this record belongs to: the upper 7 bits
// of channel_data.
func (r Record) InsertIndex() int { return int((r.channelData() >> 6) & 0x7F) }

// SlotIndex returns the slot this record belongs to (only meaningful for
// ParamSlotEnabled/ParamSlotMix records): the lower 6 bits of channel_data.
func (r Record) SlotIndex() int { return int(r.channelData() & 0x3F) }

// Msg returns the record's signed 32-bit value (offset 8).
func (r Record) Msg() int32 { return event.DecodeI32(r.raw[8:12]) }

// SetMsg overwrites the record's value in place. This is the only mutation
// the mixer-params blob supports -- records are never inserted or removed.
func (r Record) SetMsg(v int32) { copy(r.raw[8:12], event.EncodeI32(v)) }

// insertParams groups one insert's records: own holds every non-slot
// record keyed by param id, ownOrder holds the same records in their
// original on-wire order (needed to zip send levels against the routing
// bitmap positionally), and slots holds the per-slot enable/mix pair.
type insertParams struct {
	own      map[ParamID]Record
	ownOrder []Record
	slots    map[int]map[ParamID]Record
}

func newInsertParams() *insertParams {
	return &insertParams{
		own:   make(map[ParamID]Record),
		slots: make(map[int]map[ParamID]Record),
	}
}

// MixerParams is the parsed form of the MixerID.Params DATA event: a packed
// table of fixed-size records, partitioned by insert and, where applicable,
// by slot. Unparsed is set when the body's length isn't a multiple of the
// record size -- in that state no records are classified and the model
// layer must not expose per-insert parameter views for this event.
type MixerParams struct {
	body     []byte
	Unparsed bool
	inserts  map[int]*insertParams
}

// ParseMixerParams classifies body's fixed-size records by insert and slot.
// The returned warning is non-nil only when the body failed the
// divisibility check (spec.md §4.4/§7); it never alters body's bytes.
func ParseMixerParams(body []byte) (*MixerParams, error) {
	mp := &MixerParams{body: body, inserts: make(map[int]*insertParams)}
	if len(body)%mixerParamsRecordSize != 0 {
		mp.Unparsed = true
		return mp, fmt.Errorf("model: mixer params body length %d is not a multiple of %d bytes", len(body), mixerParamsRecordSize)
	}

	n := len(body) / mixerParamsRecordSize
	for i := 0; i < n; i++ {
		rec := Record{raw: body[i*mixerParamsRecordSize : (i+1)*mixerParamsRecordSize]}
		ip, ok := mp.inserts[rec.InsertIndex()]
		if !ok {
			ip = newInsertParams()
			mp.inserts[rec.InsertIndex()] = ip
		}

		id := rec.ParamID()
		if id == ParamSlotEnabled || id == ParamSlotMix {
			slot := rec.SlotIndex()
			if ip.slots[slot] == nil {
				ip.slots[slot] = make(map[ParamID]Record)
			}
			ip.slots[slot][id] = rec
		} else {
			ip.own[id] = rec
			ip.ownOrder = append(ip.ownOrder, rec)
		}
	}
	return mp, nil
}

// Body returns the blob's backing bytes. Since every mutation made through
// Record.SetMsg writes directly into this slice, Body always reflects the
// current state -- there is no separate re-serialize step.
func (mp *MixerParams) Body() []byte { return mp.body }

// Own looks up insertIdx's record for param id, if present.
func (mp *MixerParams) Own(insertIdx int, id ParamID) (Record, bool) {
	ip, ok := mp.inserts[insertIdx]
	if !ok {
		return Record{}, false
	}
	r, ok := ip.own[id]
	return r, ok
}

// Slot looks up insertIdx's slotIdx record for param id (ParamSlotEnabled or
// ParamSlotMix), if present.
func (mp *MixerParams) Slot(insertIdx, slotIdx int, id ParamID) (Record, bool) {
	ip, ok := mp.inserts[insertIdx]
	if !ok {
		return Record{}, false
	}
	s, ok := ip.slots[slotIdx]
	if !ok {
		return Record{}, false
	}
	r, ok := s[id]
	return r, ok
}

// SendLevels returns insertIdx's send-level records (param ids in
// [ParamRouteVolStart, ParamRouteVolEnd]) in their original on-wire order,
// for zipping against the insert's routing bitmap (spec.md §4.5).
func (mp *MixerParams) SendLevels(insertIdx int) []Record {
	ip, ok := mp.inserts[insertIdx]
	if !ok {
		return nil
	}
	var out []Record
	for _, r := range ip.ownOrder {
		if r.ParamID() >= ParamRouteVolStart && r.ParamID() <= ParamRouteVolEnd {
			out = append(out, r)
		}
	}
	return out
}

// HasInsert reports whether any record was classified under insertIdx.
func (mp *MixerParams) HasInsert(insertIdx int) bool {
	_, ok := mp.inserts[insertIdx]
	return ok
}
