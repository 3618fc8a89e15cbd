package model

import "github.com/flp-go/flp/event"

// InsertFlag is a single bit of the InsertID.Flags bitfield (spec.md §9
// "Descriptors", grounded on _InsertFlags in the original source).
type InsertFlag uint32

const (
	FlagPolarityReversed          InsertFlag = 1 << 0
	FlagSwapLeftRight             InsertFlag = 1 << 1
	FlagEnableEffects             InsertFlag = 1 << 2
	FlagEnabled                   InsertFlag = 1 << 3
	FlagDisableThreadedProcessing InsertFlag = 1 << 4
	FlagDockMiddle                InsertFlag = 1 << 6
	FlagDockRight                 InsertFlag = 1 << 7
	FlagSeparatorShown            InsertFlag = 1 << 10
	FlagLocked                    InsertFlag = 1 << 11
	FlagSolo                      InsertFlag = 1 << 12
	FlagAudioTrack                InsertFlag = 1 << 15
)

// flagsView reads and flips a single bit of an InsertID.Flags event's
// bitfield, writing the re-encoded struct straight back into the owning
// event's body. A nil event (the insert never emitted InsertID.Flags) reads
// as every flag unset and silently ignores writes.
type flagsView struct {
	ev *event.Event
}

func (f flagsView) get(bit InsertFlag) bool {
	if f.ev == nil {
		return false
	}
	decoded := event.DecodeInsertFlags(f.ev.Body)
	return decoded.HasFlags && decoded.Flags&uint32(bit) != 0
}

func (f flagsView) set(bit InsertFlag, v bool) {
	if f.ev == nil {
		return
	}
	decoded := event.DecodeInsertFlags(f.ev.Body)
	if !decoded.HasFlags {
		decoded.HasReserved1 = true
		decoded.HasFlags = true
	}
	if v {
		decoded.Flags |= uint32(bit)
	} else {
		decoded.Flags &^= uint32(bit)
	}
	f.ev.Body = event.EncodeInsertFlags(decoded)
}
