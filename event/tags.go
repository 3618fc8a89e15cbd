package event

// Base offsets for the tag ranges, named the way PyFLP's own event enums
// name them (WORD/DWORD/TEXT/DATA). TEXT and DATA share a base because both
// occupy the varlen-length range [192,256) -- only the registry's per-tag
// schema tells them apart, not a further subrange.
const (
	WORD  Tag = 64
	DWORD Tag = 128
	TEXT  Tag = 192
	DATA  Tag = 192
)

// Recognized tags, grouped by the family of entity they belong to. Any tag
// not listed here is preserved verbatim by the framer and falls back to the
// wire-implied schema (see SchemaOf).
const (
	// MixerID
	TagMixerAPDC   Tag = 29       // bool: automatic plugin delay compensation.
	TagMixerParams Tag = DATA + 17 // packed 12-byte parameter records, see model.MixerParams.

	// InsertID
	TagInsertIcon    Tag = WORD + 31
	TagInsertOutput  Tag = DWORD + 19
	TagInsertColor   Tag = DWORD + 21 // 4.0+
	TagInsertInput   Tag = DWORD + 26
	TagInsertName    Tag = TEXT + 12 // 3.5.4+
	TagInsertRouting Tag = DATA + 27 // list of is-routed flags, one per insert.
	TagInsertFlags   Tag = DATA + 28 // InsertFlagsEvent struct.

	// SlotID
	TagSlotIndex Tag = WORD + 34

	// PluginID (recognized only far enough to preserve/identify a slot's
	// plugin; parameter-level plugin decoding is out of scope).
	TagPluginIcon         Tag = WORD + 27
	TagPluginColor        Tag = DWORD + 20
	TagPluginName         Tag = TEXT + 8
	TagPluginInternalName Tag = TEXT + 11
	TagPluginData         Tag = DATA + 19 // opaque plugin blob, preserved verbatim.

	// PatternsID
	TagPatternsPlayTruncatedNotes Tag = 30
	TagPatternsCurrentlySelected  Tag = WORD + 3

	// PatternID
	TagPatternLooped      Tag = 26
	TagPatternNew         Tag = WORD + 1  // marks the start of a pattern, emitted twice.
	TagPatternColor       Tag = DWORD + 22
	TagPatternName        Tag = TEXT + 1
	TagPatternChannelIID  Tag = DWORD + 32
	TagPatternLength      Tag = DWORD + 36
	TagPatternControllers Tag = DATA + 15 // list of 12-byte controller records.
	TagPatternNotes       Tag = DATA + 16 // list of 24-byte note records.
)

// insertFamily and slotFamily group the tags model.Mixer/model.Insert use to
// decide which buffered events belong to an insert or a slot while walking
// the stream in order (see spec.md §4.5).
var insertFamily = map[Tag]bool{
	TagInsertIcon: true, TagInsertOutput: true, TagInsertColor: true,
	TagInsertInput: true, TagInsertName: true, TagInsertRouting: true,
	TagInsertFlags: true, TagSlotIndex: true, TagPluginIcon: true,
	TagPluginColor: true, TagPluginName: true, TagPluginInternalName: true,
	TagPluginData: true,
}

var slotFamily = map[Tag]bool{
	TagSlotIndex: true, TagPluginIcon: true, TagPluginColor: true,
	TagPluginName: true, TagPluginInternalName: true, TagPluginData: true,
}

var patternFamily = map[Tag]bool{
	TagPatternLooped: true, TagPatternNew: true, TagPatternColor: true,
	TagPatternName: true, TagPatternChannelIID: true, TagPatternLength: true,
	TagPatternControllers: true, TagPatternNotes: true,
}

// InInsertFamily reports whether tag is one of the events a Mixer buffers
// while grouping an insert's events together.
func InInsertFamily(tag Tag) bool { return insertFamily[tag] }

// InSlotFamily reports whether tag is one of the events that occur once per
// effect slot within an insert.
func InSlotFamily(tag Tag) bool { return slotFamily[tag] }

// InPatternFamily reports whether tag is one of the events a Patterns
// collection groups under the current pattern while walking the stream.
func InPatternFamily(tag Tag) bool { return patternFamily[tag] }
