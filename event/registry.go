package event

// SchemaKind is the semantic shape of an event's body, independent of the
// wire length encoding Kind() reports. It governs how a body's bytes are
// interpreted, not how many of them there are.
type SchemaKind uint8

const (
	SchemaUnknown SchemaKind = iota
	SchemaScalar             // bool / u8 / i8 / u16 / i16 / u32 / i32.
	SchemaColor              // 4 bytes: R, G, B, A.
	SchemaText               // variable-length, ANSI or UTF-16LE.
	SchemaStruct             // fixed named-field layout, single record.
	SchemaList               // N concatenated fixed-size records.
	SchemaData               // opaque, preserved verbatim.
)

// registry maps a recognized tag to its semantic schema. Tags absent from
// this table are unrecognized: the caller falls back to the wire kind
// implied by the tag's range (see SchemaOf), and their bodies are always
// preserved verbatim since no typed accessor exists for them.
var registry = map[Tag]SchemaKind{
	TagMixerAPDC:   SchemaScalar,
	TagMixerParams: SchemaData, // unpacked separately, see model.MixerParams.

	TagInsertIcon:    SchemaScalar,
	TagInsertOutput:  SchemaScalar,
	TagInsertColor:   SchemaColor,
	TagInsertInput:   SchemaScalar,
	TagInsertName:    SchemaText,
	TagInsertRouting: SchemaList,
	TagInsertFlags:   SchemaStruct,

	TagSlotIndex: SchemaScalar,

	TagPluginIcon:         SchemaScalar,
	TagPluginColor:        SchemaColor,
	TagPluginName:         SchemaText,
	TagPluginInternalName: SchemaText,
	TagPluginData:         SchemaData,

	TagPatternsPlayTruncatedNotes: SchemaScalar,
	TagPatternsCurrentlySelected:  SchemaScalar,

	TagPatternLooped:      SchemaScalar,
	TagPatternNew:         SchemaScalar,
	TagPatternColor:       SchemaColor,
	TagPatternName:        SchemaText,
	TagPatternChannelIID:  SchemaScalar,
	TagPatternLength:      SchemaScalar,
	TagPatternControllers: SchemaList,
	TagPatternNotes:       SchemaList,
}

// SchemaOf returns the semantic schema of tag: its registered schema if
// recognized, otherwise the schema implied by its wire kind (Scalar for
// Scalar8/16/32, Data for the varlen range). An unrecognized tag's body is
// never more than Scalar or Data -- there is no way to know a named struct
// or list layout for a tag nobody registered.
func SchemaOf(tag Tag) SchemaKind {
	if s, ok := registry[tag]; ok {
		return s
	}
	if KindOf(tag) == KindData {
		return SchemaData
	}
	return SchemaScalar
}

// Recognized reports whether tag has a registered schema.
func Recognized(tag Tag) bool {
	_, ok := registry[tag]
	return ok
}
