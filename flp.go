// Package flp implements the core of an FL Studio project (.flp) reader and
// writer: the tagged event stream codec and the model projection built on
// top of it (mixer inserts, effect slots, EQ, patterns, notes and
// controller automation). The outer RIFF-like chunk wrapper that carries
// this event run inside a project file is an external collaborator's job;
// this package receives and emits the inner byte run only (spec.md §1).
package flp

import (
	"os"

	"github.com/flp-go/flp/event"
	"github.com/flp-go/flp/model"
	"github.com/pkg/errors"
)

// Config configures how a Stream's bytes are interpreted: which FL Studio
// version produced them (gating string encoding and the mixer's
// max-inserts/max-slots tables) and an optional string-encoding override.
type Config struct {
	Version FLVersion

	// StringEncodingWide forces the string encoding when non-nil: true for
	// UTF-16LE, false for single-byte ANSI. nil derives it from Version.
	StringEncodingWide *bool
}

func (c Config) wide() bool {
	if c.StringEncodingWide != nil {
		return *c.StringEncodingWide
	}
	return c.Version.Compare(unicodeThreshold) >= 0
}

// Stream is a parsed project's event run: the ordered events plus every
// warning recorded while parsing them. It is the single ownership unit
// every model view (Mixer, Patterns, ...) borrows from; views may not
// outlive the Stream they were built from (spec.md §5).
type Stream struct {
	Config   Config
	Events   []*event.Event
	Warnings []Warning
}

// Parse reads the inner event-run bytes of a project -- the already
// RIFF-unwrapped body handed over by an external collaborator, per spec.md
// §1 -- into a Stream.
func Parse(data []byte, cfg Config) (*Stream, error) {
	events, err := event.ParseStream(data)
	if err != nil {
		return nil, wrapParse(err, "Parse")
	}
	return &Stream{Config: cfg, Events: events}, nil
}

// Open reads a file containing an already-extracted event run from disk and
// parses it. It is a convenience wrapper around Parse for CLI-style
// callers; it does not unwrap a RIFF-like container.
func Open(path string, cfg Config) (*Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "flp.Open")
	}
	return Parse(data, cfg)
}

// Serialize re-emits s's events as bytes. The output is byte-identical to
// the input Parse read them from, except where a model accessor mutated a
// field (spec.md §8 testable property 1).
func (s *Stream) Serialize() []byte {
	return event.SerializeStream(s.Events)
}

// mixerParams locates and parses the MixerID.Params event, if present. A
// malformed blob records a warning rather than failing the whole parse
// (spec.md §4.4/§7); the returned MixerParams simply exposes no records in
// that state.
func (s *Stream) mixerParams() *model.MixerParams {
	for _, e := range s.Events {
		if e.Tag == event.TagMixerParams {
			mp, err := model.ParseMixerParams(e.Body)
			if err != nil {
				s.addWarning("ParseMixerParams", err.Error())
			}
			return mp
		}
	}
	return nil
}

// Mixer projects the stream's events into a Mixer view.
func (s *Stream) Mixer() *model.Mixer {
	return model.NewMixer(s.Events, s.mixerParams(), s.Config.wide(),
		maxInserts(s.Config.Version), maxSlots(s.Config.Version), s.addWarning)
}

// Patterns projects the stream's events into a Patterns view.
func (s *Stream) Patterns() *model.Patterns {
	return model.NewPatterns(s.Events, s.Config.wide())
}
