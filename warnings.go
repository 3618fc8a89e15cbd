package flp

import "log"

// Warning is a non-fatal condition raised while parsing: a structured event
// whose body didn't match its schema, a routing/send-level length mismatch,
// and the like. Warnings never alter the parsed bytes (spec.md §7); they
// only inform the caller that a corresponding model view is degraded or
// unavailable.
type Warning struct {
	Op      string // the operation that raised it, e.g. "ParseMixerParams".
	Message string
}

func (w Warning) String() string { return w.Op + ": " + w.Message }

// Logger, if non-nil, receives every Warning as it's recorded, in addition
// to it being appended to Stream.Warnings. nil by default -- most callers
// are expected to inspect Stream.Warnings instead of wiring a logger.
var Logger *log.Logger

func (s *Stream) addWarning(op, message string) {
	w := Warning{Op: op, Message: message}
	s.Warnings = append(s.Warnings, w)
	if Logger != nil {
		Logger.Printf("%s", w.String())
	}
}
