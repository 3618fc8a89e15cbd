package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotFoundError reports that an index or name lookup (Mixer[i], Insert[i],
// Patterns[i], ...) matched nothing. Query holds whatever was looked up, for
// a readable error message.
type NotFoundError struct {
	Query interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("model: not found: %v", e.Query)
}

// ErrNoModels is returned when an aggregate's gating event is entirely
// absent from the stream -- e.g. a Mixer with no InsertID.Output events, or
// a Patterns with no PatternID.New events.
var ErrNoModels = errors.New("model: no models found")

// ErrPropertyCannotBeSet is returned by a mixer-params-backed setter whose
// target record does not exist in the blob (spec.md §7).
var ErrPropertyCannotBeSet = errors.New("model: property cannot be set: record not present in params blob")

// ErrInvalidValue is returned by setters that validate their input range,
// e.g. Note.SetKey rejecting a value outside [0, 132).
var ErrInvalidValue = errors.New("model: invalid value")
