package flp

import (
	"github.com/flp-go/flp/event"
	"github.com/flp-go/flp/model"
	"github.com/pkg/errors"
)

// ErrTruncatedStream, ModelNotFound, ErrNoModelsFound, ErrPropertyCannotBeSet
// and ErrInvalidValue are the package's public error vocabulary (spec.md
// §7). The lookup/property errors are raised from the model package, where
// the corresponding operations live; they're re-exported here as the single
// set of names callers of this package need to know about.
var (
	ErrTruncatedStream     = event.ErrTruncatedStream
	ErrNoModelsFound       = model.ErrNoModels
	ErrPropertyCannotBeSet = model.ErrPropertyCannotBeSet
	ErrInvalidValue        = model.ErrInvalidValue
)

// ModelNotFound is the error type returned by index/name lookups that found
// nothing (Mixer.Insert, Insert.Slot, Patterns.Pattern, ...).
type ModelNotFound = model.NotFoundError

// wrapParse wraps a parse-time error with the operation it occurred in,
// matching the teacher's own errutil-via-pkg/errors wrapping style.
func wrapParse(err error, op string) error {
	return errors.Wrap(err, "flp: "+op)
}
