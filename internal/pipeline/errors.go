package pipeline

import (
	"errors"

	"github.com/ironsheep/detect-objects/internal/imaging"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	// Unexpected is any failure not covered by another kind.
	Unexpected Kind = iota

	// InvalidInput covers bad sources, payloads, images and parameters.
	InvalidInput

	// NotFound means the image path did not resolve to a readable file.
	NotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case NotFound:
		return "NotFound"
	default:
		return "Unexpected"
	}
}

var (
	// ErrMissingSessionID is returned when a request has no session id.
	ErrMissingSessionID = errors.New("session id is required")

	// ErrInvalidThreshold is returned when the confidence threshold is not in [0, 1].
	ErrInvalidThreshold = errors.New("confidence threshold must be between 0 and 1")
)

// Error is a classified pipeline failure. Its message is the underlying
// error's message.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify wraps err in an *Error whose Kind reflects the sentinel it wraps.
// An err that is already an *Error is returned as is.
func classify(err error) *Error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}

	switch {
	case errors.Is(err, imaging.ErrNotFound):
		return &Error{Kind: NotFound, Err: err}
	case errors.Is(err, imaging.ErrNoSource),
		errors.Is(err, imaging.ErrMultipleSources),
		errors.Is(err, imaging.ErrInvalidImage),
		errors.Is(err, ErrMissingSessionID),
		errors.Is(err, ErrInvalidThreshold):
		return &Error{Kind: InvalidInput, Err: err}
	default:
		return &Error{Kind: Unexpected, Err: err}
	}
}

// KindOf reports the Kind of err. Errors that are not pipeline errors are
// Unexpected.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return Unexpected
}
