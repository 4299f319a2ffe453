package imaging

import "errors"

var (
	// ErrNoSource is returned when neither an image path nor inline data is given.
	ErrNoSource = errors.New("either an image path or inline image data must be provided")

	// ErrMultipleSources is returned when both an image path and inline data are given.
	ErrMultipleSources = errors.New("only one of an image path or inline image data may be provided")

	// ErrNotFound is returned when an image path does not resolve to a readable file.
	ErrNotFound = errors.New("image file not found")

	// ErrInvalidImage is returned when a payload is malformed or cannot be parsed as an image.
	ErrInvalidImage = errors.New("invalid image data")
)
