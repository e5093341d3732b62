package colour

import "errors"

var (
	// ErrInsufficientData is returned when there are not enough pixels or
	// distinct samples to satisfy an extraction request.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrEmptyPalette is returned when an operation needs more colours than it was given.
	ErrEmptyPalette = errors.New("empty palette")

	// ErrInvalidParameter is returned for out-of-range arguments and malformed colour encodings.
	ErrInvalidParameter = errors.New("invalid parameter")
)
