package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned for coordinates outside the grid
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrInvalidDimensions is returned for a non-positive width or height, or ragged rows
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrInvalidCell is returned when parsing an unknown cell symbol
	ErrInvalidCell = errors.New("invalid cell symbol")
)
