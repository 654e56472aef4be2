package model

import "github.com/pkg/errors"

var (
	// ErrDimensionMismatch is returned by LoadState when the supplied matrix
	// shape differs from the engine's grid.
	ErrDimensionMismatch = errors.New("grid size mismatch")
	// ErrInvalidDimensions rejects non-positive row or column counts.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrUnknownBoundaryMode is returned when a mode name cannot be parsed.
	ErrUnknownBoundaryMode = errors.New("unknown boundary mode")

	ErrEmptyPattern     = errors.New("pattern is empty")
	ErrRaggedPattern    = errors.New("pattern rows have unequal length")
	ErrInvalidCellValue = errors.New("pattern cell must be 0 or 1")
	ErrUnknownPattern   = errors.New("unknown pattern")
)
