package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BoundaryMode selects how neighbor coordinates outside the grid are resolved.
type BoundaryMode int

const (
	// Finite treats everything beyond the edge as permanently dead.
	Finite BoundaryMode = iota
	// Reflective clamps each axis independently onto the edge row/column.
	Reflective
	// Toroidal wraps both axes so opposite edges touch.
	Toroidal
	// Infinite models a dead field beyond the visible window. With no storage
	// outside the grid it counts exactly like Finite.
	Infinite
)

var boundaryNames = [...]string{
	Finite:     "Finite",
	Reflective: "Reflective",
	Toroidal:   "Toroidal",
	Infinite:   "Infinite",
}

// BoundaryModes lists every mode in display order.
func BoundaryModes() []BoundaryMode {
	return []BoundaryMode{Finite, Reflective, Toroidal, Infinite}
}

func (m BoundaryMode) String() string {
	if m < 0 || int(m) >= len(boundaryNames) {
		return "BoundaryMode(" + strconv.Itoa(int(m)) + ")"
	}
	return boundaryNames[m]
}

// ParseBoundaryMode maps a case-insensitive mode name to its BoundaryMode.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	for i, name := range boundaryNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return BoundaryMode(i), nil
		}
	}
	return Finite, errors.Wrapf(ErrUnknownBoundaryMode, "[ParseBoundaryMode] %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m BoundaryMode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(boundaryNames) {
		return nil, errors.Wrapf(ErrUnknownBoundaryMode, "[MarshalText] %d", int(m))
	}
	return []byte(boundaryNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BoundaryMode) UnmarshalText(text []byte) error {
	mode, err := ParseBoundaryMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// resolve maps a possibly out-of-range neighbor coordinate onto the grid.
// ok is false when the neighbor lies in the dead field beyond the edge.
//
// Reflective clamps rows and columns independently, so a corner cell sees
// its edge neighbors more than once and can even count itself. That aliasing
// is intentional and must not be replaced with a true mirror.
func (m BoundaryMode) resolve(r, c, rows, cols int) (int, int, bool) {
	switch m {
	case Reflective:
		return min(max(r, 0), rows-1), min(max(c, 0), cols-1), true
	case Toroidal:
		return (r%rows + rows) % rows, (c%cols + cols) % cols, true
	default:
		// Finite and Infinite
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return 0, 0, false
		}
		return r, c, true
	}
}
