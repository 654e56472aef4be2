package model

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a rectangular row-major matrix of 0/1 cells, the on-disk
// format for saved grids.
type Pattern [][]int

// Rows returns the pattern height
func (p Pattern) Rows() int {
	return len(p)
}

// Cols returns the pattern width
func (p Pattern) Cols() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Validate checks that the pattern is non-empty, rectangular and binary
func (p Pattern) Validate() error {
	if len(p) == 0 || len(p[0]) == 0 {
		return ErrEmptyPattern
	}
	cols := len(p[0])
	for i, row := range p {
		if len(row) != cols {
			return errors.Wrapf(ErrRaggedPattern, "row %d has %d columns, want %d", i, len(row), cols)
		}
		for j, v := range row {
			if v != 0 && v != 1 {
				return errors.Wrapf(ErrInvalidCellValue, "cell (%d,%d) is %d", i, j, v)
			}
		}
	}
	return nil
}

// ParsePattern decodes a JSON array of arrays of 0/1 and validates its shape
func ParsePattern(data []byte) (Pattern, error) {
	var p Pattern
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "[ParsePattern] failed to unmarshal pattern")
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "[ParsePattern] invalid pattern")
	}
	return p, nil
}

// MarshalPattern encodes a pattern in the saved-grid JSON format
func MarshalPattern(p Pattern) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "[MarshalPattern] invalid pattern")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "[MarshalPattern] failed to marshal pattern")
	}
	return data, nil
}

// LoadPatternFile reads and parses a saved pattern
func LoadPatternFile(filename string) (Pattern, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPatternFile] failed to read file: %+v", filename)
	}
	p, err := ParsePattern(data)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPatternFile] %+v", filename)
	}
	return p, nil
}

// SavePatternFile writes p to filename, replacing any existing file
func SavePatternFile(filename string, p Pattern) error {
	data, err := MarshalPattern(p)
	if err != nil {
		return errors.Wrapf(err, "[SavePatternFile] %+v", filename)
	}
	if err = os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrapf(err, "[SavePatternFile] failed to write file: %+v", filename)
	}
	return nil
}

var builtinPatterns = map[string]Pattern{
	"glider": {
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	},
	"blinker": {
		{1, 1, 1},
	},
	"block": {
		{1, 1},
		{1, 1},
	},
	"beacon": {
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	},
	"toad": {
		{0, 1, 1, 1},
		{1, 1, 1, 0},
	},
	"lwss": {
		{0, 1, 0, 0, 1},
		{1, 0, 0, 0, 0},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 0},
	},
	"r-pentomino": {
		{0, 1, 1},
		{1, 1, 0},
		{0, 1, 0},
	},
}

// BuiltinPattern returns a copy of a named pattern from the built-in library
func BuiltinPattern(name string) (Pattern, error) {
	p, ok := builtinPatterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[BuiltinPattern] %q", name)
	}
	out := make(Pattern, len(p))
	for i, row := range p {
		out[i] = append([]int(nil), row...)
	}
	return out, nil
}

// BuiltinPatternNames lists the built-in library in sorted order
func BuiltinPatternNames() []string {
	names := make([]string, 0, len(builtinPatterns))
	for name := range builtinPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
