package model

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
)

func TestParseBoundaryMode(t *testing.T) {
	tests := []struct {
		in   string
		want BoundaryMode
	}{
		{"Finite", Finite},
		{"reflective", Reflective},
		{"TOROIDAL", Toroidal},
		{" Infinite ", Infinite},
	}
	for _, tt := range tests {
		got, err := ParseBoundaryMode(tt.in)
		if err != nil {
			t.Fatalf("ParseBoundaryMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseBoundaryMode(%q)=%v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseBoundaryMode("mobius"); !errors.Is(err, ErrUnknownBoundaryMode) {
		t.Fatalf("unknown mode err=%v, want ErrUnknownBoundaryMode", err)
	}
}

func TestBoundaryModeString(t *testing.T) {
	for _, mode := range BoundaryModes() {
		parsed, err := ParseBoundaryMode(mode.String())
		if err != nil || parsed != mode {
			t.Fatalf("%v does not parse back from its name", mode)
		}
	}
	if got := BoundaryMode(9).String(); got != "BoundaryMode(9)" {
		t.Fatalf("out-of-range String()=%q", got)
	}
}

func TestBoundaryModeJSON(t *testing.T) {
	type holder struct {
		Boundary BoundaryMode `json:"boundary"`
	}

	data, err := json.Marshal(holder{Boundary: Toroidal})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"boundary":"Toroidal"}` {
		t.Fatalf("marshalled %s", data)
	}

	var h holder
	if err = json.Unmarshal([]byte(`{"boundary":"reflective"}`), &h); err != nil {
		t.Fatal(err)
	}
	if h.Boundary != Reflective {
		t.Fatalf("unmarshalled %v, want Reflective", h.Boundary)
	}
	if err = json.Unmarshal([]byte(`{"boundary":"spherical"}`), &h); err == nil {
		t.Fatal("unknown boundary name unmarshalled without error")
	}
}

func TestResolve(t *testing.T) {
	const rows, cols = 4, 6
	tests := []struct {
		mode         BoundaryMode
		r, c         int
		wantR, wantC int
		wantOK       bool
	}{
		{Finite, 1, 1, 1, 1, true},
		{Finite, -1, 0, 0, 0, false},
		{Finite, 0, cols, 0, 0, false},
		{Infinite, rows, 2, 0, 0, false},
		{Infinite, 3, 5, 3, 5, true},
		{Reflective, -1, -1, 0, 0, true},
		{Reflective, rows, cols, rows - 1, cols - 1, true},
		{Reflective, -1, 3, 0, 3, true},
		{Toroidal, -1, -1, rows - 1, cols - 1, true},
		{Toroidal, rows, cols, 0, 0, true},
		{Toroidal, 2, -1, 2, cols - 1, true},
	}
	for _, tt := range tests {
		r, c, ok := tt.mode.resolve(tt.r, tt.c, rows, cols)
		if ok != tt.wantOK || (ok && (r != tt.wantR || c != tt.wantC)) {
			t.Fatalf("%v.resolve(%d,%d)=(%d,%d,%v), want (%d,%d,%v)",
				tt.mode, tt.r, tt.c, r, c, ok, tt.wantR, tt.wantC, tt.wantOK)
		}
	}
}
