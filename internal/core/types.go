package core

import (
	"fmt"
	"strings"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point addresses a single cell.
type Point struct {
	X int
	Y int
}

// Pattern is a decoded or built-in set of live cells relative to the top-left
// corner of a W×H bounding box.
type Pattern struct {
	Name  string
	W, H  int
	Rule  string
	Cells []Point
}

// BoundaryMode selects how neighbor lookups behave at the grid edges.
type BoundaryMode uint8

const (
	// Clamped ignores neighbors that fall outside the grid.
	Clamped BoundaryMode = iota
	// Wrapped treats the grid as a torus.
	Wrapped
)

// DefaultBoundary is used when no mode is configured.
const DefaultBoundary = Clamped

func (m BoundaryMode) String() string {
	switch m {
	case Clamped:
		return "clamped"
	case Wrapped:
		return "wrapped"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", uint8(m))
	}
}

// ParseBoundaryMode accepts "clamped" or "wrapped" (also "torus"), case
// insensitively.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamped", "clamp", "":
		return Clamped, nil
	case "wrapped", "wrap", "torus":
		return Wrapped, nil
	}
	return Clamped, fmt.Errorf("unknown boundary mode %q", s)
}

// UnmarshalText lets BoundaryMode be used with flag.TextVar and env parsing.
func (m *BoundaryMode) UnmarshalText(b []byte) error {
	parsed, err := ParseBoundaryMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText renders the mode name.
func (m BoundaryMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
