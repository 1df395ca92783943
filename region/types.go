package region

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridray/grid"
)

var (
	// ErrRegionIndex indicates a requested region index is out of range.
	ErrRegionIndex = errors.New("region: region index out of range")
	// ErrNoPath indicates no path exists between two regions.
	ErrNoPath = errors.New("region: no path between specified regions")
	// ErrConnectivity indicates an unrecognised connectivity name.
	ErrConnectivity = errors.New("region: unknown connectivity")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Directions returns the step set for c.
func (c Connectivity) Directions() []grid.Direction {
	if c == Conn8 {
		return grid.AllDirections()
	}
	return grid.Cardinal()
}

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// ParseConnectivity accepts "4"/"conn4" and "8"/"conn8", case-insensitively.
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "4", "conn4":
		return Conn4, nil
	case "8", "conn8":
		return Conn8, nil
	}
	return Conn4, fmt.Errorf("%w: %q", ErrConnectivity, s)
}

// Options contains tunable parameters for region analysis.
type Options[T any] struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Ignore, if non-nil, marks cells that belong to no region.
	// Bridge may cross them at a cost of 1 each.
	Ignore func(T) bool
	// Block, if non-nil, marks cells that belong to no region and that
	// Bridge may never cross.
	Block func(T) bool
}

// DefaultOptions returns Conn4 with no ignored cells.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{Conn: Conn4}
}

// Region is one connected group of equal cells.
type Region[T any] struct {
	ID    int             // index in Partition.Regions
	Value T               // value shared by every cell
	Cells []grid.Position // cells in flood-fill (BFS) order; Cells[0] is the first in row-major order
}

// Area returns the number of cells.
func (r Region[T]) Area() int { return len(r.Cells) }

// Partition is the result of Find: the regions plus a per-cell label grid.
type Partition[T any] struct {
	Regions []Region[T]

	src    *grid.Grid[T]
	labels *grid.Grid[int] // region ID per cell, -1 for ignored and blocked cells
	opts   Options[T]
}

// skipped reports whether v joins no region.
func (o Options[T]) skipped(v T) bool {
	return (o.Ignore != nil && o.Ignore(v)) || o.blocked(v)
}

func (o Options[T]) blocked(v T) bool {
	return o.Block != nil && o.Block(v)
}
