package grid

import (
	"fmt"
	"maps"
	"slices"
)

// DirectionMap is a bidirectional mapping between runes and directions,
// e.g. the arrows '^', '>', 'v', '<' of a movement script. It is built once
// by the caller and passed to whoever needs it; there is no package-level table.
// A DirectionMap is read-only after construction and safe for concurrent use.
type DirectionMap struct {
	byRune map[rune]Direction
	byDir  map[Direction]rune
}

// NewDirectionMap builds a DirectionMap from pairs. Each direction may appear
// at most once; otherwise ErrDuplicateDirection is returned, naming the two
// lowest runes that collide.
func NewDirectionMap(pairs map[rune]Direction) (*DirectionMap, error) {
	m := &DirectionMap{
		byRune: make(map[rune]Direction, len(pairs)),
		byDir:  make(map[Direction]rune, len(pairs)),
	}
	for _, r := range slices.Sorted(maps.Keys(pairs)) {
		d := pairs[r]
		if prev, dup := m.byDir[d]; dup {
			return nil, fmt.Errorf("%w: %v for both %q and %q", ErrDuplicateDirection, d, prev, r)
		}
		m.byRune[r] = d
		m.byDir[d] = r
	}
	return m, nil
}

// ArrowMap returns a new DirectionMap for '^', '>', 'v' and '<'.
func ArrowMap() *DirectionMap {
	m, _ := NewDirectionMap(map[rune]Direction{
		'^': North,
		'>': East,
		'v': South,
		'<': West,
	})
	return m
}

// Direction returns the direction mapped to r.
func (m *DirectionMap) Direction(r rune) (Direction, bool) {
	d, ok := m.byRune[r]
	return d, ok
}

// Rune returns the rune mapped to d.
func (m *DirectionMap) Rune(d Direction) (rune, bool) {
	r, ok := m.byDir[d]
	return r, ok
}

// Len returns the number of pairs.
func (m *DirectionMap) Len() int { return len(m.byRune) }

// ParseMoves converts a movement script into directions. Runes not in the
// map, such as line breaks, are skipped.
func (m *DirectionMap) ParseMoves(script string) []Direction {
	var out []Direction
	for _, r := range script {
		if d, ok := m.byRune[r]; ok {
			out = append(out, d)
		}
	}
	return out
}
