package walk

import (
	"iter"

	"github.com/katalvlaran/gridray/grid"
)

// Hiker is a lazy depth-first walk. Each Next call pops one cell from the
// frontier, pushes its admissible neighbours and yields the popped cell.
//
// By default a cell is expanded at most once, so the hiker yields every
// cell reachable from the start. With revisits allowed nothing is
// remembered, and a cell is yielded once per distinct trail reaching it;
// the step function must then rule out cycles (e.g. strictly increasing
// heights) or the walk never ends.
type Hiker[T any] struct {
	grid     *grid.Grid[T]
	dirs     []grid.Direction
	step     StepFunc[T]
	stack    []grid.Position
	visited  map[grid.Position]bool
	revisits bool
}

// HikerOption configures a Hiker.
type HikerOption func(*hikerConfig)

type hikerConfig struct {
	dirs     []grid.Direction
	revisits bool
}

// HikeDirections replaces the default cardinal direction set.
func HikeDirections(dirs ...grid.Direction) HikerOption {
	return func(c *hikerConfig) {
		if len(dirs) > 0 {
			c.dirs = append([]grid.Direction(nil), dirs...)
		}
	}
}

// HikeRevisits yields a cell once per distinct trail instead of once overall.
func HikeRevisits() HikerOption {
	return func(c *hikerConfig) { c.revisits = true }
}

// NewHiker starts a hike at start. step decides which moves are allowed;
// a nil step allows none, so the hike yields only start.
// A nil grid or a start outside the grid produces an empty hike.
func NewHiker[T any](g *grid.Grid[T], start grid.Position, step StepFunc[T], opts ...HikerOption) *Hiker[T] {
	if step == nil {
		step = func(_, _ grid.Position, _, _ T) bool { return false }
	}
	cfg := hikerConfig{dirs: grid.Cardinal()}
	for _, opt := range opts {
		opt(&cfg)
	}
	h := &Hiker[T]{
		grid:     g,
		dirs:     cfg.dirs,
		step:     step,
		revisits: cfg.revisits,
		visited:  make(map[grid.Position]bool),
	}
	if g.InBounds(start) {
		h.stack = append(h.stack, start)
	}
	return h
}

// Next yields the next cell of the hike, or ok=false once the frontier is empty.
func (h *Hiker[T]) Next() (p grid.Position, v T, ok bool) {
	for len(h.stack) > 0 {
		p = h.stack[len(h.stack)-1]
		h.stack = h.stack[:len(h.stack)-1]
		if !h.revisits {
			if h.visited[p] {
				continue
			}
			h.visited[p] = true
		}
		v, _ = h.grid.Get(p)
		for _, q := range h.grid.Neighbors(p, h.dirs) {
			if !h.revisits && h.visited[q] {
				continue
			}
			w, _ := h.grid.Get(q)
			if h.step(p, q, v, w) {
				h.stack = append(h.stack, q)
			}
		}
		return p, v, true
	}
	return p, v, false
}

// All adapts the remaining hike to a range-over-func sequence.
func (h *Hiker[T]) All() iter.Seq2[grid.Position, T] {
	return func(yield func(grid.Position, T) bool) {
		for {
			p, v, ok := h.Next()
			if !ok || !yield(p, v) {
				return
			}
		}
	}
}
