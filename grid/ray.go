package grid

import "iter"

// Ray is a lazy, forward-only walk from an origin along a fixed direction.
// It yields (Position, cell) pairs, starting with the origin itself, and stops
// for good at the first position outside the grid. A Ray reads its grid by
// reference and never mutates it; it cannot be rewound.
type Ray[T any] struct {
	grid *Grid[T]
	cur  Position
	dir  Direction
	done bool
}

// CastRay starts a ray at origin moving by dir on every step.
// The sequence is finite for any non-zero dir. A zero dir repeats the origin
// forever, so callers must not pass one unless they bound the walk themselves.
// A nil g yields an empty ray.
// Complexity: O(1) to create, O(1) per step.
func CastRay[T any](g *Grid[T], origin Position, dir Direction) *Ray[T] {
	return &Ray[T]{grid: g, cur: origin, dir: dir}
}

// Next yields the current position and its cell, then advances the cursor.
// ok is false once the cursor has left the grid, and stays false.
func (r *Ray[T]) Next() (p Position, v T, ok bool) {
	if r.done {
		return p, v, false
	}
	v, ok = r.grid.Get(r.cur)
	if !ok {
		r.done = true
		return p, v, false
	}
	p = r.cur
	next, shifted := Shift(r.cur, r.dir)
	if !shifted {
		// Negative coordinates are off-grid: the next call terminates.
		r.done = true
	}
	r.cur = next
	return p, v, true
}

// All adapts the remaining steps of the ray to a range-over-func sequence.
// Breaking out of the loop leaves the ray where it stopped.
func (r *Ray[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for {
			p, v, ok := r.Next()
			if !ok || !yield(p, v) {
				return
			}
		}
	}
}

// Take consumes up to n further cells and returns their values.
// Any n larger than the remaining ray simply returns the rest of it.
func (r *Ray[T]) Take(n int) []T {
	var out []T
	for len(out) < n {
		_, v, ok := r.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// MatchRay reports whether the ray from origin along dir begins with want.
// Falling off the grid before len(want) cells have been read is a mismatch.
func MatchRay[T comparable](g *Grid[T], origin Position, dir Direction, want []T) bool {
	r := CastRay(g, origin, dir)
	for _, w := range want {
		_, v, ok := r.Next()
		if !ok || v != w {
			return false
		}
	}
	return true
}
