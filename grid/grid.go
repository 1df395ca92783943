package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a rectangular, row-major container of Height×Width cells.
// Its shape is fixed at construction; only cell contents may change.
// The zero value is an empty 0×0 grid on which every lookup is absent.
// A nil *Grid reads the same way: lookups are absent and iteration is empty.
type Grid[T any] struct {
	h, w  int // row and column counts
	cells []T // flat row-major storage, len == h*w
}

// New creates a height×width grid of zero-valued cells.
// Returns ErrEmptyGrid (wrapped in *MalformedGridError) if either dimension is < 1.
// Complexity: O(W×H).
func New[T any](height, width int) (*Grid[T], error) {
	if height <= 0 || width <= 0 {
		return nil, emptyGrid()
	}
	return &Grid[T]{h: height, w: width, cells: make([]T, height*width)}, nil
}

// FromRows builds a grid by copying rows. Every row must be as wide as the first.
// Complexity: O(W×H).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, emptyGrid()
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, h*w)
	for y, row := range rows {
		if len(row) != w {
			return nil, nonRectangular(y, w, len(row))
		}
		cells = append(cells, row...)
	}
	return &Grid[T]{h: h, w: w, cells: cells}, nil
}

// Dimensions returns (height, width).
func (g *Grid[T]) Dimensions() (height, width int) {
	if g == nil {
		return 0, 0
	}
	return g.h, g.w
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	h, _ := g.Dimensions()
	return h
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	_, w := g.Dimensions()
	return w
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.data()) }

// data returns the backing cells, or nil for a nil grid.
func (g *Grid[T]) data() []T {
	if g == nil {
		return nil
	}
	return g.cells
}

// InBounds reports whether p lies inside [0,Width)×[0,Height).
func (g *Grid[T]) InBounds(p Position) bool {
	h, w := g.Dimensions()
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// index maps p to its row-major offset: Y*Width + X. p must be in bounds.
func (g *Grid[T]) index(p Position) int {
	return p.Y*g.w + p.X
}

// position is the inverse of index.
func (g *Grid[T]) position(i int) Position {
	return Position{X: i % g.w, Y: i / g.w}
}

// Get returns the cell at p, or ok=false when p is out of bounds.
func (g *Grid[T]) Get(p Position) (v T, ok bool) {
	if !g.InBounds(p) {
		return v, false
	}
	return g.cells[g.index(p)], true
}

// GetMut returns a pointer to the cell at p, or ok=false when p is out of
// bounds. The pointer is valid for the lifetime of the grid.
func (g *Grid[T]) GetMut(p Position) (*T, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return &g.cells[g.index(p)], true
}

// Set stores v at p and reports whether p was in bounds.
func (g *Grid[T]) Set(p Position, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[g.index(p)] = v
	return true
}

// Step shifts p by d and reports whether the result lies inside the grid.
func (g *Grid[T]) Step(p Position, d Direction) (Position, bool) {
	q, ok := Shift(p, d)
	if !ok || !g.InBounds(q) {
		return Position{}, false
	}
	return q, true
}

// Neighbors returns the in-bounds positions one step from p along each of dirs,
// in the order of dirs.
func (g *Grid[T]) Neighbors(p Position, dirs []Direction) []Position {
	out := make([]Position, 0, len(dirs))
	for _, d := range dirs {
		if q, ok := g.Step(p, d); ok {
			out = append(out, q)
		}
	}
	return out
}

// Clone returns a deep copy of the grid; the copy shares no storage.
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	if g == nil {
		return &Grid[T]{}
	}
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{h: g.h, w: g.w, cells: cells}
}

// All iterates every (Position, cell) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for i, v := range g.data() {
			if !yield(g.position(i), v) {
				return
			}
		}
	}
}

// Positions returns every position in row-major order.
func (g *Grid[T]) Positions() []Position {
	out := make([]Position, 0, g.Len())
	for i := range g.data() {
		out = append(out, g.position(i))
	}
	return out
}

// Row returns a copy of row y, or nil if y is out of range.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.Height() {
		return nil
	}
	row := make([]T, g.w)
	copy(row, g.cells[y*g.w:(y+1)*g.w])
	return row
}

// Find returns the first position in row-major order whose cell satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (Position, bool) {
	for i, v := range g.data() {
		if pred(v) {
			return g.position(i), true
		}
	}
	return Position{}, false
}

// FindAll returns every position whose cell satisfies pred, in row-major order.
func (g *Grid[T]) FindAll(pred func(T) bool) []Position {
	var out []Position
	for i, v := range g.data() {
		if pred(v) {
			out = append(out, g.position(i))
		}
	}
	return out
}

// Map builds a new grid of the same shape by applying f to every cell.
// Complexity: O(W×H).
func Map[T, U any](g *Grid[T], f func(Position, T) U) *Grid[U] {
	if g == nil {
		return &Grid[U]{}
	}
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		cells[i] = f(g.position(i), v)
	}
	return &Grid[U]{h: g.h, w: g.w, cells: cells}
}

// Equal reports whether a and b have the same shape and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	ah, aw := a.Dimensions()
	bh, bw := b.Dimensions()
	if ah != bh || aw != bw {
		return false
	}
	bc := b.data()
	for i, v := range a.data() {
		if v != bc[i] {
			return false
		}
	}
	return true
}

// String renders one line per row. Rune and byte cells are written as
// characters; any other cell type is formatted with %v.
// The output is meant for humans and carries no stability guarantee.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		for _, v := range g.cells[y*g.w : (y+1)*g.w] {
			switch c := any(v).(type) {
			case rune:
				sb.WriteRune(c)
			case byte:
				sb.WriteByte(c)
			default:
				fmt.Fprintf(&sb, "%v", c)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
