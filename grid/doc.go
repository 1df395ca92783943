// Package grid provides a fixed-size, row-major 2-D grid of homogeneous cells
// together with the geometry needed to move around it.
//
// What:
//
//   - Position is an (X, Y) coordinate: X is the column, Y is the row.
//   - Direction is a signed (DX, DY) step; the eight unit directions are predeclared.
//   - Grid[T] stores Height×Width cells in a flat row-major slice.
//   - Parse builds a Grid[rune] from line-delimited text.
//   - CastRay walks a straight line from an origin, yielding cells until it
//     falls off the grid.
//
// Bounds:
//
//   - Falling off the grid is not an error. Get, GetMut, Step and Ray report
//     absence through a boolean, never by panicking and never by wrapping.
//   - Shift adds a Direction to a Position in signed arithmetic and reports
//     ok=false whenever a component goes negative.
//
// Concurrency:
//
//   - A Grid carries no locks. Any number of goroutines may read it while
//     nobody writes. Clone it before mutating a copy next to concurrent readers.
//
// Complexity:
//
//   - Parse, Clone, Map: O(W×H). Get/GetMut/Set/Shift: O(1).
//   - A ray over a unit direction yields at most max(W, H) items.
//
// Errors:
//
//   - ErrMalformedGrid: umbrella sentinel for any construction failure.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: a row's width differs from the first row's.
//   - ErrDuplicateDirection: a DirectionMap maps two runes to one direction.
package grid
