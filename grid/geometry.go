package grid

import (
	"fmt"
	"math"
)

// Position is a cell coordinate: X is the column, Y is the row.
// A Position is valid for a grid only when 0 ≤ X < Width and 0 ≤ Y < Height.
type Position struct {
	X, Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Shape is the internal (row, col) address of a cell, i.e. (Y, X).
type Shape struct {
	Row, Col int
}

// Shape converts p to row-major (row, col) addressing.
func (p Position) Shape() Shape {
	return Shape{Row: p.Y, Col: p.X}
}

// FromShape converts a (row, col) address back to a Position.
// FromShape(p.Shape()) == p for every p.
func FromShape(s Shape) Position {
	return Position{X: s.Col, Y: s.Row}
}

// Direction is a signed step vector. It is not bounded: besides the eight
// unit directions any vector may be used, e.g. for ray casting with a stride.
type Direction struct {
	DX, DY int
}

// D is a convenience constructor for Direction.
func D(dx, dy int) Direction {
	return Direction{DX: dx, DY: dy}
}

// Unit directions. Y grows downward, so North is (0,-1).
var (
	North     = Direction{DX: 0, DY: -1}
	NorthEast = Direction{DX: 1, DY: -1}
	East      = Direction{DX: 1, DY: 0}
	SouthEast = Direction{DX: 1, DY: 1}
	South     = Direction{DX: 0, DY: 1}
	SouthWest = Direction{DX: -1, DY: 1}
	West      = Direction{DX: -1, DY: 0}
	NorthWest = Direction{DX: -1, DY: -1}
)

// Cardinal returns the four orthogonal directions clockwise from North.
// A fresh slice is returned on every call.
func Cardinal() []Direction {
	return []Direction{North, East, South, West}
}

// AllDirections returns the eight unit directions clockwise from North.
// A fresh slice is returned on every call.
func AllDirections() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// String formats the direction as "<dx,dy>".
func (d Direction) String() string {
	return fmt.Sprintf("<%d,%d>", d.DX, d.DY)
}

// IsZero reports whether d is the zero vector.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Opposite returns -d.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// TurnRight rotates d by 90° clockwise on screen (Y down): North becomes East.
func (d Direction) TurnRight() Direction {
	return Direction{DX: -d.DY, DY: d.DX}
}

// TurnLeft rotates d by 90° counter-clockwise on screen: North becomes West.
func (d Direction) TurnLeft() Direction {
	return Direction{DX: d.DY, DY: -d.DX}
}

// Scale multiplies both components by k.
func (d Direction) Scale(k int) Direction {
	return Direction{DX: d.DX * k, DY: d.DY * k}
}

// Between returns the vector that moves a onto b.
func Between(a, b Position) Direction {
	return Direction{DX: b.X - a.X, DY: b.Y - a.Y}
}

// Shift adds d to p component-wise in signed arithmetic.
// ok is false when either resulting component would be negative or would
// overflow int; such a result is never a valid Position for any grid.
// Shift does not check the upper bounds of any particular grid; use
// Grid.Step or Grid.Get for that.
func Shift(p Position, d Direction) (Position, bool) {
	x, ok := addChecked(p.X, d.DX)
	if !ok {
		return Position{}, false
	}
	y, ok := addChecked(p.Y, d.DY)
	if !ok {
		return Position{}, false
	}
	return Position{X: x, Y: y}, true
}

// addChecked returns a+b when the sum is non-negative and does not overflow.
func addChecked(a, b int) (int, bool) {
	if b > 0 && a > math.MaxInt-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt-b {
		return 0, false
	}
	s := a + b
	if s < 0 {
		return 0, false
	}
	return s, true
}
