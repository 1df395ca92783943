package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is matched by every grid construction failure.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing widths.
	ErrNonRectangular = errors.New("grid: all rows must have the same width")
	// ErrInvalidCell indicates a rune that a cell conversion cannot accept.
	ErrInvalidCell = errors.New("grid: invalid cell")
	// ErrDuplicateDirection indicates two runes were mapped to the same direction.
	ErrDuplicateDirection = errors.New("grid: direction mapped more than once")
)

// MalformedGridError describes why a grid could not be built.
// Row, Want and Got are only meaningful when Err is ErrNonRectangular.
type MalformedGridError struct {
	Row  int   // zero-based index of the offending row
	Want int   // width taken from the first row
	Got  int   // width of the offending row
	Err  error // ErrEmptyGrid or ErrNonRectangular
}

func (e *MalformedGridError) Error() string {
	if errors.Is(e.Err, ErrNonRectangular) {
		return fmt.Sprintf("%v: row %d has width %d, want %d", ErrMalformedGrid, e.Row, e.Got, e.Want)
	}
	return fmt.Sprintf("%v: %v", ErrMalformedGrid, e.Err)
}

// Unwrap exposes the specific cause so errors.Is(err, ErrNonRectangular) works.
func (e *MalformedGridError) Unwrap() error { return e.Err }

// Is reports true for ErrMalformedGrid in addition to the wrapped cause.
func (e *MalformedGridError) Is(target error) bool {
	return target == ErrMalformedGrid
}

func emptyGrid() error {
	return &MalformedGridError{Err: ErrEmptyGrid}
}

func nonRectangular(row, want, got int) error {
	return &MalformedGridError{Row: row, Want: want, Got: got, Err: ErrNonRectangular}
}
