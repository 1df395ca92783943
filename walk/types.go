package walk

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridray/grid"
)

// Sentinel errors for walks.
var (
	// ErrStartOutOfBounds is returned when the start position is not on the grid.
	ErrStartOutOfBounds = errors.New("walk: start position out of bounds")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("walk: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")

	// ErrZeroDirection is returned when a direction set contains the zero vector.
	ErrZeroDirection = errors.New("walk: zero direction")

	// ErrNoPath is returned by Result.PathTo when the destination was not reached.
	ErrNoPath = errors.New("walk: destination not reached")
)

// StepFunc decides whether a walker may move from one cell to a neighbour.
type StepFunc[T any] func(from, to grid.Position, fromVal, toVal T) bool

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[T any] func(*Options[T])

// Options holds parameters and callbacks to customize BFS execution.
type Options[T any] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Directions are the steps tried from every cell; Cardinal by default.
	Directions []grid.Direction

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p grid.Position, v T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// Step can forbid individual moves by returning false.
	Step StepFunc[T]

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - cardinal directions
//   - no depth limit
//   - every move allowed
//   - no-op OnVisit.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Ctx:        context.Background(),
		Directions: grid.Cardinal(),
		OnVisit:    func(grid.Position, T, int) error { return nil },
		MaxDepth:   0,
		Step:       func(_, _ grid.Position, _, _ T) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T any](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirections replaces the direction set. An empty set or one containing
// the zero vector is an option violation.
func WithDirections[T any](dirs ...grid.Direction) Option[T] {
	return func(o *Options[T]) {
		if len(dirs) == 0 {
			o.err = fmt.Errorf("%w: empty direction set", ErrOptionViolation)
			return
		}
		for _, d := range dirs {
			if d.IsZero() {
				o.err = fmt.Errorf("%w: %w", ErrOptionViolation, ErrZeroDirection)
				return
			}
		}
		o.Directions = append([]grid.Direction(nil), dirs...)
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[T any](fn func(p grid.Position, v T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T any](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithStep restricts moves to those fn allows.
func WithStep[T any](fn StepFunc[T]) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.Step = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: distance (in steps) of every reached cell from the start.
//   - Parent: predecessor of every reached cell except the start.
type Result struct {
	Order  []grid.Position
	Depth  map[grid.Position]int
	Parent map[grid.Position]grid.Position
}

// PathTo reconstructs the path from the start to dest, both included.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest grid.Position) ([]grid.Position, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	path := []grid.Position{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
