package scan

import (
	"context"
	"errors"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridray/grid"
)

// ErrGridNil is returned when a nil grid is scanned.
var ErrGridNil = errors.New("scan: grid is nil")

// Option configures a scan.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers caps the number of rows processed at once.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// rows calls fn once per row index, at most o.workers at a time, and
// returns the first error or ctx.Err().
func rows(ctx context.Context, height int, o options, fn func(ctx context.Context, y int) error) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)
	for y := 0; y < height; y++ {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return fn(egCtx, y)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Count returns how many cells satisfy pred.
// pred may be called concurrently from several goroutines.
func Count[T any](ctx context.Context, g *grid.Grid[T], pred func(grid.Position, T) bool, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	counts := make([]int, g.Height())
	err := rows(ctx, g.Height(), buildOptions(opts), func(_ context.Context, y int) error {
		for x, v := range g.Row(y) {
			if pred(grid.P(x, y), v) {
				counts[y]++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sum(counts), nil
}

// CountRays returns the number of (origin, direction) pairs whose ray
// starts with want. Every cell is tried as an origin with every direction
// in dirs; an empty want matches nothing.
func CountRays[T comparable](ctx context.Context, g *grid.Grid[T], dirs []grid.Direction, want []T, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	if len(want) == 0 {
		return 0, nil
	}
	counts := make([]int, g.Height())
	err := rows(ctx, g.Height(), buildOptions(opts), func(_ context.Context, y int) error {
		for x := 0; x < g.Width(); x++ {
			origin := grid.P(x, y)
			if v, _ := g.Get(origin); v != want[0] {
				continue
			}
			for _, d := range dirs {
				if grid.MatchRay(g, origin, d, want) {
					counts[y]++
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sum(counts), nil
}

// Filter returns the positions satisfying pred in row-major order.
func Filter[T any](ctx context.Context, g *grid.Grid[T], pred func(grid.Position, T) bool, opts ...Option) ([]grid.Position, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	hits := make([][]grid.Position, g.Height())
	err := rows(ctx, g.Height(), buildOptions(opts), func(_ context.Context, y int) error {
		for x, v := range g.Row(y) {
			if p := grid.P(x, y); pred(p, v) {
				hits[y] = append(hits[y], p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Concat(hits...), nil
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}
