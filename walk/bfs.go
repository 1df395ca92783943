package walk

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridray/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   grid.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	grid  *grid.Grid[T]
	opts  Options[T]
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
func BFS[T any](g *grid.Grid[T], start grid.Position, opts ...Option[T]) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	n := g.Len()
	w := &walker[T]{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]grid.Position, 0, n),
			Depth:  make(map[grid.Position]int, n),
			Parent: make(map[grid.Position]grid.Position, n),
		},
	}

	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue records p's depth and adds it to the queue.
func (w *walker[T]) enqueue(p grid.Position, d int) {
	w.res.Depth[p] = d
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.pos)
	v, _ := w.grid.Get(item.pos)
	if err := w.opts.OnVisit(item.pos, v, item.depth); err != nil {
		return fmt.Errorf("walk: OnVisit error at %v: %w", item.pos, err)
	}
	return nil
}

// enqueueNeighbors applies Step and MaxDepth and enqueues each unseen neighbour.
func (w *walker[T]) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	from, _ := w.grid.Get(item.pos)
	for _, q := range w.grid.Neighbors(item.pos, w.opts.Directions) {
		if _, seen := w.res.Depth[q]; seen {
			continue
		}
		to, _ := w.grid.Get(q)
		if !w.opts.Step(item.pos, q, from, to) {
			continue
		}
		w.res.Parent[q] = item.pos
		w.enqueue(q, next)
	}
}
