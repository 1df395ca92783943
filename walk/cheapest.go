package walk

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridray/grid"
)

// ErrNegativeCost is returned when a CostFunc reports a negative step cost.
var ErrNegativeCost = errors.New("walk: negative step cost")

// CostFunc prices a move from one cell to a neighbour. ok=false forbids the move.
type CostFunc[T any] func(from, to grid.Position, fromVal, toVal T) (cost int, ok bool)

// Cheapest runs Dijkstra's algorithm on g from start, pricing each move
// with cost. The returned Result holds cells in settle order; Depth is the
// cheapest total cost and Parent the predecessor on a cheapest route.
//
// Options are shared with BFS: Step is applied before cost, MaxDepth caps
// the total cost (0 = unlimited), and OnVisit sees each cell once with its
// final cost.
//
// Complexity: O((V+E) log V).
func Cheapest[T any](g *grid.Grid[T], start grid.Position, cost CostFunc[T], opts ...Option[T]) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if cost == nil {
		return nil, fmt.Errorf("%w: nil cost function", ErrOptionViolation)
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

	r := &runner[T]{
		grid:    g,
		opts:    o,
		cost:    cost,
		settled: make(map[grid.Position]bool),
		res: &Result{
			Depth:  map[grid.Position]int{start: 0},
			Parent: make(map[grid.Position]grid.Position),
		},
	}
	heap.Push(&r.pq, &costItem{pos: start, cost: 0})
	return r.res, r.process()
}

// runner holds mutable Dijkstra state.
type runner[T any] struct {
	grid    *grid.Grid[T]
	opts    Options[T]
	cost    CostFunc[T]
	settled map[grid.Position]bool
	pq      costPQ
	res     *Result
}

// process pops the cheapest unsettled cell until the queue drains.
func (r *runner[T]) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*costItem)
		if r.settled[item.pos] {
			continue
		}
		r.settled[item.pos] = true
		r.res.Order = append(r.res.Order, item.pos)

		v, _ := r.grid.Get(item.pos)
		if err := r.opts.OnVisit(item.pos, v, item.cost); err != nil {
			return fmt.Errorf("walk: OnVisit error at %v: %w", item.pos, err)
		}
		if err := r.relax(item, v); err != nil {
			return err
		}
	}
	return nil
}

// relax offers every allowed neighbour of item a cheaper route.
func (r *runner[T]) relax(item *costItem, from T) error {
	for _, q := range r.grid.Neighbors(item.pos, r.opts.Directions) {
		if r.settled[q] {
			continue
		}
		to, _ := r.grid.Get(q)
		if !r.opts.Step(item.pos, q, from, to) {
			continue
		}
		w, ok := r.cost(item.pos, q, from, to)
		if !ok {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, item.pos, q, w)
		}
		next := item.cost + w
		if r.opts.MaxDepth > 0 && next > r.opts.MaxDepth {
			continue
		}
		if best, seen := r.res.Depth[q]; seen && next >= best {
			continue
		}
		r.res.Depth[q] = next
		r.res.Parent[q] = item.pos
		heap.Push(&r.pq, &costItem{pos: q, cost: next})
	}
	return nil
}

// costItem is a heap entry; stale entries are skipped on pop.
type costItem struct {
	pos  grid.Position
	cost int
}

// costPQ is a min-heap of *costItem ordered by cost.
type costPQ []*costItem

func (pq costPQ) Len() int { return len(pq) }

func (pq costPQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(*costItem)) }

func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
