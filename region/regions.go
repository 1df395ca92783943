package region

import (
	"github.com/katalvlaran/gridray/grid"
)

// Find partitions g into connected regions of equal cells.
// A nil grid yields an empty partition.
func Find[T comparable](g *grid.Grid[T], opts Options[T]) *Partition[T] {
	return FindFunc(g, opts, func(a, b T) bool { return a == b })
}

// FindFunc is Find for cells compared with same instead of ==.
// same must be an equivalence relation.
//
// Regions are discovered in row-major order of their first cell and each one
// is grown by BFS over opts.Conn neighbours.
// Time: O(W·H·d), Memory: O(W·H).
func FindFunc[T any](g *grid.Grid[T], opts Options[T], same func(a, b T) bool) *Partition[T] {
	labels := grid.Map(g, func(grid.Position, T) int { return -1 })
	part := &Partition[T]{src: g, labels: labels, opts: opts}
	dirs := opts.Conn.Directions()

	for p0, v0 := range g.All() {
		if opts.skipped(v0) {
			continue
		}
		if l, _ := labels.Get(p0); l >= 0 {
			continue
		}
		id := len(part.Regions)
		labels.Set(p0, id)
		queue := []grid.Position{p0}

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, q := range g.Neighbors(u, dirs) {
				if l, _ := labels.Get(q); l >= 0 {
					continue
				}
				v, _ := g.Get(q)
				if !same(v0, v) {
					continue
				}
				labels.Set(q, id)
				queue = append(queue, q)
			}
		}
		part.Regions = append(part.Regions, Region[T]{ID: id, Value: v0, Cells: queue})
	}
	return part
}

// Label returns the region ID of p, or ok=false if p is out of bounds or ignored.
func (pt *Partition[T]) Label(p grid.Position) (int, bool) {
	l, ok := pt.labels.Get(p)
	if !ok || l < 0 {
		return -1, false
	}
	return l, true
}

// Contains reports whether p belongs to region id.
func (pt *Partition[T]) Contains(id int, p grid.Position) bool {
	l, ok := pt.Label(p)
	return ok && l == id
}

// Labels returns a copy of the label grid (-1 marks ignored and blocked cells).
func (pt *Partition[T]) Labels() *grid.Grid[int] {
	return pt.labels.Clone()
}

// region validates id and returns the region.
func (pt *Partition[T]) region(id int) (Region[T], error) {
	if id < 0 || id >= len(pt.Regions) {
		return Region[T]{}, ErrRegionIndex
	}
	return pt.Regions[id], nil
}

// Perimeter counts the unit fence segments around region id: every
// orthogonal side of a member cell that faces the border or a non-member.
func (pt *Partition[T]) Perimeter(id int) (int, error) {
	r, err := pt.region(id)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range r.Cells {
		for _, d := range grid.Cardinal() {
			if !pt.member(id, p, d) {
				n++
			}
		}
	}
	return n, nil
}

// Sides counts the straight fence runs around region id, which equals the
// number of corners. A cell contributes an outer corner where two orthogonal
// neighbours are both outside, and an inner corner where both are inside but
// the diagonal between them is outside.
func (pt *Partition[T]) Sides(id int) (int, error) {
	r, err := pt.region(id)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range r.Cells {
		for _, d := range grid.Cardinal() {
			e := d.TurnRight()
			a, b := pt.member(id, p, d), pt.member(id, p, e)
			switch {
			case !a && !b:
				n++
			case a && b && !pt.member(id, p, grid.D(d.DX+e.DX, d.DY+e.DY)):
				n++
			}
		}
	}
	return n, nil
}

// member reports whether the cell one step from p along d is in region id.
func (pt *Partition[T]) member(id int, p grid.Position, d grid.Direction) bool {
	q, ok := grid.Shift(p, d)
	return ok && pt.Contains(id, q)
}
