package region

import (
	"container/list"

	"github.com/katalvlaran/gridray/grid"
)

// Bridge finds a minimum-cost path of cells joining region src to region dst.
// Entering a cell that belongs to any region costs 0; entering an ignored
// cell costs 1; blocked cells are never entered. The returned path includes
// its first (src) and last (dst) cells; cost is the number of ignored cells
// crossed.
//
// Behavior:
//  1. Validate region indices.
//  2. Multi-source 0-1 BFS from all src cells over the partition's connectivity.
//  3. Stop when any dst cell is dequeued.
//  4. Reconstruct path via predecessors.
//
// Time: O(W·H·d), Memory: O(W·H).
func (pt *Partition[T]) Bridge(src, dst int) (path []grid.Position, cost int, err error) {
	from, err := pt.region(src)
	if err != nil {
		return nil, 0, err
	}
	if _, err := pt.region(dst); err != nil {
		return nil, 0, err
	}

	const inf = int(^uint(0) >> 1)
	dist := grid.Map(pt.src, func(grid.Position, T) int { return inf })
	prev := grid.Map(pt.src, func(grid.Position, T) grid.Position { return grid.P(-1, -1) })

	// 0-1 BFS: cost-0 moves go to the front, cost-1 moves to the back.
	dq := list.New()
	for _, p := range from.Cells {
		dist.Set(p, 0)
		dq.PushFront(p)
	}

	dirs := pt.opts.Conn.Directions()
	target, found := grid.Position{}, false

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(grid.Position)
		if pt.Contains(dst, u) {
			target, found = u, true
			break
		}
		du, _ := dist.Get(u)
		for _, v := range pt.src.Neighbors(u, dirs) {
			if c, _ := pt.src.Get(v); pt.opts.blocked(c) {
				continue
			}
			step := 0
			if _, land := pt.Label(v); !land {
				step = 1
			}
			nd := du + step
			if dv, _ := dist.Get(v); nd < dv {
				dist.Set(v, nd)
				prev.Set(v, u)
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	for at := target; at.X >= 0; at, _ = prev.Get(at) {
		path = append([]grid.Position{at}, path...)
	}
	cost, _ = dist.Get(target)
	return path, cost, nil
}
