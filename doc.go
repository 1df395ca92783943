// Package gridray is a toolkit for rectangular 2-D grids: coordinates,
// directional stepping, bounds-checked access and lazy ray casting, plus
// the analyses commonly built on top of them.
//
// 🧭 Packages
//
//	grid/   Position, Direction, Shape, Grid[T], Parse, CastRay, DirectionMap
//	region/ flood-fill regions of equal cells: area, perimeter, sides, bridging
//	walk/   BFS, Dijkstra (Cheapest), lazy DFS Hiker and turning Patrol
//	graph/  node-index arena mapping positions to adjacency-list nodes
//	scan/   parallel read-only counting over cells and rays
//
// The gridcast command (cmd/gridcast) exposes these from the terminal.
//
// ✨ Conventions
//
//   - Falling off a grid is never an error: lookups return ok=false.
//   - Grids carry no locks. Read concurrently, mutate exclusively.
//   - Construction failures are typed errors matched with errors.Is.
//
// Quick start:
//
//	g, err := grid.Parse("ABC\nDEF\n")
//	if err != nil {
//		return err
//	}
//	for p, v := range grid.CastRay(g, grid.P(0, 0), grid.SouthEast).All() {
//		fmt.Println(p, string(v)) // (0,0) A, (1,1) E
//	}
package gridray
