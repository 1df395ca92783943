// Package walk traverses a grid.Grid from a start position.
//
// Four walkers are provided:
//
//   - BFS explores cells in increasing step distance and records depth,
//     parent links and visit order, with optional hooks, depth limiting,
//     direction sets and step filtering.
//   - Cheapest is Dijkstra's algorithm with a caller-supplied step cost.
//     It shares BFS options and fills the same Result, with Depth holding
//     the cheapest total cost.
//   - Hiker is a lazy depth-first state machine: a stack frontier plus a
//     visited set, advanced one cell per Next call. With revisits allowed it
//     enumerates every distinct trail instead of every reachable cell.
//   - Patrol walks straight ahead and turns whenever the next cell is
//     blocked, stopping when it leaves the grid or repeats a state (a loop).
//
// All walkers read the grid and never mutate it.
package walk
