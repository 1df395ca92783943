// Package region partitions a grid.Grid into connected regions of equal
// cells (flood fill) and measures them.
//
// What:
//
//   - Find labels every cell with the region it belongs to, scanning in
//     row-major order so region numbering is deterministic.
//   - Cells for which Options.Ignore ("water") or Options.Block ("walls")
//     returns true join no region.
//   - Perimeter counts fence segments around a region; Sides counts straight
//     fence runs (equal to the number of corners).
//   - Bridge finds the cheapest path joining two regions, where crossing an
//     ignored cell costs 1, any region cell costs 0 and blocked cells are
//     impassable (0-1 BFS).
//
// Complexity:
//
//   - Find:      O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - Perimeter: O(A), Sides: O(A) for a region of area A.
//   - Bridge:    O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrRegionIndex: requested region index out of range.
//   - ErrNoPath: no path joins the two regions.
package region
