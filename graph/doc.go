// Package graph is a small node-index arena for graphs whose nodes are grid
// positions.
//
// Nodes are dense integer IDs handed out in insertion order; a NodeMap keeps
// the two-way mapping between IDs and grid.Positions, and adjacency is stored
// as one slice of neighbour IDs per node.
//
// Typical use is to build a graph from a grid with FromGrid, e.g. linking
// equal neighbouring cells, and then query Components or walk Neighbors.
//
// A Graph is not safe for concurrent mutation; concurrent reads are fine.
package graph
