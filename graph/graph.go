package graph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridray/grid"
)

// Graph is an arena of position-labelled nodes with adjacency lists.
// Parallel edges are not stored: adding an existing edge is a no-op.
type Graph struct {
	directed bool
	nodes    *NodeMap
	adj      [][]NodeID
	edges    int
}

// New returns an empty graph.
func New(directed bool) *Graph {
	return &Graph{directed: directed, nodes: NewNodeMap()}
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Nodes exposes the ID↔position mapping. Callers must not mutate it.
func (g *Graph) Nodes() *NodeMap { return g.nodes }

// GetOrInsert returns the node for p, adding it if absent.
// Complexity: O(1) amortized.
func (g *Graph) GetOrInsert(p grid.Position) NodeID {
	id, added := g.nodes.GetOrInsert(p)
	if added {
		g.adj = append(g.adj, nil)
	}
	return id
}

// Node returns the node for p without inserting.
func (g *Graph) Node(p grid.Position) (NodeID, bool) { return g.nodes.ID(p) }

// Position returns the position of id.
func (g *Graph) Position(id NodeID) (grid.Position, bool) { return g.nodes.Position(id) }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.adj) }

// EdgeCount returns the number of edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int { return g.edges }

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.adj)
}

// AddEdge links a to b (and b to a when undirected).
// Returns ErrUnknownNode if either ID was never allocated.
// Complexity: O(deg(a) + deg(b)) for the duplicate check.
func (g *Graph) AddEdge(a, b NodeID) error {
	if !g.valid(a) || !g.valid(b) {
		return fmt.Errorf("%w: edge %d→%d", ErrUnknownNode, a, b)
	}
	if slices.Contains(g.adj[a], b) {
		return nil
	}
	g.adj[a] = append(g.adj[a], b)
	if !g.directed && a != b {
		g.adj[b] = append(g.adj[b], a)
	}
	g.edges++
	return nil
}

// HasEdge reports whether a→b exists.
func (g *Graph) HasEdge(a, b NodeID) bool {
	return g.valid(a) && slices.Contains(g.adj[a], b)
}

// Neighbors returns a copy of id's adjacency list in insertion order.
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	if !g.valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return slices.Clone(g.adj[id]), nil
}

// Degree returns the number of outgoing edges of id, or -1 if id is unknown.
func (g *Graph) Degree(id NodeID) int {
	if !g.valid(id) {
		return -1
	}
	return len(g.adj[id])
}

// FromGrid adds one node per cell of src, in row-major order, so NodeID(i)
// is the i-th cell. For every cell and each direction in dirs, an edge is
// added to the neighbour when connect(from, to) holds.
// A nil src yields an empty graph.
// Complexity: O(W×H×d).
func FromGrid[T any](src *grid.Grid[T], dirs []grid.Direction, connect func(from, to T) bool, directed bool) *Graph {
	g := New(directed)
	for p := range src.All() {
		g.GetOrInsert(p)
	}
	for p, v := range src.All() {
		a, _ := g.Node(p)
		for _, q := range src.Neighbors(p, dirs) {
			w, _ := src.Get(q)
			if !connect(v, w) {
				continue
			}
			b, _ := g.Node(q)
			_ = g.AddEdge(a, b)
		}
	}
	return g
}

// Components groups nodes into weakly connected components using a
// disjoint-set with path compression and union by rank. Components are
// ordered by their smallest NodeID and each lists its IDs ascending.
// Complexity: O((V+E)·α(V)).
func (g *Graph) Components() [][]NodeID {
	n := len(g.adj)
	parent := make([]NodeID, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = NodeID(i)
	}

	find := func(u NodeID) NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v NodeID) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			union(NodeID(u), v)
		}
	}

	index := make(map[NodeID]int)
	var comps [][]NodeID
	for i := 0; i < n; i++ {
		root := find(NodeID(i))
		ci, ok := index[root]
		if !ok {
			ci = len(comps)
			index[root] = ci
			comps = append(comps, nil)
		}
		comps[ci] = append(comps[ci], NodeID(i))
	}
	return comps
}
