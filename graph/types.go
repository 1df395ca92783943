package graph

import (
	"errors"

	"github.com/katalvlaran/gridray/grid"
)

// ErrUnknownNode indicates a NodeID that was never allocated.
var ErrUnknownNode = errors.New("graph: unknown node")

// NodeID indexes a node in a Graph's arena.
type NodeID int

// NodeMap is a bidirectional mapping between NodeIDs and positions.
// IDs are dense: the i-th inserted position gets NodeID(i).
type NodeMap struct {
	byID  []grid.Position
	byPos map[grid.Position]NodeID
}

// NewNodeMap returns an empty NodeMap.
func NewNodeMap() *NodeMap {
	return &NodeMap{byPos: make(map[grid.Position]NodeID)}
}

// GetOrInsert returns the ID of p, allocating the next ID if p is new.
// The second result reports whether an ID was allocated.
func (m *NodeMap) GetOrInsert(p grid.Position) (NodeID, bool) {
	if id, ok := m.byPos[p]; ok {
		return id, false
	}
	id := NodeID(len(m.byID))
	m.byID = append(m.byID, p)
	m.byPos[p] = id
	return id, true
}

// ID returns the node at p.
func (m *NodeMap) ID(p grid.Position) (NodeID, bool) {
	id, ok := m.byPos[p]
	return id, ok
}

// Position returns the position of id.
func (m *NodeMap) Position(id NodeID) (grid.Position, bool) {
	if id < 0 || int(id) >= len(m.byID) {
		return grid.Position{}, false
	}
	return m.byID[id], true
}

// Len returns the number of mapped nodes.
func (m *NodeMap) Len() int { return len(m.byID) }
