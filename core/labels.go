// File: labels.go
// Role: Optional node/edge labels consumed by pattern-matching algorithms (e.g. vf2).
// Determinism:
//   - EdgeLabelBetween picks the lowest Edge.ID among parallel edges, matching the
//     Edge.ID-ascending ordering used elsewhere in this package.
// Concurrency:
//   - SetNodeLabel/NodeLabel use muVert; EdgeLabelBetween uses muEdgeAdj.
package core

import "sort"

// SetNodeLabel attaches a label to an existing vertex. Returns ErrVertexNotFound
// if id is not present.
//
// Complexity: O(1).
func (g *Graph) SetNodeLabel(id string, label interface{}) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Label = label

	return nil
}

// NodeLabel returns the label attached to vertex id, or ErrVertexNotFound if
// the vertex does not exist. A vertex with no label returns (nil, nil).
//
// Complexity: O(1).
func (g *Graph) NodeLabel(id string) (interface{}, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v.Label, nil
}

// EdgeLabelBetween returns the label of an edge from→to. When multiple parallel
// edges exist between the same endpoints (multigraph), the edge with the
// lexicographically smallest Edge.ID is chosen, for determinism.
//
// Complexity: O(d log d) where d is the number of parallel edges between
// from and to (O(1) for simple graphs).
func (g *Graph) EdgeLabelBetween(from, to string) (interface{}, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[from][to]
	if len(bucket) == 0 {
		return nil, ErrEdgeNotFound
	}

	ids := make([]string, 0, len(bucket))
	for eid := range bucket {
		ids = append(ids, eid)
	}
	sort.Strings(ids)

	return g.edges[ids[0]].Label, nil
}
