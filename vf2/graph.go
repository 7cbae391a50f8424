package vf2

// Graph is the capability contract the matching engine consumes. Node
// identifiers are dense, zero-based integers in [0, NodeCount()); callers
// whose native graphs use a different identifier space (string vertex IDs,
// opaque handles) provide an adapter — CoreAdapter and SliceGraph are two
// ready-made ones.
//
// Self-loops are represented as HasEdge(i, i); a caller whose underlying
// storage forbids loops simply never returns true for i == j.
type Graph interface {
	// Directed reports whether this view's edges are one-directional.
	// Query and data views passed to the same builder must agree.
	Directed() bool

	// NodeCount returns the number of nodes, n. Nodes are addressed
	// 0..NodeCount()-1.
	NodeCount() int

	// NodeLabel returns the label of node i, or nil if the node carries no
	// label. Called once per candidate pair by the feasibility test.
	NodeLabel(i int) interface{}

	// HasEdge reports whether an edge i->j exists. For an undirected view,
	// HasEdge(i, j) and HasEdge(j, i) agree. HasEdge(i, i) tests a self-loop.
	HasEdge(i, j int) bool

	// EdgeLabel returns the label of edge i->j. Only ever called when
	// HasEdge(i, j) is true; implementations need not guard against missing
	// edges.
	EdgeLabel(i, j int) interface{}

	// OutNeighbors returns the out-neighbors of i. For an undirected view
	// this is the same set as InNeighbors(i).
	OutNeighbors(i int) []int

	// InNeighbors returns the in-neighbors of i. For an undirected view
	// this is the same set as OutNeighbors(i).
	InNeighbors(i int) []int
}
