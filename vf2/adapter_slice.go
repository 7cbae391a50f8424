package vf2

// SliceGraph is a minimal vf2.Graph over a dense [][]int adjacency list,
// for callers who already have a zero-based integer graph representation.
// Node and edge labels are optional; a nil slice
// means "no labels".
type SliceGraph struct {
	directed   bool
	out        [][]int
	in         [][]int
	nodeLabels []interface{}
	edgeLabels map[[2]int]interface{}
}

// NewSliceGraph builds a SliceGraph from an adjacency list. adj[i] lists the
// out-neighbors of i (== all neighbors, for undirected graphs). nodeLabels
// may be nil. Complexity: O(n + |E|).
func NewSliceGraph(directed bool, adj [][]int, nodeLabels []interface{}) *SliceGraph {
	n := len(adj)
	sg := &SliceGraph{
		directed:   directed,
		out:        make([][]int, n),
		in:         make([][]int, n),
		nodeLabels: nodeLabels,
		edgeLabels: make(map[[2]int]interface{}),
	}
	for i, nbrs := range adj {
		sg.out[i] = append([]int(nil), nbrs...)
		for _, j := range nbrs {
			sg.in[j] = append(sg.in[j], i)
		}
	}

	return sg
}

// SetEdgeLabel attaches a label to arc i->j. For an undirected SliceGraph,
// callers wanting a symmetric label must call this for both directions.
func (sg *SliceGraph) SetEdgeLabel(i, j int, label interface{}) {
	sg.edgeLabels[[2]int{i, j}] = label
}

func (sg *SliceGraph) Directed() bool { return sg.directed }
func (sg *SliceGraph) NodeCount() int { return len(sg.out) }

func (sg *SliceGraph) NodeLabel(i int) interface{} {
	if sg.nodeLabels == nil {
		return nil
	}
	return sg.nodeLabels[i]
}

func (sg *SliceGraph) HasEdge(i, j int) bool {
	for _, x := range sg.out[i] {
		if x == j {
			return true
		}
	}
	return false
}

func (sg *SliceGraph) EdgeLabel(i, j int) interface{} { return sg.edgeLabels[[2]int{i, j}] }
func (sg *SliceGraph) OutNeighbors(i int) []int       { return sg.out[i] }
func (sg *SliceGraph) InNeighbors(i int) []int        { return sg.in[i] }
