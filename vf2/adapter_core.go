package vf2

import "github.com/katalvlaran/lvlath/core"

// CoreAdapter presents a *core.Graph as a vf2.Graph, assigning each vertex ID
// a dense index via core.Graph.Vertices()'s lexicographic order (see
// core/methods_vertices.go). The snapshot is taken once at construction; a
// CoreAdapter does not observe later mutations of the wrapped *core.Graph.
type CoreAdapter struct {
	directed bool
	ids      []string
	labels   []interface{}
	out      [][]int
	in       [][]int
	edgeLbl  map[[2]int]interface{}
}

// NewCoreAdapter builds a CoreAdapter from g. Complexity: O(V log V + E).
func NewCoreAdapter(g *core.Graph) *CoreAdapter {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	n := len(ids)
	a := &CoreAdapter{
		directed: g.Directed(),
		ids:      ids,
		labels:   make([]interface{}, n),
		out:      make([][]int, n),
		in:       make([][]int, n),
		edgeLbl:  make(map[[2]int]interface{}),
	}
	for i, id := range ids {
		lbl, _ := g.NodeLabel(id)
		a.labels[i] = lbl
	}

	for _, e := range g.Edges() {
		fi, ti := index[e.From], index[e.To]
		a.link(fi, ti, e.Label)
		if !e.Directed && fi != ti {
			a.link(ti, fi, e.Label)
		}
	}

	return a
}

// link records a directed arc fi->ti, first-writer-wins on the label if a
// parallel edge already recorded one (multigraph policy: existence, not
// count — see adapter_core_test.go's multi-edge case).
func (a *CoreAdapter) link(fi, ti int, label interface{}) {
	key := [2]int{fi, ti}
	if _, exists := a.edgeLbl[key]; !exists {
		a.edgeLbl[key] = label
		a.out[fi] = append(a.out[fi], ti)
		a.in[ti] = append(a.in[ti], fi)
	}
}

func (a *CoreAdapter) Directed() bool          { return a.directed }
func (a *CoreAdapter) NodeCount() int          { return len(a.ids) }
func (a *CoreAdapter) NodeLabel(i int) interface{} { return a.labels[i] }

func (a *CoreAdapter) HasEdge(i, j int) bool {
	_, ok := a.edgeLbl[[2]int{i, j}]
	return ok
}

func (a *CoreAdapter) EdgeLabel(i, j int) interface{} {
	return a.edgeLbl[[2]int{i, j}]
}

func (a *CoreAdapter) OutNeighbors(i int) []int { return a.out[i] }
func (a *CoreAdapter) InNeighbors(i int) []int  { return a.in[i] }

// VertexID returns the original core.Graph vertex ID for dense index i, for
// translating a mapping produced by the engine back to caller-facing IDs.
func (a *CoreAdapter) VertexID(i int) string { return a.ids[i] }
