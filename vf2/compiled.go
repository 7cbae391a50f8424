package vf2

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// compiledGraph is the engine's internal normalization of a Graph: sorted,
// deduplicated neighbor lists (multi-edge policy: existence, not count — an
// adapter that reports the same neighbor twice collapses to one entry here)
// plus a roaring bitmap per node for O(1)-amortized set-cardinality queries
// during feasibility testing. Built once per Graph at builder consumption
// time (Iter/First/All); never mutated afterward.
type compiledGraph struct {
	directed  bool
	n         int
	nodeLabel []interface{}

	outAdj [][]int
	inAdj  [][]int
	outBM  []*roaring.Bitmap
	inBM   []*roaring.Bitmap

	hasEdge   map[[2]int]struct{}
	edgeLabel map[[2]int]interface{}
}

func compile(g Graph) *compiledGraph {
	n := g.NodeCount()
	cg := &compiledGraph{
		directed:  g.Directed(),
		n:         n,
		nodeLabel: make([]interface{}, n),
		outAdj:    make([][]int, n),
		inAdj:     make([][]int, n),
		outBM:     make([]*roaring.Bitmap, n),
		inBM:      make([]*roaring.Bitmap, n),
		hasEdge:   make(map[[2]int]struct{}),
		edgeLabel: make(map[[2]int]interface{}),
	}

	for i := 0; i < n; i++ {
		cg.nodeLabel[i] = g.NodeLabel(i)
		cg.outBM[i] = roaring.NewBitmap()
		cg.inBM[i] = roaring.NewBitmap()

		out := dedupSorted(g.OutNeighbors(i))
		cg.outAdj[i] = out
		for _, j := range out {
			cg.outBM[i].Add(uint32(j))
			key := [2]int{i, j}
			if _, ok := cg.hasEdge[key]; !ok {
				cg.hasEdge[key] = struct{}{}
				cg.edgeLabel[key] = g.EdgeLabel(i, j)
			}
		}

		in := dedupSorted(g.InNeighbors(i))
		cg.inAdj[i] = in
		for _, j := range in {
			cg.inBM[i].Add(uint32(j))
		}
	}

	return cg
}

func (cg *compiledGraph) hasEdgeAt(i, j int) bool {
	_, ok := cg.hasEdge[[2]int{i, j}]
	return ok
}

func (cg *compiledGraph) edgeLabelAt(i, j int) interface{} {
	return cg.edgeLabel[[2]int{i, j}]
}

// dedupSorted returns a sorted copy of xs with duplicates removed, without
// mutating xs.
func dedupSorted(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	out := cp[:1]
	for _, v := range cp[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
