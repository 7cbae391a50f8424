package vf2

import "github.com/RoaringBitmap/roaring"

// State is the mutable partial mapping carried down one DFS branch of the
// search. It keeps two parallel representations in lockstep:
//
//   - dense arrays (mapQtoD/mapDtoQ, tOutQ/tInQ/tOutD/tInD) are the source of
//     truth for the pivot rule and for pop's "clear exactly the stamps at the
//     current depth" invariant;
//   - roaring bitmaps (mappedQ/mappedD, termOutQ/termInQ/termOutD/termInD)
//     mirror the same information for O(1)-amortized cardinality queries in
//     feasibility.go.
//
// For an undirected view, a compiledGraph's outAdj and inAdj are identical
// per node, so tOutQ/tInQ (and their data-side counterparts) evolve
// identically — the directed/undirected distinction in the VF2 pivot and
// feasibility rules falls out naturally without a separate code path.
type State struct {
	q, d *compiledGraph

	depth int

	mapQtoD []int
	mapDtoQ []int

	tOutQ []int
	tInQ  []int
	tOutD []int
	tInD  []int

	mappedQ  *roaring.Bitmap
	mappedD  *roaring.Bitmap
	termOutQ *roaring.Bitmap
	termInQ  *roaring.Bitmap
	termOutD *roaring.Bitmap
	termInD  *roaring.Bitmap
}

func newState(q, d *compiledGraph) *State {
	return &State{
		q: q, d: d,
		mapQtoD: filledInts(q.n, -1),
		mapDtoQ: filledInts(d.n, -1),
		tOutQ:   filledInts(q.n, -1),
		tInQ:    filledInts(q.n, -1),
		tOutD:   filledInts(d.n, -1),
		tInD:    filledInts(d.n, -1),

		mappedQ:  roaring.NewBitmap(),
		mappedD:  roaring.NewBitmap(),
		termOutQ: roaring.NewBitmap(),
		termInQ:  roaring.NewBitmap(),
		termOutD: roaring.NewBitmap(),
		termInD:  roaring.NewBitmap(),
	}
}

func filledInts(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// push extends the mapping with (i, j) and stamps newly-reachable terminal
// nodes with the post-increment depth. O(deg(i) + deg(j)), no heap
// allocation.
func (s *State) push(i, j int) {
	s.mapQtoD[i] = j
	s.mapDtoQ[j] = i
	s.mappedQ.Add(uint32(i))
	s.mappedD.Add(uint32(j))
	s.depth++

	stampTerminal(s.q.outAdj[i], s.tOutQ, s.termOutQ, s.depth)
	stampTerminal(s.q.inAdj[i], s.tInQ, s.termInQ, s.depth)
	stampTerminal(s.d.outAdj[j], s.tOutD, s.termOutD, s.depth)
	stampTerminal(s.d.inAdj[j], s.tInD, s.termInD, s.depth)
}

// pop undoes the most recent push(i, j), clearing exactly the terminal
// stamps recorded at the current depth before restoring the mapping.
func (s *State) pop(i, j int) {
	unstampTerminal(s.q.outAdj[i], s.tOutQ, s.termOutQ, s.depth)
	unstampTerminal(s.q.inAdj[i], s.tInQ, s.termInQ, s.depth)
	unstampTerminal(s.d.outAdj[j], s.tOutD, s.termOutD, s.depth)
	unstampTerminal(s.d.inAdj[j], s.tInD, s.termInD, s.depth)

	s.depth--
	s.mapQtoD[i] = -1
	s.mapDtoQ[j] = -1
	s.mappedQ.Remove(uint32(i))
	s.mappedD.Remove(uint32(j))
}

func stampTerminal(nbrs []int, depthArr []int, bm *roaring.Bitmap, depth int) {
	for _, x := range nbrs {
		if depthArr[x] == -1 {
			depthArr[x] = depth
			bm.Add(uint32(x))
		}
	}
}

func unstampTerminal(nbrs []int, depthArr []int, bm *roaring.Bitmap, depth int) {
	for _, x := range nbrs {
		if depthArr[x] == depth {
			depthArr[x] = -1
			bm.Remove(uint32(x))
		}
	}
}
