package vf2

import "github.com/emirpasic/gods/stacks/arraystack"

// searchFrame is one level of the (conceptually recursive) DFS walk,
// reified so the lazy Iterator can suspend between matches instead of
// materializing the whole search tree. idx is the index of the next
// candidate to try; candidates[idx-1] (once tried) is the node currently
// pushed into the shared State, if any.
type searchFrame struct {
	pivot      int
	candidates []int
	idx        int
}

// Iterator walks the VF2 search tree one match at a time. A single State
// and an explicit stack of searchFrame values stand in for the call stack
// of a recursive walk, giving Next/NextRef a genuine suspend point at every
// match instead of requiring a goroutine.
type Iterator struct {
	st    *State
	cfg   *matchConfig
	stack *arraystack.Stack
	stats Stats

	done    bool
	started bool

	// zeroQuery is set when the query graph has zero nodes: the engine
	// special-cases this to emit exactly one empty mapping (the vacuously
	// true case) rather than running pivot selection against an empty
	// domain.
	zeroQuery   bool
	zeroEmitted bool
}

func newIterator(q, d *compiledGraph, cfg *matchConfig) *Iterator {
	return &Iterator{
		st:        newState(q, d),
		cfg:       cfg,
		stack:     arraystack.New(),
		zeroQuery: q.n == 0,
	}
}

// emptyIterator produces an iterator that never yields a match, used for
// the n > m and (isomorphism) n != m preflight cases.
func emptyIterator() *Iterator {
	return &Iterator{done: true}
}

// Next returns an owning copy of the next mapping, or (nil, false) once the
// search is exhausted. The returned slice is safe to retain.
func (it *Iterator) Next() ([]int, bool) {
	if !it.advance() {
		return nil, false
	}
	out := make([]int, len(it.st.mapQtoD))
	copy(out, it.st.mapQtoD)
	return out, true
}

// NextRef returns the current mapping as a view into the iterator's
// internal buffer. The slice is only valid until the next call to Next,
// NextRef, or Close.
func (it *Iterator) NextRef() ([]int, bool) {
	if !it.advance() {
		return nil, false
	}
	return it.st.mapQtoD, true
}

// Stats returns a snapshot of the diagnostics collected so far.
func (it *Iterator) Stats() Stats { return it.stats }

// Close marks the iterator exhausted. Safe to call multiple times; it does
// not need to release any OS resources, but matches the Close idiom used
// elsewhere for resource-scoped consumption.
func (it *Iterator) Close() { it.done = true }

// advance runs the search until a complete mapping is on display (true) or
// the tree is exhausted (false).
func (it *Iterator) advance() bool {
	if it.done {
		return false
	}

	if it.zeroQuery {
		if it.zeroEmitted {
			it.done = true
			return false
		}
		it.zeroEmitted = true
		it.stats.MatchesEmitted++
		return true
	}

	if it.started && it.st.depth == it.st.q.n {
		it.undoTop()
	}
	it.started = true

	for {
		fr, ok := it.top()
		if !ok {
			if it.st.depth != 0 {
				it.done = true
				return false
			}
			nf, hasNF := it.buildFrame()
			if !hasNF {
				it.done = true
				return false
			}
			it.stack.Push(nf)
			continue
		}

		if fr.idx >= len(fr.candidates) {
			it.stack.Pop()
			if it.st.depth == 0 {
				it.done = true
				return false
			}
			it.undoTop()
			continue
		}

		j := fr.candidates[fr.idx]
		fr.idx++
		it.stats.FeasibilityTests++
		if !feasible(it.st, it.cfg, fr.pivot, j) {
			continue
		}

		it.st.push(fr.pivot, j)
		if it.st.depth == it.st.q.n {
			it.stats.MatchesEmitted++
			return true
		}

		nf, hasNF := it.buildFrame()
		if !hasNF {
			it.st.pop(fr.pivot, j)
			continue
		}
		it.stack.Push(nf)
	}
}

func (it *Iterator) top() (*searchFrame, bool) {
	v, ok := it.stack.Peek()
	if !ok {
		return nil, false
	}
	return v.(*searchFrame), true
}

// undoTop pops the push that led to the frame currently on top of the
// stack, using the candidate it last took.
func (it *Iterator) undoTop() {
	fr, ok := it.top()
	if !ok {
		return
	}
	j := fr.candidates[fr.idx-1]
	it.st.pop(fr.pivot, j)
}

func (it *Iterator) buildFrame() (*searchFrame, bool) {
	pivot, candidates, ok := pivotAndCandidates(it.st)
	if !ok {
		return nil, false
	}
	return &searchFrame{pivot: pivot, candidates: candidates}, true
}
