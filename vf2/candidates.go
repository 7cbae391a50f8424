package vf2

// pivotAndCandidates implements the three-step pivot rule:
//
//  1. If some unmapped query node is terminal-out AND some unmapped data
//     node is terminal-out, pick the lowest-index such query node as pivot
//     and every unmapped terminal-out data node as the candidate set.
//  2. Else the same test against the terminal-in sets.
//  3. Else pick the lowest-index unmapped query node as pivot and every
//     unmapped data node as the candidate set.
//
// Returns ok == false only when every query node is already mapped (the
// caller is then at a complete match).
func pivotAndCandidates(st *State) (pivot int, candidates []int, ok bool) {
	if p, has := firstUnmapped(st.tOutQ, st.mapQtoD); has {
		if cs := allUnmapped(st.tOutD, st.mapDtoQ); len(cs) > 0 {
			return p, cs, true
		}
	}
	if p, has := firstUnmapped(st.tInQ, st.mapQtoD); has {
		if cs := allUnmapped(st.tInD, st.mapDtoQ); len(cs) > 0 {
			return p, cs, true
		}
	}
	p, has := firstUnmapped(nil, st.mapQtoD)
	if !has {
		return 0, nil, false
	}
	return p, allUnmapped(nil, st.mapDtoQ), true
}

// firstUnmapped returns the smallest index x with mapped[x] == -1 and, when
// terminal is non-nil, terminal[x] != -1.
func firstUnmapped(terminal, mapped []int) (int, bool) {
	for x := 0; x < len(mapped); x++ {
		if mapped[x] != -1 {
			continue
		}
		if terminal != nil && terminal[x] == -1 {
			continue
		}
		return x, true
	}
	return 0, false
}

// allUnmapped returns every index x with mapped[x] == -1 and, when terminal
// is non-nil, terminal[x] != -1, in ascending order.
func allUnmapped(terminal, mapped []int) []int {
	var out []int
	for x := 0; x < len(mapped); x++ {
		if mapped[x] != -1 {
			continue
		}
		if terminal != nil && terminal[x] == -1 {
			continue
		}
		out = append(out, x)
	}
	return out
}
