package vf2

// matchConfig holds the three problem-kind parameters plus the
// caller-configurable label predicates.
type matchConfig struct {
	// reverseCheck requires every data-side edge between already-mapped
	// neighbors to have a query-side counterpart (isomorphism and induced
	// subgraph isomorphism). False for plain subgraph isomorphism
	// (monomorphism), which allows extra data edges.
	reverseCheck bool

	// strictCard requires terminal/new-node cardinalities to match exactly
	// rather than satisfy query <= data (isomorphism only).
	strictCard bool

	nodeEq func(a, b interface{}) bool
	edgeEq func(a, b interface{}) bool
}

// feasible checks candidate pair (i, j): semantic label agreement, syntactic
// edge consistency with the current partial map (folding in self-loop
// handling), and the two cardinality look-ahead rules.
func feasible(st *State, cfg *matchConfig, i, j int) bool {
	q, d := st.q, st.d

	if !cfg.nodeEq(q.nodeLabel[i], d.nodeLabel[j]) {
		return false
	}
	if !consistent(st, cfg, i, j) {
		return false
	}
	if !cardinalityOK(st, cfg, i, j) {
		return false
	}

	return true
}

// consistent checks rule 1: every edge between i and an already-mapped
// query neighbor must have a corresponding, label-equal data edge between j
// and the matched partner, in both directions; under reverseCheck, the
// converse must also hold (no extra data edge between matched partners).
func consistent(st *State, cfg *matchConfig, i, j int) bool {
	q, d := st.q, st.d

	qLoop, dLoop := q.hasEdgeAt(i, i), d.hasEdgeAt(j, j)
	switch {
	case qLoop && !dLoop:
		return false
	case qLoop && dLoop:
		if !cfg.edgeEq(q.edgeLabelAt(i, i), d.edgeLabelAt(j, j)) {
			return false
		}
	case !qLoop && dLoop && cfg.reverseCheck:
		return false
	}

	for _, ip := range q.outAdj[i] {
		if ip == i || st.mapQtoD[ip] == -1 {
			continue
		}
		jp := st.mapQtoD[ip]
		if !d.hasEdgeAt(j, jp) || !cfg.edgeEq(q.edgeLabelAt(i, ip), d.edgeLabelAt(j, jp)) {
			return false
		}
	}
	for _, ip := range q.inAdj[i] {
		if ip == i || st.mapQtoD[ip] == -1 {
			continue
		}
		jp := st.mapQtoD[ip]
		if !d.hasEdgeAt(jp, j) || !cfg.edgeEq(q.edgeLabelAt(ip, i), d.edgeLabelAt(jp, j)) {
			return false
		}
	}

	if !cfg.reverseCheck {
		return true
	}

	for _, jp := range d.outAdj[j] {
		if jp == j || st.mapDtoQ[jp] == -1 {
			continue
		}
		if !q.hasEdgeAt(i, st.mapDtoQ[jp]) {
			return false
		}
	}
	for _, jp := range d.inAdj[j] {
		if jp == j || st.mapDtoQ[jp] == -1 {
			continue
		}
		if !q.hasEdgeAt(st.mapDtoQ[jp], i) {
			return false
		}
	}

	return true
}

// cardinalityOK implements rules 2 and 3: look-ahead bounds on how many of
// i's (resp. j's) neighbors can still be matched, computed via roaring
// bitmap intersections over the terminal and mapped sets. Terminal sets
// exclude nodes that have since been mapped (a node keeps its depth stamp,
// set at push time, until the push that produced it unwinds — see
// state.go). Without reverseCheck (plain subgraph isomorphism) rule 3
// compares all unmapped neighbors, because a query neighbor outside the
// terminal sets may map onto a terminal data node.
func cardinalityOK(st *State, cfg *matchConfig, i, j int) bool {
	q, d := st.q, st.d

	tOutQ := st.termOutQ.AndNot(st.mappedQ)
	tInQ := st.termInQ.AndNot(st.mappedQ)
	tOutD := st.termOutD.AndNot(st.mappedD)
	tInD := st.termInD.AndNot(st.mappedD)

	if !cmpCard(q.outBM[i].AndCardinality(tOutQ), d.outBM[j].AndCardinality(tOutD), cfg.strictCard) {
		return false
	}
	if !cmpCard(q.inBM[i].AndCardinality(tInQ), d.inBM[j].AndCardinality(tInD), cfg.strictCard) {
		return false
	}

	usedQ := st.mappedQ.Or(st.termOutQ).Or(st.termInQ)
	usedD := st.mappedD.Or(st.termOutD).Or(st.termInD)
	if !cfg.reverseCheck {
		usedQ, usedD = st.mappedQ, st.mappedD
	}

	if !cmpCard(q.outBM[i].AndNotCardinality(usedQ), d.outBM[j].AndNotCardinality(usedD), cfg.strictCard) {
		return false
	}
	if !cmpCard(q.inBM[i].AndNotCardinality(usedQ), d.inBM[j].AndNotCardinality(usedD), cfg.strictCard) {
		return false
	}

	return true
}

func cmpCard(queryCount, dataCount uint64, strict bool) bool {
	if strict {
		return queryCount == dataCount
	}
	return queryCount <= dataCount
}
