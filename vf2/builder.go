package vf2

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

type problemKind int

const (
	kindIsomorphism problemKind = iota
	kindSubgraph
	kindInducedSubgraph
)

// Builder configures and runs one enumeration. Built by Isomorphisms,
// SubgraphIsomorphisms, or InducedSubgraphIsomorphisms;
// NodeEq/EdgeEq override the default label predicate before consumption via
// First, All, or Iter.
type Builder struct {
	query, data Graph
	kind        problemKind
	nodeEq      func(a, b interface{}) bool
	edgeEq      func(a, b interface{}) bool
}

func newBuilder(query, data Graph, kind problemKind) (*Builder, error) {
	if query == nil || data == nil {
		return nil, ErrGraphNil
	}
	if query.Directed() != data.Directed() {
		return nil, fmt.Errorf("vf2: %w", ErrDirectednessMismatch)
	}
	return &Builder{
		query:  query,
		data:   data,
		kind:   kind,
		nodeEq: defaultLabelEq,
		edgeEq: defaultLabelEq,
	}, nil
}

// Isomorphisms enumerates bijections between query and data that preserve
// edges (and non-edges) in both directions. Matches are only possible when
// the two graphs have equal node counts.
func Isomorphisms(query, data Graph) (*Builder, error) {
	return newBuilder(query, data, kindIsomorphism)
}

// SubgraphIsomorphisms enumerates injective mappings from query into data
// such that every query edge has a corresponding data edge (monomorphism);
// extra data edges between matched nodes are allowed.
func SubgraphIsomorphisms(query, data Graph) (*Builder, error) {
	return newBuilder(query, data, kindSubgraph)
}

// InducedSubgraphIsomorphisms enumerates injective mappings from query into
// data such that a query edge exists between two nodes iff the
// corresponding data edge exists between their images.
func InducedSubgraphIsomorphisms(query, data Graph) (*Builder, error) {
	return newBuilder(query, data, kindInducedSubgraph)
}

// defaultLabelEq is the default NodeEq/EdgeEq predicate: deep equality via
// go-cmp, so slice/map/struct-valued labels compare correctly without
// callers reaching for reflect.DeepEqual themselves. cmp.Equal panics on
// struct labels with unexported fields and no registered comparer; that
// case falls back to reflect.DeepEqual so a well-formed label type never
// turns a match attempt into a runtime panic. Callers with such label
// types needing field-by-field comparison semantics should still prefer
// NodeEq/EdgeEq with an explicit cmp.Comparer/cmpopts.AllowUnexported.
func defaultLabelEq(a, b interface{}) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return cmp.Equal(a, b)
}

// NodeEq overrides the node-label equivalence predicate. The default is
// deep equality.
func (b *Builder) NodeEq(fn func(a, b interface{}) bool) *Builder {
	b.nodeEq = fn
	return b
}

// EdgeEq overrides the edge-label equivalence predicate. The default is
// deep equality.
func (b *Builder) EdgeEq(fn func(a, b interface{}) bool) *Builder {
	b.edgeEq = fn
	return b
}

func (b *Builder) config() *matchConfig {
	cfg := &matchConfig{nodeEq: b.nodeEq, edgeEq: b.edgeEq}
	switch b.kind {
	case kindIsomorphism:
		cfg.reverseCheck = true
		cfg.strictCard = true
	case kindInducedSubgraph:
		cfg.reverseCheck = true
		cfg.strictCard = false
	case kindSubgraph:
		cfg.reverseCheck = false
		cfg.strictCard = false
	}
	return cfg
}

// Iter returns a lazy iterator over matches, in deterministic DFS order.
// Callers must call Close when done (or drain it to exhaustion).
func (b *Builder) Iter() *Iterator {
	q := compile(b.query)
	d := compile(b.data)

	if b.kind == kindIsomorphism && q.n != d.n {
		return emptyIterator()
	}
	if q.n > d.n {
		return emptyIterator()
	}

	return newIterator(q, d, b.config())
}

// First returns the first match, if any, under the same deterministic order
// as Iter/All.
func (b *Builder) First() ([]int, bool) {
	it := b.Iter()
	defer it.Close()
	return it.Next()
}

// All materializes every match in deterministic DFS order. Equivalent to
// draining Iter(), so First/All/Iter agree on both content and order by
// construction.
func (b *Builder) All() [][]int {
	it := b.Iter()
	defer it.Close()

	var out [][]int
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, m)
	}
	return out
}
