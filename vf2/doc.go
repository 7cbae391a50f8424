// Package vf2 enumerates subgraph isomorphisms between a query graph and a
// data graph using the VF2 algorithm.
//
// Three problem kinds are supported, chosen by which entry point constructs
// the Builder:
//
//   - Isomorphisms: query and data have equal size; a mapping must preserve
//     edges in both directions.
//   - SubgraphIsomorphisms (monomorphism): every query edge has a
//     corresponding data edge; extra data edges between matched nodes are
//     allowed.
//   - InducedSubgraphIsomorphisms: a query edge exists iff the corresponding
//     data edge exists, restricted to matched nodes.
//
// The engine is polymorphic over any type implementing Graph (dense,
// zero-based node identifiers); CoreAdapter and SliceGraph are two ready-made
// adapters. Matching is single-threaded, allocation-light on the hot path,
// and deterministic: two invocations on identical inputs produce identical
// mapping sequences in identical order.
//
// Consumption:
//
//	b, err := vf2.SubgraphIsomorphisms(query, data)
//	if err != nil {
//	    // directedness mismatch between query and data
//	}
//	matches := b.All()
//
//	it := b.Iter()
//	defer it.Close()
//	for {
//	    m, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    // m[i] is the data node matched to query node i
//	}
//
// Complexity: engine setup is O(n + m + |E_q| + |E_d|); enumeration performs
// O(work to next match) per produced mapping in lazy mode.
package vf2
