// Package lvlath is an in-memory graph toolkit built around a thread-safe
// core container and a VF2-based subgraph/graph isomorphism engine.
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	builder/ — deterministic graph constructors (cycles, paths, …), used
//	           throughout the test suite as fixtures
//	vf2/     — subgraph isomorphism, induced subgraph isomorphism, and graph
//	           isomorphism enumeration over any Graph-shaped adapter
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
package lvlath
