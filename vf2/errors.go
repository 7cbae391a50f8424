package vf2

import "errors"

// Sentinel errors returned by builder construction. The engine never panics
// on data-dependent conditions.
var (
	// ErrDirectednessMismatch indicates the query and data graphs disagree on
	// Directed(). A builder constructed from mismatched graphs is rejected
	// up front rather than producing a confusing empty result set.
	ErrDirectednessMismatch = errors.New("vf2: query and data graphs have mismatched directedness")

	// ErrGraphNil indicates a nil Graph was passed to a builder constructor.
	ErrGraphNil = errors.New("vf2: graph is nil")
)
