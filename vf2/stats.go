package vf2

// Stats carries diagnostics about one enumeration run. It replaces logging
// for this package: the engine returns counters instead of printing
// anything, in the same spirit as core.GraphStats.
type Stats struct {
	// FeasibilityTests counts calls to the feasibility test, successful or
	// not.
	FeasibilityTests int64

	// MatchesEmitted counts complete mappings produced so far.
	MatchesEmitted int64
}
