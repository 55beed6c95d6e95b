// Package kicker implements Component K: k-step compound-move search used
// for intensification/diversification once a runner has settled at a
// local optimum. A Kicker composes L consecutive moves drawn from a single
// NeighborhoodExplorer into an ordered Kick, optionally constrained by a
// relatedness predicate between consecutive moves, and exposes exhaustive
// and sampling selectors over the resulting space of kicks.
//
// Grounded on the same backtracking shape multimodal.Product2/Product3 use
// for nested neighborhood enumeration (multimodal/cartesian.go), generalized
// from a fixed small arity to an arbitrary depth L.
package kicker
