// Package engine declares the generic, per-problem context contracts every
// other package in this module is written against: SolutionManager,
// CostComponent, DeltaCostComponent, NeighborhoodExplorer and
// ProhibitionManager.
//
// The original design (EasyLocal++) expresses these as a deep templated
// class hierarchy parameterized on an Input/State/Move triple. Per Design
// Notes 9(a) this collapses to two orthogonal Go idioms:
//
//   - a per-problem context bundle threaded as type parameters
//     [I, S, M any] on every interface and generic function in this
//     module (I = Input, S = State, M = Move);
//   - behavior contracts as ordinary Go interfaces, with a Base struct per
//     contract that a concrete problem embeds to get default method
//     bodies for free, completing only the methods the spec marks
//     mandatory (RandomState, Inverse, ComputeCost, ...).
//
// Cost contributions are monomorphized to float64 throughout (not a further
// type parameter): every numeric cost example in the corpus (tsp, dtw)
// already standardizes on float64, and a generic CostT would force every
// caller of this package to propagate a fifth type parameter for no
// observed benefit.
package engine
