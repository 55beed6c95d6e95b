// Package multimodal composes several engine.NeighborhoodExplorer
// constituents of possibly-different move types into a single composite
// explorer, per the two schemes the spec requires:
//
//   - SetUnion: exactly one constituent is active at a time; enumeration
//     exhausts each constituent's neighborhood in turn before moving to
//     the next.
//   - CartesianProduct: every constituent is simultaneously active; the
//     composite move applies all of them, and enumeration nests loops
//     (inner-first) with full backtracking.
//
// Tuple-dispatch over a variadic template becomes, in Go: (i) a
// constituent-erasure adapter (Wrap) producing a single tagged move (Move,
// an active index plus an interface{} slot) for SetUnion, since a
// heterogeneous tuple can't be typed without code generation, and (ii) a
// small fixed-arity Cartesian2/Cartesian3 pair for the product case,
// bounded at arity 3 to match the trimodal combination the original
// bidirectional-edge kicker used.
package multimodal
