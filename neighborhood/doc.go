// Package neighborhood implements the four composite move selectors
// specified over engine.NeighborhoodExplorer: SelectFirst, SelectBest,
// RandomFirst and RandomBest. Each is a free function generic over the
// problem's [I, S, M] triple, layered purely on the primitive
// FirstMove/NextMove/RandomMove/MakeMove contract so any
// engine.NeighborhoodExplorer implementation gets all four for free.
//
// The scanning/early-restart shape mirrors the teacher's tsp/two_opt.go:
// a deterministic loop that tracks an explored counter, restarts on an
// accepted candidate, and falls through to "no candidate" when
// enumeration wraps without success.
package neighborhood
