// File: bimodal.go
// Role: BimodalKicker (supplemented feature, grounded on original_source's
// src/kickers/BimodalKicker.hh): a convenience constructor fixing a
// Kicker's neighborhood to a two-constituent Cartesian product, not a
// distinct algorithm - the original factors it the same way, as sugar over
// the general Kicker.
package kicker

import (
	"github.com/katalvlaran/localsearch/engine"
	"github.com/katalvlaran/localsearch/multimodal"
)

// NewBimodal builds a Kicker of length l over the Cartesian product of
// ne1 and ne2, so each kick step jointly applies one move from each
// constituent.
func NewBimodal[I, S any, M1, M2 comparable](ne1 engine.NeighborhoodExplorer[I, S, M1], ne2 engine.NeighborhoodExplorer[I, S, M2], l int, seed int64) *Kicker[I, S, multimodal.Cartesian2[M1, M2]] {
	product := &multimodal.Product2[I, S, M1, M2]{NE1: ne1, NE2: ne2}
	return New[I, S, multimodal.Cartesian2[M1, M2]](product, l, seed)
}
