// Package cost defines the multi-component cost structure shared by every
// local-search module: neighborhood explorers, runners, kickers and solvers
// all compare candidate solutions through a cost.Structure rather than a
// bare scalar.
//
// A Structure separates hard (feasibility) contributions from soft
// (objective) contributions so that runners can prioritize feasibility
// lexicographically without the caller hand-rolling a penalty scale.
//
//	total == HardWeight*violations + objective
//	violations == sum of components[i] where component i is hard
//	objective  == sum of components[i] where component i is soft
//
// Two comparison regimes are supported: the default scalar comparison
// (Weighted when both operands carry one, else Total) and a hierarchical,
// component-wise lexicographic comparison via CompareHierarchical.
package cost
