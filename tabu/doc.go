// Package tabu provides engine.ProhibitionManager implementations: a
// tenure-based ListManager, a frequency-augmented variant, and a
// shifting-penalty manager that additionally reweights a dynamic cost
// component instead of (or alongside) forbidding moves outright.
//
// Tenure assignment and the manager's private clock are grounded on the
// same randstream derivation the rest of the engine uses, so a tabu
// search's move sampling and its tenure draws never correlate even when
// constructed from a single seed.
package tabu
