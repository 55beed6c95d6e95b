// Package solver implements Component L: the orchestration layer that
// builds an initial state via the SolutionManager and drives one or more
// Runners to search from it. Simple drives a single runner once;
// MultiStart and TokenRing drive a list of runners in rotation, differing
// in whether the state is re-randomized between passes; VND and GRASP are
// supplemented variants recovered from original_source/.
//
// Per the Open Questions resolution (spec.md section 9, bullet 3), every
// solver here hands its current state to runner.Base.Go by value in/value
// out - no SetState/GetState/GetStateCost interface is introduced.
package solver
