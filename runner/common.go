// File: common.go
// Role: small pieces shared by several concrete runners: the universal
// max_evaluations parameter, and the strictly-improving and non-worsening
// accept predicates the descent and hill climbing runners build on.
package runner

import (
	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/param"
)

const flagMaxEvaluations = "max_evaluations"

// registerMaxEvaluations adds the universal max_evaluations parameter
// (default: no cap) to box.
func registerMaxEvaluations(box *param.Box) *param.IntParam {
	p := param.NewInt(flagMaxEvaluations, "hard cap on delta evaluations (0 = unbounded)", 0)
	box.Register(p)
	return p
}

func strictlyImproving[M any](_ M, c cost.Structure) bool { return c.Total < 0 }

func nonWorsening[M any](_ M, c cost.Structure) bool { return c.Total <= 0 }
