// File: param_helpers.go
// Role: shared helpers for building each concrete runner's param.Box,
// grounded on the same namespaced-flag shape as the param package.
package runner

import "github.com/katalvlaran/localsearch/param"

// newBox constructs an empty param.Box namespaced under prefix; each
// runner's constructor then registers its own tunables into it.
func newBox(prefix string) *param.Box {
	return param.NewBox(prefix)
}
