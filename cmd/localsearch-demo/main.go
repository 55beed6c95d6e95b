// Command localsearch-demo drives the bitflip toy problem (Component's
// worked example) through the engine/runner/solver stack from the command
// line: solve runs a single search, describe-params dumps every tunable
// parameter a runner/solver exposes, and serve streams a running search's
// progress over a websocket for a live dashboard.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}
