package main

import (
	"github.com/spf13/cobra"
)

// Exit codes, named rather than bare integers per the CLI convention the
// demo is patterned on.
const (
	exitSuccess = 0
	exitFailure = 1
	exitBadArgs = 2
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "localsearch-demo",
	Short: "Drive the localsearch engine against the bitflip toy problem",
	Long: `localsearch-demo exercises the localsearch framework's engine, runner
and solver layers against the bitflip toy problem (examples/bitflip).

It has three subcommands:

  solve            run a single search and print the best state found
  describe-params  list every tunable parameter a runner/solver exposes
  serve             run a search while streaming its progress over a websocket`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file overriding parameter defaults")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(describeParamsCmd)
	rootCmd.AddCommand(serveCmd)
}
