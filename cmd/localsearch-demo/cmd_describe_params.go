package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/localsearch/examples/bitflip"
	"github.com/katalvlaran/localsearch/param"
	"github.com/katalvlaran/localsearch/runner"
	"github.com/katalvlaran/localsearch/solver"
)

var describeParamsJSON bool

var describeParamsCmd = &cobra.Command{
	Use:   "describe-params",
	Short: "List every tunable parameter the hill climbing runner and the multistart and tokenring solvers expose",
	Args:  cobra.NoArgs,
	Run:   runDescribeParamsCommand,
}

func init() {
	describeParamsCmd.Flags().BoolVar(&describeParamsJSON, "json", false, "print as JSON instead of text")
}

func runDescribeParamsCommand(cmd *cobra.Command, args []string) {
	ne := bitflip.NewFlipNE()
	hc := runner.NewHillClimbing[bitflip.Input, []bool, int](ne, 1, 0)
	entry := func() solver.RunnerEntry[bitflip.Input, []bool, int] {
		return solver.RunnerEntry[bitflip.Input, []bool, int]{Runner: &runner.Base[bitflip.Input, []bool, int]{}, Strategy: hc}
	}

	sm := bitflip.NewManager()
	ms := solver.NewMultiStart[bitflip.Input, []bool, int](sm, []solver.RunnerEntry[bitflip.Input, []bool, int]{entry()})
	tr := solver.NewTokenRing[bitflip.Input, []bool, int](sm, []solver.RunnerEntry[bitflip.Input, []bool, int]{entry()})

	boxes := []*param.Box{hc.Params, ms.Params, tr.Params}

	if describeParamsJSON {
		out := map[string]interface{}{}
		var b *param.Box
		for _, b = range boxes {
			out[b.Prefix] = b.ToJSON()
		}
		_ = outputJSON(out)
		return
	}

	var b *param.Box
	for _, b = range boxes {
		fmt.Printf("%s::\n", b.Prefix)
		var v param.Value
		for _, v = range b.Values() {
			fmt.Printf("  %-28s %v\t%s\n", v.Flag(), v.ToJSON(), v.Description())
		}
	}
}
