package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/examples/bitflip"
	"github.com/katalvlaran/localsearch/runner"
	"github.com/katalvlaran/localsearch/solver"
)

var (
	solveN       int
	solveSeed    int64
	solveMaxIdle int
	solveSolver  string
	solveRunners int
	solveTimeout time.Duration
	solveAlpha   float64
	solveK       int
	solveJSON    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run a single search against the bitflip problem and print the best state found",
	Args:  cobra.NoArgs,
	Run:   runSolveCommand,
}

func init() {
	solveCmd.Flags().IntVar(&solveN, "n", 32, "bit vector length")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 1, "RNG seed for the runner(s)")
	solveCmd.Flags().IntVar(&solveMaxIdle, "max-idle", 200, "max_idle_iterations for the hill climbing runner")
	solveCmd.Flags().StringVar(&solveSolver, "solver", "simple", "solver: simple, multistart, tokenring, vnd, grasp")
	solveCmd.Flags().IntVar(&solveRunners, "runners", 3, "number of runner clones for multistart/tokenring/vnd/grasp")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "bound the whole solve call; zero means unbounded")
	solveCmd.Flags().Float64Var(&solveAlpha, "alpha", 0.3, "GRASP greediness parameter")
	solveCmd.Flags().IntVar(&solveK, "k", 4, "GRASP restricted candidate list size")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "print the result as JSON instead of a log summary")
}

func buildHillClimbingEntry(ne *bitflip.FlipNE, seed int64, overrides map[string]map[string]interface{}) solver.RunnerEntry[bitflip.Input, []bool, int] {
	hc := runner.NewHillClimbing[bitflip.Input, []bool, int](ne, solveMaxIdle, seed)
	_ = applyOverrides(hc.Params, overrides)
	return solver.RunnerEntry[bitflip.Input, []bool, int]{
		Runner:   &runner.Base[bitflip.Input, []bool, int]{},
		Strategy: hc,
	}
}

func runSolveCommand(cmd *cobra.Command, args []string) {
	runID := uuid.New()
	sm := bitflip.NewManager()
	ne := bitflip.NewFlipNE()

	overrides, err := loadParamOverrides(cfgPath)
	if err != nil {
		failSolve(runID, "loading config", err)
	}

	entries := make([]solver.RunnerEntry[bitflip.Input, []bool, int], 0, solveRunners)
	var i int
	for i = 0; i < solveRunners; i++ {
		entries = append(entries, buildHillClimbingEntry(ne, solveSeed+int64(i), overrides))
	}

	start := time.Now()
	state, c, solveErr := dispatchSolve(sm, entries)
	elapsed := time.Since(start)

	if solveErr != nil {
		failSolve(runID, "solve", solveErr)
	}

	if solveJSON {
		_ = outputJSON(map[string]interface{}{
			"run_id":     runID.String(),
			"solver":     solveSolver,
			"n":          solveN,
			"best_cost":  c.Total,
			"best_state": bitflip.FormatState(state),
			"elapsed_ms": elapsed.Milliseconds(),
		})
		return
	}

	slog.Info("solve complete",
		"run_id", runID.String(),
		"solver", solveSolver,
		"n", solveN,
		"best_cost", c.Total,
		"elapsed", elapsed,
	)
	fmt.Printf("best state: %s\nbest cost:  %s\n", bitflip.FormatState(state), c.String())
}

func dispatchSolve(sm *bitflip.Manager, entries []solver.RunnerEntry[bitflip.Input, []bool, int]) ([]bool, cost.Structure, error) {
	in := bitflip.Input{N: solveN}

	switch solveSolver {
	case "simple":
		s := solver.NewSimple[bitflip.Input, []bool, int](sm, entries[0].Runner, entries[0].Strategy)
		s.RandomInitialState = true
		s.Timeout = solveTimeout
		return s.Solve(in)
	case "multistart":
		ms := solver.NewMultiStart[bitflip.Input, []bool, int](sm, entries)
		ms.Timeout = solveTimeout
		return ms.Solve(in)
	case "tokenring":
		tr := solver.NewTokenRing[bitflip.Input, []bool, int](sm, entries)
		tr.RandomInitialState = true
		tr.Timeout = solveTimeout
		return tr.Solve(in)
	case "vnd":
		vnd := solver.NewVND[bitflip.Input, []bool, int](sm, entries)
		vnd.RandomInitialState = true
		vnd.Timeout = solveTimeout
		return vnd.Solve(in)
	case "grasp":
		g := solver.NewGRASP[bitflip.Input, []bool, int](sm, entries, solveAlpha, solveK)
		g.Timeout = solveTimeout
		return g.Solve(in)
	default:
		var zero []bool
		return zero, cost.Structure{}, fmt.Errorf("unknown solver %q", solveSolver)
	}
}

func failSolve(runID uuid.UUID, stage string, err error) {
	if solveJSON {
		outputErrorJSON(fmt.Errorf("%s: %w (run %s)", stage, err, runID))
	} else {
		outputError(stage, err)
	}
	os.Exit(exitFailure)
}
