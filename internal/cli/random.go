package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/solver"
	"github.com/SeamusWaldron/pocketcube/internal/view"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random solvable state",
	Long: `Scramble the solved cube with random F, U and R turns and print the
resulting state.

Usage:
  pocketcube random                # Print a random state
  pocketcube random --solve        # Also print its solution
  pocketcube random --seed 42      # Repeatable scramble`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

var (
	randomSolve bool
	randomSeed  uint64
)

func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().BoolVar(&randomSolve, "solve", false, "Print the solution too")
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "Random seed (0 picks one)")
}

func runRandom(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var opts []solver.Option
	if randomSeed != 0 {
		opts = append(opts, solver.WithSeed(randomSeed))
	}
	s, closeSolver := openSolver(cfg, newLogger(cmd), opts...)
	defer closeSolver()

	state := s.RandomState()
	if !randomSolve {
		fmt.Fprintln(cmd.OutOrStdout(), state)
		fmt.Fprintln(cmd.OutOrStdout(), view.Net(state))
		return nil
	}

	sol, err := pocketcube.BuildSolution(s, state)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), state)
	printSolution(cmd, state, sol, false)
	return nil
}
