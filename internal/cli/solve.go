package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/view"
)

var solveCmd = &cobra.Command{
	Use:   "solve <state>",
	Short: "Find an optimal solution for a cube state",
	Long: `Solve a cube state with the fewest F, U and R turns.

The state may be split across several arguments and may use lower case;
everything outside the colour alphabet is ignored.

Example:
  pocketcube solve WOGW BOOO GYGG RWRW YRYY BRBB`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

var solveSteps bool

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveSteps, "steps", false, "Print the state after every move")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	state, err := readState(args)
	if err != nil {
		return err
	}

	s, closeSolver := openSolver(cfg, newLogger(cmd))
	defer closeSolver()

	sol, err := pocketcube.BuildSolution(s, state)
	if err != nil {
		return err
	}

	printSolution(cmd, state, sol, solveSteps)
	return nil
}

func printSolution(cmd *cobra.Command, state pocketcube.State, sol pocketcube.Solution, steps bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, view.Net(state))
	fmt.Fprintln(out)

	moves := sol.Moves()
	if len(moves) == 0 {
		fmt.Fprintln(out, solvedStyle.Render("Already solved"))
		return
	}

	fmt.Fprintf(out, "Solution (%d moves): %s\n", len(moves), moveStyle.Render(pocketcube.FormatMoves(moves)))
	if !steps {
		return
	}
	fmt.Fprintln(out)
	for i, t := range sol {
		fmt.Fprintf(out, "%2d. %-6s %s\n", i+1, t.Label(), t.End.Grouped())
	}
}
