package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/view"
)

var applyCmd = &cobra.Command{
	Use:   "apply <state> <moves>",
	Short: "Apply a move sequence to a state",
	Long: `Apply moves to a state and print the result. Any of the 18 face turns
may be used.

Example:
  pocketcube apply WWWWOOOOGGGGRRRRYYYYBBBB "R U R' U'"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runApply,
}

var applyPieces bool

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyPieces, "pieces", false, "Print the piece table of the result")
}

func runApply(cmd *cobra.Command, args []string) error {
	state, err := readState(args[:1])
	if err != nil {
		return err
	}
	moves, err := pocketcube.ParseMoves(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	end := pocketcube.ApplyMoves(state, moves)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, end)
	fmt.Fprintln(out, view.Net(end))
	if applyPieces {
		pieces := pocketcube.Pieces(end)
		fmt.Fprintln(out)
		fmt.Fprint(out, view.PieceTable(pieces[:]))
	}
	return nil
}
