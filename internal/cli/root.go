// Package cli implements the command-line interface for pocketcube.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/config"
	"github.com/SeamusWaldron/pocketcube/internal/solver"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	speed   float64
	verbose bool
	noCache bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "pocketcube",
	Short: "2x2x2 cube solver and player",
	Long: `pocketcube - solve, scramble and animate the 2x2x2 pocket cube.

States are 24 colour codes (W O G R Y B) grouped by face in the order
U, L, F, R, D, B, four per face. The orange, yellow and blue corner
must sit at down-left-back.

Settings can also come from the environment: POCKETCUBE_SPEED,
POCKETCUBE_FRAME_INTERVAL, POCKETCUBE_SCRAMBLE_MOVES, POCKETCUBE_DB and
POCKETCUBE_NO_CACHE.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Solution cache path (default: ~/.pocketcube/pocketcube.db)")
	rootCmd.PersistentFlags().Float64Var(&speed, "speed", 1, "Animation speed multiplier")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Solve without the solution cache")
}

// loadConfig reads the environment and applies any flags given on the
// command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = dbPath
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("no-cache") {
		cfg.NoCache = noCache
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns a stderr logger in verbose mode and a silent one
// otherwise.
func newLogger(cmd *cobra.Command) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "pocketcube: ", log.Ltime|log.Lmicroseconds)
}

// openSolver builds the solver, backed by the solution cache unless it is
// disabled. The returned close function is never nil.
func openSolver(cfg config.Config, logger *log.Logger, opts ...solver.Option) (pocketcube.Solver, func() error) {
	opts = append([]solver.Option{
		solver.WithScrambleMoves(cfg.ScrambleMoves),
		solver.WithLogger(logger),
	}, opts...)
	base := solver.New(opts...)
	if cfg.NoCache {
		return base, func() error { return nil }
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Printf("solution cache disabled: %v", err)
		return base, func() error { return nil }
	}
	return solver.NewCached(base, storage.NewSolutionRepository(db), logger), db.Close
}

// readState joins args and strips everything outside the colour alphabet.
func readState(args []string) (pocketcube.State, error) {
	state := pocketcube.Sanitize(strings.Join(args, ""))
	if err := state.Validate(); err != nil {
		return "", err
	}
	return state, nil
}
