package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the solution cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached solutions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCacheList,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached solution",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

var cacheLimit int

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheListCmd, cacheClearCmd)
	cacheListCmd.Flags().IntVarP(&cacheLimit, "limit", "n", 20, "Maximum number of solutions to list")
}

func openCache(cmd *cobra.Command) (*storage.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open solution cache: %w", err)
	}
	return db, nil
}

func runCacheList(cmd *cobra.Command, args []string) error {
	db, err := openCache(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolutionRepository(db)
	total, err := repo.Count()
	if err != nil {
		return err
	}
	records, err := repo.List(cacheLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, statusStyle.Render(fmt.Sprintf("%d cached solutions in %s", total, db.Path())))
	for _, r := range records {
		moves := pocketcube.FormatMoves(r.Moves)
		if moves == "" {
			moves = "-"
		}
		fmt.Fprintf(out, "%s  %s  %2d  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.State, len(r.Moves), moves)
	}
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	db, err := openCache(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := storage.NewSolutionRepository(db).Clear()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached solutions\n", removed)
	return nil
}
