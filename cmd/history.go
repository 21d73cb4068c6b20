package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/chriserin/traitseed/internal/config"
	"github.com/chriserin/traitseed/internal/db"
	"github.com/chriserin/traitseed/internal/ui"
)

var (
	historyDriver string
	historyDSN    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded seed runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := *cfg
		c.Database = withDatabase(c.Database, historyDriver, historyDSN)
		return RunHistory(cmd.Context(), cmd.OutOrStdout(), &c)
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyDriver, "driver", "", "sqlite or postgres")
	historyCmd.Flags().StringVar(&historyDSN, "dsn", "", "database connection string")
	rootCmd.AddCommand(historyCmd)
}

func RunHistory(ctx context.Context, w io.Writer, cfg *config.Config) error {
	driver, err := db.ParseDriver(cfg.Database.Driver)
	if err != nil {
		return err
	}

	sqlDB, err := db.Open(ctx, driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	runs, err := db.Runs(ctx, sqlDB)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no seed runs recorded")
		return nil
	}

	for _, r := range runs {
		ui.RunRow(w, shortID(r.ID), r.Slug, r.Dialect, r.QuestionCount, humanize.Time(r.AppliedAt))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
