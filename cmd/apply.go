package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chriserin/traitseed/internal/config"
	"github.com/chriserin/traitseed/internal/db"
	"github.com/chriserin/traitseed/internal/seed"
	"github.com/chriserin/traitseed/internal/ui"
)

var (
	applyInput  string
	applyDriver string
	applyDSN    string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Seed the questionnaire directly into a database",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := withOverrides(cfg, applyInput, "", "")
		c.Database = withDatabase(c.Database, applyDriver, applyDSN)
		return RunApply(cmd.Context(), cmd.OutOrStdout(), logger, c)
	},
}

func init() {
	applyCmd.Flags().StringVarP(&applyInput, "input", "i", "", "questionnaire text file")
	applyCmd.Flags().StringVar(&applyDriver, "driver", "", "sqlite or postgres")
	applyCmd.Flags().StringVar(&applyDSN, "dsn", "", "database connection string")
	rootCmd.AddCommand(applyCmd)
}

func withDatabase(base config.DatabaseConfig, driver, dsn string) config.DatabaseConfig {
	if driver != "" {
		base.Driver = driver
	}
	if dsn != "" {
		base.DSN = dsn
	}
	return base
}

// dialectFor picks the script flavor the driver can execute.
func dialectFor(driver db.Driver) seed.Dialect {
	if driver == db.DriverSQLite {
		return seed.SQLite
	}
	return seed.Postgres
}

func RunApply(ctx context.Context, w io.Writer, log *zap.Logger, cfg *config.Config) error {
	driver, err := db.ParseDriver(cfg.Database.Driver)
	if err != nil {
		return err
	}
	dialect := dialectFor(driver)

	res, err := parseInput(log, cfg.Input)
	if err != nil {
		return err
	}
	script, err := seed.Generate(cfg.Assessment, res.Questions, dialect)
	if err != nil {
		return fmt.Errorf("generating script: %w", err)
	}

	sqlDB, err := db.Open(ctx, driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	run, err := db.Apply(ctx, sqlDB, driver, cfg.Assessment.Slug, string(dialect), script)
	if err != nil {
		return fmt.Errorf("applying seed: %w", err)
	}
	log.Info("seed applied",
		zap.String("run", run.ID),
		zap.String("driver", string(driver)),
		zap.String("slug", run.Slug),
		zap.Int("questions", run.QuestionCount))

	ui.AppliedLine(w, run.ID, cfg.Assessment.Slug)
	ui.SummaryLine(w, run.QuestionCount, len(res.Dropped))
	return nil
}
