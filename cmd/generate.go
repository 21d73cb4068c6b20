package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chriserin/traitseed/internal/config"
	"github.com/chriserin/traitseed/internal/seed"
	"github.com/chriserin/traitseed/internal/ui"
)

var (
	generateInput   string
	generateOutput  string
	generateDialect string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Parse the questionnaire and write the seed script",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunGenerate(cmd.OutOrStdout(), logger, withOverrides(cfg, generateInput, generateOutput, generateDialect))
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "questionnaire text file")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "seed script to write")
	generateCmd.Flags().StringVar(&generateDialect, "dialect", "", "postgres or sqlite")
	rootCmd.AddCommand(generateCmd)
}

func RunGenerate(w io.Writer, log *zap.Logger, cfg *config.Config) error {
	dialect, err := seed.ParseDialect(cfg.Dialect)
	if err != nil {
		return err
	}

	res, err := parseInput(log, cfg.Input)
	if err != nil {
		return err
	}

	script, err := seed.Generate(cfg.Assessment, res.Questions, dialect)
	if err != nil {
		return fmt.Errorf("generating script: %w", err)
	}

	if err := writeFile(cfg.Output, []byte(script.String())); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	log.Info("seed script written",
		zap.String("output", cfg.Output),
		zap.String("dialect", string(dialect)),
		zap.Int("questions", script.QuestionCount()),
		zap.String("checksum", script.Checksum()))

	ui.WroteLine(w, cfg.Output)
	ui.SummaryLine(w, script.QuestionCount(), len(res.Dropped))
	return nil
}
