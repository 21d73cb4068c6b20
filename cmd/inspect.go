package cmd

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chriserin/traitseed/internal/config"
	"github.com/chriserin/traitseed/internal/ui"
)

var inspectInput string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the questions parsed from the questionnaire",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInspect(cmd.OutOrStdout(), logger, withOverrides(cfg, inspectInput, "", ""))
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectInput, "input", "i", "", "questionnaire text file")
	rootCmd.AddCommand(inspectCmd)
}

func RunInspect(w io.Writer, log *zap.Logger, cfg *config.Config) error {
	res, err := parseInput(log, cfg.Input)
	if err != nil {
		return err
	}

	numWidth := len(strconv.Itoa(len(res.Questions)))
	sectionWidth := 0
	for _, q := range res.Questions {
		if n := lipgloss.Width(q.Section); n > sectionWidth {
			sectionWidth = n
		}
	}

	for i, q := range res.Questions {
		ui.QuestionRow(w, i+1, q.Section, q.Title, numWidth, sectionWidth)
	}
	for _, d := range res.Dropped {
		ui.DroppedLine(w, d.Line, d.Kind.String(), d.Text)
	}
	ui.SummaryLine(w, len(res.Questions), len(res.Dropped))
	return nil
}
