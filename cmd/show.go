package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chriserin/traitseed/internal/config"
	"github.com/chriserin/traitseed/internal/parser"
	"github.com/chriserin/traitseed/internal/ui"
)

var (
	showInput string
	showStyle string
	showWidth int
)

var showCmd = &cobra.Command{
	Use:   "show <number>",
	Short: "Render a question as it will be stored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), logger, withOverrides(cfg, showInput, "", ""), args[0], showStyle, showWidth)
	},
}

func init() {
	showCmd.Flags().StringVarP(&showInput, "input", "i", "", "questionnaire text file")
	showCmd.Flags().StringVar(&showStyle, "style", "auto", "glamour style (auto, dark, light, notty)")
	showCmd.Flags().IntVar(&showWidth, "width", 80, "word wrap width")
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, log *zap.Logger, cfg *config.Config, rawNumber, style string, width int) error {
	n, err := strconv.Atoi(rawNumber)
	if err != nil {
		return fmt.Errorf("invalid question number: %s", rawNumber)
	}

	res, err := parseInput(log, cfg.Input)
	if err != nil {
		return err
	}
	if n < 1 || n > len(res.Questions) {
		return fmt.Errorf("question %d not found (%d questions)", n, len(res.Questions))
	}
	q := res.Questions[n-1]

	renderer, err := ui.NewMarkdownRenderer(style, width)
	if err != nil {
		return err
	}
	out, err := renderer.Render(parser.Markdown(q))
	if err != nil {
		return fmt.Errorf("rendering question %d: %w", n, err)
	}

	ui.ShowHeader(w, n, q.Section)
	fmt.Fprint(w, out)
	return nil
}
