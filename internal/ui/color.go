package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	wroteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	sectionStyle = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

func WroteLine(w io.Writer, path string) {
	fmt.Fprintln(w, wroteStyle.Render("wrote")+"  "+path)
}

func AppliedLine(w io.Writer, runID, target string) {
	fmt.Fprintln(w, wroteStyle.Render("applied")+"  "+target+"  "+sectionStyle.Render(runID))
}

func DroppedLine(w io.Writer, line int, kind, text string) {
	fmt.Fprintf(w, "%s  line %d (%s): %s\n", warnStyle.Render("drop"), line, kind, text)
}

func SummaryLine(w io.Writer, questions, dropped int) {
	fmt.Fprintf(w, "%d questions, %d dropped lines\n", questions, dropped)
}

// QuestionRow prints one row of the inspect table. Widths are the
// longest number and section in the listing.
func QuestionRow(w io.Writer, number int, section, title string, numWidth, sectionWidth int) {
	num := fmt.Sprintf("%-*d", numWidth, number)
	pad := strings.Repeat(" ", max(0, sectionWidth-lipgloss.Width(section)))
	fmt.Fprintf(w, "%s  %s%s  %s\n", num, sectionStyle.Render(section), pad, title)
}

func ShowHeader(w io.Writer, number int, section string) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("#%d", number))+"  "+sectionStyle.Render(section))
}

// RunRow prints one row of the history listing.
func RunRow(w io.Writer, id, slug, dialect string, questions int, when string) {
	fmt.Fprintf(w, "%s  %s  %s  %d questions  %s\n", sectionStyle.Render(id), slug, dialect, questions, when)
}
