package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultSection labels questions that appear before any section header.
const DefaultSection = "General"

// NoRecord marks a State with no question open for continuation text.
const NoRecord = -1

const examplePrefix = "Example:"

// Only the first eight roman numerals are recognized as section headers.
var sectionPrefixes = []string{"I. ", "II. ", "III. ", "IV. ", "V. ", "VI. ", "VII. ", "VIII. "}

// Classify returns the kind of a trimmed, non-blank line. Section headers
// are checked before the colon test so a header containing a colon is
// never taken for a question.
func Classify(line string) Kind {
	for _, p := range sectionPrefixes {
		if strings.HasPrefix(line, p) {
			return SectionHeader
		}
	}
	if strings.HasPrefix(line, examplePrefix) {
		return ExampleLine
	}
	if strings.Contains(line, ":") {
		return QuestionLine
	}
	return ContinuationLine
}

// State is the accumulator state between lines. Current is the index of
// the open question in the sequence, or NoRecord.
type State struct {
	Section string
	Current int
}

// NewState returns the state before the first line is seen.
func NewState() State {
	return State{Section: DefaultSection, Current: NoRecord}
}

// Step folds one trimmed, non-blank line into the sequence. It reports
// false when the line was dropped because no question was open.
func Step(st State, qs []QuestionRecord, line string) (State, []QuestionRecord, bool) {
	switch Classify(line) {
	case SectionHeader:
		return State{Section: line, Current: NoRecord}, qs, true

	case ExampleLine:
		if st.Current == NoRecord {
			return st, qs, false
		}
		qs[st.Current].Example = strings.TrimSpace(strings.TrimPrefix(line, examplePrefix))
		return st, qs, true

	case QuestionLine:
		title, definition, _ := strings.Cut(line, ":")
		qs = append(qs, QuestionRecord{
			Section:    st.Section,
			Title:      strings.TrimSpace(title),
			Definition: strings.TrimSpace(definition),
		})
		return State{Section: st.Section, Current: len(qs) - 1}, qs, true

	default:
		if st.Current == NoRecord {
			return st, qs, false
		}
		qs[st.Current].Definition += " " + line
		return st, qs, true
	}
}

// Parse reads a questionnaire and reconstructs its question records.
// Malformed content is never an error; orphaned lines are dropped and
// reported in Result.Dropped. Only read failures are returned.
func Parse(r io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	res := &Result{}
	st := NewState()
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var kept bool
		st, res.Questions, kept = Step(st, res.Questions, line)
		if !kept {
			res.Dropped = append(res.Dropped, DroppedLine{Line: lineNo, Kind: Classify(line), Text: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading questionnaire: %w", err)
	}
	return res, nil
}

// ParseFile parses the questionnaire at path.
func ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
