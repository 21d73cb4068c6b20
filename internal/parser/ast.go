package parser

// Kind is the classification of a single trimmed, non-blank input line.
type Kind int

const (
	ContinuationLine Kind = iota
	SectionHeader
	ExampleLine
	QuestionLine
)

func (k Kind) String() string {
	switch k {
	case SectionHeader:
		return "section"
	case ExampleLine:
		return "example"
	case QuestionLine:
		return "question"
	default:
		return "continuation"
	}
}

// QuestionRecord is one quiz item reconstructed from the questionnaire.
type QuestionRecord struct {
	Section    string
	Title      string
	Definition string
	Example    string // empty when the question has no example
}

// DroppedLine is an input line that had no question to attach to.
type DroppedLine struct {
	Line int // 1-based line number in the input
	Kind Kind
	Text string
}

// Result is the outcome of parsing a questionnaire. Questions are in
// input order; their position (1-based) is the question number.
type Result struct {
	Questions []QuestionRecord
	Dropped   []DroppedLine
}
