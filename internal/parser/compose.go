package parser

import "strings"

// Markdown renders a question as "**title**: definition", followed by
// " (Example: ...)" when the question has an example.
func Markdown(q QuestionRecord) string {
	text := "**" + q.Title + "**: " + q.Definition
	if q.Example != "" {
		text += " (Example: " + q.Example + ")"
	}
	return text
}

// Compose renders a question for embedding in a single-quoted literal.
func Compose(q QuestionRecord) string {
	return Escape(Markdown(q))
}

// Escape doubles every single quote. Nothing else is escaped.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
