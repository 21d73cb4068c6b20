package seed

import (
	"fmt"
	"strings"

	"github.com/chriserin/traitseed/internal/parser"
)

const assessmentIDVar = "assessment_id_var"

// Generate serializes the assessment and its questions into an idempotent
// seeding script. Questions are numbered by position, starting at 1, and
// emitted in the order given.
func Generate(a Assessment, questions []parser.QuestionRecord, d Dialect) (*Script, error) {
	indent := ""
	if d == Postgres {
		indent = "  "
	}
	ranges, err := a.InterpretationRanges(indent)
	if err != nil {
		return nil, fmt.Errorf("rendering interpretation ranges: %w", err)
	}
	options, err := a.ResponseOptions()
	if err != nil {
		return nil, fmt.Errorf("rendering response options: %w", err)
	}

	s := &Script{Slug: a.Slug, Dialect: d, questions: len(questions)}
	switch d {
	case Postgres:
		generatePostgres(s, a, questions, ranges, options)
	case SQLite:
		generateSQLite(s, a, questions, ranges, options)
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", d)
	}
	return s, nil
}

func assessmentValues(a Assessment) string {
	return fmt.Sprintf("('%s', '%s', '%s', '%s', 0, '%s', ",
		parser.Escape(a.Slug), parser.Escape(a.Name), parser.Escape(a.Description),
		parser.Escape(a.Category), parser.Escape(a.ScoringMethod))
}

const assessmentColumns = "INSERT INTO assessments (slug, name, description, category, total_questions, scoring_method, interpretation_ranges) VALUES"

const questionColumns = "INSERT INTO assessment_questions (assessment_id, question_number, question_text, response_type, response_options, section)"

func generatePostgres(s *Script, a Assessment, questions []parser.QuestionRecord, ranges, options string) {
	header := []string{
		"-- Insert " + a.Name,
		assessmentColumns,
		assessmentValues(a),
	}
	rangeLines := strings.Split(parser.Escape(ranges), "\n")
	rangeLines[0] = "'" + rangeLines[0]
	rangeLines[len(rangeLines)-1] += "'::jsonb)"
	header = append(header, rangeLines...)
	header = append(header, "ON CONFLICT (slug) DO NOTHING;", "")
	s.add(header...)

	slug := parser.Escape(a.Slug)
	block := []string{
		"-- Insert Questions",
		"DO $$",
		"DECLARE",
		"    " + assessmentIDVar + " INTEGER;",
		"BEGIN",
		fmt.Sprintf("    SELECT id INTO %s FROM assessments WHERE slug = '%s';", assessmentIDVar, slug),
		fmt.Sprintf("    IF %s IS NULL THEN", assessmentIDVar),
		fmt.Sprintf("        RAISE EXCEPTION 'assessment %% not found', '%s';", slug),
		"    END IF;",
		"    -- IMPORTANT: the section column must exist on assessment_questions before running this",
		"",
	}
	opts := parser.Escape(options)
	for i, q := range questions {
		block = append(block, fmt.Sprintf(
			"    %s VALUES (%s, %d, '%s', '%s', '%s'::jsonb, '%s') ON CONFLICT (assessment_id, question_number) DO NOTHING;",
			questionColumns, assessmentIDVar, i+1, parser.Compose(q), parser.Escape(a.ResponseType), opts, parser.Escape(q.Section)))
	}
	block = append(block,
		"    -- Update total questions count",
		fmt.Sprintf("    UPDATE assessments SET total_questions = %d WHERE id = %s;", len(questions), assessmentIDVar),
		"END $$;",
	)
	s.add(block...)
}

func generateSQLite(s *Script, a Assessment, questions []parser.QuestionRecord, ranges, options string) {
	s.add(
		"-- Insert "+a.Name,
		assessmentColumns+" "+assessmentValues(a)+"'"+parser.Escape(ranges)+"') ON CONFLICT (slug) DO NOTHING;",
	)

	slug := parser.Escape(a.Slug)
	lookup := fmt.Sprintf("(SELECT id FROM assessments WHERE slug = '%s')", slug)
	opts := parser.Escape(options)
	for i, q := range questions {
		s.add(fmt.Sprintf(
			"%s VALUES (%s, %d, '%s', '%s', '%s', '%s') ON CONFLICT (assessment_id, question_number) DO NOTHING;",
			questionColumns, lookup, i+1, parser.Compose(q), parser.Escape(a.ResponseType), opts, parser.Escape(q.Section)))
	}
	s.add(
		"-- Update total questions count",
		fmt.Sprintf("UPDATE assessments SET total_questions = %d WHERE slug = '%s';", len(questions), slug),
	)
}
