package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ScalePoint is one choice of the ordinal response scale.
type ScalePoint struct {
	Value int    `toml:"value" yaml:"value" json:"value"`
	Label string `toml:"label" yaml:"label" json:"label"`
}

// Range maps a score interval to an interpretation.
type Range struct {
	Min            int    `toml:"min" yaml:"min" json:"min"`
	Max            int    `toml:"max" yaml:"max" json:"max"`
	Label          string `toml:"label" yaml:"label" json:"label"`
	Interpretation string `toml:"interpretation" yaml:"interpretation" json:"interpretation"`
}

// Assessment is the static metadata written alongside the questions.
// None of it is derived from the questionnaire.
type Assessment struct {
	Slug          string       `toml:"slug" yaml:"slug"`
	Name          string       `toml:"name" yaml:"name"`
	Description   string       `toml:"description" yaml:"description"`
	Category      string       `toml:"category" yaml:"category"`
	ScoringMethod string       `toml:"scoring_method" yaml:"scoring_method"`
	ResponseType  string       `toml:"response_type" yaml:"response_type"`
	Ranges        []Range      `toml:"ranges" yaml:"ranges"`
	Scale         []ScalePoint `toml:"scale" yaml:"scale"`
}

// DefaultAssessment returns the neurodiversity traits profile.
func DefaultAssessment() Assessment {
	return Assessment{
		Slug:          "neurodiversity-traits",
		Name:          "Neurodiversity Traits Profile",
		Description:   "A comprehensive self-assessment of neurodivergent traits across 8 categories. Rate each trait from 1 (Does not apply) to 5 (Core part of my experience).",
		Category:      "custom",
		ScoringMethod: "sum",
		ResponseType:  "likert",
		Ranges: []Range{{
			Min:            0,
			Max:            1000,
			Label:          "Completed",
			Interpretation: "This profile helps identify your unique neurodivergent traits. Review your highest scored categories to understand your strengths and challenges.",
		}},
		Scale: []ScalePoint{
			{Value: 1, Label: "Does not apply"},
			{Value: 2, Label: "Applies sometimes"},
			{Value: 3, Label: "Noticeable part of life"},
			{Value: 4, Label: "Significant part of life"},
			{Value: 5, Label: "Dominant/Core part"},
		},
	}
}

// ResponseOptions returns the scale as a JSON array. Each option's label
// is prefixed with its value, e.g. "1 - Does not apply".
func (a Assessment) ResponseOptions() (string, error) {
	opts := make([]ScalePoint, len(a.Scale))
	for i, p := range a.Scale {
		opts[i] = ScalePoint{Value: p.Value, Label: fmt.Sprintf("%d - %s", p.Value, p.Label)}
	}
	return encodeJSON(opts, "")
}

// InterpretationRanges returns {"ranges": [...]} as JSON, indented with
// indent when it is non-empty.
func (a Assessment) InterpretationRanges(indent string) (string, error) {
	ranges := a.Ranges
	if ranges == nil {
		ranges = []Range{}
	}
	return encodeJSON(map[string][]Range{"ranges": ranges}, indent)
}

func encodeJSON(v any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding json: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
