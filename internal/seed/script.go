package seed

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Script is a generated seeding script. Its lines are grouped into units,
// each of which is executed as one statement.
type Script struct {
	Slug      string
	Dialect   Dialect
	units     [][]string
	questions int
}

func (s *Script) add(lines ...string) {
	s.units = append(s.units, lines)
}

// Lines returns every line of the script in output order.
func (s *Script) Lines() []string {
	var out []string
	for _, u := range s.units {
		out = append(out, u...)
	}
	return out
}

// String renders the script as it is written to the output file.
func (s *Script) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Statements returns the executable units with full-line comments and
// blank lines removed.
func (s *Script) Statements() []string {
	var stmts []string
	for _, u := range s.units {
		var kept []string
		for _, line := range u {
			t := strings.TrimSpace(line)
			if t == "" || strings.HasPrefix(t, "--") {
				continue
			}
			kept = append(kept, line)
		}
		if len(kept) > 0 {
			stmts = append(stmts, strings.Join(kept, "\n"))
		}
	}
	return stmts
}

// QuestionCount is the number of question statements in the script.
func (s *Script) QuestionCount() int {
	return s.questions
}

// Checksum is the hex sha256 of the rendered script.
func (s *Script) Checksum() string {
	sum := sha256.Sum256([]byte(s.String()))
	return hex.EncodeToString(sum[:])
}
