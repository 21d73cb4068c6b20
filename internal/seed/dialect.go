package seed

import "fmt"

// Dialect selects the SQL flavor of a generated script.
type Dialect string

const (
	// Postgres resolves the assessment inside a DO block and stores JSON
	// as jsonb.
	Postgres Dialect = "postgres"
	// SQLite resolves the assessment with a scalar subquery per statement
	// and stores JSON as text.
	SQLite Dialect = "sqlite"
)

// ParseDialect maps a name to a Dialect. The empty string is Postgres.
func ParseDialect(name string) (Dialect, error) {
	switch Dialect(name) {
	case "", Postgres:
		return Postgres, nil
	case SQLite:
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported dialect: %s", name)
	}
}
