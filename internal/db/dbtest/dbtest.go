// Package dbtest provides fixtures for tests that seed a SQLite database.
package dbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chriserin/traitseed/internal/db"
)

// AssessmentSchema mirrors the assessment tables a deployment provides.
var AssessmentSchema = []string{
	`CREATE TABLE assessments (
		id                    INTEGER PRIMARY KEY,
		slug                  TEXT UNIQUE NOT NULL,
		name                  TEXT NOT NULL,
		description           TEXT,
		category              TEXT,
		total_questions       INTEGER NOT NULL DEFAULT 0,
		scoring_method        TEXT,
		interpretation_ranges TEXT
	)`,
	`CREATE TABLE assessment_questions (
		id               INTEGER PRIMARY KEY,
		assessment_id    INTEGER NOT NULL REFERENCES assessments(id),
		question_number  INTEGER NOT NULL,
		question_text    TEXT NOT NULL,
		response_type    TEXT,
		response_options TEXT,
		section          TEXT,
		UNIQUE (assessment_id, question_number)
	)`,
}

// CreateAssessmentSchema creates the assessment tables in sqlDB.
func CreateAssessmentSchema(t testing.TB, sqlDB *sql.DB) {
	t.Helper()
	for _, stmt := range AssessmentSchema {
		_, err := sqlDB.Exec(stmt)
		require.NoError(t, err)
	}
}

// OpenSeeded opens a fresh SQLite database under t.TempDir with the
// assessment schema in place and returns it with its path.
func OpenSeeded(t testing.TB) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.db")
	sqlDB, err := db.Open(context.Background(), db.DriverSQLite, path)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	CreateAssessmentSchema(t, sqlDB)
	return sqlDB, path
}
