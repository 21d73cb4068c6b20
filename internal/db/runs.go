package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Script is the executable form of a generated seeding script.
type Script interface {
	Statements() []string
	QuestionCount() int
	Checksum() string
}

// Run is one recorded execution of a seeding script.
type Run struct {
	ID            string
	Slug          string
	Dialect       string
	QuestionCount int
	Checksum      string
	AppliedAt     time.Time
}

// Apply executes every statement of script in one transaction and records
// the run. Nothing is committed if any statement fails.
func Apply(ctx context.Context, db *sql.DB, driver Driver, slug, dialect string, script Script) (*Run, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range script.Statements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("executing statement %d: %w", i+1, err)
		}
	}

	run := &Run{
		ID:            uuid.NewString(),
		Slug:          slug,
		Dialect:       dialect,
		QuestionCount: script.QuestionCount(),
		Checksum:      script.Checksum(),
		AppliedAt:     time.Now().UTC().Truncate(time.Second),
	}
	ph := make([]string, 6)
	for i := range ph {
		ph[i] = driver.placeholder(i + 1)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO seed_runs (id, slug, dialect, question_count, checksum, applied_at) VALUES (`+strings.Join(ph, ", ")+`)`,
		run.ID, run.Slug, run.Dialect, run.QuestionCount, run.Checksum, run.AppliedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("recording seed run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing seed transaction: %w", err)
	}
	return run, nil
}

// Runs returns every recorded run, newest first.
func Runs(ctx context.Context, db *sql.DB) ([]Run, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, slug, dialect, question_count, checksum, applied_at
		FROM seed_runs
		ORDER BY applied_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying seed runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var appliedAt int64
		if err := rows.Scan(&r.ID, &r.Slug, &r.Dialect, &r.QuestionCount, &r.Checksum, &appliedAt); err != nil {
			return nil, fmt.Errorf("scanning seed run: %w", err)
		}
		r.AppliedAt = time.Unix(appliedAt, 0).UTC()
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating seed runs: %w", err)
	}
	return runs, nil
}
