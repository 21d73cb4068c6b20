package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chriserin/traitseed/internal/config"
	"github.com/chriserin/traitseed/internal/db/dbtest"
)

func sqliteConfig(dsn string) *config.Config {
	cfg := testConfig()
	cfg.Database = config.DatabaseConfig{Driver: "sqlite", DSN: dsn}
	return cfg
}

func TestApply_SeedsSQLite(t *testing.T) {
	inTempDir(t)
	writeQuiz(t, sampleQuiz)
	sqlDB, path := dbtest.OpenSeeded(t)

	var buf bytes.Buffer
	require.NoError(t, RunApply(context.Background(), &buf, zap.NewNop(), sqliteConfig(path)))

	var count, total int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM assessment_questions`).Scan(&count))
	require.NoError(t, sqlDB.QueryRow(`SELECT total_questions FROM assessments WHERE slug = 'neurodiversity-traits'`).Scan(&total))
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, total)

	var options string
	require.NoError(t, sqlDB.QueryRow(`SELECT response_options FROM assessment_questions WHERE question_number = 1`).Scan(&options))
	assert.Contains(t, options, `"label":"3 - Noticeable part of life"`)

	assert.Contains(t, buf.String(), "applied")
	assert.Contains(t, buf.String(), "neurodiversity-traits")
}

func TestApply_TwiceLeavesOneCopy(t *testing.T) {
	inTempDir(t)
	writeQuiz(t, sampleQuiz)
	sqlDB, path := dbtest.OpenSeeded(t)

	var buf bytes.Buffer
	require.NoError(t, RunApply(context.Background(), &buf, zap.NewNop(), sqliteConfig(path)))
	require.NoError(t, RunApply(context.Background(), &buf, zap.NewNop(), sqliteConfig(path)))

	var count int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM assessment_questions`).Scan(&count))
	assert.Equal(t, 3, count)
}

func TestApply_UnsupportedDriver(t *testing.T) {
	inTempDir(t)
	writeQuiz(t, sampleQuiz)

	cfg := testConfig()
	cfg.Database.Driver = "mysql"

	var buf bytes.Buffer
	err := RunApply(context.Background(), &buf, zap.NewNop(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver: mysql")
}

func TestApply_MissingSchemaFails(t *testing.T) {
	dir := inTempDir(t)
	writeQuiz(t, sampleQuiz)

	var buf bytes.Buffer
	err := RunApply(context.Background(), &buf, zap.NewNop(), sqliteConfig(dir+"/empty.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "applying seed")
}
