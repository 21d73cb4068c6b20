package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chriserin/traitseed/internal/config"
)

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
	return dir
}

func writeQuiz(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile("raw_traits_quiz.txt", []byte(content), 0o644))
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func testConfig() *config.Config {
	return config.DefaultConfig()
}

const sampleQuiz = `I. Attention & Focus
Hyperfocus: Deep, sustained concentration on topics of interest.
Example: reading for hours

Task switching: Difficulty moving between activities
without a clear transition.

II. Sensory Processing
Sound sensitivity: Everyday noises feel overwhelming.
Example: a ticking clock
`
