package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestShow_RendersQuestion(t *testing.T) {
	inTempDir(t)
	writeQuiz(t, sampleQuiz)

	var buf bytes.Buffer
	require.NoError(t, RunShow(&buf, zap.NewNop(), testConfig(), "3", "notty", 200))

	out := buf.String()
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "II. Sensory Processing")
	assert.Contains(t, out, "Sound sensitivity")
	assert.Contains(t, out, "a ticking clock")
}

func TestShow_InvalidNumber(t *testing.T) {
	inTempDir(t)
	writeQuiz(t, sampleQuiz)

	var buf bytes.Buffer
	err := RunShow(&buf, zap.NewNop(), testConfig(), "abc", "notty", 80)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid question number: abc")
}

func TestShow_OutOfRange(t *testing.T) {
	inTempDir(t)
	writeQuiz(t, sampleQuiz)

	var buf bytes.Buffer
	err := RunShow(&buf, zap.NewNop(), testConfig(), "4", "notty", 80)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 4 not found (3 questions)")

	err = RunShow(&buf, zap.NewNop(), testConfig(), "0", "notty", 80)
	require.Error(t, err)
}
