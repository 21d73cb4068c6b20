package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInspect_ListsQuestionsInOrder(t *testing.T) {
	inTempDir(t)
	writeQuiz(t, sampleQuiz)

	var buf bytes.Buffer
	require.NoError(t, RunInspect(&buf, zap.NewNop(), testConfig()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "1  "))
	assert.Contains(t, lines[0], "I. Attention & Focus")
	assert.Contains(t, lines[0], "Hyperfocus")
	assert.Contains(t, lines[1], "Task switching")
	assert.Contains(t, lines[2], "II. Sensory Processing")
	assert.Contains(t, lines[2], "Sound sensitivity")
	assert.Equal(t, "3 questions, 0 dropped lines", lines[3])
}

func TestInspect_ReportsDroppedLines(t *testing.T) {
	inTempDir(t)
	writeQuiz(t, "Example: nobody owns me\nI. Focus\nloose text\nAttention: Focus.\n")

	var buf bytes.Buffer
	require.NoError(t, RunInspect(&buf, zap.NewNop(), testConfig()))

	out := buf.String()
	assert.Contains(t, out, "line 1 (example): Example: nobody owns me")
	assert.Contains(t, out, "line 3 (continuation): loose text")
	assert.Contains(t, out, "1 questions, 2 dropped lines")
}

func TestInspect_EmptyInput(t *testing.T) {
	inTempDir(t)
	writeQuiz(t, "")

	var buf bytes.Buffer
	require.NoError(t, RunInspect(&buf, zap.NewNop(), testConfig()))
	assert.Equal(t, "0 questions, 0 dropped lines\n", buf.String())
}
