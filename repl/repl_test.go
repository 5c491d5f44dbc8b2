package repl

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/YoutacRandS-VA/uiua/run"
)

func TestEvalLine(t *testing.T) {
	env := run.NewEnv(run.WithOutput(io.Discard))
	var buf bytes.Buffer
	EvalLine(env, "repl:1", "+ 1 2", &buf)
	assert.Equal(t, "3\n", buf.String())

	// the stack persists between lines, top printed first
	buf.Reset()
	EvalLine(env, "repl:2", "10", &buf)
	assert.Equal(t, "10\n3\n", buf.String())
}

func TestEvalLineParseError(t *testing.T) {
	env := run.NewEnv(run.WithOutput(io.Discard))
	var buf bytes.Buffer
	EvalLine(env, "repl:1", "qzqz", &buf)
	assert.Contains(t, buf.String(), "unknown word")
	assert.Equal(t, 0, env.StackHeight())
}

func TestEvalLineRestoresStackOnError(t *testing.T) {
	env := run.NewEnv(run.WithOutput(io.Discard))
	var buf bytes.Buffer
	EvalLine(env, "repl:1", "7", &buf)

	buf.Reset()
	EvalLine(env, "repl:2", "↙5 1_2_3", &buf)
	assert.Contains(t, buf.String(), "cannot take")
	assert.Equal(t, 1, env.StackHeight())
}

func TestEvalLineBlank(t *testing.T) {
	env := run.NewEnv(run.WithOutput(io.Discard))
	var buf bytes.Buffer
	EvalLine(env, "repl:1", "   ", &buf)
	assert.Equal(t, "", buf.String())
}
