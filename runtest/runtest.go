// Package runtest provides helpers for driving whole programs through the
// parser and the interpreter.
package runtest

import (
	"io"
	"strings"
	"testing"

	"github.com/YoutacRandS-VA/uiua/parse"
	"github.com/YoutacRandS-VA/uiua/run"
)

// TestSequence is a sequence of source lines evaluated in one environment.
// Stack is the expected rendering of the whole stack after the line runs,
// top first, joined by single spaces.  A non-empty Err means the line must
// fail with an error containing that substring; the stack is not checked.
type TestSequence []struct {
	Line  string
	Stack string
	Err   string
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence on an isolated environment.  A failed
// line stops its sequence but not the suite.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			env := run.NewEnv(run.WithOutput(io.Discard), run.WithSeed(1))
			for j, step := range test.TestSequence {
				words, err := parse.Parse(test.Name, step.Line)
				if err != nil {
					t.Errorf("line %d %q: parse error: %v", j, step.Line, err)
					return
				}
				err = env.Exec(words)
				if step.Err != "" {
					if err == nil {
						t.Errorf("line %d %q: expected an error containing %q", j, step.Line, step.Err)
						return
					}
					if !strings.Contains(err.Error(), step.Err) {
						t.Errorf("line %d %q: expected an error containing %q (got %v)", j, step.Line, step.Err, err)
					}
					continue
				}
				if err != nil {
					t.Errorf("line %d %q: %v", j, step.Line, err)
					return
				}
				if got := renderStack(env); got != step.Stack {
					t.Errorf("line %d %q: expected stack %q (got %q)", j, step.Line, step.Stack, got)
				}
			}
		})
	}
}

// renderStack renders the stack top first.
func renderStack(env *run.Env) string {
	stack := env.Stack()
	parts := make([]string, len(stack))
	for i, v := range stack {
		parts[len(stack)-1-i] = v.String()
	}
	return strings.Join(parts, " ")
}
