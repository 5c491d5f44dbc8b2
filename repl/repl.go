// Package repl provides an interactive line evaluator.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/YoutacRandS-VA/uiua/parse"
	"github.com/YoutacRandS-VA/uiua/run"
)

// RunRepl reads lines, evaluates each in one persistent environment, and
// prints the stack after every line.
func RunRepl(prompt string, opts ...run.Option) {
	env := run.NewEnv(opts...)

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	lineNo := 0
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			env.Clear()
			continue
		}
		if err != nil {
			if err != io.EOF {
				errln(err)
			}
			return
		}
		lineNo++
		EvalLine(env, fmt.Sprintf("repl:%d", lineNo), string(line), os.Stdout)
	}
}

// EvalLine parses and runs one line of source in env and writes the
// resulting stack to w, top first.  A failed line reports its error and
// leaves the stack as it was before the line ran.
func EvalLine(env *run.Env, name, src string, w io.Writer) {
	if strings.TrimSpace(src) == "" {
		return
	}
	words, err := parse.Parse(name, src)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	before := env.Stack()
	if err := env.Exec(words); err != nil {
		fmt.Fprintln(w, err)
		env.Clear()
		env.PushAll(before)
		return
	}
	stack := env.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		fmt.Fprintln(w, stack[i])
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
