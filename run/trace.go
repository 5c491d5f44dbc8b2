package run

import (
	"fmt"
	"strings"

	"github.com/YoutacRandS-VA/uiua/prim"
)

func traceHandlers() map[prim.Primitive]handler {
	return map[prim.Primitive]handler{
		prim.Trace:    traceHandler(false),
		prim.InvTrace: traceHandler(true),
		prim.Dump:     opDump,
	}
}

// traceHandler prints the top of the stack without disturbing it.  The
// inverse form marks its output so a traced function and its inverse are
// distinguishable.
func traceHandler(inverse bool) handler {
	return func(env *Env, span Span) error {
		v, err := env.Pop(span)
		if err != nil {
			return err
		}
		env.Push(v)
		glyph := "⸮"
		if inverse {
			glyph = "⍘⸮"
		}
		env.writeBox(fmt.Sprintf("%s %s", glyph, span), []string{v.String()})
		return nil
	}
}

// opDump applies a function to every value on the stack, top first, and
// prints the results.  The stack is left untouched.
func opDump(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	lines := make([]string, 0, len(env.stack))
	for i := len(env.stack) - 1; i >= 0; i-- {
		out, err := env.callValue(f, span, env.stack[i].Copy())
		if err != nil {
			lines = append(lines, fmt.Sprintf("!! %s", err))
			continue
		}
		lines = append(lines, out.String())
	}
	env.writeBox(fmt.Sprintf("dump %s", span), lines)
	return nil
}

func (env *Env) writeBox(header string, lines []string) {
	fmt.Fprintf(env.out, "┌╴%s\n", header)
	for _, line := range lines {
		for _, part := range strings.Split(line, "\n") {
			fmt.Fprintf(env.out, "│ %s\n", part)
		}
	}
	fmt.Fprintln(env.out, "└╴╴╴╴╴╴")
}
