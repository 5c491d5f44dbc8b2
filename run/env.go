package run

import (
	"io"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/YoutacRandS-VA/uiua/prim"
	"github.com/YoutacRandS-VA/uiua/value"
)

// maxCallDepth bounds function call nesting, including recur.
const maxCallDepth = 4096

// Env is an execution environment: a value stack plus the ambient state the
// dispatcher needs.  An Env is not safe for concurrent use; spawn creates a
// child Env per unit instead of sharing one.
type Env struct {
	stack []value.Val
	fills []value.Val
	calls []*Function
	depth int

	out io.Writer
	now func() time.Time
	rng *rand.Rand

	tag    *tagCounter
	units  *unitTable
	warned map[prim.Primitive]bool
}

// Option configures an environment at construction.
type Option func(*Env)

// WithOutput directs trace and dump output to w.  The default is stderr.
func WithOutput(w io.Writer) Option {
	return func(env *Env) { env.out = w }
}

// WithNow overrides the clock used by now, for tests.
func WithNow(now func() time.Time) Option {
	return func(env *Env) { env.now = now }
}

// WithSeed fixes the seed of the ambient random generator.  Without it the
// generator is seeded from the clock on first use.
func WithSeed(seed int64) Option {
	return func(env *Env) { env.rng = rand.New(rand.NewSource(seed)) }
}

// NewEnv returns an empty environment.
func NewEnv(opts ...Option) *Env {
	env := &Env{
		out:   os.Stderr,
		now:   time.Now,
		tag:   new(tagCounter),
		units: newUnitTable(),
	}
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// child returns a fresh environment for a spawned unit.  The child has its
// own stack and random generator but shares the tag counter, the unit table,
// and the output sink.
func (env *Env) child() *Env {
	return &Env{
		out:   env.out,
		now:   env.now,
		tag:   env.tag,
		units: env.units,
	}
}

// Exec runs a word sequence, already in execution order.
func (env *Env) Exec(words []Word) error {
	for _, w := range words {
		if err := env.execWord(w); err != nil {
			return err
		}
	}
	return nil
}

func (env *Env) execWord(w Word) error {
	switch {
	case w.Lit != nil:
		env.Push(w.Lit.Copy())
		return nil
	case w.Fn != nil:
		env.Push(value.FromFunc(w.Fn))
		return nil
	default:
		return env.dispatch(w.Prim, w.Span)
	}
}

// call executes a function value.
func (env *Env) call(f *Function, span Span) error {
	env.depth++
	defer func() { env.depth-- }()
	if env.depth > maxCallDepth {
		return errorf(KindUser, span, "call stack exceeded %d frames", maxCallDepth)
	}
	switch f.kind {
	case funcPrim:
		return env.dispatch(f.prim, span)
	case funcConstant:
		env.Push(f.konst.Copy())
		return nil
	case funcMatch:
		v, err := env.Pop(span)
		if err != nil {
			return err
		}
		if !v.Equal(f.konst) {
			return errorf(KindUser, span, "expected %s in inverted context (got %s)", f.konst, v)
		}
		return nil
	case funcComposed:
		if err := env.call(f.rhs, span); err != nil {
			return err
		}
		return env.call(f.lhs, span)
	case funcWords:
		env.calls = append(env.calls, f)
		defer func() { env.calls = env.calls[:len(env.calls)-1] }()
		return env.Exec(f.words)
	}
	return errorf(KindInvalid, span, "cannot call an invalid function")
}

// currentFunc returns the innermost word-bodied function being executed, the
// target of recur.
func (env *Env) currentFunc() (*Function, bool) {
	if len(env.calls) == 0 {
		return nil, false
	}
	return env.calls[len(env.calls)-1], true
}

// Push places v on top of the stack.
func (env *Env) Push(v value.Val) {
	env.stack = append(env.stack, v)
}

// PushAll pushes vals bottom first, leaving the last element on top.
func (env *Env) PushAll(vals []value.Val) {
	env.stack = append(env.stack, vals...)
}

// Pop removes and returns the top of the stack.
func (env *Env) Pop(span Span) (value.Val, error) {
	if len(env.stack) == 0 {
		return value.Val{}, errorf(KindUnderflow, span, "the stack is empty")
	}
	v := env.stack[len(env.stack)-1]
	env.stack = env.stack[:len(env.stack)-1]
	return v, nil
}

// popN removes the top n values, first popped first in the result.
func (env *Env) popN(n int, span Span) ([]value.Val, error) {
	if len(env.stack) < n {
		return nil, errorf(KindUnderflow, span, "expected %d values (the stack has %d)", n, len(env.stack))
	}
	vals := make([]value.Val, n)
	for i := range vals {
		vals[i], _ = env.Pop(span)
	}
	return vals, nil
}

// popFunc pops a function value.  A non-function value pops as a constant
// function, so modifiers accept plain values as operands.
func (env *Env) popFunc(span Span) (*Function, error) {
	v, err := env.Pop(span)
	if err != nil {
		return nil, err
	}
	return toFunc(v), nil
}

func toFunc(v value.Val) *Function {
	if v.IsFunc() {
		if f, ok := v.Funcs[0].(*Function); ok {
			return f
		}
	}
	return ConstFunc(v)
}

// popOperandValue pops a value operand of a modifier, unboxing a constant
// function so a parenthesized operand works the same as a bare one.
func (env *Env) popOperandValue(span Span) (value.Val, error) {
	v, err := env.Pop(span)
	if err != nil {
		return value.Val{}, err
	}
	if v.IsFunc() {
		if f, ok := v.Funcs[0].(*Function); ok && f.kind == funcConstant {
			return f.konst, nil
		}
	}
	return v, nil
}

// StackHeight returns the number of values on the stack.
func (env *Env) StackHeight() int { return len(env.stack) }

// Stack returns a copy of the stack, bottom first.
func (env *Env) Stack() []value.Val {
	return append([]value.Val(nil), env.stack...)
}

// Clear empties the stack.
func (env *Env) Clear() { env.stack = env.stack[:0] }

// takeFrom removes and returns every value above height h, bottom first.
func (env *Env) takeFrom(h int) []value.Val {
	vals := append([]value.Val(nil), env.stack[h:]...)
	env.stack = env.stack[:h]
	return vals
}

// callValues runs f on the given argument values and returns everything it
// pushed.  args[0] is the first value popped by f.
func (env *Env) callValues(f *Function, span Span, args ...value.Val) ([]value.Val, error) {
	h := len(env.stack)
	for i := len(args) - 1; i >= 0; i-- {
		env.Push(args[i])
	}
	if err := env.call(f, span); err != nil {
		return nil, err
	}
	if len(env.stack) < h {
		return nil, errorf(KindUnderflow, span, "%s consumed values beyond its arguments", f)
	}
	return env.takeFrom(h), nil
}

// callValue runs f on the given arguments and requires exactly one result.
func (env *Env) callValue(f *Function, span Span, args ...value.Val) (value.Val, error) {
	outs, err := env.callValues(f, span, args...)
	if err != nil {
		return value.Val{}, err
	}
	if len(outs) != 1 {
		return value.Val{}, errorf(KindType, span, "%s must produce a single value here (got %d)", f, len(outs))
	}
	return outs[0], nil
}

// fill returns the innermost fill value, or nil outside any fill scope.
func (env *Env) fill() *value.Val {
	if len(env.fills) == 0 {
		return nil
	}
	return &env.fills[len(env.fills)-1]
}

// unit is one spawned computation.
type unit struct {
	id   string
	done chan struct{}
	vals []value.Val
	err  error
}

type unitTable struct {
	mu sync.Mutex
	m  map[string]*unit
}

func newUnitTable() *unitTable {
	return &unitTable{m: make(map[string]*unit)}
}

func (t *unitTable) add(u *unit) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[u.id] = u
}

func (t *unitTable) take(id string) (*unit, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	u, ok := t.m[id]
	if ok {
		delete(t.m, id)
	}
	return u, ok
}

// spawn starts f on its own unit with the given arguments and returns the
// unit handle.
func (env *Env) spawn(f *Function, span Span, args []value.Val) value.Val {
	u := &unit{id: uuid.NewString(), done: make(chan struct{})}
	env.units.add(u)
	child := env.child()
	go func() {
		defer close(u.done)
		vals, err := child.callValues(f, span, args...)
		if err != nil {
			u.err = err
			return
		}
		u.vals = vals
	}()
	return value.Str(u.id)
}

// wait blocks until the unit behind the handle finishes and pushes its
// results.  A unit can be waited on once.
func (env *Env) wait(handle value.Val, span Span) error {
	id, err := handle.AsString("wait")
	if err != nil {
		return kernelErr(err, span)
	}
	u, ok := env.units.take(id)
	if !ok {
		return errorf(KindThread, span, "no spawned unit with handle %q", id)
	}
	<-u.done
	if u.err != nil {
		return &Error{Kind: KindThread, Span: span, msg: u.err.Error(), cause: u.err}
	}
	env.PushAll(u.vals)
	return nil
}

// rand returns the ambient generator, seeding it from the clock on first
// use.
func (env *Env) rand() *rand.Rand {
	if env.rng == nil {
		env.rng = rand.New(rand.NewSource(env.now().UnixNano()))
	}
	return env.rng
}
