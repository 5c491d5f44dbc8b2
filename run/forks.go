package run

import (
	"github.com/YoutacRandS-VA/uiua/prim"
	"github.com/YoutacRandS-VA/uiua/value"
)

func modifierHandlers() map[prim.Primitive]handler {
	return map[prim.Primitive]handler{
		prim.Invert:  opInvert,
		prim.Under:   opUnder,
		prim.Fill:    opFill,
		prim.Bind:    opBind,
		prim.Both:    opBoth,
		prim.Fork:    opFork,
		prim.Bracket: opBracket,
		prim.If:      opIf,
		prim.Try:     opTry,
		prim.Spawn:   opSpawn,
	}
}

// opFill runs a function with a scalar fill value in scope.  Shape-extending
// kernels consult the innermost fill.
func opFill(env *Env, span Span) error {
	fv, err := env.popOperandValue(span)
	if err != nil {
		return err
	}
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	env.fills = append(env.fills, fv)
	defer func() { env.fills = env.fills[:len(env.fills)-1] }()
	return env.call(f, span)
}

// opBind composes two functions into a single function value without
// calling it.
func opBind(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	g, err := env.popFunc(span)
	if err != nil {
		return err
	}
	env.Push(value.FromFunc(Compose(f, g)))
	return nil
}

// opBoth applies a function to two consecutive argument sets.  The results
// of the first set end up on top.
func opBoth(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	n := f.FuncArgs()
	setA, err := env.popN(n, span)
	if err != nil {
		return err
	}
	setB, err := env.popN(n, span)
	if err != nil {
		return err
	}
	outsB, err := env.callValues(f, span, setB...)
	if err != nil {
		return err
	}
	outsA, err := env.callValues(f, span, setA...)
	if err != nil {
		return err
	}
	env.PushAll(outsB)
	env.PushAll(outsA)
	return nil
}

// opFork applies two functions to the same arguments.  The first function's
// results end up on top.
func opFork(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	g, err := env.popFunc(span)
	if err != nil {
		return err
	}
	n := f.FuncArgs()
	if g.FuncArgs() > n {
		n = g.FuncArgs()
	}
	vals, err := env.popN(n, span)
	if err != nil {
		return err
	}
	outsG, err := env.callValues(g, span, vals[:g.FuncArgs()]...)
	if err != nil {
		return err
	}
	outsF, err := env.callValues(f, span, vals[:f.FuncArgs()]...)
	if err != nil {
		return err
	}
	env.PushAll(outsG)
	env.PushAll(outsF)
	return nil
}

// opBracket applies each function to its own argument set.  The first
// function takes the top set and its results end up on top.
func opBracket(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	g, err := env.popFunc(span)
	if err != nil {
		return err
	}
	setF, err := env.popN(f.FuncArgs(), span)
	if err != nil {
		return err
	}
	setG, err := env.popN(g.FuncArgs(), span)
	if err != nil {
		return err
	}
	outsG, err := env.callValues(g, span, setG...)
	if err != nil {
		return err
	}
	outsF, err := env.callValues(f, span, setF...)
	if err != nil {
		return err
	}
	env.PushAll(outsG)
	env.PushAll(outsF)
	return nil
}

// opIf pops a condition below the two branch functions and runs the first
// branch when the condition is nonzero.
func opIf(env *Env, span Span) error {
	t, err := env.popFunc(span)
	if err != nil {
		return err
	}
	e, err := env.popFunc(span)
	if err != nil {
		return err
	}
	cv, err := env.Pop(span)
	if err != nil {
		return err
	}
	cond, err := cv.AsNum("if")
	if err != nil {
		return kernelErr(err, span)
	}
	if cond != 0 {
		return env.call(t, span)
	}
	return env.call(e, span)
}

// opTry runs a function and, should it fail, pushes the failure payload and
// restores the function's operands above it before running the handler.
// Break is not a failure and passes through.
func opTry(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	h, err := env.popFunc(span)
	if err != nil {
		return err
	}
	args := f.FuncArgs()
	if len(env.stack) < args {
		return errorf(KindUnderflow, span, "expected %d values (the stack has %d)", args, len(env.stack))
	}
	base := len(env.stack) - args
	snapshot := make([]value.Val, args)
	for i, v := range env.stack[base:] {
		snapshot[i] = v.Copy()
	}
	err = env.call(f, span)
	if err == nil {
		return nil
	}
	if _, ok := err.(breakSignal); ok {
		return err
	}
	if len(env.stack) > base {
		env.stack = env.stack[:base]
	}
	if rerr, ok := err.(*Error); ok && rerr.Payload != nil {
		env.Push(*rerr.Payload)
	} else {
		env.Push(value.Str(err.Error()))
	}
	env.PushAll(snapshot)
	return env.call(h, span)
}

// opSpawn runs a function on its own unit and pushes the unit handle.
func opSpawn(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	args, err := env.popN(f.FuncArgs(), span)
	if err != nil {
		return err
	}
	// the unit must not share array storage with this stack
	for i := range args {
		args[i] = args[i].Copy()
	}
	env.Push(env.spawn(f, span, args))
	return nil
}
