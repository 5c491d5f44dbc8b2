package run

// opInvert pops a function and immediately runs its inverse.
func opInvert(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	inv, err := f.Invert()
	if err != nil {
		return withSpan(err, span)
	}
	return env.call(inv, span)
}

// opUnder pops a context function and a transformation, runs the context's
// before phase, the transformation, and then the context's after phase to
// reconcile the result.
func opUnder(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	g, err := env.popFunc(span)
	if err != nil {
		return err
	}
	before, after, err := f.UnderSplit()
	if err != nil {
		return withSpan(err, span)
	}
	if err := env.call(before, span); err != nil {
		return err
	}
	if err := env.call(g, span); err != nil {
		return err
	}
	return env.call(after, span)
}

// withSpan stamps span onto a runtime error that was raised without one.
func withSpan(err error, span Span) error {
	rerr, ok := err.(*Error)
	if !ok || rerr.Span.Line != 0 {
		return err
	}
	stamped := *rerr
	stamped.Span = span
	return &stamped
}
