package run

import (
	"strings"

	"github.com/YoutacRandS-VA/uiua/prim"
	"github.com/YoutacRandS-VA/uiua/value"
)

// Word is one executable item of a program or function body.  Exactly one of
// Lit, Fn, and Prim is meaningful: a literal value to push, a function
// literal to push, or a primitive to dispatch.  Bodies are stored in
// execution order; the front end reverses source order before handing words
// to the environment.
type Word struct {
	Prim prim.Primitive
	Lit  *value.Val
	Fn   *Function
	Span Span
}

// LitWord returns a word that pushes a copy of v.
func LitWord(v value.Val, span Span) Word {
	return Word{Lit: &v, Span: span}
}

// PrimWord returns a word that dispatches p.
func PrimWord(p prim.Primitive, span Span) Word {
	return Word{Prim: p, Span: span}
}

// FnWord returns a word that pushes f as a function value.
func FnWord(f *Function, span Span) Word {
	return Word{Fn: f, Span: span}
}

type funcKind uint

const (
	funcInvalid funcKind = iota
	funcPrim
	funcWords
	funcConstant
	funcMatch
	funcComposed
)

// Function is an executable function value.  Functions are immutable once
// built and safe to share between environments.
type Function struct {
	kind  funcKind
	prim  prim.Primitive
	words []Word
	konst value.Val
	// composed functions run rhs first, then lhs
	lhs, rhs *Function
	name     string
	args     int
	outs     int
}

// PrimFunc returns the function value wrapping a single primitive.
func PrimFunc(p prim.Primitive) *Function {
	args, ok := p.Args()
	if !ok {
		args = 1
	}
	outs, ok := p.Outputs()
	if !ok {
		outs = 1
	}
	return &Function{kind: funcPrim, prim: p, args: args, outs: outs}
}

// WordsFunc returns a function value with a word body.  The name is the
// source text of the body and is used only for display.
func WordsFunc(name string, words []Word) *Function {
	if name == "" {
		name = joinNames(words)
	}
	args, outs := inferSig(words)
	return &Function{kind: funcWords, words: words, name: name, args: args, outs: outs}
}

// ConstFunc returns a function value that pushes a fixed value.  Constant
// functions double as the boxed form of a value.
func ConstFunc(v value.Val) *Function {
	return &Function{kind: funcConstant, konst: v, outs: 1}
}

// matchFunc returns the inverse of a constant function: it pops one value
// and fails unless the value matches.
func matchFunc(v value.Val) *Function {
	return &Function{kind: funcMatch, konst: v, args: 1}
}

// Compose returns the function value that runs second, then first.
func Compose(first, second *Function) *Function {
	args := second.args
	if d := first.args - second.outs; d > 0 {
		args += d
	}
	outs := first.outs
	if d := second.outs - first.args; d > 0 {
		outs += d
	}
	return &Function{kind: funcComposed, lhs: first, rhs: second, args: args, outs: outs}
}

// inferSig estimates the signature of a word body by simulating stack depth.
// Words with value-directed arity are assumed to consume one value and
// produce one.
func inferSig(words []Word) (args, outs int) {
	depth, min := 0, 0
	pop := func(n int) {
		depth -= n
		if depth < min {
			min = depth
		}
	}
	for _, w := range words {
		if w.Prim == prim.Invalid {
			depth++
			continue
		}
		if m, ok := w.Prim.ModifierArgs(); ok {
			pop(m + 1)
			depth++
			continue
		}
		if a, ok := w.Prim.Args(); ok {
			pop(a)
		} else {
			pop(1)
		}
		if o, ok := w.Prim.Outputs(); ok {
			depth += o
		} else {
			depth++
		}
	}
	return -min, depth - min
}

// FuncArgs implements value.Func.
func (f *Function) FuncArgs() int { return f.args }

// FuncOuts implements value.Func.
func (f *Function) FuncOuts() int { return f.outs }

// Name returns the display name of a function, used by use to look up
// members of a module value.
func (f *Function) Name() string {
	if f.name != "" {
		return f.name
	}
	if f.kind == funcPrim {
		if f.prim.Name() != "" {
			return f.prim.Name()
		}
		return f.prim.String()
	}
	return ""
}

func (f *Function) String() string {
	switch f.kind {
	case funcPrim:
		return f.prim.String()
	case funcWords:
		return "(" + f.name + ")"
	case funcConstant:
		return "□" + f.konst.String()
	case funcMatch:
		return "≍" + f.konst.String()
	case funcComposed:
		return f.lhs.String() + f.rhs.String()
	}
	return "INVALID"
}

// Invert returns the function that undoes f, or a KindInversion error when
// no inverse is defined.
func (f *Function) Invert() (*Function, error) {
	switch f.kind {
	case funcPrim:
		if q, ok := f.prim.Inverse(); ok {
			return PrimFunc(q), nil
		}
		return nil, errorf(KindInversion, Span{}, "%s has no inverse", f.prim)
	case funcConstant:
		return matchFunc(f.konst), nil
	case funcMatch:
		return ConstFunc(f.konst), nil
	case funcComposed:
		li, err := f.lhs.Invert()
		if err != nil {
			return nil, err
		}
		ri, err := f.rhs.Invert()
		if err != nil {
			return nil, err
		}
		return Compose(ri, li), nil
	case funcWords:
		inv, err := invertWords(f.words)
		if err != nil {
			return nil, err
		}
		return WordsFunc("⍘"+f.name, inv), nil
	}
	return nil, errorf(KindInversion, Span{}, "cannot invert an invalid function")
}

// antiPrim maps a dyadic primitive to the primitive that undoes it when the
// first operand is a fixed literal, as in the inverse of (+1).
func antiPrim(p prim.Primitive) (prim.Primitive, bool) {
	switch p {
	case prim.Add:
		return prim.Sub, true
	case prim.Sub:
		return prim.Add, true
	case prim.Mul:
		return prim.Div, true
	case prim.Div:
		return prim.Mul, true
	}
	return prim.Invalid, false
}

// operandModInvertible marks the modifiers whose application inverts by
// inverting the function operand.
func operandModInvertible(p prim.Primitive) bool {
	switch p {
	case prim.Each, prim.Rows, prim.Both, prim.Dip:
		return true
	}
	return false
}

// invertWords inverts a word body by walking its units from last to first
// and emitting the inverted unit of each.  A unit is a literal, a lone
// primitive, a literal bound to a dyadic primitive, or a function operand
// bound to a modifier.
func invertWords(words []Word) ([]Word, error) {
	var out []Word
	for i := len(words) - 1; i >= 0; i-- {
		w := words[i]
		switch {
		case w.Lit != nil:
			out = append(out, FnWord(matchFunc(*w.Lit), w.Span), PrimWord(prim.Call, w.Span))
		case w.Fn != nil:
			return nil, errorf(KindInversion, w.Span, "cannot invert a dangling function literal")
		case w.Prim.IsModifier():
			if i == 0 || words[i-1].Fn == nil || !operandModInvertible(w.Prim) {
				return nil, errorf(KindInversion, w.Span, "cannot invert %s", w.Prim)
			}
			inv, err := words[i-1].Fn.Invert()
			if err != nil {
				return nil, err
			}
			out = append(out, FnWord(inv, words[i-1].Span), w)
			i--
		default:
			if anti, ok := antiPrim(w.Prim); ok && i > 0 && words[i-1].Lit != nil {
				out = append(out, words[i-1], PrimWord(anti, w.Span))
				i--
				continue
			}
			q, ok := w.Prim.Inverse()
			if !ok {
				return nil, errorf(KindInversion, w.Span, "%s has no inverse", w.Prim)
			}
			out = append(out, PrimWord(q, w.Span))
		}
	}
	return out, nil
}

// UnderSplit decomposes f for under into the function to run before the
// transformation and the function that reconciles the transformed result
// afterwards.  Structural primitives with a mirrored undo form keep copies
// of their operands under the result so the undo form can see them.
func (f *Function) UnderSplit() (before, after *Function, err error) {
	if f.kind == funcPrim {
		if undo, ok := f.prim.UndoPair(); ok {
			before = WordsFunc(f.prim.String(), []Word{
				PrimWord(prim.Over, Span{}),
				PrimWord(prim.Over, Span{}),
				PrimWord(f.prim, Span{}),
			})
			return before, PrimFunc(undo), nil
		}
	}
	if f.kind == funcWords && len(f.words) == 2 && f.words[0].Lit != nil && f.words[1].Prim != prim.Invalid {
		if undo, ok := f.words[1].Prim.UndoPair(); ok {
			before = WordsFunc(f.name, []Word{
				f.words[0],
				PrimWord(prim.Over, f.words[1].Span),
				PrimWord(prim.Over, f.words[1].Span),
				PrimWord(f.words[1].Prim, f.words[1].Span),
			})
			return before, PrimFunc(undo), nil
		}
	}
	inv, err := f.Invert()
	if err != nil {
		return nil, nil, err
	}
	return f, inv, nil
}

// joinNames renders a word body back to display text.
func joinNames(words []Word) string {
	var b strings.Builder
	for i := len(words) - 1; i >= 0; i-- {
		w := words[i]
		switch {
		case w.Lit != nil:
			b.WriteString(w.Lit.String())
		case w.Fn != nil:
			b.WriteString(w.Fn.String())
		default:
			b.WriteString(w.Prim.String())
		}
	}
	return b.String()
}
