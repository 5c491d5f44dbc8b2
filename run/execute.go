package run

import (
	"fmt"

	"github.com/YoutacRandS-VA/uiua/prim"
	"github.com/YoutacRandS-VA/uiua/value"
)

// handler executes one primitive against the environment.
type handler func(env *Env, span Span) error

var handlers = map[prim.Primitive]handler{}

func register(m map[prim.Primitive]handler) {
	for p, h := range m {
		if handlers[p] != nil {
			panic(fmt.Sprintf("duplicate handler for %s", p.Name()))
		}
		handlers[p] = h
	}
}

func init() {
	register(stackHandlers())
	register(pervasiveHandlers())
	register(arrayHandlers())
	register(loopHandlers())
	register(modifierHandlers())
	register(controlHandlers())
	register(miscHandlers())
	register(randHandlers())
	register(traceHandlers())
	// The dispatch table is closed over the primitive set.  A primitive
	// without a handler is unreachable and refuses to start.
	for _, p := range prim.All() {
		if handlers[p] == nil {
			panic(fmt.Sprintf("primitive %d (%s) has no handler", uint(p), p))
		}
	}
}

func (env *Env) dispatch(p prim.Primitive, span Span) error {
	h := handlers[p]
	if h == nil {
		return errorf(KindInvalid, span, "cannot execute an invalid primitive")
	}
	if sug, ok := p.DeprecationSuggestion(); ok && !env.warned[p] {
		if env.warned == nil {
			env.warned = make(map[prim.Primitive]bool)
		}
		env.warned[p] = true
		if sug != "" {
			fmt.Fprintf(env.out, "warning: %s is deprecated and will be removed; %s\n", p, sug)
		} else {
			fmt.Fprintf(env.out, "warning: %s is deprecated and will be removed\n", p)
		}
	}
	return h(env, span)
}

// monadic adapts a one-value kernel into a handler.
func monadic(k func(value.Val) (value.Val, error)) handler {
	return func(env *Env, span Span) error {
		v, err := env.Pop(span)
		if err != nil {
			return err
		}
		out, err := k(v)
		if err != nil {
			return kernelErr(err, span)
		}
		env.Push(out)
		return nil
	}
}

// dyadic adapts a two-value kernel into a handler.  The kernel's first
// argument is the first value popped.
func dyadic(k func(a, b value.Val) (value.Val, error)) handler {
	return func(env *Env, span Span) error {
		vals, err := env.popN(2, span)
		if err != nil {
			return err
		}
		out, err := k(vals[0], vals[1])
		if err != nil {
			return kernelErr(err, span)
		}
		env.Push(out)
		return nil
	}
}

// triadic adapts a three-value reconciliation kernel into a handler.
func triadic(k func(a, b, c value.Val) (value.Val, error)) handler {
	return func(env *Env, span Span) error {
		vals, err := env.popN(3, span)
		if err != nil {
			return err
		}
		out, err := k(vals[0], vals[1], vals[2])
		if err != nil {
			return kernelErr(err, span)
		}
		env.Push(out)
		return nil
	}
}

func stackHandlers() map[prim.Primitive]handler {
	m := map[prim.Primitive]handler{
		prim.Dup: func(env *Env, span Span) error {
			v, err := env.Pop(span)
			if err != nil {
				return err
			}
			env.Push(v)
			env.Push(v.Copy())
			return nil
		},
		prim.Over: func(env *Env, span Span) error {
			vals, err := env.popN(2, span)
			if err != nil {
				return err
			}
			env.Push(vals[1])
			env.Push(vals[0])
			env.Push(vals[1].Copy())
			return nil
		},
		prim.Flip: func(env *Env, span Span) error {
			vals, err := env.popN(2, span)
			if err != nil {
				return err
			}
			env.Push(vals[0])
			env.Push(vals[1])
			return nil
		},
		prim.Pop: func(env *Env, span Span) error {
			_, err := env.Pop(span)
			return err
		},
		prim.Roll: func(env *Env, span Span) error {
			vals, err := env.popN(3, span)
			if err != nil {
				return err
			}
			env.Push(vals[0])
			env.Push(vals[2])
			env.Push(vals[1])
			return nil
		},
		prim.Unroll: func(env *Env, span Span) error {
			vals, err := env.popN(3, span)
			if err != nil {
				return err
			}
			env.Push(vals[1])
			env.Push(vals[0])
			env.Push(vals[2])
			return nil
		},
		prim.Identity: func(env *Env, span Span) error {
			v, err := env.Pop(span)
			if err != nil {
				return err
			}
			env.Push(v)
			return nil
		},
		prim.Dip: func(env *Env, span Span) error {
			f, err := env.popFunc(span)
			if err != nil {
				return err
			}
			x, err := env.Pop(span)
			if err != nil {
				return err
			}
			if err := env.call(f, span); err != nil {
				return err
			}
			env.Push(x)
			return nil
		},
		prim.Gap: func(env *Env, span Span) error {
			f, err := env.popFunc(span)
			if err != nil {
				return err
			}
			if _, err := env.Pop(span); err != nil {
				return err
			}
			return env.call(f, span)
		},
		prim.Restack: func(env *Env, span Span) error {
			ix, err := env.Pop(span)
			if err != nil {
				return err
			}
			indices, err := ix.AsInts("restack")
			if err != nil {
				return kernelErr(err, span)
			}
			if len(indices) == 0 {
				return nil
			}
			max := 0
			for _, i := range indices {
				if i < 0 {
					return errorf(KindType, span, "restack expects natural indices (got %d)", i)
				}
				if i > max {
					max = i
				}
			}
			tops, err := env.popN(max+1, span)
			if err != nil {
				return err
			}
			for i := len(indices) - 1; i >= 0; i-- {
				env.Push(tops[indices[i]].Copy())
			}
			return nil
		},
	}
	for _, p := range prim.ClassConstant.Primitives() {
		c, ok := p.Constant()
		if !ok {
			continue
		}
		m[p] = func(env *Env, span Span) error {
			env.Push(value.Num(c))
			return nil
		}
	}
	return m
}

func pervasiveHandlers() map[prim.Primitive]handler {
	monadics := map[prim.Primitive]func(value.Val) (value.Val, error){
		prim.Not:   value.Not,
		prim.Sign:  value.Sign,
		prim.Neg:   value.Neg,
		prim.Abs:   value.Abs,
		prim.Sqrt:  value.Sqrt,
		prim.Sin:   value.Sin,
		prim.Cos:   value.Cos,
		prim.Asin:  value.Asin,
		prim.Acos:  value.Acos,
		prim.Floor: value.Floor,
		prim.Ceil:  value.Ceil,
		prim.Round: value.Round,
	}
	dyadics := map[prim.Primitive]func(a, b value.Val) (value.Val, error){
		prim.Eq:   value.IsEq,
		prim.Ne:   value.IsNe,
		prim.Lt:   value.IsLt,
		prim.Le:   value.IsLe,
		prim.Gt:   value.IsGt,
		prim.Ge:   value.IsGe,
		prim.Add:  value.Add,
		prim.Sub:  value.Sub,
		prim.Mul:  value.Mul,
		prim.Div:  value.Div,
		prim.Mod:  value.Modulus,
		prim.Pow:  value.Pow,
		prim.Log:  value.Log,
		prim.Min:  value.Min,
		prim.Max:  value.Max,
		prim.Atan: value.Atan2,
	}
	m := map[prim.Primitive]handler{}
	for p, k := range monadics {
		m[p] = monadic(k)
	}
	for p, k := range dyadics {
		m[p] = dyadic(k)
	}
	return m
}

func arrayHandlers() map[prim.Primitive]handler {
	m := map[prim.Primitive]handler{
		prim.Len:          monadic(value.RowCountVal),
		prim.Shape:        monadic(value.ShapeOf),
		prim.Range:        monadic(value.Range),
		prim.First:        monadic(value.First),
		prim.Last:         monadic(value.Last),
		prim.Reverse:      monadic(value.Reverse),
		prim.Deshape:      monadic(value.Deshape),
		prim.Bits:         monadic(value.Bits),
		prim.InverseBits:  monadic(value.InverseBits),
		prim.Transpose:    monadic(value.Transpose),
		prim.InvTranspose: monadic(value.InvTranspose),
		prim.Rise:         monadic(value.Rise),
		prim.Fall:         monadic(value.Fall),
		prim.Where:        monadic(value.Where),
		prim.InvWhere:     monadic(value.InvWhere),
		prim.Classify:     monadic(value.Classify),
		prim.Deduplicate:  monadic(value.Deduplicate),

		prim.Match:    dyadic(value.Match),
		prim.Couple:   dyadic(value.Couple),
		prim.Pick:     dyadic(value.Pick),
		prim.Reshape:  dyadic(value.Reshape),
		prim.Drop:     dyadic(value.Drop),
		prim.Rotate:   dyadic(value.Rotate),
		prim.Windows:  dyadic(value.Windows),
		prim.Keep:     dyadic(value.Keep),
		prim.Find:     dyadic(value.Find),
		prim.Member:   dyadic(value.Member),
		prim.IndexOf:  dyadic(value.IndexOf),
		prim.Untake:   triadic(value.Untake),
		prim.Undrop:   triadic(value.Undrop),
		prim.Unselect: triadic(value.Unselect),
		prim.Unpick:   triadic(value.Unpick),
		prim.Unkeep:   triadic(value.Unkeep),

		prim.Uncouple: func(env *Env, span Span) error {
			v, err := env.Pop(span)
			if err != nil {
				return err
			}
			a, b, err := value.Uncouple(v)
			if err != nil {
				return kernelErr(err, span)
			}
			env.Push(b)
			env.Push(a)
			return nil
		},
		prim.Box: func(env *Env, span Span) error {
			v, err := env.Pop(span)
			if err != nil {
				return err
			}
			env.Push(value.FromFunc(ConstFunc(v)))
			return nil
		},
		prim.Unbox: func(env *Env, span Span) error {
			v, err := env.Pop(span)
			if err != nil {
				return err
			}
			env.Push(unbox(v))
			return nil
		},
	}
	// take, drop's counterpart join, and select honor the ambient fill scope
	m[prim.Join] = func(env *Env, span Span) error {
		vals, err := env.popN(2, span)
		if err != nil {
			return err
		}
		out, err := value.Join(vals[0], vals[1], env.fill())
		if err != nil {
			return kernelErr(err, span)
		}
		env.Push(out)
		return nil
	}
	m[prim.Select] = func(env *Env, span Span) error {
		vals, err := env.popN(2, span)
		if err != nil {
			return err
		}
		out, err := value.Select(vals[0], vals[1], env.fill())
		if err != nil {
			return kernelErr(err, span)
		}
		env.Push(out)
		return nil
	}
	m[prim.Take] = func(env *Env, span Span) error {
		vals, err := env.popN(2, span)
		if err != nil {
			return err
		}
		out, err := value.Take(vals[0], vals[1], env.fill())
		if err != nil {
			return kernelErr(err, span)
		}
		env.Push(out)
		return nil
	}
	return m
}

// unbox returns the value held by a boxed (constant function) scalar, or v
// itself when v is not a box.
func unbox(v value.Val) value.Val {
	if v.IsFunc() {
		if f, ok := v.Funcs[0].(*Function); ok && f.kind == funcConstant {
			return f.konst.Copy()
		}
	}
	return v
}

func controlHandlers() map[prim.Primitive]handler {
	return map[prim.Primitive]handler{
		prim.Break: func(env *Env, span Span) error {
			v, err := env.Pop(span)
			if err != nil {
				return err
			}
			n, err := v.AsNat("break")
			if err != nil {
				return kernelErr(err, span)
			}
			if n == 0 {
				return nil
			}
			return breakSignal{n: n, span: span}
		},
		prim.Recur: func(env *Env, span Span) error {
			v, err := env.Pop(span)
			if err != nil {
				return err
			}
			cond, err := v.AsNum("recur")
			if err != nil {
				return kernelErr(err, span)
			}
			if cond == 0 {
				return nil
			}
			f, ok := env.currentFunc()
			if !ok {
				return errorf(KindUser, span, "recur outside of a function")
			}
			return env.call(f, span)
		},
	}
}

func miscHandlers() map[prim.Primitive]handler {
	return map[prim.Primitive]handler{
		prim.Call: func(env *Env, span Span) error {
			v, err := env.Pop(span)
			if err != nil {
				return err
			}
			return env.call(toFunc(v), span)
		},
		prim.Parse: monadic(value.ParseNum),
		prim.Assert: func(env *Env, span Span) error {
			vals, err := env.popN(2, span)
			if err != nil {
				return err
			}
			cond, msg := vals[0], vals[1]
			// anything but the exact number 1 fails, non-numbers included
			if c, err := cond.AsNum("assert"); err == nil && c == 1 {
				return nil
			}
			text := msg.String()
			if s, err := msg.AsString("assert"); err == nil {
				text = s
			}
			e := errorf(KindUser, span, "%s", text)
			e.Payload = &msg
			return e
		},
		prim.Type: func(env *Env, span Span) error {
			v, err := env.Pop(span)
			if err != nil {
				return err
			}
			var code float64
			switch v.Typ {
			case value.TChar:
				code = 1
			case value.TFunc:
				code = 2
			}
			env.Push(value.Num(code))
			return nil
		},
		prim.Sig: func(env *Env, span Span) error {
			f, err := env.popFunc(span)
			if err != nil {
				return err
			}
			env.Push(value.FromInts([]int{f.FuncArgs(), f.FuncOuts()}))
			return nil
		},
		prim.Use: func(env *Env, span Span) error {
			vals, err := env.popN(2, span)
			if err != nil {
				return err
			}
			name, err := vals[0].AsString("use")
			if err != nil {
				return kernelErr(err, span)
			}
			module := vals[1]
			if module.Typ != value.TFunc {
				return errorf(KindType, span, "use expects a module of functions (got %s array)", module.Typ)
			}
			for _, fn := range module.Funcs {
				f, ok := fn.(*Function)
				if !ok {
					continue
				}
				member := f
				if member.kind == funcConstant && member.konst.IsFunc() {
					member = toFunc(member.konst)
				}
				if member.Name() == name {
					env.Push(value.FromFunc(member))
					return nil
				}
			}
			return errorf(KindType, span, "module has no member %q", name)
		},
		prim.Wait: func(env *Env, span Span) error {
			h, err := env.Pop(span)
			if err != nil {
				return err
			}
			return env.wait(h, span)
		},
		prim.Now: func(env *Env, span Span) error {
			t := env.now()
			env.Push(value.Num(float64(t.UnixNano()) / 1e9))
			return nil
		},
	}
}
