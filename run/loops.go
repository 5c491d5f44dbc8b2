package run

import (
	"math"

	"github.com/YoutacRandS-VA/uiua/prim"
	"github.com/YoutacRandS-VA/uiua/value"
)

func loopHandlers() map[prim.Primitive]handler {
	return map[prim.Primitive]handler{
		prim.Reduce:     opReduce,
		prim.Fold:       opFold,
		prim.Scan:       opScan,
		prim.Each:       opEach,
		prim.Rows:       opRows,
		prim.Distribute: opDistribute,
		prim.Table:      tableHandler(false),
		prim.Cross:      tableHandler(true),
		prim.Repeat:     opRepeat,
		prim.Level:      opLevel,
		prim.Group:      opGroup,
		prim.Partition:  opPartition,
	}
}

// reduceIdentity returns the value a reduction of an empty array produces.
func reduceIdentity(f *Function) (value.Val, bool) {
	if f.kind != funcPrim {
		return value.Val{}, false
	}
	switch f.prim {
	case prim.Add:
		return value.Num(0), true
	case prim.Mul:
		return value.Num(1), true
	case prim.Min:
		return value.Num(math.Inf(1)), true
	case prim.Max:
		return value.Num(math.Inf(-1)), true
	}
	return value.Val{}, false
}

// opReduce folds the rows of an array right to left with no initial
// accumulator, so /- computes the alternating difference.
func opReduce(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	v, err := env.Pop(span)
	if err != nil {
		return err
	}
	if v.Rank() == 0 {
		env.Push(v)
		return nil
	}
	rows := v.Rows()
	if len(rows) == 0 {
		id, ok := reduceIdentity(f)
		if !ok {
			return errorf(KindType, span, "cannot reduce an empty array with %s", f)
		}
		env.Push(id)
		return nil
	}
	acc := rows[len(rows)-1].Copy()
	for i := len(rows) - 2; i >= 0; i-- {
		out, err := env.callValue(f, span, acc, rows[i])
		if err != nil {
			stop, err := loopErr(err)
			if stop {
				break
			}
			return err
		}
		acc = out
	}
	env.Push(acc)
	return nil
}

// opFold folds the rows of an array first to last into an explicit
// accumulator popped before the array.
func opFold(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	vals, err := env.popN(2, span)
	if err != nil {
		return err
	}
	acc, v := vals[0], vals[1]
	for _, row := range v.Rows() {
		out, err := env.callValue(f, span, row, acc)
		if err != nil {
			stop, err := loopErr(err)
			if stop {
				break
			}
			return err
		}
		acc = out
	}
	env.Push(acc)
	return nil
}

// opScan is reduce keeping every intermediate accumulator, first row
// included.
func opScan(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	v, err := env.Pop(span)
	if err != nil {
		return err
	}
	if v.Rank() == 0 {
		return errorf(KindType, span, "cannot scan a scalar")
	}
	rows := v.Rows()
	if len(rows) == 0 {
		env.Push(v)
		return nil
	}
	acc := rows[0].Copy()
	outs := []value.Val{acc}
	for _, row := range rows[1:] {
		out, err := env.callValue(f, span, acc, row)
		if err != nil {
			stop, err := loopErr(err)
			if stop {
				break
			}
			return err
		}
		acc = out
		outs = append(outs, acc)
	}
	res, err := value.FromRows(outs, env.fill())
	if err != nil {
		return kernelErr(err, span)
	}
	env.Push(res)
	return nil
}

// scalarElems returns the elements of v as scalar values.
func scalarElems(v value.Val) []value.Val {
	flat, _ := value.Deshape(v)
	return flat.Rows()
}

// withOuterShape prepends outer to the row shape of res, which FromRows
// built with a flat leading axis.
func withOuterShape(res value.Val, outer []int) value.Val {
	inner := res.Shape[1:]
	res.Shape = append(append([]int(nil), outer...), inner...)
	return res
}

func opEach(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	switch f.FuncArgs() {
	case 1:
		v, err := env.Pop(span)
		if err != nil {
			return err
		}
		elems := scalarElems(v)
		outs := make([]value.Val, len(elems))
		for i, e := range elems {
			outs[i], err = env.callValue(f, span, e)
			if err != nil {
				return err
			}
		}
		if len(outs) == 0 {
			env.Push(v)
			return nil
		}
		res, err := value.FromRows(outs, env.fill())
		if err != nil {
			return kernelErr(err, span)
		}
		env.Push(withOuterShape(res, v.Shape))
		return nil
	case 2:
		vals, err := env.popN(2, span)
		if err != nil {
			return err
		}
		a, b := vals[0], vals[1]
		ea, eb := scalarElems(a), scalarElems(b)
		outer := a.Shape
		switch {
		case a.Rank() == 0:
			outer = b.Shape
			ea = repeatElem(ea[0], len(eb))
		case b.Rank() == 0:
			eb = repeatElem(eb[0], len(ea))
		case !shapesMatch(a.Shape, b.Shape):
			return errorf(KindType, span, "cannot apply %s to each pair of elements of shapes %v and %v", f, a.Shape, b.Shape)
		}
		outs := make([]value.Val, len(ea))
		for i := range ea {
			outs[i], err = env.callValue(f, span, ea[i], eb[i])
			if err != nil {
				return err
			}
		}
		if len(outs) == 0 {
			env.Push(a)
			return nil
		}
		res, err := value.FromRows(outs, env.fill())
		if err != nil {
			return kernelErr(err, span)
		}
		env.Push(withOuterShape(res, outer))
		return nil
	}
	return errorf(KindType, span, "each requires a function of 1 or 2 arguments (got %d)", f.FuncArgs())
}

func repeatElem(e value.Val, n int) []value.Val {
	out := make([]value.Val, n)
	for i := range out {
		out[i] = e
	}
	return out
}

func shapesMatch(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func opRows(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	switch f.FuncArgs() {
	case 1:
		v, err := env.Pop(span)
		if err != nil {
			return err
		}
		rows := v.Rows()
		outs := make([]value.Val, len(rows))
		for i, r := range rows {
			outs[i], err = env.callValue(f, span, r)
			if err != nil {
				return err
			}
		}
		res, err := value.FromRows(outs, env.fill())
		if err != nil {
			return kernelErr(err, span)
		}
		env.Push(res)
		return nil
	case 2:
		vals, err := env.popN(2, span)
		if err != nil {
			return err
		}
		a, b := vals[0], vals[1]
		ra, rb := a.Rows(), b.Rows()
		switch {
		case a.Rank() == 0:
			ra = repeatElem(a, len(rb))
		case b.Rank() == 0:
			rb = repeatElem(b, len(ra))
		case len(ra) != len(rb):
			return errorf(KindType, span, "cannot apply %s to rows of arrays with %d and %d rows", f, len(ra), len(rb))
		}
		outs := make([]value.Val, len(ra))
		for i := range ra {
			outs[i], err = env.callValue(f, span, ra[i], rb[i])
			if err != nil {
				return err
			}
		}
		res, err := value.FromRows(outs, env.fill())
		if err != nil {
			return kernelErr(err, span)
		}
		env.Push(res)
		return nil
	}
	return errorf(KindType, span, "rows requires a function of 1 or 2 arguments (got %d)", f.FuncArgs())
}

// opDistribute applies a dyadic function between the fixed first operand and
// each row of the second.
func opDistribute(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	vals, err := env.popN(2, span)
	if err != nil {
		return err
	}
	a, b := vals[0], vals[1]
	rows := b.Rows()
	outs := make([]value.Val, len(rows))
	for i, r := range rows {
		outs[i], err = env.callValue(f, span, a, r)
		if err != nil {
			return err
		}
	}
	res, err := value.FromRows(outs, env.fill())
	if err != nil {
		return kernelErr(err, span)
	}
	env.Push(res)
	return nil
}

// tableHandler builds the handler for table and its transposed twin cross.
func tableHandler(swap bool) handler {
	return func(env *Env, span Span) error {
		f, err := env.popFunc(span)
		if err != nil {
			return err
		}
		vals, err := env.popN(2, span)
		if err != nil {
			return err
		}
		a, b := vals[0], vals[1]
		outer, inner := a, b
		if swap {
			outer, inner = b, a
		}
		orows := make([]value.Val, outer.RowCount())
		for i := 0; i < outer.RowCount(); i++ {
			cells := make([]value.Val, inner.RowCount())
			for j := 0; j < inner.RowCount(); j++ {
				x, y := outer.Row(i), inner.Row(j)
				if swap {
					x, y = y, x
				}
				cells[j], err = env.callValue(f, span, x, y)
				if err != nil {
					return err
				}
			}
			orows[i], err = value.FromRows(cells, env.fill())
			if err != nil {
				return kernelErr(err, span)
			}
		}
		res, err := value.FromRows(orows, env.fill())
		if err != nil {
			return kernelErr(err, span)
		}
		env.Push(res)
		return nil
	}
}

// opRepeat applies a function a fixed number of times, or forever for an
// infinite count.  Break stops the loop.
func opRepeat(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	nv, err := env.Pop(span)
	if err != nil {
		return err
	}
	x, err := nv.AsNum("repeat")
	if err != nil {
		return kernelErr(err, span)
	}
	if math.IsInf(x, 1) {
		for {
			if err := env.call(f, span); err != nil {
				stop, err := loopErr(err)
				if stop {
					return nil
				}
				return err
			}
		}
	}
	n := int(x)
	if float64(n) != x || n < 0 {
		return errorf(KindType, span, "repeat expects a natural count or infinity (got %v)", x)
	}
	for i := 0; i < n; i++ {
		if err := env.call(f, span); err != nil {
			stop, err := loopErr(err)
			if stop {
				return nil
			}
			return err
		}
	}
	return nil
}

// opLevel applies a function to the cells of a given rank.  A negative rank
// counts down from the array's own rank, so rank ¯1 targets rows.
func opLevel(env *Env, span Span) error {
	rv, err := env.popOperandValue(span)
	if err != nil {
		return err
	}
	n, err := rv.AsInt("level")
	if err != nil {
		return kernelErr(err, span)
	}
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	v, err := env.Pop(span)
	if err != nil {
		return err
	}
	rank := n
	if n < 0 {
		rank = v.Rank() + n
	}
	if rank < 0 {
		rank = 0
	}
	res, err := env.level(f, span, v, rank)
	if err != nil {
		return err
	}
	env.Push(res)
	return nil
}

func (env *Env) level(f *Function, span Span, v value.Val, rank int) (value.Val, error) {
	if v.Rank() <= rank {
		return env.callValue(f, span, v)
	}
	rows := v.Rows()
	outs := make([]value.Val, len(rows))
	var err error
	for i, r := range rows {
		outs[i], err = env.level(f, span, r, rank)
		if err != nil {
			return value.Val{}, err
		}
	}
	res, err := value.FromRows(outs, env.fill())
	if err != nil {
		return value.Val{}, kernelErr(err, span)
	}
	return res, nil
}

// opGroup gathers the rows sharing each index and applies a function to
// every gathered group.  Negative indices drop their rows.
func opGroup(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	vals, err := env.popN(2, span)
	if err != nil {
		return err
	}
	ix, v := vals[0], vals[1]
	indices, err := ix.AsInts("group")
	if err != nil {
		return kernelErr(err, span)
	}
	if len(indices) != v.RowCount() {
		return errorf(KindType, span, "group expects %d indices (got %d)", v.RowCount(), len(indices))
	}
	max := -1
	for _, i := range indices {
		if i > max {
			max = i
		}
	}
	outs := make([]value.Val, 0, max+1)
	for g := 0; g <= max; g++ {
		var rows []value.Val
		for i, gi := range indices {
			if gi == g {
				rows = append(rows, v.Row(i))
			}
		}
		group, err := value.FromRows(rows, nil)
		if err != nil {
			return kernelErr(err, span)
		}
		out, err := env.callValue(f, span, group)
		if err != nil {
			return err
		}
		outs = append(outs, out)
	}
	res, err := value.FromRows(outs, env.fill())
	if err != nil {
		return kernelErr(err, span)
	}
	env.Push(res)
	return nil
}

// opPartition gathers runs of rows under equal nonzero markers and applies a
// function to each run.  Rows marked zero are dropped.
func opPartition(env *Env, span Span) error {
	f, err := env.popFunc(span)
	if err != nil {
		return err
	}
	vals, err := env.popN(2, span)
	if err != nil {
		return err
	}
	mk, v := vals[0], vals[1]
	markers, err := mk.AsInts("partition")
	if err != nil {
		return kernelErr(err, span)
	}
	if len(markers) != v.RowCount() {
		return errorf(KindType, span, "partition expects %d markers (got %d)", v.RowCount(), len(markers))
	}
	var outs []value.Val
	i := 0
	for i < len(markers) {
		if markers[i] == 0 {
			i++
			continue
		}
		j := i
		for j < len(markers) && markers[j] == markers[i] {
			j++
		}
		var rows []value.Val
		for k := i; k < j; k++ {
			rows = append(rows, v.Row(k))
		}
		group, err := value.FromRows(rows, nil)
		if err != nil {
			return kernelErr(err, span)
		}
		out, err := env.callValue(f, span, group)
		if err != nil {
			return err
		}
		outs = append(outs, out)
		i = j
	}
	res, err := value.FromRows(outs, env.fill())
	if err != nil {
		return kernelErr(err, span)
	}
	env.Push(res)
	return nil
}
