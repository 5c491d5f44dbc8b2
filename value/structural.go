package value

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Reverse reverses the rows of v.  Scalars reverse to themselves.
func Reverse(v Val) (Val, error) {
	if v.Rank() == 0 {
		return v, nil
	}
	rows := v.Rows()
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return FromRows(rows, nil)
}

// Transpose rotates the shape of v left: the first axis becomes the last.
func Transpose(v Val) (Val, error) {
	if v.Rank() < 2 {
		return v, nil
	}
	rows := v.Shape[0]
	cols := v.Count() / rows
	out := Val{Typ: v.Typ, Shape: append(append([]int(nil), v.Shape[1:]...), rows)}
	out.alloc(v.Count())
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.setElem(c*rows+r, v, r*cols+c)
		}
	}
	return out, nil
}

// InvTranspose rotates the shape of v right: the last axis becomes the
// first.  It is the exact inverse of Transpose.
func InvTranspose(v Val) (Val, error) {
	if v.Rank() < 2 {
		return v, nil
	}
	last := v.Shape[v.Rank()-1]
	cols := v.Count() / last
	out := Val{Typ: v.Typ, Shape: append([]int{last}, v.Shape[:v.Rank()-1]...)}
	out.alloc(v.Count())
	for r := 0; r < cols; r++ {
		for c := 0; c < last; c++ {
			out.setElem(c*cols+r, v, r*last+c)
		}
	}
	return out, nil
}

// Deshape flattens v into a vector of its elements.
func Deshape(v Val) (Val, error) {
	out := v.Copy()
	out.Shape = []int{v.Count()}
	return out, nil
}

// First returns the first row of v.
func First(v Val) (Val, error) {
	if v.RowCount() == 0 {
		return Val{}, Errorf("cannot take first of an empty array")
	}
	return v.Row(0).Copy(), nil
}

// Last returns the last row of v.
func Last(v Val) (Val, error) {
	if v.RowCount() == 0 {
		return Val{}, Errorf("cannot take last of an empty array")
	}
	return v.Row(v.RowCount() - 1).Copy(), nil
}

// RowCountVal returns the number of rows of v as a scalar.
func RowCountVal(v Val) (Val, error) {
	return Num(float64(v.RowCount())), nil
}

// ShapeOf returns the shape of v as a numeric vector.
func ShapeOf(v Val) (Val, error) {
	return FromInts(v.Shape), nil
}

// Range returns the vector of naturals below n.
func Range(v Val) (Val, error) {
	n, err := v.AsNat("range")
	if err != nil {
		return Val{}, err
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return FromInts(out), nil
}

// Bits expands each number of v into its little-endian binary digits along a
// new trailing axis.  All elements share the width of the widest element.
func Bits(v Val) (Val, error) {
	if v.Typ != TNum {
		return Val{}, Errorf("cannot take bits of a %s array", v.Typ)
	}
	width := 1
	for _, x := range v.Nums {
		n := int(x)
		if float64(n) != x || n < 0 {
			return Val{}, Errorf("bits expects natural numbers (got %v)", x)
		}
		w := 0
		for m := n; m > 0; m >>= 1 {
			w++
		}
		if w > width {
			width = w
		}
	}
	out := Val{Typ: TNum, Shape: append(append([]int(nil), v.Shape...), width)}
	out.Nums = make([]float64, 0, v.Count()*width)
	for _, x := range v.Nums {
		n := int(x)
		for b := 0; b < width; b++ {
			out.Nums = append(out.Nums, float64(n>>b&1))
		}
	}
	return out, nil
}

// InverseBits sums little-endian binary digits along the last axis of v,
// undoing Bits.
func InverseBits(v Val) (Val, error) {
	if v.Typ != TNum || v.Rank() == 0 {
		return Val{}, Errorf("inverse bits expects a numeric array of rank 1 or higher")
	}
	width := v.Shape[v.Rank()-1]
	out := Val{Typ: TNum, Shape: append([]int(nil), v.Shape[:v.Rank()-1]...)}
	for i := 0; i < v.Count(); i += width {
		n := 0.0
		for b := 0; b < width; b++ {
			n += v.Nums[i+b] * math.Pow(2, float64(b))
		}
		out.Nums = append(out.Nums, n)
	}
	return out, nil
}

// Where returns the indices of nonzero counts in v, each index repeated by
// its count.
func Where(v Val) (Val, error) {
	counts, err := v.AsInts("where")
	if err != nil {
		return Val{}, err
	}
	var out []int
	for i, c := range counts {
		if c < 0 {
			return Val{}, Errorf("where expects natural numbers (got %d)", c)
		}
		for ; c > 0; c-- {
			out = append(out, i)
		}
	}
	return FromInts(out), nil
}

// InvWhere rebuilds a counts vector from a sorted index vector, undoing
// Where.
func InvWhere(v Val) (Val, error) {
	indices, err := v.AsInts("inverse where")
	if err != nil {
		return Val{}, err
	}
	size := 0
	for _, i := range indices {
		if i < 0 {
			return Val{}, Errorf("inverse where expects natural numbers (got %d)", i)
		}
		if i+1 > size {
			size = i + 1
		}
	}
	counts := make([]int, size)
	for _, i := range indices {
		counts[i]++
	}
	return FromInts(counts), nil
}

// Classify assigns each row of v a class number by order of first
// appearance.
func Classify(v Val) (Val, error) {
	if v.Rank() == 0 {
		return Val{}, Errorf("cannot classify a scalar")
	}
	var classes []int
	var seen []Val
rows:
	for _, row := range v.Rows() {
		for k, s := range seen {
			if row.Equal(s) {
				classes = append(classes, k)
				continue rows
			}
		}
		classes = append(classes, len(seen))
		seen = append(seen, row)
	}
	return FromInts(classes), nil
}

// Deduplicate removes duplicate rows of v, keeping first appearances in
// order.
func Deduplicate(v Val) (Val, error) {
	if v.Rank() == 0 {
		return v, nil
	}
	var uniq []Val
rows:
	for _, row := range v.Rows() {
		for _, u := range uniq {
			if row.Equal(u) {
				continue rows
			}
		}
		uniq = append(uniq, row)
	}
	return FromRows(uniq, nil)
}

// Rise returns the permutation that sorts the rows of v ascending.
func Rise(v Val) (Val, error) { return grade(v, false) }

// Fall returns the permutation that sorts the rows of v descending.
func Fall(v Val) (Val, error) { return grade(v, true) }

func grade(v Val, desc bool) (Val, error) {
	if v.Rank() == 0 {
		return Val{}, Errorf("cannot grade a scalar")
	}
	rows := v.Rows()
	perm := make([]int, len(rows))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		c := compareRows(rows[perm[i]], rows[perm[j]])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return FromInts(perm), nil
}

// compareRows orders rows lexicographically over their flattened elements.
func compareRows(a, b Val) int {
	n := a.Count()
	if b.Count() < n {
		n = b.Count()
	}
	for i := 0; i < n; i++ {
		var c int
		switch {
		case a.Typ == TNum && b.Typ == TNum:
			switch {
			case a.Nums[i] < b.Nums[i]:
				c = -1
			case a.Nums[i] > b.Nums[i]:
				c = 1
			}
		case a.Typ == TChar && b.Typ == TChar:
			switch {
			case a.Chars[i] < b.Chars[i]:
				c = -1
			case a.Chars[i] > b.Chars[i]:
				c = 1
			}
		default:
			c = int(a.Typ) - int(b.Typ)
		}
		if c != 0 {
			return c
		}
	}
	return a.Count() - b.Count()
}

// ParseNum parses a character vector as a number.
func ParseNum(v Val) (Val, error) {
	s, err := v.AsString("parse")
	if err != nil {
		return Val{}, err
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), "¯", "-")
	x, perr := strconv.ParseFloat(s, 64)
	if perr != nil {
		return Val{}, Errorf("cannot parse %q as a number", s)
	}
	return Num(x), nil
}

// alloc reserves element storage for n elements of out's type.
func (v *Val) alloc(n int) {
	switch v.Typ {
	case TNum:
		v.Nums = make([]float64, n)
	case TChar:
		v.Chars = make([]rune, n)
	case TFunc:
		v.Funcs = make([]Func, n)
	}
}

// setElem copies element j of src into element i of v.
func (v *Val) setElem(i int, src Val, j int) {
	switch v.Typ {
	case TNum:
		v.Nums[i] = src.Nums[j]
	case TChar:
		v.Chars[i] = src.Chars[j]
	case TFunc:
		v.Funcs[i] = src.Funcs[j]
	}
}
