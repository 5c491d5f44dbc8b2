/*
Package value implements the array values manipulated by the language
runtime: rank-n arrays of numbers or characters, plus arrays of function
elements.  The package owns the pervasive (elementwise, broadcasting)
kernels, the structural kernels, and the reconciliation functions for the
mirrored undo forms.

Values are treated as immutable.  Structural operations return new values
and may share underlying storage with their inputs; callers that need an
independent value use Copy.

All kernels report shape and type mismatches as *Error values rather than
aborting.
*/
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Error is a type or shape mismatch reported by a kernel.
type Error struct {
	msg string
}

// Errorf returns a new kernel error with a formatted message.
func Errorf(format string, v ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, v...)}
}

// Error implements the error interface.
func (e *Error) Error() string { return e.msg }

// Type is the element type of a Val.
type Type uint

// Possible Type values
const (
	TInvalid Type = iota
	TNum
	TChar
	TFunc
)

var typeStrings = []string{
	TInvalid: "INVALID",
	TNum:     "number",
	TChar:    "character",
	TFunc:    "function",
}

func (t Type) String() string {
	if int(t) >= len(typeStrings) {
		return typeStrings[TInvalid]
	}
	return typeStrings[t]
}

// Func is the capability surface the value layer requires of function
// elements.  The concrete function representation lives in the run package.
type Func interface {
	// FuncArgs returns the number of operands the function consumes.
	FuncArgs() int
	// FuncOuts returns the number of values the function produces.
	FuncOuts() int
	String() string
}

// Val is an array value.  A Val with an empty shape is a scalar holding
// exactly one element.  Exactly one of the data slices is populated,
// according to Typ, and its length is the product of the shape.
type Val struct {
	Typ   Type
	Shape []int
	Nums  []float64
	Chars []rune
	Funcs []Func
}

// Num returns a scalar number value.
func Num(x float64) Val {
	return Val{Typ: TNum, Nums: []float64{x}}
}

// Bool returns a scalar 1 or 0.
func Bool(b bool) Val {
	if b {
		return Num(1)
	}
	return Num(0)
}

// Char returns a scalar character value.
func Char(r rune) Val {
	return Val{Typ: TChar, Chars: []rune{r}}
}

// Str returns a character vector value.
func Str(s string) Val {
	chars := []rune(s)
	return Val{Typ: TChar, Shape: []int{len(chars)}, Chars: chars}
}

// FromFunc returns a scalar function value.
func FromFunc(f Func) Val {
	return Val{Typ: TFunc, Funcs: []Func{f}}
}

// FromInts returns a numeric vector value.
func FromInts(xs []int) Val {
	nums := make([]float64, len(xs))
	for i, x := range xs {
		nums[i] = float64(x)
	}
	return Val{Typ: TNum, Shape: []int{len(xs)}, Nums: nums}
}

// NewNum returns a numeric array with the given shape and flat data.
func NewNum(shape []int, nums []float64) Val {
	return Val{Typ: TNum, Shape: shape, Nums: nums}
}

// Rank returns the number of axes of v.
func (v Val) Rank() int { return len(v.Shape) }

// Count returns the number of elements in v.
func (v Val) Count() int {
	n := 1
	for _, d := range v.Shape {
		n *= d
	}
	return n
}

// RowCount returns the number of rows (cells along the first axis).  A
// scalar has one row: itself.
func (v Val) RowCount() int {
	if v.Rank() == 0 {
		return 1
	}
	return v.Shape[0]
}

// rowElems returns the number of elements in one row of v.
func (v Val) rowElems() int {
	if v.Rank() == 0 {
		return 1
	}
	if v.Shape[0] == 0 {
		n := 1
		for _, d := range v.Shape[1:] {
			n *= d
		}
		return n
	}
	return v.Count() / v.Shape[0]
}

// Row returns row i of v.  The returned value shares storage with v.
func (v Val) Row(i int) Val {
	if v.Rank() == 0 {
		return v
	}
	n := v.rowElems()
	out := Val{Typ: v.Typ, Shape: v.Shape[1:]}
	switch v.Typ {
	case TNum:
		out.Nums = v.Nums[i*n : (i+1)*n]
	case TChar:
		out.Chars = v.Chars[i*n : (i+1)*n]
	case TFunc:
		out.Funcs = v.Funcs[i*n : (i+1)*n]
	}
	return out
}

// Rows returns all rows of v.
func (v Val) Rows() []Val {
	rows := make([]Val, v.RowCount())
	for i := range rows {
		rows[i] = v.Row(i)
	}
	return rows
}

// Copy returns a deep copy of v.
func (v Val) Copy() Val {
	cp := Val{Typ: v.Typ}
	cp.Shape = append([]int(nil), v.Shape...)
	cp.Nums = append([]float64(nil), v.Nums...)
	cp.Chars = append([]rune(nil), v.Chars...)
	cp.Funcs = append([]Func(nil), v.Funcs...)
	return cp
}

// Equal reports exact structural equality of v and w: same type, same
// shape, same elements.
func (v Val) Equal(w Val) bool {
	if v.Typ != w.Typ || v.Rank() != w.Rank() {
		return false
	}
	for i := range v.Shape {
		if v.Shape[i] != w.Shape[i] {
			return false
		}
	}
	switch v.Typ {
	case TNum:
		for i := range v.Nums {
			if v.Nums[i] != w.Nums[i] && !(math.IsNaN(v.Nums[i]) && math.IsNaN(w.Nums[i])) {
				return false
			}
		}
	case TChar:
		for i := range v.Chars {
			if v.Chars[i] != w.Chars[i] {
				return false
			}
		}
	case TFunc:
		for i := range v.Funcs {
			if v.Funcs[i].String() != w.Funcs[i].String() {
				return false
			}
		}
	}
	return true
}

// AsNum extracts a scalar number from v.
func (v Val) AsNum(what string) (float64, error) {
	if v.Typ != TNum || v.Count() != 1 {
		return 0, Errorf("%s expects a number (got %s array of shape %v)", what, v.Typ, v.Shape)
	}
	return v.Nums[0], nil
}

// AsNat extracts a scalar natural number from v.
func (v Val) AsNat(what string) (int, error) {
	x, err := v.AsNum(what)
	if err != nil {
		return 0, err
	}
	n := int(x)
	if float64(n) != x || n < 0 {
		return 0, Errorf("%s expects a natural number (got %v)", what, x)
	}
	return n, nil
}

// AsInt extracts a scalar integer from v.
func (v Val) AsInt(what string) (int, error) {
	x, err := v.AsNum(what)
	if err != nil {
		return 0, err
	}
	n := int(x)
	if float64(n) != x {
		return 0, Errorf("%s expects an integer (got %v)", what, x)
	}
	return n, nil
}

// AsInts extracts a scalar or vector of integers from v.
func (v Val) AsInts(what string) ([]int, error) {
	if v.Typ != TNum || v.Rank() > 1 {
		return nil, Errorf("%s expects a list of integers (got %s array of shape %v)", what, v.Typ, v.Shape)
	}
	ints := make([]int, len(v.Nums))
	for i, x := range v.Nums {
		n := int(x)
		if float64(n) != x {
			return nil, Errorf("%s expects integers (got %v)", what, x)
		}
		ints[i] = n
	}
	return ints, nil
}

// AsString extracts a character scalar or vector from v as a string.
func (v Val) AsString(what string) (string, error) {
	if v.Typ != TChar || v.Rank() > 1 {
		return "", Errorf("%s expects a string (got %s array of shape %v)", what, v.Typ, v.Shape)
	}
	return string(v.Chars), nil
}

// AsFunc extracts a scalar function from v.
func (v Val) AsFunc(what string) (Func, error) {
	if v.Typ != TFunc || v.Count() != 1 {
		return nil, Errorf("%s expects a function (got %s array of shape %v)", what, v.Typ, v.Shape)
	}
	return v.Funcs[0], nil
}

// IsFunc reports whether v is a scalar function value.
func (v Val) IsFunc() bool {
	return v.Typ == TFunc && v.Count() == 1
}

// FromRows assembles rows into an array with one more axis.  All rows must
// share a shape and type; when fill is non-nil, shorter numeric or character
// rows of equal rank are extended with the fill element instead of failing.
func FromRows(rows []Val, fill *Val) (Val, error) {
	if len(rows) == 0 {
		return Val{Typ: TNum, Shape: []int{0}}, nil
	}
	if fill != nil {
		extended, err := fillRows(rows, *fill)
		if err != nil {
			return Val{}, err
		}
		rows = extended
	}
	first := rows[0]
	for _, r := range rows[1:] {
		if r.Typ != first.Typ {
			return Val{}, Errorf("cannot combine %s row with %s row", r.Typ, first.Typ)
		}
		if !shapeEq(r.Shape, first.Shape) {
			return Val{}, Errorf("cannot combine rows of shapes %v and %v", r.Shape, first.Shape)
		}
	}
	out := Val{Typ: first.Typ, Shape: append([]int{len(rows)}, first.Shape...)}
	for _, r := range rows {
		out.Nums = append(out.Nums, r.Nums...)
		out.Chars = append(out.Chars, r.Chars...)
		out.Funcs = append(out.Funcs, r.Funcs...)
	}
	return out, nil
}

// fillRows pads vector rows out to a common length using the fill element.
func fillRows(rows []Val, fill Val) ([]Val, error) {
	if fill.Rank() != 0 {
		return nil, Errorf("fill value must be a scalar (got shape %v)", fill.Shape)
	}
	maxLen := 0
	for _, r := range rows {
		if r.Rank() > 1 {
			return rows, nil
		}
		if r.Rank() == 1 && r.Shape[0] > maxLen {
			maxLen = r.Shape[0]
		}
	}
	if maxLen == 0 {
		return rows, nil
	}
	out := make([]Val, len(rows))
	for i, r := range rows {
		if r.Rank() != 1 || r.Typ != fill.Typ || r.Shape[0] == maxLen {
			out[i] = r
			continue
		}
		padded := r.Copy()
		for padded.Shape[0] < maxLen {
			padded.Nums = append(padded.Nums, fill.Nums...)
			padded.Chars = append(padded.Chars, fill.Chars...)
			padded.Funcs = append(padded.Funcs, fill.Funcs...)
			padded.Shape[0]++
		}
		out[i] = padded
	}
	return out, nil
}

func shapeEq(a, b []int) bool {
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

// String renders v for the REPL and trace output.  Scalars render bare,
// character vectors render as quoted strings, and other arrays render in
// nested bracket notation.
func (v Val) String() string {
	switch {
	case v.Typ == TChar && v.Rank() == 1:
		return strconv.Quote(string(v.Chars))
	case v.Rank() == 0:
		return v.elemString(0)
	default:
		var b strings.Builder
		b.WriteByte('[')
		for i := 0; i < v.RowCount(); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(v.Row(i).String())
		}
		b.WriteByte(']')
		return b.String()
	}
}

func (v Val) elemString(i int) string {
	switch v.Typ {
	case TNum:
		return FormatNum(v.Nums[i])
	case TChar:
		return "@" + string(v.Chars[i])
	case TFunc:
		return v.Funcs[i].String()
	}
	return "INVALID"
}

// FormatNum renders a number the way the language displays it, with a high
// minus for negative values and the infinity glyph.
func FormatNum(x float64) string {
	if math.IsInf(x, 1) {
		return "∞"
	}
	if math.IsInf(x, -1) {
		return "¯∞"
	}
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if strings.HasPrefix(s, "-") {
		return "¯" + s[1:]
	}
	return s
}
