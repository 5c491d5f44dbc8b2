package value

import "math"

// MonadicNum applies f to every number element of v.  Character and
// function arrays do not pervade.
func MonadicNum(name string, v Val, f func(float64) float64) (Val, error) {
	if v.Typ != TNum {
		return Val{}, Errorf("cannot apply %s to a %s array", name, v.Typ)
	}
	out := v.Copy()
	for i, x := range out.Nums {
		out.Nums[i] = f(x)
	}
	return out, nil
}

// Monadic pervasive kernels.

func Not(v Val) (Val, error)  { return MonadicNum("not", v, func(x float64) float64 { return 1 - x }) }
func Neg(v Val) (Val, error)  { return MonadicNum("negate", v, func(x float64) float64 { return -x }) }
func Abs(v Val) (Val, error)  { return MonadicNum("absolute value", v, math.Abs) }
func Sign(v Val) (Val, error) { return MonadicNum("sign", v, sign) }
func Sqrt(v Val) (Val, error) { return MonadicNum("sqrt", v, math.Sqrt) }
func Sin(v Val) (Val, error)  { return MonadicNum("sine", v, math.Sin) }
func Cos(v Val) (Val, error)  { return MonadicNum("cosine", v, math.Cos) }
func Asin(v Val) (Val, error) { return MonadicNum("arcsine", v, math.Asin) }
func Acos(v Val) (Val, error) { return MonadicNum("arccosine", v, math.Acos) }
func Floor(v Val) (Val, error) {
	return MonadicNum("floor", v, math.Floor)
}
func Ceil(v Val) (Val, error) {
	return MonadicNum("ceiling", v, math.Ceil)
}
func Round(v Val) (Val, error) {
	return MonadicNum("round", v, math.Round)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// dyadicOp defines how one dyadic pervasive primitive combines a pair of
// elements.  Each combination of element types is optional; nil marks a type
// pairing the primitive does not support.
type dyadicOp struct {
	name string
	// numNum combines two numbers into a number.
	numNum func(a, b float64) float64
	// charChar combines two characters into a number.
	charChar func(a, b rune) (float64, bool)
	// charNum combines a character and a number into a character.  The
	// number may appear on either side; swap marks which.
	charNum func(c rune, x float64) (rune, bool)
}

// DyadicNum applies a number-only dyadic kernel with broadcasting.
func DyadicNum(name string, a, b Val, f func(x, y float64) float64) (Val, error) {
	return pervadeDyadic(dyadicOp{name: name, numNum: f}, a, b)
}

// Dyadic pervasive kernels.  The operand order follows the stack: the first
// argument is the value popped first (the top of the stack).

func Add(a, b Val) (Val, error) {
	return pervadeDyadic(dyadicOp{
		name:    "add",
		numNum:  func(x, y float64) float64 { return x + y },
		charNum: func(c rune, x float64) (rune, bool) { return c + rune(int(x)), true },
	}, a, b)
}

func Sub(a, b Val) (Val, error) {
	// subtract a from b: the value popped second is the minuend
	return pervadeDyadic(dyadicOp{
		name:     "subtract",
		numNum:   func(x, y float64) float64 { return y - x },
		charChar: func(x, y rune) (float64, bool) { return float64(y - x), true },
	}, a, b)
}

func Mul(a, b Val) (Val, error) {
	return DyadicNum("multiply", a, b, func(x, y float64) float64 { return x * y })
}

func Div(a, b Val) (Val, error) {
	return DyadicNum("divide", a, b, func(x, y float64) float64 { return y / x })
}

func Modulus(a, b Val) (Val, error) {
	return DyadicNum("modulus", a, b, func(x, y float64) float64 {
		m := math.Mod(y, x)
		if m != 0 && (m < 0) != (x < 0) {
			m += x
		}
		return m
	})
}

func Pow(a, b Val) (Val, error) {
	return DyadicNum("power", a, b, func(x, y float64) float64 { return math.Pow(y, x) })
}

func Log(a, b Val) (Val, error) {
	return DyadicNum("logarithm", a, b, func(x, y float64) float64 { return math.Log(y) / math.Log(x) })
}

func Min(a, b Val) (Val, error) { return DyadicNum("minimum", a, b, math.Min) }
func Max(a, b Val) (Val, error) { return DyadicNum("maximum", a, b, math.Max) }

func Atan2(a, b Val) (Val, error) {
	return DyadicNum("atangent", a, b, math.Atan2)
}

func IsEq(a, b Val) (Val, error) { return compare(a, b, "equals", func(c int) bool { return c == 0 }) }
func IsNe(a, b Val) (Val, error) {
	return compare(a, b, "not equals", func(c int) bool { return c != 0 })
}
func IsLt(a, b Val) (Val, error) {
	return compare(a, b, "less than", func(c int) bool { return c < 0 })
}
func IsLe(a, b Val) (Val, error) {
	return compare(a, b, "less or equal", func(c int) bool { return c <= 0 })
}
func IsGt(a, b Val) (Val, error) {
	return compare(a, b, "greater than", func(c int) bool { return c > 0 })
}
func IsGe(a, b Val) (Val, error) {
	return compare(a, b, "greater or equal", func(c int) bool { return c >= 0 })
}

// compare builds a comparison kernel.  The comparison is y OP x where x was
// popped first, matching the dyadic operand convention.
func compare(a, b Val, name string, keep func(int) bool) (Val, error) {
	return pervadeDyadic(dyadicOp{
		name: name,
		numNum: func(x, y float64) float64 {
			c := 0
			switch {
			case y < x:
				c = -1
			case y > x:
				c = 1
			}
			return boolNum(keep(c))
		},
		charChar: func(x, y rune) (float64, bool) {
			c := 0
			switch {
			case y < x:
				c = -1
			case y > x:
				c = 1
			}
			return boolNum(keep(c)), true
		},
	}, a, b)
}

func boolNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// pervadeDyadic applies op elementwise over a and b with shape agreement:
// the shorter shape must be a prefix of the longer, and each element of the
// smaller array distributes over the corresponding cell of the larger.
func pervadeDyadic(op dyadicOp, a, b Val) (Val, error) {
	if a.Typ == TFunc || b.Typ == TFunc {
		return Val{}, Errorf("cannot apply %s to a function array", op.name)
	}
	big, small, smallFirst := a, b, false
	if b.Rank() > a.Rank() {
		big, small, smallFirst = b, a, true
	}
	if !shapeEq(big.Shape[:small.Rank()], small.Shape) {
		return Val{}, Errorf("cannot apply %s to arrays of shapes %v and %v", op.name, a.Shape, b.Shape)
	}
	chunk := 1
	if small.Count() > 0 {
		chunk = big.Count() / small.Count()
	}
	out := Val{Shape: append([]int(nil), big.Shape...)}
	n := big.Count()
	elem := func(i int) (aNum, bNum float64, aChar, bChar rune) {
		j := i / chunk
		ai, bi := i, j
		if smallFirst {
			ai, bi = j, i
		}
		if a.Typ == TNum {
			aNum = a.Nums[ai]
		} else {
			aChar = a.Chars[ai]
		}
		if b.Typ == TNum {
			bNum = b.Nums[bi]
		} else {
			bChar = b.Chars[bi]
		}
		return
	}
	switch {
	case a.Typ == TNum && b.Typ == TNum:
		if op.numNum == nil {
			return Val{}, typMismatch(op.name, a, b)
		}
		out.Typ = TNum
		out.Nums = make([]float64, n)
		for i := 0; i < n; i++ {
			x, y, _, _ := elem(i)
			out.Nums[i] = op.numNum(x, y)
		}
	case a.Typ == TChar && b.Typ == TChar:
		if op.charChar == nil {
			return Val{}, typMismatch(op.name, a, b)
		}
		out.Typ = TNum
		out.Nums = make([]float64, n)
		for i := 0; i < n; i++ {
			_, _, x, y := elem(i)
			r, ok := op.charChar(x, y)
			if !ok {
				return Val{}, typMismatch(op.name, a, b)
			}
			out.Nums[i] = r
		}
	default:
		if op.charNum == nil {
			return Val{}, typMismatch(op.name, a, b)
		}
		out.Typ = TChar
		out.Chars = make([]rune, n)
		for i := 0; i < n; i++ {
			an, bn, ac, bc := elem(i)
			c, x := ac, bn
			if a.Typ == TNum {
				c, x = bc, an
			}
			r, ok := op.charNum(c, x)
			if !ok {
				return Val{}, typMismatch(op.name, a, b)
			}
			out.Chars[i] = r
		}
	}
	return out, nil
}

func typMismatch(name string, a, b Val) *Error {
	return Errorf("cannot apply %s to %s and %s arrays", name, a.Typ, b.Typ)
}
