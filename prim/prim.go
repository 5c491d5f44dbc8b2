/*
Package prim defines the closed set of builtin primitives for the language
runtime along with their surface names, semantic classes, stack arities,
inverses, and the name resolution routines used by the front end and the
source beautifier.

Primitives are compile-time identities.  They are never constructed or
destroyed at runtime and all of their attributes are stored in a fixed
definition table which is validated when the package is initialized.
*/
package prim

import (
	"fmt"
	"math"
)

// Class categorizes a primitive by its broad semantic role.  The class is
// descriptive only; execution behavior is determined by the dispatcher.
type Class uint

// Possible Class values
const (
	ClassInvalid Class = iota
	ClassStack
	ClassConstant
	ClassMonadicPervasive
	ClassDyadicPervasive
	ClassMonadicArray
	ClassDyadicArray
	ClassIteratingModifier
	ClassAggregatingModifier
	ClassOtherModifier
	ClassControl
	ClassMisc
	ClassSys
)

var classStrings = []string{
	ClassInvalid:             "INVALID",
	ClassStack:               "stack",
	ClassConstant:            "constant",
	ClassMonadicPervasive:    "monadic pervasive",
	ClassDyadicPervasive:     "dyadic pervasive",
	ClassMonadicArray:        "monadic array",
	ClassDyadicArray:         "dyadic array",
	ClassIteratingModifier:   "iterating modifier",
	ClassAggregatingModifier: "aggregating modifier",
	ClassOtherModifier:       "other modifier",
	ClassControl:             "control",
	ClassMisc:                "misc",
	ClassSys:                 "system",
}

func (c Class) String() string {
	if int(c) >= len(classStrings) {
		return classStrings[ClassInvalid]
	}
	return classStrings[c]
}

// IsPervasive returns true for the elementwise, broadcasting classes.
func (c Class) IsPervasive() bool {
	return c == ClassMonadicPervasive || c == ClassDyadicPervasive
}

// Primitives returns all primitives belonging to class c, in declaration
// order.
func (c Class) Primitives() []Primitive {
	var prims []Primitive
	for _, p := range All() {
		if p.Class() == c {
			prims = append(prims, p)
		}
	}
	return prims
}

// Primitive identifies a builtin operation.  The zero value is invalid.
type Primitive uint

// The complete set of primitives.  Mirrored undo forms are declared
// immediately after their base primitive.
const (
	Invalid Primitive = iota

	// Stack manipulation
	Dup
	Over
	Flip
	Pop
	Roll
	Unroll
	Dip
	Gap
	Identity
	Restack

	// Constants
	Eta
	Pi
	Tau
	Infinity

	// Monadic pervasive
	Not
	Sign
	Neg
	Abs
	Sqrt
	Sin
	Cos
	Asin
	Acos
	Floor
	Ceil
	Round

	// Dyadic pervasive
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Add
	Sub
	Mul
	Div
	Mod
	Pow
	Log
	Min
	Max
	Atan

	// Monadic array
	Len
	Shape
	Range
	First
	Last
	Reverse
	Deshape
	Bits
	InverseBits
	Transpose
	InvTranspose
	Rise
	Fall
	Where
	InvWhere
	Classify
	Deduplicate
	Box
	Unbox

	// Dyadic array
	Match
	Couple
	Uncouple
	Join
	Select
	Unselect
	Pick
	Unpick
	Reshape
	Take
	Untake
	Drop
	Undrop
	Rotate
	Windows
	Keep
	Unkeep
	Find
	Member
	IndexOf

	// Iterating modifiers
	Each
	Rows
	Distribute
	Table
	Cross
	Repeat
	Level

	// Aggregating modifiers
	Fold
	Reduce
	Scan
	Group
	Partition

	// Other modifiers
	Invert
	Under
	Fill
	Bind
	Both
	Fork
	Bracket
	If
	Try
	Dump
	Spawn

	// Control
	Break
	Recur

	// Misc
	Call
	Parse
	Assert
	Rand
	Gen
	Deal
	Use
	Tag
	Type
	Sig
	Wait
	Now
	Trace
	InvTrace

	numPrimitives
)

// Names holds the surface spellings of a primitive.  A primitive may have a
// text name, an ASCII token, a glyph, any combination of the three, or none
// at all.
type Names struct {
	Text  string
	ASCII string
	Glyph rune
}

// All returns every primitive in declaration order.
func All() []Primitive {
	prims := make([]Primitive, 0, numPrimitives-1)
	for p := Invalid + 1; p < numPrimitives; p++ {
		prims = append(prims, p)
	}
	return prims
}

// NonDeprecated returns every primitive that has not been deprecated.
func NonDeprecated() []Primitive {
	var prims []Primitive
	for _, p := range All() {
		if !p.IsDeprecated() {
			prims = append(prims, p)
		}
	}
	return prims
}

// Names returns the surface spellings of p.  Names returns false if p has no
// surface at all, in which case p renders through a fallback expression.
func (p Primitive) Names() (Names, bool) {
	d := p.def()
	if d.names == (Names{}) {
		return Names{}, false
	}
	return d.names, true
}

// Name returns the text name of p or the empty string.
func (p Primitive) Name() string {
	return p.def().names.Text
}

// ASCII returns the ASCII token of p or the empty string.
func (p Primitive) ASCII() string {
	return p.def().names.ASCII
}

// Glyph returns the glyph of p or the rune zero value.
func (p Primitive) Glyph() rune {
	return p.def().names.Glyph
}

// Class returns the semantic class of p.
func (p Primitive) Class() Class {
	return p.def().class
}

// ModifierArgs returns the number of function operands p takes.  The second
// return is false if p is not a modifier.
func (p Primitive) ModifierArgs() (int, bool) {
	d := p.def()
	return d.margs, d.margs > 0
}

// IsModifier returns true if p takes function operands.
func (p Primitive) IsModifier() bool {
	_, ok := p.ModifierArgs()
	return ok
}

// Args returns the number of operand values p pops.  The second return is
// false for primitives whose operand count is not fixed (modifiers and a
// handful of value-directed primitives).
func (p Primitive) Args() (int, bool) {
	d := p.def()
	if d.args < 0 {
		return 0, false
	}
	return d.args, true
}

// Outputs returns the number of values p pushes.  The second return is false
// for primitives whose output count is not fixed.
func (p Primitive) Outputs() (int, bool) {
	d := p.def()
	if d.outs < 0 {
		return 0, false
	}
	return d.outs, true
}

// Constant returns the constant value p pushes.  The second return is false
// for non-constant primitives.
func (p Primitive) Constant() (float64, bool) {
	switch p {
	case Eta:
		return math.Pi / 2, true
	case Pi:
		return math.Pi, true
	case Tau:
		return 2 * math.Pi, true
	case Infinity:
		return math.Inf(1), true
	}
	return 0, false
}

// DeprecationSuggestion returns replacement advice for a deprecated
// primitive.  The second return is false if p is not deprecated.  The
// suggestion may be empty for primitives that are slated for removal with no
// replacement.
func (p Primitive) DeprecationSuggestion() (string, bool) {
	switch p {
	case Roll, Unroll:
		return fmt.Sprintf("try using dip%s instead", Dip), true
	case Restack:
		return "", true
	}
	return "", false
}

// IsDeprecated returns true if use of p should raise a diagnostic.
func (p Primitive) IsDeprecated() bool {
	_, ok := p.DeprecationSuggestion()
	return ok
}

// String renders the canonical display of p: glyph first, then ASCII token,
// then text name.  Primitives with no surface render as a fixed expression
// composed from other primitives' displays.  Inverse-tagged forms render as
// the invert glyph prefixing their base primitive.
func (p Primitive) String() string {
	if n, ok := p.Names(); ok {
		switch {
		case n.Glyph != 0:
			return string(n.Glyph)
		case n.ASCII != "":
			return n.ASCII
		default:
			return n.Text
		}
	}
	switch p {
	case InvTranspose:
		return invString(Transpose)
	case InverseBits:
		return invString(Bits)
	case InvTrace:
		return invString(Trace)
	case InvWhere:
		return invString(Where)
	case Uncouple:
		return invString(Couple)
	case Untake:
		return invString(Take)
	case Undrop:
		return invString(Drop)
	case Unselect:
		return invString(Select)
	case Unpick:
		return invString(Pick)
	case Unkeep:
		return invString(Keep)
	case Cos:
		return Sin.String() + Add.String() + Eta.String()
	case Asin:
		return invString(Sin)
	case Acos:
		return Invert.String() + Cos.String()
	case Last:
		return First.String() + Reverse.String()
	}
	return fmt.Sprintf("Primitive(%d)", uint(p))
}

func invString(base Primitive) string {
	return Invert.String() + base.String()
}

func (p Primitive) def() def {
	if p == Invalid || p >= numPrimitives {
		return def{}
	}
	return defs[p]
}
