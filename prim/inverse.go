package prim

// Inverse returns the primitive that undoes p.  The mapping is a fixed,
// largely involutive table; absence means p is not globally invertible
// (most primitives lose information), not that an entry was forgotten.
func (p Primitive) Inverse() (Primitive, bool) {
	switch p {
	case Identity:
		return Identity, true
	case Flip:
		return Flip, true
	case Neg:
		return Neg, true
	case Not:
		return Not, true
	case Reverse:
		return Reverse, true
	case Sin:
		return Asin, true
	case Asin:
		return Sin, true
	case Cos:
		return Acos, true
	case Acos:
		return Cos, true
	case Couple:
		return Uncouple, true
	case Uncouple:
		return Couple, true
	case Roll:
		return Unroll, true
	case Unroll:
		return Roll, true
	case Trace:
		return InvTrace, true
	case InvTrace:
		return Trace, true
	case Box:
		return Unbox, true
	case Unbox:
		return Box, true
	case Where:
		return InvWhere, true
	case InvWhere:
		return Where, true
	case Transpose:
		return InvTranspose, true
	case InvTranspose:
		return Transpose, true
	case Bits:
		return InverseBits, true
	case InverseBits:
		return Bits, true
	}
	return Invalid, false
}

// UndoPair reports the mirrored undo form of p.  The undo form pops
// (result, selector, original) and reconciles the transformed result back
// into the original array.
func (p Primitive) UndoPair() (Primitive, bool) {
	switch p {
	case Take:
		return Untake, true
	case Drop:
		return Undrop, true
	case Select:
		return Unselect, true
	case Pick:
		return Unpick, true
	case Keep:
		return Unkeep, true
	}
	return Invalid, false
}
