package prim

import "fmt"

// def is one row of the primitive definition table.  args and outs describe
// the fixed stack arity of the primitive; -1 marks an arity that depends on
// operand values or function operands.  margs is the number of function
// operands taken by a modifier (0 for non-modifiers).
type def struct {
	names Names
	class Class
	margs int
	args  int
	outs  int
}

func n(text string) Names             { return Names{Text: text} }
func ng(text string, g rune) Names    { return Names{Text: text, Glyph: g} }
func na(text, ascii string) Names     { return Names{Text: text, ASCII: ascii} }
func nag(t, a string, g rune) Names   { return Names{Text: t, ASCII: a, Glyph: g} }
func anon() (names Names)             { return }

var defs = [numPrimitives]def{
	// Stack manipulation
	Dup:      {ng("duplicate", '.'), ClassStack, 0, 1, 2},
	Over:     {ng("over", ','), ClassStack, 0, 2, 3},
	Flip:     {nag("flip", "~", '∶'), ClassStack, 0, 2, 2},
	Pop:      {ng("pop", ';'), ClassStack, 0, 1, 0},
	Roll:     {ng("roll", '↷'), ClassStack, 0, 3, 3},
	Unroll:   {ng("unroll", '↶'), ClassStack, 0, 3, 3},
	Dip:      {ng("dip", '⊙'), ClassStack, 1, -1, -1},
	Gap:      {ng("gap", '⋅'), ClassStack, 1, -1, -1},
	Identity: {ng("identity", '∘'), ClassStack, 0, 1, 1},
	Restack:  {ng("restack", '⇵'), ClassStack, 0, -1, -1},

	// Constants
	Eta:      {ng("eta", 'η'), ClassConstant, 0, 0, 1},
	Pi:       {ng("pi", 'π'), ClassConstant, 0, 0, 1},
	Tau:      {ng("tau", 'τ'), ClassConstant, 0, 0, 1},
	Infinity: {ng("infinity", '∞'), ClassConstant, 0, 0, 1},

	// Monadic pervasive
	Not:   {ng("not", '¬'), ClassMonadicPervasive, 0, 1, 1},
	Sign:  {ng("sign", '±'), ClassMonadicPervasive, 0, 1, 1},
	Neg:   {nag("negate", "`", '¯'), ClassMonadicPervasive, 0, 1, 1},
	Abs:   {ng("absolute value", '⌵'), ClassMonadicPervasive, 0, 1, 1},
	Sqrt:  {ng("sqrt", '√'), ClassMonadicPervasive, 0, 1, 1},
	Sin:   {ng("sine", '∿'), ClassMonadicPervasive, 0, 1, 1},
	Cos:   {anon(), ClassMonadicPervasive, 0, 1, 1},
	Asin:  {anon(), ClassMonadicPervasive, 0, 1, 1},
	Acos:  {anon(), ClassMonadicPervasive, 0, 1, 1},
	Floor: {ng("floor", '⌊'), ClassMonadicPervasive, 0, 1, 1},
	Ceil:  {ng("ceiling", '⌈'), ClassMonadicPervasive, 0, 1, 1},
	Round: {ng("round", '⁅'), ClassMonadicPervasive, 0, 1, 1},

	// Dyadic pervasive
	Eq:   {nag("equals", "=", '='), ClassDyadicPervasive, 0, 2, 1},
	Ne:   {nag("not equals", "!=", '≠'), ClassDyadicPervasive, 0, 2, 1},
	Lt:   {nag("less than", "<", '<'), ClassDyadicPervasive, 0, 2, 1},
	Le:   {nag("less or equal", "<=", '≤'), ClassDyadicPervasive, 0, 2, 1},
	Gt:   {nag("greater than", ">", '>'), ClassDyadicPervasive, 0, 2, 1},
	Ge:   {nag("greater or equal", ">=", '≥'), ClassDyadicPervasive, 0, 2, 1},
	Add:  {nag("add", "+", '+'), ClassDyadicPervasive, 0, 2, 1},
	Sub:  {nag("subtract", "-", '-'), ClassDyadicPervasive, 0, 2, 1},
	Mul:  {nag("multiply", "*", '×'), ClassDyadicPervasive, 0, 2, 1},
	Div:  {nag("divide", "%", '÷'), ClassDyadicPervasive, 0, 2, 1},
	Mod:  {ng("modulus", '◿'), ClassDyadicPervasive, 0, 2, 1},
	Pow:  {ng("power", 'ⁿ'), ClassDyadicPervasive, 0, 2, 1},
	Log:  {ng("logarithm", 'ₙ'), ClassDyadicPervasive, 0, 2, 1},
	Min:  {ng("minimum", '↧'), ClassDyadicPervasive, 0, 2, 1},
	Max:  {ng("maximum", '↥'), ClassDyadicPervasive, 0, 2, 1},
	Atan: {ng("atangent", '∠'), ClassDyadicPervasive, 0, 2, 1},

	// Monadic array
	Len:          {ng("length", '⧻'), ClassMonadicArray, 0, 1, 1},
	Shape:        {ng("shape", '△'), ClassMonadicArray, 0, 1, 1},
	Range:        {ng("range", '⇡'), ClassMonadicArray, 0, 1, 1},
	First:        {ng("first", '⊢'), ClassMonadicArray, 0, 1, 1},
	Last:         {anon(), ClassMonadicArray, 0, 1, 1},
	Reverse:      {ng("reverse", '⇌'), ClassMonadicArray, 0, 1, 1},
	Deshape:      {ng("deshape", '♭'), ClassMonadicArray, 0, 1, 1},
	Bits:         {ng("bits", '⋯'), ClassMonadicArray, 0, 1, 1},
	InverseBits:  {anon(), ClassMonadicArray, 0, 1, 1},
	Transpose:    {ng("transpose", '⍉'), ClassMonadicArray, 0, 1, 1},
	InvTranspose: {anon(), ClassMonadicArray, 0, 1, 1},
	Rise:         {ng("rise", '⍏'), ClassMonadicArray, 0, 1, 1},
	Fall:         {ng("fall", '⍖'), ClassMonadicArray, 0, 1, 1},
	Where:        {ng("where", '⊚'), ClassMonadicArray, 0, 1, 1},
	InvWhere:     {anon(), ClassMonadicArray, 0, 1, 1},
	Classify:     {ng("classify", '⊛'), ClassMonadicArray, 0, 1, 1},
	Deduplicate:  {ng("deduplicate", '⊝'), ClassMonadicArray, 0, 1, 1},
	Box:          {ng("box", '□'), ClassMonadicArray, 0, 1, 1},
	Unbox:        {ng("unbox", '⊔'), ClassMonadicArray, 0, 1, 1},

	// Dyadic array
	Match:    {ng("match", '≍'), ClassDyadicArray, 0, 2, 1},
	Couple:   {ng("couple", '⊟'), ClassDyadicArray, 0, 2, 1},
	Uncouple: {anon(), ClassMonadicArray, 0, 1, 2},
	Join:     {ng("join", '⊂'), ClassDyadicArray, 0, 2, 1},
	Select:   {ng("select", '⊏'), ClassDyadicArray, 0, 2, 1},
	Unselect: {anon(), ClassDyadicArray, 0, 3, 1},
	Pick:     {ng("pick", '⊡'), ClassDyadicArray, 0, 2, 1},
	Unpick:   {anon(), ClassDyadicArray, 0, 3, 1},
	Reshape:  {ng("reshape", '↯'), ClassDyadicArray, 0, 2, 1},
	Take:     {ng("take", '↙'), ClassDyadicArray, 0, 2, 1},
	Untake:   {anon(), ClassDyadicArray, 0, 3, 1},
	Drop:     {ng("drop", '↘'), ClassDyadicArray, 0, 2, 1},
	Undrop:   {anon(), ClassDyadicArray, 0, 3, 1},
	Rotate:   {ng("rotate", '↻'), ClassDyadicArray, 0, 2, 1},
	Windows:  {ng("windows", '◫'), ClassDyadicArray, 0, 2, 1},
	Keep:     {ng("keep", '▽'), ClassDyadicArray, 0, 2, 1},
	Unkeep:   {anon(), ClassDyadicArray, 0, 3, 1},
	Find:     {ng("find", '⌕'), ClassDyadicArray, 0, 2, 1},
	Member:   {ng("member", '∊'), ClassDyadicArray, 0, 2, 1},
	IndexOf:  {ng("indexof", '⊗'), ClassDyadicArray, 0, 2, 1},

	// Iterating modifiers
	Each:       {ng("each", '∵'), ClassIteratingModifier, 1, -1, -1},
	Rows:       {ng("rows", '≡'), ClassIteratingModifier, 1, -1, -1},
	Distribute: {ng("distribute", '∺'), ClassIteratingModifier, 1, -1, -1},
	Table:      {ng("table", '⊞'), ClassIteratingModifier, 1, -1, -1},
	Cross:      {ng("cross", '⊠'), ClassIteratingModifier, 1, -1, -1},
	Repeat:     {ng("repeat", '⍥'), ClassIteratingModifier, 1, -1, -1},
	Level:      {ng("level", '⍚'), ClassIteratingModifier, 2, -1, -1},

	// Aggregating modifiers
	Fold:      {ng("fold", '∧'), ClassAggregatingModifier, 1, -1, -1},
	Reduce:    {ng("reduce", '/'), ClassAggregatingModifier, 1, -1, -1},
	Scan:      {ng("scan", '\\'), ClassAggregatingModifier, 1, -1, -1},
	Group:     {ng("group", '⊕'), ClassAggregatingModifier, 1, -1, -1},
	Partition: {ng("partition", '⊜'), ClassAggregatingModifier, 1, -1, -1},

	// Other modifiers
	Invert:  {ng("invert", '⍘'), ClassOtherModifier, 1, -1, -1},
	Under:   {ng("under", '⍜'), ClassOtherModifier, 2, -1, -1},
	Fill:    {ng("fill", '⬚'), ClassOtherModifier, 2, -1, -1},
	Bind:    {na("bind", "'"), ClassOtherModifier, 2, -1, -1},
	Both:    {ng("both", '∩'), ClassOtherModifier, 1, -1, -1},
	Fork:    {ng("fork", '⊃'), ClassOtherModifier, 2, -1, -1},
	Bracket: {ng("bracket", '⊓'), ClassOtherModifier, 2, -1, -1},
	If:      {ng("if", '?'), ClassOtherModifier, 2, -1, -1},
	Try:     {ng("try", '⍣'), ClassOtherModifier, 2, -1, -1},
	Dump:    {n("dump"), ClassOtherModifier, 1, -1, -1},
	Spawn:   {n("spawn"), ClassOtherModifier, 1, -1, -1},

	// Control
	Break: {ng("break", '⎋'), ClassControl, 0, 1, 0},
	Recur: {ng("recur", '↬'), ClassControl, 0, 1, 0},

	// Misc
	Call:     {ng("call", '!'), ClassMisc, 0, -1, -1},
	Parse:    {n("parse"), ClassMisc, 0, 1, 1},
	Assert:   {ng("assert", '⍤'), ClassMisc, 0, 2, 0},
	Rand:     {ng("random", '⚂'), ClassMisc, 0, 0, 1},
	Gen:      {n("gen"), ClassMisc, 0, 1, 2},
	Deal:     {n("deal"), ClassMisc, 0, 2, 1},
	Use:      {n("use"), ClassMisc, 0, 2, 1},
	Tag:      {n("tag"), ClassMisc, 0, 0, 1},
	Type:     {n("type"), ClassMisc, 0, 1, 1},
	Sig:      {n("signature"), ClassMisc, 0, 1, 1},
	Wait:     {n("wait"), ClassMisc, 0, 1, -1},
	Now:      {na("now", "&n"), ClassMisc, 0, 0, 1},
	Trace:    {ng("trace", '⸮'), ClassMisc, 0, 1, 1},
	InvTrace: {anon(), ClassMisc, 0, 1, 1},
}

func init() {
	// The definition table is closed.  Refuse to start if any primitive is
	// missing a class or if two live primitives collide on a surface.
	for _, p := range All() {
		if p.def().class == ClassInvalid {
			panic(fmt.Sprintf("primitive %d has no definition", uint(p)))
		}
	}
	text := make(map[string]Primitive)
	ascii := make(map[string]Primitive)
	glyph := make(map[rune]Primitive)
	for _, p := range NonDeprecated() {
		names, ok := p.Names()
		if !ok {
			continue
		}
		if names.Text != "" {
			if q, dup := text[names.Text]; dup {
				panic(fmt.Sprintf("duplicate text name %q: %v and %v", names.Text, q, p))
			}
			text[names.Text] = p
		}
		if names.ASCII != "" {
			if q, dup := ascii[names.ASCII]; dup {
				panic(fmt.Sprintf("duplicate ascii token %q: %v and %v", names.ASCII, q, p))
			}
			ascii[names.ASCII] = p
		}
		if names.Glyph != 0 {
			if q, dup := glyph[names.Glyph]; dup {
				panic(fmt.Sprintf("duplicate glyph %q: %v and %v", names.Glyph, q, p))
			}
			glyph[names.Glyph] = p
		}
	}
}
