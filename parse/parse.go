/*
Package parse turns source text into executable words.  Each line is an
expression; words on a line execute right to left.  Modifier glyphs bind the
words that follow them as function operands, and parenthesized groups become
function literals.

Identifiers resolve through the primitive name tables: exact glyphs and
ASCII tokens first, then exact text names, then runs of format-name
prefixes, so "tabkee" parses as table keep.
*/
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	parsec "github.com/prataprc/goparsec"
	"golang.org/x/text/unicode/norm"
	"github.com/YoutacRandS-VA/uiua/prim"
	"github.com/YoutacRandS-VA/uiua/run"
	"github.com/YoutacRandS-VA/uiua/value"
)

// SyntaxError reports a lexical or structural problem in the source.
type SyntaxError struct {
	Name string
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Name, e.Line, e.Col, e.Msg)
}

// Parse converts source text into words in execution order.  Input is
// normalized to NFC first so that composed and decomposed spellings of the
// same glyph resolve identically.
func Parse(name, src string) ([]run.Word, error) {
	src = norm.NFC.String(src)
	var words []run.Word
	for ln, line := range strings.Split(src, "\n") {
		line = stripComment(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		items, err := parseLine(name, ln+1, line)
		if err != nil {
			return nil, err
		}
		lineWords, err := wordsOf(name, items)
		if err != nil {
			return nil, err
		}
		words = append(words, lineWords...)
	}
	return words, nil
}

// stripComment drops everything from the first # that is not inside a
// string or character literal.
func stripComment(line string) string {
	inStr, esc := false, false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case esc:
			esc = false
		case inStr && c == '\\':
			esc = true
		case c == '"':
			inStr = !inStr
		case !inStr && c == '@' && i+1 < len(line):
			_, n := utf8.DecodeRuneInString(line[i+1:])
			i += n
		case !inStr && c == '#':
			return line[:i]
		}
	}
	return line
}

type itemKind uint

const (
	litItem itemKind = iota
	primItem
	groupItem
	errItem
)

type item struct {
	kind  itemKind
	val   value.Val
	prims []prim.Primitive
	items []item
	span  run.Span
	msg   string
}

// parseLine lexes one source line into items.
func parseLine(name string, lineNo int, line string) ([]item, error) {
	spanAt := func(pos int, text string) run.Span {
		return run.Span{
			Line: lineNo,
			Col:  utf8.RuneCountInString(line[:pos]) + 1,
			Text: text,
		}
	}

	number := parsec.Token(`^¯?[0-9]+(\.[0-9]+)?(_¯?[0-9]+(\.[0-9]+)?)*`, "NUMBER")
	str := parsec.Token(`^"(?:[^"\\]|\\.)*"`, "STRING")
	char := parsec.Token(`^@\S`, "CHAR")
	op := parsec.Token(`^!=|^<=|^>=|^&[a-z]+`, "OP")
	ident := parsec.Token(`^[a-zA-Z]+`, "NAME")
	glyph := parsec.Token(`^[^\s()]`, "GLYPH")
	open := parsec.Atom("(", "OPEN")
	closeP := parsec.Atom(")", "CLOSE")

	collect := func(ns []parsec.ParsecNode) parsec.ParsecNode { return ns }

	var itemP parsec.Parser
	group := parsec.And(func(ns []parsec.ParsecNode) parsec.ParsecNode {
		openT := ns[0].(*parsec.Terminal)
		inner := ns[1].([]parsec.ParsecNode)
		it := item{kind: groupItem, span: spanAt(openT.Position, "(")}
		for _, n := range inner {
			it.items = append(it.items, n.(item))
		}
		return it
	}, open, parsec.Kleene(collect, &itemP), closeP)

	itemP = parsec.OrdChoice(func(ns []parsec.ParsecNode) parsec.ParsecNode {
		switch n := ns[0].(type) {
		case item:
			return n
		case *parsec.Terminal:
			return tokenItem(n, spanAt(n.Position, n.Value))
		}
		return item{kind: errItem, msg: "unrecognized input"}
	}, number, str, char, op, ident, group, glyph)

	all := parsec.Kleene(collect, &itemP)
	node, next := all(parsec.NewScanner([]byte(line)))
	if _, s := next.SkipWS(); !s.Endof() {
		span := spanAt(s.GetCursor(), "")
		return nil, &SyntaxError{Name: name, Line: span.Line, Col: span.Col, Msg: "unexpected input"}
	}
	var items []item
	for _, n := range node.([]parsec.ParsecNode) {
		it := n.(item)
		if it.kind == errItem {
			return nil, &SyntaxError{Name: name, Line: it.span.Line, Col: it.span.Col, Msg: it.msg}
		}
		items = append(items, it)
	}
	return items, nil
}

// tokenItem converts one lexical token into an item.
func tokenItem(t *parsec.Terminal, span run.Span) item {
	switch t.Name {
	case "NUMBER":
		v, err := numberLit(t.Value)
		if err != nil {
			return item{kind: errItem, span: span, msg: err.Error()}
		}
		return item{kind: litItem, val: v, span: span}
	case "STRING":
		s, err := strconv.Unquote(t.Value)
		if err != nil {
			return item{kind: errItem, span: span, msg: fmt.Sprintf("bad string literal %s", t.Value)}
		}
		return item{kind: litItem, val: value.Str(s), span: span}
	case "CHAR":
		r := []rune(t.Value)
		return item{kind: litItem, val: value.Char(r[1]), span: span}
	default:
		prims, ok := resolvePrims(t.Value)
		if !ok {
			return item{kind: errItem, span: span, msg: fmt.Sprintf("unknown word %q", t.Value)}
		}
		return item{kind: primItem, prims: prims, span: span}
	}
}

// numberLit parses a number or an underscore strand of numbers.
func numberLit(text string) (value.Val, error) {
	parts := strings.Split(text, "_")
	nums := make([]float64, len(parts))
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.ReplaceAll(part, "¯", "-"), 64)
		if err != nil {
			return value.Val{}, fmt.Errorf("bad number literal %q", part)
		}
		nums[i] = x
	}
	if len(nums) == 1 {
		return value.Num(nums[0]), nil
	}
	return value.NewNum([]int{len(nums)}, nums), nil
}

// resolvePrims resolves a token through the primitive surface tables, most
// specific first.
func resolvePrims(text string) ([]prim.Primitive, bool) {
	if r := []rune(text); len(r) == 1 {
		if p, ok := prim.FromGlyph(r[0]); ok {
			return []prim.Primitive{p}, true
		}
	}
	if p, ok := prim.FromASCII(text); ok {
		return []prim.Primitive{p}, true
	}
	if p, ok := prim.FromName(text); ok {
		return []prim.Primitive{p}, true
	}
	if segs, ok := prim.FromFormatNameMulti(text); ok {
		prims := make([]prim.Primitive, len(segs))
		for i, seg := range segs {
			prims[i] = seg.Prim
		}
		return prims, true
	}
	return nil, false
}

// atomize expands multi-primitive items (from format-name runs) into one
// item per primitive.
func atomize(items []item) []item {
	var out []item
	for _, it := range items {
		if it.kind != primItem || len(it.prims) <= 1 {
			out = append(out, it)
			continue
		}
		for _, p := range it.prims {
			out = append(out, item{kind: primItem, prims: []prim.Primitive{p}, span: it.span})
		}
	}
	return out
}

// wordsOf converts items in source order into words in execution order.
func wordsOf(name string, items []item) ([]run.Word, error) {
	items = atomize(items)
	var src []run.Word
	i := 0
	for i < len(items) {
		unit, next, err := nextUnit(name, items, i)
		if err != nil {
			return nil, err
		}
		src = append(src, unit...)
		i = next
	}
	for l, r := 0, len(src)-1; l < r; l, r = l+1, r-1 {
		src[l], src[r] = src[r], src[l]
	}
	return src, nil
}

// nextUnit consumes one source unit starting at i: a literal, a group, a
// plain primitive, or a modifier together with its operands.  The returned
// words are in source order.
func nextUnit(name string, items []item, i int) ([]run.Word, int, error) {
	it := items[i]
	switch it.kind {
	case litItem:
		return []run.Word{run.LitWord(it.val, it.span)}, i + 1, nil
	case groupItem:
		inner, err := wordsOf(name, it.items)
		if err != nil {
			return nil, 0, err
		}
		fn := run.WordsFunc("", inner)
		return []run.Word{run.FnWord(fn, it.span)}, i + 1, nil
	}
	p := it.prims[0]
	words := []run.Word{run.PrimWord(p, it.span)}
	margs, ok := p.ModifierArgs()
	if !ok {
		return words, i + 1, nil
	}
	next := i + 1
	for k := 0; k < margs; k++ {
		if next >= len(items) {
			return nil, 0, &SyntaxError{
				Name: name, Line: it.span.Line, Col: it.span.Col,
				Msg: fmt.Sprintf("%s is missing operand %d of %d", p, k+1, margs),
			}
		}
		unit, n, err := nextUnit(name, items, next)
		if err != nil {
			return nil, 0, err
		}
		fn, err := operandFn(unit)
		if err != nil {
			return nil, 0, err
		}
		words = append(words, run.FnWord(fn, unit[0].Span))
		next = n
	}
	return words, next, nil
}

// operandFn wraps a source unit as a function operand.
func operandFn(unit []run.Word) (*run.Function, error) {
	if len(unit) == 1 {
		w := unit[0]
		switch {
		case w.Fn != nil:
			return w.Fn, nil
		case w.Lit != nil:
			return run.ConstFunc(*w.Lit), nil
		default:
			return run.PrimFunc(w.Prim), nil
		}
	}
	rev := make([]run.Word, len(unit))
	for i, w := range unit {
		rev[len(unit)-1-i] = w
	}
	return run.WordsFunc("", rev), nil
}
