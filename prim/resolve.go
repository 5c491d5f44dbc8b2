package prim

import (
	"strings"
	"unicode"
)

// FromName finds a primitive by its text name.  Matching is
// case-insensitive.
func FromName(name string) (Primitive, bool) {
	for _, p := range All() {
		if t := p.Name(); t != "" && strings.EqualFold(t, name) {
			return p, true
		}
	}
	return Invalid, false
}

// FromASCII finds a primitive by its ASCII token.
func FromASCII(tok string) (Primitive, bool) {
	for _, p := range All() {
		if p.ASCII() == tok && tok != "" {
			return p, true
		}
	}
	return Invalid, false
}

// FromGlyph finds a primitive by its glyph.
func FromGlyph(r rune) (Primitive, bool) {
	for _, p := range All() {
		if p.Glyph() == r && r != 0 {
			return p, true
		}
	}
	return Invalid, false
}

// formatNameExceptions are the only format names shorter than the general
// minimum abbreviation length.
var formatNameExceptions = map[string]Primitive{
	"id": Identity,
	"ga": Gap,
	"di": Dip,
	"pi": Pi,
	"&n": Now,
}

// FromFormatName decodes a single format-name abbreviation.  A format name
// is a lowercase prefix of a primitive's text name, at least two characters
// long.  Prefixes shorter than three characters only resolve through exact
// text matches or the fixed exception table.  A prefix matching the names of
// two or more primitives is ambiguous and does not resolve, unless it is the
// complete name of one of them.  Only primitives written with a non-ASCII
// glyph participate in prefix matching; everything else must be spelled out.
func FromFormatName(name string) (Primitive, bool) {
	for _, r := range name {
		if unicode.IsUpper(r) {
			return Invalid, false
		}
	}
	if len(name) < 2 {
		return Invalid, false
	}
	if p, ok := formatNameExceptions[name]; ok {
		return p, true
	}
	for _, p := range All() {
		if t := p.Name(); t != "" && t == name {
			return p, true
		}
	}
	if len(name) < 3 {
		return Invalid, false
	}
	match := Invalid
	exact := false
	for _, p := range All() {
		names, ok := p.Names()
		if !ok || names.Glyph <= 127 || !strings.HasPrefix(names.Text, name) {
			continue
		}
		if match == Invalid {
			match = p
			exact = names.Text == name
			continue
		}
		// A second candidate is only tolerable when the first matched the
		// query exactly.
		if !exact {
			return Invalid, false
		}
	}
	return match, match != Invalid
}

// FormatSegment is one decoded segment of a multi-primitive format name.
type FormatSegment struct {
	Prim Primitive
	Text string
}

// FromFormatNameMulti decodes the concatenation of several format names into
// an ordered primitive sequence.  Segmentation is greedy: at each position
// the longest resolving substring (measured in runes, minimum two) is
// committed and never revisited.  The whole string fails to decode if any
// position has no resolving substring or if the input is shorter than two
// runes.  The encoding is lossy; several primitive sequences may share one
// encoding and decoding always returns the greedy reconstruction.
func FromFormatNameMulti(name string) ([]FormatSegment, bool) {
	var indices []int
	for i := range name {
		indices = append(indices, i)
	}
	if len(indices) < 2 {
		return nil, false
	}
	var segs []FormatSegment
	start := 0
outer:
	for start < len(indices) {
		for length := len(indices) - start; length >= 2; length-- {
			end := len(name)
			if start+length < len(indices) {
				end = indices[start+length]
			}
			sub := name[indices[start]:end]
			if p, ok := FromFormatName(sub); ok {
				segs = append(segs, FormatSegment{Prim: p, Text: sub})
				start += length
				continue outer
			}
		}
		return nil, false
	}
	return segs, true
}
