package prim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceRoundTrip(t *testing.T) {
	for _, p := range All() {
		names, ok := p.Names()
		if !ok {
			continue
		}
		if names.Text != "" {
			q, ok := FromName(names.Text)
			if assert.True(t, ok, "text %q", names.Text) {
				assert.Equal(t, p, q, "text %q", names.Text)
			}
		}
		if names.ASCII != "" {
			q, ok := FromASCII(names.ASCII)
			if assert.True(t, ok, "ascii %q", names.ASCII) {
				assert.Equal(t, p, q, "ascii %q", names.ASCII)
			}
		}
		if names.Glyph != 0 {
			q, ok := FromGlyph(names.Glyph)
			if assert.True(t, ok, "glyph %q", names.Glyph) {
				assert.Equal(t, p, q, "glyph %q", names.Glyph)
			}
		}
	}
}

func TestNameCollisions(t *testing.T) {
	for _, a := range NonDeprecated() {
		for _, b := range NonDeprecated() {
			if a >= b {
				continue
			}
			an, aok := a.Names()
			bn, bok := b.Names()
			if !aok || !bok {
				continue
			}
			if an.Text != "" {
				assert.NotEqual(t, an.Text, bn.Text, "%v and %v share a name", a, b)
			}
			if an.ASCII != "" {
				assert.NotEqual(t, an.ASCII, bn.ASCII, "%v and %v share a token", a, b)
			}
			if an.Glyph != 0 {
				assert.NotEqual(t, an.Glyph, bn.Glyph, "%v and %v share a glyph", a, b)
			}
		}
	}
}

func TestFromName(t *testing.T) {
	p, ok := FromName("reverse")
	require.True(t, ok)
	assert.Equal(t, Reverse, p)
	p, ok = FromName("REVERSE")
	require.True(t, ok)
	assert.Equal(t, Reverse, p)
	_, ok = FromName("no such primitive")
	assert.False(t, ok)
}

func TestFromFormatName(t *testing.T) {
	_, ok := FromFormatName("re")
	assert.False(t, ok, "re is ambiguous")
	p, ok := FromFormatName("rev")
	if assert.True(t, ok) {
		assert.Equal(t, Reverse, p)
	}
	p, ok = FromFormatName("resh")
	if assert.True(t, ok) {
		assert.Equal(t, Reshape, p)
	}
	_, ok = FromFormatName("Rev")
	assert.False(t, ok, "uppercase never resolves")
	_, ok = FromFormatName("r")
	assert.False(t, ok, "too short")
	_, ok = FromFormatName("ran")
	assert.False(t, ok, "range and random are both candidates")
	p, ok = FromFormatName("rand")
	if assert.True(t, ok) {
		assert.Equal(t, Rand, p)
	}
	p, ok = FromFormatName("pop")
	if assert.True(t, ok) {
		assert.Equal(t, Pop, p, "exact names resolve without a non-ascii glyph")
	}
}

func TestFromFormatNameExceptions(t *testing.T) {
	for name, want := range map[string]Primitive{
		"id": Identity,
		"ga": Gap,
		"di": Dip,
		"pi": Pi,
		"&n": Now,
	} {
		p, ok := FromFormatName(name)
		if assert.True(t, ok, "exception %q", name) {
			assert.Equal(t, want, p, "exception %q", name)
		}
	}
}

func TestFromFormatNameMulti(t *testing.T) {
	segs, ok := FromFormatNameMulti("rev")
	require.True(t, ok)
	require.Len(t, segs, 1)
	assert.Equal(t, Reverse, segs[0].Prim)
	assert.Equal(t, "rev", segs[0].Text)

	segs, ok = FromFormatNameMulti("revrev")
	require.True(t, ok)
	require.Len(t, segs, 2)
	assert.Equal(t, Reverse, segs[0].Prim)
	assert.Equal(t, Reverse, segs[1].Prim)

	segs, ok = FromFormatNameMulti("tabkee")
	require.True(t, ok)
	require.Len(t, segs, 2)
	assert.Equal(t, Table, segs[0].Prim)
	assert.Equal(t, Keep, segs[1].Prim)

	_, ok = FromFormatNameMulti("foo")
	assert.False(t, ok)
	_, ok = FromFormatNameMulti("r")
	assert.False(t, ok)
}

func TestInverseSymmetry(t *testing.T) {
	for _, p := range All() {
		inv, ok := p.Inverse()
		if !ok {
			continue
		}
		back, ok := inv.Inverse()
		if assert.True(t, ok, "inverse of %v (%v) has no inverse", p, inv) {
			assert.Equal(t, p, back, "inverse table is asymmetric at %v", p)
		}
	}
}

func TestDisplayFallbacks(t *testing.T) {
	assert.Equal(t, "∿+η", Cos.String())
	assert.Equal(t, "⍘∿", Asin.String())
	assert.Equal(t, "⍘∿+η", Acos.String())
	assert.Equal(t, "⊢⇌", Last.String())
	assert.Equal(t, "⍘⍉", InvTranspose.String())
	assert.Equal(t, "⍘⊟", Uncouple.String())
	assert.Equal(t, "⍘↙", Untake.String())
	assert.Equal(t, "⍘▽", Unkeep.String())
}

func TestDeprecation(t *testing.T) {
	assert.True(t, Roll.IsDeprecated())
	assert.True(t, Unroll.IsDeprecated())
	assert.True(t, Restack.IsDeprecated())
	s, ok := Roll.DeprecationSuggestion()
	require.True(t, ok)
	assert.Equal(t, "try using dip⊙ instead", s)
	s, ok = Restack.DeprecationSuggestion()
	require.True(t, ok)
	assert.Empty(t, s)
	assert.False(t, Reverse.IsDeprecated())
}

func TestConstants(t *testing.T) {
	for _, p := range []Primitive{Eta, Pi, Tau, Infinity} {
		_, ok := p.Constant()
		assert.True(t, ok, "%v", p)
		assert.Equal(t, ClassConstant, p.Class())
	}
	_, ok := Add.Constant()
	assert.False(t, ok)
}
