package moneyfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupDigits(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		sep  string
		want string
	}{
		"short":     {in: "123", sep: ",", want: "123"},
		"four":      {in: "1234", sep: ",", want: "1,234"},
		"six":       {in: "123456", sep: ".", want: "123.456"},
		"seven":     {in: "1234567", sep: " ", want: "1 234 567"},
		"empty sep": {in: "1234567", sep: "", want: "1234567"},
		"zero":      {in: "0", sep: ",", want: "0"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, groupDigits(tt.in, tt.sep))
		})
	}
}

func TestAlignCellWide(t *testing.T) {
	t.Parallel()
	// "¥" is two bytes but one column.
	assert.Equal(t, "  ¥5", alignCell("¥5", 4, AlignRight))
	assert.Equal(t, "¥5  ", alignCell("¥5", 4, AlignLeft))
	assert.Equal(t, "¥5", alignCell("¥5", 0, AlignCenter))
}

func TestStyleKey(t *testing.T) {
	t.Parallel()
	a := NewStyle("default", WithLocales("en", "de"), WithAttribute("b", "2"), WithAttribute("a", "1"))
	b := NewStyle("default", WithLocales("en", "de"), WithAttributes(map[string]string{"a": "1", "b": "2"}))
	assert.Equal(t, a.key(), b.key())

	assert.NotEqual(t, a.key(), NewStyle("default", WithLocales("de", "en"), WithAttributes(map[string]string{"a": "1", "b": "2"})).key())
	assert.NotEqual(t, a.key(), NewStyle("iso", WithLocales("en", "de"), WithAttributes(map[string]string{"a": "1", "b": "2"})).key())
	assert.NotEqual(t, NewStyle("x", WithAttribute("k", "v")).key(), NewStyle("x", WithLocales("k=v")).key())
}

func TestStyleKeyUnambiguous(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		a, b *Style
	}{
		"separator in attribute key": {
			a: NewStyle("x", WithAttribute("a=b", "c")),
			b: NewStyle("x", WithAttribute("a", "b=c")),
		},
		"attributes split differently": {
			a: NewStyle("x", WithAttributes(map[string]string{"a": "1\x00b=2"})),
			b: NewStyle("x", WithAttributes(map[string]string{"a": "1", "b": "2"})),
		},
		"separator in locale": {
			a: NewStyle("x", WithLocales("en\x1fde")),
			b: NewStyle("x", WithLocales("en", "de")),
		},
		"id runs into locale": {
			a: NewStyle("x\x00en"),
			b: NewStyle("x", WithLocales("en")),
		},
		"quote in id": {
			a: NewStyle(`x" l"en`),
			b: NewStyle("x", WithLocales("en")),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.NotEqual(t, tt.a.key(), tt.b.key())
		})
	}
}

func TestStyleImmutable(t *testing.T) {
	t.Parallel()
	attrs := map[string]string{"width": "4"}
	s := NewStyle("default", WithLocales("en"), WithAttributes(attrs))
	attrs["width"] = "9"

	locs := s.Locales()
	locs[0] = "fr"
	got := s.Attributes()
	got["width"] = "7"

	assert.Equal(t, []string{"en"}, s.Locales())
	v, _ := s.Attribute("width")
	assert.Equal(t, "4", v)
	assert.Equal(t, "default[en]", s.String())
	assert.Equal(t, "default", NewStyle("default").String())
}
