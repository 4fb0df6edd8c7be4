package moneyfmt

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Style names a way of rendering a value. It carries an id, an ordered list
// of BCP 47 locale tags, and free-form attributes. A Style is immutable once
// built; accessors return copies.
//
// Locales are kept as given so that a factory, not the caller, decides
// whether a tag is usable.
type Style struct {
	id      string
	locales []string
	attrs   map[string]string
}

// StyleOption configures a [Style] during construction.
type StyleOption func(*Style)

// WithLocales appends locale tags, most preferred first.
func WithLocales(locales ...string) StyleOption {
	return func(s *Style) { s.locales = append(s.locales, locales...) }
}

// WithAttribute sets a single attribute.
func WithAttribute(key, value string) StyleOption {
	return func(s *Style) { s.attrs[key] = value }
}

// WithAttributes sets every attribute in m.
func WithAttributes(m map[string]string) StyleOption {
	return func(s *Style) { maps.Copy(s.attrs, m) }
}

// NewStyle builds a style with the given id.
func NewStyle(id string, opts ...StyleOption) *Style {
	s := &Style{id: id, attrs: map[string]string{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the style id.
func (s *Style) ID() string { return s.id }

// Locales returns the locale tags in preference order.
func (s *Style) Locales() []string { return slices.Clone(s.locales) }

// Attribute returns the attribute stored under key.
func (s *Style) Attribute(key string) (string, bool) {
	v, ok := s.attrs[key]
	return v, ok
}

// Attributes returns a copy of all attributes.
func (s *Style) Attributes() map[string]string { return maps.Clone(s.attrs) }

// String returns the id followed by the locales, e.g. "default[de-DE,en]".
func (s *Style) String() string {
	if len(s.locales) == 0 {
		return s.id
	}
	return s.id + "[" + strings.Join(s.locales, ",") + "]"
}

// key is a canonical identity: two styles share a key only when they are
// equal. Every part is quoted so no id, locale or attribute can run into
// the next one.
func (s *Style) key() string {
	var b strings.Builder
	b.WriteString(strconv.Quote(s.id))
	for _, loc := range s.locales {
		b.WriteString(" l")
		b.WriteString(strconv.Quote(loc))
	}
	for _, k := range slices.Sorted(maps.Keys(s.attrs)) {
		b.WriteString(" a")
		b.WriteString(strconv.Quote(k))
		b.WriteByte('=')
		b.WriteString(strconv.Quote(s.attrs[k]))
	}
	return b.String()
}
