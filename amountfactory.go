package moneyfmt

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
)

// Style ids supported by [AmountFactory].
const (
	StyleDefault    = "default"    // locale symbol layout, e.g. "$1,234.56" or "1.234,56 €"
	StyleISO        = "iso"        // ISO code instead of symbol, e.g. "USD 1,234.56"
	StyleAccounting = "accounting" // negatives in parentheses, e.g. "($1,234.56)"
)

// Attributes understood by [AmountFactory].
const (
	AttrCurrencyDisplay = "currency-display" // symbol, code, none
	AttrGrouping        = "grouping"         // bool, default true
	AttrWidth           = "width"            // minimum display width, default 0
	AttrAlign           = "align"            // left, right, center; default right
	AttrNegative        = "negative"         // sign, parens
)

// CurrencyDisplay controls how the currency is shown.
type CurrencyDisplay string

const (
	DisplaySymbol CurrencyDisplay = "symbol"
	DisplayCode   CurrencyDisplay = "code"
	DisplayNone   CurrencyDisplay = "none"
)

// Alignment controls padding when a width is set.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var amountStyleIDs = []string{StyleDefault, StyleISO, StyleAccounting}

// numberSymbols describes how a language writes amounts.
type numberSymbols struct {
	group       string
	decimal     string
	symbolAfter bool
	prefixSpace bool // space between a leading symbol and the number
}

var localeSymbols = map[string]numberSymbols{
	"en": {group: ",", decimal: "."},
	"ja": {group: ",", decimal: "."},
	"zh": {group: ",", decimal: "."},
	"de": {group: ".", decimal: ",", symbolAfter: true},
	"es": {group: ".", decimal: ",", symbolAfter: true},
	"it": {group: ".", decimal: ",", symbolAfter: true},
	"nl": {group: ".", decimal: ",", prefixSpace: true},
	"pt": {group: ".", decimal: ",", symbolAfter: true},
	"fr": {group: " ", decimal: ",", symbolAfter: true},
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"KRW": "₩",
	"BRL": "R$",
}

// AmountFactory builds formatters for [Amount] values. It is safe for
// concurrent use and returns a new formatter on every call.
type AmountFactory struct {
	defaultLocale string
}

// AmountOption configures an [AmountFactory].
type AmountOption func(*AmountFactory)

// WithDefaultLocale sets the locale used for styles that carry none.
// Default: "en".
func WithDefaultLocale(tag string) AmountOption {
	return func(f *AmountFactory) { f.defaultLocale = tag }
}

// NewAmountFactory returns a factory for [Amount] formatters.
func NewAmountFactory(opts ...AmountOption) *AmountFactory {
	f := &AmountFactory{defaultLocale: "en"}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// TargetType returns the type of [Amount].
func (f *AmountFactory) TargetType() reflect.Type { return TargetOf[Amount]() }

// StyleIDs yields "default", "iso" and "accounting".
func (f *AmountFactory) StyleIDs() iter.Seq[string] { return slices.Values(amountStyleIDs) }

// Formatter returns a formatter for style. Styles with an id outside
// [AmountFactory.StyleIDs] are still accepted when they set
// [AttrCurrencyDisplay], which fully determines the layout.
func (f *AmountFactory) Formatter(style *Style) (Formatter[Amount], bool, error) {
	if style == nil {
		return nil, false, ErrNilStyle
	}
	_, explicit := style.Attribute(AttrCurrencyDisplay)
	if !slices.Contains(amountStyleIDs, style.ID()) && !explicit {
		return nil, false, nil
	}

	syms, ok, err := f.resolveLocale(style)
	if err != nil || !ok {
		return nil, false, err
	}

	af := &amountFormatter{
		symbols:  syms,
		display:  DisplaySymbol,
		grouping: true,
		align:    AlignRight,
		parens:   style.ID() == StyleAccounting,
	}
	if style.ID() == StyleISO {
		af.display = DisplayCode
	}
	if err := af.configure(style); err != nil {
		return nil, false, err
	}
	return af, true, nil
}

func (f *AmountFactory) resolveLocale(style *Style) (numberSymbols, bool, error) {
	locales := style.Locales()
	if len(locales) == 0 {
		locales = []string{f.defaultLocale}
	}
	for _, loc := range locales {
		tag, err := language.Parse(loc)
		if err != nil {
			return numberSymbols{}, false, &ConfigError{StyleID: style.ID(), Field: "locale", Value: loc, Err: err}
		}
		base, _ := tag.Base()
		if syms, ok := localeSymbols[base.String()]; ok {
			return syms, true, nil
		}
	}
	return numberSymbols{}, false, nil
}

type amountFormatter struct {
	symbols  numberSymbols
	display  CurrencyDisplay
	grouping bool
	width    int
	align    Alignment
	parens   bool
}

func (af *amountFormatter) configure(style *Style) error {
	invalid := func(field, value string, err error) error {
		return &ConfigError{StyleID: style.ID(), Field: field, Value: value, Err: err}
	}
	if v, ok := style.Attribute(AttrCurrencyDisplay); ok {
		switch d := CurrencyDisplay(v); d {
		case DisplaySymbol, DisplayCode, DisplayNone:
			af.display = d
		default:
			return invalid(AttrCurrencyDisplay, v, errors.New("want symbol, code or none"))
		}
	}
	if v, ok := style.Attribute(AttrGrouping); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalid(AttrGrouping, v, err)
		}
		af.grouping = b
	}
	if v, ok := style.Attribute(AttrWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalid(AttrWidth, v, err)
		}
		if n < 0 {
			return invalid(AttrWidth, v, errors.New("must not be negative"))
		}
		af.width = n
	}
	if v, ok := style.Attribute(AttrAlign); ok {
		switch v {
		case "left":
			af.align = AlignLeft
		case "center":
			af.align = AlignCenter
		case "right":
			af.align = AlignRight
		default:
			return invalid(AttrAlign, v, errors.New("want left, center or right"))
		}
	}
	if v, ok := style.Attribute(AttrNegative); ok {
		switch v {
		case "sign":
			af.parens = false
		case "parens":
			af.parens = true
		default:
			return invalid(AttrNegative, v, errors.New("want sign or parens"))
		}
	}
	return nil
}

func (af *amountFormatter) Format(a Amount) (string, error) {
	if !a.valid() {
		return "", fmt.Errorf("%w: missing currency", ErrInvalidAmount)
	}
	neg, whole, frac := a.split()
	if af.grouping {
		whole = groupDigits(whole, af.symbols.group)
	}
	num := whole
	if frac != "" {
		num += af.symbols.decimal + frac
	}

	code := a.Currency.String()
	var cur string
	switch af.display {
	case DisplayCode:
		cur = code
	case DisplaySymbol:
		cur = code
		if sym, ok := currencySymbols[code]; ok {
			cur = sym
		}
	}

	s := num
	switch {
	case cur == "":
	case af.symbols.symbolAfter:
		s = num + " " + cur
	case af.symbols.prefixSpace, isLetters(cur):
		s = cur + " " + num
	default:
		s = cur + num
	}

	if neg {
		if af.parens {
			s = "(" + s + ")"
		} else {
			s = "-" + s
		}
	}
	return alignCell(s, af.width, af.align), nil
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func isLetters(s string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
}

// alignCell pads s to width display columns.
func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
