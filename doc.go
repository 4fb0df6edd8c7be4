// Package moneyfmt resolves locale-aware formatters for monetary values
// from pluggable factories.
//
// # Factories
//
// A [Factory] is the contract a formatter provider implements. It declares
// one target type, advertises the style ids it supports, and builds a
// [Formatter] for a [Style] on demand:
//
//	f, ok, err := factory.Formatter(moneyfmt.NewStyle("default", moneyfmt.WithLocales("de-DE")))
//
// The three outcomes are distinct:
//
//   - ok == true: f is ready to use
//   - ok == false, err == nil: the factory does not handle this style
//   - err matches [ErrInvalidStyle]: the factory handles the style but its
//     configuration is unusable, e.g. a malformed locale or attribute
//
// A factory may accept styles whose id it does not advertise by inspecting
// their locales or attributes.
//
// # Registry
//
// Factories are registered explicitly with [Register] on a [Registry].
// [Lookup] probes the factories for a target type in priority order and
// returns the first formatter that applies:
//
//	r := moneyfmt.NewRegistry()
//	moneyfmt.MustRegister[moneyfmt.Amount](r, moneyfmt.NewAmountFactory())
//	f, err := moneyfmt.Lookup[moneyfmt.Amount](r, style)
//
// The registry does not cache. Use [Cache] to reuse resolved formatters.
//
// # Amounts
//
// [AmountFactory] is the built-in factory for [Amount]. It supports the
// styles [StyleDefault], [StyleISO] and [StyleAccounting], and the
// attributes:
//
//   - [AttrCurrencyDisplay]: symbol, code or none
//   - [AttrGrouping]: digit grouping on or off
//   - [AttrWidth]: minimum display width
//   - [AttrAlign]: padding side when a width is set
//   - [AttrNegative]: sign or parens
//
// # Configuration
//
// [LoadStyles] reads named style profiles from YAML.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNilStyle]: nil style passed to a factory or lookup
//   - [ErrInvalidStyle]: style applies but is misconfigured (see [ConfigError])
//   - [ErrNoFormatter]: no registered factory applies
//   - [ErrNilFactory], [ErrTargetMismatch], [ErrDuplicateFactory]: registration
//   - [ErrInvalidAmount]: malformed amount
//   - [ErrInvalidConfig]: malformed style profile file
package moneyfmt
