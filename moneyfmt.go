package moneyfmt

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNilStyle         = errors.New("nil style")
	ErrInvalidStyle     = errors.New("invalid style configuration")
	ErrNoFormatter      = errors.New("no formatter available")
	ErrNilFactory       = errors.New("nil factory")
	ErrTargetMismatch   = errors.New("factory target type mismatch")
	ErrDuplicateFactory = errors.New("factory already registered")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidConfig    = errors.New("invalid style config")
)

// Formatter renders a value of type T as text.
type Formatter[T any] interface {
	Format(v T) (string, error)
}

// FormatterFunc adapts a function to [Formatter].
type FormatterFunc[T any] func(v T) (string, error)

// Format calls fn(v).
func (fn FormatterFunc[T]) Format(v T) (string, error) { return fn(v) }

// Factory is implemented by pluggable formatter providers. A [Registry]
// asks each registered factory for a formatter in probe order until one
// applies.
//
// Implementations are not required to be safe for concurrent use, and the
// formatters they return need not be either. Creating a new formatter on
// every call and leaving reuse to the caller (see [Cache]) is usually the
// right choice; synchronizing a shared cache inside a factory tends to cost
// more than it saves.
type Factory[T any] interface {
	// TargetType returns the value type the factory produces formatters
	// for. It must never be nil and must not change.
	TargetType() reflect.Type

	// StyleIDs returns the style ids the factory supports. The sequence is
	// finite and may be iterated more than once. It need not be exhaustive:
	// a factory may accept other styles by inspecting their content.
	StyleIDs() iter.Seq[string]

	// Formatter returns a formatter for style. It returns ok == false with
	// a nil error when the style does not apply to this factory. A style
	// that applies in principle but carries an unusable configuration
	// yields an error matching [ErrInvalidStyle]. A nil style yields an
	// error matching [ErrNilStyle].
	Formatter(style *Style) (f Formatter[T], ok bool, err error)
}

// TargetOf returns the target type descriptor for T.
func TargetOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// ConfigError reports a style that a factory understands but cannot build
// a formatter from.
type ConfigError struct {
	StyleID string
	Field   string
	Value   string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: style %q: %s %q", ErrInvalidStyle, e.StyleID, e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both [ErrInvalidStyle] and the underlying cause.
func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidStyle}
	}
	return []error{ErrInvalidStyle, e.Err}
}
