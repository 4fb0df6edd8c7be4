package moneyfmt

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Registry holds factories grouped by target type and resolves formatting
// requests by probing them in order. It is safe for concurrent use; the
// factories it holds are called without any lock held.
//
// A Registry never caches the formatters it resolves. Wrap it in a [Cache]
// when reuse is wanted.
type Registry struct {
	mu       sync.RWMutex
	byTarget map[reflect.Type][]*entry
	seq      uint64

	log               zerolog.Logger
	stopOnConfigError bool
}

type entry struct {
	name     string
	priority int
	order    uint64
	factory  any
}

// Option configures a [Registry].
type Option func(*Registry)

// WithLogger sets the logger used to trace probing.
// Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// WithStopOnConfigError makes [Lookup] return the first configuration error
// instead of moving on to the next factory.
func WithStopOnConfigError() Option {
	return func(r *Registry) { r.stopOnConfigError = true }
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byTarget: map[reflect.Type][]*entry{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterOption configures a single registration.
type RegisterOption func(*entry)

// WithName sets the registration name. Names are unique per target type.
// Default, and the fallback for an empty name: the factory's dynamic type,
// e.g. "*moneyfmt.AmountFactory".
func WithName(name string) RegisterOption {
	return func(e *entry) { e.name = name }
}

// WithPriority sets the probe priority. Higher priorities are probed first;
// equal priorities keep registration order. Default: 0.
func WithPriority(p int) RegisterOption {
	return func(e *entry) { e.priority = p }
}

// Register adds f to r under target type T.
func Register[T any](r *Registry, f Factory[T], opts ...RegisterOption) error {
	if f == nil {
		return ErrNilFactory
	}
	target := TargetOf[T]()
	if got := f.TargetType(); got != target {
		return fmt.Errorf("%w: %T declares %v, registered as %v", ErrTargetMismatch, f, got, target)
	}
	e := &entry{name: fmt.Sprintf("%T", f), factory: f}
	for _, opt := range opts {
		opt(e)
	}
	if e.name == "" {
		e.name = fmt.Sprintf("%T", f)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Clone so snapshots handed out earlier keep their order.
	entries := slices.Clone(r.byTarget[target])
	if slices.ContainsFunc(entries, func(x *entry) bool { return x.name == e.name }) {
		return fmt.Errorf("%w: %q for %v", ErrDuplicateFactory, e.name, target)
	}
	r.seq++
	e.order = r.seq
	entries = append(entries, e)
	slices.SortStableFunc(entries, func(a, b *entry) int {
		if c := cmp.Compare(b.priority, a.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
	r.byTarget[target] = entries
	r.log.Debug().Str("factory", e.name).Stringer("target", target).Int("priority", e.priority).Msg("factory registered")
	return nil
}

// MustRegister is like [Register] but panics on error.
func MustRegister[T any](r *Registry, f Factory[T], opts ...RegisterOption) {
	if err := Register(r, f, opts...); err != nil {
		panic(err)
	}
}

// Unregister removes the factory registered under name for target type T.
// It reports whether a factory was removed.
func Unregister[T any](r *Registry, name string) bool {
	target := TargetOf[T]()
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.byTarget[target]
	i := slices.IndexFunc(entries, func(e *entry) bool { return e.name == name })
	if i < 0 {
		return false
	}
	entries = slices.Delete(slices.Clone(entries), i, i+1)
	if len(entries) == 0 {
		delete(r.byTarget, target)
	} else {
		r.byTarget[target] = entries
	}
	return true
}

func snapshot[T any](r *Registry) []*entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byTarget[TargetOf[T]()]
}

// Factories yields the factories registered for T in probe order. The
// sequence reflects the registry at the time Factories was called.
func Factories[T any](r *Registry) iter.Seq[Factory[T]] {
	entries := snapshot[T](r)
	return func(yield func(Factory[T]) bool) {
		for _, e := range entries {
			if !yield(e.factory.(Factory[T])) {
				return
			}
		}
	}
}

// StyleIDs returns the de-duplicated union of the style ids advertised by
// every factory registered for T, in probe order.
func StyleIDs[T any](r *Registry) []string {
	seen := map[string]bool{}
	var ids []string
	for f := range Factories[T](r) {
		for id := range f.StyleIDs() {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Targets returns every target type with at least one factory, sorted by
// type name.
func Targets(r *Registry) []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]reflect.Type, 0, len(r.byTarget))
	for t := range r.byTarget {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b reflect.Type) int { return strings.Compare(a.String(), b.String()) })
	return out
}

// Lookup probes the factories registered for T in order and returns the
// first formatter that applies to style.
//
// Every factory is asked regardless of the ids it advertises. A factory
// that fails with a configuration error is skipped, unless the registry was
// built with [WithStopOnConfigError]. When no factory applies the error
// matches [ErrNoFormatter] and also wraps each factory error seen.
func Lookup[T any](r *Registry, style *Style) (Formatter[T], error) {
	if style == nil {
		return nil, ErrNilStyle
	}
	target := TargetOf[T]()
	var errs []error
	for _, e := range snapshot[T](r) {
		f, ok, err := e.factory.(Factory[T]).Formatter(style)
		if err != nil {
			err = fmt.Errorf("factory %q: %w", e.name, err)
			r.log.Warn().Err(err).Str("factory", e.name).Stringer("style", style).Msg("factory rejected style")
			if r.stopOnConfigError {
				return nil, err
			}
			errs = append(errs, err)
			continue
		}
		if !ok || f == nil {
			r.log.Debug().Str("factory", e.name).Stringer("style", style).Msg("factory does not apply")
			continue
		}
		r.log.Debug().Str("factory", e.name).Stringer("style", style).Stringer("target", target).Msg("formatter resolved")
		return f, nil
	}
	base := fmt.Errorf("%w: style %q for %v", ErrNoFormatter, style, target)
	if len(errs) == 0 {
		return nil, base
	}
	return nil, errors.Join(append([]error{base}, errs...)...)
}
