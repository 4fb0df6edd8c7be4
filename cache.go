package moneyfmt

import (
	"context"
	"time"

	"github.com/bool64/cache"
)

// Cache memoizes formatters resolved from a [Registry], keyed by style.
// Equal styles (same id, locales and attributes) share one formatter.
//
// Only cache formatters that are safe to reuse across calls and, if the
// cache is shared between goroutines, safe for concurrent use. The
// formatters built by [AmountFactory] are.
type Cache[T any] struct {
	registry *Registry
	failover *cache.FailoverOf[Formatter[T]]
}

// NewCache returns a cache over r whose entries live for ttl.
func NewCache[T any](r *Registry, ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		registry: r,
		failover: cache.NewFailoverOf[Formatter[T]](func(cfg *cache.FailoverConfigOf[Formatter[T]]) {
			cfg.Name = "moneyfmt-" + TargetOf[T]().String()
			cfg.BackendConfig.TimeToLive = ttl
			cfg.FailedUpdateTTL = -1
		}),
	}
}

// Formatter returns the cached formatter for style, resolving it with
// [Lookup] on a miss. Lookup failures are not cached.
func (c *Cache[T]) Formatter(ctx context.Context, style *Style) (Formatter[T], error) {
	if style == nil {
		return nil, ErrNilStyle
	}
	return c.failover.Get(ctx, []byte(style.key()), func(context.Context) (Formatter[T], error) {
		return Lookup[T](c.registry, style)
	})
}
