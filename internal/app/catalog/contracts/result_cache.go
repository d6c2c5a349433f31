package contracts

import "context"

// ResultCache stores serialized query results.
// Implementations must treat the store as an optimization: when it is
// unavailable they call load directly instead of failing the request.
type ResultCache interface {
	// GetOrLoad returns the stored value for key, or runs load, stores its
	// result and returns it. Errors from load are returned and never stored.
	GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) ([]byte, error)) ([]byte, error)

	// Invalidate drops every stored value.
	Invalidate(ctx context.Context) error
}
