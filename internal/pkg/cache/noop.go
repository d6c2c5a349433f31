package cache

import "context"

// Noop never stores anything; every lookup runs the loader.
type Noop struct{}

// NewNoop creates a cache that always loads.
func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) GetOrLoad(ctx context.Context, _ string, load LoadFunc) ([]byte, error) {
	return load(ctx)
}

func (Noop) Invalidate(context.Context) error {
	return nil
}
