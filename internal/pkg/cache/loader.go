// Package cache provides result caches for serialized query output:
// Redis for shared deployments, an in-process LRU, and a no-op cache.
package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadTimeout bounds a shared load once it no longer follows any caller's cancellation.
const LoadTimeout = 30 * time.Second

// LoadFunc computes a value on a cache miss.
type LoadFunc = func(ctx context.Context) ([]byte, error)

// loader collapses concurrent misses on the same key into one load.
// The load keeps the values of the first caller's context but not its
// cancellation; each caller stops waiting when its own context is done.
type loader struct {
	group singleflight.Group
}

func (l *loader) do(ctx context.Context, key string, load LoadFunc) ([]byte, error) {
	ch := l.group.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LoadTimeout)
		defer cancel()
		return load(loadCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
