package cache

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultSize is the entry capacity used when none is configured.
const DefaultSize = 1024

// Memory is an in-process cache with LRU eviction and a per-entry TTL.
type Memory struct {
	entries *expirable.LRU[string, []byte]
	// generation is bumped by Invalidate so loads that started before it
	// do not write their result back. Writers hold mu while comparing it.
	mu         sync.Mutex
	generation atomic.Uint64
	flight     loader
}

// NewMemory creates an in-process cache. A ttl of zero keeps entries until evicted.
func NewMemory(size int, ttl time.Duration) *Memory {
	if size <= 0 {
		size = DefaultSize
	}

	return &Memory{
		entries: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

// GetOrLoad returns the cached value for key or loads and stores it.
func (m *Memory) GetOrLoad(ctx context.Context, key string, load LoadFunc) ([]byte, error) {
	if data, ok := m.entries.Get(key); ok {
		return data, nil
	}

	gen := m.generation.Load()
	flightKey := strconv.FormatUint(gen, 10) + ":" + key

	return m.flight.do(ctx, flightKey, func(ctx context.Context) ([]byte, error) {
		if data, ok := m.entries.Get(key); ok {
			return data, nil
		}

		data, err := load(ctx)
		if err != nil {
			return nil, err
		}

		m.store(gen, key, data)
		return data, nil
	})
}

func (m *Memory) store(gen uint64, key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation.Load() == gen {
		m.entries.Add(key, data)
	}
}

// Invalidate drops every entry.
func (m *Memory) Invalidate(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation.Add(1)
	m.entries.Purge()
	return nil
}

// Len returns the number of live entries.
func (m *Memory) Len() int {
	return m.entries.Len()
}
