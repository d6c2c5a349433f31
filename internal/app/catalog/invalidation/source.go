package invalidation

import "context"

// Source delivers serialized change events.
type Source interface {
	// Next blocks until a payload arrives or ctx is done.
	Next(ctx context.Context) ([]byte, error)
	Close() error
}

// Publisher sends change events to the bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
