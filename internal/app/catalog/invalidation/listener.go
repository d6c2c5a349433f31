package invalidation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/light-bringer/shopcat-service/internal/pkg/clock"
)

const flushTimeout = 5 * time.Second

// Invalidator drops cached results.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// ListenerConfig tunes the listener. Zero values select defaults.
type ListenerConfig struct {
	// Debounce is the minimum spacing between two invalidations.
	// Events inside the window are folded into one deferred invalidation.
	Debounce time.Duration
	Clock    clock.Clock
	Logger   *slog.Logger
}

// Listener invalidates the result cache whenever a catalog change event arrives.
type Listener struct {
	source   Source
	cache    Invalidator
	clock    clock.Clock
	debounce time.Duration
	logger   *slog.Logger

	// Owned by the Run goroutine.
	lastInvalidation time.Time
	dirty            bool
}

// NewListener creates a listener reading from source.
func NewListener(source Source, cache Invalidator, cfg ListenerConfig) *Listener {
	if cfg.Clock == nil {
		cfg.Clock = clock.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Listener{
		source:   source,
		cache:    cache,
		clock:    cfg.Clock,
		debounce: cfg.Debounce,
		logger:   cfg.Logger.With("component", "invalidation_listener"),
	}
}

// Run consumes events until ctx is done or the source fails. A pending
// invalidation is flushed before returning.
func (l *Listener) Run(ctx context.Context) error {
	payloads := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		for {
			data, err := l.source.Next(ctx)
			if err != nil {
				readErr <- err
				return
			}
			select {
			case payloads <- data:
			case <-ctx.Done():
				return
			}
		}
	}()

	var tick <-chan time.Time
	if l.debounce > 0 {
		ticker := time.NewTicker(l.debounce)
		defer ticker.Stop()
		tick = ticker.C
	}

	l.logger.Info("listening for catalog changes", "debounce", l.debounce)

	for {
		select {
		case <-ctx.Done():
			l.flush()
			return nil

		case data := <-payloads:
			l.handle(ctx, data)

		case <-tick:
			l.flushIfDue(ctx)

		case err := <-readErr:
			l.flush()
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("failed to receive change event: %w", err)
		}
	}
}

func (l *Listener) handle(ctx context.Context, data []byte) {
	event, err := DecodeEvent(data)
	if err != nil {
		l.logger.WarnContext(ctx, "skipping malformed change event", "error", err)
		return
	}

	now := l.clock.Now()
	if l.debounce > 0 && !l.lastInvalidation.IsZero() && now.Sub(l.lastInvalidation) < l.debounce {
		l.dirty = true
		l.logger.DebugContext(ctx, "change event debounced", "entity", event.Entity, "id", event.ID, "action", event.Action)
		return
	}

	l.logger.InfoContext(ctx, "catalog changed, invalidating cache", "entity", event.Entity, "id", event.ID, "action", event.Action)
	l.invalidate(ctx, now)
}

func (l *Listener) flushIfDue(ctx context.Context) {
	if !l.dirty {
		return
	}
	now := l.clock.Now()
	if now.Sub(l.lastInvalidation) < l.debounce {
		return
	}
	l.invalidate(ctx, now)
}

// flush runs a pending invalidation on a fresh context, since the run context may be done.
func (l *Listener) flush() {
	if !l.dirty {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	l.invalidate(ctx, l.clock.Now())
}

func (l *Listener) invalidate(ctx context.Context, now time.Time) {
	if err := l.cache.Invalidate(ctx); err != nil {
		// Left dirty so the next tick retries.
		l.dirty = true
		l.logger.ErrorContext(ctx, "failed to invalidate cache", "error", err)
		return
	}
	l.lastInvalidation = now
	l.dirty = false
}
