package engine

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sink presents frames. Present may block; the next tick does not start
// until it returns.
type Sink interface {
	Present(ctx context.Context, f Frame) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, f Frame) error

// Present implements Sink.
func (fn SinkFunc) Present(ctx context.Context, f Frame) error {
	return fn(ctx, f)
}

// Limiter paces the loop. Wait is the only suspension point between ticks.
type Limiter interface {
	Wait(ctx context.Context) error
}

// TickerLimiter releases Wait at a fixed rate.
type TickerLimiter struct {
	ticker *time.Ticker
}

// NewTickerLimiter returns a limiter targeting hz ticks per second.
func NewTickerLimiter(hz int) *TickerLimiter {
	if hz <= 0 {
		hz = 60
	}
	return &TickerLimiter{ticker: time.NewTicker(time.Second / time.Duration(hz))}
}

// Wait blocks until the next tick or until ctx is done.
func (l *TickerLimiter) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.ticker.C:
		return nil
	}
}

// Stop releases the underlying ticker.
func (l *TickerLimiter) Stop() {
	l.ticker.Stop()
}

// Loop runs tick, update, present, wait until ctx is cancelled or maxTicks
// ticks have run (0 means no limit). Cancellation is a normal stop and
// returns a nil error. A sink error stops the loop.
func Loop(ctx context.Context, r *Runner, sink Sink, lim Limiter, maxTicks uint64) (Stats, error) {
	for maxTicks == 0 || r.Stats().Ticks < maxTicks {
		if ctx.Err() != nil {
			return r.Stats(), nil
		}

		frame := r.Step()
		if err := sink.Present(ctx, frame); err != nil {
			if errors.Is(err, context.Canceled) {
				return r.Stats(), nil
			}
			return r.Stats(), fmt.Errorf("engine: present tick %d: %w", frame.Tick, err)
		}

		if lim != nil {
			if err := lim.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return r.Stats(), nil
				}
				return r.Stats(), fmt.Errorf("engine: rate limiter: %w", err)
			}
		}
	}
	return r.Stats(), nil
}
