// Package batcher buffers items and hands them to a flush callback in batches.
package batcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop has been called.
var ErrStopped = errors.New("batcher stopped")

// Config controls when a batch is flushed.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	// FlushRate caps flushes per second; zero means unlimited.
	FlushRate int
}

// Batcher buffers items and flushes them either by size or interval. The
// slice passed to the flush callback is reused after it returns.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	cfg           Config
	rl            ratelimit.Limiter
	logger        *zap.Logger
	failed        atomic.Int64

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, cfg Config) *Batcher[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FlushSize < 1 {
		cfg.FlushSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	rl := ratelimit.NewUnlimited()
	if cfg.FlushRate > 0 {
		rl = ratelimit.New(cfg.FlushRate)
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, cfg.FlushSize*2),
		cfg:           cfg,
		rl:            rl,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes everything queued so far and stops the loop. It reports how
// many flushes failed over the batcher's lifetime.
func (b *Batcher[T]) Stop() error {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
	if n := b.failed.Load(); n > 0 {
		return fmt.Errorf("%d batches not flushed", n)
	}
	return nil
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)

	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flushCallback(ctx, buf); err != nil {
			b.failed.Add(1)
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.cfg.FlushSize {
					flush()
				}
			default:
				flush()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
