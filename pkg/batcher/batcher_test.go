package batcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recorder is a flush callback keeping a copy of every batch it was handed.
type recorder struct {
	mu      sync.Mutex
	batches [][]int
	failOn  map[int]bool
}

func (r *recorder) flush(_ context.Context, items []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, append([]int(nil), items...))
	if r.failOn[len(r.batches)] {
		return errors.New("sink unavailable")
	}
	return nil
}

func (r *recorder) snapshot() [][]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]int(nil), r.batches...)
}

func addAll(t *testing.T, b *Batcher[int], items ...int) {
	t.Helper()
	for _, item := range items {
		require.NoError(t, b.Add(context.Background(), item))
	}
}

func TestNew_Defaults(t *testing.T) {
	b := New[int](nil, (&recorder{}).flush, Config{})

	require.NotNil(t, b.logger)
	require.Equal(t, 1, b.cfg.FlushSize)
	require.Equal(t, time.Second, b.cfg.FlushInterval)
	require.Equal(t, 2, cap(b.itemsCh))
}

func TestBatcher_FlushTriggers(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		items []int
		want  [][]int
	}{
		{
			name:  "full batch",
			cfg:   Config{FlushSize: 3, FlushInterval: time.Hour},
			items: []int{1, 2, 3, 4},
			want:  [][]int{{1, 2, 3}},
		},
		{
			name:  "interval",
			cfg:   Config{FlushSize: 10, FlushInterval: 20 * time.Millisecond},
			items: []int{7, 8},
			want:  [][]int{{7, 8}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &recorder{}
			b := New(nil, rec.flush, tt.cfg)
			b.Start(context.Background())
			t.Cleanup(func() { _ = b.Stop() })

			addAll(t, b, tt.items...)
			require.Eventually(t, func() bool {
				return len(rec.snapshot()) == len(tt.want)
			}, time.Second, 5*time.Millisecond)
			require.Equal(t, tt.want, rec.snapshot())
		})
	}
}

func TestBatcher_StopFlushesQueued(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	b := New(nil, rec.flush, Config{FlushSize: 4, FlushInterval: time.Hour})
	b.Start(context.Background())

	addAll(t, b, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.NoError(t, b.Stop())

	var got []int
	for _, batch := range rec.snapshot() {
		require.LessOrEqual(t, len(batch), 4)
		got = append(got, batch...)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestBatcher_CancelDrainsAndStops(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	b := New(nil, rec.flush, Config{FlushSize: 10, FlushInterval: time.Hour})
	b.Start(ctx)

	addAll(t, b, 1, 2, 3)
	cancel()
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, [][]int{{1, 2, 3}}, rec.snapshot())

	require.NoError(t, b.Stop())
	require.NoError(t, b.Stop())
	require.ErrorIs(t, b.Add(context.Background(), 4), ErrStopped)
}

func TestBatcher_AddRespectsContext(t *testing.T) {
	t.Parallel()

	// Not started, so the queue of two slots stays full.
	b := New(nil, (&recorder{}).flush, Config{FlushSize: 1})
	addAll(t, b, 1, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, b.Add(ctx, 3), context.Canceled)
}

func TestBatcher_StopReportsFailedFlushes(t *testing.T) {
	t.Parallel()

	rec := &recorder{failOn: map[int]bool{1: true, 3: true}}
	b := New(nil, rec.flush, Config{FlushSize: 1, FlushInterval: time.Hour})
	b.Start(context.Background())

	addAll(t, b, 1, 2, 3, 4)
	err := b.Stop()
	require.EqualError(t, err, "2 batches not flushed")
	require.Equal(t, [][]int{{1}, {2}, {3}, {4}}, rec.snapshot())
}

func TestBatcher_FlushRate(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	b := New(nil, rec.flush, Config{FlushSize: 1, FlushInterval: time.Hour, FlushRate: 20})
	b.Start(context.Background())

	started := time.Now()
	addAll(t, b, 1, 2, 3, 4)
	require.NoError(t, b.Stop())

	// Four flushes at 20 per second need three 50ms gaps.
	require.GreaterOrEqual(t, time.Since(started), 120*time.Millisecond)
	require.Len(t, rec.snapshot(), 4)
}
