// Package workerpool runs functions over a slice on a fixed number of goroutines.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

var errNoWorkers = errors.New("worker count must be positive")

// Process runs process for every item on workerCount goroutines. The first
// error cancels the remaining work, calls onCancel and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if workerCount < 1 {
		return errNoWorkers
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, workerCount)
	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			if onCancel != nil {
				onCancel()
			}
			cancel()
		})
	}

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						fail(err)
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Map applies fn to every item and returns the results in item order. Errors
// from fn are kept per item and do not stop the pool; only cancellation of
// ctx does.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, []error, error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))
	indexes := make([]int, len(items))
	for i := range indexes {
		indexes[i] = i
	}

	err := Process(ctx, workerCount, indexes, func(ctx context.Context, i int) error {
		results[i], errs[i] = fn(ctx, items[i])
		return nil
	}, nil)
	if err != nil {
		return nil, nil, err
	}
	return results, errs, nil
}
