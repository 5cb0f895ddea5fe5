package workerpool

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
	"testing"
)

func TestProcess(t *testing.T) {
	type args[T any] struct {
		ctx         context.Context
		workerCount int
		items       []T
		process     func(context.Context, T) error
		onCancel    func()
	}
	type testCase[T any] struct {
		name         string
		args         args[T]
		wantErr      bool
		expectCancel bool
	}
	tests := []testCase[int]{
		{
			name: "success processes all items",
			args: args[int]{
				ctx:         context.Background(),
				workerCount: 2,
				items:       []int{1, 2, 3, 4},
			},
		},
		{
			name: "error cancels workers and calls onCancel",
			args: args[int]{
				ctx:         context.Background(),
				workerCount: 3,
				items:       []int{1, 2, 3},
			},
			wantErr:      true,
			expectCancel: true,
		},
		{
			name: "context canceled returns canceled error",
			args: args[int]{
				ctx: func() context.Context {
					ctx, cancel := context.WithCancel(context.Background())
					cancel()
					return ctx
				}(),
				workerCount: 2,
				items:       []int{1, 2},
			},
			wantErr: true,
		},
		{
			name: "no workers",
			args: args[int]{
				ctx:   context.Background(),
				items: []int{1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var processed int32
			var canceled int32

			process := func(ctx context.Context, v int) error {
				switch tt.name {
				case "error cancels workers and calls onCancel":
					if v == 2 {
						return errors.New("boom")
					}
				}
				atomic.AddInt32(&processed, int32(v))
				return nil
			}
			onCancel := func() {
				atomic.AddInt32(&canceled, 1)
			}

			err := Process(tt.args.ctx, tt.args.workerCount, tt.args.items, process, onCancel)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Process() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.expectCancel && canceled == 0 {
				t.Fatalf("expected onCancel to be invoked")
			}
			if !tt.expectCancel && canceled != 0 {
				t.Fatalf("unexpected onCancel invocation")
			}

			switch tt.name {
			case "success processes all items":
				if processed != 10 { // 1+2+3+4
					t.Fatalf("expected processed sum 10, got %d", processed)
				}
			case "error cancels workers and calls onCancel":
				if processed != 1 && processed != 4 { // depends on scheduling, but should not process all items
					t.Fatalf("unexpected processed value: %d", processed)
				}
			case "context canceled returns canceled error":
				if !errors.Is(err, context.Canceled) {
					t.Fatalf("expected context.Canceled, got %v", err)
				}
			case "no workers":
				if !errors.Is(err, errNoWorkers) || processed != 0 {
					t.Fatalf("expected errNoWorkers without work, got %v (processed %d)", err, processed)
				}
			}
		})
	}
}

func TestMap(t *testing.T) {
	errOdd := errors.New("odd")
	double := func(_ context.Context, v int) (string, error) {
		if v%2 == 1 {
			return "", fmt.Errorf("%d: %w", v, errOdd)
		}
		return fmt.Sprint(v * 2), nil
	}

	tests := []struct {
		name        string
		ctx         context.Context
		workerCount int
		items       []int
		want        []string
		wantErrs    []bool
		wantErr     bool
	}{
		{
			name:        "keeps item order",
			ctx:         context.Background(),
			workerCount: 3,
			items:       []int{2, 4, 6, 8, 10},
			want:        []string{"4", "8", "12", "16", "20"},
			wantErrs:    []bool{false, false, false, false, false},
		},
		{
			name:        "item errors do not stop the pool",
			ctx:         context.Background(),
			workerCount: 2,
			items:       []int{1, 2, 3, 4},
			want:        []string{"", "4", "", "8"},
			wantErrs:    []bool{true, false, true, false},
		},
		{
			name:        "empty input",
			ctx:         context.Background(),
			workerCount: 1,
			want:        []string{},
			wantErrs:    []bool{},
		},
		{
			name: "canceled context",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			workerCount: 2,
			items:       []int{2},
			wantErr:     true,
		},
		{
			name:        "no workers",
			ctx:         context.Background(),
			workerCount: 0,
			items:       []int{2},
			wantErr:     true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, errs, err := Map(tt.ctx, tt.workerCount, tt.items, double)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Map() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Map() got = %v, want %v", got, tt.want)
			}
			for i, e := range errs {
				if (e != nil) != tt.wantErrs[i] {
					t.Errorf("Map() item %d error = %v, wantErr %v", i, e, tt.wantErrs[i])
				}
				if e != nil && !errors.Is(e, errOdd) {
					t.Errorf("Map() item %d error = %v, want errOdd", i, e)
				}
			}
		})
	}
}
