package safe

import (
	"math"
	"testing"
)

type int32Args[T interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}] struct {
	v T
}

type int32TestCase[T interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}] struct {
	name    string
	args    int32Args[T]
	want    int32
	wantErr bool
}

func runInt32Case[T interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}](t *testing.T, tc int32TestCase[T]) {
	t.Helper()

	t.Run(tc.name, func(t *testing.T) {
		got, err := Int32(tc.args.v)
		if (err != nil) != tc.wantErr {
			t.Errorf("Int32() error = %v, wantErr %v", err, tc.wantErr)
			return
		}
		if got != tc.want {
			t.Errorf("Int32() got = %v, want %v", got, tc.want)
		}
	})
}

func TestInt32(t *testing.T) {
	runInt32Case(t, int32TestCase[int]{name: "int within range", args: int32Args[int]{v: 42}, want: 42})
	runInt32Case(t, int32TestCase[int]{name: "int negative within range", args: int32Args[int]{v: -9}, want: -9})
	runInt32Case(t, int32TestCase[int64]{name: "int64 overflow", args: int32Args[int64]{v: int64(math.MaxInt32) + 1}, wantErr: true})
	runInt32Case(t, int32TestCase[int64]{name: "int64 underflow", args: int32Args[int64]{v: int64(math.MinInt32) - 1}, wantErr: true})
	runInt32Case(t, int32TestCase[int32]{name: "int32 min", args: int32Args[int32]{v: math.MinInt32}, want: math.MinInt32})
	runInt32Case(t, int32TestCase[uint]{name: "uint precision", args: int32Args[uint]{v: 9}, want: 9})
	runInt32Case(t, int32TestCase[uint]{name: "uint overflow", args: int32Args[uint]{v: math.MaxInt32 + 1}, wantErr: true})
	runInt32Case(t, int32TestCase[uint32]{name: "uint32 overflow", args: int32Args[uint32]{v: math.MaxUint32}, wantErr: true})
	runInt32Case(t, int32TestCase[uint64]{name: "uint64 boundary ok", args: int32Args[uint64]{v: math.MaxInt32}, want: math.MaxInt32})
	runInt32Case(t, int32TestCase[uint64]{name: "zero", args: int32Args[uint64]{v: 0}, want: 0})
}

func TestIndex(t *testing.T) {
	s := []string{"a", "b"}
	tests := []struct {
		name string
		i    int
		want string
	}{
		{name: "first", i: 0, want: "a"},
		{name: "last", i: 1, want: "b"},
		{name: "past end", i: 2, want: ""},
		{name: "negative", i: -1, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(s, tt.i); got != tt.want {
				t.Errorf("Index() got = %q, want %q", got, tt.want)
			}
		})
	}

	if got := Index[*int](nil, 0); got != nil {
		t.Errorf("Index() on nil slice got = %v, want nil", got)
	}
}
