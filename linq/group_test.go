package linq

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	apperrors "github.com/kbukum/linqkit/errors"
)

func mustPair[K comparable, V any](t *testing.T, key K, values *Sequence[V]) *Pair[K, V] {
	t.Helper()
	p, err := NewPair(key, values)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewPair(t *testing.T) {
	p := mustPair(t, 0, Of(1))
	if p.Key() != 0 {
		t.Errorf("Key = %d, want 0", p.Key())
	}
	if !Equal(p.Values(), Of(1)) {
		t.Errorf("Values = %v, want Sequence<1>", p.Values())
	}

	_, err := NewPair[int, int](0, nil)
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestPair_Immutable(t *testing.T) {
	src := Of(1, 2, 3)
	p := mustPair(t, 0, src)
	src.Reverse()
	p.Values().Reverse()
	if got := p.String(); got != "{0: Sequence<1, 2, 3>}" {
		t.Errorf("got %q, want %q", got, "{0: Sequence<1, 2, 3>}")
	}
}

func TestGrouping_Immutable(t *testing.T) {
	g := GroupBy(Of(1, 2, 3, 4), func(n int) int { return n % 2 })
	g.Values()[0].Reverse()
	odds, _ := g.Get(1)
	odds.Reverse()
	want := "Grouping<{1: Sequence<1, 3>}, {0: Sequence<2, 4>}>"
	if got := g.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPair_Format(t *testing.T) {
	p := mustPair(t, 0, Of(1))
	if got := p.String(); got != "{0: Sequence<1>}" {
		t.Errorf("String = %q", got)
	}
	if got := fmt.Sprintf("%#v", p); got != "Pair{0: Sequence<1>}" {
		t.Errorf("GoString = %q", got)
	}
}

func TestPairEqual(t *testing.T) {
	a := mustPair(t, 0, Of(0, 1))
	if !PairEqual(a, mustPair(t, 0, Of(0, 1))) {
		t.Error("expected equal pairs")
	}
	if PairEqual(a, mustPair(t, 1, Of(0, 1))) {
		t.Error("expected different keys to differ")
	}
	if PairEqual(a, mustPair(t, 0, Of(0))) {
		t.Error("expected different values to differ")
	}
}

func TestNewGrouping(t *testing.T) {
	g, err := NewGrouping[int, int]()
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 0 {
		t.Errorf("Len = %d, want 0", g.Len())
	}

	g, err = NewGrouping(mustPair(t, 0, Of(0, 1, 2)), mustPair(t, 1, Of(0, 1, 3)))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(g.Keys(), []int{0, 1}) {
		t.Errorf("Keys = %v, want [0 1]", g.Keys())
	}
	values := g.Values()
	if len(values) != 2 || !Equal(values[0], Of(0, 1, 2)) || !Equal(values[1], Of(0, 1, 3)) {
		t.Errorf("Values = %v", values)
	}
	if got := g.String(); got != "Grouping<{0: Sequence<0, 1, 2>}, {1: Sequence<0, 1, 3>}>" {
		t.Errorf("String = %q", got)
	}
}

func TestNewGrouping_Invalid(t *testing.T) {
	_, err := NewGrouping(nil, mustPair(t, 1, Of(1, 2, 3)))
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("nil pair: got %v, want ErrInvalidArgument", err)
	}

	_, err = NewGrouping(
		mustPair(t, 0, Of(1, 2, 3)),
		mustPair(t, 1, Of(2, 3, 4)),
		mustPair(t, 1, Of(2, 3, 4)),
	)
	if !errors.Is(err, apperrors.ErrDuplicateKey) {
		t.Errorf("duplicate key: got %v, want ErrDuplicateKey", err)
	}
}

func TestGroupBy(t *testing.T) {
	got := GroupBy(Range(0, 6), func(n int) int { return n % 2 })
	want, err := NewGrouping(mustPair(t, 0, Of(0, 2, 4)), mustPair(t, 1, Of(1, 3, 5)))
	if err != nil {
		t.Fatal(err)
	}
	if !GroupingEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGroupBy_FirstOccurrenceOrder(t *testing.T) {
	words := Of("bb", "a", "ccc", "dd", "e")
	g := GroupBy(words, func(w string) int { return len(w) })
	if !slices.Equal(g.Keys(), []int{2, 1, 3}) {
		t.Errorf("Keys = %v, want [2 1 3]", g.Keys())
	}
	twos, ok := g.Get(2)
	if !ok || !Equal(twos, Of("bb", "dd")) {
		t.Errorf("Get(2) = %v, %v", twos, ok)
	}
	if _, ok := g.Get(4); ok {
		t.Error("expected no group for key 4")
	}
	if g.Pairs().Len() != 3 {
		t.Errorf("Pairs().Len() = %d, want 3", g.Pairs().Len())
	}
}

func TestGroupBy_Empty(t *testing.T) {
	g := GroupBy(Of[int](), Identity[int])
	if g.Len() != 0 || g.String() != "Grouping<>" {
		t.Errorf("got %v with %d groups", g, g.Len())
	}
}
