package linq

import (
	"slices"
	"testing"

	"github.com/go-softwarelab/common/pkg/types"
)

type food struct {
	name, department string
}

var foods = Of(
	food{"natto", "Legumeidae"},
	food{"tomato", "Solanaceae"},
	food{"Kidney beans", "Legumeidae"},
)

func TestToLookupMap(t *testing.T) {
	l := ToLookupMap(foods,
		func(f food) string { return f.department },
		func(f food) string { return f.name })

	want := NewLookup(
		types.Pair[string, string]{Left: "Legumeidae", Right: "natto"},
		types.Pair[string, string]{Left: "Solanaceae", Right: "tomato"},
		types.Pair[string, string]{Left: "Legumeidae", Right: "Kidney beans"},
	)
	if !LookupEqual(l, want) {
		t.Errorf("got %v, want %v", l, want)
	}
	if got := l.String(); got != "Lookup<Legumeidae: Sequence<natto, Kidney beans>, Solanaceae: Sequence<tomato>>" {
		t.Errorf("String = %q", got)
	}
}

func TestToLookup_IdentityValue(t *testing.T) {
	l := ToLookup(foods, func(f food) string { return f.name })
	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	assertItems(t, l.Get("tomato"), food{"tomato", "Solanaceae"})
	if !slices.Equal(l.Keys(), []string{"natto", "tomato", "Kidney beans"}) {
		t.Errorf("Keys = %v", l.Keys())
	}
}

func TestToLookupMap_IdentityKey(t *testing.T) {
	l := ToLookupMap(Range(0, 10), Identity[int], func(n int) int { return n % 3 })
	for k := range 10 {
		assertItems(t, l.Get(k), k%3)
	}
}

func TestLookup_GetMissing(t *testing.T) {
	l := ToLookup(Of(1, 2), Identity[int])
	if l.Contains(3) {
		t.Error("expected key 3 to be absent")
	}
	if got := l.Get(3); got.Len() != 0 {
		t.Errorf("got %v, want empty sequence", got)
	}
	if !l.Contains(2) {
		t.Error("expected key 2 to be present")
	}
}

func TestLookup_ToSequence(t *testing.T) {
	l := NewLookup(
		types.Pair[int, int]{Left: 1, Right: 2},
		types.Pair[int, int]{Left: 2, Right: 3},
		types.Pair[int, int]{Left: 3, Right: 6},
	)
	entries := l.ToSequence()
	if entries.Len() != 3 {
		t.Fatalf("got %d entries, want 3", entries.Len())
	}
	for i, want := range [][2]int{{1, 2}, {2, 3}, {3, 6}} {
		e := entries.At(i)
		if e.Left != want[0] || !Equal(e.Right, Of(want[1])) {
			t.Errorf("entry %d = %v: %v, want %v", i, e.Left, e.Right, want)
		}
	}
}

func TestLookup_Empty(t *testing.T) {
	l := NewLookup[string, int]()
	if l.Len() != 0 || l.String() != "Lookup<>" {
		t.Errorf("got %v", l)
	}
}
