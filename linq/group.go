package linq

import (
	"fmt"
	"slices"

	apperrors "github.com/kbukum/linqkit/errors"
)

// Pair associates a key with the sequence of values sharing it.
// A Pair is immutable after construction.
type Pair[K comparable, V any] struct {
	key    K
	values *Sequence[V]
}

// NewPair creates a Pair over a copy of values. It fails with
// ErrInvalidArgument if values is nil.
func NewPair[K comparable, V any](key K, values *Sequence[V]) (*Pair[K, V], error) {
	if values == nil {
		return nil, apperrors.InvalidArgument("values", "pair values must be a sequence")
	}
	return &Pair[K, V]{key: key, values: values.Copy()}, nil
}

// Key returns the pair's key.
func (p *Pair[K, V]) Key() K { return p.key }

// Values returns a copy of the pair's value sequence.
func (p *Pair[K, V]) Values() *Sequence[V] { return p.values.Copy() }

// String renders the pair as {key: Sequence<...>}.
func (p *Pair[K, V]) String() string {
	return fmt.Sprintf("{%v: %s}", p.key, p.values)
}

// GoString renders the pair as Pair{key: Sequence<...>}.
func (p *Pair[K, V]) GoString() string {
	return "Pair" + p.String()
}

// PairEqual reports whether a and b have equal keys and equal value sequences.
func PairEqual[K, V comparable](a, b *Pair[K, V]) bool {
	return a.key == b.key && Equal(a.values, b.values)
}

// Grouping is an ordered collection of Pairs with unique keys.
type Grouping[K comparable, V any] struct {
	pairs []*Pair[K, V]
	index map[K]int
}

// NewGrouping creates a Grouping from pairs in the given order.
// It fails with ErrInvalidArgument on a nil pair and ErrDuplicateKey when
// two pairs share a key.
func NewGrouping[K comparable, V any](pairs ...*Pair[K, V]) (*Grouping[K, V], error) {
	g := &Grouping[K, V]{
		pairs: make([]*Pair[K, V], 0, len(pairs)),
		index: make(map[K]int, len(pairs)),
	}
	for i, p := range pairs {
		if p == nil {
			return nil, apperrors.InvalidArgument("pairs", fmt.Sprintf("element %d is not a pair", i))
		}
		if _, dup := g.index[p.key]; dup {
			return nil, apperrors.DuplicateKey(p.key)
		}
		g.index[p.key] = len(g.pairs)
		g.pairs = append(g.pairs, p)
	}
	return g, nil
}

// GroupBy groups the elements by key. Keys appear in order of first
// occurrence and each group keeps the input order of its elements.
func GroupBy[T any, K comparable](s *Sequence[T], key func(T) K) *Grouping[K, T] {
	g := &Grouping[K, T]{index: make(map[K]int)}
	var buckets [][]T
	var keys []K
	for _, v := range s.items {
		k := key(v)
		i, ok := g.index[k]
		if !ok {
			i = len(keys)
			g.index[k] = i
			keys = append(keys, k)
			buckets = append(buckets, nil)
		}
		buckets[i] = append(buckets[i], v)
	}
	g.pairs = make([]*Pair[K, T], len(keys))
	for i, k := range keys {
		g.pairs[i] = &Pair[K, T]{key: k, values: wrap(buckets[i])}
	}
	return g
}

// Len returns the number of groups.
func (g *Grouping[K, V]) Len() int { return len(g.pairs) }

// Keys returns the group keys in order.
func (g *Grouping[K, V]) Keys() []K {
	keys := make([]K, len(g.pairs))
	for i, p := range g.pairs {
		keys[i] = p.key
	}
	return keys
}

// Values returns copies of the value sequences in key order.
func (g *Grouping[K, V]) Values() []*Sequence[V] {
	values := make([]*Sequence[V], len(g.pairs))
	for i, p := range g.pairs {
		values[i] = p.values.Copy()
	}
	return values
}

// Pairs returns the groups as a sequence of pairs.
func (g *Grouping[K, V]) Pairs() *Sequence[*Pair[K, V]] {
	return From(g.pairs)
}

// Get returns a copy of the values for key and whether the key exists.
func (g *Grouping[K, V]) Get(key K) (*Sequence[V], bool) {
	i, ok := g.index[key]
	if !ok {
		return nil, false
	}
	return g.pairs[i].values.Copy(), true
}

// String renders the grouping as Grouping<{k1: Sequence<...>}, ...>.
func (g *Grouping[K, V]) String() string {
	return formatList("Grouping", g.pairs, (*Pair[K, V]).String)
}

// GoString implements fmt.GoStringer with the same form as String.
func (g *Grouping[K, V]) GoString() string {
	return g.String()
}

// GroupingEqual reports whether a and b hold equal pairs in the same order.
func GroupingEqual[K, V comparable](a, b *Grouping[K, V]) bool {
	return slices.EqualFunc(a.pairs, b.pairs, PairEqual[K, V])
}
