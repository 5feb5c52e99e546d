package linq

import (
	"fmt"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"
)

// Lookup maps keys to the sequences of values that share them.
// Keys are kept in insertion order.
type Lookup[K comparable, V any] struct {
	keys   []K
	values map[K][]V
}

// NewLookup builds a Lookup from key/value entries. Entries with the same
// key are appended to that key's sequence.
func NewLookup[K comparable, V any](entries ...types.Pair[K, V]) *Lookup[K, V] {
	l := &Lookup[K, V]{values: make(map[K][]V, len(entries))}
	for _, e := range entries {
		l.add(e.Left, e.Right)
	}
	return l
}

// ToLookup groups the elements by key into a Lookup.
func ToLookup[T any, K comparable](s *Sequence[T], key func(T) K) *Lookup[K, T] {
	return ToLookupMap(s, key, Identity[T])
}

// ToLookupMap builds a Lookup from key(v) to value(v).
func ToLookupMap[T any, K comparable, V any](s *Sequence[T], key func(T) K, value func(T) V) *Lookup[K, V] {
	l := &Lookup[K, V]{values: make(map[K][]V)}
	for _, v := range s.items {
		l.add(key(v), value(v))
	}
	return l
}

func (l *Lookup[K, V]) add(k K, v V) {
	if _, ok := l.values[k]; !ok {
		l.keys = append(l.keys, k)
	}
	l.values[k] = append(l.values[k], v)
}

// Len returns the number of distinct keys.
func (l *Lookup[K, V]) Len() int { return len(l.keys) }

// Keys returns the keys in insertion order.
func (l *Lookup[K, V]) Keys() []K {
	return append([]K(nil), l.keys...)
}

// Contains reports whether key has at least one value.
func (l *Lookup[K, V]) Contains(key K) bool {
	_, ok := l.values[key]
	return ok
}

// Get returns the values for key, or an empty sequence if key is absent.
func (l *Lookup[K, V]) Get(key K) *Sequence[V] {
	return From(l.values[key])
}

// ToSequence returns the (key, values) entries in key order.
func (l *Lookup[K, V]) ToSequence() *Sequence[types.Pair[K, *Sequence[V]]] {
	out := make([]types.Pair[K, *Sequence[V]], len(l.keys))
	for i, k := range l.keys {
		out[i] = types.Pair[K, *Sequence[V]]{Left: k, Right: From(l.values[k])}
	}
	return wrap(out)
}

// String renders the lookup as Lookup<k1: Sequence<...>, ...>.
func (l *Lookup[K, V]) String() string {
	return formatList("Lookup", l.keys, func(k K) string {
		return fmt.Sprintf("%v: %s", k, From(l.values[k]))
	})
}

// GoString implements fmt.GoStringer with the same form as String.
func (l *Lookup[K, V]) GoString() string {
	return l.String()
}

// LookupEqual reports whether a and b have the same keys in the same order
// with equal value sequences.
func LookupEqual[K, V comparable](a, b *Lookup[K, V]) bool {
	if len(a.keys) != len(b.keys) {
		return false
	}
	for i, k := range a.keys {
		if b.keys[i] != k || !slices.Equal(a.values[k], b.values[k]) {
			return false
		}
	}
	return true
}
