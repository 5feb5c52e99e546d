package linq

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/go-softwarelab/common/pkg/seq"

	apperrors "github.com/kbukum/linqkit/errors"
)

// Sequence is an ordered, materialized collection of elements.
// Every operator returns a new Sequence; Reverse is the only operator that
// mutates its receiver.
type Sequence[T any] struct {
	items []T
}

// wrap adopts items without copying. Callers must own items.
func wrap[T any](items []T) *Sequence[T] {
	return &Sequence[T]{items: items}
}

// --- Constructors ---

// From creates a sequence from a copy of items.
func From[T any](items []T) *Sequence[T] {
	return wrap(slices.Clone(items))
}

// Of creates a sequence from the given elements.
func Of[T any](items ...T) *Sequence[T] {
	return From(items)
}

// FromSeq creates a sequence by draining an iterator.
func FromSeq[T any](values iter.Seq[T]) *Sequence[T] {
	return wrap(seq.Collect(values))
}

// Repeat creates a sequence holding n copies of value.
func Repeat[T any](value T, n int) *Sequence[T] {
	items := make([]T, max(n, 0))
	for i := range items {
		items[i] = value
	}
	return wrap(items)
}

// Range creates the sequence start, start+1, ..., start+count-1.
func Range(start, count int) *Sequence[int] {
	items := make([]int, max(count, 0))
	for i := range items {
		items[i] = start + i
	}
	return wrap(items)
}

// Identity returns v. Pass it where a projection is required but the
// element itself is wanted.
func Identity[T any](v T) T {
	return v
}

// --- Access ---

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// At returns the element at index i. It panics if i is out of range,
// like indexing a slice; use ElementAt for an error instead.
func (s *Sequence[T]) At(i int) T {
	return s.items[i]
}

// Slice returns the elements in [from, to) as a new sequence.
// Bounds are clamped to [0, Len()].
func (s *Sequence[T]) Slice(from, to int) *Sequence[T] {
	from = min(max(from, 0), len(s.items))
	to = min(max(to, from), len(s.items))
	return From(s.items[from:to])
}

// Values returns an iterator over the elements in order.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return slices.Values(s.items)
}

// Indexed returns an iterator over (index, element) pairs.
func (s *Sequence[T]) Indexed() iter.Seq2[int, T] {
	return slices.All(s.items)
}

// --- Conversions ---

// ToSlice returns the elements as a new slice.
func (s *Sequence[T]) ToSlice() []T {
	return slices.Clone(s.items)
}

// Copy returns a shallow clone of the sequence.
func (s *Sequence[T]) Copy() *Sequence[T] {
	return From(s.items)
}

// ToSet returns the distinct elements as a set. Order is discarded.
func ToSet[T comparable](s *Sequence[T]) map[T]struct{} {
	set := make(map[T]struct{}, len(s.items))
	for _, v := range s.items {
		set[v] = struct{}{}
	}
	return set
}

// ToMap builds a map from key(v) to value(v). Pass Identity for either
// projection to use the element itself. It fails with ErrInvalidArgument if
// a projection is nil and ErrDuplicateKey if two elements produce the same
// key.
func ToMap[T any, K comparable, V any](s *Sequence[T], key func(T) K, value func(T) V) (map[K]V, error) {
	if key == nil {
		return nil, apperrors.InvalidArgument("key", "projection must not be nil")
	}
	if value == nil {
		return nil, apperrors.InvalidArgument("value", "projection must not be nil")
	}
	m := make(map[K]V, len(s.items))
	for _, v := range s.items {
		k := key(v)
		if _, dup := m[k]; dup {
			return nil, apperrors.DuplicateKey(k)
		}
		m[k] = value(v)
	}
	return m, nil
}

// ToMapOf maps each element to value(element). It is ToMap with the
// identity key.
func ToMapOf[T comparable, V any](s *Sequence[T], value func(T) V) (map[T]V, error) {
	return ToMap(s, Identity[T], value)
}

// --- Equality and formatting ---

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Sequence[T]) bool {
	return slices.Equal(a.items, b.items)
}

// EqualFunc reports whether s and other have the same length and eq holds
// for every pair of elements at the same index.
func (s *Sequence[T]) EqualFunc(other *Sequence[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(s.items, other.items, eq)
}

// String renders the sequence as Sequence<e1, e2, ...>.
func (s *Sequence[T]) String() string {
	return formatList("Sequence", s.items, func(v T) string { return fmt.Sprintf("%v", v) })
}

// GoString implements fmt.GoStringer with the same form as String.
func (s *Sequence[T]) GoString() string {
	return s.String()
}

// formatList renders name<f(e1), f(e2), ...> with no trailing separator.
func formatList[T any](name string, items []T, f func(T) string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('<')
	for i, v := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f(v))
	}
	b.WriteByte('>')
	return b.String()
}
