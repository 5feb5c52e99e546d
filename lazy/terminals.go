package lazy

import (
	"cmp"

	"github.com/kbukum/linqkit/linq"
)

// Inspecting terminals evaluate a Snapshot; the receiver keeps every value.
// Short-circuiting ones snapshot only the prefix that decides the answer.

// matching returns pred, or a predicate matching everything when pred is nil.
func matching[T any](pred func(T) bool) func(T) bool {
	if pred == nil {
		return func(T) bool { return true }
	}
	return pred
}

// upToMatches stops once pred has matched n values.
func upToMatches[T any](pred func(T) bool, n int) func(T) bool {
	pred = matching(pred)
	found := 0
	return func(v T) bool {
		if pred(v) {
			found++
		}
		return found == n
	}
}

// Inject folds the remaining values from the left, starting with seed.
func Inject[T, A any](s *Sequence[T], seed A, accumulate func(A, T) A) A {
	return linq.Inject(s.peek(), seed, accumulate)
}

// InjectFinal is Inject followed by finalize applied to the result.
func InjectFinal[T, A, R any](s *Sequence[T], seed A, accumulate func(A, T) A, finalize func(A) R) R {
	return linq.InjectFinal(s.peek(), seed, accumulate, finalize)
}

// Count returns the number of remaining values satisfying pred.
func (s *Sequence[T]) Count(pred func(T) bool) int {
	return s.peek().Count(pred)
}

// First returns the first remaining value satisfying pred.
func (s *Sequence[T]) First(pred func(T) bool) (T, error) {
	return linq.From(s.snapshotUntil(matching(pred))).First(pred)
}

// FirstOrDefault is First returning def instead of failing.
func (s *Sequence[T]) FirstOrDefault(def T, pred func(T) bool) T {
	return linq.From(s.snapshotUntil(matching(pred))).FirstOrDefault(def, pred)
}

// Last returns the last remaining value satisfying pred.
func (s *Sequence[T]) Last(pred func(T) bool) (T, error) {
	return s.peek().Last(pred)
}

// LastOrDefault is Last returning def instead of failing.
func (s *Sequence[T]) LastOrDefault(def T, pred func(T) bool) T {
	return s.peek().LastOrDefault(def, pred)
}

// Single returns the only remaining value satisfying pred. It stops pulling
// at the second match, so ErrTooMany reports at most two matches.
func (s *Sequence[T]) Single(pred func(T) bool) (T, error) {
	return linq.From(s.snapshotUntil(upToMatches(pred, 2))).Single(pred)
}

// SingleOrDefault returns def on no match and fails on more than one.
func (s *Sequence[T]) SingleOrDefault(def T, pred func(T) bool) (T, error) {
	return linq.From(s.snapshotUntil(upToMatches(pred, 2))).SingleOrDefault(def, pred)
}

// ElementAt returns the i-th remaining value.
func (s *Sequence[T]) ElementAt(i int) (T, error) {
	return linq.From(s.snapshotN(i + 1)).ElementAt(i)
}

// ElementAtOrDefault is ElementAt returning def instead of failing.
func (s *Sequence[T]) ElementAtOrDefault(i int, def T) T {
	return linq.From(s.snapshotN(i + 1)).ElementAtOrDefault(i, def)
}

// All reports whether pred holds for every remaining value.
func (s *Sequence[T]) All(pred func(T) bool) bool {
	if pred == nil {
		return true
	}
	return linq.From(s.snapshotUntil(func(v T) bool { return !pred(v) })).All(pred)
}

// Any reports whether pred holds for some remaining value, or whether any
// value remains when pred is nil.
func (s *Sequence[T]) Any(pred func(T) bool) bool {
	return linq.From(s.snapshotUntil(matching(pred))).Any(pred)
}

// Contains reports whether item is among the remaining values.
func Contains[T comparable](s *Sequence[T], item T) bool {
	return linq.Contains(linq.From(s.snapshotUntil(func(v T) bool { return v == item })), item)
}

// ContainsBy reports whether a remaining value has the same key as item.
func ContainsBy[T any, K comparable](s *Sequence[T], item T, key func(T) K) bool {
	want := key(item)
	return linq.ContainsBy(linq.From(s.snapshotUntil(func(v T) bool { return key(v) == want })), item, key)
}

// Min returns the smallest remaining value.
func Min[T cmp.Ordered](s *Sequence[T]) (T, error) {
	return linq.Min(s.peek())
}

// MinBy returns the first remaining value with the smallest key.
func MinBy[T any, K cmp.Ordered](s *Sequence[T], key func(T) K) (T, error) {
	return linq.MinBy(s.peek(), key)
}

// Max returns the largest remaining value.
func Max[T cmp.Ordered](s *Sequence[T]) (T, error) {
	return linq.Max(s.peek())
}

// MaxBy returns the first remaining value with the largest key.
func MaxBy[T any, K cmp.Ordered](s *Sequence[T], key func(T) K) (T, error) {
	return linq.MaxBy(s.peek(), key)
}

// Sum returns the sum of the remaining values.
func Sum[T linq.Number](s *Sequence[T]) T {
	return linq.Sum(s.peek())
}

// SumBy returns the sum of the projected remaining values.
func SumBy[T any, N linq.Number](s *Sequence[T], project func(T) N) N {
	return linq.SumBy(s.peek(), project)
}

// Average returns the mean of the remaining values.
func Average[T linq.Number](s *Sequence[T]) (float64, error) {
	return linq.Average(s.peek())
}

// AverageBy returns the mean of the projected remaining values.
func AverageBy[T any, N linq.Number](s *Sequence[T], project func(T) N) (float64, error) {
	return linq.AverageBy(s.peek(), project)
}
