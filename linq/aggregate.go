package linq

import (
	"cmp"
	"math"

	"github.com/go-softwarelab/common/pkg/seq"
	"golang.org/x/exp/constraints"

	apperrors "github.com/kbukum/linqkit/errors"
)

// Number is the constraint for elements that can be summed and averaged.
type Number interface {
	constraints.Integer | constraints.Float
}

// --- Folds ---

// Inject folds the sequence from the left, starting with seed.
func Inject[T, A any](s *Sequence[T], seed A, accumulate func(A, T) A) A {
	acc := seed
	for _, v := range s.items {
		acc = accumulate(acc, v)
	}
	return acc
}

// InjectFinal is Inject followed by finalize applied to the result.
func InjectFinal[T, A, R any](s *Sequence[T], seed A, accumulate func(A, T) A, finalize func(A) R) R {
	return finalize(Inject(s, seed, accumulate))
}

// Scan returns every intermediate accumulator of Inject, starting with seed.
// The result has Len()+1 elements.
func Scan[T, A any](s *Sequence[T], seed A, accumulate func(A, T) A) *Sequence[A] {
	out := make([]A, 0, len(s.items)+1)
	acc := seed
	out = append(out, acc)
	for _, v := range s.items {
		acc = accumulate(acc, v)
		out = append(out, acc)
	}
	return wrap(out)
}

// --- Counting and quantifiers ---

// Count returns the number of elements satisfying pred. A nil pred counts all.
func (s *Sequence[T]) Count(pred func(T) bool) int {
	if pred == nil {
		return len(s.items)
	}
	return seq.Count(seq.Filter(s.Values(), pred))
}

// All reports whether pred holds for every element. It is true for an empty
// sequence and for a nil pred.
func (s *Sequence[T]) All(pred func(T) bool) bool {
	if pred == nil {
		return true
	}
	return seq.Every(s.Values(), pred)
}

// Any reports whether pred holds for some element. A nil pred reports whether
// the sequence is non-empty.
func (s *Sequence[T]) Any(pred func(T) bool) bool {
	if pred == nil {
		return len(s.items) > 0
	}
	return seq.Exists(s.Values(), pred)
}

// Contains reports whether item is an element of s.
func Contains[T comparable](s *Sequence[T], item T) bool {
	return seq.Contains(s.Values(), item)
}

// ContainsBy reports whether some element has the same key as item.
func ContainsBy[T any, K comparable](s *Sequence[T], item T, key func(T) K) bool {
	want := key(item)
	return seq.Exists(s.Values(), func(v T) bool { return key(v) == want })
}

// --- Numeric aggregates ---

// Sum returns the sum of the elements, or zero for an empty sequence.
func Sum[T Number](s *Sequence[T]) T {
	return SumBy(s, Identity[T])
}

// SumBy returns the sum of the projected values.
func SumBy[T any, N Number](s *Sequence[T], project func(T) N) N {
	var total N
	for _, v := range s.items {
		total += project(v)
	}
	return total
}

// Average returns the arithmetic mean of the elements.
// It fails with ErrDivideByZero on an empty sequence.
func Average[T Number](s *Sequence[T]) (float64, error) {
	return AverageBy(s, Identity[T])
}

// AverageBy returns the arithmetic mean of the projected values, summed in
// float64 so narrow integer types cannot overflow.
func AverageBy[T any, N Number](s *Sequence[T], project func(T) N) (float64, error) {
	if len(s.items) == 0 {
		return 0, apperrors.DivideByZero("Average")
	}
	var sum float64
	for _, v := range s.items {
		sum += float64(project(v))
	}
	return sum / float64(len(s.items)), nil
}

// Std returns the population standard deviation of the elements.
// It fails with ErrDivideByZero on an empty sequence.
func Std[T Number](s *Sequence[T]) (float64, error) {
	return StdBy(s, Identity[T])
}

// StdBy returns the population standard deviation of the projected values.
func StdBy[T any, N Number](s *Sequence[T], project func(T) N) (float64, error) {
	n := len(s.items)
	if n == 0 {
		return 0, apperrors.DivideByZero("Std")
	}
	// Welford's running mean and sum of squared deviations.
	var mean, m2 float64
	for i, v := range s.items {
		x := float64(project(v))
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}
	return math.Sqrt(m2 / float64(n)), nil
}

// --- Extremes ---

// Min returns the smallest element. It fails with ErrEmpty on an empty
// sequence.
func Min[T cmp.Ordered](s *Sequence[T]) (T, error) {
	return extreme(s, "Min", Identity[T], -1)
}

// MinBy returns the first element with the smallest key.
func MinBy[T any, K cmp.Ordered](s *Sequence[T], key func(T) K) (T, error) {
	return extreme(s, "Min", key, -1)
}

// Max returns the largest element. It fails with ErrEmpty on an empty
// sequence.
func Max[T cmp.Ordered](s *Sequence[T]) (T, error) {
	return extreme(s, "Max", Identity[T], 1)
}

// MaxBy returns the first element with the largest key.
func MaxBy[T any, K cmp.Ordered](s *Sequence[T], key func(T) K) (T, error) {
	return extreme(s, "Max", key, 1)
}

// MinAll returns every element equal to the minimum, in input order.
// An empty sequence yields an empty result.
func MinAll[T cmp.Ordered](s *Sequence[T]) *Sequence[T] {
	return extremeAll(s, Identity[T], -1)
}

// MinAllBy returns every element whose key equals the smallest key.
func MinAllBy[T any, K cmp.Ordered](s *Sequence[T], key func(T) K) *Sequence[T] {
	return extremeAll(s, key, -1)
}

// MaxAll returns every element equal to the maximum, in input order.
// An empty sequence yields an empty result.
func MaxAll[T cmp.Ordered](s *Sequence[T]) *Sequence[T] {
	return extremeAll(s, Identity[T], 1)
}

// MaxAllBy returns every element whose key equals the largest key.
func MaxAllBy[T any, K cmp.Ordered](s *Sequence[T], key func(T) K) *Sequence[T] {
	return extremeAll(s, key, 1)
}

// extreme returns the first element whose key wins under sign
// (-1 for minimum, 1 for maximum).
func extreme[T any, K cmp.Ordered](s *Sequence[T], op string, key func(T) K, sign int) (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, apperrors.Empty(op)
	}
	best, bestKey := s.items[0], key(s.items[0])
	for _, v := range s.items[1:] {
		if k := key(v); cmp.Compare(k, bestKey) == sign {
			best, bestKey = v, k
		}
	}
	return best, nil
}

func extremeAll[T any, K cmp.Ordered](s *Sequence[T], key func(T) K, sign int) *Sequence[T] {
	var out []T
	var bestKey K
	for i, v := range s.items {
		k := key(v)
		switch c := cmp.Compare(k, bestKey); {
		case i == 0 || c == sign:
			bestKey = k
			out = append(out[:0], v)
		case c == 0:
			out = append(out, v)
		}
	}
	return wrap(out)
}
