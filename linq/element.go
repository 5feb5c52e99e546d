package linq

import (
	apperrors "github.com/kbukum/linqkit/errors"
)

// First returns the first element satisfying pred (any element if pred is
// nil). It fails with ErrEmpty on an empty sequence and ErrNoMatch when
// nothing matches.
func (s *Sequence[T]) First(pred func(T) bool) (T, error) {
	if i := s.indexOf(pred); i >= 0 {
		return s.items[i], nil
	}
	return s.notFound("First", pred)
}

// FirstOrDefault is First returning def instead of failing.
func (s *Sequence[T]) FirstOrDefault(def T, pred func(T) bool) T {
	if i := s.indexOf(pred); i >= 0 {
		return s.items[i]
	}
	return def
}

// Last returns the last element satisfying pred (any element if pred is nil).
func (s *Sequence[T]) Last(pred func(T) bool) (T, error) {
	if i := s.lastIndexOf(pred); i >= 0 {
		return s.items[i], nil
	}
	return s.notFound("Last", pred)
}

// LastOrDefault is Last returning def instead of failing.
func (s *Sequence[T]) LastOrDefault(def T, pred func(T) bool) T {
	if i := s.lastIndexOf(pred); i >= 0 {
		return s.items[i]
	}
	return def
}

// Single returns the only element satisfying pred. It fails with ErrEmpty
// (or ErrNoMatch) when nothing matches and ErrTooMany when more than one
// element does.
func (s *Sequence[T]) Single(pred func(T) bool) (T, error) {
	v, n := s.single(pred)
	switch {
	case n == 1:
		return v, nil
	case n > 1:
		var zero T
		return zero, apperrors.TooMany("Single", n)
	}
	return s.notFound("Single", pred)
}

// SingleOrDefault returns def when nothing matches and the match when exactly
// one element does. More than one match fails with ErrTooMany.
func (s *Sequence[T]) SingleOrDefault(def T, pred func(T) bool) (T, error) {
	v, n := s.single(pred)
	switch {
	case n == 0:
		return def, nil
	case n > 1:
		return def, apperrors.TooMany("SingleOrDefault", n)
	}
	return v, nil
}

// ElementAt returns the element at index i, failing with ErrOutOfRange when
// i is not in [0, Len()).
func (s *Sequence[T]) ElementAt(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, apperrors.OutOfRange("ElementAt", i, len(s.items))
	}
	return s.items[i], nil
}

// ElementAtOrDefault is ElementAt returning def instead of failing.
func (s *Sequence[T]) ElementAtOrDefault(i int, def T) T {
	if i < 0 || i >= len(s.items) {
		return def
	}
	return s.items[i]
}

func (s *Sequence[T]) indexOf(pred func(T) bool) int {
	for i, v := range s.items {
		if pred == nil || pred(v) {
			return i
		}
	}
	return -1
}

func (s *Sequence[T]) lastIndexOf(pred func(T) bool) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if pred == nil || pred(s.items[i]) {
			return i
		}
	}
	return -1
}

// single returns the first match and the total number of matches.
func (s *Sequence[T]) single(pred func(T) bool) (T, int) {
	var first T
	n := 0
	for _, v := range s.items {
		if pred == nil || pred(v) {
			if n == 0 {
				first = v
			}
			n++
		}
	}
	return first, n
}

func (s *Sequence[T]) notFound(op string, pred func(T) bool) (T, error) {
	var zero T
	if len(s.items) == 0 || pred == nil {
		return zero, apperrors.Empty(op)
	}
	return zero, apperrors.NoMatch(op)
}
