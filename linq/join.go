package linq

// Join is an inner join of s and other on equal keys. The result holds
// combine(l, r) for each matching pair, ordered by s and then by other.
func Join[L, R any, K comparable, U any](
	s *Sequence[L], other *Sequence[R],
	leftKey func(L) K, rightKey func(R) K,
	combine func(L, R) U,
) *Sequence[U] {
	index := ToLookup(other, rightKey)
	var out []U
	for _, l := range s.items {
		for _, r := range index.values[leftKey(l)] {
			out = append(out, combine(l, r))
		}
	}
	return wrap(out)
}

// GroupJoin combines each element of s with the sequence of matching
// elements of other. Every element of s yields exactly one result; with no
// matches, combine receives an empty sequence.
func GroupJoin[L, R any, K comparable, U any](
	s *Sequence[L], other *Sequence[R],
	leftKey func(L) K, rightKey func(R) K,
	combine func(L, *Sequence[R]) U,
) *Sequence[U] {
	index := ToLookup(other, rightKey)
	out := make([]U, len(s.items))
	for i, l := range s.items {
		out[i] = combine(l, index.Get(leftKey(l)))
	}
	return wrap(out)
}
