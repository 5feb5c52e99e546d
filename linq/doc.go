// Package linq provides chainable query operators over materialized, ordered
// sequences.
//
// A Sequence owns its elements. Every operator returns a new Sequence and
// leaves its receiver and arguments untouched, with one exception: Reverse
// reverses in place and returns the receiver.
//
// Operators that keep the element type are methods. Operators that introduce
// a new type (a projection, a key, a numeric constraint) are package
// functions taking the sequence as their first argument. Where a projection
// is optional the operator comes in two forms, such as Distinct/DistinctBy
// and Min/MinBy. A nil predicate means "every element".
//
// # Operators
//
// Filtering and projection:
//
//   - Where, WhereIn, WhereInBy
//   - Select, SelectIndexed, SelectMany, SelectManyIndexed, Flatten
//
// Slicing:
//
//   - Take, TakeWhile, TakeWhileIndexed (clamp to the available elements)
//   - Skip (fails with ErrOutOfRange when n exceeds Len), SkipWhile, SkipWhileIndexed
//
// Combination and sets:
//
//   - Concat, DefaultIfEmpty, Zip, ZipWith
//   - Distinct, Except, Intersect, Union and their By forms
//
// Ordering:
//
//   - Reverse (in place), Sort, OrderBy, OrderByFunc (stable)
//
// Aggregation:
//
//   - Inject, InjectFinal, Scan, Count, Sum, Average, Std
//   - Min, Max, MinAll, MaxAll, Contains, All, Any
//
// Element access:
//
//   - First, Last, Single, ElementAt and their OrDefault forms
//
// Relational:
//
//   - Join, GroupJoin, GroupBy (Grouping of Pairs), ToLookup (Lookup)
//
// # Errors
//
// Failing operators return an *errors.AppError from
// github.com/kbukum/linqkit/errors. Match conditions with errors.Is:
//
//	_, err := linq.Of[int]().First(nil)
//	if errors.Is(err, lkerrors.ErrEmpty) { ... }
//
// # Usage
//
//	evens := linq.Range(0, 10).Where(func(n int) bool { return n%2 == 0 })
//	squares := linq.Select(evens, func(n int) int { return n * n })
//	fmt.Println(squares) // Sequence<0, 4, 16, 36, 64>
package linq
