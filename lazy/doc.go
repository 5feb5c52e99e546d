// Package lazy provides single-pass, pull-based query sequences.
//
// A Sequence wraps a cursor over a source and is either Active or
// Exhausted. Chained operators (Where, Select, Take, Distinct, OrderBy,
// Concat) build new cursors that pull from the same upstream on demand, so
// no work happens until values are pulled.
//
// # Consuming and non-consuming operations
//
// Next, Values, ToSlice, Materialize and Close consume the cursor. Pulling
// from a derived sequence consumes its upstream too.
//
// Inspecting terminals (Count, First, Last, Single, ElementAt, Min, Max,
// Sum, Average, Contains, All, Any, Inject and their variants) call
// Snapshot first: the remaining values are buffered, the receiver replays
// them and the terminal runs on an independent copy. The receiver can be
// chained or consumed afterwards with the same values. First, Any, All,
// ElementAt, Single, Contains and their variants buffer only the prefix that
// decides the answer, so they work on unbounded sources. Snapshotting a
// derived sequence drains what it pulls from its upstream; the buffered
// values live on in the derived sequence only.
//
// Operator contracts and errors match package linq.
//
// # Usage
//
//	src := lazy.Of(5, 3, 8, 1)
//	n := src.Count(nil) // 4, src still holds 5, 3, 8, 1
//	big := src.Where(func(n int) bool { return n > 2 })
//	fmt.Println(big.ToSlice()) // [5 3 8], src is now exhausted
package lazy
