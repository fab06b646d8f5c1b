// Package stage provides composable, push-based processing stages.
//
// A Stage consumes one value per call and optionally produces one value.
// Stages compose into larger stages; when a stage produces nothing the rest
// of the chain is skipped for that call. Nothing runs until the caller
// invokes Advance, and every call runs to completion before returning.
//
// # Core
//
//   - Stage: the Advance(in) (out, ok) contract
//   - Operator: generic stage wrapper returned by every combinator
//   - Compose: chain two stages with short-circuit propagation
//
// # Stateful stages
//
//   - Counter: counts inputs
//   - Reducer: running fold with a caller-supplied combine function
//   - Deduper: suppresses consecutive duplicates (NewDistinct, NewDistinctFunc)
//   - Limiter: produces at most n values
//   - Runtime: accumulates elapsed time between timestamps
//
// # Combinators
//
// Map, Operate, Filter, Action, Evaluate, IsEqual, IsGreater, IsLess, Branch,
// Combine, DefaultTo, Discard, Produce, Const, Reduce, Add, Count, Distinct,
// Limit, Accumulate, plus the formatting helpers Print, Describe, Prefix,
// Not, Date and Log.
//
// # Usage
//
//	evens := stage.Filter(stage.Take[int](), func(n int) bool { return n%2 == 0 })
//	total := stage.DefaultTo(stage.Add(evens), -1)
//	for _, n := range []int{1, 2, 3, 4} {
//	    v, _ := total.Advance(n) // -1, 2, -1, 6
//	}
//
// Stages are not safe for concurrent use. Passing a stage to Compose (or any
// combinator that embeds it) hands ownership to the result; the caller must
// not advance it directly afterwards.
package stage
