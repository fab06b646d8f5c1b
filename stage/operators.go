package stage

import "time"

// Number is satisfied by every built-in integer and floating-point kind.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Map transforms each value produced by s.
// The result owns s: reusing s in another chain shares its state.
func Map[I, O, T any](s Stage[I, O], fn func(O) T) *Operator[I, T] {
	return Compose[I, O, T](s, Transform(fn))
}

// Operate composes s with a raw generator that decides whether to produce.
// The result owns s: reusing s in another chain shares its state.
func Operate[I, O, T any](s Stage[I, O], fn func(O) (T, bool)) *Operator[I, T] {
	return Compose[I, O, T](s, New(fn))
}

// Filter keeps only values that satisfy fn.
// The result owns s: reusing s in another chain shares its state.
func Filter[I, O any](s Stage[I, O], fn func(O) bool) *Operator[I, O] {
	return Compose[I, O, O](s, Predicate(fn))
}

// Action calls fn for each value produced by s, then passes the value through.
// The result owns s: reusing s in another chain shares its state.
func Action[I, O any](s Stage[I, O], fn func(O)) *Operator[I, O] {
	return Compose[I, O, O](s, New(func(v O) (O, bool) {
		fn(v)
		return v, true
	}))
}

// Reduce produces the running fold of the values produced by s.
// The result owns s: reusing s in another chain shares its state.
func Reduce[I, O, R any](s Stage[I, O], init R, fn func(R, O) R) *Operator[I, R] {
	return Compose[I, O, R](s, NewReducer(init, fn))
}

// Add produces the running sum of the values produced by s.
// The result owns s: reusing s in another chain shares its state.
func Add[I any, O Number](s Stage[I, O]) *Operator[I, O] {
	return Reduce(s, O(0), func(acc, v O) O { return acc + v })
}

// Count produces how many values s has produced so far.
// The result owns s: reusing s in another chain shares its state.
func Count[I, O any](s Stage[I, O]) *Operator[I, int] {
	return Compose[I, O, int](s, NewCounter[O]())
}

// Distinct suppresses values equal to the previous value produced.
// The result owns s: reusing s in another chain shares its state.
func Distinct[I any, O comparable](s Stage[I, O]) *Operator[I, O] {
	return Compose[I, O, O](s, NewDistinct[O]())
}

// DistinctFunc suppresses values that equal reports as duplicates of the
// previous value produced.
// The result owns s: reusing s in another chain shares its state.
func DistinctFunc[I, O any](s Stage[I, O], equal func(a, b O) bool) *Operator[I, O] {
	return Compose[I, O, O](s, NewDistinctFunc(equal))
}

// Limit produces at most n values from s.
// The result owns s: reusing s in another chain shares its state.
func Limit[I, O any](s Stage[I, O], n uint) *Operator[I, O] {
	return Compose[I, O, O](s, NewLimiter[O](n))
}

// Accumulate feeds the timestamps produced by s into a Runtime.
// The result owns s: reusing s in another chain shares its state.
func Accumulate[I any](s Stage[I, time.Time], seed time.Time, elapsed time.Duration) *Operator[I, time.Duration] {
	return Compose[I, time.Time, time.Duration](s, NewRuntime(seed, elapsed))
}
