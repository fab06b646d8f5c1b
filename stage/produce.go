package stage

import "time"

// Discard replaces every value produced by s with Void.
// This still produces a value; it is not the same as producing nothing.
// The result owns s: reusing s in another chain shares its state.
func Discard[I, O any](s Stage[I, O]) *Operator[I, Void] {
	return Const(s, Void{})
}

// Produce replaces every value produced by s with a fresh fn().
// The result owns s: reusing s in another chain shares its state.
func Produce[I, O, T any](s Stage[I, O], fn func() T) *Operator[I, T] {
	return Compose[I, Void, T](Map(s, func(O) Void { return Void{} }), Producer(fn))
}

// Const replaces every value produced by s with v.
// The result owns s: reusing s in another chain shares its state.
func Const[I, O, T any](s Stage[I, O], v T) *Operator[I, T] {
	return Map(s, func(O) T { return v })
}

// Date replaces every value produced by s with the current clock time.
// The result owns s: reusing s in another chain shares its state.
func Date[I, O any](s Stage[I, O], clock Clock) *Operator[I, time.Time] {
	if clock == nil {
		clock = SystemClock
	}
	return Produce[I, O, time.Time](s, clock)
}
