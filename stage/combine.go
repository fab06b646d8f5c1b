package stage

// Pair holds a value together with a value derived from it.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Combine pairs each value produced by s with the output of embedded for the
// same value. Nothing is produced when embedded produces nothing.
// Combine owns embedded afterwards.
// The result owns s: reusing s in another chain shares its state.
func Combine[I, O, T any](s Stage[I, O], embedded Stage[O, T]) *Operator[I, Pair[O, T]] {
	return CombineFunc(s, embedded.Advance)
}

// CombineFunc pairs each value produced by s with fn(value), skipping values
// for which fn produces nothing.
// The result owns s: reusing s in another chain shares its state.
func CombineFunc[I, O, T any](s Stage[I, O], fn func(O) (T, bool)) *Operator[I, Pair[O, T]] {
	return CombineWith(s, func(v O) (Pair[O, T], bool) {
		t, ok := fn(v)
		if !ok {
			return Pair[O, T]{}, false
		}
		return Pair[O, T]{First: v, Second: t}, true
	})
}

// CombineWith composes s with a generator that builds the pair itself.
// The result owns s: reusing s in another chain shares its state.
func CombineWith[I, O, T any](s Stage[I, O], fn func(O) (Pair[O, T], bool)) *Operator[I, Pair[O, T]] {
	return Operate(s, fn)
}

// Branch feeds every value produced by s into target for its effect, discards
// target's result, and passes the value on unchanged.
// Branch owns target afterwards.
// The result owns s: reusing s in another chain shares its state.
func Branch[I, O, T any](s Stage[I, O], target Stage[O, T]) *Operator[I, O] {
	return Action(s, func(v O) {
		_, _ = target.Advance(v)
	})
}

// DefaultTo produces fallback whenever s produces nothing, so stages composed
// after it are always advanced.
// The result owns s: reusing s in another chain shares its state.
func DefaultTo[I, O any](s Stage[I, O], fallback O) *Operator[I, O] {
	return New(func(in I) (O, bool) {
		if out, ok := s.Advance(in); ok {
			return out, true
		}
		return fallback, true
	})
}
