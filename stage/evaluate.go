package stage

import "cmp"

// Evaluation pairs a value with the verdict of a goal predicate.
type Evaluation[T any] struct {
	Value  T
	Result bool
}

// Evaluate tags each value produced by s with fn's verdict.
// It produces for every value; use Filter on Result to wait for a goal.
// The result owns s: reusing s in another chain shares its state.
func Evaluate[I, O any](s Stage[I, O], fn func(O) bool) *Operator[I, Evaluation[O]] {
	return Map(s, func(v O) Evaluation[O] {
		return Evaluation[O]{Value: v, Result: fn(v)}
	})
}

// IsEqual evaluates whether each value equals target.
// The result owns s: reusing s in another chain shares its state.
func IsEqual[I any, O comparable](s Stage[I, O], target O) *Operator[I, Evaluation[O]] {
	return Evaluate(s, func(v O) bool { return v == target })
}

// IsGreater evaluates whether each value is greater than target.
// The result owns s: reusing s in another chain shares its state.
func IsGreater[I any, O cmp.Ordered](s Stage[I, O], target O) *Operator[I, Evaluation[O]] {
	return Evaluate(s, func(v O) bool { return v > target })
}

// IsLess evaluates whether each value is less than target.
// The result owns s: reusing s in another chain shares its state.
func IsLess[I any, O cmp.Ordered](s Stage[I, O], target O) *Operator[I, Evaluation[O]] {
	return Evaluate(s, func(v O) bool { return v < target })
}

// Reached produces the value of an evaluation only once its goal holds.
// The result owns s: reusing s in another chain shares its state.
func Reached[I, O any](s Stage[I, Evaluation[O]]) *Operator[I, O] {
	return Operate(s, func(e Evaluation[O]) (O, bool) {
		if !e.Result {
			var zero O
			return zero, false
		}
		return e.Value, true
	})
}
