package stage

// Stage advances one input to an optional output.
type Stage[I, O any] interface {
	// Advance processes in and returns (out, true), or (zero, false) when the
	// stage has nothing to contribute for this input.
	Advance(in I) (O, bool)
}

// Void is the value carried by stages that produce or consume nothing meaningful.
type Void = struct{}

// Operator is a Stage backed by an advance function.
// Every combinator in this package returns an *Operator so that stages of
// unrelated concrete types can be stored and chained uniformly.
type Operator[I, O any] struct {
	advance func(I) (O, bool)
}

// Advance implements Stage.
func (o *Operator[I, O]) Advance(in I) (O, bool) {
	return o.advance(in)
}

// --- Constructors ---

// New creates an Operator from a raw advance function.
func New[I, O any](fn func(I) (O, bool)) *Operator[I, O] {
	return &Operator[I, O]{advance: fn}
}

// Transform creates an Operator that always produces fn(in).
func Transform[I, O any](fn func(I) O) *Operator[I, O] {
	return New(func(in I) (O, bool) {
		return fn(in), true
	})
}

// Predicate creates an Operator that produces its input when fn holds.
func Predicate[T any](fn func(T) bool) *Operator[T, T] {
	return New(func(in T) (T, bool) {
		if fn(in) {
			return in, true
		}
		var zero T
		return zero, false
	})
}

// Producer creates an Operator that ignores its input and produces fn().
func Producer[T any](fn func() T) *Operator[Void, T] {
	return New(func(Void) (T, bool) {
		return fn(), true
	})
}

// Take creates an Operator that always produces its input.
// It is the usual head of a chain.
func Take[T any]() *Operator[T, T] {
	return New(func(in T) (T, bool) {
		return in, true
	})
}

// Value creates an Operator that passes its input through.
// The seed only fixes T for callers that have a value but no type argument.
func Value[T any](_ T) *Operator[T, T] {
	return Take[T]()
}

// --- Composition ---

// Compose chains first and second. The result advances second only when
// first produced a value. Compose owns both stages afterwards.
func Compose[I, M, O any](first Stage[I, M], second Stage[M, O]) *Operator[I, O] {
	return New(func(in I) (O, bool) {
		mid, ok := first.Advance(in)
		if !ok {
			var zero O
			return zero, false
		}
		return second.Advance(mid)
	})
}

// Then composes a list of same-typed stages left to right.
// With no stages it returns Take.
func Then[T any](stages ...Stage[T, T]) *Operator[T, T] {
	if len(stages) == 0 {
		return Take[T]()
	}
	head := New(stages[0].Advance)
	for _, next := range stages[1:] {
		head = Compose[T, T, T](head, next)
	}
	return head
}
