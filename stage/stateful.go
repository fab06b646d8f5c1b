package stage

// Counter produces the number of inputs it has seen, starting at 1.
type Counter[T any] struct {
	count int
}

// NewCounter creates a Counter.
func NewCounter[T any]() *Counter[T] {
	return &Counter[T]{}
}

// Advance implements Stage.
func (c *Counter[T]) Advance(_ T) (int, bool) {
	c.count++
	return c.count, true
}

// Reducer produces the running fold of its inputs.
type Reducer[T, R any] struct {
	acc     R
	combine func(R, T) R
}

// NewReducer creates a Reducer seeded with init.
func NewReducer[T, R any](init R, combine func(R, T) R) *Reducer[T, R] {
	return &Reducer[T, R]{acc: init, combine: combine}
}

// Advance implements Stage.
func (r *Reducer[T, R]) Advance(in T) (R, bool) {
	r.acc = r.combine(r.acc, in)
	return r.acc, true
}

// Deduper produces only inputs that differ from the last accepted input.
type Deduper[T any] struct {
	last  T
	has   bool
	equal func(a, b T) bool
}

// NewDistinct creates a Deduper that compares with ==.
func NewDistinct[T comparable]() *Deduper[T] {
	return NewDistinctFunc(func(a, b T) bool { return a == b })
}

// NewDistinctFunc creates a Deduper that treats a and b as duplicates
// when equal(a, b) is true.
func NewDistinctFunc[T any](equal func(a, b T) bool) *Deduper[T] {
	return &Deduper[T]{equal: equal}
}

// Advance implements Stage.
func (d *Deduper[T]) Advance(in T) (T, bool) {
	if d.has && d.equal(d.last, in) {
		var zero T
		return zero, false
	}
	d.last = in
	d.has = true
	return in, true
}

// Limiter produces its first n inputs and nothing afterwards.
type Limiter[T any] struct {
	remaining uint
}

// NewLimiter creates a Limiter that lets n values through.
func NewLimiter[T any](n uint) *Limiter[T] {
	return &Limiter[T]{remaining: n}
}

// Advance implements Stage.
func (l *Limiter[T]) Advance(in T) (T, bool) {
	if l.remaining == 0 {
		var zero T
		return zero, false
	}
	l.remaining--
	return in, true
}

// Remaining reports how many values the Limiter will still produce.
func (l *Limiter[T]) Remaining() uint {
	return l.remaining
}
