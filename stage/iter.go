package stage

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// FromSlice creates an Iterator over items.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

// Stream advances s once per value pulled from src and yields the values s
// produced. Inputs for which s produced nothing are skipped.
func Stream[I, O any](src Iterator[I], s Stage[I, O]) Iterator[O] {
	return &stageIter[I, O]{source: src, stage: s}
}

// Collect pulls every value from it and closes it.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	defer it.Close()
	var result []T
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Feed advances s once for each input, in order, and returns the values it
// produced.
func Feed[I, O any](s Stage[I, O], inputs []I) []O {
	out := make([]O, 0, len(inputs))
	for _, in := range inputs {
		if v, ok := s.Advance(in); ok {
			out = append(out, v)
		}
	}
	return out
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type stageIter[I, O any] struct {
	source Iterator[I]
	stage  Stage[I, O]
}

func (it *stageIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			var zero O
			return zero, false, err
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		if out, produced := it.stage.Advance(in); produced {
			return out, true, nil
		}
	}
}

func (it *stageIter[I, O]) Close() error { return it.source.Close() }
