package recipe

import (
	"math"

	"github.com/kbukum/stagekit/stage"
)

func registerBuiltins(r *Registry) {
	r.Register("take", func(Args) (stage.Stage[float64, float64], error) {
		return stage.Take[float64](), nil
	})
	r.Register("scale", func(a Args) (stage.Stage[float64, float64], error) {
		factor, err := a.Float("factor")
		if err != nil {
			return nil, err
		}
		return stage.Transform(func(x float64) float64 { return x * factor }), nil
	})
	r.Register("offset", func(a Args) (stage.Stage[float64, float64], error) {
		delta, err := a.Float("delta")
		if err != nil {
			return nil, err
		}
		return stage.Transform(func(x float64) float64 { return x + delta }), nil
	})
	r.Register("abs", func(Args) (stage.Stage[float64, float64], error) {
		return stage.Transform(math.Abs), nil
	})
	r.Register("filter_even", func(Args) (stage.Stage[float64, float64], error) {
		return stage.Predicate(isEven), nil
	})
	r.Register("filter_odd", func(Args) (stage.Stage[float64, float64], error) {
		return stage.Predicate(isOdd), nil
	})
	r.Register("filter_gt", compareFactory(func(x, v float64) bool { return x > v }))
	r.Register("filter_lt", compareFactory(func(x, v float64) bool { return x < v }))
	r.Register("filter_eq", compareFactory(func(x, v float64) bool { return x == v }))
	r.Register("distinct", func(Args) (stage.Stage[float64, float64], error) {
		return stage.NewDistinct[float64](), nil
	})
	r.Register("limit", func(a Args) (stage.Stage[float64, float64], error) {
		n, err := a.Count("n")
		if err != nil {
			return nil, err
		}
		return stage.NewLimiter[float64](n), nil
	})
	r.Register("add", func(Args) (stage.Stage[float64, float64], error) {
		return stage.Add[float64, float64](stage.Take[float64]()), nil
	})
	r.Register("count", func(Args) (stage.Stage[float64, float64], error) {
		counted := stage.Count[float64, float64](stage.Take[float64]())
		return stage.Map[float64, int, float64](counted, func(n int) float64 { return float64(n) }), nil
	})
	r.Register("max", func(Args) (stage.Stage[float64, float64], error) {
		return stage.NewReducer(math.Inf(-1), math.Max), nil
	})
	r.Register("min", func(Args) (stage.Stage[float64, float64], error) {
		return stage.NewReducer(math.Inf(1), math.Min), nil
	})
}

// compareFactory builds a filter that keeps inputs x for which cmp(x, value) holds.
func compareFactory(cmp func(x, v float64) bool) Factory {
	return func(a Args) (stage.Stage[float64, float64], error) {
		v, err := a.Float("value")
		if err != nil {
			return nil, err
		}
		return stage.Predicate(func(x float64) bool { return cmp(x, v) }), nil
	}
}

func isEven(x float64) bool { return math.Mod(x, 2) == 0 }

func isOdd(x float64) bool { return math.Abs(math.Mod(x, 2)) == 1 }
