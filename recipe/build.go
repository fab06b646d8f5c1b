package recipe

import (
	"fmt"

	"github.com/kbukum/stagekit/errors"
	"github.com/kbukum/stagekit/logger"
	"github.com/kbukum/stagekit/stage"
)

// Wrapper decorates the stage built for one step, e.g. with instrumentation.
type Wrapper func(label string, s stage.Stage[float64, float64]) stage.Stage[float64, float64]

type buildOptions struct {
	loader Loader
	wrap   Wrapper
	log    *logger.Logger
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

// WithLoader sets the loader used to resolve includes.
func WithLoader(l Loader) BuildOption {
	return func(o *buildOptions) { o.loader = l }
}

// WithWrapper decorates every step's stage before composition.
func WithWrapper(w Wrapper) BuildOption {
	return func(o *buildOptions) { o.wrap = w }
}

// WithLogger sets the logger used to report the built chain.
func WithLogger(l *logger.Logger) BuildOption {
	return func(o *buildOptions) { o.log = l }
}

// Build resolves every step of r against reg and composes them in order.
// Each call returns a chain with fresh state.
func Build(r *Recipe, reg *Registry, opts ...BuildOption) (stage.Stage[float64, float64], error) {
	o := &buildOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logger.Get("recipe")
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	chain, steps, err := o.build(r, reg, map[string]bool{})
	if err != nil {
		return nil, err
	}

	o.log.Debug("recipe built", logger.Fields(
		logger.FieldRecipe, r.Name,
		"steps", steps,
		"includes", len(r.Includes),
		"fallback", r.Fallback != nil,
	))
	return chain, nil
}

// build composes r's included recipes, depth-first, ahead of its own steps.
// Every recipe keeps its own fallback, so an included recipe behaves the same
// as when built alone. stack holds the recipes on the current include path.
// It also returns the number of steps composed.
func (o *buildOptions) build(r *Recipe, reg *Registry, stack map[string]bool) (stage.Stage[float64, float64], int, error) {
	if stack[r.Name] {
		return nil, 0, errors.InvalidConfig(r.Name, fmt.Sprintf("circular include of recipe %q", r.Name))
	}
	stack[r.Name] = true
	defer delete(stack, r.Name)

	stages := make([]stage.Stage[float64, float64], 0, len(r.Includes)+len(r.Steps))
	count := 0
	for _, name := range r.Includes {
		if o.loader == nil {
			return nil, 0, errors.InvalidConfig(r.Name, fmt.Sprintf("include %q requires a loader", name))
		}
		sub, err := o.loader.Load(name)
		if err != nil {
			return nil, 0, fmt.Errorf("recipe: loading include %q: %w", name, err)
		}
		s, n, err := o.build(sub, reg, stack)
		if err != nil {
			return nil, 0, err
		}
		stages = append(stages, s)
		count += n
	}

	for i, step := range r.Steps {
		factory, ok := reg.Get(step.Op)
		if !ok {
			return nil, 0, errors.UnknownOperator(step.Op).WithDetails(map[string]any{
				"recipe": r.Name,
				"step":   i,
			})
		}
		s, err := factory(step.Args)
		if err != nil {
			if appErr, ok := errors.AsAppError(err); ok {
				return nil, 0, appErr.WithDetails(map[string]any{"recipe": r.Name, "step": i, "op": step.Op})
			}
			return nil, 0, fmt.Errorf("recipe: building step %d (%s): %w", i, step.Op, err)
		}
		if o.wrap != nil {
			s = o.wrap(step.Label(), s)
		}
		stages = append(stages, s)
		count++
	}

	var chain stage.Stage[float64, float64] = stage.Then[float64](stages...)
	if r.Fallback != nil {
		chain = stage.DefaultTo[float64, float64](chain, *r.Fallback)
	}
	return chain, count, nil
}
