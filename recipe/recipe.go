package recipe

import (
	"fmt"

	"github.com/kbukum/stagekit/validation"
)

const maxNameLength = 64

// Recipe is a YAML-defined chain of numeric operators.
type Recipe struct {
	// ID optionally identifies the recipe with a UUID.
	ID string `yaml:"id,omitempty"`
	// Name is the recipe identifier.
	Name string `yaml:"name"`
	// Description is free text.
	Description string `yaml:"description,omitempty"`
	// Includes lists recipe names whose steps run before this recipe's steps.
	Includes []string `yaml:"includes,omitempty"`
	// Steps are composed in order.
	Steps []Step `yaml:"steps"`
	// Fallback, when set, is produced for inputs the chain suppresses.
	Fallback *float64 `yaml:"fallback,omitempty"`
}

// Step is one operator in a recipe.
type Step struct {
	// Op is the registry lookup key.
	Op string `yaml:"op"`
	// Name labels the step in logs and metrics. Defaults to Op.
	Name string `yaml:"name,omitempty"`
	// Args are the operator's numeric parameters.
	Args Args `yaml:"args,omitempty"`
}

// Label returns the step's display name.
func (s Step) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Op
}

// Validate checks the recipe document. It does not resolve operators.
func (r *Recipe) Validate() error {
	v := validation.New()
	v.Required("name", r.Name).
		MaxLength("name", r.Name, maxNameLength).
		OptionalUUID("id", r.ID).
		Custom(len(r.Steps) > 0 || len(r.Includes) > 0, "steps", "must contain at least one step")

	for i, step := range r.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		v.Required(field+".op", step.Op)
		for name, value := range step.Args {
			v.Finite(field+".args."+name, value)
		}
	}
	for i, inc := range r.Includes {
		v.Required(fmt.Sprintf("includes[%d]", i), inc)
	}
	if r.Fallback != nil {
		v.Finite("fallback", *r.Fallback)
	}

	if appErr := v.Validate(); appErr != nil {
		return appErr.WithDetail("recipe", r.Name)
	}
	return nil
}
