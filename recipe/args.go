package recipe

import (
	"math"

	"github.com/kbukum/stagekit/errors"
	"github.com/kbukum/stagekit/validation"
)

// Args holds an operator's named numeric parameters.
type Args map[string]float64

// Float returns the named argument or a MISSING_FIELD error.
func (a Args) Float(name string) (float64, error) {
	v, ok := a[name]
	if !ok {
		return 0, errors.MissingField("args." + name)
	}
	return v, nil
}

// MaxCount is the largest value Count accepts.
const MaxCount = math.MaxUint32

// Count returns the named argument as a whole number in [0, MaxCount].
func (a Args) Count(name string) (uint, error) {
	v, err := a.Float(name)
	if err != nil {
		return 0, err
	}
	field := "args." + name
	if appErr := validation.New().Finite(field, v).Min(field, v, 0).Max(field, v, MaxCount).Integer(field, v).Validate(); appErr != nil {
		return 0, appErr
	}
	return uint(v), nil
}
