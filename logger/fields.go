package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldRecipe    = "recipe"
	FieldStage     = "stage"
	FieldStep      = "step"
	FieldOperator  = "op"
	FieldInput     = "input"
	FieldOutput    = "output"
	FieldProduced  = "produced"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("built", logger.Fields("steps", 4, "recipe", "evens"))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// AdvanceFields describes one call to a stage.
func AdvanceFields(name string, in, out interface{}, produced bool) map[string]interface{} {
	m := map[string]interface{}{
		FieldStage:    name,
		FieldInput:    in,
		FieldProduced: produced,
	}
	if produced {
		m[FieldOutput] = out
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldOperator: op,
		FieldError:    err.Error(),
	}
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldOperator: op,
		FieldDuration: d.Milliseconds(),
	}
}
