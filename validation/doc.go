// Package validation checks recipes and configuration before they are turned
// into stages.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report failures as an
// *errors.AppError with code INVALID_INPUT and a "fields" detail.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Name  string `validate:"required"`
//	    Level string `validate:"oneof=debug info"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("op", step.Op).Finite("factor", factor)
//	if appErr := v.Validate(); appErr != nil { ... }
package validation
