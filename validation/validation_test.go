package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/stagekit/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("op", "scale")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("op", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("op", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorOptionalUUID(t *testing.T) {
	v := New()
	v.OptionalUUID("id", "")
	if v.HasErrors() {
		t.Error("expected no errors for empty optional UUID")
	}

	v2 := New()
	v2.OptionalUUID("id", uuid.New().String())
	if v2.HasErrors() {
		t.Errorf("expected no errors for valid UUID, got %v", v2.Errors())
	}

	v3 := New()
	v3.OptionalUUID("id", "not-a-uuid")
	if !v3.HasErrors() {
		t.Error("expected error for invalid UUID")
	}
}

func TestValidatorMaxLength(t *testing.T) {
	v := New()
	v.MaxLength("name", "evens", 5)
	if v.HasErrors() {
		t.Error("expected no error at the limit")
	}

	v2 := New()
	v2.MaxLength("name", "evens-total", 5)
	if !v2.HasErrors() {
		t.Error("expected error for string over the limit")
	}
}

func TestValidatorFinite(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"negative", -2.5, false},
		{"nan", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New().Finite("factor", tc.value)
			if v.HasErrors() != tc.wantErr {
				t.Errorf("got errors=%v, want %v", v.HasErrors(), tc.wantErr)
			}
		})
	}
}

func TestValidatorMin(t *testing.T) {
	if New().Min("n", 0, 0).HasErrors() {
		t.Error("expected no error at minimum")
	}
	v := New().Min("n", -1, 0)
	if !v.HasErrors() {
		t.Fatal("expected error below minimum")
	}
	if v.Errors()[0].Message != "must be at least 0" {
		t.Errorf("got %q", v.Errors()[0].Message)
	}
}

func TestValidatorMax(t *testing.T) {
	if New().Max("n", 10, 10).HasErrors() {
		t.Error("expected no error at maximum")
	}
	v := New().Max("n", 1e20, 10)
	if !v.HasErrors() {
		t.Fatal("expected error above maximum")
	}
	if v.Errors()[0].Message != "must be at most 10" {
		t.Errorf("got %q", v.Errors()[0].Message)
	}
}

func TestValidatorInteger(t *testing.T) {
	if New().Integer("n", 3).HasErrors() {
		t.Error("expected no error for whole number")
	}
	if !New().Integer("n", 2.5).HasErrors() {
		t.Error("expected error for fractional number")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "field", "should not appear")
	if v.HasErrors() {
		t.Error("expected no error when condition is true")
	}

	v2 := New()
	v2.Custom(false, "field", "custom error")
	if !v2.HasErrors() {
		t.Fatal("expected error when condition is false")
	}
	if v2.Errors()[0].Message != "custom error" {
		t.Errorf("expected 'custom error', got %q", v2.Errors()[0].Message)
	}
}

func TestValidatorValidate(t *testing.T) {
	v := New()
	v.Required("name", "evens")
	if appErr := v.Validate(); appErr != nil {
		t.Error("expected nil for valid input")
	}

	v2 := New()
	v2.Required("name", "")
	v2.Required("op", "")
	appErr := v2.Validate()
	if appErr == nil {
		t.Fatal("expected error")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("got code %s, want %s", appErr.Code, errors.ErrCodeInvalidInput)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Fatalf("expected two field errors in details, got %v", appErr.Details["fields"])
	}
	if !strings.Contains(appErr.Message, "name") || !strings.Contains(appErr.Message, "op") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New()
	result := v.Required("op", "limit").Finite("n", 3).Min("n", 3, 0).Integer("n", 3)
	if result != v {
		t.Error("expected chaining to return same validator")
	}
	if v.HasErrors() {
		t.Error("expected no errors for valid chained validation")
	}
}

func TestStructValidateValid(t *testing.T) {
	type Settings struct {
		Name   string `json:"name" validate:"required"`
		Format string `json:"format" validate:"omitempty,oneof=json console"`
	}

	if err := Validate(Settings{Name: "stagekit", Format: "json"}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	type Settings struct {
		Name   string `json:"name" validate:"required"`
		Format string `json:"format" validate:"omitempty,oneof=json console"`
	}

	err := Validate(Settings{Name: "", Format: "xml"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "name: is required") {
		t.Errorf("expected error to mention 'name', got %q", errStr)
	}
	if !strings.Contains(errStr, "format: must be one of: json console") {
		t.Errorf("expected error to mention 'format', got %q", errStr)
	}
}

func TestStructValidateNumericBounds(t *testing.T) {
	type Step struct {
		Limit int `json:"limit" validate:"gte=0"`
	}

	if err := Validate(Step{Limit: 0}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	err := Validate(Step{Limit: -1})
	if err == nil {
		t.Fatal("expected error for negative limit")
	}
	if !strings.Contains(err.Error(), "greater than or equal to 0") {
		t.Errorf("got %q", err.Error())
	}
}

func TestStructValidateSnakeCaseFallback(t *testing.T) {
	type Input struct {
		ServiceName string `validate:"required"`
	}
	err := Validate(Input{})
	if err == nil || !strings.Contains(err.Error(), "service_name") {
		t.Errorf("expected snake_case field name, got %v", err)
	}
}

func TestParseUUID(t *testing.T) {
	valid := uuid.New().String()
	id, err := ParseUUID("run_id", valid)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id.String() != valid {
		t.Errorf("expected %s, got %s", valid, id.String())
	}

	if _, err := ParseUUID("run_id", ""); !errors.IsCode(err, errors.ErrCodeMissingField) {
		t.Errorf("expected MISSING_FIELD for empty UUID, got %v", err)
	}
	if _, err := ParseUUID("run_id", "bad"); !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for bad UUID, got %v", err)
	}
}
