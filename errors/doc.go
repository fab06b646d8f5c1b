// Package errors provides the structured error type used by the recipe,
// configuration and validation layers. Errors carry a machine-readable code
// and optional details so callers can branch on the failure kind.
package errors
