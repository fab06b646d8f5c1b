// Package logger provides structured logging for stagekit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers that carry stage and recipe fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("recipe")
//	log.Info("chain built", logger.Fields(logger.FieldRecipe, "evens", logger.FieldStep, 3))
package logger
