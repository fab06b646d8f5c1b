// Package config loads service configuration from a YAML file, an optional
// .env file and the process environment.
//
// # Usage
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Recipe string `yaml:"recipe" mapstructure:"recipe"`
//	}
//
//	var cfg Config
//	err := config.LoadConfig("stagekit", &cfg, config.WithConfigFile(path))
//
// Environment variables carrying the service prefix override file values.
// For service "stagekit", STAGEKIT_LOGGING_LEVEL sets logging.level.
package config
