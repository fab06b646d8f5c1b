package main

import (
	"github.com/kbukum/stagekit/config"
	"github.com/kbukum/stagekit/observability"
	"github.com/kbukum/stagekit/validation"
	"github.com/kbukum/stagekit/version"
)

const serviceName = "stagekit"

// Config is the stagekit CLI configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	// Recipe is a recipe file path or a name resolved against RecipeDirs.
	Recipe string `yaml:"recipe" mapstructure:"recipe"`
	// RecipeDirs are searched for named recipes and includes.
	RecipeDirs []string `yaml:"recipe_dirs" mapstructure:"recipe_dirs"`
	// Instrument wraps every step with metrics, tracing and debug logging.
	Instrument bool `yaml:"instrument" mapstructure:"instrument"`

	Metrics observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
	Tracing observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Version == "" {
		c.Version = version.Get().String()
	}
	c.ServiceConfig.ApplyDefaults()

	if len(c.RecipeDirs) == 0 {
		c.RecipeDirs = []string{"./recipes"}
	}

	metrics := observability.DefaultMeterConfig(c.Name)
	applyMeterDefaults(&c.Metrics, metrics, c.Version, c.Environment)
	tracing := observability.DefaultTracerConfig(c.Name)
	applyTracerDefaults(&c.Tracing, tracing, c.Version, c.Environment)
}

func applyMeterDefaults(m *observability.MeterConfig, d observability.MeterConfig, ver, env string) {
	if m.ServiceName == "" {
		m.ServiceName = d.ServiceName
	}
	if m.ServiceVersion == "" {
		m.ServiceVersion = ver
	}
	if m.Environment == "" {
		m.Environment = env
	}
	if m.Endpoint == "" {
		m.Endpoint = d.Endpoint
		m.Insecure = d.Insecure
	}
	if m.Interval == 0 {
		m.Interval = d.Interval
	}
}

func applyTracerDefaults(t *observability.TracerConfig, d observability.TracerConfig, ver, env string) {
	if t.ServiceName == "" {
		t.ServiceName = d.ServiceName
	}
	if t.ServiceVersion == "" {
		t.ServiceVersion = ver
	}
	if t.Environment == "" {
		t.Environment = env
	}
	if t.Endpoint == "" {
		t.Endpoint = d.Endpoint
		t.Insecure = d.Insecure
	}
	if t.SampleRate == 0 {
		t.SampleRate = d.SampleRate
	}
}

// Validate checks the service fields and the observability settings.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}
