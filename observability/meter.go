package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/stagekit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// Enabled turns metric export on.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// ServiceName is the name of the service.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version of the service.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	// Insecure allows insecure connections (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// StageMetrics holds the instruments recorded for instrumented stages and runs.
type StageMetrics struct {
	advanceTotal    metric.Int64Counter
	advanceDuration metric.Float64Histogram
	runTotal        metric.Int64Counter
	runDuration     metric.Float64Histogram
	errorTotal      metric.Int64Counter
}

// NewStageMetrics creates metric instruments on the given meter.
func NewStageMetrics(meter metric.Meter) (*StageMetrics, error) {
	advanceTotal, err := meter.Int64Counter("stage.advance.total",
		metric.WithDescription("Total number of stage advances by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stage.advance.total counter: %w", err)
	}

	advanceDuration, err := meter.Float64Histogram("stage.advance.duration",
		metric.WithDescription("Duration of a single stage advance in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stage.advance.duration histogram: %w", err)
	}

	runTotal, err := meter.Int64Counter("run.total",
		metric.WithDescription("Total number of recipe runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating run.total counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("run.duration",
		metric.WithDescription("Duration of recipe runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating run.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by type and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &StageMetrics{
		advanceTotal:    advanceTotal,
		advanceDuration: advanceDuration,
		runTotal:        runTotal,
		runDuration:     runDuration,
		errorTotal:      errorTotal,
	}, nil
}

// RecordAdvance records one call to a stage and whether it produced a value.
func (m *StageMetrics) RecordAdvance(ctx context.Context, stage string, produced bool, duration time.Duration) {
	m.advanceTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrStageName, stage),
		attribute.Bool(AttrProduced, produced),
	))
	m.advanceDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrStageName, stage),
	))
}

// RecordRun records a completed run of a recipe.
func (m *StageMetrics) RecordRun(ctx context.Context, recipe, status string, duration time.Duration) {
	m.runTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrRecipeName, recipe),
		attribute.String(AttrStatus, status),
	))
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrRecipeName, recipe),
	))
}

// RecordError records an error by type and component.
func (m *StageMetrics) RecordError(ctx context.Context, errType, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("component", component),
	))
}
