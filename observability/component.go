package observability

import (
	"context"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/stagekit/component"
)

// MeterComponent runs the OTLP meter provider as a lifecycle component.
type MeterComponent struct {
	cfg      *MeterConfig
	provider *sdkmetric.MeterProvider
}

var (
	_ component.Component   = (*MeterComponent)(nil)
	_ component.Describable = (*MeterComponent)(nil)
)

// NewMeterComponent creates a meter component for cfg.
func NewMeterComponent(cfg *MeterConfig) *MeterComponent {
	return &MeterComponent{cfg: cfg}
}

// Name implements component.Component.
func (c *MeterComponent) Name() string { return "meter" }

// Start installs the meter provider globally.
func (c *MeterComponent) Start(ctx context.Context) error {
	mp, err := InitMeter(ctx, c.cfg)
	if err != nil {
		return err
	}
	c.provider = mp
	return nil
}

// Stop flushes pending metrics and shuts the provider down.
func (c *MeterComponent) Stop(ctx context.Context) error {
	if c.provider == nil {
		return nil
	}
	return c.provider.Shutdown(ctx)
}

// Describe implements component.Describable.
func (c *MeterComponent) Describe() string {
	return fmt.Sprintf("endpoint=%s interval=%s", c.cfg.Endpoint, c.cfg.Interval)
}

// TracerComponent runs the OTLP tracer provider as a lifecycle component.
type TracerComponent struct {
	cfg      *TracerConfig
	provider *sdktrace.TracerProvider
}

var (
	_ component.Component   = (*TracerComponent)(nil)
	_ component.Describable = (*TracerComponent)(nil)
)

// NewTracerComponent creates a tracer component for cfg.
func NewTracerComponent(cfg *TracerConfig) *TracerComponent {
	return &TracerComponent{cfg: cfg}
}

// Name implements component.Component.
func (c *TracerComponent) Name() string { return "tracer" }

// Start installs the tracer provider globally.
func (c *TracerComponent) Start(ctx context.Context) error {
	tp, err := InitTracer(ctx, c.cfg)
	if err != nil {
		return err
	}
	c.provider = tp
	return nil
}

// Stop flushes pending spans and shuts the provider down.
func (c *TracerComponent) Stop(ctx context.Context) error {
	if c.provider == nil {
		return nil
	}
	return c.provider.Shutdown(ctx)
}

// Describe implements component.Describable.
func (c *TracerComponent) Describe() string {
	return fmt.Sprintf("endpoint=%s sample_rate=%g", c.cfg.Endpoint, c.cfg.SampleRate)
}
