package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RunContext holds observability context for one run of a recipe.
type RunContext struct {
	ServiceName string
	RecipeName  string
	RunID       string
	StartTime   time.Time
	Metrics     *StageMetrics
}

// NewRunContext creates a new run context.
// If metrics is nil, metric recording is silently skipped.
func NewRunContext(serviceName, recipeName, runID string, metrics *StageMetrics) *RunContext {
	return &RunContext{
		ServiceName: serviceName,
		RecipeName:  recipeName,
		RunID:       runID,
		StartTime:   time.Now(),
		Metrics:     metrics,
	}
}

type runContextKey struct{}

// WithRunContext stores a RunContext in the context.
func WithRunContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runContextKey{}, rc)
}

// RunContextFromContext retrieves the RunContext from context, or nil.
func RunContextFromContext(ctx context.Context) *RunContext {
	if rc, ok := ctx.Value(runContextKey{}).(*RunContext); ok {
		return rc
	}
	return nil
}

// StartSpanForRun starts the root span of a run and stores rc in the returned context.
func (rc *RunContext) StartSpanForRun(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, SpanRun)
	span.SetAttributes(
		attribute.String(AttrServiceName, rc.ServiceName),
		attribute.String(AttrRecipeName, rc.RecipeName),
		attribute.String(AttrRunID, rc.RunID),
	)
	return WithRunContext(ctx, rc), span
}

// EndRun ends the span and records run metrics.
func (rc *RunContext) EndRun(ctx context.Context, span trace.Span, status string, err error) {
	duration := rc.Duration()

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if rc.Metrics != nil {
		rc.Metrics.RecordRun(ctx, rc.RecipeName, status, duration)
		if err != nil {
			rc.Metrics.RecordError(ctx, status, "run")
		}
	}
}

// Duration returns the elapsed time since the run started.
func (rc *RunContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}
