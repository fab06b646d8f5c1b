package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/stagekit/stage"
)

// Instrument wraps s so every Advance is counted and timed under name.
// The returned stage owns s. A nil m returns a plain wrapper.
func Instrument[I, O any](ctx context.Context, s stage.Stage[I, O], name string, m *StageMetrics) *stage.Operator[I, O] {
	if m == nil {
		return stage.New(s.Advance)
	}
	return stage.New(func(in I) (O, bool) {
		start := time.Now()
		out, ok := s.Advance(in)
		m.RecordAdvance(ctx, name, ok, time.Since(start))
		return out, ok
	})
}

// Traced wraps s so every Advance runs inside a span that is a child of the
// span in ctx. A nil tracer uses the global provider.
func Traced[I, O any](ctx context.Context, s stage.Stage[I, O], name string, tracer trace.Tracer) *stage.Operator[I, O] {
	if tracer == nil {
		tracer = Tracer(defaultTracerName)
	}
	return stage.New(func(in I) (O, bool) {
		_, span := tracer.Start(ctx, SpanAdvance, trace.WithAttributes(
			attribute.String(AttrStageName, name),
		))
		out, ok := s.Advance(in)
		span.SetAttributes(attribute.Bool(AttrProduced, ok))
		span.End()
		return out, ok
	})
}
