// Package observability provides OpenTelemetry tracing and metrics for stage
// chains.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, &cfg.Tracing)
//	defer tp.Shutdown(ctx)
//
//	s := observability.Traced(ctx, chain, "evens-total", nil)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, &cfg.Metrics)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewStageMetrics(observability.Meter("stagekit"))
//	s := observability.Instrument(ctx, chain, "evens-total", metrics)
//
// Runs:
//
//	rc := observability.NewRunContext("stagekit", "evens-total", runID, metrics)
//	ctx, span := rc.StartSpanForRun(ctx)
//	defer rc.EndRun(ctx, span, "ok", nil)
package observability
