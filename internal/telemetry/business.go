package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// BusinessTracer provides utilities for tracing calculation engine operations.
// It allows detailed tracking of domain-specific activities like arbitrage
// evaluation and market-structure analysis.
type BusinessTracer struct{}

// NewBusinessTracer creates a new instance of BusinessTracer.
func NewBusinessTracer() *BusinessTracer {
	return &BusinessTracer{}
}

// TraceArbitrageEvaluation starts a span for an arbitrage evaluation.
func (bt *BusinessTracer) TraceArbitrageEvaluation(ctx context.Context, outcomes int, bankroll float64) (context.Context, trace.Span) {
	ctx, span := GetEngineTracer().Start(ctx, "arbitrage_evaluation")
	span.SetAttributes(
		attribute.Int("arbitrage.outcomes", outcomes),
		attribute.Float64("arbitrage.bankroll", bankroll),
	)
	return ctx, span
}

// RecordArbitrageResult adds the outcome of an arbitrage evaluation to an existing span.
func (bt *BusinessTracer) RecordArbitrageResult(span trace.Span, found bool, totalImplied, profit float64) {
	span.SetAttributes(
		attribute.Bool("arbitrage.found", found),
		attribute.Float64("arbitrage.total_implied", totalImplied),
		attribute.Float64("arbitrage.profit", profit),
	)
}

// TracePressureReading starts a span for a pressure gauge evaluation.
func (bt *BusinessTracer) TracePressureReading(ctx context.Context, longOI, shortOI float64) (context.Context, trace.Span) {
	ctx, span := GetEngineTracer().Start(ctx, "pressure_reading")
	span.SetAttributes(
		attribute.Float64("pressure.long_oi", longOI),
		attribute.Float64("pressure.short_oi", shortOI),
	)
	return ctx, span
}

// RecordPressureReading adds the computed ratio and classification to an existing span.
func (bt *BusinessTracer) RecordPressureReading(span trace.Span, ratio float64, band, advisory string) {
	span.SetAttributes(
		attribute.Float64("pressure.ratio", ratio),
		attribute.String("pressure.band", band),
		attribute.String("pressure.advisory", advisory),
	)
}

// TraceTrendClassification starts a span for a trend classification.
func (bt *BusinessTracer) TraceTrendClassification(ctx context.Context, price, ma float64) (context.Context, trace.Span) {
	ctx, span := GetEngineTracer().Start(ctx, "trend_classification")
	span.SetAttributes(
		attribute.Float64("trend.price", price),
		attribute.Float64("trend.ma", ma),
	)
	return ctx, span
}

// RecordTrendClassification adds the resulting trend state to an existing span.
func (bt *BusinessTracer) RecordTrendClassification(span trace.Span, state string) {
	span.SetAttributes(attribute.String("trend.state", state))
}

// TraceFibonacciAnalysis starts a span for a Fibonacci level analysis.
func (bt *BusinessTracer) TraceFibonacciAnalysis(ctx context.Context, high, low float64, timeframe string) (context.Context, trace.Span) {
	ctx, span := GetEngineTracer().Start(ctx, "fibonacci_analysis")
	span.SetAttributes(
		attribute.Float64("fibonacci.high", high),
		attribute.Float64("fibonacci.low", low),
		attribute.String("fibonacci.timeframe", timeframe),
	)
	return ctx, span
}

// RecordFibonacciAnalysis adds the nearest level outcome to an existing span.
func (bt *BusinessTracer) RecordFibonacciAnalysis(span trace.Span, nearestLevel string, distance float64, multiplier int) {
	span.SetAttributes(
		attribute.String("fibonacci.nearest_level", nearestLevel),
		attribute.Float64("fibonacci.distance", distance),
		attribute.Int("fibonacci.timeframe_minutes", multiplier),
	)
}

// TraceMarketStructure starts a span for a composite market-structure analysis.
func (bt *BusinessTracer) TraceMarketStructure(ctx context.Context, price, ma50 float64) (context.Context, trace.Span) {
	ctx, span := GetEngineTracer().Start(ctx, "market_structure_analysis")
	span.SetAttributes(
		attribute.Float64("market.price", price),
		attribute.Float64("market.ma50", ma50),
	)
	return ctx, span
}

// RecordMarketStructure adds the analysis outcome to an existing span.
func (bt *BusinessTracer) RecordMarketStructure(span trace.Span, trend, protocol string, compressed bool, rangeSize float64) {
	span.SetAttributes(
		attribute.String("market.trend", trend),
		attribute.String("market.protocol", protocol),
		attribute.Bool("market.compressed", compressed),
		attribute.Float64("market.range_size", rangeSize),
	)
}

// RecordError marks the span as failed and records the error.
func (bt *BusinessTracer) RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
