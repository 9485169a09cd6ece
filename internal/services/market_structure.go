package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/trioracle/trioracle-go/internal/telemetry"
	"github.com/trioracle/trioracle-go/internal/utils"
)

// StructureLevel is a retracement level annotated with its position
// relative to the current price.
type StructureLevel struct {
	FibonacciLevel
	Highlighted bool
	Zone        ProximityZone
}

// MarketStructure is the composite analysis of trend, retracement levels
// and range compression.
type MarketStructure struct {
	Trend           TrendStatus
	Levels          []StructureLevel
	Nearest         FibonacciLevel
	NearestDistance float64
	AboveMidpoint   bool
	InReversalZone  bool
	Protocol        string
	Strategy        string
	RangeSize       float64
	Compressed      bool
	Summary         string
}

// MarketStructureService combines the trend classifier and the Fibonacci
// calculator into a single market read.
type MarketStructureService struct {
	trend  *TrendClassifier
	fib    *FibonacciCalculator
	tracer *telemetry.BusinessTracer
	logger *logrus.Logger
	caser  cases.Caser

	CompressionThreshold float64
	HighlightDistance    float64
}

// NewMarketStructureService creates a new market structure service
func NewMarketStructureService(trendClassifier *TrendClassifier, fibCalculator *FibonacciCalculator, logger *logrus.Logger) *MarketStructureService {
	return &MarketStructureService{
		trend:                trendClassifier,
		fib:                  fibCalculator,
		tracer:               telemetry.NewBusinessTracer(),
		logger:               logger,
		caser:                cases.Title(language.English),
		CompressionThreshold: 1000.0,
		HighlightDistance:    1000.0,
	}
}

// Analyze produces the composite market read for a price, its 50-period
// moving average and the recent swing range.
func (s *MarketStructureService) Analyze(ctx context.Context, price, ma50, high, low float64) (*MarketStructure, error) {
	_, span := s.tracer.TraceMarketStructure(ctx, price, ma50)
	defer span.End()

	if price <= 0 {
		err := utils.NewValidationErrorf("current price must be positive, got %v", price)
		s.tracer.RecordError(span, err)
		return nil, err
	}

	state := s.trend.Classify(price, ma50)
	status := s.trend.Status(state)

	levels := s.fib.Levels(high, low)
	structureLevels := make([]StructureLevel, 0, len(levels))
	for _, level := range levels {
		ratio := level.Name != LevelSupport && level.Name != LevelResistance
		structureLevels = append(structureLevels, StructureLevel{
			FibonacciLevel: level,
			Highlighted:    ratio && math.Abs(price-level.Value) < s.HighlightDistance,
			Zone:           s.fib.Proximity(price, level),
		})
	}

	nearest, distance := s.fib.Nearest(price, levels)
	rangeSize := high - low
	compressed := rangeSize < s.CompressionThreshold

	strategy := "Look for entries above key Fibonacci levels"
	narrative := "trading with primary trend"
	if state != TrendBullish {
		strategy = "Look for entries below key Fibonacci levels"
		narrative = "capital preservation mode"
	}

	summary := fmt.Sprintf("%s structure, %s", strings.ToLower(string(state)), narrative)
	if compressed {
		summary += " (alpha compression spring)"
	}

	structure := &MarketStructure{
		Trend:           status,
		Levels:          structureLevels,
		Nearest:         nearest,
		NearestDistance: distance,
		AboveMidpoint:   s.fib.AboveMidpoint(price, levels),
		InReversalZone:  s.fib.InReversalZone(price, levels),
		Protocol:        status.Protocol,
		Strategy:        strategy,
		RangeSize:       rangeSize,
		Compressed:      compressed,
		Summary:         s.caser.String(summary),
	}

	s.tracer.RecordMarketStructure(span, string(state), status.Protocol, compressed, rangeSize)

	s.logger.WithFields(logrus.Fields{
		"price":      price,
		"ma50":       ma50,
		"trend":      state,
		"protocol":   status.Protocol,
		"range":      rangeSize,
		"compressed": compressed,
	}).Info("Market structure analyzed")

	return structure, nil
}
