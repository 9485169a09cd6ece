package services

import (
	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"

	"github.com/trioracle/trioracle-go/internal/utils"
)

// TrendState is the binary regime classification.
type TrendState string

const (
	TrendBullish TrendState = "BULLISH"
	TrendBearish TrendState = "BEARISH"
)

// Trading protocols keyed off the trend state. AETOS trades with the
// primary trend, KHRUSOS runs capital preservation.
const (
	ProtocolAetos   = "AETOS"
	ProtocolKhrusos = "KHRUSOS"
)

// TrendStatus pairs the state with its protocol presentation.
type TrendStatus struct {
	State    TrendState
	Protocol string
	Label    string
	Symbol   string
}

// TrendClassifier determines market regime from price relative to a
// simple moving average.
type TrendClassifier struct {
	SMAPeriod int
}

// NewTrendClassifier creates a new classifier instance
func NewTrendClassifier() *TrendClassifier {
	return &TrendClassifier{
		SMAPeriod: 50,
	}
}

// Classify maps price against the moving average. Price sitting exactly
// on the average is not above it, so it reads bearish.
func (calc *TrendClassifier) Classify(price, ma float64) TrendState {
	if price > ma {
		return TrendBullish
	}
	return TrendBearish
}

// Status decorates a state with its protocol label and symbol.
func (calc *TrendClassifier) Status(state TrendState) TrendStatus {
	if state == TrendBullish {
		return TrendStatus{
			State:    state,
			Protocol: ProtocolAetos,
			Label:    "BULLISH (AETOS ACTIVE)",
			Symbol:   "🟢",
		}
	}
	return TrendStatus{
		State:    state,
		Protocol: ProtocolKhrusos,
		Label:    "BEARISH (KHRUSOS ACTIVE)",
		Symbol:   "🔴",
	}
}

// MovingAverage calculates the simple moving average of the close series
// and returns its latest value.
func (calc *TrendClassifier) MovingAverage(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, utils.NewValidationErrorf("moving average period must be positive, got %d", period)
	}
	if len(closes) < period {
		return 0, utils.NewValidationErrorf("moving average needs at least %d closes, got %d", period, len(closes))
	}

	smaIndicator := trend.NewSmaWithPeriod[float64](period)
	result := helper.ChanToSlice(smaIndicator.Compute(helper.SliceToChan(closes)))

	return result[len(result)-1], nil
}

// ClassifyFromSeries derives the moving average from the close series and
// classifies the latest close against it. A non-positive period falls back
// to the classifier default.
func (calc *TrendClassifier) ClassifyFromSeries(closes []float64, period int) (TrendState, float64, error) {
	if period <= 0 {
		period = calc.SMAPeriod
	}

	ma, err := calc.MovingAverage(closes, period)
	if err != nil {
		return "", 0, err
	}

	return calc.Classify(closes[len(closes)-1], ma), ma, nil
}
