package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trioracle/trioracle-go/internal/utils"
)

func TestNewTrendClassifier(t *testing.T) {
	calc := NewTrendClassifier()
	assert.NotNil(t, calc)
	assert.Equal(t, 50, calc.SMAPeriod)
}

func TestTrendClassify(t *testing.T) {
	calc := NewTrendClassifier()

	tests := []struct {
		name     string
		price    float64
		ma       float64
		expected TrendState
	}{
		{name: "price above average", price: 110000, ma: 100000, expected: TrendBullish},
		{name: "price below average", price: 90000, ma: 100000, expected: TrendBearish},
		{name: "price on the average", price: 100000, ma: 100000, expected: TrendBearish},
		{name: "barely above", price: 100000.01, ma: 100000, expected: TrendBullish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.Classify(tt.price, tt.ma))
		})
	}
}

func TestTrendStatus(t *testing.T) {
	calc := NewTrendClassifier()

	bullish := calc.Status(TrendBullish)
	assert.Equal(t, TrendBullish, bullish.State)
	assert.Equal(t, ProtocolAetos, bullish.Protocol)
	assert.Equal(t, "BULLISH (AETOS ACTIVE)", bullish.Label)
	assert.Equal(t, "🟢", bullish.Symbol)

	bearish := calc.Status(TrendBearish)
	assert.Equal(t, TrendBearish, bearish.State)
	assert.Equal(t, ProtocolKhrusos, bearish.Protocol)
	assert.Equal(t, "BEARISH (KHRUSOS ACTIVE)", bearish.Label)
	assert.Equal(t, "🔴", bearish.Symbol)
}

func TestMovingAverage(t *testing.T) {
	calc := NewTrendClassifier()

	t.Run("flat series", func(t *testing.T) {
		closes := []float64{100, 100, 100, 100, 100}
		ma, err := calc.MovingAverage(closes, 5)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, ma, 1e-9)
	})

	t.Run("latest window only", func(t *testing.T) {
		closes := []float64{1, 2, 3, 4, 5, 6}
		ma, err := calc.MovingAverage(closes, 3)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, ma, 1e-9)
	})

	t.Run("not enough closes", func(t *testing.T) {
		_, err := calc.MovingAverage([]float64{1, 2, 3}, 5)
		require.Error(t, err)
		assert.True(t, utils.IsValidationError(err))
	})

	t.Run("non-positive period", func(t *testing.T) {
		_, err := calc.MovingAverage([]float64{1, 2, 3}, 0)
		require.Error(t, err)
		assert.True(t, utils.IsValidationError(err))
	})
}

func TestClassifyFromSeries(t *testing.T) {
	calc := NewTrendClassifier()

	t.Run("rising closes read bullish", func(t *testing.T) {
		closes := []float64{100, 102, 104, 106, 108, 110}
		state, ma, err := calc.ClassifyFromSeries(closes, 3)
		require.NoError(t, err)
		assert.Equal(t, TrendBullish, state)
		assert.InDelta(t, 108.0, ma, 1e-9)
	})

	t.Run("falling closes read bearish", func(t *testing.T) {
		closes := []float64{110, 108, 106, 104, 102, 100}
		state, ma, err := calc.ClassifyFromSeries(closes, 3)
		require.NoError(t, err)
		assert.Equal(t, TrendBearish, state)
		assert.InDelta(t, 102.0, ma, 1e-9)
	})

	t.Run("flat series reads bearish", func(t *testing.T) {
		closes := []float64{100, 100, 100, 100}
		state, ma, err := calc.ClassifyFromSeries(closes, 4)
		require.NoError(t, err)
		assert.Equal(t, TrendBearish, state)
		assert.InDelta(t, 100.0, ma, 1e-9)
	})

	t.Run("default period on zero", func(t *testing.T) {
		closes := make([]float64, 50)
		for i := range closes {
			closes[i] = 100
		}
		state, ma, err := calc.ClassifyFromSeries(closes, 0)
		require.NoError(t, err)
		assert.Equal(t, TrendBearish, state)
		assert.InDelta(t, 100.0, ma, 1e-9)
	})

	t.Run("series shorter than period", func(t *testing.T) {
		_, _, err := calc.ClassifyFromSeries([]float64{100, 101}, 50)
		require.Error(t, err)
		assert.True(t, utils.IsValidationError(err))
	})
}
