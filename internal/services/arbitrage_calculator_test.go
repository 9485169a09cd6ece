package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trioracle/trioracle-go/internal/utils"
)

func TestNewArbitrageCalculator(t *testing.T) {
	calc := NewArbitrageCalculator()
	assert.NotNil(t, calc)
}

func TestImpliedProbability(t *testing.T) {
	calc := NewArbitrageCalculator()

	tests := []struct {
		name     string
		odds     float64
		expected float64
	}{
		{name: "even money", odds: 2.0, expected: 0.5},
		{name: "long shot", odds: 4.0, expected: 0.25},
		{name: "heavy favorite", odds: 1.25, expected: 0.8},
		{name: "zero odds", odds: 0, expected: 0},
		{name: "negative odds", odds: -3.0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, calc.ImpliedProbability(tt.odds), 1e-9)
		})
	}
}

func TestTotalImpliedProbability(t *testing.T) {
	calc := NewArbitrageCalculator()

	tests := []struct {
		name     string
		odds     []float64
		expected float64
	}{
		{name: "fair coin flip", odds: []float64{2.0, 2.0}, expected: 1.0},
		{name: "bookmaker margin", odds: []float64{2.0, 3.0, 4.0}, expected: 1.0/2.0 + 1.0/3.0 + 1.0/4.0},
		{name: "arbitrage window", odds: []float64{3.0, 3.0, 4.0}, expected: 1.0/3.0 + 1.0/3.0 + 1.0/4.0},
		{name: "non-positive legs contribute nothing", odds: []float64{2.0, 0, -1.0}, expected: 0.5},
		{name: "empty", odds: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, calc.TotalImpliedProbability(tt.odds), 1e-9)
		})
	}
}

func TestStakes(t *testing.T) {
	calc := NewArbitrageCalculator()

	t.Run("proportional allocation", func(t *testing.T) {
		stakes := calc.Stakes([]float64{3.0, 3.0, 4.0}, 100)
		require.Len(t, stakes, 3)

		sum := 0.0
		for _, s := range stakes {
			sum += s
		}
		assert.InDelta(t, 100.0, sum, 1e-9, "stakes should spend the full bankroll")

		// Equal odds get equal stakes, higher odds get less.
		assert.InDelta(t, stakes[0], stakes[1], 1e-9)
		assert.Less(t, stakes[2], stakes[0])
	})

	t.Run("all legs non-positive", func(t *testing.T) {
		stakes := calc.Stakes([]float64{0, -2.0}, 100)
		require.Len(t, stakes, 2)
		assert.Zero(t, stakes[0])
		assert.Zero(t, stakes[1])
	})

	t.Run("empty odds", func(t *testing.T) {
		stakes := calc.Stakes(nil, 100)
		assert.Empty(t, stakes)
	})
}

func TestEvaluate(t *testing.T) {
	calc := NewArbitrageCalculator()

	tests := []struct {
		name             string
		odds             []float64
		bankroll         float64
		wantErr          bool
		wantFound        bool
		wantTotalImplied float64
		wantProfit       float64
		wantOverround    float64
	}{
		{
			name:             "arbitrage exists",
			odds:             []float64{3.0, 3.0, 4.0},
			bankroll:         100,
			wantFound:        true,
			wantTotalImplied: 0.9167,
			wantProfit:       9.09,
		},
		{
			name:             "bookmaker margin priced in",
			odds:             []float64{2.0, 3.0, 4.0},
			bankroll:         100,
			wantFound:        false,
			wantTotalImplied: 1.0833,
			wantOverround:    8.33,
		},
		{
			name:             "perfectly efficient market",
			odds:             []float64{2.0, 2.0},
			bankroll:         100,
			wantFound:        false,
			wantTotalImplied: 1.0,
		},
		{
			name:             "single outcome",
			odds:             []float64{2.0},
			bankroll:         100,
			wantFound:        true,
			wantTotalImplied: 0.5,
			wantProfit:       100,
		},
		{
			name:    "no odds provided",
			odds:    nil,
			wantErr: true,
		},
		{
			name:    "no positive leg",
			odds:    []float64{0, -1.0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Evaluate(tt.odds, tt.bankroll)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, utils.IsValidationError(err))
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantFound, result.Found)
			assert.InDelta(t, tt.wantTotalImplied, result.TotalImplied, 0.0001)

			if tt.wantFound {
				assert.InDelta(t, tt.wantProfit, result.Profit, 0.01)
				assert.InDelta(t, 1.0-result.TotalImplied, result.MarketEfficiency, 1e-9)
			}
			if tt.wantOverround > 0 {
				assert.InDelta(t, tt.wantOverround, result.Overround, 0.01)
			}
		})
	}
}

func TestEvaluate_EqualPayouts(t *testing.T) {
	calc := NewArbitrageCalculator()

	odds := []float64{3.0, 3.0, 4.0}
	bankroll := 100.0

	result, err := calc.Evaluate(odds, bankroll)
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Len(t, result.Stakes, len(odds))

	// Every leg pays out the same amount regardless of which outcome wins,
	// and that payout is bankroll / totalImplied.
	expectedPayout := bankroll / result.TotalImplied
	for i, stake := range result.Stakes {
		assert.InDelta(t, expectedPayout, stake*odds[i], 0.0001)
	}

	assert.InDelta(t, expectedPayout-bankroll, result.Profit, 0.0001)
	assert.InDelta(t, result.Profit/bankroll*100, result.ProfitPercent, 1e-9)
}

func TestEvaluate_StakesSpendBankroll(t *testing.T) {
	calc := NewArbitrageCalculator()

	result, err := calc.Evaluate([]float64{3.0, 3.0, 4.0}, 250)
	require.NoError(t, err)
	require.True(t, result.Found)

	sum := 0.0
	for _, s := range result.Stakes {
		sum += s
	}
	assert.InDelta(t, 250.0, sum, 1e-9)
}
