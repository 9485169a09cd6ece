package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPressureCalculator(t *testing.T) {
	calc := NewPressureCalculator()
	assert.NotNil(t, calc)
	assert.Equal(t, 0.5, calc.ExtremeThreshold)
	assert.Equal(t, 0.2, calc.HighThreshold)
	assert.Equal(t, 0.7, calc.AdvisoryExtreme)
	assert.Equal(t, 0.3, calc.AdvisoryAsymmetry)
}

func TestPressureRatio(t *testing.T) {
	calc := NewPressureCalculator()

	tests := []struct {
		name     string
		longOI   float64
		shortOI  float64
		expected float64
	}{
		{name: "long leaning", longOI: 600, shortOI: 400, expected: 0.2},
		{name: "short leaning", longOI: 400, shortOI: 600, expected: -0.2},
		{name: "balanced", longOI: 500, shortOI: 500, expected: 0},
		{name: "all long", longOI: 1000, shortOI: 0, expected: 1.0},
		{name: "all short", longOI: 0, shortOI: 1000, expected: -1.0},
		{name: "no open interest", longOI: 0, shortOI: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, calc.Ratio(tt.longOI, tt.shortOI), 1e-9)
		})
	}
}

func TestPressureClassify(t *testing.T) {
	calc := NewPressureCalculator()

	tests := []struct {
		name     string
		ratio    float64
		expected PressureBand
	}{
		{name: "extreme longs", ratio: 0.6, expected: PressureExtremeLongs},
		{name: "extreme shorts", ratio: -0.6, expected: PressureExtremeShorts},
		{name: "high longs", ratio: 0.3, expected: PressureHighLongs},
		{name: "high shorts", ratio: -0.3, expected: PressureHighShorts},
		{name: "balanced", ratio: 0.1, expected: PressureBalanced},
		{name: "zero", ratio: 0, expected: PressureBalanced},
		{name: "extreme boundary stays high", ratio: 0.5, expected: PressureHighLongs},
		{name: "extreme boundary stays high short side", ratio: -0.5, expected: PressureHighShorts},
		{name: "high boundary stays balanced", ratio: 0.2, expected: PressureBalanced},
		{name: "high boundary stays balanced short side", ratio: -0.2, expected: PressureBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.Classify(tt.ratio))
		})
	}
}

func TestPressureAdvise(t *testing.T) {
	calc := NewPressureCalculator()

	tests := []struct {
		name         string
		ratio        float64
		wantAdvisory PressureAdvisory
		wantBias     string
	}{
		{name: "long congestion", ratio: 0.75, wantAdvisory: AdvisoryExtremeLongCongestion, wantBias: "LONG"},
		{name: "short congestion", ratio: -0.8, wantAdvisory: AdvisoryExtremeShortCongestion, wantBias: "SHORT"},
		{name: "long asymmetry", ratio: 0.4, wantAdvisory: AdvisoryPositioningAsymmetry, wantBias: "LONG"},
		{name: "short asymmetry", ratio: -0.4, wantAdvisory: AdvisoryPositioningAsymmetry, wantBias: "SHORT"},
		{name: "below asymmetry threshold", ratio: 0.25, wantAdvisory: AdvisoryNone, wantBias: ""},
		{name: "congestion boundary stays asymmetry", ratio: 0.7, wantAdvisory: AdvisoryPositioningAsymmetry, wantBias: "LONG"},
		{name: "asymmetry boundary stays none", ratio: 0.3, wantAdvisory: AdvisoryNone, wantBias: ""},
		{name: "zero", ratio: 0, wantAdvisory: AdvisoryNone, wantBias: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advisory, bias := calc.Advise(tt.ratio)
			assert.Equal(t, tt.wantAdvisory, advisory)
			assert.Equal(t, tt.wantBias, bias)
		})
	}
}

func TestPressureEvaluate(t *testing.T) {
	calc := NewPressureCalculator()

	t.Run("band and advisory disagree near the extreme boundary", func(t *testing.T) {
		// Ratio 0.6 sits above the band extreme threshold but below the
		// advisory congestion threshold. The two classifications must not
		// collapse into one.
		reading := calc.Evaluate(800, 200)

		assert.InDelta(t, 0.6, reading.Ratio, 1e-9)
		assert.Equal(t, PressureExtremeLongs, reading.Band)
		assert.Equal(t, AdvisoryPositioningAsymmetry, reading.Advisory)
		assert.Equal(t, "LONG", reading.Bias)
		assert.InDelta(t, 1000.0, reading.TotalOpenInterest, 1e-9)
	})

	t.Run("no open interest", func(t *testing.T) {
		reading := calc.Evaluate(0, 0)

		assert.Zero(t, reading.Ratio)
		assert.Equal(t, PressureBalanced, reading.Band)
		assert.Equal(t, AdvisoryNone, reading.Advisory)
		assert.Empty(t, reading.Bias)
		assert.Zero(t, reading.TotalOpenInterest)
	})

	t.Run("short congestion", func(t *testing.T) {
		reading := calc.Evaluate(100, 900)

		assert.InDelta(t, -0.8, reading.Ratio, 1e-9)
		assert.Equal(t, PressureExtremeShorts, reading.Band)
		assert.Equal(t, AdvisoryExtremeShortCongestion, reading.Advisory)
		assert.Equal(t, "SHORT", reading.Bias)
	})
}
