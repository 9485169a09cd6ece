package services

// PressureBand is the primary positioning classification.
type PressureBand string

const (
	PressureExtremeLongs  PressureBand = "EXTREME_LONGS"
	PressureExtremeShorts PressureBand = "EXTREME_SHORTS"
	PressureHighLongs     PressureBand = "HIGH_LONGS"
	PressureHighShorts    PressureBand = "HIGH_SHORTS"
	PressureBalanced      PressureBand = "BALANCED"
)

// PressureAdvisory is the narrative-severity classification. It runs on its
// own threshold set and never replaces the primary band.
type PressureAdvisory string

const (
	AdvisoryExtremeLongCongestion  PressureAdvisory = "EXTREME_LONG_CONGESTION"
	AdvisoryExtremeShortCongestion PressureAdvisory = "EXTREME_SHORT_CONGESTION"
	AdvisoryPositioningAsymmetry   PressureAdvisory = "POSITIONING_ASYMMETRY"
	AdvisoryNone                   PressureAdvisory = "NONE"
)

// PressureReading combines the ratio with both classifications.
type PressureReading struct {
	Ratio             float64
	Band              PressureBand
	Advisory          PressureAdvisory
	Bias              string
	TotalOpenInterest float64
}

// PressureCalculator classifies long/short open-interest positioning.
// The band thresholds and the advisory thresholds are two distinct sets.
type PressureCalculator struct {
	ExtremeThreshold  float64
	HighThreshold     float64
	AdvisoryExtreme   float64
	AdvisoryAsymmetry float64
}

// NewPressureCalculator creates a new calculator instance
func NewPressureCalculator() *PressureCalculator {
	return &PressureCalculator{
		ExtremeThreshold:  0.5,
		HighThreshold:     0.2,
		AdvisoryExtreme:   0.7,
		AdvisoryAsymmetry: 0.3,
	}
}

// Ratio computes (long - short) / (long + short). When both sides are zero
// there is no positioning to measure and the ratio is 0.
func (calc *PressureCalculator) Ratio(longOI, shortOI float64) float64 {
	total := longOI + shortOI
	if total == 0 {
		return 0
	}
	return (longOI - shortOI) / total
}

// Classify maps a ratio onto the primary band. The checks run in precedence
// order with exclusive boundaries: a ratio of exactly 0.5 is HIGH_LONGS, and
// exactly 0.2 is BALANCED.
func (calc *PressureCalculator) Classify(ratio float64) PressureBand {
	switch {
	case ratio > calc.ExtremeThreshold:
		return PressureExtremeLongs
	case ratio < -calc.ExtremeThreshold:
		return PressureExtremeShorts
	case ratio > calc.HighThreshold:
		return PressureHighLongs
	case ratio < -calc.HighThreshold:
		return PressureHighShorts
	default:
		return PressureBalanced
	}
}

// Advise produces the narrative severity for a ratio along with the side the
// positioning leans toward. Below the asymmetry threshold there is nothing
// to advise.
func (calc *PressureCalculator) Advise(ratio float64) (PressureAdvisory, string) {
	switch {
	case ratio > calc.AdvisoryExtreme:
		return AdvisoryExtremeLongCongestion, "LONG"
	case ratio < -calc.AdvisoryExtreme:
		return AdvisoryExtremeShortCongestion, "SHORT"
	case ratio > calc.AdvisoryAsymmetry:
		return AdvisoryPositioningAsymmetry, "LONG"
	case ratio < -calc.AdvisoryAsymmetry:
		return AdvisoryPositioningAsymmetry, "SHORT"
	default:
		return AdvisoryNone, ""
	}
}

// Evaluate computes the ratio and both classifications for a pair of
// open-interest figures.
func (calc *PressureCalculator) Evaluate(longOI, shortOI float64) PressureReading {
	ratio := calc.Ratio(longOI, shortOI)
	advisory, bias := calc.Advise(ratio)

	return PressureReading{
		Ratio:             ratio,
		Band:              calc.Classify(ratio),
		Advisory:          advisory,
		Bias:              bias,
		TotalOpenInterest: longOI + shortOI,
	}
}
