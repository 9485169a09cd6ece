package services

import (
	"github.com/trioracle/trioracle-go/internal/utils"
)

// ArbitrageEvaluation is the outcome of evaluating a set of decimal odds
// against a bankroll. Stakes and Profit are populated only when Found is
// true; TotalImplied and ImpliedProbabilities are always reported so callers
// can explain why a market was rejected.
type ArbitrageEvaluation struct {
	Found                bool
	ImpliedProbabilities []float64
	TotalImplied         float64
	MarketEfficiency     float64
	Overround            float64
	Stakes               []float64
	Profit               float64
	ProfitPercent        float64
}

// ArbitrageCalculator handles surebet detection and equal-payout stake
// allocation across a set of decimal odds.
type ArbitrageCalculator struct{}

// NewArbitrageCalculator creates a new calculator instance
func NewArbitrageCalculator() *ArbitrageCalculator {
	return &ArbitrageCalculator{}
}

// ImpliedProbability converts decimal odds to the probability the price
// implies. Non-positive odds yield 0 so a single bad leg never aborts a
// whole evaluation.
func (calc *ArbitrageCalculator) ImpliedProbability(odds float64) float64 {
	if odds <= 0 {
		return 0
	}
	return 1 / odds
}

// TotalImpliedProbability sums the implied probabilities of a set of odds.
// A total below 1.0 means the market pays out more than it collects.
func (calc *ArbitrageCalculator) TotalImpliedProbability(odds []float64) float64 {
	total := 0.0
	for _, o := range odds {
		total += calc.ImpliedProbability(o)
	}
	return total
}

// Stakes splits the bankroll across the legs proportionally to each leg's
// implied probability, which makes every leg pay out the same amount
// (bankroll / totalImplied). A zero total yields all-zero stakes.
func (calc *ArbitrageCalculator) Stakes(odds []float64, bankroll float64) []float64 {
	total := calc.TotalImpliedProbability(odds)
	stakes := make([]float64, len(odds))
	if total == 0 {
		return stakes
	}
	for i, o := range odds {
		stakes[i] = bankroll * calc.ImpliedProbability(o) / total
	}
	return stakes
}

// Evaluate runs the full arbitrage check for a set of decimal odds and a
// bankroll. An arbitrage exists only when the total implied probability is
// strictly below 1.0; a total of exactly 1.0 is a perfectly efficient market
// with nothing to extract. The profit is computed from the first leg; every
// leg of a correctly staked arbitrage pays out the same amount, so any index
// is representative.
func (calc *ArbitrageCalculator) Evaluate(odds []float64, bankroll float64) (*ArbitrageEvaluation, error) {
	if len(odds) == 0 {
		return nil, utils.NewValidationError("no odds provided")
	}

	probs := make([]float64, len(odds))
	for i, o := range odds {
		probs[i] = calc.ImpliedProbability(o)
	}

	total := calc.TotalImpliedProbability(odds)
	if total == 0 {
		return nil, utils.NewValidationError("odds contain no positive leg")
	}

	eval := &ArbitrageEvaluation{
		ImpliedProbabilities: probs,
		TotalImplied:         total,
	}

	if total > 1.0 {
		// Bookmaker margin, reported as a percentage.
		eval.Overround = (total - 1.0) * 100
	}

	if total >= 1.0 {
		return eval, nil
	}

	eval.Found = true
	eval.MarketEfficiency = 1.0 - total
	eval.Stakes = calc.Stakes(odds, bankroll)
	eval.Profit = eval.Stakes[0]*odds[0] - bankroll
	if bankroll != 0 {
		eval.ProfitPercent = eval.Profit / bankroll * 100
	}

	return eval, nil
}
