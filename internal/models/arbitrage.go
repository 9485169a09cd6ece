package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArbitrageCalculationRequest represents the odds set to evaluate
type ArbitrageCalculationRequest struct {
	Odds     []float64 `json:"odds" binding:"required"`
	Bankroll float64   `json:"bankroll" binding:"required"`
}

// ArbitrageCalculationResponse represents the evaluation of an odds set for API responses
type ArbitrageCalculationResponse struct {
	ArbitrageFound       bool              `json:"arbitrage_found"`
	ImpliedProbabilities []decimal.Decimal `json:"implied_probabilities"`
	TotalImplied         decimal.Decimal   `json:"total_implied"`
	MarketEfficiency     decimal.Decimal   `json:"market_efficiency"`
	Overround            decimal.Decimal   `json:"overround"`
	Stakes               []decimal.Decimal `json:"stakes"`
	Profit               decimal.Decimal   `json:"profit"`
	ProfitPercent        decimal.Decimal   `json:"profit_percent"`
	Bankroll             decimal.Decimal   `json:"bankroll"`
	Timestamp            time.Time         `json:"timestamp"`
}
