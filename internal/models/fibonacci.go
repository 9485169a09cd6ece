package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FibonacciLevelsRequest represents a swing range to analyze. CurrentPrice
// and Timeframe are optional; the price-relative fields are only computed
// when a positive current price is supplied.
type FibonacciLevelsRequest struct {
	High         float64 `json:"high"`
	Low          float64 `json:"low"`
	CurrentPrice float64 `json:"current_price,omitempty"`
	Timeframe    string  `json:"timeframe,omitempty"`
}

// FibonacciLevelModel represents a single retracement level
type FibonacciLevelModel struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Zone  string          `json:"zone,omitempty"`
}

// NearestLevelModel represents the level closest to the current price
type NearestLevelModel struct {
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Distance decimal.Decimal `json:"distance"`
}

// FibonacciLevelsResponse represents a full retracement analysis for API responses
type FibonacciLevelsResponse struct {
	Levels        []FibonacciLevelModel `json:"levels"`
	Nearest       *NearestLevelModel    `json:"nearest,omitempty"`
	AboveMidpoint *bool                 `json:"above_midpoint,omitempty"`
	ReversalZone  *bool                 `json:"reversal_zone,omitempty"`
	Timeframe     string                `json:"timeframe"`
	Multiplier    int                   `json:"multiplier"`
	Mode          string                `json:"mode"`
	Timestamp     time.Time             `json:"timestamp"`
}

// TimeframeModel represents one supported timeframe
type TimeframeModel struct {
	Timeframe  string `json:"timeframe"`
	Multiplier int    `json:"multiplier"`
	Mode       string `json:"mode"`
}

// TimeframesResponse represents the supported timeframe table for API responses
type TimeframesResponse struct {
	Timeframes        []TimeframeModel `json:"timeframes"`
	DefaultMultiplier int              `json:"default_multiplier"`
	Timestamp         time.Time        `json:"timestamp"`
}
