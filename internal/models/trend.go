package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrendClassificationRequest represents a price against its moving average.
// Either ma50 is supplied directly or closes carries the series to derive
// it from, with period defaulting to 50.
type TrendClassificationRequest struct {
	Price  float64   `json:"price"`
	MA50   float64   `json:"ma50"`
	Closes []float64 `json:"closes,omitempty"`
	Period int       `json:"period,omitempty"`
}

// TrendClassificationResponse represents a trend status for API responses
type TrendClassificationResponse struct {
	State         string          `json:"state"`
	Protocol      string          `json:"protocol"`
	Label         string          `json:"label"`
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	MovingAverage decimal.Decimal `json:"moving_average"`
	Timestamp     time.Time       `json:"timestamp"`
}
