package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PressureEvaluationRequest represents a long/short open-interest pair
type PressureEvaluationRequest struct {
	LongOI  float64 `json:"long_oi"`
	ShortOI float64 `json:"short_oi"`
}

// PressureEvaluationResponse represents a pressure gauge reading for API responses
type PressureEvaluationResponse struct {
	Ratio             decimal.Decimal `json:"ratio"`
	Band              string          `json:"band"`
	Advisory          string          `json:"advisory"`
	Bias              string          `json:"bias,omitempty"`
	TotalOpenInterest decimal.Decimal `json:"total_open_interest"`
	Timestamp         time.Time       `json:"timestamp"`
}
