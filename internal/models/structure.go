package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketStructureRequest represents the inputs of the composite analysis
type MarketStructureRequest struct {
	CurrentPrice float64 `json:"current_price" binding:"required"`
	MA50         float64 `json:"ma50"`
	RecentHigh   float64 `json:"recent_high"`
	RecentLow    float64 `json:"recent_low"`
}

// TrendStatusModel represents a classified trend with its protocol presentation
type TrendStatusModel struct {
	State    string `json:"state"`
	Protocol string `json:"protocol"`
	Label    string `json:"label"`
	Symbol   string `json:"symbol"`
}

// StructureLevelModel represents a retracement level annotated against the current price
type StructureLevelModel struct {
	Name        string          `json:"name"`
	Value       decimal.Decimal `json:"value"`
	Highlighted bool            `json:"highlighted"`
	Zone        string          `json:"zone"`
}

// MarketStructureResponse represents the composite market read for API responses
type MarketStructureResponse struct {
	Trend         TrendStatusModel      `json:"trend"`
	Levels        []StructureLevelModel `json:"levels"`
	Nearest       NearestLevelModel     `json:"nearest"`
	AboveMidpoint bool                  `json:"above_midpoint"`
	ReversalZone  bool                  `json:"reversal_zone"`
	Protocol      string                `json:"protocol"`
	Strategy      string                `json:"strategy"`
	RangeSize     decimal.Decimal       `json:"range_size"`
	Compressed    bool                  `json:"compressed"`
	Summary       string                `json:"summary"`
	Timestamp     time.Time             `json:"timestamp"`
}
