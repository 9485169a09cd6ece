package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/trioracle/trioracle-go/internal/middleware"
	"github.com/trioracle/trioracle-go/internal/models"
	"github.com/trioracle/trioracle-go/internal/services"
	"github.com/trioracle/trioracle-go/internal/utils"
)

// AnalysisHandler handles composite market analysis endpoints
type AnalysisHandler struct {
	structure *services.MarketStructureService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(structure *services.MarketStructureService) *AnalysisHandler {
	return &AnalysisHandler{
		structure: structure,
	}
}

// AnalyzeMarketStructure handles POST /api/v1/analysis/market-structure
func (h *AnalysisHandler) AnalyzeMarketStructure(c *gin.Context) {
	var req models.MarketStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.structure.Analyze(c.Request.Context(), req.CurrentPrice, req.MA50, req.RecentHigh, req.RecentLow)
	if err != nil {
		middleware.RecordError(c, err, "market structure analysis failed")
		if utils.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input parameters", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze market structure", "details": err.Error()})
		return
	}

	levels := make([]models.StructureLevelModel, 0, len(result.Levels))
	for _, level := range result.Levels {
		levels = append(levels, models.StructureLevelModel{
			Name:        level.Name,
			Value:       decimal.NewFromFloat(level.Value).Round(2),
			Highlighted: level.Highlighted,
			Zone:        string(level.Zone),
		})
	}

	c.JSON(http.StatusOK, models.MarketStructureResponse{
		Trend: models.TrendStatusModel{
			State:    string(result.Trend.State),
			Protocol: result.Trend.Protocol,
			Label:    result.Trend.Label,
			Symbol:   result.Trend.Symbol,
		},
		Levels: levels,
		Nearest: models.NearestLevelModel{
			Name:     result.Nearest.Name,
			Value:    decimal.NewFromFloat(result.Nearest.Value).Round(2),
			Distance: decimal.NewFromFloat(result.NearestDistance).Round(2),
		},
		AboveMidpoint: result.AboveMidpoint,
		ReversalZone:  result.InReversalZone,
		Protocol:      result.Protocol,
		Strategy:      result.Strategy,
		RangeSize:     decimal.NewFromFloat(result.RangeSize).Round(2),
		Compressed:    result.Compressed,
		Summary:       result.Summary,
		Timestamp:     time.Now(),
	})
}
