package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/trioracle/trioracle-go/internal/logging"
	"github.com/trioracle/trioracle-go/internal/models"
	"github.com/trioracle/trioracle-go/internal/services"
	"github.com/trioracle/trioracle-go/internal/telemetry"
)

// FibonacciHandler handles Fibonacci retracement endpoints
type FibonacciHandler struct {
	calculator *services.FibonacciCalculator
	tracer     *telemetry.BusinessTracer
	logger     logging.Logger
}

// NewFibonacciHandler creates a new fibonacci handler
func NewFibonacciHandler(calculator *services.FibonacciCalculator, logger logging.Logger) *FibonacciHandler {
	return &FibonacciHandler{
		calculator: calculator,
		tracer:     telemetry.NewBusinessTracer(),
		logger:     logger,
	}
}

// CalculateLevels handles POST /api/v1/fibonacci/levels. The swing range is
// taken as given; the price-relative fields are only included when a
// positive current price is supplied.
func (h *FibonacciHandler) CalculateLevels(c *gin.Context) {
	var req models.FibonacciLevelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	_, span := h.tracer.TraceFibonacciAnalysis(c.Request.Context(), req.High, req.Low, req.Timeframe)
	defer span.End()

	start := time.Now()

	levels := h.calculator.Levels(req.High, req.Low)
	multiplier := h.calculator.TimeframeMultiplier(req.Timeframe)
	mode := h.calculator.Mode(multiplier)

	response := models.FibonacciLevelsResponse{
		Levels:     make([]models.FibonacciLevelModel, 0, len(levels)),
		Timeframe:  req.Timeframe,
		Multiplier: multiplier,
		Mode:       string(mode),
		Timestamp:  time.Now(),
	}

	nearestName := ""
	nearestDistance := 0.0
	if req.CurrentPrice > 0 {
		nearest, distance := h.calculator.Nearest(req.CurrentPrice, levels)
		nearestName = nearest.Name
		nearestDistance = distance

		response.Nearest = &models.NearestLevelModel{
			Name:     nearest.Name,
			Value:    decimal.NewFromFloat(nearest.Value).Round(2),
			Distance: decimal.NewFromFloat(distance).Round(2),
		}

		aboveMidpoint := h.calculator.AboveMidpoint(req.CurrentPrice, levels)
		reversalZone := h.calculator.InReversalZone(req.CurrentPrice, levels)
		response.AboveMidpoint = &aboveMidpoint
		response.ReversalZone = &reversalZone
	}

	for _, level := range levels {
		model := models.FibonacciLevelModel{
			Name:  level.Name,
			Value: decimal.NewFromFloat(level.Value).Round(2),
		}
		if req.CurrentPrice > 0 {
			model.Zone = string(h.calculator.Proximity(req.CurrentPrice, level))
		}
		response.Levels = append(response.Levels, model)
	}

	h.tracer.RecordFibonacciAnalysis(span, nearestName, nearestDistance, multiplier)

	h.logger.LogCalculation("fibonacci", "levels", time.Since(start).Milliseconds(), map[string]interface{}{
		"high":       req.High,
		"low":        req.Low,
		"multiplier": multiplier,
	})

	c.JSON(http.StatusOK, response)
}

// ListTimeframes handles GET /api/v1/fibonacci/timeframes
func (h *FibonacciHandler) ListTimeframes(c *gin.Context) {
	infos := h.calculator.Timeframes()

	timeframes := make([]models.TimeframeModel, 0, len(infos))
	for _, info := range infos {
		timeframes = append(timeframes, models.TimeframeModel{
			Timeframe:  info.Timeframe,
			Multiplier: info.Multiplier,
			Mode:       string(info.Mode),
		})
	}

	c.JSON(http.StatusOK, models.TimeframesResponse{
		Timeframes:        timeframes,
		DefaultMultiplier: h.calculator.DefaultMultiplier,
		Timestamp:         time.Now(),
	})
}
