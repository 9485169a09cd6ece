package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/trioracle/trioracle-go/internal/config"
	"github.com/trioracle/trioracle-go/internal/logging"
	"github.com/trioracle/trioracle-go/internal/middleware"
	"github.com/trioracle/trioracle-go/internal/models"
	"github.com/trioracle/trioracle-go/internal/services"
	"github.com/trioracle/trioracle-go/internal/telemetry"
	"github.com/trioracle/trioracle-go/internal/utils"
)

// ArbitrageHandler handles arbitrage evaluation endpoints
type ArbitrageHandler struct {
	calculator *services.ArbitrageCalculator
	oracle     config.OracleConfig
	tracer     *telemetry.BusinessTracer
	logger     logging.Logger
}

// NewArbitrageHandler creates a new arbitrage handler
func NewArbitrageHandler(oracle config.OracleConfig, logger logging.Logger) *ArbitrageHandler {
	return &ArbitrageHandler{
		calculator: services.NewArbitrageCalculator(),
		oracle:     oracle,
		tracer:     telemetry.NewBusinessTracer(),
		logger:     logger,
	}
}

// EvaluateArbitrage handles POST /api/v1/arbitrage/evaluate
func (h *ArbitrageHandler) EvaluateArbitrage(c *gin.Context) {
	var req models.ArbitrageCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.validateEvaluationRequest(req); err != nil {
		middleware.RecordError(c, err, "invalid arbitrage input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input parameters", "details": err.Error()})
		return
	}

	_, span := h.tracer.TraceArbitrageEvaluation(c.Request.Context(), len(req.Odds), req.Bankroll)
	defer span.End()

	start := time.Now()
	result, err := h.calculator.Evaluate(req.Odds, req.Bankroll)
	if err != nil {
		h.tracer.RecordError(span, err)
		if utils.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input parameters", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate arbitrage", "details": err.Error()})
		return
	}
	h.tracer.RecordArbitrageResult(span, result.Found, result.TotalImplied, result.Profit)
	middleware.AddSpanAttribute(c, "arbitrage.found", result.Found)

	h.logger.LogCalculation("arbitrage", "evaluate", time.Since(start).Milliseconds(), map[string]interface{}{
		"outcomes":      len(req.Odds),
		"total_implied": result.TotalImplied,
		"found":         result.Found,
	})

	c.JSON(http.StatusOK, h.buildEvaluationResponse(req, result))
}

func (h *ArbitrageHandler) validateEvaluationRequest(req models.ArbitrageCalculationRequest) error {
	if len(req.Odds) < h.oracle.MinOutcomes || len(req.Odds) > h.oracle.MaxOutcomes {
		return utils.NewValidationErrorf("number of outcomes must be between %d and %d", h.oracle.MinOutcomes, h.oracle.MaxOutcomes)
	}
	for i, odds := range req.Odds {
		if odds < h.oracle.MinOdds || odds > h.oracle.MaxOdds {
			return utils.NewValidationErrorf("odds[%d] must be between %v and %v", i, h.oracle.MinOdds, h.oracle.MaxOdds)
		}
	}
	if req.Bankroll <= 0 {
		return utils.NewValidationError("bankroll must be greater than zero")
	}

	return nil
}

func (h *ArbitrageHandler) buildEvaluationResponse(req models.ArbitrageCalculationRequest, result *services.ArbitrageEvaluation) models.ArbitrageCalculationResponse {
	probs := make([]decimal.Decimal, len(result.ImpliedProbabilities))
	for i, p := range result.ImpliedProbabilities {
		probs[i] = decimal.NewFromFloat(p).Round(4)
	}

	stakes := make([]decimal.Decimal, len(result.Stakes))
	for i, s := range result.Stakes {
		stakes[i] = decimal.NewFromFloat(s).Round(2)
	}

	return models.ArbitrageCalculationResponse{
		ArbitrageFound:       result.Found,
		ImpliedProbabilities: probs,
		TotalImplied:         decimal.NewFromFloat(result.TotalImplied).Round(4),
		MarketEfficiency:     decimal.NewFromFloat(result.MarketEfficiency).Round(4),
		Overround:            decimal.NewFromFloat(result.Overround).Round(2),
		Stakes:               stakes,
		Profit:               decimal.NewFromFloat(result.Profit).Round(2),
		ProfitPercent:        decimal.NewFromFloat(result.ProfitPercent).Round(2),
		Bankroll:             decimal.NewFromFloat(req.Bankroll).Round(2),
		Timestamp:            time.Now(),
	}
}
