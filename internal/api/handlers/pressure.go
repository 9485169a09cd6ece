package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/trioracle/trioracle-go/internal/logging"
	"github.com/trioracle/trioracle-go/internal/middleware"
	"github.com/trioracle/trioracle-go/internal/models"
	"github.com/trioracle/trioracle-go/internal/services"
	"github.com/trioracle/trioracle-go/internal/telemetry"
	"github.com/trioracle/trioracle-go/internal/utils"
)

// PressureHandler handles open-interest pressure endpoints
type PressureHandler struct {
	calculator *services.PressureCalculator
	tracer     *telemetry.BusinessTracer
	logger     logging.Logger
}

// NewPressureHandler creates a new pressure handler
func NewPressureHandler(logger logging.Logger) *PressureHandler {
	return &PressureHandler{
		calculator: services.NewPressureCalculator(),
		tracer:     telemetry.NewBusinessTracer(),
		logger:     logger,
	}
}

// EvaluatePressure handles POST /api/v1/pressure/evaluate
func (h *PressureHandler) EvaluatePressure(c *gin.Context) {
	var req models.PressureEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if req.LongOI < 0 || req.ShortOI < 0 {
		err := utils.NewValidationError("open interest cannot be negative")
		middleware.RecordError(c, err, "invalid pressure input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input parameters", "details": err.Error()})
		return
	}

	_, span := h.tracer.TracePressureReading(c.Request.Context(), req.LongOI, req.ShortOI)
	defer span.End()

	start := time.Now()
	reading := h.calculator.Evaluate(req.LongOI, req.ShortOI)
	h.tracer.RecordPressureReading(span, reading.Ratio, string(reading.Band), string(reading.Advisory))
	middleware.AddSpanAttribute(c, "pressure.band", string(reading.Band))

	h.logger.LogCalculation("pressure", "evaluate", time.Since(start).Milliseconds(), map[string]interface{}{
		"ratio":    reading.Ratio,
		"band":     string(reading.Band),
		"advisory": string(reading.Advisory),
	})

	c.JSON(http.StatusOK, models.PressureEvaluationResponse{
		Ratio:             decimal.NewFromFloat(reading.Ratio).Round(4),
		Band:              string(reading.Band),
		Advisory:          string(reading.Advisory),
		Bias:              reading.Bias,
		TotalOpenInterest: decimal.NewFromFloat(reading.TotalOpenInterest).Round(2),
		Timestamp:         time.Now(),
	})
}
