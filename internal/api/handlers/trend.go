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
	"github.com/trioracle/trioracle-go/internal/utils"
)

// TrendHandler handles trend classification endpoints
type TrendHandler struct {
	classifier *services.TrendClassifier
	tracer     *telemetry.BusinessTracer
	logger     logging.Logger
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(classifier *services.TrendClassifier, logger logging.Logger) *TrendHandler {
	return &TrendHandler{
		classifier: classifier,
		tracer:     telemetry.NewBusinessTracer(),
		logger:     logger,
	}
}

// ClassifyTrend handles POST /api/v1/trend/classify. The moving average
// comes either directly from ma50 or derived from the closes series.
func (h *TrendHandler) ClassifyTrend(c *gin.Context) {
	var req models.TrendClassificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ma := req.MA50
	_, span := h.tracer.TraceTrendClassification(c.Request.Context(), req.Price, ma)
	defer span.End()

	start := time.Now()

	if len(req.Closes) > 0 {
		derived, err := h.classifier.MovingAverage(req.Closes, h.periodFor(req))
		if err != nil {
			h.tracer.RecordError(span, err)
			if utils.IsValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input parameters", "details": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive moving average", "details": err.Error()})
			return
		}
		ma = derived
	}

	state := h.classifier.Classify(req.Price, ma)
	status := h.classifier.Status(state)
	h.tracer.RecordTrendClassification(span, string(state))

	h.logger.LogCalculation("trend", "classify", time.Since(start).Milliseconds(), map[string]interface{}{
		"price": req.Price,
		"ma":    ma,
		"state": string(state),
	})

	c.JSON(http.StatusOK, models.TrendClassificationResponse{
		State:         string(status.State),
		Protocol:      status.Protocol,
		Label:         status.Label,
		Symbol:        status.Symbol,
		Price:         decimal.NewFromFloat(req.Price).Round(2),
		MovingAverage: decimal.NewFromFloat(ma).Round(2),
		Timestamp:     time.Now(),
	})
}

func (h *TrendHandler) periodFor(req models.TrendClassificationRequest) int {
	if req.Period > 0 {
		return req.Period
	}
	return h.classifier.SMAPeriod
}
