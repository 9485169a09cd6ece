package api

import (
	"github.com/gin-gonic/gin"

	"github.com/trioracle/trioracle-go/internal/api/handlers"
	"github.com/trioracle/trioracle-go/internal/config"
	"github.com/trioracle/trioracle-go/internal/logging"
	"github.com/trioracle/trioracle-go/internal/services"
)

// SetupRoutes mounts the health endpoint and the calculation API.
func SetupRoutes(router *gin.Engine, cfg *config.Config, logger logging.Logger, trendClassifier *services.TrendClassifier, fibCalculator *services.FibonacciCalculator, structureService *services.MarketStructureService) {
	healthHandler := handlers.NewHealthHandler(cfg.Telemetry.ServiceName, cfg.Telemetry.ServiceVersion)
	arbitrageHandler := handlers.NewArbitrageHandler(cfg.Oracle, logger)
	pressureHandler := handlers.NewPressureHandler(logger)
	trendHandler := handlers.NewTrendHandler(trendClassifier, logger)
	fibonacciHandler := handlers.NewFibonacciHandler(fibCalculator, logger)
	analysisHandler := handlers.NewAnalysisHandler(structureService)

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Arbitrage engine routes
		arbitrage := v1.Group("/arbitrage")
		{
			arbitrage.POST("/evaluate", arbitrageHandler.EvaluateArbitrage)
		}

		// Pressure gauge routes
		pressure := v1.Group("/pressure")
		{
			pressure.POST("/evaluate", pressureHandler.EvaluatePressure)
		}

		// Trend classifier routes
		trend := v1.Group("/trend")
		{
			trend.POST("/classify", trendHandler.ClassifyTrend)
		}

		// Fibonacci engine routes
		fibonacci := v1.Group("/fibonacci")
		{
			fibonacci.POST("/levels", fibonacciHandler.CalculateLevels)
			fibonacci.GET("/timeframes", fibonacciHandler.ListTimeframes)
		}

		// Composite analysis routes
		analysis := v1.Group("/analysis")
		{
			analysis.POST("/market-structure", analysisHandler.AnalyzeMarketStructure)
		}
	}
}
