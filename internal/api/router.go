package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"riskprofiler/internal/api/handler"
	"riskprofiler/internal/api/middleware"
	"riskprofiler/internal/config"
)

// Services bundles the delegates the handlers call
type Services struct {
	Parser      handler.TextParser
	Extractor   handler.FactorExtractor
	Classifier  handler.RiskClassifier
	Recommender handler.Recommender
	Analyzer    handler.HealthAnalyzer
}

// Router sets up all API routes. A nil uploader leaves /health-analysis
// without its upload capability.
func Router(cfg *config.Config, logger *zap.Logger, services Services, uploader *middleware.Uploader) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	// Apply middlewares
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(logger))
	router.Use(metrics.Middleware())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.ErrorHandler(logger))
	if uploader != nil {
		router.Use(middleware.Upload(uploader))
	}

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	surveyHandler := handler.NewSurveyHandler(services.Parser, services.Extractor)
	riskHandler := handler.NewRiskHandler(services.Classifier, services.Recommender)
	analysisHandler := handler.NewAnalysisHandler(services.Analyzer)

	// Health check
	router.GET("/health", healthHandler.Check)

	// Image analysis
	router.POST("/health-analysis", analysisHandler.Upload)

	// Step-by-step API
	router.POST("/parse", surveyHandler.Parse)
	router.POST("/extract-factors", surveyHandler.ExtractFactors)
	router.POST("/classify-risk", riskHandler.ClassifyRisk)
	router.POST("/recommendations", riskHandler.Recommendations)

	// Operations
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
