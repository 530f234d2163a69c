// @title Health Risk Profiler API
// @version 1.0
// @description Turns health surveys (JSON, text or an image) into risk levels and recommendations
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @basePath /
// @schemes http https

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "riskprofiler/docs"
	"riskprofiler/internal/api"
	"riskprofiler/internal/api/middleware"
	"riskprofiler/internal/client"
	"riskprofiler/internal/config"
	"riskprofiler/internal/service"
	"riskprofiler/internal/util"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath string
	port       int
)

var rootCmd = &cobra.Command{
	Use:           "riskprofiler",
	Short:         "AI-Powered Health Risk Profiler API server",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		return run(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (overrides CONFIG_FILE)")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides PORT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	// Initialize logging first; services pick up the global logger
	logger, err := util.NewZapLogger(cfg.LogLevel, cfg.Env, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	logger.Info("Starting Health Risk Profiler", zap.Int("port", cfg.Port), zap.String("ocr_provider", cfg.OCRProvider))

	// Initialize OCR engine
	var engine service.OCREngine
	switch cfg.OCRProvider {
	case config.OCRProviderRemote:
		ocrClient := client.NewOCRClient(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.OCRServerTimeout)
		if healthy, err := ocrClient.Health(ctx); !healthy || err != nil {
			logger.Warn("OCR server health check failed", zap.Error(err))
		} else {
			logger.Info("OCR server is healthy")
		}
		cancel()

		engine = ocrClient
	default:
		engine = service.NewOpenAIService(cfg)
	}

	// Initialize services
	ocrService, err := service.NewOCRService(engine, cfg.OCRCacheTTL)
	if err != nil {
		return err
	}
	defer ocrService.Close()

	factorService := service.NewFactorService()
	riskService := service.NewRiskService()
	recommendationService := service.NewRecommendationService()
	analysisService := service.NewAnalysisService(ocrService, factorService, riskService, recommendationService)

	uploader, err := middleware.NewUploader(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		return err
	}

	// Setup router
	router := api.Router(cfg, logger, api.Services{
		Parser:      ocrService,
		Extractor:   factorService,
		Classifier:  riskService,
		Recommender: recommendationService,
		Analyzer:    analysisService,
	}, uploader)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	logger.Info("Health Risk Profiler running", zap.String("addr", srv.Addr))

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigChan:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}
