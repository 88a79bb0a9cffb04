package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/feiyannw/used-car-pricing/internal/application/predictor"
	"github.com/feiyannw/used-car-pricing/internal/config"
	"github.com/feiyannw/used-car-pricing/pkg/adapters/engine"
	"github.com/feiyannw/used-car-pricing/pkg/adapters/metrics/prometheus"
	"github.com/feiyannw/used-car-pricing/pkg/api/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting Prediction Gateway",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("model", cfg.Model.Table))

	// Initialize inference engine client
	ctx := context.Background()
	engineClient, err := engine.NewClient(ctx, &engine.Config{
		Provider:  cfg.Engine.Provider,
		ProjectID: cfg.Engine.ProjectID,
		Location:  cfg.Engine.Location,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal("failed to create engine client", zap.Error(err))
	}

	// Initialize adapters and application components
	metricsCollector := prometheus.NewCollector()

	predictorSvc := predictor.NewService(engineClient, cfg.Model.Table, logger)

	httpServer := http.NewServer(&http.Config{
		Port:           cfg.HTTPPort,
		Predictor:      predictorSvc,
		Engine:         engineClient,
		Metrics:        metricsCollector,
		MetricsHandler: metricsCollector.Handler(),
		Logger:         logger,
	})

	// Start server
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("Prediction Gateway started", zap.Int("http_port", cfg.HTTPPort))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if err := engineClient.Close(); err != nil {
		logger.Error("engine client close error", zap.Error(err))
	}

	logger.Info("Prediction Gateway shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
