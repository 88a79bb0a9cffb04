package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/feiyannw/used-car-pricing/internal/application/predictor"
	"github.com/feiyannw/used-car-pricing/pkg/ports"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server represents the HTTP API server
type Server struct {
	router    *gin.Engine
	server    *http.Server
	predictor *predictor.Service
	engine    ports.InferenceEngine
	metrics   ports.MetricsCollector
	logger    *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Port           int
	Predictor      *predictor.Service
	Engine         ports.InferenceEngine
	Metrics        ports.MetricsCollector
	MetricsHandler http.Handler
	Logger         *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	s := &Server{
		router:    router,
		predictor: cfg.Predictor,
		engine:    cfg.Engine,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
	}

	router.Use(s.recovery())
	router.Use(requestID())
	router.Use(requestLogger(cfg.Logger))

	s.setupRoutes(cfg.MetricsHandler)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes(metricsHandler http.Handler) {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ping", s.handlePing)
	s.router.GET("/bq_test", s.handleEngineTest)
	s.router.GET("/metrics", gin.WrapH(metricsHandler))
	s.router.POST("/predict", s.handlePredict)
}

// Router returns the underlying gin engine, for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
