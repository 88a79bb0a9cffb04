package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/feiyannw/used-car-pricing/internal/application/predictor"
	"github.com/feiyannw/used-car-pricing/pkg/ports"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	start := time.Now()

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"model": s.predictor.Model(),
	})

	s.metrics.IncRequest(http.StatusOK, "/health")
	s.metrics.ObserveLatency(time.Since(start))
}

// handlePing is the liveness check. It touches no dependency and records no
// metrics.
func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "pong",
	})
}

// handleEngineTest runs the engine self-test to verify connectivity and
// permissions
func (s *Server) handleEngineTest(c *gin.Context) {
	row, err := s.engine.SelfTest(c.Request.Context())
	if err != nil {
		s.logger.Error("engine self-test failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":     false,
			"where":  "bq_test",
			"detail": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":  true,
		"row": row.Values,
	})
}

// handlePredict handles prediction requests
func (s *Server) handlePredict(c *gin.Context) {
	start := time.Now()
	const route = "/predict"

	payload, err := decodePayload(c)
	if err != nil {
		s.logger.Warn("invalid predict payload", zap.Error(err))
		s.respond(c, route, start, http.StatusBadRequest, gin.H{
			"error":  "Invalid input",
			"detail": err.Error(),
		})
		return
	}

	req, err := predictor.BuildRequest(payload)
	if err != nil {
		s.logger.Warn("invalid predict payload", zap.Error(err))
		s.respond(c, route, start, http.StatusBadRequest, gin.H{
			"error":  "Invalid input",
			"detail": err.Error(),
		})
		return
	}

	s.logger.Info("predict payload",
		zap.Int64("year", req.Year),
		zap.Float64("odometer", req.Odometer),
		zap.String("manufacturer", req.Manufacturer),
		zap.String("model", req.Model),
		zap.String("condition", req.Condition),
		zap.String("cylinders", req.Cylinders),
		zap.String("transmission", req.Transmission))

	res, err := s.predictor.Predict(c.Request.Context(), req)
	if err != nil {
		kind := errorKind(err)
		s.logger.Error("prediction failed",
			zap.String("kind", kind),
			zap.Error(err))
		s.respond(c, route, start, http.StatusInternalServerError, gin.H{
			"error":  kind,
			"detail": err.Error(),
		})
		return
	}

	s.respond(c, route, start, http.StatusOK, res)
}

// respond writes the response and records the counter and latency sample.
// Every predict path, including early validation failures, ends here.
func (s *Server) respond(c *gin.Context, route string, start time.Time, status int, body interface{}) {
	c.JSON(status, body)
	s.metrics.IncRequest(status, route)
	s.metrics.ObserveLatency(time.Since(start))
}

// decodePayload parses the request body as JSON. A missing or empty body is
// an empty mapping, not an error.
func decodePayload(c *gin.Context) (map[string]interface{}, error) {
	payload := map[string]interface{}{}
	if c.Request.Body == nil {
		return payload, nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// errorKind maps a prediction failure to the error kind surfaced to callers.
// Engine failures keep their category so operators can distinguish causes.
func errorKind(err error) string {
	var engineErr *ports.EngineError
	if errors.As(err, &engineErr) {
		switch engineErr.Kind {
		case ports.EngineErrorBadRequest:
			return "BQ BadRequest"
		case ports.EngineErrorAPI:
			return "BQ GoogleAPIError"
		}
	}
	return "Prediction failed"
}
