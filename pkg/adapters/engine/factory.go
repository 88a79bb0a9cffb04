package engine

import (
	"context"
	"fmt"

	"github.com/feiyannw/used-car-pricing/pkg/adapters/engine/bigquery"
	"github.com/feiyannw/used-car-pricing/pkg/ports"
	"go.uber.org/zap"
)

// Config holds inference engine client configuration
type Config struct {
	Provider  string
	ProjectID string
	Location  string
	Logger    *zap.Logger
}

// NewClient creates a new inference engine client based on provider
func NewClient(ctx context.Context, cfg *Config) (ports.InferenceEngine, error) {
	switch cfg.Provider {
	case "bigquery":
		return bigquery.NewClient(ctx, cfg.ProjectID, cfg.Location, cfg.Logger)
	default:
		return nil, fmt.Errorf("unsupported engine provider: %s", cfg.Provider)
	}
}
