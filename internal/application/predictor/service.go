package predictor

import (
	"context"
	"fmt"

	"github.com/feiyannw/used-car-pricing/pkg/ports"
	"go.uber.org/zap"
)

// predictQuery selects every output column of ML.PREDICT over a single input
// row built from the bound parameters. Only the model identifier, fixed at
// startup, is interpolated; request fields are always bound by name.
const predictQuery = `
SELECT *
FROM ML.PREDICT(
  MODEL ` + "`%s`" + `,
  (SELECT
    @year AS year,
    @manufacturer AS manufacturer,
    @model AS model,
    @condition AS condition,
    @cylinders AS cylinders,
    @odometer AS odometer,
    @transmission AS transmission
  )
)
`

// predictionColumns are tried in order before falling back to scanning the
// row for the first numeric value.
var predictionColumns = []string{"predicted_price", "predicted_value", "price"}

// Result is a completed prediction: the scalar price, the normalized inputs
// echoed back, and the full first result row.
type Result struct {
	PredictedPrice float64                `json:"predicted_price"`
	Inputs         Request                `json:"inputs"`
	Raw            map[string]interface{} `json:"raw"`
}

// Service runs prediction queries against the configured model.
type Service struct {
	engine ports.InferenceEngine
	model  string
	logger *zap.Logger
}

// NewService creates a prediction service bound to a model resource name.
func NewService(engine ports.InferenceEngine, model string, logger *zap.Logger) *Service {
	return &Service{
		engine: engine,
		model:  model,
		logger: logger,
	}
}

// Model returns the configured model resource name.
func (s *Service) Model() string {
	return s.model
}

// Predict executes one prediction query and extracts the predicted price from
// the first result row.
func (s *Service) Predict(ctx context.Context, req *Request) (*Result, error) {
	query := fmt.Sprintf(predictQuery, s.model)
	params := []ports.Parameter{
		{Name: "year", Value: req.Year},
		{Name: "manufacturer", Value: req.Manufacturer},
		{Name: "model", Value: req.Model},
		{Name: "condition", Value: req.Condition},
		{Name: "cylinders", Value: req.Cylinders},
		{Name: "odometer", Value: req.Odometer},
		{Name: "transmission", Value: req.Transmission},
	}

	s.logger.Info("calling ML.PREDICT", zap.String("model", s.model))

	rows, err := s.engine.Query(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyResult
	}

	row := rows[0]
	price, err := extractPrediction(row)
	if err != nil {
		return nil, err
	}

	return &Result{
		PredictedPrice: price,
		Inputs:         *req,
		Raw:            row.Values,
	}, nil
}

// extractPrediction locates the predicted value in a result row: the known
// column names first, then the first numeric value in column order. The
// fallback can misidentify a stray numeric column as the prediction; it is
// kept for compatibility with models whose output column is renamed.
func extractPrediction(row ports.Row) (float64, error) {
	for _, name := range predictionColumns {
		v, ok := row.Values[name]
		if !ok || v == nil {
			continue
		}
		f, numeric := asFloat(v)
		if !numeric {
			return 0, fmt.Errorf("prediction column %s is not numeric: %v", name, v)
		}
		return f, nil
	}

	for _, name := range row.Columns {
		if v := row.Values[name]; v != nil {
			if f, numeric := asFloat(v); numeric {
				return f, nil
			}
		}
	}

	return 0, &ColumnNotFoundError{Columns: row.Columns}
}
