package bigquery

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	bq "cloud.google.com/go/bigquery"
	"github.com/feiyannw/used-car-pricing/pkg/ports"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
)

// Client implements ports.InferenceEngine using BigQuery. Field values are
// always bound as named query parameters; the BigQuery client infers the
// declared type (INT64, STRING, FLOAT64) from the Go value type.
type Client struct {
	client   *bq.Client
	location string
	logger   *zap.Logger
}

// NewClient creates a BigQuery-backed engine client. An empty projectID
// resolves the project from application default credentials.
func NewClient(ctx context.Context, projectID, location string, logger *zap.Logger) (*Client, error) {
	if projectID == "" {
		projectID = bq.DetectProjectID
	}

	client, err := bq.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
	}

	return &Client{
		client:   client,
		location: location,
		logger:   logger,
	}, nil
}

// Query runs sql with the given bound parameters and returns all result rows.
func (c *Client) Query(ctx context.Context, sql string, params []ports.Parameter) ([]ports.Row, error) {
	q := c.client.Query(sql)
	q.Location = c.location
	for _, p := range params {
		q.Parameters = append(q.Parameters, bq.QueryParameter{
			Name:  p.Name,
			Value: p.Value,
		})
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, c.classify(err)
	}

	var rows []ports.Row
	for {
		var values []bq.Value
		err := it.Next(&values)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, c.classify(err)
		}
		rows = append(rows, toRow(it.Schema, values))
	}

	return rows, nil
}

// SelfTest verifies connectivity and permissions with a trivial query.
func (c *Client) SelfTest(ctx context.Context) (ports.Row, error) {
	c.logger.Info("running BQ self-test SELECT 1")

	rows, err := c.Query(ctx, "SELECT 1 AS ok", nil)
	if err != nil {
		return ports.Row{}, err
	}
	if len(rows) == 0 {
		return ports.Row{}, &ports.EngineError{
			Kind: ports.EngineErrorAPI,
			Err:  errors.New("self-test query returned no rows"),
		}
	}

	return rows[0], nil
}

// Close releases the underlying BigQuery client.
func (c *Client) Close() error {
	return c.client.Close()
}

// classify maps a BigQuery failure onto an engine error kind so callers can
// distinguish a rejected query from authorization and transport failures.
func (c *Client) classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		kind := ports.EngineErrorAPI
		if apiErr.Code == http.StatusBadRequest {
			kind = ports.EngineErrorBadRequest
		}
		c.logger.Error("BigQuery API error",
			zap.Int("code", apiErr.Code),
			zap.Error(err))
		return &ports.EngineError{Kind: kind, Err: err}
	}

	c.logger.Error("BigQuery request failed", zap.Error(err))
	return &ports.EngineError{Kind: ports.EngineErrorUnavailable, Err: err}
}

// toRow converts a BigQuery result row to the engine-agnostic form,
// preserving the schema's column order.
func toRow(schema bq.Schema, values []bq.Value) ports.Row {
	row := ports.Row{
		Columns: make([]string, 0, len(schema)),
		Values:  make(map[string]interface{}, len(schema)),
	}
	for i, field := range schema {
		row.Columns = append(row.Columns, field.Name)
		if i < len(values) {
			row.Values[field.Name] = values[i]
		}
	}
	return row
}
