// Package engine provides inference engine client implementations.
//
// The factory creates engine clients based on provider configuration.
// Implementations:
//   - bigquery: Google BigQuery with parameterized ML.PREDICT queries
//   - memory: In-memory fake for testing
package engine
