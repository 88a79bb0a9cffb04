// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Price prediction
//   - Health and liveness checks
//   - Engine connectivity self-test
//   - Prometheus metrics
package http
