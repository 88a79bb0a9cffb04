// Package predictor implements the core prediction logic of the gateway.
//
// The flow is:
//   - Normalizing and validating the untyped request payload into a typed
//     Request (missing fields and bad coercions stop here)
//   - Building the parameterized ML.PREDICT query against the configured model
//   - Extracting the scalar predicted price from the first result row
//
// The validator rejects at the boundary; untyped values never reach the
// inference engine.
package predictor
