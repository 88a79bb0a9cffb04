// Package config provides configuration management for the Prediction Gateway.
//
// Configuration is loaded from environment variables using the env package.
// MODEL_TABLE is required; everything else has sensible defaults.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
