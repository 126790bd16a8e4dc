package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the notes server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token attached to every request.
	Token string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address, timeout and credentials.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view.
//
// Only environment variables, the JSON file named by CONFIG and the built-in
// defaults are consulted; command-line flags belong to the client CLI.
// overrides are merged with the highest priority.
func GetClientConfig(overrides ClientAdapter) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withOverrides(&StructuredConfig{Adapter: Adapter(overrides)}).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{Adapter: ClientAdapter(cfg.Adapter)}

	return clientCfg, clientCfg.validate()
}
