package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ProcessIntervalMS is how often loaded results are applied to storage.
	ProcessIntervalMS int `mapstructure:"process_interval_ms" default:"100"`
}

// ProcessInterval returns the result-draining interval, defaulting to 100ms.
func (c Config) ProcessInterval() time.Duration {
	if c.ProcessIntervalMS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.ProcessIntervalMS) * time.Millisecond
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}
