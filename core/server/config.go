package server

import "strings"

// Config holds configuration for the preview HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8081"`
	// ApiKey protects the /api routes when set. Static files stay public.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if port == "" {
		port = "8081"
	}
	return ":" + port
}

// IsProtected reports whether API routes require an API key.
func (c Config) IsProtected() bool {
	return c.ApiKey != ""
}
