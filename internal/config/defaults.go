package config

// Default server identity, matching the demo server this project reproduces.
const (
	DefaultServerName        = "EZ-MCP Demo Server"
	DefaultServerVersion     = "1.0.0"
	DefaultServerDescription = "A simple MCP server demonstrating basic functionality"
	DefaultServerAuthor      = "EZ-MCP"
)

// Environment variables read per call and their fallbacks.
const (
	EnvGreetingPrefix = "GREETING_PREFIX"
	EnvEnvironment    = "ENVIRONMENT"

	DefaultGreetingPrefix = "Hello"
	DefaultEnvironment    = "development"
)

// GetDefaultConfig returns the built-in configuration used when no config
// file is present.
func GetDefaultConfig() Config {
	return Config{
		Server: ServerSettings{
			Name:        DefaultServerName,
			Version:     DefaultServerVersion,
			Description: DefaultServerDescription,
			Author:      DefaultServerAuthor,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}
