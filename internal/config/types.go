package config

// Config is the top-level configuration structure for ezmcp.
type Config struct {
	Server  ServerSettings  `yaml:"server"`
	Logging LoggingSettings `yaml:"logging"`
}

// ServerSettings describes the identity the server advertises to clients and
// prints in its startup banner.
type ServerSettings struct {
	Name        string `yaml:"name,omitempty"`
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
	Author      string `yaml:"author,omitempty"`
}

// LoggingSettings controls diagnostic output. Logs always go to stderr;
// stdout is reserved for the protocol stream.
type LoggingSettings struct {
	Level string `yaml:"level,omitempty"` // "debug", "info", "warn" or "error"
}

// Greeting holds the environment-driven values substituted into handler
// output. It is read fresh on every call, never cached; see CurrentGreeting.
type Greeting struct {
	Prefix      string
	Environment string
}
