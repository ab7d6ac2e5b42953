package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osGetwd = os.Getwd
var osGetenv = os.Getenv

const (
	projectConfigDir = ".ezmcp"
	configFileName   = "config.yaml"
)

// LoadConfig loads the ezmcp configuration by layering project settings over
// the built-in defaults. A missing config file is not an error; the defaults
// stand on their own.
func LoadConfig() (Config, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. Overlay the optional project configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		// Log this but don't fail; project config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
		return config, nil
	}

	if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Server.Name != "" {
		merged.Server.Name = overlay.Server.Name
	}
	if overlay.Server.Version != "" {
		merged.Server.Version = overlay.Server.Version
	}
	if overlay.Server.Description != "" {
		merged.Server.Description = overlay.Server.Description
	}
	if overlay.Server.Author != "" {
		merged.Server.Author = overlay.Server.Author
	}
	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	return merged
}

// CurrentGreeting reads the greeting configuration from the environment,
// applying defaults for unset variables. It is called on every dispatch so a
// change to GREETING_PREFIX is visible on the very next request; nothing is
// cached at startup.
func CurrentGreeting() Greeting {
	prefix := osGetenv(EnvGreetingPrefix)
	if prefix == "" {
		prefix = DefaultGreetingPrefix
	}
	environment := osGetenv(EnvEnvironment)
	if environment == "" {
		environment = DefaultEnvironment
	}
	return Greeting{
		Prefix:      prefix,
		Environment: environment,
	}
}
