package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	DefaultBaseURL   = "https://app.datadoghq.com"
	DefaultPageLimit = 1000
)

// LoadConfig loads configuration from YAML file
func LoadConfig(configPath string) (*Config, error) {
	logrus.Infof("Loading configuration from: %s", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file: %w", err)
	}

	logrus.Info("Configuration loaded successfully")
	return &config, nil
}

// Finalize fills defaults and validates the configuration. It runs after
// command-line overrides have been applied.
func Finalize(config *Config) error {
	setDefaults(config)
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// setDefaults sets default values for configuration fields if they are not provided
func setDefaults(config *Config) {
	if config.Agent.LogLevel == "" {
		config.Agent.LogLevel = "INFO"
	}
	if len(config.Agent.Allowlist) == 0 {
		config.Agent.Allowlist = append([]string(nil), DefaultAllowlist...)
	}

	if config.Datadog.BaseURL == "" {
		config.Datadog.BaseURL = DefaultBaseURL
	}
	if config.Datadog.APIKey == "" {
		config.Datadog.APIKey = os.Getenv("DD_API_KEY")
	}
	if config.Datadog.AppKey == "" {
		config.Datadog.AppKey = os.Getenv("DD_APP_KEY")
	}
	if config.Datadog.QueryTimeout == 0 {
		config.Datadog.QueryTimeout = 60
	}
	if config.Datadog.PageLimit <= 0 {
		config.Datadog.PageLimit = DefaultPageLimit
	}

	if config.InsightFinder.Enabled() {
		if config.InsightFinder.LogsProjectType == "" {
			config.InsightFinder.LogsProjectType = "LOG"
		}
		if config.InsightFinder.LogsSystemName == "" {
			config.InsightFinder.LogsSystemName = config.InsightFinder.LogsProjectName
		}
		if config.InsightFinder.SamplingInterval == 0 {
			config.InsightFinder.SamplingInterval = 60
		}
		if config.InsightFinder.CloudType == "" {
			config.InsightFinder.CloudType = "OnPremise"
		}
		if config.InsightFinder.InstanceType == "" {
			config.InsightFinder.InstanceType = "OnPremise"
		}
	}

	logrus.Debug("Default values applied to configuration")
}

// validateConfig validates the configuration and returns an error if invalid
func validateConfig(config *Config) error {
	if config.Datadog.APIKey == "" {
		return fmt.Errorf("datadog.api_key is required")
	}
	if config.Datadog.AppKey == "" {
		return fmt.Errorf("datadog.app_key is required")
	}
	if u, err := url.Parse(config.Datadog.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid datadog.base_url: %s", config.Datadog.BaseURL)
	}
	if config.Agent.RunInterval < 0 {
		return fmt.Errorf("agent.run_interval must not be negative")
	}

	if config.InsightFinder.Enabled() {
		if config.InsightFinder.UserName == "" {
			return fmt.Errorf("insightfinder.username is required")
		}
		if config.InsightFinder.LicenseKey == "" {
			return fmt.Errorf("insightfinder.license_key is required")
		}
		if config.InsightFinder.LogsProjectName == "" {
			return fmt.Errorf("insightfinder.logs_project_name is required")
		}
	}

	return nil
}
