package config

type Config struct {
	Agent         AgentConfig         `yaml:"agent"`
	Datadog       DatadogConfig       `yaml:"datadog"`
	InsightFinder InsightFinderConfig `yaml:"insightfinder"`
}

type AgentConfig struct {
	LogLevel    string `yaml:"log_level"`
	RunInterval int    `yaml:"run_interval"` // in seconds, 0 runs a single audit

	// Integrations that must always be covered by a monitor
	Allowlist []string `yaml:"allowlist"`
}

type DatadogConfig struct {
	BaseURL      string `yaml:"base_url"`
	APIKey       string `yaml:"api_key"`
	AppKey       string `yaml:"app_key"`
	VerifySSL    bool   `yaml:"verify_ssl"`
	QueryTimeout int    `yaml:"query_timeout"` // in seconds
	PageLimit    int    `yaml:"page_limit"`
}

// InsightFinderConfig is optional; findings are only shipped when ServerURL is set.
type InsightFinderConfig struct {
	ServerURL  string `yaml:"server_url"`
	UserName   string `yaml:"username"`
	LicenseKey string `yaml:"license_key"`

	LogsProjectName string `yaml:"logs_project_name"`
	LogsSystemName  string `yaml:"logs_system_name"`
	LogsProjectType string `yaml:"logs_project_type"`

	SamplingInterval int    `yaml:"sampling_interval"` // in seconds
	CloudType        string `yaml:"cloud_type"`
	InstanceType     string `yaml:"instance_type"`
	IsContainer      bool   `yaml:"is_container"`
}

// Enabled reports whether findings should be shipped to InsightFinder
func (c InsightFinderConfig) Enabled() bool {
	return c.ServerURL != ""
}
