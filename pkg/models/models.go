package models

import (
	"fmt"
	"time"
)

// Metric is a single entry of the Datadog metrics listing
type Metric struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

// Monitor is a configured Datadog monitor. Only Query takes part in reconciliation.
type Monitor struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Query string `json:"query"`
}

// ProcessRecord is one process observed by the Datadog agent
type ProcessRecord struct {
	Host string
	Tags []string
}

// FindingKind distinguishes the two kinds of reconciliation gaps
type FindingKind string

const (
	UnconfiguredIntegration FindingKind = "UnconfiguredIntegration"
	UnmonitoredIntegration  FindingKind = "UnmonitoredIntegration"
)

// Finding is a single detected gap. Host is only set for UnconfiguredIntegration.
type Finding struct {
	Kind        FindingKind `json:"kind"`
	Host        string      `json:"host,omitempty"`
	Integration string      `json:"integration"`
}

// NewUnconfiguredFinding reports an integration advertised on a host without any metric stream
func NewUnconfiguredFinding(host, integration string) Finding {
	return Finding{Kind: UnconfiguredIntegration, Host: host, Integration: integration}
}

// NewUnmonitoredFinding reports a mandatory integration not referenced by any monitor
func NewUnmonitoredFinding(integration string) Finding {
	return Finding{Kind: UnmonitoredIntegration, Integration: integration}
}

func (f Finding) String() string {
	switch f.Kind {
	case UnconfiguredIntegration:
		return fmt.Sprintf("Integration %s identified on host: %s, configure integration.", f.Integration, f.Host)
	case UnmonitoredIntegration:
		return fmt.Sprintf("%s has no monitor", f.Integration)
	default:
		return fmt.Sprintf("%s: %s", f.Kind, f.Integration)
	}
}

// AuditStats tracks what a single audit run looked at
type AuditStats struct {
	MetricsScanned       int           `json:"metrics_scanned"`
	Integrations         int           `json:"integrations"`
	DegenerateMetrics    int           `json:"degenerate_metrics"`
	Processes            int           `json:"processes"`
	Hosts                int           `json:"hosts"`
	MalformedTags        int           `json:"malformed_tags"`
	Monitors             int           `json:"monitors"`
	UnconfiguredFindings int           `json:"unconfigured_findings"`
	UnmonitoredFindings  int           `json:"unmonitored_findings"`
	StartTime            time.Time     `json:"start_time"`
	FetchDuration        time.Duration `json:"fetch_duration"`
	TotalDuration        time.Duration `json:"total_duration"`
}
