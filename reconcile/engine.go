package reconcile

import (
	"github.com/insightfinder/datadog-agent/pkg/models"
	"github.com/samber/lo"
)

// Snapshot is everything one audit run collected
type Snapshot struct {
	Integrations []string
	Hosts        HostIntegrations
	Monitors     *MonitorCatalog
}

// Engine cross-references a snapshot against the allowlist
type Engine struct {
	allowlist *Allowlist
}

func NewEngine(allowlist *Allowlist) *Engine {
	return &Engine{allowlist: allowlist}
}

// Reconcile returns the unconfigured findings, sorted by host, followed by
// the unmonitored findings in integration order. It does not modify the snapshot.
func (e *Engine) Reconcile(snapshot Snapshot) []models.Finding {
	findings := e.unconfigured(snapshot)
	return append(findings, e.unmonitored(snapshot)...)
}

// unconfigured reports integrations advertised by a host that no metric stream reports
func (e *Engine) unconfigured(snapshot Snapshot) []models.Finding {
	configured := lo.Associate(snapshot.Integrations, func(id string) (string, struct{}) {
		return id, struct{}{}
	})

	var findings []models.Finding
	for _, host := range snapshot.Hosts.Hosts() {
		for _, integration := range snapshot.Hosts[host] {
			if _, ok := configured[integration]; !ok {
				findings = append(findings, models.NewUnconfiguredFinding(host, integration))
			}
		}
	}
	return findings
}

// unmonitored reports mandatory integrations that no monitor query mentions
func (e *Engine) unmonitored(snapshot Snapshot) []models.Finding {
	var findings []models.Finding
	for _, integration := range snapshot.Integrations {
		if snapshot.Monitors != nil && snapshot.Monitors.Covers(integration) {
			continue
		}
		if e.allowlist.Mandatory(integration) {
			findings = append(findings, models.NewUnmonitoredFinding(integration))
		}
	}
	return findings
}
