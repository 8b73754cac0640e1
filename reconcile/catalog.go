package reconcile

import (
	"strings"

	"github.com/insightfinder/datadog-agent/pkg/models"
	"github.com/samber/lo"
)

// MonitorCatalog is a read-only snapshot of the monitor queries
type MonitorCatalog struct {
	queries []string
}

// NewMonitorCatalog keeps the query text of every monitor
func NewMonitorCatalog(monitors []models.Monitor) *MonitorCatalog {
	return &MonitorCatalog{
		queries: lo.Map(monitors, func(m models.Monitor, _ int) string {
			return m.Query
		}),
	}
}

// Covers reports whether any monitor query contains x
func (c *MonitorCatalog) Covers(x string) bool {
	return lo.ContainsBy(c.queries, func(query string) bool {
		return strings.Contains(query, x)
	})
}

// Len returns the number of monitors in the catalog
func (c *MonitorCatalog) Len() int {
	return len(c.queries)
}

// Allowlist is the curated set of metrics whose integrations must have a monitor
type Allowlist struct {
	entries []string
}

// NewAllowlist copies entries so later changes to the slice are not seen
func NewAllowlist(entries []string) *Allowlist {
	return &Allowlist{entries: append([]string(nil), entries...)}
}

// Mandatory reports whether x is a substring of an allowlist entry. The
// direction matters: the entry "aws.rds.cpuutilization" makes "aws.rds"
// mandatory, not the other way round.
func (a *Allowlist) Mandatory(x string) bool {
	return lo.ContainsBy(a.entries, func(entry string) bool {
		return strings.Contains(entry, x)
	})
}

// Len returns the number of allowlist entries
func (a *Allowlist) Len() int {
	return len(a.entries)
}
