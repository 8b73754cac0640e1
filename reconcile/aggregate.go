package reconcile

import (
	"errors"
	"sort"

	"github.com/insightfinder/datadog-agent/pkg/models"
	"github.com/sirupsen/logrus"
)

// HostIntegrations maps a host to the integrations its processes advertise.
// Each list is deduplicated and keeps first-seen order.
type HostIntegrations map[string][]string

// Hosts returns the hosts in sorted order
func (h HostIntegrations) Hosts() []string {
	hosts := make([]string, 0, len(h))
	for host := range h {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts
}

// AggregateResult is the outcome of aggregating process tags
type AggregateResult struct {
	Hosts HostIntegrations
	// MalformedTags counts integration tags that were skipped
	MalformedTags int
}

// AggregateTags builds the per-host integration sets from process records.
// Every tag is parsed on its own; malformed integration tags are skipped and
// counted. A host is registered the first time one of its processes is seen.
func AggregateTags(records []models.ProcessRecord) AggregateResult {
	result := AggregateResult{Hosts: make(HostIntegrations)}
	seen := make(map[string]map[string]struct{})

	for _, record := range records {
		if _, ok := seen[record.Host]; !ok {
			seen[record.Host] = make(map[string]struct{})
			result.Hosts[record.Host] = nil
		}

		for _, tag := range record.Tags {
			integration, err := models.ParseIntegrationTag(tag)
			if err != nil {
				if errors.Is(err, models.ErrMalformedTag) {
					logrus.Debugf("Skipping malformed tag '%s' on host '%s'", tag, record.Host)
					result.MalformedTags++
				}
				continue
			}

			if _, dup := seen[record.Host][integration]; dup {
				continue
			}
			seen[record.Host][integration] = struct{}{}
			result.Hosts[record.Host] = append(result.Hosts[record.Host], integration)
		}
	}

	return result
}
