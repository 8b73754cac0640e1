package reconcile

import (
	"errors"

	"github.com/insightfinder/datadog-agent/pkg/models"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// ExtractResult holds the configured integrations derived from metric names
type ExtractResult struct {
	// Integrations in order of first appearance, without duplicates
	Integrations []string
	// Degenerate counts names that had fewer than two segments or were empty
	Degenerate int
}

// ExtractIntegrations derives the distinct integration identifiers of the
// given metric names. Single-segment names contribute the name itself; empty
// names contribute nothing.
func ExtractIntegrations(metricNames []string) ExtractResult {
	var result ExtractResult
	ids := make([]string, 0, len(metricNames))

	for _, name := range metricNames {
		id, err := models.ParseIntegrationID(name)
		switch {
		case err == nil:
		case errors.Is(err, models.ErrDegenerateMetricName):
			logrus.Debugf("Metric '%s' has a single segment, using it as integration", name)
			result.Degenerate++
		default:
			result.Degenerate++
			continue
		}
		ids = append(ids, id)
	}

	result.Integrations = lo.Uniq(ids)
	return result
}
