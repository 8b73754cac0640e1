package models

import (
	"errors"
	"strings"
)

const integrationTagMarker = "integration"

var (
	// ErrDegenerateMetricName is returned with a best-effort identifier when a metric name has a single segment
	ErrDegenerateMetricName = errors.New("metric name has fewer than two segments")
	// ErrEmptyMetricName is returned when there is nothing to derive an identifier from
	ErrEmptyMetricName = errors.New("metric name is empty")
	// ErrNotIntegrationTag marks tags that do not advertise an integration
	ErrNotIntegrationTag = errors.New("tag does not reference an integration")
	// ErrMalformedTag marks integration tags that are not shaped key:value
	ErrMalformedTag = errors.New("integration tag is not key:value")
)

// ParseIntegrationID derives the integration identifier of a metric name.
//
// Grammar: segment "." segment [ "." rest ]. The identifier is the first two
// segments joined by ".", so "aws.rds.cpuutilization" gives "aws.rds" and
// "system.cpu" gives "system.cpu". A name without any dot still yields an
// identifier (the name itself) together with ErrDegenerateMetricName.
func ParseIntegrationID(metricName string) (string, error) {
	if metricName == "" {
		return "", ErrEmptyMetricName
	}

	parts := strings.SplitN(metricName, ".", 3)
	if len(parts) < 2 {
		return parts[0], ErrDegenerateMetricName
	}
	return parts[0] + "." + parts[1], nil
}

// ParseIntegrationTag extracts the integration advertised by a process tag.
//
// Only tags containing "integration" are considered. Grammar: key ":" value
// [ ":" rest ]. The value is the second field, lower-cased, so
// "integration:Redis:6379" gives "redis". Tags without a separator or with
// an empty value return ErrMalformedTag.
func ParseIntegrationTag(tag string) (string, error) {
	if !strings.Contains(tag, integrationTagMarker) {
		return "", ErrNotIntegrationTag
	}

	fields := strings.SplitN(tag, ":", 3)
	if len(fields) < 2 {
		return "", ErrMalformedTag
	}

	value := strings.ToLower(fields[1])
	if value == "" {
		return "", ErrMalformedTag
	}
	return value, nil
}
