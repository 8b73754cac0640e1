package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntegrationID(t *testing.T) {
	tests := []struct {
		name    string
		metric  string
		want    string
		wantErr error
	}{
		{"three segments", "aws.rds.cpuutilization", "aws.rds", nil},
		{"many segments", "gcp.loadbalancing.https.total_latencies.p99", "gcp.loadbalancing", nil},
		{"two segments", "system.cpu", "system.cpu", nil},
		{"single segment", "w3svc", "w3svc", ErrDegenerateMetricName},
		{"trailing dot", "nagios.", "nagios.", nil},
		{"empty", "", "", ErrEmptyMetricName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntegrationID(tt.metric)
			assert.Equal(t, tt.want, got)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseIntegrationIDIsDeterministic(t *testing.T) {
	first, err := ParseIntegrationID("kubernetes.containers.restarts")
	require.NoError(t, err)
	second, err := ParseIntegrationID("kubernetes.containers.restarts")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseIntegrationTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    string
		wantErr error
	}{
		{"simple", "integration:aws.rds", "aws.rds", nil},
		{"lower-cased", "integration:PostgreSQL", "postgresql", nil},
		{"value stops at next colon", "integration:Redis:6379", "redis", nil},
		{"whitespace kept", "integration: redis", " redis", nil},
		{"marker in value", "source:integration", "integration", nil},
		{"unrelated tag", "env:prod", "", ErrNotIntegrationTag},
		{"no separator", "integration", "", ErrMalformedTag},
		{"empty value", "integration:", "", ErrMalformedTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntegrationTag(tt.tag)
			assert.Equal(t, tt.want, got)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFindingString(t *testing.T) {
	assert.Equal(t,
		"Integration custom.foo identified on host: h1, configure integration.",
		NewUnconfiguredFinding("h1", "custom.foo").String())
	assert.Equal(t,
		"kubernetes.containers has no monitor",
		NewUnmonitoredFinding("kubernetes.containers").String())
}
