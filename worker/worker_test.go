package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	config "github.com/insightfinder/datadog-agent/configs"
	"github.com/insightfinder/datadog-agent/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDatadog struct {
	validateErr  error
	metrics      []string
	monitors     []models.Monitor
	processes    []models.ProcessRecord
	processesErr error

	mu    sync.Mutex
	calls int
}

func (f *fakeDatadog) Validate(ctx context.Context) error { return f.validateErr }

func (f *fakeDatadog) GetMetricNames(ctx context.Context) ([]string, error) {
	f.count()
	return f.metrics, nil
}

func (f *fakeDatadog) GetMonitors(ctx context.Context) ([]models.Monitor, error) {
	f.count()
	return f.monitors, nil
}

func (f *fakeDatadog) GetProcesses(ctx context.Context) ([]models.ProcessRecord, error) {
	f.count()
	return f.processes, f.processesErr
}

func (f *fakeDatadog) count() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
}

type fakeSink struct {
	initialized bool
	sendErr     error
	sent        [][]models.Finding
}

func (f *fakeSink) Initialize(ctx context.Context) error {
	f.initialized = true
	return nil
}

func (f *fakeSink) SendFindings(ctx context.Context, findings []models.Finding) error {
	f.sent = append(f.sent, findings)
	return f.sendErr
}

func scenarioDatadog() *fakeDatadog {
	return &fakeDatadog{
		metrics:  []string{"aws.rds.cpuutilization", "kubernetes.containers.restarts", "aws.rds.free_storage_space"},
		monitors: []models.Monitor{{ID: 1, Query: "avg:aws.rds.cpuutilization"}},
		processes: []models.ProcessRecord{
			{Host: "h1", Tags: []string{"integration:aws.rds", "env:prod"}},
			{Host: "h1", Tags: []string{"integration:custom.foo", "integration"}},
		},
	}
}

func scenarioConfig() *config.Config {
	return &config.Config{
		Agent: config.AgentConfig{
			Allowlist: []string{"aws.rds.cpuutilization", "kubernetes.containers.restarts"},
		},
	}
}

func TestRunOnce(t *testing.T) {
	sink := &fakeSink{}
	w := NewWorker(scenarioConfig(), scenarioDatadog(), sink)

	report, err := w.RunOnce(context.Background())
	require.NoError(t, err)

	expected := []models.Finding{
		models.NewUnconfiguredFinding("h1", "custom.foo"),
		models.NewUnmonitoredFinding("kubernetes.containers"),
	}
	assert.Equal(t, expected, report.Findings)
	assert.Equal(t, [][]models.Finding{expected}, sink.sent)

	assert.Equal(t, 3, report.Stats.MetricsScanned)
	assert.Equal(t, 2, report.Stats.Integrations)
	assert.Equal(t, 2, report.Stats.Processes)
	assert.Equal(t, 1, report.Stats.Hosts)
	assert.Equal(t, 1, report.Stats.MalformedTags)
	assert.Equal(t, 1, report.Stats.Monitors)
	assert.Equal(t, 1, report.Stats.UnconfiguredFindings)
	assert.Equal(t, 1, report.Stats.UnmonitoredFindings)

	stats, ok := w.GetStats()
	require.True(t, ok)
	assert.Equal(t, report.Stats, stats)
}

func TestRunOnceIsRepeatable(t *testing.T) {
	w := NewWorker(scenarioConfig(), scenarioDatadog(), nil)

	first, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	second, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Findings, second.Findings)
}

func TestRunOnceFetchFailureAborts(t *testing.T) {
	dd := scenarioDatadog()
	dd.processesErr = errors.New("503 service unavailable")
	sink := &fakeSink{}
	w := NewWorker(scenarioConfig(), dd, sink)

	report, err := w.RunOnce(context.Background())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, dd.processesErr)
	assert.Empty(t, sink.sent, "no findings may be reported after a fetch failure")

	_, ok := w.GetStats()
	assert.False(t, ok)
}

func TestRunOnceSinkFailureIsNotFatal(t *testing.T) {
	sink := &fakeSink{sendErr: errors.New("insightfinder down")}
	w := NewWorker(scenarioConfig(), scenarioDatadog(), sink)

	report, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Findings, 2)
}

func TestStartSingleRun(t *testing.T) {
	dd := scenarioDatadog()
	sink := &fakeSink{}
	w := NewWorker(scenarioConfig(), dd, sink)

	require.NoError(t, w.Start(context.Background(), 0))
	assert.True(t, sink.initialized)
	assert.Len(t, sink.sent, 1)
	assert.Equal(t, 3, dd.calls)
}

func TestStartSingleRunReturnsFetchError(t *testing.T) {
	dd := scenarioDatadog()
	dd.processesErr = errors.New("boom")
	w := NewWorker(scenarioConfig(), dd, nil)

	assert.ErrorIs(t, w.Start(context.Background(), 0), dd.processesErr)
}

func TestStartFailsOnInvalidCredentials(t *testing.T) {
	dd := scenarioDatadog()
	dd.validateErr = errors.New("forbidden")
	w := NewWorker(scenarioConfig(), dd, nil)

	err := w.Start(context.Background(), 0)
	assert.ErrorIs(t, err, dd.validateErr)
	assert.Zero(t, dd.calls)
}

func TestStartPeriodicStopsOnCancel(t *testing.T) {
	dd := scenarioDatadog()
	w := NewWorker(scenarioConfig(), dd, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx, 10*time.Millisecond) }()

	require.Eventually(t, func() bool {
		dd.mu.Lock()
		defer dd.mu.Unlock()
		return dd.calls >= 6
	}, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}
