package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	config "github.com/insightfinder/datadog-agent/configs"
	"github.com/insightfinder/datadog-agent/pkg/models"
	"github.com/insightfinder/datadog-agent/reconcile"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DatadogClient fetches the three datasets an audit needs
type DatadogClient interface {
	Validate(ctx context.Context) error
	GetMetricNames(ctx context.Context) ([]string, error)
	GetMonitors(ctx context.Context) ([]models.Monitor, error)
	GetProcesses(ctx context.Context) ([]models.ProcessRecord, error)
}

// FindingsSink receives the findings of every completed audit
type FindingsSink interface {
	Initialize(ctx context.Context) error
	SendFindings(ctx context.Context, findings []models.Finding) error
}

// Report is the outcome of one audit
type Report struct {
	Findings []models.Finding
	Stats    models.AuditStats
}

type Worker struct {
	config  *config.Config
	datadog DatadogClient
	sink    FindingsSink
	engine  *reconcile.Engine

	statsLock sync.RWMutex
	lastStats *models.AuditStats
}

// NewWorker creates a new worker instance. sink may be nil.
func NewWorker(cfg *config.Config, datadog DatadogClient, sink FindingsSink) *Worker {
	return &Worker{
		config:  cfg,
		datadog: datadog,
		sink:    sink,
		engine:  reconcile.NewEngine(reconcile.NewAllowlist(cfg.Agent.Allowlist)),
	}
}

// Start validates the Datadog credentials and runs audits. With a zero
// interval a single audit runs and its error is returned. Otherwise audits
// repeat every interval until ctx is cancelled; failed audits are logged and
// the next tick tries again.
func (w *Worker) Start(ctx context.Context, interval time.Duration) error {
	if err := w.datadog.Validate(ctx); err != nil {
		return fmt.Errorf("datadog credential check failed: %w", err)
	}
	logrus.Info("Datadog credentials validated")

	if w.sink != nil {
		if err := w.sink.Initialize(ctx); err != nil {
			return fmt.Errorf("failed to initialize findings sink: %w", err)
		}
	}

	if interval <= 0 {
		_, err := w.RunOnce(ctx)
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logrus.Infof("Worker started. Audit interval: %v", interval)
	for {
		if _, err := w.RunOnce(ctx); err != nil {
			logrus.Errorf("Audit failed: %v", err)
		}

		select {
		case <-ctx.Done():
			logrus.Info("Worker received shutdown signal")
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce fetches metrics, monitors and processes, reconciles them and
// reports the findings. Any fetch error aborts the audit before reconciliation.
func (w *Worker) RunOnce(ctx context.Context) (*Report, error) {
	stats := models.AuditStats{StartTime: time.Now()}

	var (
		metricNames []string
		monitors    []models.Monitor
		processes   []models.ProcessRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		metricNames, err = w.datadog.GetMetricNames(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		monitors, err = w.datadog.GetMonitors(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		processes, err = w.datadog.GetProcesses(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats.FetchDuration = time.Since(stats.StartTime)

	extracted := reconcile.ExtractIntegrations(metricNames)
	aggregated := reconcile.AggregateTags(processes)
	catalog := reconcile.NewMonitorCatalog(monitors)

	logrus.Debugf("Current detected integrations: %v", extracted.Integrations)
	for _, host := range aggregated.Hosts.Hosts() {
		logrus.Debugf("Host %s advertises integrations: %v", host, aggregated.Hosts[host])
	}

	findings := w.engine.Reconcile(reconcile.Snapshot{
		Integrations: extracted.Integrations,
		Hosts:        aggregated.Hosts,
		Monitors:     catalog,
	})

	stats.MetricsScanned = len(metricNames)
	stats.Integrations = len(extracted.Integrations)
	stats.DegenerateMetrics = extracted.Degenerate
	stats.Processes = len(processes)
	stats.Hosts = len(aggregated.Hosts)
	stats.MalformedTags = aggregated.MalformedTags
	stats.Monitors = catalog.Len()
	for _, finding := range findings {
		logrus.Warnf("ACTION REQUIRED: %s", finding)
		switch finding.Kind {
		case models.UnconfiguredIntegration:
			stats.UnconfiguredFindings++
		case models.UnmonitoredIntegration:
			stats.UnmonitoredFindings++
		}
	}

	if w.sink != nil {
		if err := w.sink.SendFindings(ctx, findings); err != nil {
			logrus.Errorf("Failed to send findings to InsightFinder: %v", err)
		}
	}

	stats.TotalDuration = time.Since(stats.StartTime)
	w.setStats(stats)

	if stats.MalformedTags > 0 {
		logrus.Warnf("Skipped %d malformed integration tags", stats.MalformedTags)
	}
	if stats.DegenerateMetrics > 0 {
		logrus.Infof("%d metric names had fewer than two segments", stats.DegenerateMetrics)
	}
	logrus.Infof("Audit complete in %v: %d metrics, %d integrations, %d processes on %d hosts, %d monitors, %d unconfigured, %d unmonitored",
		stats.TotalDuration.Round(time.Millisecond), stats.MetricsScanned, stats.Integrations,
		stats.Processes, stats.Hosts, stats.Monitors, stats.UnconfiguredFindings, stats.UnmonitoredFindings)

	return &Report{Findings: findings, Stats: stats}, nil
}

// GetStats returns the statistics of the last completed audit
func (w *Worker) GetStats() (models.AuditStats, bool) {
	w.statsLock.RLock()
	defer w.statsLock.RUnlock()
	if w.lastStats == nil {
		return models.AuditStats{}, false
	}
	return *w.lastStats, true
}

func (w *Worker) setStats(stats models.AuditStats) {
	w.statsLock.Lock()
	defer w.statsLock.Unlock()
	w.lastStats = &stats
}
