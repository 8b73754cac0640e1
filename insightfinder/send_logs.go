package insightfinder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/insightfinder/datadog-agent/pkg/models"
	"github.com/sirupsen/logrus"
)

// ToLogData converts findings to log entries. Unconfigured findings are
// tagged with their host, unmonitored ones with the integration.
func ToLogData(findings []models.Finding, timestamp time.Time) []LogData {
	logs := make([]LogData, 0, len(findings))
	for _, finding := range findings {
		tag := finding.Host
		if tag == "" {
			tag = finding.Integration
		}
		logs = append(logs, LogData{
			TimeStamp:     timestamp.UnixMilli(),
			Tag:           CleanDeviceName(tag),
			ComponentName: string(finding.Kind),
			Data:          finding.String(),
		})
	}
	return logs
}

// SendFindings streams findings to the logs project
func (s *Service) SendFindings(ctx context.Context, findings []models.Finding) error {
	if len(findings) == 0 {
		return nil
	}
	return s.SendLogData(ctx, ToLogData(findings, time.Now()))
}

// SendLogData posts log entries to customprojectrawdata, retrying failed attempts
func (s *Service) SendLogData(ctx context.Context, logs []LogData) error {
	if len(logs) == 0 {
		return nil
	}

	metricDataJSON, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("failed to marshal log data: %w", err)
	}
	logrus.Debugf("Sending log payload to InsightFinder: %s", string(metricDataJSON))

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "datadog-agent"
	}
	hostname = strings.Split(hostname, ".")[0]

	form := url.Values{}
	form.Add("userName", s.config.UserName)
	form.Add("licenseKey", s.config.LicenseKey)
	form.Add("projectName", s.ProjectName)
	form.Add("instanceName", hostname)
	form.Add("agentType", "LogStreaming")
	form.Add("metricData", string(metricDataJSON))

	attempts := s.RetryTimes
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = requests.URL(s.config.ServerURL).
			Path(LOG_DATA_API).
			Client(s.httpClient).
			BodyForm(form).
			Fetch(ctx)
		if lastErr == nil {
			logrus.Infof("Successfully sent %d log entries to InsightFinder", len(logs))
			return nil
		}

		logrus.Warnf("Log send attempt %d/%d failed: %v", attempt, attempts, lastErr)
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.RetryInterval):
			}
		}
	}

	return fmt.Errorf("failed to send log data after %d attempts: %w", attempts, lastErr)
}
