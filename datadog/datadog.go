package datadog

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/google/go-querystring/query"
	config "github.com/insightfinder/datadog-agent/configs"
	"github.com/insightfinder/datadog-agent/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	VALIDATE_ENDPOINT  = "/api/v1/validate"
	METRICS_ENDPOINT   = "/api/v2/metrics"
	MONITORS_ENDPOINT  = "/api/v1/monitor"
	PROCESSES_ENDPOINT = "/api/v2/processes"
)

// NewService creates a new Datadog service instance
func NewService(cfg config.DatadogConfig) *Service {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: !cfg.VerifySSL},
	}

	client := &http.Client{
		Transport: tr,
		Timeout:   time.Duration(cfg.QueryTimeout) * time.Second,
	}

	pageLimit := cfg.PageLimit
	if pageLimit <= 0 {
		pageLimit = DefaultPageLimit
	}

	return &Service{
		BaseURL:      cfg.BaseURL,
		APIKey:       cfg.APIKey,
		AppKey:       cfg.AppKey,
		VerifySSL:    cfg.VerifySSL,
		PageLimit:    pageLimit,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Second,
		httpClient:   client,
	}
}

// request builds an authenticated request against the given endpoint
func (s *Service) request(endpoint string) *requests.Builder {
	return requests.URL(s.BaseURL).
		Path(endpoint).
		Client(s.httpClient).
		Header("DD-API-KEY", s.APIKey).
		Header("DD-APPLICATION-KEY", s.AppKey).
		Accept("application/json")
}

// Validate checks that the API key is accepted by Datadog
func (s *Service) Validate(ctx context.Context) error {
	var response ValidateResponse
	err := s.request(VALIDATE_ENDPOINT).
		ToJSON(&response).
		Fetch(ctx)
	if err != nil {
		return &FetchError{Endpoint: VALIDATE_ENDPOINT, Err: err}
	}
	if !response.Valid {
		return &FetchError{Endpoint: VALIDATE_ENDPOINT, Err: errors.New("API key rejected")}
	}
	return nil
}

// GetMetricNames returns the names of every metric reporting to the organization
func (s *Service) GetMetricNames(ctx context.Context) ([]string, error) {
	logrus.Info("Getting metrics")

	var response MetricsResponse
	err := s.request(METRICS_ENDPOINT).
		ToJSON(&response).
		Fetch(ctx)
	if err != nil {
		return nil, &FetchError{Endpoint: METRICS_ENDPOINT, Err: err}
	}

	names := make([]string, 0, len(response.Data))
	for _, metric := range response.Data {
		names = append(names, metric.ID)
	}

	logrus.Debugf("Retrieved %d metrics", len(names))
	return names, nil
}

// GetMonitors returns every configured monitor
func (s *Service) GetMonitors(ctx context.Context) ([]models.Monitor, error) {
	logrus.Info("Getting monitors")

	var monitors []models.Monitor
	err := s.request(MONITORS_ENDPOINT).
		ToJSON(&monitors).
		Fetch(ctx)
	if err != nil {
		return nil, &FetchError{Endpoint: MONITORS_ENDPOINT, Err: err}
	}

	logrus.Debugf("Retrieved %d monitors", len(monitors))
	return monitors, nil
}

// GetProcesses pages through every process Datadog observed recently
func (s *Service) GetProcesses(ctx context.Context) ([]models.ProcessRecord, error) {
	logrus.Info("Getting processes")

	processes, err := Collect(ctx, s.PageLimit, s.fetchProcessPage)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Retrieved %d processes", len(processes))
	return processes, nil
}

func (s *Service) fetchProcessPage(ctx context.Context, cursor string) (*Page[models.ProcessRecord], error) {
	params, err := query.Values(pageParams{Limit: s.PageLimit, Cursor: cursor})
	if err != nil {
		return nil, fmt.Errorf("failed to encode page parameters: %w", err)
	}

	var body bytes.Buffer
	err = s.request(PROCESSES_ENDPOINT).
		Params(params).
		ToBytesBuffer(&body).
		Fetch(ctx)
	if err != nil {
		return nil, &FetchError{Endpoint: PROCESSES_ENDPOINT, Err: err}
	}

	page, err := parseProcessPage(body.Bytes())
	if err != nil {
		return nil, &FetchError{Endpoint: PROCESSES_ENDPOINT, Err: err}
	}
	return page, nil
}

// parseProcessPage decodes a processes page. meta.page.size may be a number
// or a numeric string.
func parseProcessPage(body []byte) (*Page[models.ProcessRecord], error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("response body is not valid JSON")
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return nil, errors.New("response has no data array")
	}
	size, err := pageSize(gjson.GetBytes(body, "meta.page.size"))
	if err != nil {
		return nil, err
	}

	page := &Page[models.ProcessRecord]{
		Next: gjson.GetBytes(body, "meta.page.after").String(),
		Size: size,
	}

	for _, item := range data.Array() {
		record := models.ProcessRecord{
			Host: item.Get("attributes.host").String(),
		}
		for _, tag := range item.Get("attributes.tags").Array() {
			record.Tags = append(record.Tags, tag.String())
		}
		page.Records = append(page.Records, record)
	}

	return page, nil
}

func pageSize(size gjson.Result) (int, error) {
	switch size.Type {
	case gjson.Number:
		if size.Num != float64(int(size.Num)) {
			return 0, fmt.Errorf("meta.page.size is not an integer: %s", size.Raw)
		}
		return int(size.Num), nil
	case gjson.String:
		n, err := strconv.Atoi(size.Str)
		if err != nil {
			return 0, fmt.Errorf("meta.page.size is not numeric: %q", size.Str)
		}
		return n, nil
	case gjson.Null:
		if !size.Exists() {
			return 0, errors.New("response has no meta.page.size")
		}
	}
	return 0, fmt.Errorf("meta.page.size is not numeric: %s", size.Raw)
}
