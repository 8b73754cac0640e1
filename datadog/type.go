package datadog

import (
	"fmt"
	"net/http"
	"time"

	"github.com/insightfinder/datadog-agent/pkg/models"
)

// Service represents the Datadog API client
type Service struct {
	BaseURL      string
	APIKey       string
	AppKey       string
	VerifySSL    bool
	PageLimit    int
	QueryTimeout time.Duration

	httpClient *http.Client
}

// MetricsResponse is the body of the metrics listing
type MetricsResponse struct {
	Data []models.Metric `json:"data"`
}

// ValidateResponse is the body of the API key validation endpoint
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// pageParams encodes the cursor pagination query of the processes endpoint
type pageParams struct {
	Limit  int    `url:"page[limit]"`
	Cursor string `url:"page[cursor],omitempty"`
}

// FetchError is returned for any failed call to a Datadog endpoint: transport
// failures, non-2xx statuses and undecodable bodies. It is never retried.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("datadog %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
