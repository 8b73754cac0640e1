package insightfinder

import (
	"net/http"
	"time"

	config "github.com/insightfinder/datadog-agent/configs"
)

type Service struct {
	config           config.InsightFinderConfig
	httpClient       *http.Client
	ProjectName      string
	SystemName       string
	CloudType        string
	InstanceType     string
	ProjectType      string
	DataType         string
	Container        bool
	InsightAgentType string
	SamplingInterval uint // In seconds

	RetryTimes    int
	RetryInterval time.Duration
}

// Project creation/check structures
type CheckAndAddCustomProjectRequest struct {
	Operation        string `json:"operation,omitempty" url:"operation,omitempty"`
	UserName         string `json:"userName,omitempty" url:"userName,omitempty"`
	LicenseKey       string `json:"licenseKey,omitempty" url:"licenseKey,omitempty"`
	ProjectName      string `json:"projectName,omitempty" url:"projectName,omitempty"`
	SystemName       string `json:"systemName,omitempty" url:"systemName,omitempty"`
	InstanceType     string `json:"instanceType,omitempty" url:"instanceType,omitempty"`
	ProjectCloudType string `json:"projectCloudType,omitempty" url:"projectCloudType,omitempty"`
	DataType         string `json:"dataType,omitempty" url:"dataType,omitempty"`
	InsightAgentType string `json:"insightAgentType,omitempty" url:"insightAgentType,omitempty"`
	SamplingInterval int    `json:"samplingInterval,omitempty" url:"samplingInterval,omitempty"`
}

type CheckAndAddCustomProjectResponse struct {
	IsSuccess      bool   `json:"success"`
	IsProjectExist bool   `json:"isProjectExist"`
	Message        string `json:"message"`
}

// LogData is one entry of the customprojectrawdata log payload
type LogData struct {
	TimeStamp     int64  `json:"timestamp"`
	Tag           string `json:"tag"`
	ComponentName string `json:"componentName"`
	Data          string `json:"data"`
}
