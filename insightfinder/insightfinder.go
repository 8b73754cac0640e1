package insightfinder

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/google/go-querystring/query"
	config "github.com/insightfinder/datadog-agent/configs"
	"github.com/sirupsen/logrus"
)

const (
	LOG_DATA_API        = "/api/v1/customprojectrawdata"
	PROJECT_ENDPOINT    = "/api/v1/check-and-add-custom-project"
	HTTP_RETRY_TIMES    = 3
	HTTP_RETRY_INTERVAL = 5 * time.Second
)

var leadingSpecialChars = regexp.MustCompile(`^[-_\W]+`)

func NewService(ifConfig config.InsightFinderConfig) *Service {
	client := &http.Client{Timeout: 180 * time.Second}

	service := &Service{
		config:           ifConfig,
		httpClient:       client,
		ProjectName:      ifConfig.LogsProjectName,
		SystemName:       ifConfig.LogsSystemName,
		ProjectType:      ifConfig.LogsProjectType,
		Container:        ifConfig.IsContainer,
		CloudType:        ifConfig.CloudType,
		InstanceType:     ifConfig.InstanceType,
		SamplingInterval: uint(ifConfig.SamplingInterval),
		RetryTimes:       HTTP_RETRY_TIMES,
		RetryInterval:    HTTP_RETRY_INTERVAL,
	}
	service.updateDerivedTypes()
	return service
}

// updateDerivedTypes updates DataType and InsightAgentType for log data
func (s *Service) updateDerivedTypes() {
	s.DataType = "Log"
	if s.Container {
		s.InsightAgentType = "ContainerCustom"
	} else {
		s.InsightAgentType = "Custom"
	}
}

// Initialize creates the logs project if it doesn't exist
func (s *Service) Initialize(ctx context.Context) error {
	logrus.Info("Initializing InsightFinder service...")

	exists, err := s.IsProjectExist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.CreateProject(ctx); err != nil {
			return err
		}
	}

	logrus.Info("InsightFinder service initialized successfully")
	return nil
}

// IsProjectExist checks if project exists
func (s *Service) IsProjectExist(ctx context.Context) (bool, error) {
	logrus.Infof("Checking if project '%s' exists in InsightFinder", s.ProjectName)

	form := url.Values{}
	form.Add("operation", "check")
	form.Add("userName", s.config.UserName)
	form.Add("licenseKey", s.config.LicenseKey)
	form.Add("projectName", s.ProjectName)
	form.Add("systemName", s.SystemName)

	var checkResponse CheckAndAddCustomProjectResponse
	err := requests.URL(s.config.ServerURL).
		Path(PROJECT_ENDPOINT).
		Client(s.httpClient).
		BodyForm(form).
		ToJSON(&checkResponse).
		Fetch(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check project existence: %w", err)
	}

	if !checkResponse.IsSuccess {
		return false, fmt.Errorf("project check failed: %s", checkResponse.Message)
	}
	if checkResponse.IsProjectExist {
		logrus.Infof("Project '%s' exists in InsightFinder", s.ProjectName)
	} else {
		logrus.Infof("Project '%s' does not exist in InsightFinder", s.ProjectName)
	}
	return checkResponse.IsProjectExist, nil
}

// CreateProject creates a new project
func (s *Service) CreateProject(ctx context.Context) error {
	logrus.Infof("Creating project '%s' in InsightFinder", s.ProjectName)

	request := CheckAndAddCustomProjectRequest{
		Operation:        "create",
		UserName:         s.config.UserName,
		LicenseKey:       s.config.LicenseKey,
		ProjectName:      s.ProjectName,
		SystemName:       s.SystemName,
		InstanceType:     s.InstanceType,
		ProjectCloudType: s.CloudType,
		DataType:         s.DataType,
		InsightAgentType: s.InsightAgentType,
		SamplingInterval: int(s.SamplingInterval),
	}
	requestForm, err := query.Values(request)
	if err != nil {
		return fmt.Errorf("error building request form to create project: %w", err)
	}

	var resultStr string
	err = requests.URL(s.config.ServerURL).
		Path(PROJECT_ENDPOINT).
		Client(s.httpClient).
		Header("agent-type", "Stream").
		BodyJSON(request).
		Params(requestForm).
		ToString(&resultStr).
		Post().
		Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	logrus.Infof("Project '%s' created successfully in InsightFinder", s.ProjectName)
	logrus.Debugf("Create project response: %s", resultStr)
	return nil
}

// CleanDeviceName cleans and formats an instance name
func CleanDeviceName(deviceName string) string {
	if deviceName == "" {
		return deviceName
	}

	deviceName = strings.ReplaceAll(deviceName, "_", ".")
	deviceName = strings.ReplaceAll(deviceName, ":", "-")
	deviceName = strings.ReplaceAll(deviceName, "/", ".")

	cleaned := strings.TrimSpace(leadingSpecialChars.ReplaceAllString(deviceName, ""))
	if cleaned == "" {
		return deviceName
	}
	return cleaned
}
