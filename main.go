package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	config "github.com/insightfinder/datadog-agent/configs"
	"github.com/insightfinder/datadog-agent/datadog"
	"github.com/insightfinder/datadog-agent/insightfinder"
	"github.com/insightfinder/datadog-agent/worker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/config.yaml"

type options struct {
	configPath string
	apiKey     string
	appKey     string
	url        string
	debug      bool
	interval   int
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		logrus.Errorf("Datadog integration audit failed: %v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "datadog-agent",
		Short: "Find integrations that are discovered but not configured, or configured but not monitored",
		Long: `Cross-references the metrics, monitors and process tags of a Datadog
organization and reports:
  - integrations advertised by running processes but never configured
  - mandatory integrations that no monitor query references`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "Path to the YAML configuration file")
	cmd.Flags().StringVar(&opts.apiKey, "apikey", "", "Datadog API key (overrides datadog.api_key)")
	cmd.Flags().StringVar(&opts.appKey, "appkey", "", "Datadog application key (overrides datadog.app_key)")
	cmd.Flags().StringVarP(&opts.url, "url", "u", "", "Datadog URL (default https://app.datadoghq.com)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Set log level to DEBUG")
	cmd.Flags().IntVar(&opts.interval, "interval", -1, "Seconds between audits, 0 runs once (overrides agent.run_interval)")

	return cmd
}

// loadConfig reads the config file, applies command-line overrides and
// validates the result. A missing default config file is not an error.
func loadConfig(opts *options, explicitPath bool) (*config.Config, error) {
	cfg := &config.Config{}
	if _, err := os.Stat(opts.configPath); err == nil || explicitPath {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.apiKey != "" {
		cfg.Datadog.APIKey = opts.apiKey
	}
	if opts.appKey != "" {
		cfg.Datadog.AppKey = opts.appKey
	}
	if opts.url != "" {
		cfg.Datadog.BaseURL = opts.url
	}
	if opts.debug {
		cfg.Agent.LogLevel = "DEBUG"
	}
	if opts.interval >= 0 {
		cfg.Agent.RunInterval = opts.interval
	}

	if err := config.Finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	setupLogging(cfg.Agent.LogLevel)

	logrus.Info("Datadog integration audit starting...")
	logrus.Infof("Datadog URL: %s", cfg.Datadog.BaseURL)
	logrus.Infof("Mandatory allowlist entries: %d", len(cfg.Agent.Allowlist))

	ddService := datadog.NewService(cfg.Datadog)

	var sink worker.FindingsSink
	if cfg.InsightFinder.Enabled() {
		logrus.Infof("Findings will be sent to InsightFinder project '%s'", cfg.InsightFinder.LogsProjectName)
		sink = insightfinder.NewService(cfg.InsightFinder)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := worker.NewWorker(cfg, ddService, sink)
	if err := w.Start(ctx, time.Duration(cfg.Agent.RunInterval)*time.Second); err != nil {
		return err
	}

	logrus.Info("Datadog integration audit finished")
	return nil
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch strings.ToUpper(level) {
	case "DEBUG":
		logrus.SetLevel(logrus.DebugLevel)
	case "INFO":
		logrus.SetLevel(logrus.InfoLevel)
	case "WARN":
		logrus.SetLevel(logrus.WarnLevel)
	case "ERROR":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
