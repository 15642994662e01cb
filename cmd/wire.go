package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/veltraco/dispatch-match-cli/internal/adapters/render/matchview"
	"github.com/veltraco/dispatch-match-cli/internal/adapters/source/httpapi"
	"github.com/veltraco/dispatch-match-cli/internal/adapters/source/tomlfile"
	"github.com/veltraco/dispatch-match-cli/internal/application"
	"github.com/veltraco/dispatch-match-cli/internal/ports"
)

type app struct {
	service        *application.ReportService
	executorSource ports.ExecutorSource
	matchRenderer  func(application.Snapshot, matchview.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	timeout, err := httpTimeout()
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{Timeout: timeout}

	var clientSource ports.ClientSource
	var executorSource ports.ExecutorSource

	if dataDir := os.Getenv("DM_DATA_DIR"); dataDir != "" {
		source, err := tomlfile.NewSource(viper.New(), dataDir)
		if err != nil {
			return nil, fmt.Errorf("wire snapshot source: %w", err)
		}
		source.SetLogger(logger)
		clientSource, executorSource = source, source
	} else {
		source := httpapi.NewSource(httpClient, envOrDefault("DM_API_BASE_URL", "https://dispatch.veltraco.dev/api"))
		source.SetLogger(logger)
		clientSource, executorSource = source, source
	}

	service := application.NewReportService(clientSource, executorSource, nil, nil)
	service.SetLogger(logger)

	return &app{
		service:        service,
		executorSource: executorSource,
		matchRenderer:  matchview.Render,
		now:            time.Now,
	}, nil
}

func httpTimeout() (time.Duration, error) {
	raw := envOrDefault("DM_HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse DM_HTTP_TIMEOUT %q: %w", raw, err)
	}

	return timeout, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
