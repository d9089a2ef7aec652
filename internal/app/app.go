// Package app implements the application layer for weave.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/tree"
	"go.trai.ch/zerr"
)

// Report formats accepted by Settings.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// App represents the main application logic.
type App struct {
	initializer *tree.Initializer
	logger      ports.Logger
	telemetry   ports.Telemetry
	metrics     ports.MetricsRecorder
}

// New creates a new App instance.
func New(
	initializer *tree.Initializer,
	log ports.Logger,
	telemetry ports.Telemetry,
	metrics ports.MetricsRecorder,
) *App {
	return &App{
		initializer: initializer,
		logger:      log,
		telemetry:   telemetry,
		metrics:     metrics,
	}
}

// SettingsOptions configuration for the Settings method.
type SettingsOptions struct {
	NoBuildCache bool
	Offline      bool
	Properties   []string
	Parallel     int
	Format       string
	JSONLogs     bool
	MetricsOut   string
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// Settings initializes the build tree rooted at dir and writes its settings report to out.
func (a *App) Settings(ctx context.Context, dir string, opts SettingsOptions, out io.Writer) error {
	if opts.JSONLogs {
		if s, ok := a.logger.(jsonSwitcher); ok {
			s.SetJSON(true)
		}
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatYAML {
		return zerr.With(domain.ErrUnknownReportFormat, "format", format)
	}

	params, err := startParameter(opts)
	if err != nil {
		return err
	}

	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to close telemetry: %v", err))
		}
	}()

	result, err := a.initializer.Initialize(ctx, dir, params)
	if err != nil {
		return errors.Join(domain.ErrTreeInitializationFailed, err)
	}

	if opts.MetricsOut != "" {
		if err := a.metrics.WriteTextfile(opts.MetricsOut); err != nil {
			return err
		}
	}

	report := NewReport(result)
	if format == FormatYAML {
		return report.WriteYAML(out)
	}
	return report.WriteText(out)
}

func startParameter(opts SettingsOptions) (*domain.StartParameter, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	params := domain.NewStartParameter(cwd)
	params.BuildCacheEnabled = !opts.NoBuildCache
	params.Offline = opts.Offline
	if opts.Parallel > 0 {
		params.MaxParallelBuilds = opts.Parallel
	}

	for _, prop := range opts.Properties {
		key, value, ok := strings.Cut(prop, "=")
		if !ok || key == "" {
			return nil, zerr.With(domain.ErrInvalidProjectProperty, "property", prop)
		}
		params.ProjectProperties[key] = value
	}

	return params, nil
}
