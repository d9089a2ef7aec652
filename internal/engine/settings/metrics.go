package settings

import (
	"context"
	"time"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// MetricsProcessor observes the duration and outcome of settings processing.
type MetricsProcessor struct {
	next    ports.SettingsProcessor
	metrics ports.MetricsRecorder
	now     func() time.Time
}

// NewMetricsProcessor creates a metrics stage wrapping next.
func NewMetricsProcessor(next ports.SettingsProcessor, metrics ports.MetricsRecorder) *MetricsProcessor {
	return &MetricsProcessor{next: next, metrics: metrics, now: time.Now}
}

// Process implements ports.SettingsProcessor.
func (m *MetricsProcessor) Process(
	ctx context.Context,
	build *domain.BuildInvocation,
	location domain.SettingsLocation,
	scope domain.ClassLoaderScope,
	params *domain.StartParameter,
) (*domain.Settings, error) {
	start := m.now()
	settings, err := m.next.Process(ctx, build, location, scope, params)
	m.metrics.ObserveSettingsDuration(build.Kind(), m.now().Sub(start))

	outcome := ports.OutcomeSuccess
	if err != nil {
		outcome = ports.OutcomeFailed
	}
	m.metrics.IncSettingsOutcome(build.Kind(), outcome)

	return settings, err
}
