package settings

import (
	"context"
	"fmt"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// TelemetryProcessor records one vertex per processed build.
// Successful vertices carry the root project name and the effective cache fingerprint.
type TelemetryProcessor struct {
	next      ports.SettingsProcessor
	telemetry ports.Telemetry
}

// NewTelemetryProcessor creates a telemetry stage wrapping next.
func NewTelemetryProcessor(next ports.SettingsProcessor, telemetry ports.Telemetry) *TelemetryProcessor {
	return &TelemetryProcessor{next: next, telemetry: telemetry}
}

// Process implements ports.SettingsProcessor.
func (t *TelemetryProcessor) Process(
	ctx context.Context,
	build *domain.BuildInvocation,
	location domain.SettingsLocation,
	scope domain.ClassLoaderScope,
	params *domain.StartParameter,
) (*domain.Settings, error) {
	ctx, vertex := t.telemetry.Record(ctx, "settings "+build.Path.String())
	settings, err := t.next.Process(ctx, build, location, scope, params)
	if err == nil {
		w := vertex.Stdout()
		_, _ = fmt.Fprintf(w, "root project %s\n", settings.RootProjectName)
		if settings.EffectiveCache != nil {
			_, _ = fmt.Fprintf(w, "build cache %s\n", settings.EffectiveCache.Fingerprint())
		}
	}
	vertex.Complete(err)
	return settings, err
}
