package settings

import (
	"context"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// Stage wraps the next processor of a chain.
type Stage func(next ports.SettingsProcessor) ports.SettingsProcessor

// Chain composes base with the given stages. The first stage is the outermost one.
func Chain(base ports.SettingsProcessor, stages ...Stage) ports.SettingsProcessor {
	processor := base
	for i := len(stages) - 1; i >= 0; i-- {
		processor = stages[i](processor)
	}
	return processor
}

// Pipeline dependencies shared by the stages of every tree.
type Pipeline struct {
	Logger    ports.Logger
	Telemetry ports.Telemetry
	Metrics   ports.MetricsRecorder
}

// Build assembles the settings pipeline of one build tree around base.
//
// Stages, outermost first: telemetry, metrics, root cache publish, included cache adoption,
// cache resolution, then base.
func (p Pipeline) Build(base ports.SettingsProcessor, scope *TreeScope) ports.SettingsProcessor {
	return Chain(base,
		func(next ports.SettingsProcessor) ports.SettingsProcessor {
			return NewTelemetryProcessor(next, p.Telemetry)
		},
		func(next ports.SettingsProcessor) ports.SettingsProcessor {
			return NewMetricsProcessor(next, p.Metrics)
		},
		func(next ports.SettingsProcessor) ports.SettingsProcessor {
			return NewRootCachePublisher(next, scope.Caches, scope.Slot, p.Metrics)
		},
		func(next ports.SettingsProcessor) ports.SettingsProcessor {
			return NewIncludedCacheAdopter(next, scope.Slot, p.Logger, p.Metrics)
		},
		func(next ports.SettingsProcessor) ports.SettingsProcessor {
			return NewCacheResolver(next, scope.Caches)
		},
	)
}

// ProcessorFunc adapts a function to ports.SettingsProcessor.
type ProcessorFunc func(
	ctx context.Context,
	build *domain.BuildInvocation,
	location domain.SettingsLocation,
	scope domain.ClassLoaderScope,
	params *domain.StartParameter,
) (*domain.Settings, error)

// Process calls f.
func (f ProcessorFunc) Process(
	ctx context.Context,
	build *domain.BuildInvocation,
	location domain.SettingsLocation,
	scope domain.ClassLoaderScope,
	params *domain.StartParameter,
) (*domain.Settings, error) {
	return f(ctx, build, location, scope, params)
}
