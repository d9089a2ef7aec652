package settings

import (
	"context"
	"fmt"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// IncludedCacheAdopter makes included builds use the cache configuration published by the root.
// A build cache block declared by an included build is ignored with a warning.
type IncludedCacheAdopter struct {
	next    ports.SettingsProcessor
	slot    *Slot
	logger  ports.Logger
	metrics ports.MetricsRecorder
}

// NewIncludedCacheAdopter creates an adopter wrapping next.
func NewIncludedCacheAdopter(
	next ports.SettingsProcessor,
	slot *Slot,
	logger ports.Logger,
	metrics ports.MetricsRecorder,
) *IncludedCacheAdopter {
	return &IncludedCacheAdopter{
		next:    next,
		slot:    slot,
		logger:  logger,
		metrics: metrics,
	}
}

// Process implements ports.SettingsProcessor.
func (a *IncludedCacheAdopter) Process(
	ctx context.Context,
	build *domain.BuildInvocation,
	location domain.SettingsLocation,
	scope domain.ClassLoaderScope,
	params *domain.StartParameter,
) (*domain.Settings, error) {
	settings, err := a.next.Process(ctx, build, location, scope, params)
	if err != nil {
		return nil, err
	}

	if build.IsRoot() {
		return settings, nil
	}

	rootCfg, err := a.slot.Get()
	if err != nil {
		return nil, buildError(err, build)
	}

	if settings.DeclaredCache != nil {
		settings.CacheDeclarationIgnored = true
		a.logger.Warn(fmt.Sprintf(
			"build cache configuration of included build %s is ignored, the root build's configuration is used",
			build.Path,
		))
	}

	settings.EffectiveCache = &rootCfg
	a.metrics.IncCacheAdopted()

	return settings, nil
}
