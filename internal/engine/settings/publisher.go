package settings

import (
	"context"
	"errors"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

// RootCachePublisher publishes the root build's cache configuration to the tree's slot.
//
// Included builds adopt the root's cache configuration, so it has to be final before any of
// them processes its settings. The publisher runs the rest of the chain first and publishes
// only for the build without a parent.
type RootCachePublisher struct {
	next    ports.SettingsProcessor
	caches  ports.CacheConfigurationService
	slot    *Slot
	metrics ports.MetricsRecorder
}

// NewRootCachePublisher creates a publisher wrapping next.
func NewRootCachePublisher(
	next ports.SettingsProcessor,
	caches ports.CacheConfigurationService,
	slot *Slot,
	metrics ports.MetricsRecorder,
) *RootCachePublisher {
	return &RootCachePublisher{
		next:    next,
		caches:  caches,
		slot:    slot,
		metrics: metrics,
	}
}

// Process implements ports.SettingsProcessor.
func (p *RootCachePublisher) Process(
	ctx context.Context,
	build *domain.BuildInvocation,
	location domain.SettingsLocation,
	scope domain.ClassLoaderScope,
	params *domain.StartParameter,
) (*domain.Settings, error) {
	settings, err := p.next.Process(ctx, build, location, scope, params)
	if err != nil {
		return nil, err
	}

	if !build.IsRoot() {
		return settings, nil
	}

	cfg, err := p.caches.CacheConfiguration(build)
	if err != nil {
		return nil, errors.Join(domain.ErrCacheConfigurationUnavailable, buildError(err, build))
	}

	if err := p.slot.Set(cfg); err != nil {
		return nil, errors.Join(domain.ErrRootInvariantViolated, buildError(err, build))
	}
	p.metrics.IncCachePublished()

	return settings, nil
}

// buildError attaches the build path to err. err stays matchable with errors.Is.
func buildError(err error, build *domain.BuildInvocation) error {
	return zerr.With(zerr.Wrap(err, ""), "build", build.Path.String())
}
