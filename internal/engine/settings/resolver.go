package settings

import (
	"context"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// CacheResolver resolves the cache configuration of every build and records it in the
// tree's cache configuration service.
type CacheResolver struct {
	next   ports.SettingsProcessor
	caches ports.CacheConfigurationService
}

// NewCacheResolver creates a resolver wrapping next.
func NewCacheResolver(next ports.SettingsProcessor, caches ports.CacheConfigurationService) *CacheResolver {
	return &CacheResolver{next: next, caches: caches}
}

// Process implements ports.SettingsProcessor.
func (r *CacheResolver) Process(
	ctx context.Context,
	build *domain.BuildInvocation,
	location domain.SettingsLocation,
	scope domain.ClassLoaderScope,
	params *domain.StartParameter,
) (*domain.Settings, error) {
	settings, err := r.next.Process(ctx, build, location, scope, params)
	if err != nil {
		return nil, err
	}

	cfg := ResolveCacheConfiguration(build, settings.DeclaredCache, params)
	r.caches.Record(build, cfg)

	if build.IsRoot() {
		settings.EffectiveCache = &cfg
	}

	return settings, nil
}

// ResolveCacheConfiguration applies defaults and start parameters to a declared configuration.
// Disabling the build cache turns off both stores; offline mode turns off the remote store.
func ResolveCacheConfiguration(
	build *domain.BuildInvocation,
	declared *domain.CacheConfiguration,
	params *domain.StartParameter,
) domain.CacheConfiguration {
	cfg := domain.DefaultCacheConfiguration(build.Dir)
	if declared != nil {
		cfg = *declared
	}

	if params == nil {
		return cfg
	}
	if !params.BuildCacheEnabled {
		cfg.Local.Enabled = false
		cfg.Remote.Enabled = false
	}
	if params.Offline {
		cfg.Remote.Enabled = false
	}
	return cfg
}
