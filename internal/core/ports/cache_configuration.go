package ports

import "go.trai.ch/weave/internal/core/domain"

// CacheConfigurationService holds the resolved build cache configuration of every build in a tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache_configuration.go -destination=mocks/mock_cache_configuration.go -package=mocks
type CacheConfigurationService interface {
	// Record stores the resolved configuration of a build.
	Record(build *domain.BuildInvocation, cfg domain.CacheConfiguration)

	// CacheConfiguration returns the resolved configuration of a build.
	// It returns domain.ErrCacheConfigurationNotResolved if none was recorded.
	CacheConfiguration(build *domain.BuildInvocation) (domain.CacheConfiguration, error)
}

// CacheConfigurationServiceFactory creates a fresh service for each build tree.
type CacheConfigurationServiceFactory func() CacheConfigurationService
