// Package cacheconfig holds the resolved build cache configuration of each build in a tree.
package cacheconfig

import (
	"sync"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

// Service implements ports.CacheConfigurationService with a thread-safe in-memory map.
// One service exists per build tree.
type Service struct {
	mu      sync.RWMutex
	configs map[domain.BuildPath]domain.CacheConfiguration
}

// NewService creates an empty Service.
func NewService() *Service {
	return &Service{
		configs: make(map[domain.BuildPath]domain.CacheConfiguration),
	}
}

// NewFactory returns a factory creating a fresh Service per build tree.
func NewFactory() ports.CacheConfigurationServiceFactory {
	return func() ports.CacheConfigurationService {
		return NewService()
	}
}

// Record stores the resolved configuration of a build, replacing an earlier one.
func (s *Service) Record(build *domain.BuildInvocation, cfg domain.CacheConfiguration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.configs[build.Path] = cfg
}

// CacheConfiguration returns the recorded configuration of a build.
func (s *Service) CacheConfiguration(build *domain.BuildInvocation) (domain.CacheConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[build.Path]
	if !ok {
		return domain.CacheConfiguration{}, zerr.With(domain.ErrCacheConfigurationNotResolved, "build", build.Path.String())
	}
	return cfg, nil
}
