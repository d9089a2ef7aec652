// Package settings implements the settings processing pipeline of a build tree.
package settings

import (
	"sync/atomic"

	"go.trai.ch/weave/internal/core/domain"
)

// Slot is a single-assignment container for the root build's cache configuration.
// One slot exists per build tree. It is written once by the root build and read by
// included builds afterwards. Reads never block.
type Slot struct {
	value atomic.Pointer[domain.CacheConfiguration]
}

// NewSlot creates an empty slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Set publishes cfg. It fails with domain.ErrCacheConfigurationAlreadySet if the slot
// already holds a value, in which case the held value is kept.
func (s *Slot) Set(cfg domain.CacheConfiguration) error {
	published := cfg
	if !s.value.CompareAndSwap(nil, &published) {
		return domain.ErrCacheConfigurationAlreadySet
	}
	return nil
}

// Get returns the published configuration, or domain.ErrCacheConfigurationNotYetAvailable
// if the root build has not published yet.
func (s *Slot) Get() (domain.CacheConfiguration, error) {
	cfg := s.value.Load()
	if cfg == nil {
		return domain.CacheConfiguration{}, domain.ErrCacheConfigurationNotYetAvailable
	}
	return *cfg, nil
}

// IsSet reports whether a configuration was published.
func (s *Slot) IsSet() bool {
	return s.value.Load() != nil
}
