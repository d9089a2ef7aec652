package cacheconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/core/ports"
)

// NodeID is the unique identifier for the cache configuration service factory Graft node.
const NodeID graft.ID = "adapter.cache_configuration"

func init() {
	graft.Register(graft.Node[ports.CacheConfigurationServiceFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheConfigurationServiceFactory, error) {
			return NewFactory(), nil
		},
	})
}
