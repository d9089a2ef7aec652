package tree

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/cacheconfig"        //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/weave/internal/adapters/logger"             //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/weave/internal/adapters/metrics"            //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/weave/internal/adapters/settingsfile"       //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/weave/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/weave/internal/core/ports"
)

// NodeID is the unique identifier for the build tree initializer Graft node.
const NodeID graft.ID = "engine.tree"

func init() {
	graft.Register(graft.Node[*Initializer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			settingsfile.NodeID,
			cacheconfig.NodeID,
			logger.NodeID,
			progrock.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Initializer, error) {
			base, err := graft.Dep[ports.SettingsProcessor](ctx)
			if err != nil {
				return nil, err
			}

			caches, err := graft.Dep[ports.CacheConfigurationServiceFactory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[ports.MetricsRecorder](ctx)
			if err != nil {
				return nil, err
			}

			return NewInitializer(base, caches, log, telemetry, recorder), nil
		},
	})
}
