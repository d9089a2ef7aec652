package settingsfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/weave/internal/core/ports"
)

// NodeID is the unique identifier for the base settings processor Graft node.
const NodeID graft.ID = "adapter.settings_file"

func init() {
	graft.Register(graft.Node[ports.SettingsProcessor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsProcessor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProcessor(log), nil
		},
	})
}
