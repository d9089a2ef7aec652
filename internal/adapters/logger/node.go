package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			lg := New()
			if os.Getenv(domain.LogFormatEnv) == "json" {
				lg.SetJSON(true)
			}
			return lg, nil
		},
	})
}
