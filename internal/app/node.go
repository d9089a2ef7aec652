package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/logger"              //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/metrics"             //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/tree"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			tree.NodeID,
			logger.NodeID,
			progrock.NodeID,
			metrics.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	initializer, err := graft.Dep[*tree.Initializer](ctx)
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

	return New(initializer, log, telemetry, recorder), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
