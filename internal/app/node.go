package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hdrview/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrview/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrview/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrview/internal/adapters/naga"               //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrview/internal/adapters/rgbe"               //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrview/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrview/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/hdrview/internal/core/ports"
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
			config.NodeID,
			logger.NodeID,
			watcher.NodeID,
			fs.WalkerNodeID,
			rgbe.NodeID,
			naga.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	watchers, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}
	decoder, err := graft.Dep[ports.ImageDecoder](ctx)
	if err != nil {
		return nil, err
	}
	device, err := graft.Dep[*naga.Device](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, log, WatcherFactory(watchers), walker, decoder, device, telemetry), nil
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
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{App: app, Logger: log, Telemetry: telemetry}, nil
}
