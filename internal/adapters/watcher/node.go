package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/hdrview/internal/adapters/logger"
	"go.trai.ch/hdrview/internal/core/ports"
)

// NodeID is the unique identifier for the watcher factory Graft node.
const NodeID graft.ID = "adapter.watcher"

// Factory creates a path watcher with the given debounce window.
// The window comes from the run's settings, so watchers are built per run.
type Factory func(window time.Duration) (ports.PathWatcher, error)

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(window time.Duration) (ports.PathWatcher, error) {
				return New(log, window)
			}, nil
		},
	})
}
