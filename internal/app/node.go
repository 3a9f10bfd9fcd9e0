package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/semvercheck/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/semvercheck/internal/adapters/semver" //nolint:depguard // Wired in app layer
	"go.trai.ch/semvercheck/internal/core/ports"
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
		DependsOn: []graft.ID{semver.NodeID},
		Run: func(ctx context.Context) (*App, error) {
			validator, err := graft.Dep[ports.Validator](ctx)
			if err != nil {
				return nil, err
			}
			return New(validator), nil
		},
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

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(a, log), nil
}
