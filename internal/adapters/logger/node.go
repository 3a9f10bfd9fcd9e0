package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/semvercheck/internal/core/ports"
)

// NodeID identifies the logger in the Graft graph.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
