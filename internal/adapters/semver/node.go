package semver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/semvercheck/internal/core/ports"
)

// NodeID is the unique identifier for the validator Graft node.
const NodeID graft.ID = "adapter.semver_validator"

func init() {
	graft.Register(graft.Node[ports.Validator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Validator, error) {
			return NewMatcher(), nil
		},
	})
}
