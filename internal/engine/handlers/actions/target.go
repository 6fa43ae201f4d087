package actions

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/internal/engine/handlers"
	"github.com/kevrgithub/tibianer-old/pkg/api"
)

// target resolves a tile payload, defaulting to the actor's elevation.
func target(ctx handlers.Context, p api.PositionPayload) (domain.Position, enums.Elevation) {
	z := ctx.Actor.Z
	if p.Z != nil {
		z = enums.Elevation(*p.Z)
	}
	return domain.Position{X: p.X, Y: p.Y}, z
}
