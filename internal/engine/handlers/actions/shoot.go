package actions

import (
	"math"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/engine/handlers"
	"github.com/kevrgithub/tibianer-old/internal/systems"
	"github.com/kevrgithub/tibianer-old/pkg/api"
)

// HandleShoot fires the player's team projectile at a tile on the same
// elevation. It flies its full range whatever the distance to the tile.
func HandleShoot(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	pos, z := target(ctx, p)
	if res := systems.ValidateTarget(ctx.World, ctx.Actor, pos, z, math.MaxFloat64, false); !res.Valid {
		return handlers.Fail(res.Message), nil
	}

	kind := enums.ProjectileForTeam(ctx.Actor.Team)
	if _, ok := systems.Shoot(ctx.World, ctx.Actor, pos, kind, ctx.ProjectileSpeed); !ok {
		return handlers.Fail("You cannot shoot there."), nil
	}

	ctx.Sink.Sound(ctx.World.Catalog.Projectile(kind).Sound, ctx.Actor.Pos, ctx.Actor.Z)
	return handlers.EmptyResult(), nil
}
