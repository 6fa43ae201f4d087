package actions

import (
	"github.com/kevrgithub/tibianer-old/internal/engine/handlers"
	"github.com/kevrgithub/tibianer-old/internal/systems"
	"github.com/kevrgithub/tibianer-old/pkg/api"
)

// HandleUseLadder climbs a ladder on or next to the player.
func HandleUseLadder(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	pos, z := target(ctx, p)
	if res := systems.ValidateTarget(ctx.World, ctx.Actor, pos, z, systems.ReachAdjacent, false); !res.Valid {
		return handlers.Fail(res.Message), nil
	}
	if !ctx.World.IsLadder(pos, z) {
		return handlers.Fail("There is no ladder here."), nil
	}
	if !systems.UseLadder(ctx.World, ctx.Actor, pos) {
		return handlers.Fail("There is no room above."), nil
	}

	ctx.Sink.Sound(ctx.World.Catalog.Sounds.Ladder, ctx.Actor.Pos, ctx.Actor.Z)
	return handlers.EmptyResult(), nil
}

// HandleUseLever flips a lever on or next to the player.
func HandleUseLever(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	pos, z := target(ctx, p)
	if res := systems.ValidateTarget(ctx.World, ctx.Actor, pos, z, systems.ReachAdjacent, false); !res.Valid {
		return handlers.Fail(res.Message), nil
	}
	if !systems.UseLever(ctx.World, ctx.Actor, pos) {
		return handlers.Fail("There is no lever here."), nil
	}

	ctx.Sink.Sound(ctx.World.Catalog.Sounds.Lever, pos, z)
	return handlers.EmptyResult(), nil
}
