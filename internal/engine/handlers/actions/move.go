package actions

import (
	"fmt"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/engine/handlers"
	"github.com/kevrgithub/tibianer-old/internal/systems"
	"github.com/kevrgithub/tibianer-old/pkg/api"
)

// HandleMove steps the player one tile. A blocked step only turns the
// player, silently.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	dir, ok := enums.DirectionFromDelta(p.Dx, p.Dy)
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("no direction for step (%d,%d)", p.Dx, p.Dy)
	}

	if systems.AttemptMove(ctx.World, ctx.Actor, dir) == systems.MoveDead {
		return handlers.Fail(systems.PlayerDeathMessage), nil
	}
	return handlers.EmptyResult(), nil
}

func HandleTurn(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	dir, ok := enums.DirectionFromDelta(p.Dx, p.Dy)
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("no direction for step (%d,%d)", p.Dx, p.Dy)
	}
	if ctx.Actor.Dead {
		return handlers.Fail(systems.PlayerDeathMessage), nil
	}

	ctx.Actor.Turn(dir)
	return handlers.EmptyResult(), nil
}
