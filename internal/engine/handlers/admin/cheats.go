package admin

import (
	"fmt"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/internal/engine/handlers"
	"github.com/kevrgithub/tibianer-old/pkg/api"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleSpawn puts a creature from a template on the tile the player
// faces, or on the first free neighbour.
func HandleSpawn(ctx handlers.Context, p api.SpawnPayload) (handlers.Result, error) {
	tmpl, ok := catalog.Template(p.Template)
	if !ok {
		return handlers.Fail(fmt.Sprintf("Unknown template %q.", p.Template)), nil
	}

	a := ctx.Actor
	candidates := []enums.Direction{a.Direction}
	for d := enums.DirectionUp; d <= enums.DirectionDownRight; d++ {
		if d != a.Direction {
			candidates = append(candidates, d)
		}
	}

	for _, d := range candidates {
		pos := a.Pos.Step(d)
		if !free(ctx.World, pos, a.Z) {
			continue
		}

		c := tmpl.Spawn(pos, a.Z)
		id := ctx.World.SpawnCreature(c)
		logger.Log.WithFields(logrus.Fields{
			"component": "admin",
			"template":  tmpl.Name,
			"id":        id,
			"pos":       pos,
			"z":         a.Z,
		}).Info("Creature spawned.")
		return handlers.Result{Msg: fmt.Sprintf("Spawned %s.", tmpl.Name), MsgType: handlers.MsgInfo}, nil
	}

	return handlers.Fail("No room to spawn."), nil
}

// HandleTeleport moves the player to any landable tile.
func HandleTeleport(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	pos := domain.Position{X: p.X, Y: p.Y}
	z := ctx.Actor.Z
	if p.Z != nil {
		z = enums.Elevation(*p.Z)
	}

	if !ctx.World.Map.InBounds(pos) || ctx.World.IsNull(pos, z) {
		return handlers.Fail("Teleport failed: nothing to stand on."), nil
	}

	a := ctx.Actor
	a.Pos = pos
	a.Z = z
	a.Moving = false
	a.Sitting = ctx.World.IsChair(pos, z)

	return handlers.Result{Msg: fmt.Sprintf("Teleported to %d,%d (%s).", pos.X, pos.Y, z), MsgType: handlers.MsgInfo}, nil
}

func free(w *domain.GameWorld, pos domain.Position, z enums.Elevation) bool {
	if !w.Map.InBounds(pos) || w.IsNull(pos, z) || w.IsSolid(pos, z) {
		return false
	}
	_, taken := w.CreatureAt(pos, z)
	return !taken
}
