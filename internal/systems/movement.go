package systems

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/sirupsen/logrus"
)

// MoveResult reports what AttemptMove did.
type MoveResult uint8

const (
	MoveMoved MoveResult = iota
	MoveBlocked
	MoveTransitioned
	MoveDead
)

var moveResultToString = map[MoveResult]string{
	MoveMoved:        "MOVED",
	MoveBlocked:      "BLOCKED",
	MoveTransitioned: "TRANSITIONED",
	MoveDead:         "DEAD",
}

func (r MoveResult) String() string {
	if val, ok := moveResultToString[r]; ok {
		return val
	}
	return "UNKNOWN"
}

// AttemptMove steps c one tile in dir. A blocked creature still turns to
// face dir; a dead one does nothing. Stepping onto a move-above or
// move-below tile changes elevation instead of moving.
func AttemptMove(w *domain.GameWorld, c *domain.Creature, dir enums.Direction) MoveResult {
	if c.Dead {
		return MoveDead
	}

	moveLogger := logger.Log.WithFields(logrus.Fields{
		"component": "movement_system",
		"creature":  c.ID,
		"from":      c.Pos,
		"direction": dir,
	})

	origin := c.Pos
	dest := origin.Step(dir)

	if reason := collision(w, c, dest); reason != "" {
		moveLogger.WithField("reason", reason).Debug("Move blocked.")
		c.Moving = false
		c.Turn(dir)
		c.Sitting = w.IsChair(c.Pos, c.Z)
		return MoveBlocked
	}

	if w.MovesAbove(dest, c.Z) {
		if MoveAbove(w, c, dest) {
			return MoveTransitioned
		}
		return abortTransition(w, c, dir)
	}
	if w.MovesBelow(dest, c.Z) {
		if MoveBelow(w, c, dest) {
			return MoveTransitioned
		}
		return abortTransition(w, c, dir)
	}

	setStepTile(w, origin, c.Z, false)
	c.Pos = dest
	setStepTile(w, dest, c.Z, true)

	c.Moving = true
	c.Turn(dir)
	c.Sitting = w.IsChair(c.Pos, c.Z)

	moveLogger.WithField("to", dest).Debug("Creature moved.")
	return MoveMoved
}

func abortTransition(w *domain.GameWorld, c *domain.Creature, dir enums.Direction) MoveResult {
	c.Moving = false
	c.Turn(dir)
	c.Sitting = w.IsChair(c.Pos, c.Z)
	return MoveBlocked
}

// collision returns why dest cannot be entered, or "" when it can.
func collision(w *domain.GameWorld, c *domain.Creature, dest domain.Position) string {
	if !w.Map.InBounds(dest) {
		return "map edge"
	}
	if c.Z == enums.ElevationAboveground && w.IsNull(dest, c.Z) {
		return "open air"
	}
	if w.IsSolid(dest, c.Z) {
		return "solid"
	}
	if other, ok := w.CreatureAt(dest, c.Z); ok && other != c {
		return "creature"
	}
	if p := w.Player; p != nil && p != c && p.Z == c.Z && p.Pos == dest {
		return "player"
	}
	return ""
}

// setStepTile presses (or releases) a wood or stone step tile on the
// tiles layer. Both frames share flags, so no refresh is needed.
func setStepTile(w *domain.GameWorld, pos domain.Position, z enums.Elevation, pressed bool) {
	tm := w.Map.Layer(enums.LayerTiles, z)
	if tm == nil {
		return
	}
	n := tm.Number(pos)
	if n < 0 {
		return
	}

	from, to := 0, 1
	if !pressed {
		from, to = 1, 0
	}

	id := tm.IDs()[n]
	sprites := w.Catalog.Sprites
	for _, pair := range [][2]int{sprites.StepWood, sprites.StepStone} {
		if id == pair[from] {
			tm.UpdateTileID(n, pair[to])
			return
		}
	}
}

// MoveAbove lifts c from a move-above tile at pos to the layer above,
// two rows up and one column left, facing up. When that spot is solid
// the creature lands beside the tile instead, facing down. It returns
// false, leaving c untouched, when no landing is possible.
func MoveAbove(w *domain.GameWorld, c *domain.Creature, pos domain.Position) bool {
	z := c.Z + 1
	if !z.IsValid() {
		return false
	}

	target := pos.Shift(-1, -2)
	dir := enums.DirectionUp
	if !canLand(w, target, z) {
		return false
	}
	if w.IsSolid(target, z) {
		target = pos.Shift(-1, 0)
		dir = enums.DirectionDown
		if !canLand(w, target, z) || w.IsSolid(target, z) {
			return false
		}
	}

	transition(w, c, target, z, dir)
	return true
}

// MoveBelow drops c from a move-below tile at pos to the layer below,
// two rows down and one column right, facing down.
func MoveBelow(w *domain.GameWorld, c *domain.Creature, pos domain.Position) bool {
	z := c.Z - 1
	if !z.IsValid() {
		return false
	}

	target := pos.Shift(1, 2)
	if !canLand(w, target, z) || w.IsSolid(target, z) {
		return false
	}

	transition(w, c, target, z, enums.DirectionDown)
	return true
}

func canLand(w *domain.GameWorld, pos domain.Position, z enums.Elevation) bool {
	return w.Map.InBounds(pos) && !w.IsNull(pos, z)
}

func transition(w *domain.GameWorld, c *domain.Creature, pos domain.Position, z enums.Elevation, dir enums.Direction) {
	logger.Log.WithFields(logrus.Fields{
		"component": "movement_system",
		"creature":  c.ID,
		"from":      c.Pos,
		"from_z":    c.Z,
		"to":        pos,
		"to_z":      z,
	}).Debug("Elevation transition.")

	c.Pos = pos
	c.Z = z
	c.Moving = false
	c.Turn(dir)
	c.Sitting = w.IsChair(pos, z)
}

// UseLadder climbs the ladder at pos when c stands on or next to it.
func UseLadder(w *domain.GameWorld, c *domain.Creature, pos domain.Position) bool {
	if c.Dead || c.Pos.TileDistanceTo(pos) > 1 {
		return false
	}
	if !w.IsLadder(pos, c.Z) {
		return false
	}
	return MoveAbove(w, c, pos)
}

// UseLever flips the lever at pos on the objects layer of c's elevation.
func UseLever(w *domain.GameWorld, c *domain.Creature, pos domain.Position) bool {
	if c.Dead || c.Pos.TileDistanceTo(pos) > 1 {
		return false
	}
	tm := w.Map.Layer(enums.LayerObjects, c.Z)
	if tm == nil {
		return false
	}
	n := tm.Number(pos)
	if n < 0 {
		return false
	}

	lever := w.Catalog.Sprites.Lever
	switch tm.IDs()[n] {
	case lever[0]:
		tm.UpdateTileID(n, lever[1])
	case lever[1]:
		tm.UpdateTileID(n, lever[0])
	default:
		return false
	}
	tm.RefreshTileFlags(n)

	logger.Log.WithFields(logrus.Fields{
		"component": "movement_system",
		"creature":  c.ID,
		"lever":     pos,
		"state":     tm.IDs()[n] == lever[1],
	}).Info("Lever toggled.")
	return true
}
