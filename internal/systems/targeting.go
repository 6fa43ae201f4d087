package systems

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// Reach limits of player actions, in tiles.
const (
	ReachAdjacent = 1.5
)

// ValidationResult is the outcome of a targeting check.
type ValidationResult struct {
	Valid   bool
	Message string // Shown to the player when Valid is false.
}

// ValidateTarget checks whether actor can act on the tile at (pos, z):
// same elevation, within rangeLimit, and with a clear line when needLOS
// is set.
func ValidateTarget(w *domain.GameWorld, actor *domain.Creature, pos domain.Position, z enums.Elevation, rangeLimit float64, needLOS bool) ValidationResult {
	if actor.Dead {
		return ValidationResult{Message: "You are dead."}
	}
	if !w.Map.InBounds(pos) {
		return ValidationResult{Message: "Target is off the map."}
	}
	if z != actor.Z {
		return ValidationResult{Message: "Target is too far away."}
	}

	dist := actor.Pos.DistanceTo(pos)
	if dist > rangeLimit {
		return ValidationResult{Message: "Target is too far away."}
	}

	if needLOS && dist > 0 && !HasLineOfSight(w, actor.Pos, pos, z) {
		return ValidationResult{Message: "You cannot see the target."}
	}

	return ValidationResult{Valid: true}
}
