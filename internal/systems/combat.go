package systems

import (
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PlayerDeathMessage is logged when the player dies.
const PlayerDeathMessage = "You are dead."

// Damage is one hit: the amount and the effects it leaves behind.
type Damage struct {
	Amount       int
	HitAnimation domain.AnimationID
	HitDecal     domain.AnimationID
	KillDecal    domain.AnimationID
}

// CanDamage applies the team rules: nobody hurts themselves, their own
// team, a neutral creature or a corpse.
func CanDamage(attacker, defender *domain.Creature) bool {
	if attacker == nil || defender == nil {
		return false
	}
	if attacker == defender {
		return false
	}
	if attacker.Team == defender.Team {
		return false
	}
	if defender.Team.IsNeutral() {
		return false
	}
	return !defender.Dead
}

// ApplyDamage resolves a hit from attacker on defender. It returns false
// when the hit is rejected. An accepted hit spawns the hit animation and
// exactly one decal: the hit decal if the defender survives, the kill
// decal if it does not.
func ApplyDamage(w *domain.GameWorld, attacker, defender *domain.Creature, dmg Damage, sink Sink) bool {
	if !CanDamage(attacker, defender) {
		return false
	}

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     defender.ID,
		"target_name":   defender.Name,
	})

	hpBefore := defender.HP
	died := defender.TakeDamage(dmg.Amount)

	w.SpawnAnimation(dmg.HitAnimation, defender.Pos, defender.Z)

	combatLogger.WithFields(logrus.Fields{
		"damage":      dmg.Amount,
		"hp_before":   hpBefore,
		"hp_after":    defender.HP,
		"target_died": died,
	}).Debug("Hit resolved.")

	if !died {
		w.SpawnDecal(dmg.HitDecal, defender.Pos, defender.Z)
		sink.Sound(w.Catalog.Sounds.Hit, defender.Pos, defender.Z)
		return true
	}

	w.SpawnDecal(dmg.KillDecal, defender.Pos, defender.Z)
	sink.Sound(w.Catalog.Sounds.Death, defender.Pos, defender.Z)

	if defender.IsPlayer {
		sink.Message(PlayerDeathMessage)
	}
	combatLogger.Info("Creature killed.")
	return true
}
