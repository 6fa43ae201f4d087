package systems

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Shoot queues a projectile from shooter toward target. Aimed shots
// along a row, column or diagonal fly tile to tile; any other target
// gets a precise shot along the true line.
func Shoot(w *domain.GameWorld, shooter *domain.Creature, target domain.Position, kind enums.ProjectileType, speed int) (*domain.Projectile, bool) {
	if shooter.Dead {
		return nil, false
	}
	dir, ok := shooter.Pos.DirectionTo(target)
	if !ok {
		return nil, false
	}

	dx, dy := target.X-shooter.Pos.X, target.Y-shooter.Pos.Y
	precise := dx != 0 && dy != 0 && abs(dx) != abs(dy)

	p := domain.NewProjectile(w.Catalog.Projectile(kind), dir, shooter.Pos, target, shooter.Z, shooter.ID, speed, precise, false)
	w.SpawnProjectile(p)
	shooter.Turn(dir)
	return p, true
}

// ShootDirection fires a projectile straight along dir to its full range.
func ShootDirection(w *domain.GameWorld, shooter *domain.Creature, dir enums.Direction, kind enums.ProjectileType, speed int) (*domain.Projectile, bool) {
	if shooter.Dead || !dir.IsValid() {
		return nil, false
	}
	spec := w.Catalog.Projectile(kind)
	dx, dy := dir.Delta()
	dest := shooter.Pos.Shift(dx*spec.Range, dy*spec.Range)

	p := domain.NewProjectile(spec, dir, shooter.Pos, dest, shooter.Z, shooter.ID, speed, false, false)
	w.SpawnProjectile(p)
	shooter.Turn(dir)
	return p, true
}

// ResolveProjectiles advances every live projectile one tick and drops
// those that left the map, hit a wall, hit a creature or ran out of
// range. Checks other than the map edge happen only on tile crossings.
func ResolveProjectiles(w *domain.GameWorld, sink Sink) {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Advance()
		if resolveProjectile(w, p, sink) {
			kept = append(kept, p)
		}
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}

// resolveProjectile reports whether p keeps flying.
func resolveProjectile(w *domain.GameWorld, p *domain.Projectile, sink Sink) bool {
	pos := p.TilePos()

	if !w.Map.InBounds(pos) {
		return false
	}
	if !p.AtCrossing() {
		return true
	}

	projLogger := logger.Log.WithFields(logrus.Fields{
		"component":  "projectile_system",
		"projectile": p.Spec.Type,
		"tile":       pos,
		"z":          p.Z,
	})

	if w.BlocksProjectiles(pos, p.Z) {
		w.SpawnAnimation(p.Spec.OnBlock, pos, p.Z)
		sink.Sound(w.Catalog.Sounds.Block, pos, p.Z)
		projLogger.Debug("Projectile blocked.")
		return false
	}

	if attacker, ok := w.Resolve(p.Owner); ok {
		if defender, ok := w.CreatureAt(pos, p.Z); ok {
			if ApplyDamage(w, attacker, defender, projectileDamage(w, p), sink) {
				projLogger.WithField("target", defender.ID).Debug("Projectile hit.")
				return false
			}
		}
	}

	if p.TileDistanceTravelled() >= p.Spec.Range {
		miss := w.Catalog.Effects.HitMiss
		if w.IsWater(pos, p.Z) {
			miss = w.Catalog.Effects.WaterSplash
			sink.Sound(w.Catalog.Sounds.Splash, pos, p.Z)
		}
		w.SpawnAnimation(miss, pos, p.Z)
		return false
	}

	return true
}

func projectileDamage(w *domain.GameWorld, p *domain.Projectile) Damage {
	kill := w.Catalog.Effects.PoolRed
	if p.Spec.Type == enums.ProjectileArrowPoison {
		kill = w.Catalog.Effects.PoolGreen
	}
	return Damage{
		Amount:       p.Spec.Damage,
		HitAnimation: p.Spec.OnHit,
		HitDecal:     p.Spec.DecalOnHit,
		KillDecal:    kill,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
