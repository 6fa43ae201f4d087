package systems

import (
	"time"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// Water animates only while some water lies inside this window around
// the player.
const (
	WaterWindowHalfWidth  = domain.NumTilesFromCenterX
	WaterWindowHalfHeight = domain.NumTilesFromCenterY
)

// UpdateCreatures refreshes the distance cache and corpse timers.
func UpdateCreatures(w *domain.GameWorld, dt time.Duration) {
	p := w.Player
	for _, c := range w.Creatures {
		if p != nil && c != p {
			c.DistanceFromPlayer = p.Pos.DistanceTo(c.Pos)
		}
		c.Update(dt)
	}
}

// AdvanceAnimations steps every live animation and decal. Finished ones
// stay listed until GameWorld.Cull.
func AdvanceAnimations(w *domain.GameWorld, dt time.Duration) {
	for _, a := range w.Animations {
		a.Update(dt)
	}
	for _, d := range w.Decals {
		d.Update(dt)
	}
}

// AnimateScenery advances ground water when the player can see some and
// cycles animated objects that are visible and within draw distance. It
// reports whether water moved.
func AnimateScenery(w *domain.GameWorld) bool {
	p := w.Player
	if p == nil {
		return false
	}

	for _, o := range w.Objects {
		if !ElevationVisible(p.Z, o.Z) || p.Pos.DistanceTo(o.Pos) > domain.DrawDistanceMax {
			continue
		}
		o.Animate(w.Catalog.Sprites.AnimatedObjects)
	}

	if p.Z == enums.ElevationUnderground {
		return false
	}
	water := w.Map.Layer(enums.LayerTiles, enums.ElevationGround)
	if water == nil || !water.HasWaterNear(p.Pos, WaterWindowHalfWidth, WaterWindowHalfHeight) {
		return false
	}
	water.AnimateWater()
	return true
}

// RoofVisible reports whether the above-ground layers are drawn: they
// are hidden while the player stands on the ground under a roof within
// RoofHideRadius tiles.
func RoofVisible(w *domain.GameWorld) bool {
	p := w.Player
	if p == nil || p.Z != enums.ElevationGround {
		return true
	}
	tm := w.Map.Layer(enums.LayerTiles, enums.ElevationAboveground)
	if tm == nil {
		return true
	}
	r := domain.RoofHideRadius
	for x := p.Pos.X - r; x <= p.Pos.X+r; x++ {
		for y := p.Pos.Y - r; y <= p.Pos.Y+r; y++ {
			if t, ok := tm.TileAt(domain.Position{X: x, Y: y}); ok && t.ID != w.Catalog.Sprites.Null {
				return false
			}
		}
	}
	return true
}
