package systems

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// LightSize picks the radius of a light source.
type LightSize uint8

const (
	LightSmall LightSize = iota
	LightMedium
	LightLarge
)

var lightRadius = [...]int{
	LightSmall:  2,
	LightMedium: 3,
	LightLarge:  5,
}

func (s LightSize) Radius() int {
	if int(s) < len(lightRadius) {
		return lightRadius[s]
	}
	return 0
}

// Light is a source drawn into the underground darkness.
type Light struct {
	Tile domain.Position `json:"tile"`
	Size LightSize       `json:"size"`
}

// CollectLights lists the light sources around an underground player:
// the player, nearby creatures, light objects and object-layer tiles,
// projectiles and animations. Nothing is lit above ground.
func CollectLights(w *domain.GameWorld) []Light {
	p := w.Player
	if p == nil || p.Z != enums.ElevationUnderground {
		return nil
	}
	const z = enums.ElevationUnderground

	var lights []Light

	for _, c := range w.Creatures {
		if c.Z != z || (!c.IsPlayer && c.DistanceFromPlayer > domain.DrawDistanceMax) {
			continue
		}
		size := LightMedium
		if c.IsPlayer {
			size = LightLarge
		}
		lights = append(lights, Light{Tile: c.Pos, Size: size})
	}

	flagsFor := w.Catalog.Flags.FlagsFor
	for _, o := range w.Objects {
		if o.Z != z || p.Pos.DistanceTo(o.Pos) > domain.DrawDistanceMax {
			continue
		}
		if !w.IsLight(o.Pos, z) {
			continue
		}
		size := LightMedium
		if flagsFor(o.ID).Any(domain.FlagLadder | domain.FlagMoveAbove) {
			size = LightSmall
		}
		lights = append(lights, Light{Tile: o.Pos, Size: size})
	}

	if tm := w.Map.Layer(enums.LayerObjects, z); tm != nil {
		for _, t := range tm.Tiles() {
			if t.ID == w.Catalog.Sprites.Null {
				continue
			}
			if p.Pos.DistanceTo(t.Pos) > domain.DrawDistanceMax {
				continue
			}
			if !w.IsLight(t.Pos, z) {
				continue
			}
			lights = append(lights, Light{Tile: t.Pos, Size: LightMedium})
		}
	}

	for _, pr := range w.Projectiles {
		if pr.Z == z {
			lights = append(lights, Light{Tile: pr.TilePos(), Size: LightSmall})
		}
	}
	for _, a := range w.Animations {
		if a.Z == z {
			lights = append(lights, Light{Tile: a.Pos, Size: LightSmall})
		}
	}

	return lights
}

// LitTiles shadowcasts every light on the underground layer and returns
// the union of lit tile numbers.
func LitTiles(w *domain.GameWorld, lights []Light) map[int]bool {
	lit := make(map[int]bool)
	for _, l := range lights {
		if !w.Map.InBounds(l.Tile) {
			continue
		}
		castInto(w, l.Tile, enums.ElevationUnderground, l.Size.Radius(), lit)
	}
	return lit
}

// VolumeByDistance scales a cue by its tile distance from the player:
// full volume on top of the player, silent at twice the draw distance.
func VolumeByDistance(distance float64) float64 {
	v := 100 * (1 - distance/(2*domain.DrawDistanceMax))
	return min(max(v, 0), 100)
}
