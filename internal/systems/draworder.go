package systems

import (
	"cmp"
	"slices"

	"github.com/kevrgithub/tibianer-old/internal/core/types"
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// HealthBar is drawn above hostile or friendly creatures near the player.
type HealthBar struct {
	Percent int        `json:"percent"`
	Team    enums.Team `json:"team"`
}

// Drawable is one entry of the ordered draw list.
type Drawable struct {
	Kind     enums.ThingKind `json:"kind"`
	ID       types.EntityID  `json:"id,omitempty"`
	SpriteID int             `json:"spriteId"`
	Tile     domain.Position `json:"tile"`
	Pixel    domain.Vec2     `json:"pixel"`
	Z        enums.Elevation `json:"z"`
	Offset   int             `json:"offset,omitempty"`
	Bar      *HealthBar      `json:"bar,omitempty"`
	Dead     bool            `json:"dead,omitempty"`
}

// ElevationVisible reports whether things on z are drawn while the player
// stands on playerZ. Underground hides everything else and vice versa.
func ElevationVisible(playerZ, z enums.Elevation) bool {
	if playerZ == enums.ElevationUnderground {
		return z == enums.ElevationUnderground
	}
	return z != enums.ElevationUnderground
}

// BuildDrawList filters every live entity by elevation and draw
// distance and returns them stable-sorted by tile row. Within a row the
// order is decals, corpses, objects, creatures, projectiles, animations.
func BuildDrawList(w *domain.GameWorld) []Drawable {
	p := w.Player
	if p == nil {
		return nil
	}

	visible := func(t domain.Thing) bool {
		return ElevationVisible(p.Z, t.Elevation())
	}
	near := func(t domain.Thing) bool {
		return p.Pos.DistanceTo(t.TilePos()) <= domain.DrawDistanceMax
	}

	list := make([]Drawable, 0, len(w.Decals)+len(w.Creatures)+len(w.Objects)+len(w.Projectiles)+len(w.Animations))

	for _, d := range w.Decals {
		if visible(d) && near(d) {
			list = append(list, thingDrawable(w, d))
		}
	}
	for _, c := range w.Creatures {
		if c.Dead && visible(c) && near(c) {
			list = append(list, creatureDrawable(w, c))
		}
	}
	for _, o := range w.Objects {
		if visible(o) && near(o) {
			d := thingDrawable(w, o)
			if slices.Contains(w.Catalog.Sprites.FixDrawObjects, o.ID) {
				d.Pixel.X += domain.TileSize
			}
			list = append(list, d)
		}
	}
	for _, c := range w.Creatures {
		if !c.Dead && visible(c) && near(c) {
			list = append(list, creatureDrawable(w, c))
		}
	}
	for _, pr := range w.Projectiles {
		if visible(pr) && near(pr) {
			list = append(list, thingDrawable(w, pr))
		}
	}
	for _, a := range w.Animations {
		if visible(a) && near(a) {
			list = append(list, thingDrawable(w, a))
		}
	}

	slices.SortStableFunc(list, func(a, b Drawable) int {
		return cmp.Compare(a.Tile.Y, b.Tile.Y)
	})
	return list
}

func thingDrawable(w *domain.GameWorld, t domain.Thing) Drawable {
	d := Drawable{
		Kind:     t.Kind(),
		SpriteID: t.SpriteID(),
		Tile:     t.TilePos(),
		Pixel:    t.PixelPos(),
		Z:        t.Elevation(),
	}
	if w.Catalog.Flags.FlagsFor(d.SpriteID).Any(domain.FlagOffset) {
		d.Offset = domain.TileDrawOffset
	}
	return d
}

func creatureDrawable(w *domain.GameWorld, c *domain.Creature) Drawable {
	d := thingDrawable(w, c)
	d.ID = c.ID
	d.Dead = c.Dead
	if c.Sitting {
		d.Offset = domain.TileDrawOffset
	}
	if !c.Dead && !c.IsPlayer && !c.Team.IsNeutral() && c.HPMax > 0 && c.Z == w.Player.Z {
		d.Bar = &HealthBar{Percent: c.HP * 100 / c.HPMax, Team: c.Team}
	}
	return d
}
