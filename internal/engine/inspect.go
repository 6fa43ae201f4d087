package engine

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// LayerReport is one layer's tile in a TileReport.
type LayerReport struct {
	Kind  string `json:"kind"`
	ID    int    `json:"id"`
	Flags string `json:"flags"`
}

// TileReport describes everything on one tile, for debugging.
type TileReport struct {
	Pos      domain.Position  `json:"pos"`
	Z        enums.Elevation  `json:"z"`
	Flags    string           `json:"flags"`
	Layers   []LayerReport    `json:"layers"`
	Objects  []domain.Object  `json:"objects,omitempty"`
	Creature *domain.Creature `json:"creature,omitempty"`
}

// InspectTile reports the layers, objects and creature at (pos, z). The
// bool is false off the map.
func (g *Game) InspectTile(pos domain.Position, z enums.Elevation) (TileReport, bool) {
	w := g.World
	if !w.Map.InBounds(pos) || !z.IsValid() {
		return TileReport{}, false
	}

	r := TileReport{
		Pos:   pos,
		Z:     z,
		Flags: w.TileFlags(pos, z, domain.FilterAll).String(),
	}
	for k := enums.LayerTiles; k <= enums.LayerObjects; k++ {
		tm := w.Map.Layer(k, z)
		if tm == nil {
			continue
		}
		if t, ok := tm.TileAt(pos); ok {
			r.Layers = append(r.Layers, LayerReport{Kind: k.String(), ID: t.ID, Flags: t.Flags.String()})
		}
	}
	for _, o := range w.Objects {
		if o.Pos == pos && o.Z == z {
			r.Objects = append(r.Objects, *o)
		}
	}
	if c, ok := w.CreatureAt(pos, z); ok {
		cp := *c
		r.Creature = &cp
	}
	return r, true
}

// CreatureSnapshot copies the live roster.
func (g *Game) CreatureSnapshot() []domain.Creature {
	out := make([]domain.Creature, 0, len(g.World.Creatures))
	for _, c := range g.World.Creatures {
		out = append(out, *c)
	}
	return out
}
