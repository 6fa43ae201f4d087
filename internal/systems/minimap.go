package systems

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// MiniMapColor is the category a minimap quad is painted with.
type MiniMapColor uint8

const (
	MiniMapSolid MiniMapColor = iota
	MiniMapWater
	MiniMapLava
	MiniMapTransition
	MiniMapNeutral
	MiniMapGood
	MiniMapEvil
	MiniMapPlayer
)

var miniMapColorToString = map[MiniMapColor]string{
	MiniMapSolid:      "SOLID",
	MiniMapWater:      "WATER",
	MiniMapLava:       "LAVA",
	MiniMapTransition: "TRANSITION",
	MiniMapNeutral:    "NEUTRAL",
	MiniMapGood:       "GOOD",
	MiniMapEvil:       "EVIL",
	MiniMapPlayer:     "PLAYER",
}

func (c MiniMapColor) String() string {
	if val, ok := miniMapColorToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// MiniMapQuad is one tile-sized quad of the minimap.
type MiniMapQuad struct {
	Tile  domain.Position `json:"tile"`
	Color MiniMapColor    `json:"color"`
}

const miniMapTileFlags = domain.FlagSolid | domain.FlagWater | domain.FlagLava | domain.FlagsTransition

// TileColor classifies flags for the minimap. Later categories win:
// a solid water tile is water, a solid ladder is a transition.
func TileColor(flags domain.TileFlags) (MiniMapColor, bool) {
	if !flags.Any(miniMapTileFlags) {
		return 0, false
	}
	color := MiniMapSolid
	if flags.Any(domain.FlagWater) {
		color = MiniMapWater
	}
	if flags.Any(domain.FlagLava) {
		color = MiniMapLava
	}
	if flags.Any(domain.FlagsTransition) {
		color = MiniMapTransition
	}
	return color, true
}

// TeamColor is the minimap color of a creature.
func TeamColor(t enums.Team) MiniMapColor {
	switch t {
	case enums.TeamGood:
		return MiniMapGood
	case enums.TeamEvil:
		return MiniMapEvil
	}
	return MiniMapNeutral
}

// BuildMiniMap returns the quads for the player's elevation: notable
// tiles of the tiles and objects layers, placed objects and creatures
// within twice the draw distance, and finally the player.
func BuildMiniMap(w *domain.GameWorld) []MiniMapQuad {
	p := w.Player
	if p == nil {
		return nil
	}

	var quads []MiniMapQuad
	sprites := w.Catalog.Sprites

	for _, kind := range []enums.LayerKind{enums.LayerTiles, enums.LayerObjects} {
		tm := w.Map.Layer(kind, p.Z)
		if tm == nil {
			continue
		}
		for _, t := range tm.Tiles() {
			if t.ID == sprites.Null || t.ID == sprites.Blank {
				continue
			}
			if color, ok := TileColor(t.Flags); ok {
				quads = append(quads, MiniMapQuad{Tile: t.Pos, Color: color})
			}
		}
	}

	radius := float64(domain.DrawDistanceMax * 2)

	for _, o := range w.Objects {
		if o.Z != p.Z || p.Pos.DistanceTo(o.Pos) > radius {
			continue
		}
		flags := w.Catalog.Flags.FlagsFor(o.ID)
		if !flags.Any(domain.FlagSolid | domain.FlagsTransition) {
			continue
		}
		color := MiniMapSolid
		if flags.Any(domain.FlagsTransition) {
			color = MiniMapTransition
		}
		quads = append(quads, MiniMapQuad{Tile: o.Pos, Color: color})
	}

	for _, c := range w.Creatures {
		if c.IsPlayer || c.Dead || c.Z != p.Z || c.DistanceFromPlayer > radius {
			continue
		}
		quads = append(quads, MiniMapQuad{Tile: c.Pos, Color: TeamColor(c.Team)})
	}

	return append(quads, MiniMapQuad{Tile: p.Pos, Color: MiniMapPlayer})
}
