package domain

import "github.com/kevrgithub/tibianer-old/internal/core/types/enums"

// Tile is one cell of one layer.
//
// Number == Pos.X + Pos.Y*size for the map the tile belongs to. Flags are
// derived from ID through the sprite flag table and are never authored.
type Tile struct {
	Number    int             `json:"number"`
	ID        int             `json:"id"`
	Flags     TileFlags       `json:"flags"`
	Pos       Position        `json:"pos"`
	Elevation enums.Elevation `json:"z"`
	Offset    int             `json:"offset"`
}

// PixelPos is the draw position, shifted up-left by the tile offset.
func (t *Tile) PixelPos() Vec2 {
	p := t.Pos.Pixels()
	p.X -= float64(t.Offset)
	p.Y -= float64(t.Offset)
	return p
}
