package domain

import "github.com/kevrgithub/tibianer-old/internal/core/types/enums"

// Position is a tile coordinate (column, row).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vec2 is a pixel-space vector used by projectiles and the renderer.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Thing is the placement capability shared by objects, creatures,
// animations and projectiles. Draw ordering only needs these.
type Thing interface {
	Kind() enums.ThingKind
	TilePos() Position
	Elevation() enums.Elevation
	SpriteID() int
	// PixelPos is the top-left of the sprite in world pixels.
	PixelPos() Vec2
}
