package worldgen

import (
	"math/rand"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
)

// Generation defaults
const (
	DefaultSize  = 64
	MaxRooms     = 8
	MinRoomSize  = 4
	MaxRoomSize  = 9
	MinLevelSize = 40
)

// Generate builds the demo level: a walled meadow with a pond and a
// roofed house on the ground, a hole down into a room-and-corridor cellar
// and a ladder back up.
func Generate(size int, cat *domain.Catalog, rng *rand.Rand) (*Level, error) {
	if size < MinLevelSize {
		size = MinLevelSize
	}

	ground := enums.ElevationGround
	under := enums.ElevationUnderground
	above := enums.ElevationAboveground

	house := Rect{X: size/2 + 4, Y: size/2 - 10, W: 8, H: 6}
	hole := domain.Position{X: size/2 - 8, Y: size/2 + 6}
	ladder := hole.Shift(2, 2)

	b := NewLevel(size, cat, rng).
		Fill(ground, enums.LayerTiles, catalog.SpriteGrass).
		Walls(ground, Rect{W: size, H: size}, catalog.SpriteWallStone).
		Pond(Rect{X: 6, Y: 6, W: 6, H: 4}).
		FillRect(ground, enums.LayerTiles, house, catalog.SpriteWoodFloor).
		Walls(ground, house, catalog.SpriteWallWood).
		Set(ground, enums.LayerObjects, domain.Position{X: house.X + house.W/2, Y: house.Y + house.H - 1}, cat.Sprites.Null).
		Set(ground, enums.LayerTiles, domain.Position{X: house.X + house.W/2, Y: house.Y + house.H - 1}, catalog.SpriteStepWood).
		FillRect(above, enums.LayerTiles, house, catalog.SpriteRoof).
		PlaceObject(ground, domain.Position{X: house.X + 1, Y: house.Y + 1}, catalog.SpriteChair).
		PlaceObject(ground, domain.Position{X: house.X + 2, Y: house.Y + 1}, catalog.SpriteTable).
		PlaceObject(ground, domain.Position{X: house.X + house.W - 2, Y: house.Y + 1}, catalog.SpriteLamp).
		Set(ground, enums.LayerObjects, domain.Position{X: house.X + house.W - 2, Y: house.Y + house.H - 2}, cat.Sprites.Lever[0]).
		PlaceObject(ground, domain.Position{X: size/2 - 3, Y: size/2 - 3}, catalog.SpriteCampfire).
		PlaceObject(ground, domain.Position{X: 14, Y: 5}, catalog.SpriteBanner).
		Set(ground, enums.LayerTiles, domain.Position{X: size / 2, Y: size/2 + 2}, catalog.SpriteStepStone).
		WithRooms(under, MaxRooms, MinRoomSize, MaxRoomSize, catalog.SpriteStoneFloor, catalog.SpriteRock).
		PlaceHole(ground, hole, catalog.SpriteStoneFloor).
		PlaceLadder(under, ladder, catalog.SpriteGrass)

	// Torches along the cellar rooms.
	for _, r := range b.Rooms(under) {
		b.PlaceObject(under, domain.Position{X: r.X, Y: r.Y}, catalog.SpriteTorch)
	}

	b.Spawn("guard", ground, domain.Position{X: house.X + house.W/2, Y: house.Y + house.H + 1}).
		Spawn("witch", ground, domain.Position{X: house.X + 3, Y: house.Y + 2}).
		Spawn("rat", ground, domain.Position{X: 4, Y: size - 4}).
		Spawn("skeleton", ground, domain.Position{X: size - 6, Y: size - 6}).
		SpawnInRooms("skeleton", under, 4).
		SpawnInRooms("rat", under, 2).
		StartAt(ground, domain.Position{X: size / 2, Y: size / 2})

	return b.Build()
}
