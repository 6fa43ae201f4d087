package domain

import "time"

// Geometry
const (
	TileSize       = 32
	TileDrawOffset = 8
)

// Visible window around the player, in tiles. The window is
// NumTilesX by NumTilesY with the player at its centre.
const (
	NumTilesX           = 13
	NumTilesY           = 9
	NumTilesFromCenterX = NumTilesX / 2
	NumTilesFromCenterY = NumTilesY / 2
	RoofHideRadius      = 2
)

// Simulation limits
const (
	// MapSizeMax bounds the side of a loaded map.
	MapSizeMax = 1024

	// DrawDistanceMax is the tile radius inside which things are drawn
	// and, under load, inside which creatures think.
	DrawDistanceMax = 10

	// CreaturesMaxLoad is the roster size above which AI work is shed.
	CreaturesMaxLoad = 100

	// ProjectileRangeDefault is the tile range of spells and the
	// maximum distance at which AI creatures shoot.
	ProjectileRangeDefault = 5
)

// Player defaults
const (
	PlayerName  = "Player"
	PlayerHP    = 10000
	PlayerSpeed = 1.0
)

// Timings
const (
	AnimationFrameTime = 100 * time.Millisecond
	DecalFrameTime     = 20 * time.Second
	CorpseDecayTime    = 60 * time.Second
	MessageTime        = 5 * time.Second
)
