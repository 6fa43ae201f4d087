package api

import (
	"encoding/json"
)

// --- SERVER -> CLIENT ---

// FrameResponse is the root object sent to the viewer once per published
// frame. It is a complete picture of what the player can see.
type FrameResponse struct {
	// Type is always "FRAME".
	Type string `json:"type"`

	// Tick counts simulation frames since start.
	Tick uint64 `json:"tick"`

	// PlayerZ is the elevation the player stands on. Everything in the
	// frame is already filtered for it.
	PlayerZ int `json:"playerZ"`

	Player *CreatureView `json:"player,omitempty"`

	// Grid is the size of the whole map, in tiles.
	Grid *GridMeta `json:"grid,omitempty"`

	// Layers are the tile windows to draw, bottom first.
	Layers []TileLayerView `json:"layers,omitempty"`

	// Things is the ordered draw list. Draw it front to back as given.
	Things []ThingView `json:"things,omitempty"`

	MiniMap []MiniMapQuadView `json:"miniMap,omitempty"`

	// Lights and Lit are only set underground. Lit holds the tile
	// numbers (x + y*size) reached by some light.
	Lights []LightView `json:"lights,omitempty"`
	Lit    []int       `json:"lit,omitempty"`

	// Logs are the messages produced since the previous frame.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta is the map size.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileLayerView is a rectangular window of one map layer. IDs are row
// major; tiles outside the map are sent as the null sprite.
type TileLayerView struct {
	Kind   string `json:"kind"` // TILES, EDGES, OBJECTS
	Z      int    `json:"z"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
	IDs    []int  `json:"ids"`
}

// ThingView is one entry of the draw list.
type ThingView struct {
	Kind     string `json:"kind"` // CREATURE, OBJECT, ANIMATION, DECAL, PROJECTILE
	ID       string `json:"id,omitempty"`
	SpriteID int    `json:"spriteId"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	PixelX   int    `json:"px"`
	PixelY   int    `json:"py"`
	Z        int    `json:"z"`
	Offset   int    `json:"offset,omitempty"`
	Dead     bool   `json:"dead,omitempty"`

	// Bar is set for creatures whose health bar is drawn.
	Bar *HealthBarView `json:"bar,omitempty"`
}

// HealthBarView is a health bar in team colors.
type HealthBarView struct {
	Percent int    `json:"percent"`
	Team    string `json:"team"`
}

// CreatureView describes the player for the status panel.
type CreatureView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Team      string `json:"team"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"maxHp"`
	IsDead    bool   `json:"isDead"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Z         int    `json:"z"`
	Direction string `json:"direction"`
}

// MiniMapQuadView is one colored minimap tile.
type MiniMapQuadView struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"` // SOLID, WATER, LAVA, TRANSITION, NEUTRAL, GOOD, EVIL, PLAYER
}

// LightView is a light source with its radius in tiles.
type LightView struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Radius int `json:"radius"`
}

// LogEntry is one game message.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- CLIENT -> SERVER ---

// ClientCommand is the root object of every message from the viewer.
type ClientCommand struct {
	// Action names what to do: MOVE, TURN, USE_LADDER, USE_LEVER, SHOOT,
	// WAIT, SPAWN, TELEPORT.
	Action string `json:"action"`

	// Payload depends on Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload is a single step (MOVE, TURN).
type DirectionPayload struct {
	Dx int `json:"dx"` // -1, 0, 1
	Dy int `json:"dy"` // -1, 0, 1
}

// PositionPayload targets a tile (USE_LADDER, USE_LEVER, SHOOT, TELEPORT).
// Z is optional and defaults to the player's elevation.
type PositionPayload struct {
	X int  `json:"x"`
	Y int  `json:"y"`
	Z *int `json:"z,omitempty"`
}

// SpawnPayload names a creature template (SPAWN).
type SpawnPayload struct {
	Template string `json:"template"`
}
