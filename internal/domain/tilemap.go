package domain

import (
	"errors"
	"fmt"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
)

// ErrLayerSize is returned when a layer's id count is not size².
var ErrLayerSize = errors.New("layer size mismatch")

// TileMap is one (kind, elevation) grid of tiles in row-major order.
// Tile order is fixed at load time.
type TileMap struct {
	Name      string
	Kind      enums.LayerKind
	Elevation enums.Elevation
	Size      int

	ids   []int
	tiles []Tile
	water []int

	table   SpriteFlagTable
	sprites SpriteSet
}

// NewTileMap takes ownership of ids and builds one tile per cell.
func NewTileMap(ids []int, name string, kind enums.LayerKind, z enums.Elevation, size int, cat *Catalog) (*TileMap, error) {
	if len(ids) != size*size {
		return nil, fmt.Errorf("%s: got %d ids for size %d: %w", name, len(ids), size, ErrLayerSize)
	}

	tm := &TileMap{
		Name:      name,
		Kind:      kind,
		Elevation: z,
		Size:      size,
		ids:       ids,
		tiles:     make([]Tile, len(ids)),
		table:     cat.Flags,
		sprites:   cat.Sprites,
	}

	for number, id := range ids {
		if !tm.table.Contains(id) {
			return nil, fmt.Errorf("%s: tile %d has sprite id %d outside catalog", name, number, id)
		}

		flags := tm.table.FlagsFor(id)

		if flags.Any(FlagWater) && kind == enums.LayerTiles && z == enums.ElevationGround {
			tm.water = append(tm.water, number)
		}

		offset := 0
		if flags.Any(FlagOffset) {
			offset = TileDrawOffset
		}

		if id == cat.Sprites.Null && kind == enums.LayerTiles {
			flags |= FlagNull
		}

		tm.tiles[number] = Tile{
			Number:    number,
			ID:        id,
			Flags:     flags,
			Pos:       Position{X: number % size, Y: number / size},
			Elevation: z,
			Offset:    offset,
		}
	}

	return tm, nil
}

// Number returns the tile number of pos, or -1 when pos is off the map.
func (tm *TileMap) Number(pos Position) int {
	if pos.X < 0 || pos.Y < 0 || pos.X >= tm.Size || pos.Y >= tm.Size {
		return -1
	}
	return pos.X + pos.Y*tm.Size
}

// TileAt returns the tile at pos. The bool is false off the map.
func (tm *TileMap) TileAt(pos Position) (*Tile, bool) {
	n := tm.Number(pos)
	if n < 0 {
		return nil, false
	}
	return &tm.tiles[n], true
}

// Tiles exposes the grid for read-only iteration.
func (tm *TileMap) Tiles() []Tile {
	return tm.tiles
}

// IDs returns the raw id sequence, as written to map files.
func (tm *TileMap) IDs() []int {
	return tm.ids
}

// WaterTiles returns the cached indices of animated water tiles.
func (tm *TileMap) WaterTiles() []int {
	return tm.water
}

// UpdateTileID sets the raw id and the tile id. Flags are left alone;
// call RefreshTileFlags when they may change.
func (tm *TileMap) UpdateTileID(number, id int) {
	tm.ids[number] = id
	tm.tiles[number].ID = id
}

// RefreshTileFlags recomputes a tile's flags from its current id.
func (tm *TileMap) RefreshTileFlags(number int) {
	t := &tm.tiles[number]
	flags := tm.table.FlagsFor(t.ID)
	if t.ID == tm.sprites.Null && tm.Kind == enums.LayerTiles {
		flags |= FlagNull
	}
	t.Flags = flags
	t.Offset = 0
	if flags.Any(FlagOffset) {
		t.Offset = TileDrawOffset
	}
}

// ReloadWaterTiles rebuilds the water cache from the current flags.
func (tm *TileMap) ReloadWaterTiles() {
	tm.water = tm.water[:0]
	for i := range tm.tiles {
		if tm.tiles[i].Flags.Any(FlagWater) {
			tm.water = append(tm.water, tm.tiles[i].Number)
		}
	}
}

// AnimateWater advances every cached water tile one frame. Frames cycle
// 0..3 and 4..7 independently. Flags are stable across frames.
func (tm *TileMap) AnimateWater() {
	for _, number := range tm.water {
		if next, ok := tm.sprites.NextWaterFrame(tm.ids[number]); ok {
			tm.UpdateTileID(number, next)
		}
	}
}

// HasWaterNear reports whether any tile in the window centred on pos is
// water.
func (tm *TileMap) HasWaterNear(pos Position, halfW, halfH int) bool {
	x0 := max(pos.X-halfW, 0)
	y0 := max(pos.Y-halfH, 0)
	for x := x0; x < x0+2*halfW+1 && x < tm.Size; x++ {
		for y := y0; y < y0+2*halfH+1 && y < tm.Size; y++ {
			if tm.tiles[x+y*tm.Size].Flags.Any(FlagWater) {
				return true
			}
		}
	}
	return false
}
