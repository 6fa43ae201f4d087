package domain

import (
	"fmt"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
)

// TileFilter selects which layer kinds a flag query unions.
type TileFilter uint8

const (
	FilterAll TileFilter = iota
	FilterTilesOnly
	FilterObjectsOnly
)

// Map holds the nine tile layers and the objects placed by the map file.
type Map struct {
	Size   int
	Layers [enums.ElevationCount][enums.LayerKindCount]*TileMap

	// Objects are the placed objects read from the file. The world takes
	// them over at construction.
	Objects []*Object
}

// NewEmptyMap builds a map of the given size with every layer filled
// with the null sprite.
func NewEmptyMap(size int, cat *Catalog) (*Map, error) {
	m := &Map{Size: size}
	for z := enums.ElevationUnderground; z <= enums.ElevationAboveground; z++ {
		for k := enums.LayerTiles; k <= enums.LayerObjects; k++ {
			ids := make([]int, size*size)
			for i := range ids {
				ids[i] = cat.Sprites.Null
			}
			if err := m.SetLayer(k, z, fmt.Sprintf("%s %s", z, k), ids, cat); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// SetLayer loads ids into the (kind, z) slot.
func (m *Map) SetLayer(kind enums.LayerKind, z enums.Elevation, name string, ids []int, cat *Catalog) error {
	if !z.IsValid() || int(kind) >= enums.LayerKindCount {
		return fmt.Errorf("invalid layer slot %s/%s", z, kind)
	}
	tm, err := NewTileMap(ids, name, kind, z, m.Size, cat)
	if err != nil {
		return err
	}
	m.Layers[z][kind] = tm
	return nil
}

// Layer returns the (kind, z) tile map.
func (m *Map) Layer(kind enums.LayerKind, z enums.Elevation) *TileMap {
	if !z.IsValid() {
		return nil
	}
	return m.Layers[z][kind]
}

// InBounds reports whether pos is on the map.
func (m *Map) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < m.Size && pos.Y < m.Size
}

// LayerFlags unions the flags of the tile layers at (pos, z) that pass
// the filter. Edge layers never contribute. Off-map or invalid z gives 0.
func (m *Map) LayerFlags(pos Position, z enums.Elevation, filter TileFilter) TileFlags {
	if !z.IsValid() || !m.InBounds(pos) {
		return 0
	}

	var flags TileFlags
	for kind, tm := range m.Layers[z] {
		if tm == nil {
			continue
		}
		k := enums.LayerKind(kind)
		if k == enums.LayerEdges {
			continue
		}
		if filter == FilterTilesOnly && k != enums.LayerTiles {
			continue
		}
		if filter == FilterObjectsOnly && k != enums.LayerObjects {
			continue
		}
		if t, ok := tm.TileAt(pos); ok {
			flags |= t.Flags
		}
	}
	return flags
}
