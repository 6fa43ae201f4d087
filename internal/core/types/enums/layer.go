package enums

import "strings"

// LayerKind is the role of a tile layer within one elevation.
type LayerKind uint8

const (
	LayerTiles LayerKind = iota
	LayerEdges
	LayerObjects
)

// LayerKindCount is the number of layer kinds per elevation.
const LayerKindCount = 3

var layerKindToString = map[LayerKind]string{
	LayerTiles:   "TILES",
	LayerEdges:   "EDGES",
	LayerObjects: "OBJECTS",
}

var layerKindStringToType = map[string]LayerKind{
	"TILES":   LayerTiles,
	"EDGES":   LayerEdges,
	"OBJECTS": LayerObjects,
}

func (k LayerKind) String() string {
	if val, ok := layerKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseLayerKind(s string) (LayerKind, bool) {
	val, ok := layerKindStringToType[strings.ToUpper(s)]
	return val, ok
}
