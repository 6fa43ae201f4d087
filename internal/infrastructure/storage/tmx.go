package storage

import (
	"encoding/xml"
	"errors"
	"strings"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
)

var (
	ErrPayloadLength       = errors.New("layer payload length mismatch")
	ErrUnsupportedEncoding = errors.New("unsupported layer encoding")
	ErrNotSquare           = errors.New("map is not square")
	ErrMapTooLarge         = errors.New("map is too large")
	ErrObjectOffMap        = errors.New("object outside the map")
)

const (
	tmxEncoding    = "base64"
	tmxCompression = "zlib"
)

// layerNames routes the nine tile layer names of the map file.
var layerNames = map[string]struct {
	kind enums.LayerKind
	z    enums.Elevation
}{
	"underground tiles":        {enums.LayerTiles, enums.ElevationUnderground},
	"underground tile edges":   {enums.LayerEdges, enums.ElevationUnderground},
	"underground tile objects": {enums.LayerObjects, enums.ElevationUnderground},
	"ground tiles":             {enums.LayerTiles, enums.ElevationGround},
	"ground tile edges":        {enums.LayerEdges, enums.ElevationGround},
	"ground tile objects":      {enums.LayerObjects, enums.ElevationGround},
	"aboveground tiles":        {enums.LayerTiles, enums.ElevationAboveground},
	"aboveground tile edges":   {enums.LayerEdges, enums.ElevationAboveground},
	"aboveground tile objects": {enums.LayerObjects, enums.ElevationAboveground},
}

var objectGroupNames = map[string]enums.Elevation{
	"underground objects": enums.ElevationUnderground,
	"ground objects":      enums.ElevationGround,
	"aboveground objects": enums.ElevationAboveground,
}

// LayerName is the file name of the (kind, z) layer.
func LayerName(kind enums.LayerKind, z enums.Elevation) string {
	for name, slot := range layerNames {
		if slot.kind == kind && slot.z == z {
			return name
		}
	}
	return ""
}

// ObjectGroupName is the file name of the object group for z.
func ObjectGroupName(z enums.Elevation) string {
	for name, gz := range objectGroupNames {
		if gz == z {
			return name
		}
	}
	return ""
}

func isObjectGroup(name string) bool {
	return strings.Contains(name, "objects")
}

type tmxMap struct {
	XMLName      xml.Name         `xml:"map"`
	Version      string           `xml:"version,attr"`
	Orientation  string           `xml:"orientation,attr"`
	Width        int              `xml:"width,attr"`
	Height       int              `xml:"height,attr"`
	TileWidth    int              `xml:"tilewidth,attr"`
	TileHeight   int              `xml:"tileheight,attr"`
	Layers       []tmxLayer       `xml:"layer"`
	ObjectGroups []tmxObjectGroup `xml:"objectgroup"`
}

type tmxLayer struct {
	Name   string  `xml:"name,attr"`
	Width  int     `xml:"width,attr"`
	Height int     `xml:"height,attr"`
	Data   tmxData `xml:"data"`
}

type tmxData struct {
	Encoding    string `xml:"encoding,attr"`
	Compression string `xml:"compression,attr"`
	Payload     string `xml:",chardata"`
}

type tmxObjectGroup struct {
	Name    string      `xml:"name,attr"`
	Objects []tmxObject `xml:"object"`
}

type tmxObject struct {
	GID int `xml:"gid,attr"`
	X   int `xml:"x,attr"`
	Y   int `xml:"y,attr"`
}
