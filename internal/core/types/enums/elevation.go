package enums

import "strings"

// Elevation is the z axis of the world. Values are ordered so that
// moving above adds one and moving below subtracts one.
type Elevation int8

const (
	ElevationUnderground Elevation = iota
	ElevationGround
	ElevationAboveground
)

// ElevationCount is the number of stacked layers.
const ElevationCount = 3

var elevationToString = map[Elevation]string{
	ElevationUnderground: "UNDERGROUND",
	ElevationGround:      "GROUND",
	ElevationAboveground: "ABOVEGROUND",
}

var elevationStringToType = map[string]Elevation{
	"UNDERGROUND": ElevationUnderground,
	"GROUND":      ElevationGround,
	"ABOVEGROUND": ElevationAboveground,
}

func (e Elevation) String() string {
	if val, ok := elevationToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

func (e Elevation) IsValid() bool {
	return e >= ElevationUnderground && e <= ElevationAboveground
}

func ParseElevation(s string) (Elevation, bool) {
	val, ok := elevationStringToType[strings.ToUpper(s)]
	return val, ok
}
