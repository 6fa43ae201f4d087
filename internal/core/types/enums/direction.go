package enums

import "strings"

// Direction is one of the eight compass steps. The first four are the
// cardinal directions and are the only ones picked for random wandering.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionRight
	DirectionDown
	DirectionLeft
	DirectionUpLeft
	DirectionUpRight
	DirectionDownLeft
	DirectionDownRight
)

// CardinalCount is the number of leading cardinal directions.
const CardinalCount = 4

var directionToString = map[Direction]string{
	DirectionUp:        "UP",
	DirectionRight:     "RIGHT",
	DirectionDown:      "DOWN",
	DirectionLeft:      "LEFT",
	DirectionUpLeft:    "UP_LEFT",
	DirectionUpRight:   "UP_RIGHT",
	DirectionDownLeft:  "DOWN_LEFT",
	DirectionDownRight: "DOWN_RIGHT",
}

var directionStringToType = map[string]Direction{
	"UP":         DirectionUp,
	"RIGHT":      DirectionRight,
	"DOWN":       DirectionDown,
	"LEFT":       DirectionLeft,
	"UP_LEFT":    DirectionUpLeft,
	"UP_RIGHT":   DirectionUpRight,
	"DOWN_LEFT":  DirectionDownLeft,
	"DOWN_RIGHT": DirectionDownRight,
}

var directionDeltas = map[Direction][2]int{
	DirectionUp:        {0, -1},
	DirectionRight:     {1, 0},
	DirectionDown:      {0, 1},
	DirectionLeft:      {-1, 0},
	DirectionUpLeft:    {-1, -1},
	DirectionUpRight:   {1, -1},
	DirectionDownLeft:  {-1, 1},
	DirectionDownRight: {1, 1},
}

func (d Direction) String() string {
	if val, ok := directionToString[d]; ok {
		return val
	}
	return "UNKNOWN"
}

// Delta returns the tile offset of one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	v := directionDeltas[d]
	return v[0], v[1]
}

func (d Direction) IsDiagonal() bool {
	dx, dy := d.Delta()
	return dx != 0 && dy != 0
}

func (d Direction) IsValid() bool {
	_, ok := directionToString[d]
	return ok
}

// ParseDirection returns false for unknown names.
func ParseDirection(s string) (Direction, bool) {
	val, ok := directionStringToType[strings.ToUpper(s)]
	return val, ok
}

// DirectionFromDelta maps a step vector with components in {-1,0,1} to a
// Direction. The zero vector has no direction.
func DirectionFromDelta(dx, dy int) (Direction, bool) {
	for d, v := range directionDeltas {
		if v[0] == dx && v[1] == dy {
			return d, true
		}
	}
	return DirectionUp, false
}
