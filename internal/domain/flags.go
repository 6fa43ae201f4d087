package domain

import (
	"fmt"
	"strings"
)

// TileFlags is the capability bitmask of a sprite.
type TileFlags uint32

const (
	FlagNull TileFlags = 1 << iota
	FlagSolid
	FlagBlockProjectiles
	FlagOffset
	FlagWater
	FlagLava
	FlagLadder
	FlagChair
	FlagLight
	FlagMoveAbove
	FlagMoveBelow
)

// FlagsTransition covers every flag that moves a creature between elevations.
const FlagsTransition = FlagLadder | FlagMoveAbove | FlagMoveBelow

var flagNames = []struct {
	flag TileFlags
	name string
}{
	{FlagNull, "null"},
	{FlagSolid, "solid"},
	{FlagBlockProjectiles, "blockProjectiles"},
	{FlagOffset, "offset"},
	{FlagWater, "water"},
	{FlagLava, "lava"},
	{FlagLadder, "ladder"},
	{FlagChair, "chair"},
	{FlagLight, "light"},
	{FlagMoveAbove, "moveAbove"},
	{FlagMoveBelow, "moveBelow"},
}

// Has reports whether every bit of f is set.
func (t TileFlags) Has(f TileFlags) bool {
	return t&f == f
}

// Any reports whether at least one bit of f is set.
func (t TileFlags) Any(f TileFlags) bool {
	return t&f != 0
}

func (t TileFlags) String() string {
	if t == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if t&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseTileFlag maps a flag name (as used in catalog files) to its bit.
func ParseTileFlag(name string) (TileFlags, error) {
	for _, fn := range flagNames {
		if strings.EqualFold(fn.name, name) {
			return fn.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown tile flag %q", name)
}

// SpriteFlagTable maps sprite ids to their flags. It is built once and
// shared read-only by every map and world.
type SpriteFlagTable []TileFlags

// FlagsFor returns the flags of a sprite. Ids outside the catalog are a
// programming error and panic.
func (t SpriteFlagTable) FlagsFor(id int) TileFlags {
	if id < 0 || id >= len(t) {
		panic(fmt.Sprintf("sprite id %d outside catalog of %d sprites", id, len(t)))
	}
	return t[id]
}

// Contains reports whether id is a valid sprite id.
func (t SpriteFlagTable) Contains(id int) bool {
	return id >= 0 && id < len(t)
}
