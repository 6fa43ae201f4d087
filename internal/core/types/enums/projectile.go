package enums

import "strings"

type ProjectileType uint8

const (
	ProjectileSpellFire ProjectileType = iota
	ProjectileSpellBlue
	ProjectileSpellBlack
	ProjectileArrow
	ProjectileArrowFire
	ProjectileArrowPoison
)

var projectileTypeToString = map[ProjectileType]string{
	ProjectileSpellFire:   "SPELL_FIRE",
	ProjectileSpellBlue:   "SPELL_BLUE",
	ProjectileSpellBlack:  "SPELL_BLACK",
	ProjectileArrow:       "ARROW",
	ProjectileArrowFire:   "ARROW_FIRE",
	ProjectileArrowPoison: "ARROW_POISON",
}

var projectileTypeStringToType = map[string]ProjectileType{
	"SPELL_FIRE":   ProjectileSpellFire,
	"SPELL_BLUE":   ProjectileSpellBlue,
	"SPELL_BLACK":  ProjectileSpellBlack,
	"ARROW":        ProjectileArrow,
	"ARROW_FIRE":   ProjectileArrowFire,
	"ARROW_POISON": ProjectileArrowPoison,
}

func (p ProjectileType) String() string {
	if val, ok := projectileTypeToString[p]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseProjectileType(s string) (ProjectileType, bool) {
	val, ok := projectileTypeStringToType[strings.ToUpper(s)]
	return val, ok
}

// ProjectileForTeam picks the spell a creature of the given team casts.
func ProjectileForTeam(t Team) ProjectileType {
	switch t {
	case TeamGood:
		return ProjectileSpellBlue
	case TeamEvil:
		return ProjectileSpellBlack
	default:
		return ProjectileSpellFire
	}
}
