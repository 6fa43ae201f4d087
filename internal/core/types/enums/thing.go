package enums

import "strings"

// ThingKind tags the variant behind a domain.Thing and the kind part of an EntityID.
type ThingKind uint8

const (
	ThingKindUnknown ThingKind = iota
	ThingKindObject
	ThingKindCreature
	ThingKindAnimation
	ThingKindDecal
	ThingKindProjectile
)

var thingKindToString = map[ThingKind]string{
	ThingKindObject:     "OBJECT",
	ThingKindCreature:   "CREATURE",
	ThingKindAnimation:  "ANIMATION",
	ThingKindDecal:      "DECAL",
	ThingKindProjectile: "PROJECTILE",
}

var thingKindStringToType = map[string]ThingKind{
	"OBJECT":     ThingKindObject,
	"CREATURE":   ThingKindCreature,
	"ANIMATION":  ThingKindAnimation,
	"DECAL":      ThingKindDecal,
	"PROJECTILE": ThingKindProjectile,
}

func (k ThingKind) String() string {
	if val, ok := thingKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseThingKind(s string) ThingKind {
	if val, ok := thingKindStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return ThingKindUnknown
}
