package catalog

import (
	"sort"
	"strings"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// CreatureTemplate describes a creature kind that can be spawned by name.
type CreatureTemplate struct {
	Name   string
	Team   enums.Team
	HP     int
	Speed  float64
	Outfit int
	Corpse int
}

// Spawn builds a creature from the template at (pos, z), facing down.
// The creature still has to be handed to GameWorld.SpawnCreature.
func (t CreatureTemplate) Spawn(pos domain.Position, z enums.Elevation) *domain.Creature {
	return &domain.Creature{
		Name:          t.Name,
		Team:          t.Team,
		HP:            t.HP,
		HPMax:         t.HP,
		Pos:           pos,
		Z:             z,
		Direction:     enums.DirectionDown,
		MovementSpeed: t.Speed,
		Outfit:        t.Outfit,
		Corpse:        t.Corpse,
		DecayTime:     domain.CorpseDecayTime,
	}
}

var Guard = CreatureTemplate{
	Name:   "Guard",
	Team:   enums.TeamGood,
	HP:     300,
	Speed:  1.0,
	Outfit: SpriteGuard,
	Corpse: SpriteGuardCorpse,
}

var Witch = CreatureTemplate{
	Name:   "Witch",
	Team:   enums.TeamGood,
	HP:     150,
	Speed:  0.8,
	Outfit: SpriteWitch,
	Corpse: SpriteWitchCorpse,
}

var Skeleton = CreatureTemplate{
	Name:   "Skeleton",
	Team:   enums.TeamEvil,
	HP:     100,
	Speed:  0.7,
	Outfit: SpriteSkeleton,
	Corpse: SpriteSkeletonCorpse,
}

var Rat = CreatureTemplate{
	Name:   "Rat",
	Team:   enums.TeamNeutral,
	HP:     20,
	Speed:  1.2,
	Outfit: SpriteRat,
	Corpse: SpriteRatCorpse,
}

var templates = map[string]CreatureTemplate{
	"GUARD":    Guard,
	"WITCH":    Witch,
	"SKELETON": Skeleton,
	"RAT":      Rat,
}

// Template looks a template up by case-insensitive name.
func Template(name string) (CreatureTemplate, bool) {
	t, ok := templates[strings.ToUpper(name)]
	return t, ok
}

// TemplateNames lists the known templates in sorted order.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for n := range templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewPlayer builds the player creature. The world places it with
// GameWorld.InitPlayer.
func NewPlayer(pos domain.Position, z enums.Elevation) *domain.Creature {
	return &domain.Creature{
		Name:          domain.PlayerName,
		Team:          enums.TeamGood,
		IsPlayer:      true,
		HP:            domain.PlayerHP,
		HPMax:         domain.PlayerHP,
		Pos:           pos,
		Z:             z,
		Direction:     enums.DirectionDown,
		MovementSpeed: domain.PlayerSpeed,
		Outfit:        SpritePlayer,
		Corpse:        SpritePlayerCorpse,
	}
}
