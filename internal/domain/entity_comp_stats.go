package domain

import (
	"time"

	"github.com/kevrgithub/tibianer-old/internal/core/types"
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
)

// Creature is an acting thing: the player or an AI-driven creature.
type Creature struct {
	ID       types.EntityID  `json:"id"`
	Name     string          `json:"name"`
	Team     enums.Team      `json:"team"`
	IsPlayer bool            `json:"isPlayer"`
	HP       int             `json:"hp"`
	HPMax    int             `json:"hpMax"`
	Dead     bool            `json:"isDead"`
	Pos      Position        `json:"pos"`
	Z        enums.Elevation `json:"z"`

	Direction     enums.Direction `json:"direction"`
	Moving        bool            `json:"isMoving"`
	Sitting       bool            `json:"isSitting"`
	MovementSpeed float64         `json:"movementSpeed"`

	// DistanceFromPlayer is refreshed every tick.
	DistanceFromPlayer float64 `json:"-"`

	Outfit int `json:"outfit"`
	Corpse int `json:"corpse"`

	DecayTime  time.Duration `json:"-"`
	sinceDeath time.Duration
}

func (c *Creature) Kind() enums.ThingKind      { return enums.ThingKindCreature }
func (c *Creature) TilePos() Position          { return c.Pos }
func (c *Creature) Elevation() enums.Elevation { return c.Z }
func (c *Creature) PixelPos() Vec2             { return c.Pos.Pixels() }

// SpriteID is the corpse once dead.
func (c *Creature) SpriteID() int {
	if c.Dead && c.Corpse != 0 {
		return c.Corpse
	}
	return c.Outfit
}

// IsAlive is the negation of Dead, for readability at call sites.
func (c *Creature) IsAlive() bool {
	return !c.Dead
}

// TakeDamage lowers HP, flooring it at zero. It returns true when this
// hit killed the creature.
func (c *Creature) TakeDamage(amount int) bool {
	if c.Dead {
		return false
	}

	if amount < 0 {
		amount = 0
	}

	c.HP -= amount

	if c.HP <= 0 {
		c.HP = 0
		c.Dead = true
		c.sinceDeath = 0
		return true
	}
	return false
}

// Heal raises HP up to HPMax. Corpses are not healed.
func (c *Creature) Heal(amount int) {
	if c.Dead {
		return
	}
	c.HP += amount
	if c.HP > c.HPMax {
		c.HP = c.HPMax
	}
}

func (c *Creature) Turn(d enums.Direction) {
	c.Direction = d
}

// Update advances the corpse timer.
func (c *Creature) Update(dt time.Duration) {
	if c.Dead {
		c.sinceDeath += dt
	}
}

// HasDecayed reports whether a dead creature should leave the world.
// The player never decays.
func (c *Creature) HasDecayed() bool {
	return c.Dead && !c.IsPlayer && c.sinceDeath >= c.DecayTime
}
