package domain

import (
	"time"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
)

// AnimationID names an animation strip: the first sprite and the number
// of frames that follow it.
type AnimationID struct {
	First  int
	Frames int
}

func (a AnimationID) IsZero() bool {
	return a.Frames == 0
}

// SpriteSet holds the sprite ids the simulation treats specially.
type SpriteSet struct {
	Null      int
	Blank     int
	Water     [8]int
	StepWood  [2]int
	StepStone [2]int
	Lever     [2]int

	// FixDrawObjects are drawn one tile to the right of their position.
	FixDrawObjects []int

	// AnimatedObjects are frame cycles for placed objects.
	AnimatedObjects [][]int
}

// WaterBegin and WaterEnd bound the animated water id range.
func (s SpriteSet) WaterBegin() int { return s.Water[0] }
func (s SpriteSet) WaterEnd() int   { return s.Water[7] }

// NextWaterFrame returns the id following id in its 4-frame water cycle.
// The second return is false when id is not a water frame.
func (s SpriteSet) NextWaterFrame(id int) (int, bool) {
	if id < s.WaterBegin() || id > s.WaterEnd() {
		return id, false
	}
	switch id {
	case s.Water[3]:
		return s.Water[0], true
	case s.Water[7]:
		return s.Water[4], true
	}
	return id + 1, true
}

// Effects are the animation strips spawned by combat and projectiles.
type Effects struct {
	HitMiss     AnimationID
	WaterSplash AnimationID
	HitBlood    AnimationID
	Fire        AnimationID
	Electricity AnimationID
	BlockSpark  AnimationID
	BloodDecal  AnimationID
	PoolRed     AnimationID
	PoolGreen   AnimationID
}

// ProjectileSpec describes one projectile type.
type ProjectileSpec struct {
	Type       enums.ProjectileType
	Sprite     int
	Range      int
	Damage     int
	OnHit      AnimationID
	DecalOnHit AnimationID
	OnBlock    AnimationID
	Sound      string
}

// Sounds are the cue names passed to the audio collaborator.
type Sounds struct {
	Death  string
	Hit    string
	Splash string
	Block  string
	Ladder string
	Lever  string
	Shot   string
}

// Catalog is the read-only sprite configuration loaded at startup and
// handed to the map loader and the world.
type Catalog struct {
	Flags       SpriteFlagTable
	Sprites     SpriteSet
	Effects     Effects
	Projectiles map[enums.ProjectileType]ProjectileSpec
	Sounds      Sounds

	AnimationFrameTime time.Duration
	DecalFrameTime     time.Duration
}

// Projectile returns the spec for a projectile type, falling back to the
// fire spell for unknown types.
func (c *Catalog) Projectile(t enums.ProjectileType) ProjectileSpec {
	if spec, ok := c.Projectiles[t]; ok {
		return spec
	}
	return c.Projectiles[enums.ProjectileSpellFire]
}

// RepeatsOnce reports whether an animation strip plays a second time.
// Fire and electricity do.
func (c *Catalog) RepeatsOnce(a AnimationID) bool {
	return a.First == c.Effects.Fire.First || a.First == c.Effects.Electricity.First
}
