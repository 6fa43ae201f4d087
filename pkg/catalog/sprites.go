package catalog

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// Sprite ids of the default sheet.
const (
	SpriteNull  = 0
	SpriteBlank = 1

	SpriteGrass      = 2
	SpriteDirt       = 3
	SpriteSand       = 4
	SpriteStoneFloor = 5
	SpriteWoodFloor  = 6

	SpriteStepWood      = 7
	SpriteStepWoodDown  = 8
	SpriteStepStone     = 9
	SpriteStepStoneDown = 10

	SpriteWaterFirst = 11 // 11..18, two 4-frame cycles
	SpriteLava       = 19

	SpriteWallStone = 20
	SpriteWallWood  = 21
	SpriteTree      = 22
	SpriteRock      = 23
	SpriteLadder    = 24
	SpriteStairsUp  = 25
	SpriteHole      = 26
	SpriteLeverOff  = 27
	SpriteLeverOn   = 28
	SpriteChair     = 29
	SpriteTorch     = 30
	SpriteLamp      = 31
	SpriteTable     = 32
	SpriteFence     = 33
	SpriteRoof      = 34
	SpriteGrassEdge = 35
	SpriteBanner    = 36

	SpritePlayer         = 40
	SpriteGuard          = 41
	SpriteSkeleton       = 42
	SpriteRat            = 43
	SpriteWitch          = 44
	SpritePlayerCorpse   = 50
	SpriteGuardCorpse    = 51
	SpriteSkeletonCorpse = 52
	SpriteRatCorpse      = 53
	SpriteWitchCorpse    = 54

	SpriteSpellFire   = 60
	SpriteSpellBlue   = 61
	SpriteSpellBlack  = 62
	SpriteArrow       = 63
	SpriteArrowFire   = 64
	SpriteArrowPoison = 65

	SpriteHitMiss     = 70 // 3 frames each
	SpriteWaterSplash = 73
	SpriteHitBlood    = 76
	SpriteFire        = 79
	SpriteElectricity = 82
	SpriteBlockSpark  = 85

	SpriteBloodDecal = 90 // 3 frames
	SpritePoolRed    = 96 // 4 frames each
	SpritePoolGreen  = 100

	SpriteCampfire = 110 // 110..112
	SpriteFountain = 113 // 113..114

	SpritesTotal = 128
)

// Flags returns the default sprite flag table.
func Flags() domain.SpriteFlagTable {
	t := make(domain.SpriteFlagTable, SpritesTotal)

	wall := domain.FlagSolid | domain.FlagBlockProjectiles

	for i := 0; i < 8; i++ {
		t[SpriteWaterFirst+i] = domain.FlagWater | domain.FlagSolid
	}
	t[SpriteLava] = domain.FlagLava
	t[SpriteWallStone] = wall
	t[SpriteWallWood] = wall
	t[SpriteTree] = wall | domain.FlagOffset
	t[SpriteRock] = domain.FlagSolid
	t[SpriteLadder] = domain.FlagLadder
	t[SpriteStairsUp] = domain.FlagMoveAbove
	t[SpriteHole] = domain.FlagMoveBelow
	t[SpriteChair] = domain.FlagChair
	t[SpriteTorch] = domain.FlagLight
	t[SpriteLamp] = domain.FlagLight | domain.FlagOffset
	t[SpriteTable] = domain.FlagSolid | domain.FlagOffset
	t[SpriteFence] = domain.FlagSolid
	t[SpriteCampfire] = domain.FlagLight | domain.FlagSolid
	t[SpriteCampfire+1] = domain.FlagLight | domain.FlagSolid
	t[SpriteCampfire+2] = domain.FlagLight | domain.FlagSolid
	t[SpriteFountain] = wall
	t[SpriteFountain+1] = wall

	return t
}

// Default returns the catalog of the default sprite sheet.
func Default() *domain.Catalog {
	var water [8]int
	for i := range water {
		water[i] = SpriteWaterFirst + i
	}

	strip := func(first, frames int) domain.AnimationID {
		return domain.AnimationID{First: first, Frames: frames}
	}

	effects := domain.Effects{
		HitMiss:     strip(SpriteHitMiss, 3),
		WaterSplash: strip(SpriteWaterSplash, 3),
		HitBlood:    strip(SpriteHitBlood, 3),
		Fire:        strip(SpriteFire, 3),
		Electricity: strip(SpriteElectricity, 3),
		BlockSpark:  strip(SpriteBlockSpark, 3),
		BloodDecal:  strip(SpriteBloodDecal, 3),
		PoolRed:     strip(SpritePoolRed, 4),
		PoolGreen:   strip(SpritePoolGreen, 4),
	}

	spell := func(t enums.ProjectileType, sprite int, onHit domain.AnimationID) domain.ProjectileSpec {
		return domain.ProjectileSpec{
			Type:       t,
			Sprite:     sprite,
			Range:      domain.ProjectileRangeDefault,
			Damage:     50,
			OnHit:      onHit,
			DecalOnHit: effects.BloodDecal,
			OnBlock:    effects.BlockSpark,
			Sound:      "spell",
		}
	}
	arrow := func(t enums.ProjectileType, sprite, damage int) domain.ProjectileSpec {
		return domain.ProjectileSpec{
			Type:       t,
			Sprite:     sprite,
			Range:      8,
			Damage:     damage,
			OnHit:      effects.HitBlood,
			DecalOnHit: effects.BloodDecal,
			OnBlock:    effects.HitMiss,
			Sound:      "arrow",
		}
	}

	return &domain.Catalog{
		Flags: Flags(),
		Sprites: domain.SpriteSet{
			Null:           SpriteNull,
			Blank:          SpriteBlank,
			Water:          water,
			StepWood:       [2]int{SpriteStepWood, SpriteStepWoodDown},
			StepStone:      [2]int{SpriteStepStone, SpriteStepStoneDown},
			Lever:          [2]int{SpriteLeverOff, SpriteLeverOn},
			FixDrawObjects: []int{SpriteBanner},
			AnimatedObjects: [][]int{
				{SpriteCampfire, SpriteCampfire + 1, SpriteCampfire + 2},
				{SpriteFountain, SpriteFountain + 1},
			},
		},
		Effects: effects,
		Projectiles: map[enums.ProjectileType]domain.ProjectileSpec{
			enums.ProjectileSpellFire:   spell(enums.ProjectileSpellFire, SpriteSpellFire, effects.Fire),
			enums.ProjectileSpellBlue:   spell(enums.ProjectileSpellBlue, SpriteSpellBlue, effects.Electricity),
			enums.ProjectileSpellBlack:  spell(enums.ProjectileSpellBlack, SpriteSpellBlack, effects.HitBlood),
			enums.ProjectileArrow:       arrow(enums.ProjectileArrow, SpriteArrow, 30),
			enums.ProjectileArrowFire:   arrow(enums.ProjectileArrowFire, SpriteArrowFire, 45),
			enums.ProjectileArrowPoison: arrow(enums.ProjectileArrowPoison, SpriteArrowPoison, 35),
		},
		Sounds: domain.Sounds{
			Death:  "death",
			Hit:    "hit",
			Splash: "splash",
			Block:  "block",
			Ladder: "ladder",
			Lever:  "lever",
			Shot:   "shot",
		},
		AnimationFrameTime: domain.AnimationFrameTime,
		DecalFrameTime:     domain.DecalFrameTime,
	}
}
