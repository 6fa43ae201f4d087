package systems

import (
	"math/rand"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/logger"
	"github.com/kevrgithub/tibianer-old/pkg/utils"

	"github.com/sirupsen/logrus"
)

// AIParams are the percentage thresholds of the creature policy. Each is
// compared against a uniform 1..100 draw.
type AIParams struct {
	// MaxLoad is the roster size above which creatures start skipping
	// turns.
	MaxLoad         int `json:"maxLoad"`
	LoadShedPercent int `json:"loadShedPercent"`

	WanderPercent       int `json:"wanderPercent"`
	RandomFacingPercent int `json:"randomFacingPercent"`
	TurnOnBlockPercent  int `json:"turnOnBlockPercent"`

	RangedPercent       int `json:"rangedPercent"`
	ChasePercent        int `json:"chasePercent"`
	DiagonalShotPercent int `json:"diagonalShotPercent"`

	LadderPercent int `json:"ladderPercent"`
}

func DefaultAIParams() AIParams {
	return AIParams{
		MaxLoad:             domain.CreaturesMaxLoad,
		LoadShedPercent:     50,
		WanderPercent:       50,
		RandomFacingPercent: 75,
		TurnOnBlockPercent:  90,
		RangedPercent:       25,
		ChasePercent:        10,
		DiagonalShotPercent: 10,
		LadderPercent:       10,
	}
}

// AI drives every non-player creature. It is a stochastic policy, not a
// pathfinder: given the same seed and world it makes the same choices.
type AI struct {
	Params          AIParams
	ProjectileSpeed int

	rng *rand.Rand
}

func NewAI(params AIParams, rng *rand.Rand, projectileSpeed int) *AI {
	return &AI{Params: params, ProjectileSpeed: projectileSpeed, rng: rng}
}

func (ai *AI) roll() int {
	return utils.Percent(ai.rng)
}

// Update gives each live creature one decision.
func (ai *AI) Update(w *domain.GameWorld) {
	overloaded := len(w.Creatures) > ai.Params.MaxLoad

	for _, c := range w.Creatures {
		if c.IsPlayer || c.Dead {
			continue
		}

		if overloaded && ai.roll() > ai.Params.LoadShedPercent {
			continue
		}

		act := ai.roll()
		if act > ai.Params.WanderPercent {
			ai.wander(w, c, act)
		} else if !overloaded || c.DistanceFromPlayer <= domain.DrawDistanceMax {
			ai.hunt(w, c, act)
		}

		if ai.roll() > ai.Params.LadderPercent {
			UseLadder(w, c, c.Pos)
		}
	}
}

func (ai *AI) wander(w *domain.GameWorld, c *domain.Creature, act int) {
	dir := c.Direction
	if act > ai.Params.RandomFacingPercent {
		dir = enums.Direction(utils.RandomNumber(ai.rng, 0, enums.CardinalCount-1))
	}

	if AttemptMove(w, c, dir) == MoveBlocked && act > ai.Params.TurnOnBlockPercent {
		c.Turn(dir)
	}
}

// hunt picks the first hostile creature in roster order and either
// fires at it or steps toward it.
func (ai *AI) hunt(w *domain.GameWorld, c *domain.Creature, act int) {
	for _, target := range w.Creatures {
		if target == c || target.Dead || target.Z != c.Z {
			continue
		}
		if target.Team == c.Team || target.Team.IsNeutral() {
			continue
		}

		dir, ok := c.Pos.DirectionTo(target.Pos)
		if !ok {
			continue
		}

		if act < ai.Params.RangedPercent {
			if c.Pos.DistanceTo(target.Pos) > domain.ProjectileRangeDefault {
				continue
			}
			if w.BlocksProjectiles(c.Pos.Step(dir), c.Z) {
				continue
			}

			diagonal := target.Pos.X != c.Pos.X && target.Pos.Y != c.Pos.Y
			if !diagonal || ai.roll() <= ai.Params.DiagonalShotPercent {
				ai.fire(w, c, target, dir)
			}
			c.Turn(dir)
			return
		}

		if ai.roll() > ai.Params.ChasePercent {
			continue
		}
		AttemptMove(w, c, dir)
		c.Turn(dir)
		return
	}
}

func (ai *AI) fire(w *domain.GameWorld, c, target *domain.Creature, dir enums.Direction) {
	kind := enums.ProjectileForTeam(c.Team)
	p := domain.NewProjectile(w.Catalog.Projectile(kind), dir, c.Pos, target.Pos, c.Z, c.ID, ai.ProjectileSpeed, false, false)
	w.SpawnProjectile(p)

	logger.Log.WithFields(logrus.Fields{
		"component":  "ai_system",
		"creature":   c.ID,
		"target":     target.ID,
		"projectile": kind,
	}).Debug("Creature fired.")
}
