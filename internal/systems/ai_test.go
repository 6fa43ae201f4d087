package systems

import (
	"math/rand"
	"testing"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// Thresholds above 100 or below 1 turn a roll into a certainty.
func forcedParams(edit func(p *AIParams)) AIParams {
	p := DefaultAIParams()
	p.LadderPercent = 100
	edit(&p)
	return p
}

func newTestAI(params AIParams) *AI {
	return NewAI(params, rand.New(rand.NewSource(7)), domain.ProjectileSpeedDefault)
}

func TestAIRangedAttack(t *testing.T) {
	ai := newTestAI(forcedParams(func(p *AIParams) {
		p.WanderPercent = 100
		p.RangedPercent = 101
	}))

	w := newTestWorld(t, 12, domain.Position{X: 5, Y: 2}, nil)
	c := spawn(t, w, "skeleton", domain.Position{X: 2, Y: 2}, enums.ElevationGround)

	ai.Update(w)
	w.Reconcile()

	if len(w.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(w.Projectiles))
	}
	p := w.Projectiles[0]
	if p.Spec.Type != enums.ProjectileSpellBlack || p.Owner != c.ID || p.Direction != enums.DirectionRight {
		t.Errorf("projectile = %s owner %s dir %s", p.Spec.Type, p.Owner, p.Direction)
	}
	if c.Direction != enums.DirectionRight || c.Pos != (domain.Position{X: 2, Y: 2}) {
		t.Errorf("creature at %v facing %s", c.Pos, c.Direction)
	}
}

func TestAIRangedAttackLimits(t *testing.T) {
	params := forcedParams(func(p *AIParams) {
		p.WanderPercent = 100
		p.RangedPercent = 101
		p.DiagonalShotPercent = 0
	})

	tests := []struct {
		name    string
		player  domain.Position
		wantDir enums.Direction
	}{
		{"out of range", domain.Position{X: 9, Y: 2}, enums.DirectionDown},
		{"diagonal", domain.Position{X: 4, Y: 4}, enums.DirectionDownRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 12, tt.player, nil)
			c := spawn(t, w, "skeleton", domain.Position{X: 2, Y: 2}, enums.ElevationGround)

			newTestAI(params).Update(w)
			w.Reconcile()

			if len(w.Projectiles) != 0 {
				t.Error("creature fired")
			}
			if c.Direction != tt.wantDir {
				t.Errorf("Direction = %s, want %s", c.Direction, tt.wantDir)
			}
		})
	}
}

func TestAIChase(t *testing.T) {
	ai := newTestAI(forcedParams(func(p *AIParams) {
		p.WanderPercent = 100
		p.RangedPercent = 0
		p.ChasePercent = 100
	}))

	w := newTestWorld(t, 12, domain.Position{X: 8, Y: 2}, nil)
	c := spawn(t, w, "skeleton", domain.Position{X: 2, Y: 2}, enums.ElevationGround)

	for i := 0; i < 3; i++ {
		ai.Update(w)
	}
	if c.Pos != (domain.Position{X: 5, Y: 2}) || c.Direction != enums.DirectionRight {
		t.Errorf("creature at %v facing %s", c.Pos, c.Direction)
	}
}

func TestAIIgnoresFriendsAndNeutrals(t *testing.T) {
	ai := newTestAI(forcedParams(func(p *AIParams) {
		p.WanderPercent = 100
		p.RangedPercent = 101
	}))

	w := newTestWorld(t, 12, domain.Position{X: 5, Y: 2}, nil)
	spawn(t, w, "guard", domain.Position{X: 2, Y: 2}, enums.ElevationGround)
	spawn(t, w, "rat", domain.Position{X: 2, Y: 4}, enums.ElevationGround)
	spawn(t, w, "skeleton", domain.Position{X: 8, Y: 8}, enums.ElevationUnderground)

	ai.Update(w)
	w.Reconcile()

	// The rat shoots at the guard and the player; nobody shoots the rat.
	for _, p := range w.Projectiles {
		owner, _ := w.Resolve(p.Owner)
		if owner.Name != "Rat" {
			t.Errorf("%s fired", owner.Name)
		}
	}
}

func TestAIWander(t *testing.T) {
	ai := newTestAI(forcedParams(func(p *AIParams) {
		p.WanderPercent = 0
		p.RandomFacingPercent = 100
		p.TurnOnBlockPercent = 100
	}))

	w := newTestWorld(t, 12, domain.Position{X: 10, Y: 10}, nil)
	c := spawn(t, w, "skeleton", domain.Position{X: 2, Y: 2}, enums.ElevationGround)
	c.Direction = enums.DirectionRight

	ai.Update(w)
	if c.Pos != (domain.Position{X: 3, Y: 2}) {
		t.Errorf("creature at %v, want (3,2)", c.Pos)
	}
}

func TestAILoadShedding(t *testing.T) {
	ai := newTestAI(forcedParams(func(p *AIParams) {
		p.MaxLoad = 0
		p.LoadShedPercent = 0
		p.WanderPercent = 0
		p.RandomFacingPercent = 100
	}))

	w := newTestWorld(t, 12, domain.Position{X: 10, Y: 10}, nil)
	c := spawn(t, w, "skeleton", domain.Position{X: 2, Y: 2}, enums.ElevationGround)
	c.Direction = enums.DirectionRight

	ai.Update(w)
	if c.Pos != (domain.Position{X: 2, Y: 2}) {
		t.Error("creature acted under full load shedding")
	}
}

func TestAIDeterministic(t *testing.T) {
	run := func() []domain.Position {
		w := newTestWorld(t, 16, domain.Position{X: 8, Y: 8}, nil)
		for _, pos := range []domain.Position{{X: 2, Y: 2}, {X: 12, Y: 3}, {X: 4, Y: 12}} {
			spawn(t, w, "skeleton", pos, enums.ElevationGround)
		}
		spawn(t, w, "guard", domain.Position{X: 10, Y: 10}, enums.ElevationGround)

		ai := NewAI(DefaultAIParams(), rand.New(rand.NewSource(42)), domain.ProjectileSpeedDefault)
		for i := 0; i < 50; i++ {
			ai.Update(w)
			ResolveProjectiles(w, Discard)
			w.Reconcile()
		}

		var out []domain.Position
		for _, c := range w.Creatures {
			out = append(out, c.Pos)
		}
		return out
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("rosters differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("creature %d at %v vs %v", i, a[i], b[i])
		}
	}
}
