package domain_test

import (
	"testing"
	"time"

	"github.com/kevrgithub/tibianer-old/internal/core/types"
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
)

func TestCreatureTakeDamage(t *testing.T) {
	tests := []struct {
		name     string
		hp       int
		damage   int
		wantHP   int
		wantDied bool
	}{
		{"survives", 100, 30, 70, false},
		{"exact kill", 100, 100, 0, true},
		{"overkill floors at zero", 20, 500, 0, true},
		{"negative damage ignored", 50, -10, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &domain.Creature{HP: tt.hp, HPMax: tt.hp}
			died := c.TakeDamage(tt.damage)
			if c.HP != tt.wantHP || died != tt.wantDied || c.Dead != tt.wantDied {
				t.Errorf("HP=%d died=%v Dead=%v, want HP=%d died=%v", c.HP, died, c.Dead, tt.wantHP, tt.wantDied)
			}
		})
	}
}

func TestCreatureDeadStaysDead(t *testing.T) {
	c := &domain.Creature{HP: 10, HPMax: 10, Outfit: 1, Corpse: 2}
	c.TakeDamage(10)
	if c.TakeDamage(10) {
		t.Error("corpse died twice")
	}
	c.Heal(5)
	if c.HP != 0 {
		t.Error("corpse healed")
	}
	if c.SpriteID() != 2 {
		t.Errorf("SpriteID() = %d, want the corpse", c.SpriteID())
	}
}

func TestCreatureHealCapped(t *testing.T) {
	c := &domain.Creature{HP: 90, HPMax: 100}
	c.Heal(50)
	if c.HP != 100 {
		t.Errorf("HP = %d, want 100", c.HP)
	}
}

func TestCreatureDecay(t *testing.T) {
	c := &domain.Creature{HP: 1, HPMax: 1, DecayTime: 2 * time.Second}
	c.Update(time.Hour)
	if c.HasDecayed() {
		t.Fatal("living creature decayed")
	}
	c.TakeDamage(1)
	c.Update(time.Second)
	if c.HasDecayed() {
		t.Fatal("decayed early")
	}
	c.Update(time.Second)
	if !c.HasDecayed() {
		t.Error("did not decay")
	}
}

func TestAnimationFrames(t *testing.T) {
	strip := domain.AnimationID{First: 70, Frames: 3}

	t.Run("single pass", func(t *testing.T) {
		a := domain.NewAnimation(strip, domain.Position{}, enums.ElevationGround, 100*time.Millisecond)
		var seen []int
		for !a.IsDone() {
			seen = append(seen, a.SpriteID())
			a.Update(100 * time.Millisecond)
		}
		if len(seen) != 3 || seen[0] != 70 || seen[2] != 72 {
			t.Errorf("frames = %v", seen)
		}
		if a.SpriteID() != 72 {
			t.Errorf("finished SpriteID() = %d, want last frame", a.SpriteID())
		}
	})

	t.Run("partial dt accumulates", func(t *testing.T) {
		a := domain.NewAnimation(strip, domain.Position{}, enums.ElevationGround, 100*time.Millisecond)
		a.Update(60 * time.Millisecond)
		if a.CurrentFrame != 0 {
			t.Fatal("advanced early")
		}
		a.Update(60 * time.Millisecond)
		if a.CurrentFrame != 1 {
			t.Errorf("CurrentFrame = %d, want 1", a.CurrentFrame)
		}
	})

	t.Run("repeat", func(t *testing.T) {
		a := domain.NewAnimation(strip, domain.Position{}, enums.ElevationGround, 0)
		a.NumRepeat = 1
		n := 0
		for !a.IsDone() {
			a.Update(0)
			n++
		}
		if n != 6 {
			t.Errorf("took %d updates, want 6", n)
		}
	})
}

func TestAnimationKind(t *testing.T) {
	a := domain.NewAnimation(domain.AnimationID{First: 1, Frames: 1}, domain.Position{}, enums.ElevationGround, 0)
	if a.Kind() != enums.ThingKindAnimation {
		t.Error("animation kind")
	}
	a.Decal = true
	if a.Kind() != enums.ThingKindDecal {
		t.Error("decal kind")
	}
}

func TestProjectileCrossings(t *testing.T) {
	spec := catalog.Default().Projectile(enums.ProjectileArrow)
	origin := domain.Position{X: 2, Y: 2}
	p := domain.NewProjectile(spec, enums.DirectionRight, origin, domain.Position{X: 9, Y: 2},
		enums.ElevationGround, types.NilEntityID, 0, false, false)

	if p.Speed != domain.ProjectileSpeedDefault {
		t.Fatalf("Speed = %d", p.Speed)
	}

	crossings := 0
	for i := 0; i < 3*domain.TileSize/p.Speed; i++ {
		p.Advance()
		if p.AtCrossing() {
			crossings++
			want := domain.Position{X: origin.X + crossings, Y: origin.Y}
			if p.TilePos() != want {
				t.Errorf("crossing %d at %v, want %v", crossings, p.TilePos(), want)
			}
			if p.TileDistanceTravelled() != crossings {
				t.Errorf("TileDistanceTravelled() = %d, want %d", p.TileDistanceTravelled(), crossings)
			}
		}
	}
	if crossings != 3 {
		t.Errorf("crossings = %d, want 3", crossings)
	}
}

func TestProjectileNormal(t *testing.T) {
	spec := catalog.Default().Projectile(enums.ProjectileSpellFire)
	origin := domain.Position{}
	dest := domain.Position{X: 3, Y: 1}

	loose := domain.NewProjectile(spec, enums.DirectionDownRight, origin, dest, enums.ElevationGround, types.NilEntityID, 0, false, false)
	if loose.Normal != (domain.Vec2{X: 1, Y: 1}) {
		t.Errorf("direction normal = %v", loose.Normal)
	}

	precise := domain.NewProjectile(spec, enums.DirectionDownRight, origin, dest, enums.ElevationGround, types.NilEntityID, 0, true, false)
	if precise.Normal.X <= precise.Normal.Y || precise.Normal.Y <= 0 {
		t.Errorf("precise normal = %v", precise.Normal)
	}
}

func TestPositionHelpers(t *testing.T) {
	a := domain.Position{X: 3, Y: 4}
	if a.DistanceTo(domain.Position{}) != 5 {
		t.Error("DistanceTo")
	}
	if a.DistanceSquaredTo(domain.Position{}) != 25 {
		t.Error("DistanceSquaredTo")
	}
	if a.TileDistanceTo(domain.Position{X: 1, Y: 3}) != 2 {
		t.Error("TileDistanceTo")
	}
	if !a.IsAdjacent(domain.Position{X: 4, Y: 5}) || a.IsAdjacent(a) {
		t.Error("IsAdjacent")
	}
	if a.Step(enums.DirectionUpLeft) != (domain.Position{X: 2, Y: 3}) {
		t.Error("Step")
	}

	tests := []struct {
		to   domain.Position
		want enums.Direction
	}{
		{domain.Position{X: 3, Y: 0}, enums.DirectionUp},
		{domain.Position{X: 10, Y: 5}, enums.DirectionRight},
		{domain.Position{X: 5, Y: 6}, enums.DirectionDownRight},
		{domain.Position{X: 0, Y: 1}, enums.DirectionUpLeft},
	}
	for _, tt := range tests {
		got, ok := a.DirectionTo(tt.to)
		if !ok || got != tt.want {
			t.Errorf("DirectionTo(%v) = %s, %v; want %s", tt.to, got, ok, tt.want)
		}
	}
	if _, ok := a.DirectionTo(a); ok {
		t.Error("DirectionTo(self) should fail")
	}
}

func TestObjectAnimate(t *testing.T) {
	cycles := [][]int{{1, 2, 3}, {7, 8}}
	o := &domain.Object{ID: 3}
	if !o.Animate(cycles) || o.ID != 1 {
		t.Errorf("wrap: ID = %d", o.ID)
	}
	o.ID = 9
	if o.Animate(cycles) {
		t.Error("non-animated object animated")
	}
}
