package systems

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/internal/infrastructure/storage"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
	"github.com/kevrgithub/tibianer-old/pkg/worldgen"
)

func TestAttemptMoveCollisions(t *testing.T) {
	ground := enums.ElevationGround
	start := domain.Position{X: 3, Y: 3}

	tests := []struct {
		name  string
		from  domain.Position
		dir   enums.Direction
		setup func(t *testing.T, w *domain.GameWorld)
	}{
		{
			name: "solid wall",
			from: start,
			dir:  enums.DirectionRight,
			setup: func(t *testing.T, w *domain.GameWorld) {
				w.SpawnObject(&domain.Object{ID: catalog.SpriteWallStone, Pos: start.Shift(1, 0), Z: ground})
				w.Reconcile()
			},
		},
		{
			name: "live creature",
			from: start,
			dir:  enums.DirectionDown,
			setup: func(t *testing.T, w *domain.GameWorld) {
				spawn(t, w, "guard", start.Shift(0, 1), ground)
			},
		},
		{
			name: "player tile",
			from: domain.Position{X: 7, Y: 7},
			dir:  enums.DirectionUpLeft,
		},
		{
			name: "map edge",
			from: domain.Position{X: 0, Y: 2},
			dir:  enums.DirectionLeft,
		},
		{
			name: "water",
			from: start,
			dir:  enums.DirectionUp,
			setup: func(t *testing.T, w *domain.GameWorld) {
				tm := w.Map.Layer(enums.LayerTiles, ground)
				n := tm.Number(start.Shift(0, -1))
				tm.UpdateTileID(n, catalog.SpriteWaterFirst)
				tm.RefreshTileFlags(n)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 8, domain.Position{X: 6, Y: 6}, nil)
			if tt.setup != nil {
				tt.setup(t, w)
			}
			c := spawn(t, w, "skeleton", tt.from, ground)
			c.Direction = enums.DirectionDown
			if tt.dir == enums.DirectionDown {
				c.Direction = enums.DirectionUp
			}

			if got := AttemptMove(w, c, tt.dir); got != MoveBlocked {
				t.Errorf("AttemptMove() = %s, want BLOCKED", got)
			}
			if c.Pos != tt.from {
				t.Errorf("position changed to %v", c.Pos)
			}
			if c.Direction != tt.dir {
				t.Errorf("Direction = %s, want %s", c.Direction, tt.dir)
			}
		})
	}
}

func TestAttemptMoveIntoOpenAir(t *testing.T) {
	w := newTestWorld(t, 8, domain.Position{}, func(b *worldgen.LevelBuilder) {
		b.Set(enums.ElevationAboveground, enums.LayerTiles, domain.Position{X: 3, Y: 3}, catalog.SpriteWoodFloor)
	})
	c := spawn(t, w, "guard", domain.Position{X: 3, Y: 3}, enums.ElevationAboveground)

	if got := AttemptMove(w, c, enums.DirectionRight); got != MoveBlocked {
		t.Errorf("AttemptMove() = %s, want BLOCKED", got)
	}
}

func TestAttemptMoveSteps(t *testing.T) {
	from := domain.Position{X: 2, Y: 2}
	to := from.Shift(1, 0)
	w := newTestWorld(t, 8, domain.Position{X: 6, Y: 6}, func(b *worldgen.LevelBuilder) {
		b.Set(enums.ElevationGround, enums.LayerTiles, from, catalog.SpriteStepWoodDown)
		b.Set(enums.ElevationGround, enums.LayerTiles, to, catalog.SpriteStepStone)
		b.Set(enums.ElevationGround, enums.LayerObjects, to, catalog.SpriteChair)
	})
	c := spawn(t, w, "guard", from, enums.ElevationGround)

	if got := AttemptMove(w, c, enums.DirectionRight); got != MoveMoved {
		t.Fatalf("AttemptMove() = %s, want MOVED", got)
	}
	if c.Pos != to || !c.Moving {
		t.Errorf("Pos = %v Moving = %v", c.Pos, c.Moving)
	}
	if !c.Sitting {
		t.Error("creature on a chair should sit")
	}

	tm := w.Map.Layer(enums.LayerTiles, enums.ElevationGround)
	if id := tm.IDs()[tm.Number(from)]; id != catalog.SpriteStepWood {
		t.Errorf("origin step = %d, want released wood", id)
	}
	if id := tm.IDs()[tm.Number(to)]; id != catalog.SpriteStepStoneDown {
		t.Errorf("destination step = %d, want pressed stone", id)
	}

	AttemptMove(w, c, enums.DirectionRight)
	if c.Sitting {
		t.Error("still sitting after leaving the chair")
	}
}

func TestAttemptMoveDead(t *testing.T) {
	w := newTestWorld(t, 6, domain.Position{}, nil)
	c := spawn(t, w, "guard", domain.Position{X: 2, Y: 2}, enums.ElevationGround)
	c.TakeDamage(c.HP)
	c.Direction = enums.DirectionUp

	if got := AttemptMove(w, c, enums.DirectionRight); got != MoveDead {
		t.Errorf("AttemptMove() = %s, want DEAD", got)
	}
	if c.Pos != (domain.Position{X: 2, Y: 2}) || c.Direction != enums.DirectionUp {
		t.Error("dead creature moved or turned")
	}
}

func TestAttemptMoveTransitions(t *testing.T) {
	stairs := domain.Position{X: 4, Y: 5}
	hole := domain.Position{X: 4, Y: 5}

	t.Run("move above", func(t *testing.T) {
		w := newTestWorld(t, 10, domain.Position{}, func(b *worldgen.LevelBuilder) {
			b.PlaceStairsUp(enums.ElevationGround, stairs, catalog.SpriteWoodFloor)
		})
		c := spawn(t, w, "guard", stairs.Shift(0, 1), enums.ElevationGround)

		if got := AttemptMove(w, c, enums.DirectionUp); got != MoveTransitioned {
			t.Fatalf("AttemptMove() = %s, want TRANSITIONED", got)
		}
		if c.Z != enums.ElevationAboveground || c.Pos != stairs.Shift(-1, -2) {
			t.Errorf("landed at %v z=%s", c.Pos, c.Z)
		}
		if c.Direction != enums.DirectionUp {
			t.Errorf("Direction = %s, want UP", c.Direction)
		}
	})

	t.Run("move above falls back beside the stairs", func(t *testing.T) {
		w := newTestWorld(t, 10, domain.Position{}, func(b *worldgen.LevelBuilder) {
			b.PlaceStairsUp(enums.ElevationGround, stairs, catalog.SpriteWoodFloor)
			b.Set(enums.ElevationAboveground, enums.LayerObjects, stairs.Shift(-1, -2), catalog.SpriteWallWood)
			b.Set(enums.ElevationAboveground, enums.LayerTiles, stairs.Shift(-1, 0), catalog.SpriteWoodFloor)
		})
		c := spawn(t, w, "guard", stairs.Shift(0, 1), enums.ElevationGround)

		if got := AttemptMove(w, c, enums.DirectionUp); got != MoveTransitioned {
			t.Fatalf("AttemptMove() = %s, want TRANSITIONED", got)
		}
		if c.Pos != stairs.Shift(-1, 0) || c.Direction != enums.DirectionDown {
			t.Errorf("landed at %v facing %s", c.Pos, c.Direction)
		}
	})

	t.Run("move above aborts into the air", func(t *testing.T) {
		w := newTestWorld(t, 10, domain.Position{}, func(b *worldgen.LevelBuilder) {
			b.Set(enums.ElevationGround, enums.LayerObjects, stairs, catalog.SpriteStairsUp)
		})
		from := stairs.Shift(0, 1)
		c := spawn(t, w, "guard", from, enums.ElevationGround)

		if got := AttemptMove(w, c, enums.DirectionUp); got != MoveBlocked {
			t.Fatalf("AttemptMove() = %s, want BLOCKED", got)
		}
		if c.Pos != from || c.Z != enums.ElevationGround || c.Direction != enums.DirectionUp {
			t.Errorf("creature at %v z=%s facing %s", c.Pos, c.Z, c.Direction)
		}
	})

	t.Run("move below", func(t *testing.T) {
		w := newTestWorld(t, 10, domain.Position{}, func(b *worldgen.LevelBuilder) {
			b.PlaceHole(enums.ElevationGround, hole, catalog.SpriteStoneFloor)
		})
		c := spawn(t, w, "guard", hole.Shift(-1, 0), enums.ElevationGround)

		if got := AttemptMove(w, c, enums.DirectionRight); got != MoveTransitioned {
			t.Fatalf("AttemptMove() = %s, want TRANSITIONED", got)
		}
		if c.Z != enums.ElevationUnderground || c.Pos != hole.Shift(1, 2) || c.Direction != enums.DirectionDown {
			t.Errorf("landed at %v z=%s facing %s", c.Pos, c.Z, c.Direction)
		}
	})

	t.Run("move below aborts on solid", func(t *testing.T) {
		w := newTestWorld(t, 10, domain.Position{}, func(b *worldgen.LevelBuilder) {
			b.PlaceHole(enums.ElevationGround, hole, catalog.SpriteStoneFloor)
			b.Set(enums.ElevationUnderground, enums.LayerObjects, hole.Shift(1, 2), catalog.SpriteRock)
		})
		c := spawn(t, w, "guard", hole.Shift(-1, 0), enums.ElevationGround)

		if got := AttemptMove(w, c, enums.DirectionRight); got != MoveBlocked {
			t.Fatalf("AttemptMove() = %s, want BLOCKED", got)
		}
		if c.Z != enums.ElevationGround {
			t.Error("elevation changed")
		}
	})
}

func TestMoveBelowFromUnderground(t *testing.T) {
	w := newTestWorld(t, 10, domain.Position{}, nil)
	c := spawn(t, w, "guard", domain.Position{X: 2, Y: 2}, enums.ElevationUnderground)
	if MoveBelow(w, c, domain.Position{X: 3, Y: 2}) {
		t.Error("moved below the lowest layer")
	}
}

// A ladder map written to TMX and loaded back: using the ladder from an
// adjacent tile climbs, using it from further away does nothing.
func TestUseLadderFromLoadedMap(t *testing.T) {
	cat := catalog.Default()
	ladder := domain.Position{X: 4, Y: 4}
	lvl, err := worldgen.NewLevel(8, cat, rand.New(rand.NewSource(1))).
		Fill(enums.ElevationGround, enums.LayerTiles, catalog.SpriteGrass).
		PlaceLadder(enums.ElevationGround, ladder, catalog.SpriteWoodFloor).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := storage.WriteMap(&buf, lvl.Map); err != nil {
		t.Fatalf("WriteMap() error = %v", err)
	}
	m, err := storage.ReadMap(&buf, cat)
	if err != nil {
		t.Fatalf("ReadMap() error = %v", err)
	}

	w := domain.NewGameWorld(m, cat)
	w.InitPlayer(catalog.NewPlayer(domain.Position{}, enums.ElevationGround))
	c := spawn(t, w, "guard", ladder.Shift(1, 1), enums.ElevationGround)

	if !UseLadder(w, c, ladder) {
		t.Fatal("UseLadder() from an adjacent tile failed")
	}
	if c.Z != enums.ElevationAboveground || c.Pos != ladder.Shift(-1, -2) {
		t.Errorf("climbed to %v z=%s", c.Pos, c.Z)
	}

	far := spawn(t, w, "guard", ladder.Shift(2, 0), enums.ElevationGround)
	if UseLadder(w, far, ladder) {
		t.Error("UseLadder() from two tiles away succeeded")
	}
	if far.Z != enums.ElevationGround || far.Pos != ladder.Shift(2, 0) {
		t.Error("distant creature moved")
	}
}

func TestUseLever(t *testing.T) {
	lever := domain.Position{X: 3, Y: 3}
	w := newTestWorld(t, 8, domain.Position{X: 3, Y: 4}, func(b *worldgen.LevelBuilder) {
		b.Set(enums.ElevationGround, enums.LayerObjects, lever, catalog.SpriteLeverOff)
	})
	tm := w.Map.Layer(enums.LayerObjects, enums.ElevationGround)
	n := tm.Number(lever)

	if !UseLever(w, w.Player, lever) {
		t.Fatal("UseLever() failed")
	}
	if tm.IDs()[n] != catalog.SpriteLeverOn {
		t.Errorf("lever id = %d, want on", tm.IDs()[n])
	}
	if tm.Tiles()[n].Flags != w.Catalog.Flags.FlagsFor(catalog.SpriteLeverOn) {
		t.Error("lever flags not refreshed")
	}

	UseLever(w, w.Player, lever)
	if tm.IDs()[n] != catalog.SpriteLeverOff {
		t.Error("lever did not toggle back")
	}

	w.Player.Pos = domain.Position{X: 6, Y: 6}
	if UseLever(w, w.Player, lever) {
		t.Error("lever used from afar")
	}
	if UseLever(w, w.Player, domain.Position{X: 6, Y: 7}) {
		t.Error("non-lever tile toggled")
	}
}
