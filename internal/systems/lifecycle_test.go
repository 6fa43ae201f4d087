package systems

import (
	"testing"
	"time"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
	"github.com/kevrgithub/tibianer-old/pkg/worldgen"
)

func TestAnimateSceneryWaterGate(t *testing.T) {
	water := domain.Position{X: 10, Y: 5}

	tests := []struct {
		name     string
		player   domain.Position
		z        enums.Elevation
		wantMove bool
	}{
		{"water in view", domain.Position{X: 5, Y: 5}, enums.ElevationGround, true},
		{"water out of view", domain.Position{X: 25, Y: 25}, enums.ElevationGround, false},
		{"player underground", domain.Position{X: 5, Y: 5}, enums.ElevationUnderground, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 32, tt.player, func(b *worldgen.LevelBuilder) {
				b.Set(enums.ElevationGround, enums.LayerTiles, water, catalog.SpriteWaterFirst)
			})
			w.Player.Z = tt.z

			if got := AnimateScenery(w); got != tt.wantMove {
				t.Fatalf("AnimateScenery() = %v, want %v", got, tt.wantMove)
			}
			tm := w.Map.Layer(enums.LayerTiles, enums.ElevationGround)
			tile, _ := tm.TileAt(water)
			if moved := tile.ID != catalog.SpriteWaterFirst; moved != tt.wantMove {
				t.Errorf("water tile id = %d, moved %v, want %v", tile.ID, moved, tt.wantMove)
			}
		})
	}
}

func TestAnimateSceneryObjects(t *testing.T) {
	w := newTestWorld(t, 32, domain.Position{X: 5, Y: 5}, func(b *worldgen.LevelBuilder) {
		b.PlaceObject(enums.ElevationGround, domain.Position{X: 6, Y: 5}, catalog.SpriteCampfire)
		b.PlaceObject(enums.ElevationGround, domain.Position{X: 30, Y: 30}, catalog.SpriteCampfire)
		b.PlaceObject(enums.ElevationUnderground, domain.Position{X: 5, Y: 6}, catalog.SpriteCampfire)
		b.PlaceObject(enums.ElevationGround, domain.Position{X: 4, Y: 5}, catalog.SpriteTorch)
	})

	AnimateScenery(w)

	want := []int{catalog.SpriteCampfire + 1, catalog.SpriteCampfire, catalog.SpriteCampfire, catalog.SpriteTorch}
	for i, o := range w.Objects {
		if o.ID != want[i] {
			t.Errorf("object %d at %v: id = %d, want %d", i, o.Pos, o.ID, want[i])
		}
	}
}

func TestRoofVisible(t *testing.T) {
	roof := domain.Position{X: 10, Y: 10}

	tests := []struct {
		name   string
		player domain.Position
		z      enums.Elevation
		want   bool
	}{
		{"under roof", domain.Position{X: 10, Y: 10}, enums.ElevationGround, false},
		{"at hide radius", domain.Position{X: 12, Y: 8}, enums.ElevationGround, false},
		{"outside radius", domain.Position{X: 13, Y: 10}, enums.ElevationGround, true},
		{"underground", domain.Position{X: 10, Y: 10}, enums.ElevationUnderground, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 32, tt.player, func(b *worldgen.LevelBuilder) {
				b.Set(enums.ElevationAboveground, enums.LayerTiles, roof, catalog.SpriteRoof)
			})
			w.Player.Z = tt.z
			if got := RoofVisible(w); got != tt.want {
				t.Errorf("RoofVisible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateCreaturesDistance(t *testing.T) {
	w := newTestWorld(t, 32, domain.Position{X: 5, Y: 5}, nil)
	rat := spawn(t, w, "rat", domain.Position{X: 8, Y: 9}, enums.ElevationGround)

	UpdateCreatures(w, 100*time.Millisecond)

	if rat.DistanceFromPlayer != 5 {
		t.Errorf("DistanceFromPlayer = %v, want 5", rat.DistanceFromPlayer)
	}
	if w.Player.DistanceFromPlayer != 0 {
		t.Errorf("player distance = %v, want 0", w.Player.DistanceFromPlayer)
	}
}
