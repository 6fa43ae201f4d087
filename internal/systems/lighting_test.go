package systems

import (
	"math"
	"testing"

	"github.com/kevrgithub/tibianer-old/internal/core/types"
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
	"github.com/kevrgithub/tibianer-old/pkg/worldgen"
)

func TestVolumeByDistance(t *testing.T) {
	tests := []struct {
		distance float64
		want     float64
	}{
		{0, 100},
		{domain.DrawDistanceMax, 50},
		{2 * domain.DrawDistanceMax, 0},
		{100, 0},
		{-5, 100},
	}
	for _, tt := range tests {
		if got := VolumeByDistance(tt.distance); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("VolumeByDistance(%v) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestCollectLights(t *testing.T) {
	under := enums.ElevationUnderground
	w := newTestWorld(t, 32, domain.Position{X: 5, Y: 5}, func(b *worldgen.LevelBuilder) {
		b.Set(under, enums.LayerObjects, domain.Position{X: 8, Y: 5}, catalog.SpriteTorch)
		b.Set(under, enums.LayerObjects, domain.Position{X: 30, Y: 30}, catalog.SpriteTorch)
		b.PlaceObject(under, domain.Position{X: 5, Y: 8}, catalog.SpriteLamp)
	})

	if lights := CollectLights(w); len(lights) != 0 {
		t.Fatalf("lights on the surface: %v", lights)
	}

	w.Player.Z = under
	spawn(t, w, "rat", domain.Position{X: 6, Y: 6}, under)
	spawn(t, w, "rat", domain.Position{X: 6, Y: 7}, enums.ElevationGround)
	w.SpawnProjectile(domain.NewProjectile(w.Catalog.Projectile(enums.ProjectileArrow), enums.DirectionRight,
		domain.Position{X: 4, Y: 4}, domain.Position{X: 9, Y: 4}, under, types.NilEntityID, 0, false, false))
	w.SpawnAnimation(w.Catalog.Effects.HitMiss, domain.Position{X: 3, Y: 3}, under)
	w.Reconcile()
	UpdateCreatures(w, 0)

	got := map[domain.Position]LightSize{}
	for _, l := range CollectLights(w) {
		got[l.Tile] = l.Size
	}
	want := map[domain.Position]LightSize{
		{X: 5, Y: 5}: LightLarge,
		{X: 6, Y: 6}: LightMedium,
		{X: 5, Y: 8}: LightMedium,
		{X: 8, Y: 5}: LightMedium,
		{X: 4, Y: 4}: LightSmall,
		{X: 3, Y: 3}: LightSmall,
	}
	if len(got) != len(want) {
		t.Fatalf("lights = %v, want %v", got, want)
	}
	for pos, size := range want {
		if got[pos] != size {
			t.Errorf("light at %v = %d, want %d", pos, got[pos], size)
		}
	}
}

func TestLitTilesShadows(t *testing.T) {
	under := enums.ElevationUnderground
	w := newTestWorld(t, 16, domain.Position{X: 5, Y: 5}, func(b *worldgen.LevelBuilder) {
		b.Set(under, enums.LayerObjects, domain.Position{X: 7, Y: 5}, catalog.SpriteWallStone)
	})
	size := w.Map.Size
	lit := LitTiles(w, []Light{{Tile: domain.Position{X: 5, Y: 5}, Size: LightLarge}})

	tests := []struct {
		pos  domain.Position
		want bool
	}{
		{domain.Position{X: 5, Y: 5}, true},
		{domain.Position{X: 6, Y: 5}, true},
		{domain.Position{X: 7, Y: 5}, true},
		{domain.Position{X: 8, Y: 5}, false},
		{domain.Position{X: 5, Y: 8}, true},
		{domain.Position{X: 12, Y: 5}, false},
	}
	for _, tt := range tests {
		if got := lit[tt.pos.X+tt.pos.Y*size]; got != tt.want {
			t.Errorf("lit(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
