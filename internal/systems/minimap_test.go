package systems

import (
	"testing"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
	"github.com/kevrgithub/tibianer-old/pkg/worldgen"
)

func TestTileColor(t *testing.T) {
	tests := []struct {
		name  string
		flags domain.TileFlags
		want  MiniMapColor
		ok    bool
	}{
		{"plain", 0, 0, false},
		{"chair only", domain.FlagChair, 0, false},
		{"solid", domain.FlagSolid | domain.FlagBlockProjectiles, MiniMapSolid, true},
		{"water", domain.FlagWater | domain.FlagSolid, MiniMapWater, true},
		{"lava", domain.FlagLava, MiniMapLava, true},
		{"ladder over solid", domain.FlagLadder | domain.FlagSolid, MiniMapTransition, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TileColor(tt.flags)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("TileColor() = %s, %v; want %s, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBuildMiniMap(t *testing.T) {
	w := newTestWorld(t, 40, domain.Position{X: 5, Y: 5}, func(b *worldgen.LevelBuilder) {
		b.Set(enums.ElevationGround, enums.LayerObjects, domain.Position{X: 1, Y: 1}, catalog.SpriteWallStone)
		b.Set(enums.ElevationGround, enums.LayerTiles, domain.Position{X: 2, Y: 1}, catalog.SpriteLava)
		b.Set(enums.ElevationGround, enums.LayerTiles, domain.Position{X: 3, Y: 1}, catalog.SpriteBlank)
		b.Set(enums.ElevationUnderground, enums.LayerObjects, domain.Position{X: 1, Y: 2}, catalog.SpriteRock)
		b.PlaceObject(enums.ElevationGround, domain.Position{X: 4, Y: 1}, catalog.SpriteLadder)
		b.PlaceObject(enums.ElevationGround, domain.Position{X: 39, Y: 39}, catalog.SpriteRock)
	})
	spawn(t, w, "skeleton", domain.Position{X: 6, Y: 6}, enums.ElevationGround)
	spawn(t, w, "rat", domain.Position{X: 7, Y: 6}, enums.ElevationGround)
	dead := spawn(t, w, "guard", domain.Position{X: 8, Y: 6}, enums.ElevationGround)
	dead.TakeDamage(dead.HP)
	UpdateCreatures(w, 0)

	quads := BuildMiniMap(w)

	want := []MiniMapQuad{
		{Tile: domain.Position{X: 2, Y: 1}, Color: MiniMapLava},
		{Tile: domain.Position{X: 1, Y: 1}, Color: MiniMapSolid},
		{Tile: domain.Position{X: 4, Y: 1}, Color: MiniMapTransition},
		{Tile: domain.Position{X: 6, Y: 6}, Color: MiniMapEvil},
		{Tile: domain.Position{X: 7, Y: 6}, Color: MiniMapNeutral},
		{Tile: domain.Position{X: 5, Y: 5}, Color: MiniMapPlayer},
	}
	if len(quads) != len(want) {
		t.Fatalf("quads = %v, want %v", quads, want)
	}
	for i := range want {
		if quads[i] != want[i] {
			t.Errorf("quad %d = %+v, want %+v", i, quads[i], want[i])
		}
	}
}

func TestTeamColor(t *testing.T) {
	if TeamColor(enums.TeamGood) != MiniMapGood || TeamColor(enums.TeamEvil) != MiniMapEvil || TeamColor(enums.TeamNeutral) != MiniMapNeutral {
		t.Error("team colors")
	}
}
