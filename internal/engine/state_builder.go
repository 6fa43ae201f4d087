package engine

import (
	"slices"
	"strconv"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/internal/systems"
	"github.com/kevrgithub/tibianer-old/pkg/api"
)

// TileWindow is the part of one map layer inside the player's view.
type TileWindow struct {
	Kind   enums.LayerKind
	Z      enums.Elevation
	Origin domain.Position
	Width  int
	Height int
	IDs    []int // Row major. Off-map tiles hold the null sprite.
}

// At returns the id at a map position inside the window.
func (tw TileWindow) At(pos domain.Position) (int, bool) {
	x, y := pos.X-tw.Origin.X, pos.Y-tw.Origin.Y
	if x < 0 || y < 0 || x >= tw.Width || y >= tw.Height {
		return 0, false
	}
	return tw.IDs[x+y*tw.Width], true
}

// Frame is an immutable picture of the world after one tick. Renderers
// only ever read frames.
type Frame struct {
	Tick    uint64
	MapSize int
	PlayerZ enums.Elevation
	Player  domain.Creature

	TileLayers []TileWindow
	Drawables  []systems.Drawable
	MiniMap    []systems.MiniMapQuad
	Lights     []systems.Light
	Lit        []int // Sorted tile numbers.
	Logs       []api.LogEntry
}

func (g *Game) buildFrame() Frame {
	w := g.World
	p := w.Player

	f := Frame{
		Tick:       g.tick,
		MapSize:    w.Map.Size,
		PlayerZ:    p.Z,
		Player:     *p,
		TileLayers: visibleLayers(w),
		Drawables:  systems.BuildDrawList(w),
		MiniMap:    slices.Clone(g.miniMap),
		Logs:       g.logs,
	}
	g.logs = nil

	if lights := systems.CollectLights(w); len(lights) > 0 {
		f.Lights = lights
		lit := systems.LitTiles(w, lights)
		f.Lit = make([]int, 0, len(lit))
		for n := range lit {
			f.Lit = append(f.Lit, n)
		}
		slices.Sort(f.Lit)
	}

	return f
}

// visibleLayers cuts the player's view out of the layers drawn at the
// player's elevation: the underground layers alone, or the ground layers
// topped by the above-ground layers unless a roof hides them.
func visibleLayers(w *domain.GameWorld) []TileWindow {
	p := w.Player
	origin := p.Pos.Shift(-domain.NumTilesFromCenterX, -domain.NumTilesFromCenterY)

	elevations := []enums.Elevation{enums.ElevationUnderground}
	if p.Z != enums.ElevationUnderground {
		elevations = []enums.Elevation{enums.ElevationGround}
		if systems.RoofVisible(w) {
			elevations = append(elevations, enums.ElevationAboveground)
		}
	}

	var windows []TileWindow
	for _, z := range elevations {
		for k := enums.LayerTiles; k <= enums.LayerObjects; k++ {
			tm := w.Map.Layer(k, z)
			if tm == nil {
				continue
			}
			windows = append(windows, cutWindow(w, tm, origin))
		}
	}
	return windows
}

func cutWindow(w *domain.GameWorld, tm *domain.TileMap, origin domain.Position) TileWindow {
	tw := TileWindow{
		Kind:   tm.Kind,
		Z:      tm.Elevation,
		Origin: origin,
		Width:  domain.NumTilesX,
		Height: domain.NumTilesY,
		IDs:    make([]int, domain.NumTilesX*domain.NumTilesY),
	}

	ids := tm.IDs()
	for y := 0; y < tw.Height; y++ {
		for x := 0; x < tw.Width; x++ {
			id := w.Catalog.Sprites.Null
			if n := tm.Number(origin.Shift(x, y)); n >= 0 {
				id = ids[n]
			}
			tw.IDs[x+y*tw.Width] = id
		}
	}
	return tw
}

// Response converts the frame to its wire form.
func (f Frame) Response() api.FrameResponse {
	resp := api.FrameResponse{
		Type:    "FRAME",
		Tick:    f.Tick,
		PlayerZ: int(f.PlayerZ),
		Player: &api.CreatureView{
			ID:        strconv.FormatUint(uint64(f.Player.ID), 10),
			Name:      f.Player.Name,
			Team:      f.Player.Team.String(),
			HP:        f.Player.HP,
			MaxHP:     f.Player.HPMax,
			IsDead:    f.Player.Dead,
			X:         f.Player.Pos.X,
			Y:         f.Player.Pos.Y,
			Z:         int(f.Player.Z),
			Direction: f.Player.Direction.String(),
		},
		Grid: &api.GridMeta{Width: f.MapSize, Height: f.MapSize},
		Lit:  f.Lit,
		Logs: f.Logs,
	}

	for _, tw := range f.TileLayers {
		resp.Layers = append(resp.Layers, api.TileLayerView{
			Kind:   tw.Kind.String(),
			Z:      int(tw.Z),
			X:      tw.Origin.X,
			Y:      tw.Origin.Y,
			Width:  tw.Width,
			Height: tw.Height,
			IDs:    tw.IDs,
		})
	}

	for _, d := range f.Drawables {
		view := api.ThingView{
			Kind:     d.Kind.String(),
			SpriteID: d.SpriteID,
			X:        d.Tile.X,
			Y:        d.Tile.Y,
			PixelX:   int(d.Pixel.X),
			PixelY:   int(d.Pixel.Y),
			Z:        int(d.Z),
			Offset:   d.Offset,
			Dead:     d.Dead,
		}
		if !d.ID.IsNil() {
			view.ID = strconv.FormatUint(uint64(d.ID), 10)
		}
		if d.Bar != nil {
			view.Bar = &api.HealthBarView{Percent: d.Bar.Percent, Team: d.Bar.Team.String()}
		}
		resp.Things = append(resp.Things, view)
	}

	for _, q := range f.MiniMap {
		resp.MiniMap = append(resp.MiniMap, api.MiniMapQuadView{X: q.Tile.X, Y: q.Tile.Y, Color: q.Color.String()})
	}
	for _, l := range f.Lights {
		resp.Lights = append(resp.Lights, api.LightView{X: l.Tile.X, Y: l.Tile.Y, Radius: l.Size.Radius()})
	}

	return resp
}
