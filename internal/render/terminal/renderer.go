package terminal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/api"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	cellWidth = 2 // terminal columns per tile
	logLines  = 5
)

// Renderer draws frames on a tcell screen and turns key presses into
// commands. The view is the player's tile window with a status line and
// the latest log lines under it.
type Renderer struct {
	screen tcell.Screen
	glyphs Glyphs
	logs   []string
	last   *api.FrameResponse
}

func New(screen tcell.Screen, flags domain.SpriteFlagTable) *Renderer {
	return &Renderer{
		screen: screen,
		glyphs: NewGlyphs(flags),
	}
}

// Draw paints one frame and shows it.
func (r *Renderer) Draw(f api.FrameResponse) {
	r.last = &f
	r.screen.Clear()

	origin := viewOrigin(f)
	lit := make(map[int]bool, len(f.Lit))
	for _, n := range f.Lit {
		lit[n] = true
	}
	size := 0
	if f.Grid != nil {
		size = f.Grid.Width
	}
	dark := f.PlayerZ == int(enums.ElevationUnderground)

	style := func(x, y int, color tcell.Color) tcell.Style {
		st := tcell.StyleDefault.Foreground(color)
		if dark && !lit[x+y*size] {
			st = st.Dim(true)
		}
		return st
	}

	for _, layer := range f.Layers {
		objects := layer.Kind == enums.LayerObjects.String()
		above := layer.Z == int(enums.ElevationAboveground)
		for i, id := range layer.IDs {
			g, ok := r.glyphs.Tile(id, objects, above)
			if !ok {
				continue
			}
			x, y := layer.X+i%layer.Width, layer.Y+i/layer.Width
			r.put(x-origin.X, y-origin.Y, g.Rune, style(x, y, g.Color))
		}
	}

	playerID := ""
	if f.Player != nil {
		playerID = f.Player.ID
	}
	for _, t := range f.Things {
		g := r.glyphs.Thing(t, t.ID != "" && t.ID == playerID)
		r.put(t.X-origin.X, t.Y-origin.Y, g.Rune, style(t.X, t.Y, g.Color))
	}

	for _, l := range f.Logs {
		r.logs = append(r.logs, l.Text)
	}
	if len(r.logs) > logLines {
		r.logs = r.logs[len(r.logs)-logLines:]
	}

	row := domain.NumTilesY + 1
	r.text(0, row, r.status(f))
	for i, line := range r.logs {
		r.text(0, row+1+i, line)
	}

	r.screen.Show()
}

func viewOrigin(f api.FrameResponse) domain.Position {
	if len(f.Layers) > 0 {
		return domain.Position{X: f.Layers[0].X, Y: f.Layers[0].Y}
	}
	if f.Player != nil {
		return domain.Position{X: f.Player.X - domain.NumTilesFromCenterX, Y: f.Player.Y - domain.NumTilesFromCenterY}
	}
	return domain.Position{}
}

func (r *Renderer) put(vx, vy int, ch rune, st tcell.Style) {
	if vx < 0 || vy < 0 || vx >= domain.NumTilesX || vy >= domain.NumTilesY {
		return
	}
	r.screen.SetContent(vx*cellWidth, vy, ch, nil, st)
}

func (r *Renderer) text(x, y int, s string) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
		x++
	}
}

func (r *Renderer) status(f api.FrameResponse) string {
	if f.Player == nil {
		return fmt.Sprintf("tick %d", f.Tick)
	}
	p := f.Player
	s := fmt.Sprintf("%s HP %d/%d  %d,%d %s  tick %d", p.Name, p.HP, p.MaxHP, p.X, p.Y,
		enums.Elevation(p.Z), f.Tick)
	if p.IsDead {
		s += "  DEAD"
	}
	return s
}

// Run draws frames as they arrive and submits the commands typed by the
// player, until ctx is done, frames closes or the player quits.
func (r *Renderer) Run(ctx context.Context, frames <-chan api.FrameResponse, submit func(api.ClientCommand) bool) error {
	runLogger := logger.Log.WithFields(logrus.Fields{"component": "terminal"})

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case f, ok := <-frames:
			if !ok {
				return nil
			}
			r.Draw(f)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				r.screen.Sync()
			case *tcell.EventKey:
				if IsQuit(ev) {
					runLogger.Info("Quit requested.")
					return nil
				}
				if r.last == nil {
					continue
				}
				if cmd, ok := CommandForKey(ev, r.last.Player); ok && !submit(cmd) {
					runLogger.WithField("action", cmd.Action).Debug("Command dropped.")
				}
			}
		}
	}
}

// IsQuit reports whether the key ends the session.
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

var arrowSteps = map[tcell.Key][2]int{
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
}

// CommandForKey maps a key press to a command:
//
//	arrows  move
//	space   shoot straight ahead
//	e       use the ladder in front
//	f       use the lever in front
//	w       wait
func CommandForKey(ev *tcell.EventKey, p *api.CreatureView) (api.ClientCommand, bool) {
	if p == nil || p.IsDead {
		return api.ClientCommand{}, false
	}
	if step, ok := arrowSteps[ev.Key()]; ok {
		return withPayload("MOVE", api.DirectionPayload{Dx: step[0], Dy: step[1]})
	}
	if ev.Key() != tcell.KeyRune {
		return api.ClientCommand{}, false
	}

	dir, ok := enums.ParseDirection(p.Direction)
	if !ok {
		dir = enums.DirectionDown
	}
	dx, dy := dir.Delta()
	ahead := func(n int) (api.PositionPayload, bool) {
		x, y := p.X+dx*n, p.Y+dy*n
		if x < 0 || y < 0 {
			return api.PositionPayload{}, false
		}
		return api.PositionPayload{X: x, Y: y}, true
	}

	switch ev.Rune() {
	case ' ':
		if target, ok := ahead(domain.ProjectileRangeDefault); ok {
			return withPayload("SHOOT", target)
		}
	case 'e':
		if target, ok := ahead(1); ok {
			return withPayload("USE_LADDER", target)
		}
	case 'f':
		if target, ok := ahead(1); ok {
			return withPayload("USE_LEVER", target)
		}
	case 'w':
		return api.ClientCommand{Action: "WAIT"}, true
	}
	return api.ClientCommand{}, false
}

func withPayload(action string, payload any) (api.ClientCommand, bool) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return api.ClientCommand{}, false
	}
	return api.ClientCommand{Action: action, Payload: raw}, true
}
