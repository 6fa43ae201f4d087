package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/internal/engine/handlers"
	"github.com/kevrgithub/tibianer-old/internal/systems"
	"github.com/kevrgithub/tibianer-old/pkg/api"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrNoPlayer      = errors.New("world has no player")
)

// Game owns the world and advances it one frame at a time. It is not
// safe for concurrent use; Loop serialises every access.
type Game struct {
	World  *domain.GameWorld
	Config Config
	AI     *systems.AI

	audio    AudioService
	handlers Registry
	rng      *rand.Rand

	tick        uint64
	last        time.Time
	lastAI      time.Time
	lastScenery time.Time
	lastMiniMap time.Time
	miniMap     []systems.MiniMapQuad

	logs   []api.LogEntry
	logSeq uint64
}

// NewGame wires a world to the systems. A nil audio service plays
// nothing.
func NewGame(w *domain.GameWorld, cfg Config, audio AudioService) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if w.Player == nil {
		return nil, ErrNoPlayer
	}
	if audio == nil {
		audio = Silent{}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	return &Game{
		World:    w,
		Config:   cfg,
		AI:       systems.NewAI(cfg.AI, rng, cfg.ProjectileSpeed),
		audio:    audio,
		handlers: NewRegistry(cfg.Debug),
		rng:      rng,
	}, nil
}

// TickCount is the number of frames simulated so far.
func (g *Game) TickCount() uint64 {
	return g.tick
}

// Execute runs one player command against the world. Rejected commands
// that the player should hear about end up in the log, not in the error.
func (g *Game) Execute(cmd api.ClientCommand) error {
	cmdLogger := logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"action":    cmd.Action,
	})

	if err := cmd.Validate(); err != nil {
		cmdLogger.WithError(err).Warn("Rejected command.")
		return err
	}

	action := enums.ParseAction(cmd.Action)
	handler, ok := g.handlers[action]
	if !ok {
		cmdLogger.Warn("Unknown action.")
		return fmt.Errorf("%w: %s", ErrUnknownAction, cmd.Action)
	}

	res, err := handler(g.context(), cmd.Payload)
	if err != nil {
		cmdLogger.WithError(err).Warn("Rejected command.")
		return fmt.Errorf("%s: %w", action, err)
	}

	if res.Msg != "" {
		g.AddLog(res.Msg, res.MsgType)
	}
	cmdLogger.Debug("Command executed.")
	return nil
}

func (g *Game) context() handlers.Context {
	return handlers.Context{
		World:           g.World,
		Actor:           g.World.Player,
		Sink:            g,
		Rng:             g.rng,
		ProjectileSpeed: g.Config.ProjectileSpeed,
	}
}

// Tick advances the world to now and returns the frame to draw. Timing
// gates compare now against the last time they fired, so callers drive
// the clock.
func (g *Game) Tick(now time.Time) Frame {
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	w := g.World
	w.Reconcile()
	g.cullSounds()

	systems.UpdateCreatures(w, dt)
	if due(&g.lastAI, now, g.Config.AIInterval) {
		g.AI.Update(w)
	}
	systems.ResolveProjectiles(w, g)
	systems.AdvanceAnimations(w, dt)
	w.Cull()

	if due(&g.lastScenery, now, g.Config.SceneryInterval) {
		systems.AnimateScenery(w)
	}
	if due(&g.lastMiniMap, now, g.Config.MiniMapInterval) {
		g.miniMap = systems.BuildMiniMap(w)
	}

	g.tick++
	return g.buildFrame()
}

// due fires a timing gate at most once per interval. A gate that never
// fired is due at once.
func due(last *time.Time, now time.Time, interval time.Duration) bool {
	if !last.IsZero() && now.Sub(*last) < interval {
		return false
	}
	*last = now
	return true
}

// cullSounds drops cues the audio service reports finished.
func (g *Game) cullSounds() {
	w := g.World
	kept := w.Sounds[:0]
	for _, s := range w.Sounds {
		if !g.audio.Finished(s.Handle) {
			kept = append(kept, s)
		}
	}
	clear(w.Sounds[len(kept):])
	w.Sounds = kept
}

// Message implements systems.Sink.
func (g *Game) Message(text string) {
	g.AddLog(text, handlers.MsgCombat)
}

// Sound implements systems.Sink. Cues on hidden elevations and cues too
// far away to hear are not played.
func (g *Game) Sound(name string, pos domain.Position, z enums.Elevation) {
	p := g.World.Player
	if name == "" || !systems.ElevationVisible(p.Z, z) {
		return
	}
	volume := systems.VolumeByDistance(p.Pos.DistanceTo(pos))
	if volume <= 0 {
		return
	}

	handle := g.audio.Play(name, volume)
	g.World.AddSound(domain.Sound{Handle: handle, Name: name})
}

// AddLog queues a message for the next frame.
func (g *Game) AddLog(text, logType string) {
	ts := g.last
	if ts.IsZero() {
		ts = time.Now()
	}

	g.logSeq++
	g.logs = append(g.logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", g.tick, g.logSeq),
		Text:      text,
		Type:      logType,
		Timestamp: ts.UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  logType,
		"tick":      g.tick,
	}).Info(text)
}
