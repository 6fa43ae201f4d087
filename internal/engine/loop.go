package engine

import (
	"context"
	"time"

	"github.com/kevrgithub/tibianer-old/pkg/api"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CommandQueueSize bounds the commands waiting for the next frame.
const CommandQueueSize = 100

// Publisher receives every frame the loop produces.
type Publisher interface {
	Publish(frame api.FrameResponse)
}

// Loop owns a Game in a single goroutine. Commands and inspection calls
// from other goroutines are queued and run between frames.
type Loop struct {
	game     *Game
	pub      Publisher
	commands chan api.ClientCommand
	calls    chan func(*Game)
	interval time.Duration
}

func NewLoop(g *Game, pub Publisher) *Loop {
	return &Loop{
		game:     g,
		pub:      pub,
		commands: make(chan api.ClientCommand, CommandQueueSize),
		calls:    make(chan func(*Game)),
		interval: g.Config.FrameInterval(),
	}
}

// Submit queues a command for the next frame. It never blocks and
// returns false when the queue is full.
func (l *Loop) Submit(cmd api.ClientCommand) bool {
	select {
	case l.commands <- cmd:
		return true
	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "loop",
			"action":    cmd.Action,
		}).Warn("Command queue full, dropping command.")
		return false
	}
}

// Do runs fn on the loop goroutine between frames and waits for it.
func (l *Loop) Do(ctx context.Context, fn func(g *Game)) error {
	done := make(chan struct{})
	call := func(g *Game) {
		defer close(done)
		fn(g)
	}

	select {
	case l.calls <- call:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run steps the game once per frame interval until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	runLogger := logger.Log.WithFields(logrus.Fields{
		"component": "loop",
		"interval":  l.interval,
	})
	runLogger.Info("Game loop started.")

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			runLogger.WithField("tick", l.game.TickCount()).Info("Game loop stopped.")
			return ctx.Err()
		case fn := <-l.calls:
			fn(l.game)
		case now := <-ticker.C:
			l.Step(now)
		}
	}
}

// Step drains the queued commands, advances the game to now and
// publishes the frame.
func (l *Loop) Step(now time.Time) api.FrameResponse {
drain:
	for {
		select {
		case cmd := <-l.commands:
			if err := l.game.Execute(cmd); err != nil {
				logger.Log.WithFields(logrus.Fields{
					"component": "loop",
					"action":    cmd.Action,
				}).WithError(err).Debug("Command failed.")
			}
		default:
			break drain
		}
	}

	frame := l.game.Tick(now).Response()
	if l.pub != nil {
		l.pub.Publish(frame)
	}
	return frame
}
