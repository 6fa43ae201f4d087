package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/kevrgithub/tibianer-old/internal/audio"
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/internal/engine"
	"github.com/kevrgithub/tibianer-old/internal/infrastructure/storage"
	"github.com/kevrgithub/tibianer-old/internal/network"
	"github.com/kevrgithub/tibianer-old/internal/render/terminal"
	"github.com/kevrgithub/tibianer-old/internal/server"
	"github.com/kevrgithub/tibianer-old/internal/version"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
	"github.com/kevrgithub/tibianer-old/pkg/logger"
	"github.com/kevrgithub/tibianer-old/pkg/worldgen"

	"github.com/sirupsen/logrus"
)

type options struct {
	mapPath string
	size    int
	seed    int64
	tui     bool
	sound   bool
	listen  string
	logFile string
	debug   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.mapPath, "map", "", "TMX map to load (default: generate one)")
	flag.IntVar(&opts.size, "size", worldgen.DefaultSize, "Size of a generated map")
	flag.Int64Var(&opts.seed, "seed", 0, "World and AI seed (0 for random)")
	flag.BoolVar(&opts.tui, "tui", true, "Draw the game in this terminal")
	flag.BoolVar(&opts.sound, "audio", false, "Play sound effects")
	flag.StringVar(&opts.listen, "listen", "", "Serve the websocket feed on this address (default :$TIBIANER_PORT when set)")
	flag.StringVar(&opts.logFile, "log", "", "Log file while the terminal view is on")
	flag.BoolVar(&opts.debug, "debug", false, "Enable admin commands")
	flag.Parse()

	if opts.listen == "" {
		if port := os.Getenv("TIBIANER_PORT"); port != "" {
			opts.listen = ":" + port
		}
	}

	closeLog, err := initLogger(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(opts); err != nil {
		logger.Log.WithError(err).Fatal("Client failed.")
	}
	logger.Log.Info("Done.")
}

// initLogger sends logs to stdout, or away from it while the terminal
// view owns the screen.
func initLogger(opts options) (func(), error) {
	if !opts.tui {
		logger.Init()
		return func() {}, nil
	}
	if opts.logFile == "" {
		logger.InitWithOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.InitWithOutput(f)
	return func() { _ = f.Close() }, nil
}

func run(opts options) error {
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	cfg.Debug = opts.debug
	logger.Log.WithField("seed", cfg.Seed).Info("Seed chosen.")

	cat := catalog.Default()
	world, err := loadWorld(opts, cat, cfg.Seed)
	if err != nil {
		return err
	}

	var sfx engine.AudioService
	if opts.sound {
		p := audio.NewPlayer(audio.SampleRate)
		if err := p.Start(); err != nil {
			logger.Log.WithError(err).Warn("No audio device, playing silently.")
		} else {
			defer p.Close()
			sfx = p
		}
	}

	game, err := engine.NewGame(world, cfg, sfx)
	if err != nil {
		return err
	}
	hub := network.NewBroadcaster()
	loop := engine.NewLoop(game, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() { errCh <- loop.Run(ctx) }()
	if opts.listen != "" {
		srv := server.New(loop, hub, opts.listen)
		go func() { errCh <- srv.Run(ctx) }()
	}

	if opts.tui {
		if err := runTerminal(ctx, hub, loop, cat.Flags); err != nil {
			return err
		}
		cancel()
	} else {
		if opts.listen == "" {
			logger.Log.Warn("Running headless with no websocket feed.")
		}
		<-ctx.Done()
	}

	logger.Log.Info("Shutting down...")
	for i := 0; i < cap(errCh); i++ {
		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
		default:
		}
	}
	return nil
}

// loadWorld reads the map from disk with the player in its centre, or
// generates the demo level.
func loadWorld(opts options, cat *domain.Catalog, seed int64) (*domain.GameWorld, error) {
	if opts.mapPath == "" {
		lvl, err := worldgen.Generate(opts.size, cat, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, fmt.Errorf("generate map: %w", err)
		}
		return engine.BuildWorld(lvl, cat)
	}

	m, err := storage.LoadMap(opts.mapPath, cat)
	if err != nil {
		return nil, err
	}
	logger.Log.WithFields(logrus.Fields{
		"path":    opts.mapPath,
		"size":    m.Size,
		"objects": len(m.Objects),
	}).Info("Map loaded.")

	start := domain.Position{X: m.Size / 2, Y: m.Size / 2}
	return engine.NewWorldFromMap(m, cat, start, enums.ElevationGround)
}

func runTerminal(ctx context.Context, hub *network.Broadcaster, loop *engine.Loop, flags domain.SpriteFlagTable) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	id, frames := hub.Subscribe()
	defer hub.Unsubscribe(id)

	return terminal.New(screen, flags).Run(ctx, frames, loop.Submit)
}
