package engine

import (
	"fmt"
	"time"

	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/internal/systems"
)

// Config holds the engine start-up parameters.
type Config struct {
	// Seed drives the AI and every other random choice of the engine.
	Seed int64

	FrameRate int

	// Timing gates. Each runs at most once per frame.
	AIInterval      time.Duration
	SceneryInterval time.Duration // water and animated objects
	MiniMapInterval time.Duration

	AI systems.AIParams

	// ProjectileSpeed is in pixels per tick and must divide the tile
	// size.
	ProjectileSpeed int

	// Debug enables the SPAWN and TELEPORT commands.
	Debug bool
}

// NewConfig returns the defaults with a time-based seed.
func NewConfig() Config {
	return Config{
		Seed:            time.Now().UnixNano(),
		FrameRate:       30,
		AIInterval:      time.Second,
		SceneryInterval: 500 * time.Millisecond,
		MiniMapInterval: time.Second,
		AI:              systems.DefaultAIParams(),
		ProjectileSpeed: domain.ProjectileSpeedDefault,
	}
}

// FrameInterval is the wall-clock time of one frame.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

func (c Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame rate %d must be positive", c.FrameRate)
	}
	if c.ProjectileSpeed <= 0 || domain.TileSize%c.ProjectileSpeed != 0 {
		return fmt.Errorf("projectile speed %d must divide the tile size %d", c.ProjectileSpeed, domain.TileSize)
	}
	if c.AIInterval < 0 || c.SceneryInterval < 0 || c.MiniMapInterval < 0 {
		return fmt.Errorf("timing intervals must not be negative")
	}
	return nil
}
