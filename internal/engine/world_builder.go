package engine

import (
	"fmt"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
	"github.com/kevrgithub/tibianer-old/pkg/logger"
	"github.com/kevrgithub/tibianer-old/pkg/worldgen"

	"github.com/sirupsen/logrus"
)

// BuildWorld makes a live world from a generated level: the player at
// the level start and every scheduled spawn queued.
func BuildWorld(lvl *worldgen.Level, cat *domain.Catalog) (*domain.GameWorld, error) {
	w, err := NewWorldFromMap(lvl.Map, cat, lvl.Start, lvl.StartZ)
	if err != nil {
		return nil, err
	}

	for _, sp := range lvl.Spawns {
		tmpl, ok := catalog.Template(sp.Template)
		if !ok {
			return nil, fmt.Errorf("spawn at %v: unknown template %q", sp.Pos, sp.Template)
		}
		w.SpawnCreature(tmpl.Spawn(sp.Pos, sp.Z))
	}
	w.Reconcile()

	logger.Log.WithFields(logrus.Fields{
		"component": "world_builder",
		"size":      lvl.Map.Size,
		"creatures": len(w.Creatures),
		"objects":   len(w.Objects),
	}).Info("World built.")

	return w, nil
}

// NewWorldFromMap wraps a loaded map and places the player at (start, z).
func NewWorldFromMap(m *domain.Map, cat *domain.Catalog, start domain.Position, z enums.Elevation) (*domain.GameWorld, error) {
	if !m.InBounds(start) || !z.IsValid() {
		return nil, fmt.Errorf("player start %v/%s is off the map", start, z)
	}

	w := domain.NewGameWorld(m, cat)
	if w.IsNull(start, z) {
		return nil, fmt.Errorf("player start %v/%s has no floor", start, z)
	}
	w.InitPlayer(catalog.NewPlayer(start, z))
	return w, nil
}
