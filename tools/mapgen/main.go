// Command mapgen writes the generated demo level as a TMX map.
//
//	mapgen -o level.tmx -size 64 -seed 7
package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/kevrgithub/tibianer-old/internal/infrastructure/storage"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
	"github.com/kevrgithub/tibianer-old/pkg/logger"
	"github.com/kevrgithub/tibianer-old/pkg/worldgen"

	"github.com/sirupsen/logrus"
)

func main() {
	out := flag.String("o", "level.tmx", "Output file")
	size := flag.Int("size", worldgen.DefaultSize, "Map size in tiles")
	seed := flag.Int64("seed", 0, "Generator seed (0 for random)")
	flag.Parse()

	logger.Init()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	lvl, err := worldgen.Generate(*size, catalog.Default(), rand.New(rand.NewSource(*seed)))
	if err != nil {
		logger.Log.WithError(err).Fatal("Generation failed.")
	}
	if err := storage.SaveMap(*out, lvl.Map); err != nil {
		logger.Log.WithError(err).Fatal("Write failed.")
	}

	logger.Log.WithFields(logrus.Fields{
		"path":    *out,
		"size":    lvl.Map.Size,
		"seed":    *seed,
		"spawns":  len(lvl.Spawns),
		"objects": len(lvl.Map.Objects),
	}).Info("Map written.")
}
