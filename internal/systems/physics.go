package systems

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HasLineOfSight walks a Bresenham line from p1 to p2 on elevation z and
// reports whether no tile strictly between them blocks projectiles.
func HasLineOfSight(w *domain.GameWorld, p1, p2 domain.Position, z enums.Elevation) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"function":  "HasLineOfSight",
		"start_pos": p1,
		"end_pos":   p2,
		"z":         z,
	})

	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := sign(x1-x0), sign(y1-y0)

	err := dx - dy

	for {
		cur := domain.Position{X: x0, Y: y0}
		if cur != p1 && cur != p2 {
			if !w.Map.InBounds(cur) {
				losLogger.WithField("blocking_point", cur).Debug("Line leaves the map.")
				return false
			}
			if w.BlocksProjectiles(cur, z) {
				losLogger.WithField("blocking_point", cur).Debug("Line is blocked.")
				return false
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
