package systems

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// Octant transforms for recursive shadowcasting.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleTiles returns the tile numbers reachable by light from
// pos within radius on elevation z. Tiles that block projectiles are lit
// but cast shadows.
func ComputeVisibleTiles(w *domain.GameWorld, pos domain.Position, z enums.Elevation, radius int) map[int]bool {
	visible := make(map[int]bool)
	if radius <= 0 || !w.Map.InBounds(pos) {
		return visible
	}

	castInto(w, pos, z, radius, visible)
	return visible
}

func castInto(w *domain.GameWorld, pos domain.Position, z enums.Elevation, radius int, visible map[int]bool) {
	visible[pos.X+pos.Y*w.Map.Size] = true

	for i := 0; i < 8; i++ {
		castLight(w, z, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}
}

func castLight(w *domain.GameWorld, z enums.Elevation, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible map[int]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)
	size := w.Map.Size

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if X >= 0 && Y >= 0 && X < size && Y < size {
				if float64(dx*dx+dy*dy) < radiusSq {
					visible[X+Y*size] = true
				}
			}

			if blocked {
				if isBlocking(w, X, Y, z) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if isBlocking(w, X, Y, z) && j < radius {
				blocked = true
				castLight(w, z, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// isBlocking treats the map edge as a wall.
func isBlocking(w *domain.GameWorld, x, y int, z enums.Elevation) bool {
	pos := domain.Position{X: x, Y: y}
	if !w.Map.InBounds(pos) {
		return true
	}
	return w.BlocksProjectiles(pos, z)
}
