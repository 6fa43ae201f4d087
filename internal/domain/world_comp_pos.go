package domain

import (
	"math"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
)

// DistanceTo returns the euclidean distance in tiles.
func (p Position) DistanceTo(other Position) float64 {
	return math.Sqrt(math.Pow(float64(p.X-other.X), 2) + math.Pow(float64(p.Y-other.Y), 2))
}

// DistanceSquaredTo avoids the square root for comparisons.
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// TileDistanceTo is the Chebyshev distance: the number of 8-way steps
// between two tiles.
func (p Position) TileDistanceTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// IsAdjacent is true for the 8 surrounding tiles, not for p itself.
func (p Position) IsAdjacent(other Position) bool {
	d := p.TileDistanceTo(other)
	return d == 1
}

// Shift returns p moved by (dx, dy).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbour of p in direction d.
func (p Position) Step(d enums.Direction) Position {
	dx, dy := d.Delta()
	return p.Shift(dx, dy)
}

// Pixels returns the top-left pixel of the tile.
func (p Position) Pixels() Vec2 {
	return Vec2{X: float64(p.X * TileSize), Y: float64(p.Y * TileSize)}
}

// DirectionTo discretizes the vector from p to other into one of the
// eight directions. Each axis becomes -1, 0 or 1 after normalizing, with
// components under half a unit rounding to 0.
func (p Position) DirectionTo(other Position) (enums.Direction, bool) {
	dx := float64(other.X - p.X)
	dy := float64(other.Y - p.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return enums.DirectionUp, false
	}
	return enums.DirectionFromDelta(discretize(dx/length), discretize(dy/length))
}

func discretize(v float64) int {
	switch {
	case v >= 0.5:
		return 1
	case v <= -0.5:
		return -1
	}
	return 0
}
