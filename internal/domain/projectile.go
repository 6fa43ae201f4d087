package domain

import (
	"math"

	"github.com/kevrgithub/tibianer-old/internal/core/types"
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
)

// ProjectileSpeedDefault is in pixels per tick and divides TileSize.
const ProjectileSpeedDefault = 4

// Projectile flies from Origin toward Destination. Owner is a handle,
// not a reference: a shooter that has left the world resolves to nothing.
type Projectile struct {
	Spec        ProjectileSpec
	Direction   enums.Direction
	Origin      Position
	Destination Position
	Normal      Vec2
	Z           enums.Elevation
	Owner       types.EntityID
	Speed       int

	// DistanceTravelled is in pixels.
	DistanceTravelled int

	IsPrecise bool
	IsChild   bool
}

// NewProjectile aims a projectile. Precise projectiles follow the true
// normal from origin to destination; the rest step along the direction
// so every tile crossing lands on a tile.
func NewProjectile(spec ProjectileSpec, dir enums.Direction, origin, dest Position, z enums.Elevation, owner types.EntityID, speed int, precise, child bool) *Projectile {
	p := &Projectile{
		Spec:        spec,
		Direction:   dir,
		Origin:      origin,
		Destination: dest,
		Z:           z,
		Owner:       owner,
		Speed:       speed,
		IsPrecise:   precise,
		IsChild:     child,
	}
	if p.Speed <= 0 {
		p.Speed = ProjectileSpeedDefault
	}

	dx := float64(dest.X - origin.X)
	dy := float64(dest.Y - origin.Y)
	length := math.Hypot(dx, dy)

	if precise && length > 0 {
		p.Normal = Vec2{X: dx / length, Y: dy / length}
	} else {
		sx, sy := dir.Delta()
		p.Normal = Vec2{X: float64(sx), Y: float64(sy)}
	}
	return p
}

func (p *Projectile) Kind() enums.ThingKind      { return enums.ThingKindProjectile }
func (p *Projectile) Elevation() enums.Elevation { return p.Z }
func (p *Projectile) SpriteID() int              { return p.Spec.Sprite }

func (p *Projectile) PixelPos() Vec2 {
	o := p.Origin.Pixels()
	d := float64(p.DistanceTravelled)
	return Vec2{X: o.X + p.Normal.X*d, Y: o.Y + p.Normal.Y*d}
}

// TilePos is the tile under the centre of the sprite.
func (p *Projectile) TilePos() Position {
	px := p.PixelPos()
	return Position{
		X: int(math.Floor((px.X + TileSize/2) / TileSize)),
		Y: int(math.Floor((px.Y + TileSize/2) / TileSize)),
	}
}

// Advance moves the projectile one tick.
func (p *Projectile) Advance() {
	p.DistanceTravelled += p.Speed
}

// TileDistanceTravelled is the number of tile boundaries crossed.
func (p *Projectile) TileDistanceTravelled() int {
	return p.DistanceTravelled / TileSize
}

// AtCrossing is true on the tick the projectile reaches a new tile.
func (p *Projectile) AtCrossing() bool {
	return p.DistanceTravelled > 0 && p.DistanceTravelled%TileSize == 0
}
