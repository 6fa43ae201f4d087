package worldgen

import (
	"fmt"
	"math/rand"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
)

// Rect is an axis-aligned tile rectangle.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() domain.Position {
	return domain.Position{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// SpawnPoint is a creature to spawn once the world exists.
type SpawnPoint struct {
	Template string
	Pos      domain.Position
	Z        enums.Elevation
}

// Level is the result of a build.
type Level struct {
	Map    *domain.Map
	Spawns []SpawnPoint
	Start  domain.Position
	StartZ enums.Elevation
}

// LevelBuilder is a fluent API over raw layer ids. Nothing is validated
// until Build.
type LevelBuilder struct {
	size    int
	cat     *domain.Catalog
	rng     *rand.Rand
	layers  [enums.ElevationCount][enums.LayerKindCount][]int
	objects []*domain.Object
	spawns  []SpawnPoint
	rooms   map[enums.Elevation][]Rect
	start   domain.Position
	startZ  enums.Elevation
	err     error
}

// NewLevel starts a size×size map with every layer null.
func NewLevel(size int, cat *domain.Catalog, rng *rand.Rand) *LevelBuilder {
	b := &LevelBuilder{
		size:   size,
		cat:    cat,
		rng:    rng,
		rooms:  make(map[enums.Elevation][]Rect),
		start:  domain.Position{X: size / 2, Y: size / 2},
		startZ: enums.ElevationGround,
	}
	for z := range b.layers {
		for k := range b.layers[z] {
			ids := make([]int, size*size)
			for i := range ids {
				ids[i] = cat.Sprites.Null
			}
			b.layers[z][k] = ids
		}
	}
	return b
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

func (b *LevelBuilder) inBounds(p domain.Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.size && p.Y < b.size
}

// Set writes one tile id. Off-map writes are recorded as a build error.
func (b *LevelBuilder) Set(z enums.Elevation, kind enums.LayerKind, p domain.Position, id int) *LevelBuilder {
	if !b.inBounds(p) {
		if b.err == nil {
			b.err = fmt.Errorf("set %s/%s at %v: off map", z, kind, p)
		}
		return b
	}
	b.layers[z][kind][p.X+p.Y*b.size] = id
	return b
}

// Get reads one tile id; off-map reads give the null sprite.
func (b *LevelBuilder) Get(z enums.Elevation, kind enums.LayerKind, p domain.Position) int {
	if !b.inBounds(p) {
		return b.cat.Sprites.Null
	}
	return b.layers[z][kind][p.X+p.Y*b.size]
}

// Fill paints a whole layer.
func (b *LevelBuilder) Fill(z enums.Elevation, kind enums.LayerKind, id int) *LevelBuilder {
	return b.FillRect(z, kind, Rect{W: b.size, H: b.size}, id)
}

// FillRect paints the inside of r, clipped to the map.
func (b *LevelBuilder) FillRect(z enums.Elevation, kind enums.LayerKind, r Rect, id int) *LevelBuilder {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p := domain.Position{X: x, Y: y}
			if b.inBounds(p) {
				b.layers[z][kind][x+y*b.size] = id
			}
		}
	}
	return b
}

// Walls outlines r on the objects layer.
func (b *LevelBuilder) Walls(z enums.Elevation, r Rect, id int) *LevelBuilder {
	for x := r.X; x < r.X+r.W; x++ {
		b.FillRect(z, enums.LayerObjects, Rect{X: x, Y: r.Y, W: 1, H: 1}, id)
		b.FillRect(z, enums.LayerObjects, Rect{X: x, Y: r.Y + r.H - 1, W: 1, H: 1}, id)
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		b.FillRect(z, enums.LayerObjects, Rect{X: r.X, Y: y, W: 1, H: 1}, id)
		b.FillRect(z, enums.LayerObjects, Rect{X: r.X + r.W - 1, Y: y, W: 1, H: 1}, id)
	}
	return b
}

// Pond fills r with water on the ground tiles layer, each tile starting
// at a random frame of the first cycle.
func (b *LevelBuilder) Pond(r Rect) *LevelBuilder {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p := domain.Position{X: x, Y: y}
			if b.inBounds(p) {
				b.Set(enums.ElevationGround, enums.LayerTiles, p, b.cat.Sprites.Water[b.rng.Intn(4)])
			}
		}
	}
	return b
}

// WithRooms fills elevation z with solid wall and carves rooms joined by
// corridors.
func (b *LevelBuilder) WithRooms(z enums.Elevation, maxRooms, minSize, maxSize, floor, wall int) *LevelBuilder {
	b.Fill(z, enums.LayerTiles, floor)
	b.Fill(z, enums.LayerObjects, wall)

	carve := func(p domain.Position) {
		b.Set(z, enums.LayerObjects, p, b.cat.Sprites.Null)
	}

	rooms := make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := b.randRange(minSize, maxSize)
		h := b.randRange(minSize, maxSize)
		if w >= b.size-2 || h >= b.size-2 {
			continue
		}
		room := Rect{
			X: b.randRange(1, b.size-w-1),
			Y: b.randRange(1, b.size-h-1),
			W: w,
			H: h,
		}

		failed := false
		for _, other := range rooms {
			if room.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		for y := room.Y; y < room.Y+room.H; y++ {
			for x := room.X; x < room.X+room.W; x++ {
				carve(domain.Position{X: x, Y: y})
			}
		}

		if len(rooms) > 0 {
			prev := rooms[len(rooms)-1].Center()
			curr := room.Center()
			if b.rng.Intn(2) == 0 {
				b.corridorH(prev.X, curr.X, prev.Y, carve)
				b.corridorV(prev.Y, curr.Y, curr.X, carve)
			} else {
				b.corridorV(prev.Y, curr.Y, prev.X, carve)
				b.corridorH(prev.X, curr.X, curr.Y, carve)
			}
		}
		rooms = append(rooms, room)
	}
	b.rooms[z] = append(b.rooms[z], rooms...)
	return b
}

func (b *LevelBuilder) corridorH(x1, x2, y int, carve func(domain.Position)) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		carve(domain.Position{X: x, Y: y})
	}
}

func (b *LevelBuilder) corridorV(y1, y2, x int, carve func(domain.Position)) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		carve(domain.Position{X: x, Y: y})
	}
}

// Rooms returns the rooms carved at z.
func (b *LevelBuilder) Rooms(z enums.Elevation) []Rect {
	return b.rooms[z]
}

// PlaceObject adds a free placed object.
func (b *LevelBuilder) PlaceObject(z enums.Elevation, p domain.Position, id int) *LevelBuilder {
	b.objects = append(b.objects, &domain.Object{ID: id, Pos: p, Z: z})
	return b
}

// PlaceLadder puts a ladder on the objects layer at (z, p) and clears the
// landing tile one elevation up, at (p.X-1, p.Y-2).
func (b *LevelBuilder) PlaceLadder(z enums.Elevation, p domain.Position, floor int) *LevelBuilder {
	b.Set(z, enums.LayerObjects, p, catalog.SpriteLadder)
	b.clearLanding(z+1, p.Shift(-1, -2), floor)
	return b
}

// PlaceStairsUp is PlaceLadder for walk-on stairs.
func (b *LevelBuilder) PlaceStairsUp(z enums.Elevation, p domain.Position, floor int) *LevelBuilder {
	b.Set(z, enums.LayerObjects, p, catalog.SpriteStairsUp)
	b.clearLanding(z+1, p.Shift(-1, -2), floor)
	return b
}

// PlaceHole puts a move-below hole at (z, p) and clears the landing tile
// one elevation down, at (p.X+1, p.Y+2).
func (b *LevelBuilder) PlaceHole(z enums.Elevation, p domain.Position, floor int) *LevelBuilder {
	b.Set(z, enums.LayerObjects, p, catalog.SpriteHole)
	b.clearLanding(z-1, p.Shift(1, 2), floor)
	return b
}

func (b *LevelBuilder) clearLanding(z enums.Elevation, p domain.Position, floor int) {
	if !z.IsValid() {
		if b.err == nil {
			b.err = fmt.Errorf("landing at %v: elevation %d out of range", p, z)
		}
		return
	}
	b.Set(z, enums.LayerTiles, p, floor)
	b.Set(z, enums.LayerObjects, p, b.cat.Sprites.Null)
}

// Spawn schedules a creature from a named template.
func (b *LevelBuilder) Spawn(template string, z enums.Elevation, p domain.Position) *LevelBuilder {
	if _, ok := catalog.Template(template); !ok {
		if b.err == nil {
			b.err = fmt.Errorf("unknown creature template %q", template)
		}
		return b
	}
	b.spawns = append(b.spawns, SpawnPoint{Template: template, Pos: p, Z: z})
	return b
}

// SpawnInRooms scatters count creatures over the rooms carved at z,
// skipping the first room.
func (b *LevelBuilder) SpawnInRooms(template string, z enums.Elevation, count int) *LevelBuilder {
	rooms := b.rooms[z]
	for i := 0; i < count && len(rooms) > 1; i++ {
		room := rooms[b.rng.Intn(len(rooms)-1)+1]
		c := room.Center()
		b.Spawn(template, z, c.Shift(b.randRange(-1, 1), b.randRange(-1, 1)))
	}
	return b
}

// StartAt sets the player start.
func (b *LevelBuilder) StartAt(z enums.Elevation, p domain.Position) *LevelBuilder {
	b.start = p
	b.startZ = z
	return b
}

// Build validates the layers through the domain constructors.
func (b *LevelBuilder) Build() (*Level, error) {
	if b.err != nil {
		return nil, b.err
	}

	m := &domain.Map{Size: b.size}
	for z := enums.ElevationUnderground; z <= enums.ElevationAboveground; z++ {
		for k := enums.LayerTiles; k <= enums.LayerObjects; k++ {
			ids := make([]int, len(b.layers[z][k]))
			copy(ids, b.layers[z][k])
			if err := m.SetLayer(k, z, fmt.Sprintf("%s %s", z, k), ids, b.cat); err != nil {
				return nil, fmt.Errorf("build level: %w", err)
			}
		}
	}
	for _, o := range b.objects {
		if !b.cat.Flags.Contains(o.ID) {
			return nil, fmt.Errorf("build level: object sprite %d outside catalog", o.ID)
		}
		obj := *o
		m.Objects = append(m.Objects, &obj)
	}

	return &Level{
		Map:    m,
		Spawns: append([]SpawnPoint(nil), b.spawns...),
		Start:  b.start,
		StartZ: b.startZ,
	}, nil
}
