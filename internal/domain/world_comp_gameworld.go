package domain

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types"
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
)

// Sound is a cue handed to the audio collaborator, kept until it reports
// the cue finished.
type Sound struct {
	Handle uint64
	Name   string
}

type creatureSlot struct {
	gen      uint16
	creature *Creature
}

// GameWorld owns every entity list. Each category has a live list and a
// pending list; pending entries join the live list at Reconcile, so an
// entity never takes part in the tick that created it.
type GameWorld struct {
	Map     *Map
	Catalog *Catalog
	Player  *Creature

	Creatures   []*Creature
	Objects     []*Object
	Animations  []*Animation
	Decals      []*Animation
	Projectiles []*Projectile
	Sounds      []Sound

	pendingCreatures   []*Creature
	pendingObjects     []*Object
	pendingAnimations  []*Animation
	pendingDecals      []*Animation
	pendingProjectiles []*Projectile

	slots []creatureSlot
	free  []uint32
}

// NewGameWorld takes over the placed objects of m as live objects.
func NewGameWorld(m *Map, cat *Catalog) *GameWorld {
	w := &GameWorld{Map: m, Catalog: cat}
	w.Objects = append(w.Objects, m.Objects...)
	m.Objects = nil
	return w
}

// InitPlayer places the player straight into the live roster.
func (w *GameWorld) InitPlayer(p *Creature) {
	p.IsPlayer = true
	p.ID = w.register(p)
	w.Player = p
	w.Creatures = append(w.Creatures, p)
}

// SpawnCreature queues c and returns its handle, which is valid at once.
func (w *GameWorld) SpawnCreature(c *Creature) types.EntityID {
	c.ID = w.register(c)
	w.pendingCreatures = append(w.pendingCreatures, c)
	return c.ID
}

func (w *GameWorld) register(c *Creature) types.EntityID {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, creatureSlot{})
	}
	w.slots[idx].creature = c
	return types.PackEntityID(enums.ThingKindCreature, w.slots[idx].gen, idx)
}

func (w *GameWorld) release(id types.EntityID) {
	idx := id.Index()
	if int(idx) >= len(w.slots) || w.slots[idx].gen != id.Generation() {
		return
	}
	w.slots[idx].creature = nil
	w.slots[idx].gen++
	w.free = append(w.free, idx)
}

// Resolve returns the creature behind a handle. Stale and nil handles
// resolve to nothing.
func (w *GameWorld) Resolve(id types.EntityID) (*Creature, bool) {
	if id.IsNil() || id.Kind() != enums.ThingKindCreature {
		return nil, false
	}
	idx := id.Index()
	if int(idx) >= len(w.slots) {
		return nil, false
	}
	slot := w.slots[idx]
	if slot.gen != id.Generation() || slot.creature == nil {
		return nil, false
	}
	return slot.creature, true
}

func (w *GameWorld) SpawnObject(o *Object) {
	w.pendingObjects = append(w.pendingObjects, o)
}

// SpawnAnimation queues a one-off animation. While the player is
// underground only underground animations are spawned.
func (w *GameWorld) SpawnAnimation(strip AnimationID, pos Position, z enums.Elevation) bool {
	if strip.IsZero() {
		return false
	}
	if w.Player != nil && w.Player.Z == enums.ElevationUnderground && z != enums.ElevationUnderground {
		return false
	}
	a := NewAnimation(strip, pos, z, w.Catalog.AnimationFrameTime)
	if w.Catalog.RepeatsOnce(strip) {
		a.NumRepeat = 1
	}
	w.pendingAnimations = append(w.pendingAnimations, a)
	return true
}

// SpawnDecal queues a decal unless one with the same first sprite
// already exists, live or pending, at (pos, z).
func (w *GameWorld) SpawnDecal(strip AnimationID, pos Position, z enums.Elevation) bool {
	if strip.IsZero() {
		return false
	}
	for _, d := range w.Decals {
		if d.SameDecal(strip, pos, z) {
			return false
		}
	}
	for _, d := range w.pendingDecals {
		if d.SameDecal(strip, pos, z) {
			return false
		}
	}
	a := NewAnimation(strip, pos, z, w.Catalog.DecalFrameTime)
	a.Decal = true
	w.pendingDecals = append(w.pendingDecals, a)
	return true
}

func (w *GameWorld) SpawnProjectile(p *Projectile) {
	w.pendingProjectiles = append(w.pendingProjectiles, p)
}

// AddSound tracks a cue that is already playing.
func (w *GameWorld) AddSound(s Sound) {
	w.Sounds = append(w.Sounds, s)
}

// PendingCount is the number of queued entities of every kind.
func (w *GameWorld) PendingCount() int {
	return len(w.pendingCreatures) + len(w.pendingObjects) + len(w.pendingAnimations) +
		len(w.pendingDecals) + len(w.pendingProjectiles)
}

// Reconcile merges pending entities into the live lists, then drops
// decayed creatures and finished animations and decals. Dropped
// creatures release their handle.
func (w *GameWorld) Reconcile() {
	w.Creatures = append(w.Creatures, w.pendingCreatures...)
	w.pendingCreatures = w.pendingCreatures[:0]

	w.Objects = append(w.Objects, w.pendingObjects...)
	w.pendingObjects = w.pendingObjects[:0]

	w.Animations = append(w.Animations, w.pendingAnimations...)
	w.pendingAnimations = w.pendingAnimations[:0]

	w.Decals = append(w.Decals, w.pendingDecals...)
	w.pendingDecals = w.pendingDecals[:0]

	w.Projectiles = append(w.Projectiles, w.pendingProjectiles...)
	w.pendingProjectiles = w.pendingProjectiles[:0]

	w.Cull()
}

// Cull drops decayed creatures and finished animations and decals from
// the live lists. Pending entities are left alone.
func (w *GameWorld) Cull() {
	creatures := w.Creatures[:0]
	for _, c := range w.Creatures {
		if c.HasDecayed() {
			w.release(c.ID)
			continue
		}
		creatures = append(creatures, c)
	}
	clear(w.Creatures[len(creatures):])
	w.Creatures = creatures

	w.Animations = dropFinished(w.Animations)
	w.Decals = dropFinished(w.Decals)
}

func dropFinished(list []*Animation) []*Animation {
	kept := list[:0]
	for _, a := range list {
		if !a.IsDone() {
			kept = append(kept, a)
		}
	}
	clear(list[len(kept):])
	return kept
}

// TileFlags unions the layer flags at (pos, z) that pass the filter with
// the flags of every live object on that tile. Objects contribute under
// every filter.
func (w *GameWorld) TileFlags(pos Position, z enums.Elevation, filter TileFilter) TileFlags {
	flags := w.Map.LayerFlags(pos, z, filter)
	for _, o := range w.Objects {
		if o.Z == z && o.Pos == pos {
			flags |= w.Catalog.Flags.FlagsFor(o.ID)
		}
	}
	return flags
}

func (w *GameWorld) IsNull(pos Position, z enums.Elevation) bool {
	return w.TileFlags(pos, z, FilterAll).Any(FlagNull)
}

func (w *GameWorld) IsSolid(pos Position, z enums.Elevation) bool {
	return w.TileFlags(pos, z, FilterAll).Any(FlagSolid)
}

func (w *GameWorld) BlocksProjectiles(pos Position, z enums.Elevation) bool {
	return w.TileFlags(pos, z, FilterAll).Any(FlagBlockProjectiles)
}

func (w *GameWorld) IsWater(pos Position, z enums.Elevation) bool {
	return w.TileFlags(pos, z, FilterTilesOnly).Any(FlagWater)
}

func (w *GameWorld) IsLava(pos Position, z enums.Elevation) bool {
	return w.TileFlags(pos, z, FilterTilesOnly).Any(FlagLava)
}

func (w *GameWorld) IsChair(pos Position, z enums.Elevation) bool {
	return w.TileFlags(pos, z, FilterObjectsOnly).Any(FlagChair)
}

func (w *GameWorld) IsOffset(pos Position, z enums.Elevation) bool {
	return w.TileFlags(pos, z, FilterAll).Any(FlagOffset)
}

func (w *GameWorld) IsLadder(pos Position, z enums.Elevation) bool {
	return w.TileFlags(pos, z, FilterObjectsOnly).Any(FlagLadder)
}

func (w *GameWorld) MovesAbove(pos Position, z enums.Elevation) bool {
	return w.TileFlags(pos, z, FilterObjectsOnly).Any(FlagMoveAbove)
}

func (w *GameWorld) MovesBelow(pos Position, z enums.Elevation) bool {
	return w.TileFlags(pos, z, FilterAll).Any(FlagMoveBelow)
}

func (w *GameWorld) IsLight(pos Position, z enums.Elevation) bool {
	return w.TileFlags(pos, z, FilterAll).Any(FlagLight)
}

// CreatureAt returns the first live creature on (pos, z).
func (w *GameWorld) CreatureAt(pos Position, z enums.Elevation) (*Creature, bool) {
	for _, c := range w.Creatures {
		if c.Dead {
			continue
		}
		if c.Z == z && c.Pos == pos {
			return c, true
		}
	}
	return nil, false
}

// LiveCreatureCount counts creatures that are not dead.
func (w *GameWorld) LiveCreatureCount() int {
	n := 0
	for _, c := range w.Creatures {
		if !c.Dead {
			n++
		}
	}
	return n
}
