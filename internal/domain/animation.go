package domain

import (
	"time"

	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
)

// Animation is a transient sprite strip. Decals are animations drawn
// below everything else and de-duplicated by (first id, position, z).
type Animation struct {
	Strip     AnimationID
	Pos       Position
	Z         enums.Elevation
	Decal     bool
	FrameTime time.Duration
	NumRepeat int

	CurrentFrame int
	elapsed      time.Duration
	repeats      int
}

func NewAnimation(strip AnimationID, pos Position, z enums.Elevation, frameTime time.Duration) *Animation {
	return &Animation{Strip: strip, Pos: pos, Z: z, FrameTime: frameTime}
}

func (a *Animation) Kind() enums.ThingKind {
	if a.Decal {
		return enums.ThingKindDecal
	}
	return enums.ThingKindAnimation
}

func (a *Animation) TilePos() Position          { return a.Pos }
func (a *Animation) Elevation() enums.Elevation { return a.Z }
func (a *Animation) PixelPos() Vec2             { return a.Pos.Pixels() }

func (a *Animation) SpriteID() int {
	frame := a.CurrentFrame
	if frame > a.Strip.Frames-1 {
		frame = a.Strip.Frames - 1
	}
	return a.Strip.First + frame
}

// Update advances the frame counter by dt. A non-positive FrameTime
// advances exactly one frame per call.
func (a *Animation) Update(dt time.Duration) {
	if a.IsDone() {
		return
	}
	if a.FrameTime <= 0 {
		a.nextFrame()
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameTime && !a.IsDone() {
		a.elapsed -= a.FrameTime
		a.nextFrame()
	}
}

func (a *Animation) nextFrame() {
	a.CurrentFrame++
	if a.CurrentFrame > a.Strip.Frames-1 && a.repeats < a.NumRepeat {
		a.repeats++
		a.CurrentFrame = 0
	}
}

// IsDone is true once the last frame (and every repeat) has played.
func (a *Animation) IsDone() bool {
	return a.CurrentFrame > a.Strip.Frames-1
}

// SameDecal reports whether two decals share the dedupe key.
func (a *Animation) SameDecal(strip AnimationID, pos Position, z enums.Elevation) bool {
	return a.Strip.First == strip.First && a.Pos == pos && a.Z == z
}
