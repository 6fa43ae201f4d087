package domain

import "github.com/kevrgithub/tibianer-old/internal/core/types/enums"

// Object is a free placed sprite. Several objects may share a tile.
type Object struct {
	ID  int             `json:"id"`
	Pos Position        `json:"pos"`
	Z   enums.Elevation `json:"z"`
}

func (o *Object) Kind() enums.ThingKind      { return enums.ThingKindObject }
func (o *Object) TilePos() Position          { return o.Pos }
func (o *Object) Elevation() enums.Elevation { return o.Z }
func (o *Object) SpriteID() int              { return o.ID }
func (o *Object) PixelPos() Vec2             { return o.Pos.Pixels() }

// Animate moves the object to the next frame of the first cycle that
// contains its id. It returns false when the object is not animated.
func (o *Object) Animate(cycles [][]int) bool {
	for _, frames := range cycles {
		for i, id := range frames {
			if id == o.ID {
				o.ID = frames[(i+1)%len(frames)]
				return true
			}
		}
	}
	return false
}
