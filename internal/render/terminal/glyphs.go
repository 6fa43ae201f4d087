package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kevrgithub/tibianer-old/internal/domain"
	"github.com/kevrgithub/tibianer-old/pkg/api"
	"github.com/kevrgithub/tibianer-old/pkg/catalog"
)

// Glyph is how one sprite looks in a terminal cell.
type Glyph struct {
	Rune  rune
	Color tcell.Color
}

var (
	colorGround = tcell.NewRGBColor(90, 140, 60)
	colorStone  = tcell.NewRGBColor(150, 150, 150)
	colorWater  = tcell.NewRGBColor(60, 120, 220)
	colorLava   = tcell.NewRGBColor(230, 80, 20)
	colorWood   = tcell.NewRGBColor(170, 120, 60)
	colorLight  = tcell.NewRGBColor(250, 210, 80)
	colorRoof   = tcell.NewRGBColor(160, 60, 50)
	colorEffect = tcell.NewRGBColor(240, 240, 240)
	colorBlood  = tcell.NewRGBColor(150, 20, 20)
	colorPlayer = tcell.NewRGBColor(255, 255, 255)
)

var teamColors = map[string]tcell.Color{
	"GOOD":    tcell.NewRGBColor(80, 200, 80),
	"EVIL":    tcell.NewRGBColor(220, 60, 60),
	"NEUTRAL": tcell.NewRGBColor(200, 200, 120),
}

// Glyphs picks glyphs from sprite flags, with a few sprites singled out.
type Glyphs struct {
	flags domain.SpriteFlagTable
}

func NewGlyphs(flags domain.SpriteFlagTable) Glyphs {
	return Glyphs{flags: flags}
}

// Tile returns the glyph of a layer tile. The bool is false for
// transparent tiles.
func (g Glyphs) Tile(id int, objectLayer, aboveground bool) (Glyph, bool) {
	switch id {
	case catalog.SpriteNull, catalog.SpriteBlank:
		return Glyph{}, false
	case catalog.SpriteLeverOff:
		return Glyph{'\\', colorWood}, true
	case catalog.SpriteLeverOn:
		return Glyph{'/', colorWood}, true
	case catalog.SpriteRoof:
		return Glyph{'^', colorRoof}, true
	}

	f := g.flags.FlagsFor(id)
	switch {
	case f.Has(domain.FlagWater):
		return Glyph{'~', colorWater}, true
	case f.Has(domain.FlagLava):
		return Glyph{'≈', colorLava}, true
	case f.Has(domain.FlagLadder):
		return Glyph{'H', colorWood}, true
	case f.Has(domain.FlagMoveAbove):
		return Glyph{'<', colorStone}, true
	case f.Has(domain.FlagMoveBelow):
		return Glyph{'>', colorStone}, true
	case f.Has(domain.FlagLight):
		return Glyph{'*', colorLight}, true
	case f.Has(domain.FlagChair):
		return Glyph{'h', colorWood}, true
	case f.Has(domain.FlagBlockProjectiles):
		return Glyph{'#', colorStone}, true
	case f.Has(domain.FlagSolid):
		return Glyph{'o', colorStone}, true
	case objectLayer:
		return Glyph{'·', colorWood}, true
	case aboveground:
		return Glyph{'^', colorRoof}, true
	}
	return Glyph{'.', colorGround}, true
}

// Thing returns the glyph of a drawable. Creature colours follow the
// health bar team; creatures without a bar are drawn neutral.
func (g Glyphs) Thing(v api.ThingView, player bool) Glyph {
	switch v.Kind {
	case "CREATURE":
		switch {
		case player:
			return Glyph{'@', colorPlayer}
		case v.Dead:
			return Glyph{'%', colorBlood}
		case v.Bar != nil:
			if c, ok := teamColors[v.Bar.Team]; ok {
				return Glyph{'c', c}
			}
		}
		return Glyph{'c', teamColors["NEUTRAL"]}
	case "PROJECTILE":
		return Glyph{'*', colorLight}
	case "ANIMATION":
		return Glyph{'+', colorEffect}
	case "DECAL":
		return Glyph{',', colorBlood}
	}
	if gl, ok := g.Tile(v.SpriteID, true, false); ok {
		return gl
	}
	return Glyph{'?', colorEffect}
}
