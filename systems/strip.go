package systems

import (
	"math"

	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var cardOp = &ebiten.DrawImageOptions{}

// UpdateStrip advances the strip's entrance.
func UpdateStrip(ecs *ecs.ECS) {
	entry, ok := components.Strip.First(ecs.World)
	if !ok {
		return
	}
	strip := components.Strip.Get(entry)
	dt := tickSeconds()
	strip.Opacity, _ = strip.Fade.Update(dt)
	strip.ShiftY, _ = strip.Drop.Update(dt)
}

// DrawStrip draws every card at its wrapped position, repeated one track
// length apart until the viewport is covered, each tilted about its centre.
func DrawStrip(ecs *ecs.ECS, screen *ebiten.Image) {
	m, ok := GetMarquee(ecs)
	if !ok || !m.Mounted {
		return
	}
	stripEntry, ok := components.Strip.First(ecs.World)
	if !ok {
		return
	}
	strip := components.Strip.Get(stripEntry)
	if strip.Opacity <= 0 {
		return
	}

	geo := m.Geometry
	off := m.Offset.Value()
	trackLen := geo.TrackLength()
	centerY := cfg.Marquee.CenterY*float64(screen.Bounds().Dy()) + strip.ShiftY
	screenW := float64(screen.Bounds().Dx())

	components.Item.Each(ecs.World, func(e *donburi.Entry) {
		item := components.Item.Get(e)
		card := m.Gallery.Card(item.Index)
		if card == nil {
			return
		}
		// Start one track length back so a card sliding in from the left is covered.
		for x := geo.ScreenX(item.Index, off) - trackLen; x < screenW; x += trackLen {
			if x+geo.ItemWidth < 0 {
				continue
			}
			drawCard(screen, card, x, centerY, geo.ItemWidth, geo.ItemHeight, item.Rotation, strip.Opacity)
		}
	})
}

func drawCard(screen, card *ebiten.Image, x, centerY, w, h, deg, alpha float64) {
	cw, ch := card.Bounds().Dx(), card.Bounds().Dy()
	if cw == 0 || ch == 0 {
		return
	}
	cardOp.GeoM.Reset()
	cardOp.ColorScale.Reset()
	cardOp.GeoM.Translate(-float64(cw)/2, -float64(ch)/2)
	cardOp.GeoM.Scale(w/float64(cw), h/float64(ch))
	cardOp.GeoM.Rotate(deg * math.Pi / 180)
	cardOp.GeoM.Translate(x+w/2, centerY)
	cardOp.ColorScale.ScaleAlpha(float32(alpha))
	cardOp.Filter = ebiten.FilterLinear
	screen.DrawImage(card, cardOp)
}
