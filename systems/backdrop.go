package systems

import (
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var backdropOp = &ebiten.DrawImageOptions{}

// UpdateBackdrop keeps one live background layer per active index. When the
// index changes every live layer starts fading out and a new one fades in.
// Layers that finished fading out are removed.
func UpdateBackdrop(ecs *ecs.ECS) {
	m, ok := GetMarquee(ecs)
	if !ok {
		return
	}
	dt := tickSeconds()

	var live *components.BackdropData
	var finished []donburi.Entity
	components.Backdrop.Each(ecs.World, func(e *donburi.Entry) {
		layer := components.Backdrop.Get(e)
		alpha, done := layer.Fade.Update(dt)
		layer.Alpha = alpha
		if layer.Exiting {
			if done {
				finished = append(finished, e.Entity())
			}
			return
		}
		if layer.Index != m.ActiveIndex {
			factory.RetireBackdrop(layer)
			return
		}
		live = layer
	})
	for _, e := range finished {
		ecs.World.Remove(e)
	}

	// Nothing to show until the tracker applied its first index.
	if live == nil && m.ActiveSets > 0 {
		factory.CreateBackdrop(ecs, m.ActiveIndex)
	}
}

// DrawBackdrop paints the base color, then every layer scaled to cover the
// screen. Exiting layers go first so the incoming image lands on top.
func DrawBackdrop(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Backdrop.BaseColor)

	m, ok := GetMarquee(ecs)
	if !ok || m.Gallery == nil {
		return
	}
	for _, exiting := range []bool{true, false} {
		components.Backdrop.Each(ecs.World, func(e *donburi.Entry) {
			layer := components.Backdrop.Get(e)
			if layer.Exiting != exiting {
				return
			}
			img := m.Gallery.Backdrop(layer.Index)
			if img == nil {
				return
			}
			drawCover(screen, img, cfg.Backdrop.Opacity*layer.Alpha)
		})
	}
}

func drawCover(screen, img *ebiten.Image, alpha float64) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	scale := max(float64(sw)/float64(iw), float64(sh)/float64(ih))

	backdropOp.GeoM.Reset()
	backdropOp.ColorScale.Reset()
	backdropOp.GeoM.Scale(scale, scale)
	backdropOp.GeoM.Translate((float64(sw)-float64(iw)*scale)/2, (float64(sh)-float64(ih)*scale)/2)
	backdropOp.ColorScale.ScaleAlpha(float32(alpha))
	backdropOp.Filter = ebiten.FilterLinear
	screen.DrawImage(img, backdropOp)
}
