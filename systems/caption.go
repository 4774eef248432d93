package systems

import (
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCaption steps every caption line through its reveal.
func UpdateCaption(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.Caption.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Caption.Get(e)
		c.Alpha, _ = c.Reveal.Update(dt)
		c.ShiftY, _ = c.Slide.Update(dt)
	})
}

// DrawCaption draws each caption block centred horizontally.
func DrawCaption(ecs *ecs.ECS, screen *ebiten.Image) {
	centerX := float64(screen.Bounds().Dx()) / 2
	components.Caption.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Caption.Get(e)
		alpha := c.Opacity * c.Alpha
		if alpha <= 0 || c.Face == nil {
			return
		}
		m := c.Face.Metrics()
		lineH := m.HAscent + m.HDescent + cfg.Caption.LineSpacing

		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(cfg.Caption.TextColor)
		op.ColorScale.ScaleAlpha(float32(alpha))
		for i, line := range c.Lines {
			op.GeoM.Reset()
			op.GeoM.Translate(centerX, c.Y+c.ShiftY+float64(i)*lineH)
			text.Draw(screen, line, c.Face, op)
		}
	})
}
