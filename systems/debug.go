package systems

import (
	"fmt"

	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	// Draw the drag region outline
	if entry, ok := components.Gesture.First(ecs.World); ok {
		g := components.Gesture.Get(entry)
		for _, obj := range g.Space.Objects() {
			if !obj.HasTags(tags.ResolvStrip) {
				continue
			}
			c := cfg.Cyan
			if g.Active {
				c = cfg.White
			}
			x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	entry, ok := components.Marquee.First(ecs.World)
	if !ok {
		return
	}
	m := components.Marquee.Get(entry)
	pre := components.Preload.Get(entry)
	layers := 0
	components.Backdrop.Each(ecs.World, func(*donburi.Entry) { layers++ })

	msg := fmt.Sprintf("TPS %0.1f  preload %s\noffset %.1f  %s\nactive %d  sets %d  emitted %d\nbackdrops %d",
		ebiten.ActualTPS(), pre.State,
		m.Offset.Value(), m.Scroller.State(),
		m.ActiveIndex, m.ActiveSets, m.Tracker.Emitted(),
		layers)
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}

