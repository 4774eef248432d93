package systems

import (
	"log"

	"github.com/automoto/marquee/assets"
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/preload"
	"github.com/automoto/marquee/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the fixed step every system advances by.
func tickSeconds() float64 {
	return 1 / float64(cfg.C.TPS)
}

// GetMarquee returns the marquee singleton, if it has been created.
func GetMarquee(ecs *ecs.ECS) (*components.MarqueeData, bool) {
	entry, ok := components.Marquee.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Marquee.Get(entry), true
}

// StripLayout returns the top edge and height of the card strip on screen.
func StripLayout(m *components.MarqueeData) (top, height float64) {
	height = m.Geometry.ItemHeight
	top = cfg.Marquee.CenterY*float64(cfg.C.Height) - height/2
	return top, height
}

// UpdatePreload polls the asset gate and mounts the animated subtree once it
// opens. A failed gate leaves only the static base background.
func UpdatePreload(ecs *ecs.ECS) {
	entry, ok := components.Marquee.First(ecs.World)
	if !ok {
		return
	}
	pre := components.Preload.Get(entry)
	if pre.State.Settled() || pre.Loader == nil {
		return
	}

	state := pre.Loader.State()
	if state == pre.State {
		return
	}
	pre.State = state

	switch state {
	case preload.StateReady:
		mount(ecs, components.Marquee.Get(entry), pre.Loader.Assets())
	case preload.StateFailed:
		log.Printf("[marquee] preload failed, carousel stays hidden: %v", pre.Loader.Err())
	}
}

// mount spawns the strip, items and captions, then opens the index tracker.
// The tracker opens last so its first evaluation sees the mounted strip.
func mount(ecs *ecs.ECS, m *components.MarqueeData, prepared []preload.Asset) {
	if m.Mounted {
		return
	}
	m.Gallery = assets.NewGallery(prepared)

	uris := make([]string, len(prepared))
	for _, a := range prepared {
		if a.Index >= 0 && a.Index < len(uris) {
			uris[a.Index] = a.URI
		}
	}

	top, height := StripLayout(m)
	factory.CreateStrip(ecs, height)
	factory.CreateItems(ecs, uris)
	factory.CreateCaptions(ecs, float64(cfg.C.Width), top+height, float64(cfg.C.Height))

	m.Mounted = true
	m.Tracker.Open()
}

// UpdateScroller advances the offset by one tick of auto-scroll.
func UpdateScroller(ecs *ecs.ECS) {
	m, ok := GetMarquee(ecs)
	if !ok || !m.Mounted {
		return
	}
	m.Scroller.Tick(tickSeconds())
}

// UpdateItems recomputes every card's tilt from the current offset.
func UpdateItems(ecs *ecs.ECS) {
	m, ok := GetMarquee(ecs)
	if !ok || !m.Mounted {
		return
	}
	off := m.Offset.Value()
	components.Item.Each(ecs.World, func(e *donburi.Entry) {
		item := components.Item.Get(e)
		item.Rotation = m.Geometry.Rotation(item.Index, off)
	})
}

// UpdateActiveIndex applies queued tracker emissions in order.
func UpdateActiveIndex(ecs *ecs.ECS) {
	m, ok := GetMarquee(ecs)
	if !ok {
		return
	}
	m.Pending.Drain(func(idx int) {
		m.ActiveIndex = idx
		m.ActiveSets++
	})
}
