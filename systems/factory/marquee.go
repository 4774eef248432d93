package factory

import (
	"github.com/automoto/marquee/archetypes"
	"github.com/automoto/marquee/components"
	"github.com/automoto/marquee/marquee"
	"github.com/automoto/marquee/preload"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMarquee spawns the singleton that owns the shared offset. The tracker
// is wired but stays closed until the preload gate opens.
func CreateMarquee(ecs *ecs.ECS, geo marquee.Geometry, speed float64, loader *preload.Preloader) *donburi.Entry {
	entry := archetypes.Marquee.Spawn(ecs)

	offset := marquee.NewOffset(0)
	pending := &marquee.Handoff[int]{}
	components.Marquee.SetValue(entry, components.MarqueeData{
		Geometry: geo,
		Offset:   offset,
		Scroller: marquee.NewScroller(offset, speed),
		Tracker:  marquee.NewTracker(geo, offset, pending),
		Pending:  pending,
	})
	components.Preload.SetValue(entry, components.PreloadData{
		Loader: loader,
		State:  preload.StatePending,
	})
	return entry
}
