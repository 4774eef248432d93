package factory

import (
	"github.com/automoto/marquee/archetypes"
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/tags"
	"github.com/automoto/marquee/timeline"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStrip spawns the strip entrance: it drops in from half a card above
// its resting place with an elastic settle while fading in.
func CreateStrip(ecs *ecs.ECS, itemHeight float64) *donburi.Entry {
	strip := archetypes.Strip.Spawn(ecs)
	delay := cfg.Ms(cfg.Marquee.EntranceDelayMs)
	dur := cfg.Ms(cfg.Marquee.EntranceDurationMs)
	components.Strip.SetValue(strip, components.StripData{
		Fade:   timeline.Timeline{Delay: delay, Duration: dur, Ease: ease.Linear, From: 0, To: 1}.Play(),
		Drop:   timeline.Timeline{Delay: delay, Duration: dur, Ease: ease.OutElastic, From: -itemHeight / 2, To: 0}.Play(),
		ShiftY: -itemHeight / 2,
	})
	return strip
}

// CreateItems spawns one card entity per image, in source order.
func CreateItems(ecs *ecs.ECS, uris []string) []*donburi.Entry {
	items := make([]*donburi.Entry, len(uris))
	for i, uri := range uris {
		item := archetypes.Item.Spawn(ecs)
		components.Item.SetValue(item, components.ItemData{Index: i, URI: uri})
		items[i] = item
	}
	return items
}

// CreateGesture builds the hit space used to decide whether a press lands on
// the strip. The region spans the full viewport width.
func CreateGesture(ecs *ecs.ECS, width, height int, stripTop, stripHeight float64) *donburi.Entry {
	entry := archetypes.Gesture.Spawn(ecs)

	space := resolv.NewSpace(width, height, 8, 8)
	region := resolv.NewObject(0, stripTop, float64(width), stripHeight, tags.ResolvStrip)
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
	space.Add(region, probe)

	components.Gesture.SetValue(entry, components.GestureData{
		Space:  space,
		Region: region,
		Probe:  probe,
	})
	return entry
}
