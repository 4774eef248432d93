package factory

import (
	"github.com/automoto/marquee/archetypes"
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/timeline"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBackdrop spawns a fresh background layer for index, fading in.
// Every index change gets its own entity so enter and exit fades never share state.
func CreateBackdrop(ecs *ecs.ECS, index int) *donburi.Entry {
	layer := archetypes.Backdrop.Spawn(ecs)
	components.Backdrop.SetValue(layer, components.BackdropData{
		Index: index,
		Fade: timeline.Timeline{
			Duration: cfg.Ms(cfg.Backdrop.FadeDurationMs),
			Ease:     ease.Linear,
			From:     0,
			To:       1,
		}.Play(),
	})
	return layer
}

// RetireBackdrop starts the fade-out of a layer from wherever its fade-in got to.
func RetireBackdrop(layer *components.BackdropData) {
	if layer.Exiting {
		return
	}
	layer.Exiting = true
	layer.Fade = timeline.Timeline{
		Duration: cfg.Ms(cfg.Backdrop.FadeDurationMs),
		Ease:     ease.Linear,
		From:     layer.Alpha,
		To:       0,
	}.Play()
}
