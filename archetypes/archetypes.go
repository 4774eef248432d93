package archetypes

import (
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Marquee = newArchetype(cfg.Default,
		components.Marquee,
		components.Preload,
	)
	Gesture = newArchetype(cfg.Default,
		components.Gesture,
	)
	Strip = newArchetype(cfg.LayerStrip,
		components.Strip,
	)
	Item = newArchetype(cfg.LayerStrip,
		tags.Item,
		components.Item,
	)
	Backdrop = newArchetype(cfg.LayerBackdrop,
		tags.Backdrop,
		components.Backdrop,
	)
	Caption = newArchetype(cfg.LayerCaption,
		tags.Caption,
		components.Caption,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
