package scenes

import (
	"context"
	"image/color"
	"sync"

	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/marquee"
	"github.com/automoto/marquee/preload"
	"github.com/automoto/marquee/systems"
	"github.com/automoto/marquee/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShowcaseScene is the single screen: blurred backdrop, scrolling card strip
// and caption, all held back until every image is preloaded.
type ShowcaseScene struct {
	ecs    *ecs.ECS
	geo    marquee.Geometry
	loader *preload.Preloader
	uris   []string
	once   sync.Once
}

func NewShowcaseScene(geo marquee.Geometry, loader *preload.Preloader, uris []string) *ShowcaseScene {
	return &ShowcaseScene{geo: geo, loader: loader, uris: uris}
}

func (s *ShowcaseScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *ShowcaseScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *ShowcaseScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: the offset is written and its reactions run before the
	// UI phase drains them into the active index.
	ecs.AddSystem(systems.UpdatePreload)
	ecs.AddSystem(systems.UpdateGesture)
	ecs.AddSystem(systems.UpdateScroller)
	ecs.AddSystem(systems.UpdateItems)
	ecs.AddSystem(systems.UpdateActiveIndex)
	ecs.AddSystem(systems.UpdateBackdrop)
	ecs.AddSystem(systems.UpdateStrip)
	ecs.AddSystem(systems.UpdateCaption)

	ecs.AddRenderer(cfg.LayerBackdrop, systems.DrawBackdrop)
	ecs.AddRenderer(cfg.LayerStrip, systems.DrawStrip)
	ecs.AddRenderer(cfg.LayerCaption, systems.DrawCaption)
	ecs.AddRenderer(cfg.LayerDebug, systems.DrawDebug)

	s.ecs = ecs

	entry := factory.CreateMarquee(ecs, s.geo, cfg.Marquee.ScrollSpeed, s.loader)
	top, height := systems.StripLayout(components.Marquee.Get(entry))
	factory.CreateGesture(ecs, cfg.C.Width, cfg.C.Height, top, height)

	s.loader.Start(context.Background(), s.uris)
}

// Marquee exposes the singleton state, mostly for tests and the debug overlay.
func (s *ShowcaseScene) Marquee() (*components.MarqueeData, bool) {
	if s.ecs == nil {
		return nil, false
	}
	return systems.GetMarquee(s.ecs)
}

// Dispose unmounts the scene: the preload is cancelled, the driver stopped
// and the GPU images released.
func (s *ShowcaseScene) Dispose() {
	s.loader.Cancel()
	m, ok := s.Marquee()
	if !ok {
		return
	}
	m.Scroller.Stop()
	m.Tracker.Close()
	m.Gallery.Dispose()
	m.Gallery = nil
}
