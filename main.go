package main

import (
	"flag"
	"image"
	"log"
	"math"

	"github.com/automoto/marquee/assets"
	"github.com/automoto/marquee/config"
	"github.com/automoto/marquee/fonts"
	"github.com/automoto/marquee/marquee"
	"github.com/automoto/marquee/preload"
	"github.com/automoto/marquee/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Dispose()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "TOML file overriding the built-in configuration")
	width := flag.Int("width", 0, "viewport width in pixels (overrides config)")
	height := flag.Int("height", 0, "viewport height in pixels (overrides config)")
	speed := flag.Float64("speed", -1, "auto-scroll speed in pixels per second (overrides config)")
	noCache := flag.Bool("nocache", false, "skip the on-disk image cache")
	debug := flag.Bool("debug", false, "draw the debug overlay")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *width > 0 {
		config.C.Width = *width
	}
	if *height > 0 {
		config.C.Height = *height
	}
	if *speed >= 0 {
		config.Marquee.ScrollSpeed = *speed
	}
	if *debug {
		config.Debug.Overlay = true
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	uris := config.Gallery.ImageURIs()
	geo, err := marquee.NewGeometry(float64(config.C.Width),
		config.Marquee.ItemWidthRatio, config.Marquee.AspectRatio, config.Marquee.Gap,
		len(uris), config.Marquee.MaxTilt)
	if err != nil {
		log.Fatalf("Invalid geometry: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	loader := preload.New(preload.Options{
		Fetcher: preload.NewHTTPFetcher(),
		Cache:   newCache(*noCache),
		Process: assets.NewProcessor(assets.ProcessConfig{
			CardWidth:      int(math.Round(geo.ItemWidth)),
			CardHeight:     int(math.Round(geo.ItemHeight)),
			CornerRadius:   config.Marquee.CornerRadius,
			BackdropWidth:  max(1, config.C.Width/config.Backdrop.DownscaleRatio),
			BackdropHeight: max(1, config.C.Height/config.Backdrop.DownscaleRatio),
			BlurSigma:      config.Backdrop.BlurSigma,
		}),
	})
	scene := scenes.NewShowcaseScene(geo, loader, uris)

	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	err = ebiten.RunGame(NewGame(scene))
	scene.Dispose()
	if err != nil {
		log.Fatal(err)
	}
}

// newCache layers the on-disk store under the memory cache when it is enabled
// and can be opened. A missing disk cache only costs a refetch.
func newCache(disabled bool) *preload.Cache {
	if disabled || !config.Gallery.DiskCache {
		return preload.NewCache(nil)
	}
	store, err := preload.OpenDiskStore(config.Gallery.AppName)
	if err != nil {
		log.Printf("Warning: Could not open image cache: %v", err)
		return preload.NewCache(nil)
	}
	return preload.NewCache(store)
}
