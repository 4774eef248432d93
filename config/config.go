package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"
)

// Config holds general window configuration
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"` // update ticks per second
	Title  string `toml:"title"`
}

// MarqueeConfig contains the scrolling strip configuration
type MarqueeConfig struct {
	ItemWidthRatio float64 `toml:"item_width_ratio"` // share of viewport width per card
	AspectRatio    float64 `toml:"aspect_ratio"`     // card height / width
	Gap            float64 `toml:"gap"`              // pixels between cards
	MaxTilt        float64 `toml:"max_tilt"`         // degrees at the viewport edges
	ScrollSpeed    float64 `toml:"scroll_speed"`     // pixels per second
	CornerRadius   int     `toml:"corner_radius"`
	CenterY        float64 `toml:"center_y"` // strip centre as a share of viewport height

	// Entrance: the strip drops in from half a card above and fades in
	EntranceDelayMs    int `toml:"entrance_delay_ms"`
	EntranceDurationMs int `toml:"entrance_duration_ms"`
}

// BackdropConfig contains the blurred background configuration
type BackdropConfig struct {
	Opacity        float64    `toml:"opacity"`
	BlurSigma      float64    `toml:"blur_sigma"` // applied at reduced size
	DownscaleRatio int        `toml:"downscale"`  // backdrop is built at 1/n of the viewport
	FadeDurationMs int        `toml:"fade_duration_ms"`
	BaseColor      color.RGBA `toml:"-"`
}

// CaptionLine is one element of the staggered caption
type CaptionLine struct {
	Text         string  `toml:"text"`
	Size         float64 `toml:"size"`
	Bold         bool    `toml:"bold"`
	Opacity      float64 `toml:"opacity"`
	MarginBottom float64 `toml:"margin_bottom"`
}

// CaptionConfig contains the staggered caption configuration
type CaptionConfig struct {
	InitialDelayMs int           `toml:"initial_delay_ms"`
	StaggerMs      int           `toml:"stagger_ms"`
	DurationMs     int           `toml:"duration_ms"`
	SlideDistance  float64       `toml:"slide_distance"` // pixels each line travels while fading in
	Padding        float64       `toml:"padding"`        // horizontal text padding
	LineSpacing    float64       `toml:"line_spacing"`
	Lines          []CaptionLine `toml:"lines"`
	TextColor      color.RGBA    `toml:"-"`
}

// GalleryConfig lists the carousel images
type GalleryConfig struct {
	Images    []string `toml:"images"`
	Query     string   `toml:"query"` // appended to every image URL
	AppName   string   `toml:"app_name"`
	DiskCache bool     `toml:"disk_cache"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `toml:"overlay"` // draw offset/index readout and the drag region
}

// Global configuration instances
var C *Config
var Marquee MarqueeConfig
var Backdrop BackdropConfig
var Caption CaptionConfig
var Gallery GalleryConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Cyan  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  390,
		Height: 844,
		TPS:    60,
		Title:  "Invites",
	}

	Marquee = MarqueeConfig{
		ItemWidthRatio: 0.62,
		AspectRatio:    1.67,
		Gap:            16,
		MaxTilt:        3,
		ScrollSpeed:    60, // one pixel per tick at 60 TPS
		CornerRadius:   16,
		CenterY:        0.42,

		EntranceDelayMs:    500,
		EntranceDurationMs: 1000,
	}

	Backdrop = BackdropConfig{
		Opacity:        0.5,
		BlurSigma:      6,
		DownscaleRatio: 4,
		FadeDurationMs: 1000,
		BaseColor:      Black,
	}

	Caption = CaptionConfig{
		InitialDelayMs: 1000,
		StaggerMs:      100,
		DurationMs:     500,
		SlideDistance:  25,
		Padding:        6,
		LineSpacing:    8,
		TextColor:      White,
		Lines: []CaptionLine{
			{Text: "Welcome to", Size: 14, Opacity: 0.5},
			{Text: "AppleInvitesAnimation", Size: 28, Bold: true, Opacity: 1, MarginBottom: 16},
			{Text: "Experience the magic of seamless transitions and fluid animations in " +
				"this beautifully crafted showcase. Inspired by Apple's design philosophy, " +
				"this component brings life to your applications with smooth scrolling, " +
				"elegant fades, and responsive interactions.", Size: 14, Opacity: 0.5},
		},
	}

	Gallery = GalleryConfig{
		Images: []string{
			"https://images.unsplash.com/photo-1579546929518-9e396f3cc809", // Colorful gradient
			"https://images.unsplash.com/photo-1516339901601-2e1b62dc0c45", // Northern lights
			"https://images.unsplash.com/photo-1507608616759-54f48f0af0ee", // Autumn in Paris
			"https://images.unsplash.com/photo-1682687982501-1e58ab814714", // Abstract art
			"https://images.unsplash.com/photo-1470770841072-f978cf4d019e", // Mountain lake
			"https://images.unsplash.com/photo-1501785888041-af3ef285b470", // Sunset over mountains
			"https://images.unsplash.com/photo-1508739773434-c26b3d09e071", // Aerial beach view
		},
		Query:     "auto=format&q=80&w=800&fit=crop",
		AppName:   "marquee",
		DiskCache: true,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
	}
}

// Ms converts a millisecond config value to a duration
func Ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// ImageURIs returns the gallery URLs with the sizing query applied
func (g GalleryConfig) ImageURIs() []string {
	out := make([]string, len(g.Images))
	for i, u := range g.Images {
		switch {
		case g.Query == "":
			out[i] = u
		case strings.Contains(u, "?"):
			out[i] = u + "&" + g.Query
		default:
			out[i] = u + "?" + g.Query
		}
	}
	return out
}

// Validate reports configuration that would leave the animation math undefined
func Validate() error {
	var errs []error
	if C.Width <= 0 || C.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", C.Width, C.Height))
	}
	if C.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", C.TPS))
	}
	if len(Gallery.Images) == 0 {
		errs = append(errs, errors.New("gallery has no images"))
	}
	if Marquee.ItemWidthRatio <= 0 || Marquee.AspectRatio <= 0 {
		errs = append(errs, fmt.Errorf("item ratio %v / aspect %v must be positive",
			Marquee.ItemWidthRatio, Marquee.AspectRatio))
	}
	if Marquee.Gap < 0 {
		errs = append(errs, fmt.Errorf("gap %v must not be negative", Marquee.Gap))
	}
	if Marquee.ScrollSpeed < 0 {
		errs = append(errs, fmt.Errorf("scroll speed %v must not be negative", Marquee.ScrollSpeed))
	}
	if Backdrop.DownscaleRatio < 1 {
		errs = append(errs, fmt.Errorf("backdrop downscale %d must be at least 1", Backdrop.DownscaleRatio))
	}
	return errors.Join(errs...)
}
