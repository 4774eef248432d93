package factory

import (
	"strings"

	"github.com/automoto/marquee/archetypes"
	"github.com/automoto/marquee/components"
	cfg "github.com/automoto/marquee/config"
	"github.com/automoto/marquee/fonts"
	"github.com/automoto/marquee/timeline"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCaptions lays the caption lines out as one block centred vertically
// between top and bottom, and schedules their staggered reveal.
func CreateCaptions(ecs *ecs.ECS, width, top, bottom float64) []*donburi.Entry {
	lines := cfg.Caption.Lines
	tls := timeline.Stagger(len(lines),
		cfg.Ms(cfg.Caption.InitialDelayMs),
		cfg.Ms(cfg.Caption.StaggerMs),
		timeline.Timeline{Duration: cfg.Ms(cfg.Caption.DurationMs), Ease: ease.OutQuad, From: 0, To: 1},
	)

	maxWidth := width - 2*cfg.Caption.Padding
	blocks := make([]components.CaptionData, len(lines))
	total := 0.0
	for i, line := range lines {
		name := fonts.Regular
		if line.Bold {
			name = fonts.Bold
		}
		face := name.Face(line.Size)
		wrapped := WrapText(line.Text, face, maxWidth)
		height := float64(len(wrapped)) * lineHeight(face)

		slide := tls[i]
		slide.From, slide.To = cfg.Caption.SlideDistance, 0

		blocks[i] = components.CaptionData{
			Order:   i,
			Lines:   wrapped,
			Face:    face,
			Opacity: line.Opacity,
			Height:  height,
			Reveal:  tls[i].Play(),
			Slide:   slide.Play(),
			ShiftY:  cfg.Caption.SlideDistance,
		}
		total += height + line.MarginBottom
	}

	y := top + (bottom-top-total)/2
	if y < top {
		y = top
	}
	entries := make([]*donburi.Entry, len(blocks))
	for i := range blocks {
		blocks[i].Y = y
		y += blocks[i].Height + lines[i].MarginBottom

		entry := archetypes.Caption.Spawn(ecs)
		components.Caption.SetValue(entry, blocks[i])
		entries[i] = entry
	}
	return entries
}

func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + cfg.Caption.LineSpacing
}

// WrapText breaks s into lines no wider than maxWidth. A single word wider
// than maxWidth gets a line of its own.
func WrapText(s string, face text.Face, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if text.Advance(candidate, face) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
