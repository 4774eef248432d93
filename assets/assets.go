package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/marquee/preload"
	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
)

// ProcessConfig sizes the two renditions made of every source image.
type ProcessConfig struct {
	CardWidth, CardHeight int
	CornerRadius          int

	// The backdrop is blurred at reduced size and scaled up when drawn.
	BackdropWidth, BackdropHeight int
	BlurSigma                     float64
}

// NewProcessor returns the preload step that crops each image to the card box
// and builds its blurred backdrop.
func NewProcessor(pc ProcessConfig) preload.Processor {
	return func(src image.Image) (image.Image, image.Image, error) {
		if pc.CardWidth <= 0 || pc.CardHeight <= 0 || pc.BackdropWidth <= 0 || pc.BackdropHeight <= 0 {
			return nil, nil, fmt.Errorf("invalid process sizes %+v", pc)
		}
		b := src.Bounds()
		if b.Dx() == 0 || b.Dy() == 0 {
			return nil, nil, fmt.Errorf("empty source image")
		}
		card := CoverCard(src, pc.CardWidth, pc.CardHeight, pc.CornerRadius)
		backdrop := BlurBackdrop(src, pc.BackdropWidth, pc.BackdropHeight, pc.BlurSigma)
		return card, backdrop, nil
	}
}

// CoverCard scales src to fill w x h, crops the overflow around the centre
// and rounds the corners.
func CoverCard(src image.Image, w, h, radius int) *image.NRGBA {
	card := imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)
	roundCorners(card, radius)
	return card
}

// BlurBackdrop fills w x h and applies a gaussian blur.
func BlurBackdrop(src image.Image, w, h int, sigma float64) *image.NRGBA {
	bg := imaging.Fill(src, w, h, imaging.Center, imaging.Linear)
	if sigma > 0 {
		bg = imaging.Blur(bg, sigma)
	}
	return bg
}

// roundCorners clears the pixels outside a rounded rectangle of radius r.
func roundCorners(img *image.NRGBA, r int) {
	b := img.Bounds()
	if r <= 0 {
		return
	}
	if r*2 > b.Dx() {
		r = b.Dx() / 2
	}
	if r*2 > b.Dy() {
		r = b.Dy() / 2
	}
	rr := float64(r) * float64(r)
	transparent := color.NRGBA{}
	for y := 0; y < r; y++ {
		for x := 0; x < r; x++ {
			dx := float64(r-x) - 0.5
			dy := float64(r-y) - 0.5
			if dx*dx+dy*dy <= rr {
				continue
			}
			img.SetNRGBA(b.Min.X+x, b.Min.Y+y, transparent)
			img.SetNRGBA(b.Max.X-1-x, b.Min.Y+y, transparent)
			img.SetNRGBA(b.Min.X+x, b.Max.Y-1-y, transparent)
			img.SetNRGBA(b.Max.X-1-x, b.Max.Y-1-y, transparent)
		}
	}
}

// Gallery holds the GPU images for every carousel entry, indexed like the
// source list.
type Gallery struct {
	Cards     []*ebiten.Image
	Backdrops []*ebiten.Image
}

// NewGallery uploads prepared assets. It must run on the update goroutine.
func NewGallery(prepared []preload.Asset) *Gallery {
	g := &Gallery{
		Cards:     make([]*ebiten.Image, len(prepared)),
		Backdrops: make([]*ebiten.Image, len(prepared)),
	}
	for _, a := range prepared {
		if a.Index < 0 || a.Index >= len(prepared) {
			continue
		}
		if a.Card != nil {
			g.Cards[a.Index] = ebiten.NewImageFromImage(a.Card)
		}
		if a.Backdrop != nil {
			g.Backdrops[a.Index] = ebiten.NewImageFromImage(a.Backdrop)
		}
	}
	return g
}

func (g *Gallery) Card(i int) *ebiten.Image {
	if g == nil || i < 0 || i >= len(g.Cards) {
		return nil
	}
	return g.Cards[i]
}

func (g *Gallery) Backdrop(i int) *ebiten.Image {
	if g == nil || i < 0 || i >= len(g.Backdrops) {
		return nil
	}
	return g.Backdrops[i]
}

// Dispose releases the GPU images.
func (g *Gallery) Dispose() {
	if g == nil {
		return
	}
	for _, img := range g.Cards {
		if img != nil {
			img.Deallocate()
		}
	}
	for _, img := range g.Backdrops {
		if img != nil {
			img.Deallocate()
		}
	}
}
