package marquee

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoItems     = errors.New("marquee: no items")
	ErrBadGeometry = errors.New("marquee: non-positive geometry")
)

// Geometry holds the strip measurements derived once from the viewport.
// Nothing here changes for the lifetime of a session.
type Geometry struct {
	ViewportWidth float64
	ItemWidth     float64
	ItemHeight    float64
	Gap           float64
	ItemSize      float64 // ItemWidth + Gap
	Count         int
	MaxTilt       float64 // degrees at either edge
}

// NewGeometry derives item measurements from the viewport width.
// widthRatio is the share of the viewport one card takes, aspect is height/width.
func NewGeometry(viewportWidth, widthRatio, aspect, gap float64, count int, maxTilt float64) (Geometry, error) {
	if count < 1 {
		return Geometry{}, ErrNoItems
	}
	if viewportWidth <= 0 || widthRatio <= 0 || aspect <= 0 || gap < 0 {
		return Geometry{}, fmt.Errorf("%w: viewport=%v ratio=%v aspect=%v gap=%v",
			ErrBadGeometry, viewportWidth, widthRatio, aspect, gap)
	}
	itemWidth := viewportWidth * widthRatio
	g := Geometry{
		ViewportWidth: viewportWidth,
		ItemWidth:     itemWidth,
		ItemHeight:    itemWidth * aspect,
		Gap:           gap,
		ItemSize:      itemWidth + gap,
		Count:         count,
		MaxTilt:       maxTilt,
	}
	return g, g.Validate()
}

// Validate reports a configuration error when the modulo math would be undefined.
func (g Geometry) Validate() error {
	if g.Count < 1 {
		return ErrNoItems
	}
	if g.ItemSize <= 0 || g.ItemWidth <= 0 || g.ViewportWidth <= 0 {
		return fmt.Errorf("%w: itemSize=%v itemWidth=%v viewport=%v",
			ErrBadGeometry, g.ItemSize, g.ItemWidth, g.ViewportWidth)
	}
	return nil
}

// TrackLength is the length of the virtual ring all items sit on.
func (g Geometry) TrackLength() float64 {
	return float64(g.Count) * g.ItemSize
}

// ItemPosition is the resting phase anchor of item i before any scrolling.
func (g Geometry) ItemPosition(i int) float64 {
	return float64(i)*g.ItemSize - g.ViewportWidth - g.ItemSize/2
}

// WrappedPhase places item i on the visible stretch of the ring for offset off.
// The value roughly tracks the item's left edge in screen space.
func (g Geometry) WrappedPhase(i int, off float64) float64 {
	return truncMod(g.ItemPosition(i)-off, g.TrackLength()) + g.ViewportWidth + g.ItemSize/2
}

// Rotation returns the tilt in degrees for item i at offset off.
// Cards centred in the viewport sit flat, cards near either edge lean up to MaxTilt.
func (g Geometry) Rotation(i int, off float64) float64 {
	return Interpolate(g.WrappedPhase(i, off),
		[3]float64{-g.ItemSize, (g.ViewportWidth - g.ItemSize) / 2, g.ViewportWidth},
		[3]float64{-g.MaxTilt, 0, g.MaxTilt},
	)
}

// ScreenX returns where item i's left edge lands on the strip for offset off,
// in [0, TrackLength).
func (g Geometry) ScreenX(i int, off float64) float64 {
	return Mod(float64(i)*g.ItemSize-off, g.TrackLength())
}

// ActiveIndex reduces a continuous offset to the index of the item under the
// viewport centre.
func (g Geometry) ActiveIndex(off float64) int {
	floatIndex := Mod((off+g.ViewportWidth/2)/g.ItemSize, float64(g.Count))
	idx := int(math.Floor(math.Abs(floatIndex)))
	// Float rounding can land exactly on Count.
	if idx >= g.Count {
		idx = 0
	}
	return idx
}

// Interpolate maps x through three ascending breakpoints, linearly between
// them and clamped outside.
func Interpolate(x float64, in, out [3]float64) float64 {
	switch {
	case x <= in[0]:
		return out[0]
	case x >= in[2]:
		return out[2]
	case x <= in[1]:
		return lerp(x, in[0], in[1], out[0], out[1])
	default:
		return lerp(x, in[1], in[2], out[1], out[2])
	}
}

func lerp(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

// Mod is the mathematical modulo: the result is in [0, m) for m > 0.
func Mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// truncMod keeps the result in (-m, 0], the range a sign-of-dividend modulo
// yields once the operand has been pushed far negative. Working on the
// residue directly makes the result independent of how large off grows.
func truncMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r > 0 {
		r -= m
	}
	return r
}
