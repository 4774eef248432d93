package components

import (
	"github.com/automoto/marquee/timeline"
	"github.com/yohamta/donburi"
)

// StripData tracks the strip's one-shot entrance
type StripData struct {
	Fade    *timeline.Player
	Drop    *timeline.Player
	Opacity float64
	ShiftY  float64 // vertical offset from the resting position
}

var Strip = donburi.NewComponentType[StripData]()

// BackdropData is one blurred background layer. A new layer is spawned for
// every active index change; the old one fades out and is destroyed.
type BackdropData struct {
	Index   int
	Fade    *timeline.Player
	Alpha   float64
	Exiting bool
}

var Backdrop = donburi.NewComponentType[BackdropData]()
