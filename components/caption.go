package components

import (
	"github.com/automoto/marquee/timeline"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
)

// CaptionData is one line group of the staggered caption
type CaptionData struct {
	Order   int      // reveal order
	Lines   []string // wrapped to the caption width
	Face    text.Face
	Opacity float64 // resting opacity once revealed
	Y       float64 // top of the block
	Height  float64

	Reveal *timeline.Player
	Slide  *timeline.Player
	Alpha  float64 // current share of Opacity
	ShiftY float64
}

var Caption = donburi.NewComponentType[CaptionData]()
