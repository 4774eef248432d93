package components

import (
	"github.com/automoto/marquee/assets"
	"github.com/automoto/marquee/marquee"
	"github.com/automoto/marquee/preload"
	"github.com/yohamta/donburi"
)

// MarqueeData is the singleton owning the shared offset and everything
// derived from it. Systems reach the offset through this handle only.
type MarqueeData struct {
	Geometry marquee.Geometry
	Offset   *marquee.Offset
	Scroller *marquee.Scroller
	Tracker  *marquee.Tracker
	Pending  *marquee.Handoff[int] // tracker output waiting for the UI phase

	ActiveIndex int
	ActiveSets  int  // times ActiveIndex has been applied
	Mounted     bool // strip and caption are live
	Gallery     *assets.Gallery
}

var Marquee = donburi.NewComponentType[MarqueeData]()

// PreloadData tracks the asset gate as seen from the update goroutine.
type PreloadData struct {
	Loader *preload.Preloader
	State  preload.State
}

var Preload = donburi.NewComponentType[PreloadData]()
