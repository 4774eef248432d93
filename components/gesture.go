package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GestureData tracks an in-progress drag on the strip
type GestureData struct {
	Space  *resolv.Space
	Region *resolv.Object // the strip's hit area
	Probe  *resolv.Object // moved to the pointer for hit tests

	Active   bool
	Touch    bool
	TouchID  ebiten.TouchID
	LastX    int
	Distance float64 // total drag in offset units, for the debug readout
}

var Gesture = donburi.NewComponentType[GestureData]()
