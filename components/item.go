package components

import "github.com/yohamta/donburi"

// ItemData is one card on the strip
type ItemData struct {
	Index    int
	URI      string
	Rotation float64 // degrees, recomputed every tick
}

var Item = donburi.NewComponentType[ItemData]()
