package tags

import "github.com/yohamta/donburi"

var (
	Item     = donburi.NewTag().SetName("Item")
	Backdrop = donburi.NewTag().SetName("Backdrop")
	Caption  = donburi.NewTag().SetName("Caption")
)

// Resolv tags for pointer hit tests
const (
	ResolvStrip   = "strip"
	ResolvPointer = "pointer"
)
