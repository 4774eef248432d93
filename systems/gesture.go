package systems

import (
	"github.com/automoto/marquee/components"
	"github.com/automoto/marquee/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var touchIDs []ebiten.TouchID

// UpdateGesture turns mouse and touch drags on the strip into scroller
// drags. Presses outside the strip are ignored.
func UpdateGesture(ecs *ecs.ECS) {
	entry, ok := components.Gesture.First(ecs.World)
	if !ok {
		return
	}
	g := components.Gesture.Get(entry)

	if g.Active {
		if g.Touch {
			if inpututil.IsTouchJustReleased(g.TouchID) {
				EndGesture(ecs)
				return
			}
			x, _ := ebiten.TouchPosition(g.TouchID)
			MoveGesture(ecs, x)
			return
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			EndGesture(ecs)
			return
		}
		x, _ := ebiten.CursorPosition()
		MoveGesture(ecs, x)
		return
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		if StartGesture(ecs, x, y) {
			g.Touch, g.TouchID = true, id
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		StartGesture(ecs, x, y)
	}
}

// StartGesture begins a drag if (x, y) lands on the strip.
func StartGesture(ecs *ecs.ECS, x, y int) bool {
	entry, ok := components.Gesture.First(ecs.World)
	if !ok {
		return false
	}
	g := components.Gesture.Get(entry)
	m, ok := GetMarquee(ecs)
	if !ok || !m.Mounted || g.Active || !onStrip(g, float64(x), float64(y)) {
		return false
	}
	g.Active = true
	g.Touch = false
	g.LastX = x
	g.Distance = 0
	m.Scroller.BeginDrag()
	return true
}

// MoveGesture drags the content along with the pointer.
func MoveGesture(ecs *ecs.ECS, x int) {
	entry, ok := components.Gesture.First(ecs.World)
	if !ok {
		return
	}
	g := components.Gesture.Get(entry)
	m, ok := GetMarquee(ecs)
	if !ok || !g.Active {
		return
	}
	dx := float64(x - g.LastX)
	g.LastX = x
	if dx == 0 {
		return
	}
	// Content follows the finger, so the offset moves the other way.
	m.Scroller.DragBy(-dx)
	g.Distance -= dx
}

// EndGesture releases the drag; auto-scroll resumes from where it was left.
func EndGesture(ecs *ecs.ECS) {
	entry, ok := components.Gesture.First(ecs.World)
	if !ok {
		return
	}
	g := components.Gesture.Get(entry)
	if !g.Active {
		return
	}
	g.Active = false
	g.Touch = false
	if m, ok := GetMarquee(ecs); ok {
		m.Scroller.EndDrag()
	}
}

func onStrip(g *components.GestureData, x, y float64) bool {
	r := g.Region
	if x < r.X || x >= r.X+r.W || y < r.Y || y >= r.Y+r.H {
		return false
	}
	g.Probe.X, g.Probe.Y = x, y
	g.Probe.Update()
	return g.Probe.Check(0, 0, tags.ResolvStrip) != nil
}
