package marquee

import (
	"math"
	"testing"
)

func TestScrollerAutoAdvance(t *testing.T) {
	off := NewOffset(0)
	s := NewScroller(off, 60)
	for i := 0; i < 60; i++ {
		s.Tick(1.0 / 60)
	}
	if math.Abs(off.Value()-60) > 1e-9 {
		t.Errorf("offset after 1s = %v, want 60", off.Value())
	}
	if s.State() != AutoScrolling {
		t.Errorf("State() = %v, want %v", s.State(), AutoScrolling)
	}
}

func TestScrollerDragAndRelease(t *testing.T) {
	g := testGeometry(t)
	off := NewOffset(0)
	s := NewScroller(off, 60)
	for i := 0; i < 30; i++ {
		s.Tick(1.0 / 60)
	}
	before := off.Value()

	s.BeginDrag()
	if s.State() != UserDragging {
		t.Fatalf("State() = %v after BeginDrag", s.State())
	}
	// Ticks during a drag must not move the strip.
	s.Tick(1.0 / 60)
	s.DragBy(g.ItemSize)
	s.Tick(1.0 / 60)
	s.DragBy(g.ItemSize)
	s.EndDrag()

	if s.State() != AutoScrolling {
		t.Fatalf("State() = %v after EndDrag", s.State())
	}
	want := before + 2*g.ItemSize
	if math.Abs(off.Value()-want) > 1e-9 {
		t.Fatalf("offset after release = %v, want %v", off.Value(), want)
	}

	s.Tick(0.5)
	if math.Abs(off.Value()-(want+30)) > 1e-9 {
		t.Errorf("auto-advance resumed to %v, want %v", off.Value(), want+30)
	}
}

func TestScrollerDragIgnoredWhenAuto(t *testing.T) {
	off := NewOffset(10)
	s := NewScroller(off, 60)
	s.DragBy(500)
	if off.Value() != 10 {
		t.Errorf("DragBy without BeginDrag moved offset to %v", off.Value())
	}
	s.EndDrag()
	if s.State() != AutoScrolling {
		t.Errorf("EndDrag without drag changed state to %v", s.State())
	}
}

func TestScrollerStop(t *testing.T) {
	off := NewOffset(0)
	s := NewScroller(off, 60)
	s.BeginDrag()
	s.Stop()
	s.Tick(1)
	s.BeginDrag()
	s.DragBy(40)
	if off.Value() != 0 {
		t.Errorf("stopped scroller moved offset to %v", off.Value())
	}
	if !s.Stopped() {
		t.Error("Stopped() = false after Stop")
	}
}
