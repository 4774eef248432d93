package marquee

// ScrollState is the Scroller's driver mode.
type ScrollState int

const (
	AutoScrolling ScrollState = iota
	UserDragging
)

func (s ScrollState) String() string {
	switch s {
	case AutoScrolling:
		return "auto"
	case UserDragging:
		return "dragging"
	}
	return "unknown"
}

// Scroller is the only writer of its Offset. While auto-scrolling the offset
// advances at a constant rate; while a drag is active the drag deltas drive
// it instead, and releasing resumes auto-advance from wherever the drag left it.
type Scroller struct {
	offset  *Offset
	speed   float64 // offset units per second
	state   ScrollState
	stopped bool
}

func NewScroller(offset *Offset, speed float64) *Scroller {
	return &Scroller{offset: offset, speed: speed, state: AutoScrolling}
}

func (s *Scroller) Offset() *Offset {
	return s.offset
}

func (s *Scroller) State() ScrollState {
	return s.state
}

func (s *Scroller) Speed() float64 {
	return s.speed
}

// Tick advances the offset by dt seconds of auto-scroll.
func (s *Scroller) Tick(dt float64) {
	if s.stopped || s.state != AutoScrolling || dt <= 0 {
		return
	}
	s.offset.set(s.offset.value + s.speed*dt)
}

// BeginDrag hands the offset over to gesture deltas.
func (s *Scroller) BeginDrag() {
	if s.stopped {
		return
	}
	s.state = UserDragging
}

// DragBy moves the offset by delta. Ignored unless a drag is active.
func (s *Scroller) DragBy(delta float64) {
	if s.stopped || s.state != UserDragging || delta == 0 {
		return
	}
	s.offset.set(s.offset.value + delta)
}

// EndDrag returns control to the constant-rate driver without touching the offset.
func (s *Scroller) EndDrag() {
	if s.state != UserDragging {
		return
	}
	s.state = AutoScrolling
}

// Stop halts the driver for good; used when the strip unmounts.
func (s *Scroller) Stop() {
	s.stopped = true
	s.state = AutoScrolling
}

func (s *Scroller) Stopped() bool {
	return s.stopped
}
