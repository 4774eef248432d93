package marquee

// Tracker derives the active item index from the offset. It only emits when
// the discrete index changes, and only once it has been enabled; emissions
// are queued on a Handoff for the UI phase to apply.
type Tracker struct {
	geo      Geometry
	reaction *Reaction[int]
	out      *Handoff[int]
	emitted  int
}

func NewTracker(geo Geometry, offset *Offset, out *Handoff[int]) *Tracker {
	t := &Tracker{geo: geo, out: out}
	t.reaction = React(offset, geo.ActiveIndex, func(cur, _ int, _ bool) {
		t.emitted++
		t.out.Push(cur)
	})
	return t
}

// Open enables the tracker. The current candidate is pushed immediately.
func (t *Tracker) Open() {
	t.reaction.Enable()
}

func (t *Tracker) Close() {
	t.reaction.Disable()
}

func (t *Tracker) IsOpen() bool {
	return t.reaction.Enabled()
}

// Emitted counts how many index changes have been queued so far.
func (t *Tracker) Emitted() int {
	return t.emitted
}
