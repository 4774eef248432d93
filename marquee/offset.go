package marquee

// Offset is the live horizontal scroll displacement. It has exactly one
// writer (the Scroller) and any number of readers; all access happens on the
// update goroutine, so no locking is involved.
type Offset struct {
	value     float64
	reactions []reaction
}

// OffsetReader is the read side handed to renderers and mappers.
type OffsetReader interface {
	Value() float64
}

type reaction interface {
	observe(v float64)
}

func NewOffset(initial float64) *Offset {
	return &Offset{value: initial}
}

func (o *Offset) Value() float64 {
	return o.value
}

// set stores v and runs every enabled reaction synchronously, in
// registration order, on the caller's tick.
func (o *Offset) set(v float64) {
	o.value = v
	for _, r := range o.reactions {
		r.observe(v)
	}
}

// Reaction watches a value derived from an Offset and calls back only when
// the derived value changes. It starts disabled.
type Reaction[T comparable] struct {
	derive   func(float64) T
	onChange func(cur, prev T, first bool)
	enabled  bool
	hasPrev  bool
	prev     T
	source   *Offset
}

// React registers an edge-triggered callback on o. derive runs on every
// offset write while the reaction is enabled; onChange only fires when the
// derived value differs from the previous one, or on the first observation
// after Enable.
func React[T comparable](o *Offset, derive func(float64) T, onChange func(cur, prev T, first bool)) *Reaction[T] {
	r := &Reaction[T]{derive: derive, onChange: onChange, source: o}
	o.reactions = append(o.reactions, r)
	return r
}

// Enable turns the reaction on and evaluates it once against the current
// offset, so the first callback does not wait for the next write.
func (r *Reaction[T]) Enable() {
	if r.enabled {
		return
	}
	r.enabled = true
	r.hasPrev = false
	r.observe(r.source.value)
}

func (r *Reaction[T]) Disable() {
	r.enabled = false
}

func (r *Reaction[T]) Enabled() bool {
	return r.enabled
}

func (r *Reaction[T]) observe(v float64) {
	if !r.enabled {
		return
	}
	cur := r.derive(v)
	if r.hasPrev && cur == r.prev {
		return
	}
	prev, first := r.prev, !r.hasPrev
	r.prev = cur
	r.hasPrev = true
	r.onChange(cur, prev, first)
}
