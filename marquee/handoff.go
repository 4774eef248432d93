package marquee

// Handoff carries values from the animation phase of a tick to the UI state
// phase. Values come out in the order they went in; the UI side drains it
// once per tick instead of reading the offset itself.
type Handoff[T any] struct {
	queue []T
}

func (h *Handoff[T]) Push(v T) {
	h.queue = append(h.queue, v)
}

// Drain hands every pending value to apply, oldest first, and empties the queue.
func (h *Handoff[T]) Drain(apply func(T)) int {
	pending := h.queue
	h.queue = nil
	for _, v := range pending {
		apply(v)
	}
	return len(pending)
}

func (h *Handoff[T]) Len() int {
	return len(h.queue)
}
