package preload

// State is the preload gate. It leaves Pending exactly once.
type State int

const (
	StatePending State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Settled reports whether the gate has reached a terminal state.
func (s State) Settled() bool {
	return s != StatePending
}
