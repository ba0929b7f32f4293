package activitywatch

// State is the state of the push channel.
type State int32

const (
	// StateDisconnected means the push channel was never opened. It is the
	// permanent state when no push endpoint is configured.
	StateDisconnected State = iota

	// StateConnecting means a connection is being opened or reopened.
	StateConnecting

	// StateSubscribed means the connection is up and every watched address
	// has been subscribed.
	StateSubscribed

	// StateDegraded means the reconnect budget is exhausted. The push
	// channel is abandoned for the rest of the run and only polling remains.
	StateDegraded
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnecting:
		return "CONNECTING"
	case StateSubscribed:
		return "SUBSCRIBED"
	case StateDegraded:
		return "DEGRADED"
	default:
		return "UNKNOWN"
	}
}

func (s *service) setState(st State) {
	s.state.Store(int32(st))
}

// State reports the current push channel state.
func (s *service) State() State {
	return State(s.state.Load())
}
