// Package guard gates protected views on session state. A guard holds no
// state of its own: its decision is a pure function of the session store, so
// it is re-evaluated on every dispatch.
package guard

// State is the guard's access decision.
type State int

const (
	// Loading: the session store has not finished initializing yet; render a
	// placeholder, never protected content.
	Loading State = iota
	// Denied: the store is ready but the session is missing or unauthorized;
	// redirect to login.
	Denied
	// Granted: render the protected content.
	Granted
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Denied:
		return "denied"
	case Granted:
		return "granted"
	default:
		return "unknown"
	}
}

// SessionState is the slice of the session store a guard reads.
type SessionState interface {
	Ready() bool
	IsAuthenticated() bool
	IsAuthorized() bool
}

// Guard wraps protected views. RequireAdmin additionally demands the identity's
// admin role flag, as the admin surface does.
type Guard struct {
	sessions     SessionState
	requireAdmin bool
}

func New(sessions SessionState) *Guard {
	return &Guard{sessions: sessions}
}

func NewAdmin(sessions SessionState) *Guard {
	return &Guard{sessions: sessions, requireAdmin: true}
}

// Evaluate computes the current access decision.
func (g *Guard) Evaluate() State {
	if !g.sessions.Ready() {
		return Loading
	}
	if !g.sessions.IsAuthenticated() {
		return Denied
	}
	if g.requireAdmin && !g.sessions.IsAuthorized() {
		return Denied
	}
	return Granted
}
