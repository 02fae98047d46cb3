package services

// SessionState is the lifecycle position of the session manager.
type SessionState int

const (
	// StateRestoring is the initial state, left once Restore completes.
	StateRestoring SessionState = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}
