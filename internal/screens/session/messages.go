package session

import "time"

// timerTickMsg is sent every second to refresh the elapsed clock.
type timerTickMsg time.Time

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
