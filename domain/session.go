package domain

import "time"

// SessionKey identifies the conversational context that must receive the next input.
type SessionKey struct {
	Chat ChatID
	User UserID
}

type SessionState int

const (
	AwaitingName SessionState = iota + 1
	AwaitingDateTime
	// CreatingEvent holds the session while the registry persists the event.
	CreatingEvent
)

func (s SessionState) String() string {
	switch s {
	case AwaitingName:
		return "AWAITING_NAME"
	case AwaitingDateTime:
		return "AWAITING_DATETIME"
	case CreatingEvent:
		return "CREATING_EVENT"
	default:
		return "IDLE"
	}
}

// Session is the in-flight state of the event creation wizard.
type Session struct {
	Key       SessionKey
	State     SessionState
	Name      string
	Creator   User
	UpdatedAt time.Time
}
