// Package domain contains core concepts of the event queue.
// This file defines Participant entries of an event queue.
// A participant is identified by its user ID; the handle only decorates rendering.
package domain

type Participant struct {
	ID     UserID
	Handle string
}

func NewParticipant(user User) Participant {
	return Participant{ID: user.ID, Handle: user.Handle}
}

func (p Participant) DisplayHandle() string {
	return DisplayHandle(p.Handle)
}
