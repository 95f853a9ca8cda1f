// Package domain contains core concepts of the event queue.
// This file defines Events, their queue of participants and the canonical date time.
package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// DateTimeLayout is the only accepted and stored representation (YYYY-MM-DD HH:MM).
const DateTimeLayout = "2006-01-02 15:04"

type EventID string

// NextEventID returns the identifier following the given sequence value.
func NextEventID(sequence int) EventID {
	return EventID(strconv.Itoa(sequence + 1))
}

// Number returns the numeric part of the identifier, or 0 when it is not numeric.
func (id EventID) Number() int {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0
	}
	return n
}

type Event struct {
	ID           EventID
	Name         string
	At           time.Time
	Creator      string
	CreatorID    UserID
	Lang         string // ISO 639-1 code detected from the name, may be empty
	Participants []Participant
}

type EventSummary struct {
	ID   EventID
	Name string
}

// ParseDateTime parses a raw user input in the canonical layout.
func ParseDateTime(raw string) (time.Time, error) {
	return time.Parse(DateTimeLayout, strings.TrimSpace(raw))
}

// FormatDateTime renders t in the canonical layout.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

func (e Event) DateTime() string {
	return FormatDateTime(e.At)
}

func (e Event) Summary() EventSummary {
	return EventSummary{ID: e.ID, Name: e.Name}
}

// Position returns the 1-based queue position of the user, 0 when absent.
func (e Event) Position(id UserID) int {
	_, idx, ok := lo.FindIndexOf(e.Participants, func(p Participant) bool {
		return p.ID == id
	})
	if !ok {
		return 0
	}
	return idx + 1
}

func (e Event) HasParticipant(id UserID) bool {
	return e.Position(id) > 0
}

// Join appends the user at the end of the queue and returns its position.
// It returns false when the user is already in the queue.
func (e *Event) Join(user User) (int, bool) {
	if e.HasParticipant(user.ID) {
		return 0, false
	}
	e.Participants = append(e.Participants, NewParticipant(user))
	return len(e.Participants), true
}

// Leave removes the first occurrence of the user from the queue.
// The order of remaining participants is preserved.
func (e *Event) Leave(id UserID) bool {
	position := e.Position(id)
	if position == 0 {
		return false
	}
	idx := position - 1
	remaining := make([]Participant, 0, len(e.Participants)-1)
	remaining = append(remaining, e.Participants[:idx]...)
	e.Participants = append(remaining, e.Participants[idx+1:]...)
	return true
}
