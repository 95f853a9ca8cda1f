package event

import (
	"fmt"
	"queue-bot/domain"
	"time"
)

// EventCreated is published once an event has been persisted.
// It carries everything needed to announce the event without reading the store again.
type EventCreated struct {
	ID        domain.EventID
	Name      string
	At        time.Time
	Creator   string
	CreatorID domain.UserID
	Lang      string
	CreatedAt time.Time
}

func NewEventCreated(e domain.Event, at time.Time) EventCreated {
	return EventCreated{
		ID:        e.ID,
		Name:      e.Name,
		At:        e.At,
		Creator:   e.Creator,
		CreatorID: e.CreatorID,
		Lang:      e.Lang,
		CreatedAt: at,
	}
}

// Announcement is the text broadcast to every known user.
func (e EventCreated) Announcement() string {
	return fmt.Sprintf("Создано новое событие: '%s' на %s.\nСоздатель: @%s.",
		e.Name, domain.FormatDateTime(e.At), e.Creator)
}
