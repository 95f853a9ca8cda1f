//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=../mocks/mock_event_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"strconv"

	"github.com/samber/lo"
)

type IEventRepository interface {
	LoadEvents() (EventBook, error)
	SaveEvents(book EventBook) error
}

type EventRepository struct {
	store IDocumentStore
}

func NewEventRepository(store IDocumentStore) *EventRepository {
	return &EventRepository{store: store}
}

// EventBook is the events document together with the identifier sequence.
// Sequence is the last identifier handed out; it only ever grows.
type EventBook struct {
	Sequence int
	Events   map[string]DiskEvent
}

type DiskEvent struct {
	Name         string            `json:"name"`
	DateTime     string            `json:"datetime"`
	Creator      string            `json:"creator"`
	CreatorID    int64             `json:"creator_id"`
	Lang         string            `json:"lang,omitempty"`
	Participants []DiskParticipant `json:"participants"`
}

type DiskParticipant struct {
	ID     int64  `json:"id"`
	Handle string `json:"handle,omitempty"`
}

// UnmarshalJSON also reads the legacy layout where a participant is a bare handle.
// Such a participant has no ID until a known user with that handle claims it.
func (p *DiskParticipant) UnmarshalJSON(data []byte) error {
	var handle *string
	if err := json.Unmarshal(data, &handle); err == nil {
		*p = DiskParticipant{}
		if handle != nil {
			p.Handle = *handle
		}
		return nil
	}
	type record DiskParticipant
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*p = DiskParticipant(r)
	return nil
}

// LoadEvents returns an empty book on first run.
// When no sequence was ever saved, it is rebuilt from the existing identifiers
// so that an identifier is never handed out twice.
func (r EventRepository) LoadEvents() (EventBook, error) {
	events := map[string]DiskEvent{}
	var sequence int
	found, err := r.store.LoadMany(
		Document{Kind: EventsDocument, Value: &events},
		Document{Kind: EventsSequenceDocument, Value: &sequence},
	)
	if err != nil {
		return EventBook{}, err
	}
	if !found[EventsSequenceDocument] {
		sequence = recoverSequence(events)
	}
	return EventBook{Sequence: sequence, Events: events}, nil
}

// SaveEvents writes the events and the sequence atomically.
func (r EventRepository) SaveEvents(book EventBook) error {
	events := book.Events
	if events == nil {
		events = map[string]DiskEvent{}
	}
	return r.store.Save(
		Document{Kind: EventsDocument, Value: events},
		Document{Kind: EventsSequenceDocument, Value: book.Sequence},
	)
}

func recoverSequence(events map[string]DiskEvent) int {
	highest := lo.Max(lo.FilterMap(lo.Keys(events), func(id string, _ int) (int, bool) {
		n, err := strconv.Atoi(id)
		return n, err == nil
	}))
	return max(highest, len(events))
}
