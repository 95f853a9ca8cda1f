//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=../mocks/mock_event_registry.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"queue-bot/contract"
	"queue-bot/domain"
	"queue-bot/errors"
	"queue-bot/repositories"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type IEventRegistry interface {
	RegisterUser(user domain.User) (bool, error)
	Users() ([]domain.User, error)
	CreateEvent(name, rawDateTime string, creator domain.User) (domain.Event, error)
	ListEvents() ([]domain.EventSummary, error)
	GetEvent(id domain.EventID) (domain.Event, error)
	JoinEvent(id domain.EventID, participant domain.User) (int, error)
	LeaveEvent(id domain.EventID, participantID domain.UserID) error
}

// EventRegistry owns users, events and their participant queues.
// Every operation loads the documents, works on a private copy and saves it
// before answering, all under a single lock. A failed save leaves nothing behind.
type EventRegistry struct {
	mu        sync.Mutex
	log       *slog.Logger
	users     repositories.IUserRepository
	events    repositories.IEventRepository
	moderator contract.NameModerator
	validate  *validator.Validate
}

// EventDraft is the raw user input of an event creation.
type EventDraft struct {
	Name     string `validate:"required"`
	DateTime string `validate:"required,datetime=2006-01-02 15:04"`
}

func NewEventRegistry(log *slog.Logger,
	users repositories.IUserRepository,
	events repositories.IEventRepository,
	moderator contract.NameModerator) *EventRegistry {
	return &EventRegistry{
		log:       log,
		users:     users,
		events:    events,
		moderator: moderator,
		validate:  validator.New(),
	}
}

// RegisterUser adds the user when unknown, or refreshes its handle.
// It only writes when something changed and reports whether it did.
func (r *EventRegistry) RegisterUser(user domain.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.users.LoadUsers()
	if err != nil {
		return false, storageFailure(err)
	}
	_, idx, found := lo.FindIndexOf(users, func(u repositories.DiskUser) bool {
		return u.ID == int64(user.ID)
	})
	switch {
	case !found:
		users = append(users, fromUser(user))
	case user.Handle != "" && users[idx].Handle != user.Handle:
		users[idx].Handle = user.Handle
	default:
		return false, nil
	}
	if err = r.users.SaveUsers(users); err != nil {
		return false, storageFailure(err)
	}
	r.log.Debug("User registered", "user_id", user.ID, "new", !found)
	return true, nil
}

func (r *EventRegistry) Users() ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.users.LoadUsers()
	if err != nil {
		return nil, storageFailure(err)
	}
	return lo.Map(users, func(u repositories.DiskUser, _ int) domain.User {
		return toUser(u)
	}), nil
}

// CreateEvent validates the draft, allocates the next identifier and persists the event
// with an empty queue. Nothing is written when the name or the date time is invalid.
// The name is stored as submitted, moderation only flags it and detects its language.
func (r *EventRegistry) CreateEvent(name, rawDateTime string, creator domain.User) (domain.Event, error) {
	draft := EventDraft{Name: strings.TrimSpace(name), DateTime: strings.TrimSpace(rawDateTime)}
	if draft.Name == "" {
		return domain.Event{}, errors.ErrEmptyName
	}
	if err := r.validate.Struct(draft); err != nil {
		return domain.Event{}, toDraftError(err)
	}
	at, err := domain.ParseDateTime(draft.DateTime)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: %v", errors.ErrInvalidDateTime, err)
	}

	var flagged []string
	var lang string
	if r.moderator != nil {
		flagged, lang = r.moderator.Moderate(draft.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	book, err := r.events.LoadEvents()
	if err != nil {
		return domain.Event{}, storageFailure(err)
	}
	evt := domain.Event{
		ID:           domain.NextEventID(book.Sequence),
		Name:         draft.Name,
		At:           at,
		Creator:      creator.DisplayHandle(),
		CreatorID:    creator.ID,
		Lang:         lang,
		Participants: []domain.Participant{},
	}
	if book.Events == nil {
		book.Events = map[string]repositories.DiskEvent{}
	}
	book.Sequence++
	book.Events[string(evt.ID)] = fromEvent(evt)
	if err = r.events.SaveEvents(book); err != nil {
		return domain.Event{}, storageFailure(err)
	}
	r.log.Info("Event created", "event_id", evt.ID, "creator_id", evt.CreatorID, "at", evt.DateTime())
	if len(flagged) > 0 {
		r.log.Warn("Event name contains dictionary words", "event_id", evt.ID, "creator_id", evt.CreatorID, "words", flagged)
	}
	return evt, nil
}

// ListEvents returns every event ordered by identifier, an empty slice when none exist.
func (r *EventRegistry) ListEvents() ([]domain.EventSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, err := r.events.LoadEvents()
	if err != nil {
		return nil, storageFailure(err)
	}
	ids := lo.Keys(book.Events)
	sort.Slice(ids, func(i, j int) bool {
		return domain.EventID(ids[i]).Number() < domain.EventID(ids[j]).Number()
	})
	return lo.Map(ids, func(id string, _ int) domain.EventSummary {
		return domain.EventSummary{ID: domain.EventID(id), Name: book.Events[id].Name}
	}), nil
}

// GetEvent returns the event with participant handles resolved from the users document.
func (r *EventRegistry) GetEvent(id domain.EventID) (domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, err := r.events.LoadEvents()
	if err != nil {
		return domain.Event{}, storageFailure(err)
	}
	disk, ok := book.Events[string(id)]
	if !ok {
		return domain.Event{}, errors.ErrNotFound
	}
	evt, err := toEvent(id, disk)
	if err != nil {
		return domain.Event{}, storageFailure(err)
	}
	users, err := r.users.LoadUsers()
	if err != nil {
		return domain.Event{}, storageFailure(err)
	}
	claimLegacyParticipants(&evt, users)
	return resolveHandles(evt, users), nil
}

// JoinEvent appends the participant to the queue and returns its 1-based position.
func (r *EventRegistry) JoinEvent(id domain.EventID, participant domain.User) (int, error) {
	var position int
	err := r.mutate(id, func(evt *domain.Event) error {
		var joined bool
		if position, joined = evt.Join(participant); !joined {
			return errors.ErrAlreadyJoined
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	r.log.Debug("Participant joined", "event_id", id, "user_id", participant.ID, "position", position)
	return position, nil
}

// LeaveEvent removes the participant from the queue, keeping the order of the others.
func (r *EventRegistry) LeaveEvent(id domain.EventID, participantID domain.UserID) error {
	err := r.mutate(id, func(evt *domain.Event) error {
		if !evt.Leave(participantID) {
			return errors.ErrNotJoined
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.log.Debug("Participant left", "event_id", id, "user_id", participantID)
	return nil
}

// mutate runs a read-modify-persist cycle on a single event.
// The change is only kept when fn succeeds and the save completes.
func (r *EventRegistry) mutate(id domain.EventID, fn func(evt *domain.Event) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, err := r.events.LoadEvents()
	if err != nil {
		return storageFailure(err)
	}
	disk, ok := book.Events[string(id)]
	if !ok {
		return errors.ErrNotFound
	}
	evt, err := toEvent(id, disk)
	if err != nil {
		return storageFailure(err)
	}
	users, err := r.users.LoadUsers()
	if err != nil {
		return storageFailure(err)
	}
	claimLegacyParticipants(&evt, users)
	if err = fn(&evt); err != nil {
		return err
	}
	book.Events[string(id)] = fromEvent(evt)
	if err = r.events.SaveEvents(book); err != nil {
		return storageFailure(err)
	}
	return nil
}

func storageFailure(err error) error {
	return fmt.Errorf("%w: %v", errors.ErrStorageFailure, err)
}

func toDraftError(err error) error {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fe := range fieldErrors {
		if fe.Field() == "DateTime" {
			return fmt.Errorf("%w: %v", errors.ErrInvalidDateTime, fe)
		}
	}
	return fmt.Errorf("%w: %v", errors.ErrEmptyName, err)
}

// claimLegacyParticipants gives an identity to participants stored by handle only,
// using the known user holding that handle. A user already queued by ID keeps a single place.
func claimLegacyParticipants(evt *domain.Event, users []repositories.DiskUser) {
	ids := lo.SliceToMap(lo.Filter(users, func(u repositories.DiskUser, _ int) bool { return u.Handle != "" }),
		func(u repositories.DiskUser) (string, domain.UserID) { return u.Handle, domain.UserID(u.ID) })
	for i, p := range evt.Participants {
		if p.ID != 0 || p.Handle == "" {
			continue
		}
		if id, ok := ids[p.Handle]; ok && !evt.HasParticipant(id) {
			evt.Participants[i].ID = id
		}
	}
}

func resolveHandles(evt domain.Event, users []repositories.DiskUser) domain.Event {
	handles := lo.SliceToMap(users, func(u repositories.DiskUser) (domain.UserID, string) {
		return domain.UserID(u.ID), u.Handle
	})
	evt.Participants = lo.Map(evt.Participants, func(p domain.Participant, _ int) domain.Participant {
		if handle := handles[p.ID]; handle != "" {
			p.Handle = handle
		}
		return p
	})
	if handle := handles[evt.CreatorID]; handle != "" {
		evt.Creator = handle
	}
	return evt
}

func fromUser(user domain.User) repositories.DiskUser {
	return repositories.DiskUser{ID: int64(user.ID), Handle: user.Handle}
}

func toUser(u repositories.DiskUser) domain.User {
	return domain.User{ID: domain.UserID(u.ID), Handle: u.Handle}
}

func fromEvent(evt domain.Event) repositories.DiskEvent {
	return repositories.DiskEvent{
		Name:      evt.Name,
		DateTime:  evt.DateTime(),
		Creator:   evt.Creator,
		CreatorID: int64(evt.CreatorID),
		Lang:      evt.Lang,
		Participants: lo.Map(evt.Participants, func(p domain.Participant, _ int) repositories.DiskParticipant {
			return repositories.DiskParticipant{ID: int64(p.ID), Handle: p.Handle}
		}),
	}
}

func toEvent(id domain.EventID, disk repositories.DiskEvent) (domain.Event, error) {
	at, err := domain.ParseDateTime(disk.DateTime)
	if err != nil {
		return domain.Event{}, fmt.Errorf("event %s has a malformed datetime: %w", id, err)
	}
	return domain.Event{
		ID:        id,
		Name:      disk.Name,
		At:        at,
		Creator:   disk.Creator,
		CreatorID: domain.UserID(disk.CreatorID),
		Lang:      disk.Lang,
		Participants: lo.Map(disk.Participants, func(p repositories.DiskParticipant, _ int) domain.Participant {
			return domain.Participant{ID: domain.UserID(p.ID), Handle: p.Handle}
		}),
	}, nil
}
