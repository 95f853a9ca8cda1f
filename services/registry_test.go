package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"queue-bot/domain"
	"queue-bot/errors"
	"queue-bot/mocks"
	"queue-bot/moderation"
	"queue-bot/repositories"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRegistry(t *testing.T) (*EventRegistry, repositories.IEventRepository, repositories.IUserRepository) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := repositories.NewDocumentStore(db)
	events := repositories.NewEventRepository(store)
	users := repositories.NewUserRepository(store)
	return NewEventRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), users, events, nil), events, users
}

var (
	alice = domain.NewUser(1, "alice")
	bob   = domain.NewUser(2, "bob")
	carol = domain.NewUser(3, "")
)

func Test_Create_Then_Get_Event(t *testing.T) {
	req := require.New(t)
	registry, _, _ := newRegistry(t)

	// Given a valid draft
	created, err := registry.CreateEvent("Launch", "2025-06-01 10:00", alice)
	req.NoError(err)

	// When the event is fetched back
	got, err := registry.GetEvent(created.ID)

	// Then it carries the submitted fields and an empty queue
	req.NoError(err)
	req.Equal(domain.EventID("1"), got.ID)
	req.Equal("Launch", got.Name)
	req.Equal("2025-06-01 10:00", got.DateTime())
	req.Equal("alice", got.Creator)
	req.Empty(got.Participants)
}

func Test_Create_Event_With_Invalid_DateTime_Changes_Nothing(t *testing.T) {
	req := require.New(t)
	registry, events, _ := newRegistry(t)

	for _, raw := range []string{"not-a-date", "2025-13-01 10:00", "2025-06-01", "01-06-2025 10:00", ""} {
		// When the date time is malformed
		_, err := registry.CreateEvent("Launch", raw, alice)

		// Then the creation is refused
		req.ErrorIs(err, errors.ErrInvalidDateTime, raw)
	}

	// And nothing was persisted
	book, err := events.LoadEvents()
	req.NoError(err)
	req.Empty(book.Events)
	req.Equal(0, book.Sequence)
}

func Test_Create_Event_Rejects_Bad_Names(t *testing.T) {
	req := require.New(t)
	registry, _, _ := newRegistry(t)

	_, err := registry.CreateEvent("   ", "2025-06-01 10:00", alice)
	req.ErrorIs(err, errors.ErrEmptyName)

	_, err = registry.CreateEvent("", "2025-06-01 10:00", alice)
	req.ErrorIs(err, errors.ErrEmptyName)

	summaries, err := registry.ListEvents()
	req.NoError(err)
	req.Empty(summaries)
}

func Test_Long_Names_Are_Accepted(t *testing.T) {
	req := require.New(t)
	registry, _, _ := newRegistry(t)
	name := strings.Repeat("я", 500)

	created, err := registry.CreateEvent(name, "2025-06-01 10:00", alice)
	req.NoError(err)

	got, err := registry.GetEvent(created.ID)
	req.NoError(err)
	req.Equal(name, got.Name)
}

func Test_Moderation_Never_Rewrites_The_Name(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	store := repositories.NewDocumentStore(db)

	// Given a registry screening names against a real dictionary
	moderator, err := moderation.NewModerator([]string{"cunt", "shit", "сука"}, '*', log)
	req.NoError(err)
	registry := NewEventRegistry(log, repositories.NewUserRepository(store), repositories.NewEventRepository(store), moderator)

	for _, name := range []string{"Scunthorpe meetup", "Class Hit Party", "Bass hit night", "Сукачев концерт", "  Launch  "} {
		// When an event is created then fetched back
		created, err := registry.CreateEvent(name, "2025-06-01 10:00", alice)
		req.NoError(err, name)
		got, err := registry.GetEvent(created.ID)
		req.NoError(err, name)

		// Then both carry the trimmed submitted name
		req.Equal(strings.TrimSpace(name), created.Name)
		req.Equal(strings.TrimSpace(name), got.Name)
	}
}

func Test_Event_Ids_Are_Monotonic(t *testing.T) {
	req := require.New(t)
	registry, events, _ := newRegistry(t)

	// Given three events
	for i := 0; i < 3; i++ {
		_, err := registry.CreateEvent(fmt.Sprintf("event %d", i), "2025-06-01 10:00", alice)
		req.NoError(err)
	}

	// When one is removed from the document behind the registry's back
	book, err := events.LoadEvents()
	req.NoError(err)
	delete(book.Events, "3")
	req.NoError(events.SaveEvents(book))

	// Then the next identifier is still fresh
	created, err := registry.CreateEvent("next", "2025-06-01 10:00", alice)
	req.NoError(err)
	req.Equal(domain.EventID("4"), created.ID)

	summaries, err := registry.ListEvents()
	req.NoError(err)
	req.Equal([]domain.EventID{"1", "2", "4"}, []domain.EventID{summaries[0].ID, summaries[1].ID, summaries[2].ID})
}

func Test_Join_Keeps_Arrival_Order(t *testing.T) {
	req := require.New(t)
	registry, _, _ := newRegistry(t)
	created, err := registry.CreateEvent("Launch", "2025-06-01 10:00", alice)
	req.NoError(err)

	// When three users join in turn
	for i, user := range []domain.User{alice, bob, carol} {
		position, err := registry.JoinEvent(created.ID, user)
		req.NoError(err)
		req.Equal(i+1, position)
	}

	// Then the queue keeps the arrival order
	got, err := registry.GetEvent(created.ID)
	req.NoError(err)
	req.Len(got.Participants, 3)
	req.Equal(alice.ID, got.Participants[0].ID)
	req.Equal(bob.ID, got.Participants[1].ID)
	req.Equal(carol.ID, got.Participants[2].ID)
	req.Equal(domain.PlaceholderHandle, got.Participants[2].DisplayHandle())
}

func Test_Join_Twice_Is_Refused(t *testing.T) {
	req := require.New(t)
	registry, _, _ := newRegistry(t)
	created, err := registry.CreateEvent("Launch", "2025-06-01 10:00", alice)
	req.NoError(err)

	_, err = registry.JoinEvent(created.ID, bob)
	req.NoError(err)

	// When the same user joins again
	_, err = registry.JoinEvent(created.ID, bob)

	// Then the queue is unchanged
	req.ErrorIs(err, errors.ErrAlreadyJoined)
	got, err := registry.GetEvent(created.ID)
	req.NoError(err)
	req.Len(got.Participants, 1)
}

func Test_Leave_Restores_Previous_Queue(t *testing.T) {
	req := require.New(t)
	registry, _, _ := newRegistry(t)
	created, err := registry.CreateEvent("Launch", "2025-06-01 10:00", alice)
	req.NoError(err)
	_, err = registry.JoinEvent(created.ID, alice)
	req.NoError(err)
	_, err = registry.JoinEvent(created.ID, carol)
	req.NoError(err)

	// When bob joins then leaves
	_, err = registry.JoinEvent(created.ID, bob)
	req.NoError(err)
	req.NoError(registry.LeaveEvent(created.ID, bob.ID))

	// Then the queue is back to alice, carol
	got, err := registry.GetEvent(created.ID)
	req.NoError(err)
	req.Equal([]domain.UserID{alice.ID, carol.ID}, []domain.UserID{got.Participants[0].ID, got.Participants[1].ID})
	req.Len(got.Participants, 2)

	// And leaving again is refused
	req.ErrorIs(registry.LeaveEvent(created.ID, bob.ID), errors.ErrNotJoined)
}

func Test_Unknown_Event_Is_Not_Found(t *testing.T) {
	req := require.New(t)
	registry, _, _ := newRegistry(t)

	_, err := registry.GetEvent("42")
	req.ErrorIs(err, errors.ErrNotFound)
	_, err = registry.JoinEvent("42", alice)
	req.ErrorIs(err, errors.ErrNotFound)
	req.ErrorIs(registry.LeaveEvent("42", alice.ID), errors.ErrNotFound)
}

func Test_Register_User_Writes_Only_On_Change(t *testing.T) {
	req := require.New(t)
	registry, _, _ := newRegistry(t)

	changed, err := registry.RegisterUser(alice)
	req.NoError(err)
	req.True(changed)

	// Same user, same handle
	changed, err = registry.RegisterUser(alice)
	req.NoError(err)
	req.False(changed)

	// Handle renamed
	changed, err = registry.RegisterUser(domain.NewUser(1, "alice_new"))
	req.NoError(err)
	req.True(changed)

	users, err := registry.Users()
	req.NoError(err)
	req.Equal([]domain.User{domain.NewUser(1, "alice_new")}, users)
}

func Test_Participant_Handle_Follows_User_Rename(t *testing.T) {
	req := require.New(t)
	registry, _, _ := newRegistry(t)
	created, err := registry.CreateEvent("Launch", "2025-06-01 10:00", alice)
	req.NoError(err)
	_, err = registry.RegisterUser(bob)
	req.NoError(err)
	_, err = registry.JoinEvent(created.ID, bob)
	req.NoError(err)

	// When bob renames the account
	_, err = registry.RegisterUser(domain.NewUser(2, "bobby"))
	req.NoError(err)

	// Then the queue shows the new handle
	got, err := registry.GetEvent(created.ID)
	req.NoError(err)
	req.Equal("bobby", got.Participants[0].Handle)
}

func Test_Storage_Failure_Is_Reported(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mocks.NewMockIUserRepository(ctrl)
	events := mocks.NewMockIEventRepository(ctrl)
	registry := NewEventRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), users, events, nil)

	// Given a store that cannot be read
	events.EXPECT().LoadEvents().Return(repositories.EventBook{}, fmt.Errorf("io error"))
	users.EXPECT().LoadUsers().Return(nil, fmt.Errorf("io error"))

	// Then every failure surfaces as a storage failure
	_, err := registry.ListEvents()
	req.ErrorIs(err, errors.ErrStorageFailure)
	_, err = registry.RegisterUser(alice)
	req.ErrorIs(err, errors.ErrStorageFailure)
}

// failingEvents saves nothing while broken is set.
type failingEvents struct {
	*repositories.EventRepository
	broken bool
}

func (f *failingEvents) SaveEvents(book repositories.EventBook) error {
	if f.broken {
		return fmt.Errorf("disk full")
	}
	return f.EventRepository.SaveEvents(book)
}

func Test_Storage_Failure_Leaves_State_Untouched(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	store := repositories.NewDocumentStore(db)
	events := &failingEvents{EventRepository: repositories.NewEventRepository(store)}
	registry := NewEventRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), repositories.NewUserRepository(store), events, nil)

	created, err := registry.CreateEvent("Launch", "2025-06-01 10:00", alice)
	req.NoError(err)

	// Given a store that refuses writes
	events.broken = true

	// When a user joins and another event is created
	_, err = registry.JoinEvent(created.ID, bob)
	req.ErrorIs(err, errors.ErrStorageFailure)
	_, err = registry.CreateEvent("Other", "2025-06-02 10:00", alice)
	req.ErrorIs(err, errors.ErrStorageFailure)

	// Then nothing of it is visible once the store recovers
	events.broken = false
	got, err := registry.GetEvent(created.ID)
	req.NoError(err)
	req.Empty(got.Participants)
	summaries, err := registry.ListEvents()
	req.NoError(err)
	req.Len(summaries, 1)

	// And the next identifier was not consumed
	next, err := registry.CreateEvent("Other", "2025-06-02 10:00", alice)
	req.NoError(err)
	req.Equal(domain.EventID("2"), next.ID)
}

func Test_Legacy_Participants_Are_Claimed_By_Handle(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	store := repositories.NewDocumentStore(db)

	// Given a queue stored by handles only
	req.NoError(store.Save(
		repositories.Document{Kind: repositories.UsersDocument, Value: json.RawMessage(`[1, 2]`)},
		repositories.Document{Kind: repositories.EventsDocument, Value: json.RawMessage(
			`{"1": {"name": "Launch", "datetime": "2025-06-01 10:00", "creator": "alice", "participants": ["bob", "carol"]}}`)},
	))
	registry := NewEventRegistry(logs.GetLoggerFromLevel(slog.LevelDebug),
		repositories.NewUserRepository(store), repositories.NewEventRepository(store), nil)

	// When bob shows up with the same handle
	_, err = registry.RegisterUser(bob)
	req.NoError(err)

	// Then bob owns the legacy place and cannot take a second one
	_, err = registry.JoinEvent("1", bob)
	req.ErrorIs(err, errors.ErrAlreadyJoined)
	req.NoError(registry.LeaveEvent("1", bob.ID))

	got, err := registry.GetEvent("1")
	req.NoError(err)
	req.Equal([]domain.Participant{{Handle: "carol"}}, got.Participants)

	// And the next identifier follows the legacy ones
	created, err := registry.CreateEvent("Retro", "2025-06-02 10:00", alice)
	req.NoError(err)
	req.Equal(domain.EventID("2"), created.ID)
}
