//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_manager.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"queue-bot/contract"
	"queue-bot/domain"
	"queue-bot/domain/event"
	"queue-bot/errors"
	"strings"
	"sync"
	"time"
)

type IConversationManager interface {
	Start(ctx context.Context, key domain.SessionKey, creator domain.User) error
	Submit(ctx context.Context, key domain.SessionKey, text string) (bool, error)
	Pending(key domain.SessionKey) (domain.Session, bool)
	Len() int
	Expire(now time.Time) int
}

// ConversationManager drives the event creation wizard, one session per conversational context.
// Idle -> AwaitingName -> AwaitingDateTime -> Idle. A bad date keeps the captured name.
type ConversationManager struct {
	mu        sync.Mutex
	log       *slog.Logger
	registry  IEventRegistry
	messenger contract.Messenger
	notifier  contract.Notifier
	sessions  map[domain.SessionKey]*domain.Session
	ttl       time.Duration
	now       func() time.Time
}

func NewConversationManager(log *slog.Logger,
	registry IEventRegistry,
	messenger contract.Messenger,
	notifier contract.Notifier,
	ttl time.Duration) *ConversationManager {
	return &ConversationManager{
		log:       log,
		registry:  registry,
		messenger: messenger,
		notifier:  notifier,
		sessions:  make(map[domain.SessionKey]*domain.Session),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Start opens a session awaiting the event name.
// A pending session for the same key is discarded (last write wins).
func (c *ConversationManager) Start(ctx context.Context, key domain.SessionKey, creator domain.User) error {
	c.mu.Lock()
	if _, ok := c.sessions[key]; ok {
		c.log.Debug("Restarting pending session", "chat_id", key.Chat, "user_id", key.User)
	}
	c.sessions[key] = &domain.Session{
		Key:       key,
		State:     domain.AwaitingName,
		Creator:   creator,
		UpdatedAt: c.now(),
	}
	c.mu.Unlock()

	_, err := c.messenger.SendText(ctx, key.Chat, AskEventName, nil)
	return err
}

// Submit feeds the next user input to the session of key.
// It returns false when no session is pending, the input is then not for us.
// A storage failure keeps the session as is and is returned to the caller.
// The session table is not locked while the registry persists the event,
// input arriving for the same session meanwhile is ignored.
func (c *ConversationManager) Submit(ctx context.Context, key domain.SessionKey, text string) (bool, error) {
	c.mu.Lock()
	session, ok := c.sessions[key]
	if !ok {
		c.mu.Unlock()
		return false, nil
	}

	var reply string
	switch session.State {
	case domain.AwaitingName:
		reply = c.captureName(session, text)
	case domain.CreatingEvent:
		c.mu.Unlock()
		c.log.Debug("Input ignored while the event is created", "chat_id", key.Chat, "user_id", key.User)
		return true, nil
	default:
		session.State = domain.CreatingEvent
		name, creator := session.Name, session.Creator
		c.mu.Unlock()
		return true, c.create(ctx, key, session, name, text, creator)
	}
	session.UpdatedAt = c.now()
	c.mu.Unlock()

	_, err := c.messenger.SendText(ctx, key.Chat, reply, nil)
	return true, err
}

// captureName must be called with the lock held.
func (c *ConversationManager) captureName(session *domain.Session, text string) string {
	name := strings.TrimSpace(text)
	if name == "" {
		return EmptyNameText
	}
	session.Name = name
	session.State = domain.AwaitingDateTime
	return AskEventDateTime
}

// create calls the registry outside of the lock, then applies the outcome to the session
// unless it was restarted or expired in the meantime.
func (c *ConversationManager) create(ctx context.Context,
	key domain.SessionKey,
	session *domain.Session,
	name, rawDateTime string,
	creator domain.User) error {
	evt, err := c.registry.CreateEvent(name, rawDateTime, creator)

	c.mu.Lock()
	current := c.sessions[key] == session
	var reply string
	switch {
	case err == nil:
		if current {
			delete(c.sessions, key)
		}
	case errors.Is(err, errors.ErrInvalidDateTime):
		session.State = domain.AwaitingDateTime
		reply = InvalidDateTimeText
	case errors.Is(err, errors.ErrEmptyName):
		session.State = domain.AwaitingName
		reply = EmptyNameText
	default:
		session.State = domain.AwaitingDateTime
		session.UpdatedAt = c.now()
		c.mu.Unlock()
		return err
	}
	session.UpdatedAt = c.now()
	c.mu.Unlock()

	if err != nil {
		if !current {
			c.log.Debug("Outcome of a replaced session dropped", "chat_id", key.Chat, "user_id", key.User)
			return nil
		}
		_, err = c.messenger.SendText(ctx, key.Chat, reply, nil)
		return err
	}

	confirmation := fmt.Sprintf(EventCreatedFormat, evt.Name, evt.DateTime(), evt.Creator)
	_, err = c.messenger.SendText(ctx, key.Chat, confirmation, nil)
	c.notifier.Notify(ctx, event.NewEventCreated(evt, c.now().UTC()))
	return err
}

// Pending returns a copy of the session of key, if any.
func (c *ConversationManager) Pending(key domain.SessionKey) (domain.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, ok := c.sessions[key]
	if !ok {
		return domain.Session{}, false
	}
	return *session, true
}

func (c *ConversationManager) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// Expire drops sessions idle for longer than the TTL and returns how many were dropped.
// A zero TTL keeps sessions forever.
func (c *ConversationManager) Expire(now time.Time) int {
	if c.ttl <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	expired := 0
	for key, session := range c.sessions {
		if now.Sub(session.UpdatedAt) > c.ttl {
			delete(c.sessions, key)
			expired++
		}
	}
	if expired > 0 {
		c.log.Debug("Idle sessions expired", "count", expired)
	}
	return expired
}
