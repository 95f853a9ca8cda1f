// Package router translates user interactions into registry and conversation calls
// and renders the answers. It owns no state.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"queue-bot/contract"
	"queue-bot/domain"
	"queue-bot/errors"
	"queue-bot/services"
	"strings"

	"github.com/samber/lo"
)

var _ contract.InboundHandler = (*Router)(nil)

type Router struct {
	log       *slog.Logger
	registry  services.IEventRegistry
	sessions  services.IConversationManager
	messenger contract.Messenger
}

func NewRouter(log *slog.Logger,
	registry services.IEventRegistry,
	sessions services.IConversationManager,
	messenger contract.Messenger) *Router {
	return &Router{log: log, registry: registry, sessions: sessions, messenger: messenger}
}

// Start answers /start with the main menu.
func (r *Router) Start(ctx context.Context, origin domain.Origin) error {
	r.register(origin.User)
	_, err := r.messenger.SendText(ctx, origin.Chat, MenuText, []domain.Choice{
		{Label: CreateEventLabel, Action: domain.NewAction(domain.StartCreate)},
		{Label: JoinQueueLabel, Action: domain.NewAction(domain.ListEvents)},
	})
	return err
}

// SubmitText forwards free text to the pending creation wizard, if any.
func (r *Router) SubmitText(ctx context.Context, origin domain.Origin, text string) error {
	r.register(origin.User)
	handled, err := r.sessions.Submit(ctx, origin.SessionKey(), text)
	if err != nil {
		return r.fail(ctx, origin, err)
	}
	if !handled {
		r.log.Debug("Text outside of a conversation ignored", "chat_id", origin.Chat, "user_id", origin.User.ID)
	}
	return nil
}

func (r *Router) Dispatch(ctx context.Context, origin domain.Origin, action domain.Action) error {
	r.register(origin.User)
	r.log.Debug("Dispatching action", "action", action.Data(), "chat_id", origin.Chat, "user_id", origin.User.ID)

	var err error
	switch action.Kind {
	case domain.StartCreate:
		err = r.sessions.Start(ctx, origin.SessionKey(), origin.User)
	case domain.ListEvents:
		err = r.listEvents(ctx, origin)
	case domain.ViewEvent:
		err = r.showEvent(ctx, origin, action.EventID)
	case domain.Join:
		err = r.join(ctx, origin, action.EventID)
	case domain.Leave:
		err = r.leave(ctx, origin, action.EventID)
	default:
		err = fmt.Errorf("%w: %q", errors.ErrUnknownAction, action.Kind)
	}
	if err != nil {
		return r.fail(ctx, origin, err)
	}
	return nil
}

func (r *Router) listEvents(ctx context.Context, origin domain.Origin) error {
	summaries, err := r.registry.ListEvents()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		_, err = r.messenger.SendText(ctx, origin.Chat, NoEventsText, nil)
		return err
	}
	choices := lo.Map(summaries, func(s domain.EventSummary, _ int) domain.Choice {
		return domain.Choice{Label: s.Name, Action: domain.NewEventAction(domain.ViewEvent, s.ID)}
	})
	_, err = r.messenger.SendText(ctx, origin.Chat, ChooseEventText, choices)
	return err
}

// showEvent turns the originating message into the event page.
// Without a message to edit, the page is sent as a new one.
func (r *Router) showEvent(ctx context.Context, origin domain.Origin, id domain.EventID) error {
	evt, err := r.registry.GetEvent(id)
	if err != nil {
		return err
	}
	text, choices := RenderEventPage(evt)
	if origin.Message.ID == 0 {
		_, err = r.messenger.SendText(ctx, origin.Chat, text, choices)
		return err
	}
	return r.messenger.EditMessage(ctx, origin.Message, text, choices)
}

func (r *Router) join(ctx context.Context, origin domain.Origin, id domain.EventID) error {
	position, err := r.registry.JoinEvent(id, origin.User)
	if err != nil {
		return err
	}
	evt, err := r.registry.GetEvent(id)
	if err != nil {
		return err
	}
	if _, err = r.messenger.SendText(ctx, origin.Chat, fmt.Sprintf(JoinedFormat, evt.Name, position), nil); err != nil {
		return err
	}
	return r.showEvent(ctx, origin, id)
}

func (r *Router) leave(ctx context.Context, origin domain.Origin, id domain.EventID) error {
	if err := r.registry.LeaveEvent(id, origin.User.ID); err != nil {
		return err
	}
	evt, err := r.registry.GetEvent(id)
	if err != nil {
		return err
	}
	if _, err = r.messenger.SendText(ctx, origin.Chat, fmt.Sprintf(LeftFormat, evt.Name), nil); err != nil {
		return err
	}
	return r.showEvent(ctx, origin, id)
}

// register records every user that interacts with the bot, so they receive announcements.
func (r *Router) register(user domain.User) {
	if _, err := r.registry.RegisterUser(user); err != nil {
		r.log.Error("Unable to register user", "user_id", user.ID, "error", err)
	}
}

// fail tells the user what went wrong. Expected outcomes are answered and swallowed,
// anything else is logged and returned to the transport.
func (r *Router) fail(ctx context.Context, origin domain.Origin, err error) error {
	var text string
	switch {
	case errors.Is(err, errors.ErrNotFound):
		text = NotFoundText
	case errors.Is(err, errors.ErrAlreadyJoined):
		text = AlreadyJoinedText
	case errors.Is(err, errors.ErrNotJoined):
		text = NotJoinedText
	case errors.Is(err, errors.ErrUnknownAction):
		r.log.Warn("Unknown action", "chat_id", origin.Chat, "error", err)
		text = UnknownActionText
	case errors.Is(err, errors.ErrStorageFailure):
		r.log.Error("Storage failure", "chat_id", origin.Chat, "user_id", origin.User.ID, "error", err)
		text = StorageFailureText
	default:
		return err
	}
	if _, sendErr := r.messenger.SendText(ctx, origin.Chat, text, nil); sendErr != nil {
		return sendErr
	}
	return nil
}

// RenderEventPage renders an event with its numbered queue and the join and leave controls.
func RenderEventPage(evt domain.Event) (string, []domain.Choice) {
	participants := NoParticipantsText
	if len(evt.Participants) > 0 {
		participants = strings.Join(lo.Map(evt.Participants, func(p domain.Participant, i int) string {
			return fmt.Sprintf(ParticipantFormat, i+1, p.DisplayHandle())
		}), "\n")
	}
	text := fmt.Sprintf(EventPageFormat, evt.Name, evt.DateTime(), domain.DisplayHandle(evt.Creator), participants)
	return text, []domain.Choice{
		{Label: JoinLabel, Action: domain.NewEventAction(domain.Join, evt.ID)},
		{Label: LeaveLabel, Action: domain.NewEventAction(domain.Leave, evt.ID)},
	}
}
