package workers

import (
	"context"
	"log/slog"
	"queue-bot/contract"
	"queue-bot/domain"
	"queue-bot/domain/event"

	"github.com/samber/lo"
)

var _ contract.Worker = (*NotificationWorker)(nil)

// UserDirectory lists every user that ever talked to the bot.
type UserDirectory interface {
	Users() ([]domain.User, error)
}

// NotificationWorker announces every created event to all known users.
// Deliveries are never retried, failures are only logged.
type NotificationWorker struct {
	log         *slog.Logger
	directory   UserDirectory
	broadcaster contract.Broadcaster
	created     chan event.EventCreated
}

func NewNotificationWorker(log *slog.Logger,
	directory UserDirectory,
	broadcaster contract.Broadcaster,
	created chan event.EventCreated) *NotificationWorker {
	return &NotificationWorker{
		log:         log,
		directory:   directory,
		broadcaster: broadcaster,
		created:     created,
	}
}

func (w *NotificationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping notifications")
			return nil
		case evt, ok := <-w.created:
			if !ok {
				w.log.Debug("Notification channel is closed")
				return nil
			}
			w.announce(ctx, evt)
		}
	}
}

func (w *NotificationWorker) announce(ctx context.Context, evt event.EventCreated) {
	users, err := w.directory.Users()
	if err != nil {
		w.log.Error("Unable to load users, announcement dropped", "event_id", evt.ID, "error", err)
		return
	}
	recipients := lo.Map(users, func(u domain.User, _ int) domain.ChatID { return u.ChatID() })
	report := w.broadcaster.Broadcast(ctx, recipients, evt.Announcement())

	for _, failure := range report.Failed {
		w.log.Warn("Announcement not delivered",
			"broadcast_id", report.ID, "event_id", evt.ID, "chat_id", failure.Recipient, "error", failure.Cause)
	}
	w.log.Info("Event announced",
		"broadcast_id", report.ID, "event_id", evt.ID, "lang", evt.Lang,
		"recipients", report.Attempted(), "succeeded", report.Succeeded, "failed", len(report.Failed))
}
