package telegram

import (
	"context"
	"log/slog"
	"queue-bot/contract"
	"queue-bot/domain"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var _ contract.Worker = (*UpdatesWorker)(nil)

const startCommand = "start"

// UpdatesWorker long-polls the Bot API and hands every update to the inbound handler.
// Updates are handled concurrently, one goroutine each.
type UpdatesWorker struct {
	log         *slog.Logger
	bot         BotAPI
	handler     contract.InboundHandler
	pollTimeout int
}

func NewUpdatesWorker(log *slog.Logger, bot BotAPI, handler contract.InboundHandler, pollTimeout int) *UpdatesWorker {
	return &UpdatesWorker{log: log, bot: bot, handler: handler, pollTimeout: pollTimeout}
}

func (w *UpdatesWorker) Run(ctx context.Context) error {
	config := tgbotapi.NewUpdate(0)
	config.Timeout = w.pollTimeout
	updates := w.bot.GetUpdatesChan(config)
	w.log.Info("Polling Telegram updates")

	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		select {
		case <-ctx.Done():
			w.bot.StopReceivingUpdates()
			w.log.Debug("Context done, stopping updates polling")
			return nil
		case update, ok := <-updates:
			if !ok {
				w.log.Debug("Updates channel is closed")
				return nil
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.Handle(ctx, update)
			}()
		}
	}
}

// Handle translates one update. A panic only loses this update.
func (w *UpdatesWorker) Handle(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Update handling panicked", "update_id", update.UpdateID, "panic", r)
		}
	}()

	var err error
	switch {
	case update.CallbackQuery != nil:
		err = w.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		err = w.handleMessage(ctx, update.Message)
	default:
		return
	}
	if err != nil {
		w.log.Error("Unable to handle update", "update_id", update.UpdateID, "error", err)
	}
}

func (w *UpdatesWorker) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}
	origin := domain.Origin{
		User:    toUser(msg.From),
		Chat:    domain.ChatID(msg.Chat.ID),
		Message: domain.MessageRef{Chat: domain.ChatID(msg.Chat.ID), ID: msg.MessageID},
	}
	if msg.IsCommand() {
		if msg.Command() == startCommand {
			return w.handler.Start(ctx, origin)
		}
		w.log.Debug("Unsupported command ignored", "command", msg.Command())
		return nil
	}
	if msg.Text == "" {
		return nil
	}
	return w.handler.SubmitText(ctx, origin, msg.Text)
}

func (w *UpdatesWorker) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	// Acknowledge first so the client stops its spinner
	if _, err := w.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		w.log.Warn("Unable to acknowledge callback", "callback_id", query.ID, "error", err)
	}
	if query.From == nil {
		return nil
	}
	origin := domain.Origin{User: toUser(query.From), Chat: domain.ChatID(query.From.ID)}
	if query.Message != nil {
		origin.Chat = domain.ChatID(query.Message.Chat.ID)
		origin.Message = domain.MessageRef{Chat: origin.Chat, ID: query.Message.MessageID}
	}

	action, err := domain.ParseAction(query.Data)
	if err != nil {
		w.log.Warn("Unparsable callback data", "data", query.Data, "error", err)
		action = domain.NewAction(domain.ActionKind(query.Data))
	}
	return w.handler.Dispatch(ctx, origin, action)
}

func toUser(from *tgbotapi.User) domain.User {
	return domain.NewUser(from.ID, from.UserName)
}
