// Package telegram is the transport of the bot over the Telegram Bot API.
// It only translates, every decision is taken by the router.
package telegram

import (
	"context"
	"log/slog"
	"queue-bot/contract"
	"queue-bot/domain"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
)

var _ contract.Messenger = (*Messenger)(nil)

// BotAPI is the part of *tgbotapi.BotAPI the bot relies on.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Messenger struct {
	log *slog.Logger
	bot BotAPI
}

func NewMessenger(log *slog.Logger, bot BotAPI) *Messenger {
	return &Messenger{log: log, bot: bot}
}

// SendText sends a message, choices are rendered as an inline keyboard, one button per row.
func (m *Messenger) SendText(ctx context.Context, chat domain.ChatID, text string, choices []domain.Choice) (domain.MessageRef, error) {
	msg := tgbotapi.NewMessage(int64(chat), text)
	if len(choices) > 0 {
		msg.ReplyMarkup = keyboard(choices)
	}
	sent, err := call(ctx, func() (tgbotapi.Message, error) { return m.bot.Send(msg) })
	if err != nil {
		return domain.MessageRef{}, err
	}
	return domain.MessageRef{Chat: chat, ID: sent.MessageID}, nil
}

// EditMessage replaces the text and the keyboard of a message sent earlier.
// Editing a message into the very same content is not an error.
func (m *Messenger) EditMessage(ctx context.Context, ref domain.MessageRef, text string, choices []domain.Choice) error {
	edit := tgbotapi.NewEditMessageText(int64(ref.Chat), ref.ID, text)
	if len(choices) > 0 {
		markup := keyboard(choices)
		edit.ReplyMarkup = &markup
	}
	_, err := call(ctx, func() (*tgbotapi.APIResponse, error) { return m.bot.Request(edit) })
	if err != nil && strings.Contains(err.Error(), "message is not modified") {
		m.log.Debug("Message already up to date", "chat_id", ref.Chat, "message_id", ref.ID)
		return nil
	}
	return err
}

func keyboard(choices []domain.Choice) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(lo.Map(choices, func(c domain.Choice, _ int) []tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(c.Label, c.Action.Data()))
	})...)
}

// call bounds a blocking Bot API request by ctx. The request itself is not cancelled,
// its result is discarded once ctx is done.
func call[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := fn()
		done <- result{value: value, err: err}
	}()
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-done:
		return r.value, r.err
	}
}
