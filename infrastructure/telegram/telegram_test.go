package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"queue-bot/domain"
	"queue-bot/mocks"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeBot records what the bot would have sent to Telegram.
type fakeBot struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	updates  chan tgbotapi.Update
	sendErr  error
	stopped  bool
	block    chan struct{}
}

func newFakeBot() *fakeBot {
	return &fakeBot{updates: make(chan tgbotapi.Update, 10)}
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if b.block != nil {
		<-b.block
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sendErr != nil {
		return tgbotapi.Message{}, b.sendErr
	}
	b.sent = append(b.sent, c)
	return tgbotapi.Message{MessageID: len(b.sent)}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, c)
	if b.sendErr != nil {
		return nil, b.sendErr
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped = true
}

func Test_Send_Text_With_Keyboard(t *testing.T) {
	req := require.New(t)
	bot := newFakeBot()
	messenger := NewMessenger(logs.GetLoggerFromLevel(slog.LevelDebug), bot)

	ref, err := messenger.SendText(context.Background(), 200, "Привет!", []domain.Choice{
		{Label: "Создать событие", Action: domain.NewAction(domain.StartCreate)},
		{Label: "Launch", Action: domain.NewEventAction(domain.ViewEvent, "1")},
	})

	req.NoError(err)
	req.Equal(domain.MessageRef{Chat: 200, ID: 1}, ref)
	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	req.True(ok)
	req.Equal(int64(200), msg.ChatID)
	req.Equal("Привет!", msg.Text)
	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	req.True(ok)
	req.Len(markup.InlineKeyboard, 2)
	req.Equal("create_event", *markup.InlineKeyboard[0][0].CallbackData)
	req.Equal("view_event_1", *markup.InlineKeyboard[1][0].CallbackData)
}

func Test_Send_Text_Without_Choices_Has_No_Keyboard(t *testing.T) {
	req := require.New(t)
	bot := newFakeBot()
	messenger := NewMessenger(logs.GetLoggerFromLevel(slog.LevelDebug), bot)

	_, err := messenger.SendText(context.Background(), 200, "hello", nil)

	req.NoError(err)
	req.Nil(bot.sent[0].(tgbotapi.MessageConfig).ReplyMarkup)
}

func Test_Send_Text_Honors_Deadline(t *testing.T) {
	req := require.New(t)
	bot := newFakeBot()
	bot.block = make(chan struct{})
	defer close(bot.block)
	messenger := NewMessenger(logs.GetLoggerFromLevel(slog.LevelDebug), bot)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := messenger.SendText(ctx, 200, "hello", nil)

	req.ErrorIs(err, context.DeadlineExceeded)
}

func Test_Edit_Message(t *testing.T) {
	req := require.New(t)
	bot := newFakeBot()
	messenger := NewMessenger(logs.GetLoggerFromLevel(slog.LevelDebug), bot)

	err := messenger.EditMessage(context.Background(), domain.MessageRef{Chat: 200, ID: 7}, "page",
		[]domain.Choice{{Label: "Записаться", Action: domain.NewEventAction(domain.Join, "1")}})

	req.NoError(err)
	edit, ok := bot.requests[0].(tgbotapi.EditMessageTextConfig)
	req.True(ok)
	req.Equal(int64(200), edit.ChatID)
	req.Equal(7, edit.MessageID)
	req.Equal("page", edit.Text)
	req.Equal("join_1", *edit.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
}

func Test_Edit_Unchanged_Message_Is_Not_An_Error(t *testing.T) {
	req := require.New(t)
	bot := newFakeBot()
	bot.sendErr = fmt.Errorf("Bad Request: message is not modified")
	messenger := NewMessenger(logs.GetLoggerFromLevel(slog.LevelDebug), bot)

	req.NoError(messenger.EditMessage(context.Background(), domain.MessageRef{Chat: 200, ID: 7}, "page", nil))
}

func startMessage(from *tgbotapi.User) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 5,
		From:      from,
		Chat:      &tgbotapi.Chat{ID: 200},
		Text:      "/start",
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}},
	}
}

func Test_Updates_Are_Translated(t *testing.T) {
	bob := &tgbotapi.User{ID: 2, UserName: "bob"}
	origin := domain.Origin{User: domain.NewUser(2, "bob"), Chat: 200, Message: domain.MessageRef{Chat: 200, ID: 5}}

	tests := []struct {
		name   string
		update tgbotapi.Update
		expect func(handler *mocks.MockInboundHandler)
	}{
		{
			name:   "start command",
			update: tgbotapi.Update{Message: startMessage(bob)},
			expect: func(handler *mocks.MockInboundHandler) {
				handler.EXPECT().Start(gomock.Any(), origin).Return(nil)
			},
		},
		{
			name: "free text",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				MessageID: 5, From: bob, Chat: &tgbotapi.Chat{ID: 200}, Text: "Launch",
			}},
			expect: func(handler *mocks.MockInboundHandler) {
				handler.EXPECT().SubmitText(gomock.Any(), origin, "Launch").Return(nil)
			},
		},
		{
			name: "other command",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				MessageID: 5, From: bob, Chat: &tgbotapi.Chat{ID: 200}, Text: "/help",
				Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 5}},
			}},
			expect: func(*mocks.MockInboundHandler) {},
		},
		{
			name: "callback",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				ID: "cb", From: bob, Data: "join_1",
				Message: &tgbotapi.Message{MessageID: 5, Chat: &tgbotapi.Chat{ID: 200}},
			}},
			expect: func(handler *mocks.MockInboundHandler) {
				handler.EXPECT().Dispatch(gomock.Any(), origin, domain.NewEventAction(domain.Join, "1")).Return(nil)
			},
		},
		{
			name: "unknown callback",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				ID: "cb", From: bob, Data: "dance",
				Message: &tgbotapi.Message{MessageID: 5, Chat: &tgbotapi.Chat{ID: 200}},
			}},
			expect: func(handler *mocks.MockInboundHandler) {
				handler.EXPECT().Dispatch(gomock.Any(), origin, domain.Action{Kind: "dance"}).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			handler := mocks.NewMockInboundHandler(ctrl)
			tt.expect(handler)
			worker := NewUpdatesWorker(logs.GetLoggerFromLevel(slog.LevelDebug), newFakeBot(), handler, 60)

			worker.Handle(context.Background(), tt.update)
		})
	}
}

func Test_Callback_Is_Acknowledged(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockInboundHandler(ctrl)
	handler.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	bot := newFakeBot()
	worker := NewUpdatesWorker(logs.GetLoggerFromLevel(slog.LevelDebug), bot, handler, 60)

	worker.Handle(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID: "cb-1", From: &tgbotapi.User{ID: 2}, Data: "join_event",
	}})

	ack, ok := bot.requests[0].(tgbotapi.CallbackConfig)
	req.True(ok)
	req.Equal("cb-1", ack.CallbackQueryID)
}

func Test_Handler_Panic_Is_Contained(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockInboundHandler(ctrl)
	handler.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, domain.Origin) error {
		panic("boom")
	})
	worker := NewUpdatesWorker(logs.GetLoggerFromLevel(slog.LevelDebug), newFakeBot(), handler, 60)

	worker.Handle(context.Background(), tgbotapi.Update{Message: startMessage(&tgbotapi.User{ID: 2})})
}

func Test_Polling_Stops_With_Context(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockInboundHandler(ctrl)
	handled := make(chan struct{})
	handler.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, domain.Origin) error {
		close(handled)
		return nil
	})
	bot := newFakeBot()
	worker := NewUpdatesWorker(logs.GetLoggerFromLevel(slog.LevelDebug), bot, handler, 60)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error)
	go func() { stopped <- worker.Run(ctx) }()

	bot.updates <- tgbotapi.Update{Message: startMessage(&tgbotapi.User{ID: 2})}
	<-handled
	cancel()

	req.NoError(<-stopped)
	bot.mu.Lock()
	defer bot.mu.Unlock()
	req.True(bot.stopped)
}
