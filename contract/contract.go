//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"queue-bot/domain"
	"queue-bot/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Messenger is the outbound side of the transport.
type Messenger interface {
	SendText(ctx context.Context, chat domain.ChatID, text string, choices []domain.Choice) (domain.MessageRef, error)
	EditMessage(ctx context.Context, ref domain.MessageRef, text string, choices []domain.Choice) error
}

// InboundHandler is the inbound side, called by the transport for every user interaction.
type InboundHandler interface {
	Start(ctx context.Context, origin domain.Origin) error
	SubmitText(ctx context.Context, origin domain.Origin, text string) error
	Dispatch(ctx context.Context, origin domain.Origin, action domain.Action) error
}

// Notifier announces a created event to every known user, asynchronously.
type Notifier interface {
	Notify(ctx context.Context, evt event.EventCreated)
}

// Broadcaster sends one text to many chats. One failing chat never stops the others.
type Broadcaster interface {
	Broadcast(ctx context.Context, recipients []domain.ChatID, text string) domain.DeliveryReport
}

// NameModerator screens a user supplied event name without altering it.
// It returns the dictionary words found in the name and the detected ISO 639-1 language code.
type NameModerator interface {
	Moderate(name string) ([]string, string)
}
