package workers

import (
	"context"
	"fmt"
	"log/slog"
	"queue-bot/contract"
	"queue-bot/domain"
	"queue-bot/errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ contract.Broadcaster = (*Broadcaster)(nil)

// Broadcaster delivers the same text to many chats through the messenger.
// At most concurrency sends are in flight, each one bounded by sendTimeout.
// A failure, a timeout or a panic only affects its own recipient.
type Broadcaster struct {
	log         *slog.Logger
	messenger   contract.Messenger
	concurrency int
	sendTimeout time.Duration
}

func NewBroadcaster(log *slog.Logger, messenger contract.Messenger, concurrency int, sendTimeout time.Duration) *Broadcaster {
	return &Broadcaster{
		log:         log,
		messenger:   messenger,
		concurrency: max(concurrency, 1),
		sendTimeout: sendTimeout,
	}
}

func (b *Broadcaster) Broadcast(ctx context.Context, recipients []domain.ChatID, text string) domain.DeliveryReport {
	report := domain.DeliveryReport{ID: uuid.New()}
	causes := make([]error, len(recipients))

	var wg sync.WaitGroup
	slots := make(chan struct{}, b.concurrency)
	for i, recipient := range recipients {
		select {
		case slots <- struct{}{}:
		case <-ctx.Done():
			causes[i] = fmt.Errorf("%w: %v", errors.ErrDeliveryFailure, ctx.Err())
			continue
		}
		wg.Add(1)
		go func(i int, recipient domain.ChatID) {
			defer wg.Done()
			defer func() { <-slots }()
			causes[i] = b.send(ctx, recipient, text)
		}(i, recipient)
	}
	wg.Wait()

	for i, cause := range causes {
		if cause == nil {
			report.Succeeded++
			continue
		}
		report.Failed = append(report.Failed, domain.DeliveryFailure{Recipient: recipients[i], Cause: cause})
	}
	b.log.Debug("Broadcast done", "broadcast_id", report.ID,
		"succeeded", report.Succeeded, "failed", len(report.Failed),
		"failed_chats", lo.Map(report.Failed, func(f domain.DeliveryFailure, _ int) domain.ChatID { return f.Recipient }))
	return report
}

func (b *Broadcaster) send(ctx context.Context, recipient domain.ChatID, text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v: %v", errors.ErrDeliveryFailure, errors.ErrWorkerPanic, r)
		}
	}()
	sendCtx := ctx
	if b.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, b.sendTimeout)
		defer cancel()
	}
	if _, err = b.messenger.SendText(sendCtx, recipient, text, nil); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDeliveryFailure, err)
	}
	return nil
}
