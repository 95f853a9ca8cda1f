package workers

import (
	"context"
	"log/slog"
	"queue-bot/contract"
	"time"
)

var _ contract.Worker = (*SessionSweeperWorker)(nil)

// SessionExpirer drops conversations idle for too long.
type SessionExpirer interface {
	Expire(now time.Time) int
}

// SessionSweeperWorker periodically expires abandoned creation wizards.
type SessionSweeperWorker struct {
	log      *slog.Logger
	sessions SessionExpirer
	interval time.Duration
	now      func() time.Time
}

func NewSessionSweeperWorker(log *slog.Logger, sessions SessionExpirer, interval time.Duration) *SessionSweeperWorker {
	return &SessionSweeperWorker{log: log, sessions: sessions, interval: interval, now: time.Now}
}

func (w *SessionSweeperWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping session sweep")
			return nil
		case <-ticker.C:
			if expired := w.sessions.Expire(w.now()); expired > 0 {
				w.log.Info("Abandoned sessions expired", "count", expired)
			}
		}
	}
}
