// Package runtime wires the asynchronous side of the bot: the notification queue,
// the supervised workers and the moderation dictionaries.
// It holds no business rule.
package runtime

import (
	"context"
	"embed"
	"log/slog"
	"queue-bot/contract"
	"queue-bot/domain/event"
	"sync"
)

//go:embed censored/*
var censoredFolder embed.FS

var _ contract.Notifier = (*Orchestrator)(nil)

type Orchestrator struct {
	mu            sync.Mutex
	log           *slog.Logger
	supervisor    contract.ISupervisor
	notifications chan event.EventCreated
	workers       []contract.Worker
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, bufferSize int) *Orchestrator {
	return &Orchestrator{
		log:           log,
		supervisor:    supervisor,
		notifications: make(chan event.EventCreated, bufferSize),
	}
}

// Notifications is consumed by the notification worker.
func (o *Orchestrator) Notifications() chan event.EventCreated {
	return o.notifications
}

// Notify queues the announcement and returns immediately.
// When the queue is full the announcement is dropped, the conversation never waits for it.
func (o *Orchestrator) Notify(_ context.Context, evt event.EventCreated) {
	select {
	case o.notifications <- evt:
		o.log.Debug("Announcement queued", "event_id", evt.ID)
	default:
		o.log.Warn("Notification queue full, dropping announcement", "event_id", evt.ID, "capacity", cap(o.notifications))
	}
}

// Add registers workers to be started with the orchestrator.
func (o *Orchestrator) Add(workers ...contract.Worker) *Orchestrator {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.workers = append(o.workers, workers...)
	return o
}

// Start hands every registered worker to the supervisor and blocks until they all stop.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	o.supervisor.Add(o.workers...)
	count := len(o.workers)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "workers", count)
	o.supervisor.Run(ctx)
}

// Stop cancels the supervised workers. Queued announcements not yet consumed are lost.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
