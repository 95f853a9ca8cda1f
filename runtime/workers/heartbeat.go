package workers

import (
	"context"
	"log/slog"
	"os"
	"queue-bot/contract"
	"queue-bot/domain"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// SessionCounter reports how many creation wizards are in flight.
type SessionCounter interface {
	Len() int
}

// NamedChannel is sampled without blocking, len and cap only.
type NamedChannel struct {
	Name    string
	Channel any
}

// HeartbeatWorker periodically samples the bot process (CPU, RAM, OS status),
// the pending sessions and the notification queue fill level.
// The latest snapshot is kept for the debug endpoint.
type HeartbeatWorker struct {
	log      *slog.Logger
	sessions SessionCounter
	queue    NamedChannel
	interval time.Duration
	latest   atomic.Pointer[domain.Heartbeat]
}

func NewHeartbeatWorker(log *slog.Logger, sessions SessionCounter, queue NamedChannel, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, sessions: sessions, queue: queue, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			heartbeat, err := w.Collect(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Debug("Heartbeat",
				"status", heartbeat.Status, "cpu", heartbeat.CpuPercent, "ram", heartbeat.RamBytes,
				"sessions", heartbeat.PendingSessions,
				"queue", heartbeat.QueueLength, "capacity", heartbeat.QueueCapacity)
		}
	}
}

// Collect takes one snapshot and records it as the latest.
func (w *HeartbeatWorker) Collect(p *process.Process) (domain.Heartbeat, error) {
	rss, cpu, status, err := getSelfStats(p)
	if err != nil {
		return domain.Heartbeat{}, err
	}
	length, capacity := sample(w.queue)
	heartbeat := domain.Heartbeat{
		PID:             domain.PID(p.Pid),
		Status:          domain.ToStatus(status),
		CpuPercent:      cpu,
		RamBytes:        rss,
		PendingSessions: w.sessions.Len(),
		QueueLength:     length,
		QueueCapacity:   capacity,
		CollectedAt:     time.Now().UTC(),
	}
	w.latest.Store(&heartbeat)
	return heartbeat, nil
}

// Latest returns the last snapshot, false before the first tick.
func (w *HeartbeatWorker) Latest() (domain.Heartbeat, bool) {
	heartbeat := w.latest.Load()
	if heartbeat == nil {
		return domain.Heartbeat{}, false
	}
	return *heartbeat, true
}

func sample(nc NamedChannel) (int, int) {
	v := reflect.ValueOf(nc.Channel)
	if v.Kind() != reflect.Chan {
		return 0, 0
	}
	return v.Len(), v.Cap()
}

// getSelfStats retrieves memory, CPU and OS status of the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
