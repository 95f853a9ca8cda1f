package domain

import "time"

type PID int32
type PidStatus string

const (
	RUNNING PidStatus = "RUNNING"
	SLEEP   PidStatus = "SLEEP"
	STOP    PidStatus = "STOP"
	IDLE    PidStatus = "IDLE"
	ZOMBIE  PidStatus = "ZOMBIE"
	WAIT    PidStatus = "WAIT"
	LOCK    PidStatus = "LOCK"
	UNKNOWN PidStatus = "UNKNOWN"
)

func ToStatus(status string) PidStatus {
	switch status {
	case "R":
		return RUNNING
	case "S":
		return SLEEP
	case "T":
		return STOP
	case "I":
		return IDLE
	case "Z":
		return ZOMBIE
	case "W":
		return WAIT
	case "L":
		return LOCK
	default:
		return UNKNOWN
	}
}

// Heartbeat is a periodic snapshot of the bot process health.
type Heartbeat struct {
	PID             PID       `json:"pid"`
	Status          PidStatus `json:"status"`
	CpuPercent      float64   `json:"cpu_percent"`
	RamBytes        uint64    `json:"ram_bytes"`
	PendingSessions int       `json:"pending_sessions"`
	QueueLength     int       `json:"queue_length"`
	QueueCapacity   int       `json:"queue_capacity"`
	CollectedAt     time.Time `json:"collected_at"`
}
