// Package observability aggregates lightweight runtime counters for
// the demo binary. Counters are atomic so policies and sinks can
// increment them without coordination.
package observability

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Snapshot is a point-in-time view of the counters plus process
// memory, rendered by the demo loop.
type Snapshot struct {
	MessagesSent     uint64  `json:"messages_sent"`
	MessagesDeleted  uint64  `json:"messages_deleted"`
	MentionsDetected uint64  `json:"mentions_detected"`
	Notifications    uint64  `json:"notifications"`
	ResidentMemMb    float64 `json:"resident_mem_mb"`
}

type Stats struct {
	log *slog.Logger

	messagesSent     uint64
	messagesDeleted  uint64
	mentionsDetected uint64
	notifications    uint64
}

func NewStats(log *slog.Logger) *Stats {
	return &Stats{log: log}
}

func (s *Stats) IncrMessagesSent() {
	atomic.AddUint64(&s.messagesSent, 1)
}

func (s *Stats) IncrMessagesDeleted() {
	atomic.AddUint64(&s.messagesDeleted, 1)
}

func (s *Stats) IncrMentions(n int) {
	if n > 0 {
		atomic.AddUint64(&s.mentionsDetected, uint64(n))
	}
}

func (s *Stats) IncrNotifications() {
	atomic.AddUint64(&s.notifications, 1)
}

// Snapshot reads the counters and asks the OS for the process
// resident set. Memory is best effort: zero when the probe fails.
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		MessagesSent:     atomic.LoadUint64(&s.messagesSent),
		MessagesDeleted:  atomic.LoadUint64(&s.messagesDeleted),
		MentionsDetected: atomic.LoadUint64(&s.mentionsDetected),
		Notifications:    atomic.LoadUint64(&s.notifications),
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return snap
	}
	if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
		snap.ResidentMemMb = float64(mem.RSS) / (1024 * 1024)
	}
	return snap
}

// Listen periodically logs a snapshot until the context is done.
func (s *Stats) Listen(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := s.Snapshot()
			s.log.Info("stats",
				"sent", snap.MessagesSent,
				"deleted", snap.MessagesDeleted,
				"mentions", snap.MentionsDetected,
				"notifications", snap.Notifications,
				"rss_mb", snap.ResidentMemMb,
			)
		}
	}
}
