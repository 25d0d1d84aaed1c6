package observability

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// CallStats is a point-in-time copy of the call counters.
type CallStats struct {
	SessionAttempts   uint64 `json:"session_attempts"`
	SessionFailures   uint64 `json:"session_failures"`
	SessionReadyAt    string `json:"session_ready_at,omitempty"`
	InvitationsSent   uint64 `json:"invitations_sent"`
	InvitationsFailed uint64 `json:"invitations_failed"`
	RecordsWritten    uint64 `json:"records_written"`
	RecordsFailed     uint64 `json:"records_failed"`
	LastFailure       string `json:"last_failure,omitempty"`
}

// CallMetrics counts session attempts, dispatches and call-log writes.
// A nil *CallMetrics is valid and records nothing.
type CallMetrics struct {
	log *slog.Logger

	sessionAttempts   uint64
	sessionFailures   uint64
	invitationsSent   uint64
	invitationsFailed uint64
	recordsWritten    uint64
	recordsFailed     uint64

	mu             sync.RWMutex
	sessionReadyAt time.Time
	lastFailure    string
}

func NewCallMetrics(log *slog.Logger) *CallMetrics {
	return &CallMetrics{log: log}
}

func (m *CallMetrics) IncrSessionAttempts() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.sessionAttempts, 1)
}

func (m *CallMetrics) SessionFailed(err error) {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.sessionFailures, 1)
	m.setLastFailure(err)
}

func (m *CallMetrics) SessionReady() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionReadyAt = time.Now().UTC()
}

func (m *CallMetrics) IncrInvitationsSent() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.invitationsSent, 1)
}

func (m *CallMetrics) InvitationFailed(err error) {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.invitationsFailed, 1)
	m.setLastFailure(err)
}

func (m *CallMetrics) IncrRecordsWritten() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.recordsWritten, 1)
}

func (m *CallMetrics) RecordFailed(err error) {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.recordsFailed, 1)
	m.setLastFailure(err)
}

func (m *CallMetrics) setLastFailure(err error) {
	if err == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFailure = err.Error()
}

// Snapshot returns the current counters.
func (m *CallMetrics) Snapshot() CallStats {
	if m == nil {
		return CallStats{}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := CallStats{
		SessionAttempts:   atomic.LoadUint64(&m.sessionAttempts),
		SessionFailures:   atomic.LoadUint64(&m.sessionFailures),
		InvitationsSent:   atomic.LoadUint64(&m.invitationsSent),
		InvitationsFailed: atomic.LoadUint64(&m.invitationsFailed),
		RecordsWritten:    atomic.LoadUint64(&m.recordsWritten),
		RecordsFailed:     atomic.LoadUint64(&m.recordsFailed),
		LastFailure:       m.lastFailure,
	}
	if !m.sessionReadyAt.IsZero() {
		stats.SessionReadyAt = m.sessionReadyAt.Format(time.RFC3339)
	}
	return stats
}

// Listen logs a snapshot every interval until ctx is done.
func (m *CallMetrics) Listen(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logStats("Call metrics (final)")
			return
		case <-ticker.C:
			m.logStats("Call metrics")
		}
	}
}

func (m *CallMetrics) logStats(msg string) {
	stats := m.Snapshot()
	m.log.Info(msg,
		"session_attempts", stats.SessionAttempts,
		"session_failures", stats.SessionFailures,
		"invitations_sent", stats.InvitationsSent,
		"invitations_failed", stats.InvitationsFailed,
		"records_written", stats.RecordsWritten,
		"records_failed", stats.RecordsFailed,
	)
}
