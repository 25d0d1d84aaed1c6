package observability

import (
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallMetrics_Snapshot(t *testing.T) {
	req := require.New(t)
	m := NewCallMetrics(slog.Default())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncrSessionAttempts()
			m.IncrRecordsWritten()
		}()
	}
	wg.Wait()
	m.SessionFailed(errors.New("token refused"))
	m.IncrInvitationsSent()
	m.InvitationFailed(errors.New("provider down"))
	m.RecordFailed(nil)
	m.SessionReady()

	stats := m.Snapshot()
	req.Equal(uint64(50), stats.SessionAttempts)
	req.Equal(uint64(1), stats.SessionFailures)
	req.Equal(uint64(1), stats.InvitationsSent)
	req.Equal(uint64(1), stats.InvitationsFailed)
	req.Equal(uint64(50), stats.RecordsWritten)
	req.Equal(uint64(1), stats.RecordsFailed)
	req.Equal("provider down", stats.LastFailure)
	req.NotEmpty(stats.SessionReadyAt)
}

func TestCallMetrics_NilIsNoop(t *testing.T) {
	req := require.New(t)
	var m *CallMetrics

	req.NotPanics(func() {
		m.IncrSessionAttempts()
		m.SessionFailed(errors.New("x"))
		m.SessionReady()
		m.IncrInvitationsSent()
		m.InvitationFailed(errors.New("x"))
		m.IncrRecordsWritten()
		m.RecordFailed(errors.New("x"))
	})
	req.Equal(CallStats{}, m.Snapshot())
}
