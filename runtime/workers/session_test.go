package workers

import (
	cerrors "call-lab/errors"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type runnerFunc func(ctx context.Context) error

func (f runnerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

func TestSessionWorker_Run(t *testing.T) {
	req := require.New(t)

	worker := NewSessionWorker(runnerFunc(func(context.Context) error { return nil }), slog.Default())
	req.NoError(worker.Run(context.Background()))

	boom := errors.New("closed")
	worker = NewSessionWorker(runnerFunc(func(context.Context) error { return boom }), slog.Default())
	req.ErrorIs(worker.Run(context.Background()), boom)
}

func TestSessionWorker_ClosedSessionEndsWorker(t *testing.T) {
	req := require.New(t)

	closed := runnerFunc(func(context.Context) error {
		return fmt.Errorf("retry stopped: %w", cerrors.ErrSessionClosed)
	})
	req.NoError(NewSessionWorker(closed, slog.Default()).Run(context.Background()))
}

func TestSessionWorker_NotRestartedAfterClose(t *testing.T) {
	req := require.New(t)

	var runs atomic.Int32
	worker := NewSessionWorker(runnerFunc(func(context.Context) error {
		runs.Add(1)
		return cerrors.ErrSessionClosed
	}), slog.Default())

	done := make(chan struct{})
	go func() {
		NewSupervisor(slog.Default()).Add(worker).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Supervisor should stop once the session is closed")
	}
	req.Equal(int32(1), runs.Load())
}
