package workers

import (
	"call-lab/errors"
	"context"
	goerrors "errors"
	"log/slog"
)

type sessionRunner interface {
	Run(ctx context.Context) error
}

// SessionWorker keeps retrying the calling session until it is READY, then
// finishes for good. A closed session also ends it.
type SessionWorker struct {
	sessions sessionRunner
	log      *slog.Logger
}

func NewSessionWorker(sessions sessionRunner, log *slog.Logger) *SessionWorker {
	return &SessionWorker{sessions: sessions, log: log}
}

func (w *SessionWorker) Run(ctx context.Context) error {
	err := w.sessions.Run(ctx)
	if goerrors.Is(err, errors.ErrSessionClosed) {
		w.log.Info("Calling session closed, no more attempts")
		return nil
	}
	if err != nil {
		return err
	}
	w.log.Info("Calling session established")
	return nil
}
