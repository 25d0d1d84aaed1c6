package workers

import (
	"call-lab/contract"
	"call-lab/domain"
	"context"
	"log/slog"
)

type participantResolver interface {
	ResolveMembers(members []domain.Member) ([]domain.Participant, error)
}

// MembershipWorker re-resolves the call targets of one room every time its
// membership changes and hands them to onResolved.
type MembershipWorker struct {
	roomID     string
	source     contract.IMembershipSource
	resolver   participantResolver
	onResolved func(roomID string, participants []domain.Participant)
	log        *slog.Logger
}

func NewMembershipWorker(roomID string, source contract.IMembershipSource, resolver participantResolver,
	onResolved func(roomID string, participants []domain.Participant), log *slog.Logger) *MembershipWorker {
	return &MembershipWorker{
		roomID:     roomID,
		source:     source,
		resolver:   resolver,
		onResolved: onResolved,
		log:        log,
	}
}

func (w *MembershipWorker) Run(ctx context.Context) error {
	updates, unwatch := w.source.Watch(w.roomID)
	defer unwatch()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case members, ok := <-updates:
			if !ok {
				w.log.Debug("Membership feed closed", "room", w.roomID)
				return nil
			}
			participants, err := w.resolver.ResolveMembers(members)
			if err != nil {
				w.log.Warn("Cannot resolve participants", "room", w.roomID, "error", err)
				continue
			}
			w.log.Debug("Participants resolved", "room", w.roomID, "count", len(participants))
			w.onResolved(w.roomID, participants)
		}
	}
}
