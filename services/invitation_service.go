package services

import (
	"call-lab/contract"
	"call-lab/domain"
	"call-lab/errors"
	"call-lab/observability"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

const DefaultInvitationTimeout = 60 * time.Second

type IInvitationService interface {
	Invite(ctx context.Context, roomID string, targets []domain.Participant, kind domain.CallKind) error
}

// InvitationService sends one invitation covering every target and records
// the call once the provider accepted it.
type InvitationService struct {
	sessions     contract.ISessionReader
	participants *ParticipantService
	recorder     contract.ICallRecorder
	timeout      time.Duration
	metrics      *observability.CallMetrics
	log          *slog.Logger
}

func NewInvitationService(
	sessions contract.ISessionReader,
	participants *ParticipantService,
	recorder contract.ICallRecorder,
	timeout time.Duration,
	metrics *observability.CallMetrics,
	log *slog.Logger,
) *InvitationService {
	if timeout <= 0 {
		timeout = DefaultInvitationTimeout
	}
	return &InvitationService{
		sessions:     sessions,
		participants: participants,
		recorder:     recorder,
		timeout:      timeout,
		metrics:      metrics,
		log:          log,
	}
}

// Invite fails fast when the session is not READY; retrying is the session
// manager's job. A rejected invitation writes no call log.
func (s *InvitationService) Invite(ctx context.Context, roomID string,
	targets []domain.Participant, kind domain.CallKind) error {
	session, ok := s.sessions.Session()
	if !ok {
		s.log.Error("Cannot send invitation", "room", roomID, "state", s.sessions.State())
		return errors.ErrSessionNotReady
	}
	self, err := s.participants.Self()
	if err != nil {
		s.log.Error("Cannot send invitation", "room", roomID, "error", err)
		return err
	}
	targets = domain.DistinctParticipants(targets, self.ID)
	if len(targets) == 0 {
		return errors.ErrNoParticipants
	}

	invitation := domain.CallInvitation{
		RoomID: roomID,
		Callees: lo.Map(targets, func(p domain.Participant, _ int) domain.Callee {
			return domain.Callee{UserID: p.ID, UserName: p.DisplayName}
		}),
		Kind:    kind,
		Timeout: s.timeout,
		Media:   domain.ProfileFor(kind),
	}
	if err = session.Invite(ctx, invitation); err != nil {
		s.metrics.InvitationFailed(err)
		s.log.Error("Invitation rejected", "room", roomID, "callees", len(targets), "error", err)
		return fmt.Errorf("%w: %w", errors.ErrInvitationFailed, err)
	}
	s.metrics.IncrInvitationsSent()
	s.log.Info("Invitation sent", "room", roomID, "kind", kind, "callees", len(targets))

	// Log failures never fail the invitation.
	err = s.recorder.RecordCall(ctx, domain.CallEvent{
		Incoming:       false,
		Video:          kind.IsVideo(),
		Missed:         false,
		Owner:          self,
		Participants:   targets,
		ConversationID: roomID,
		At:             time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn("Call log incomplete", "room", roomID, "error", err)
	}
	return nil
}
