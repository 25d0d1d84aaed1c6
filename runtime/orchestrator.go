// Package runtime mounts the calling core: it keeps the session alive,
// follows room membership and places calls. It holds no business rules.
package runtime

import (
	"call-lab/contract"
	"call-lab/domain"
	"call-lab/observability"
	"call-lab/runtime/workers"
	"call-lab/services"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

type Orchestrator struct {
	mu              sync.RWMutex
	log             *slog.Logger
	supervisor      contract.ISupervisor
	membership      contract.IMembershipSource
	sessions        *services.SessionManager
	participants    *services.ParticipantService
	invitations     services.IInvitationService
	metrics         *observability.CallMetrics
	metricsInterval time.Duration
	rooms           map[string][]domain.Participant
	runCtx          context.Context
	cancel          context.CancelFunc
}

func NewOrchestrator(log *slog.Logger, supervisor *workers.Supervisor, membership contract.IMembershipSource,
	sessions *services.SessionManager, participants *services.ParticipantService,
	invitations services.IInvitationService, metrics *observability.CallMetrics,
	metricsInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		log:             log,
		supervisor:      supervisor,
		membership:      membership,
		sessions:        sessions,
		participants:    participants,
		invitations:     invitations,
		metrics:         metrics,
		metricsInterval: metricsInterval,
		rooms:           make(map[string][]domain.Participant),
	}
}

// RegisterRoom follows the membership of a room. Rooms registered after
// Start are followed right away.
func (o *Orchestrator) RegisterRoom(roomID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.rooms[roomID]; ok {
		o.log.Info(fmt.Sprintf("Room %s already registered", roomID))
		return
	}
	o.rooms[roomID] = nil
	if o.runCtx != nil {
		o.supervisor.Start(o.runCtx, o.membershipWorker(roomID))
	}
}

// Participants returns the latest call targets resolved for the room.
func (o *Orchestrator) Participants(roomID string) []domain.Participant {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Clone(o.rooms[roomID])
}

// Call invites every current participant of the room.
func (o *Orchestrator) Call(ctx context.Context, roomID string, kind domain.CallKind) error {
	return o.invitations.Invite(ctx, roomID, o.Participants(roomID), kind)
}

// Start registers the session worker, the metrics reporter and one
// membership worker per room, then blocks running the supervisor.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.runCtx != nil {
		o.mu.Unlock()
		return fmt.Errorf("orchestrator already started")
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	o.runCtx, o.cancel = runCtx, cancel
	o.supervisor.Add(workers.NewSessionWorker(o.sessions, o.log))
	if o.metrics != nil && o.metricsInterval > 0 {
		o.supervisor.Add(workers.NewMetricsReporterWorker(o.metrics, o.metricsInterval))
	}
	for roomID := range o.rooms {
		o.supervisor.Add(o.membershipWorker(roomID))
	}
	rooms := len(o.rooms)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "rooms", rooms)
	o.supervisor.Run(runCtx)
	return nil
}

// Stop cancels the workers and tears the session down.
func (o *Orchestrator) Stop(ctx context.Context) error {
	o.log.Info("Requesting orchestrator shutdown")
	o.mu.RLock()
	cancel := o.cancel
	o.mu.RUnlock()
	if cancel != nil {
		cancel()
	}
	o.supervisor.Stop()
	return o.sessions.Close(ctx)
}

func (o *Orchestrator) membershipWorker(roomID string) contract.Worker {
	return workers.NewMembershipWorker(roomID, o.membership, o.participants, o.setParticipants, o.log)
}

func (o *Orchestrator) setParticipants(roomID string, participants []domain.Participant) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rooms[roomID] = participants
}
