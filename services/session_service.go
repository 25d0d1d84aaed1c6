package services

import (
	"call-lab/contract"
	"call-lab/domain"
	"call-lab/errors"
	"call-lab/observability"
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultRetryInterval = 3 * time.Second
	DefaultPlugin        = "signaling"
	sessionKey           = "session"
)

type SessionConfig struct {
	AppID          uint32
	ConversationID string
	Plugin         string
	Invitation     domain.InvitationConfig
	RetryInterval  time.Duration
}

// SessionManager owns the single provider session of the process.
//
// State machine:
//
//	UNINITIALIZED -> INITIALIZING -> READY
//	INITIALIZING  -> FAILED -> INITIALIZING (next attempt)
//	any           -> CLOSED (teardown)
//
// READY is reached at most once. Concurrent callers of EnsureSession share
// the attempt in flight, so they all get the same handle.
type SessionManager struct {
	mu      sync.RWMutex
	state   domain.SessionState
	session contract.ISession
	ready   chan struct{}
	group   singleflight.Group

	identity contract.IIdentitySource
	issuer   contract.ITokenIssuer
	provider contract.ICallingProvider
	config   SessionConfig
	metrics  *observability.CallMetrics
	log      *slog.Logger
}

func NewSessionManager(
	identity contract.IIdentitySource,
	issuer contract.ITokenIssuer,
	provider contract.ICallingProvider,
	config SessionConfig,
	metrics *observability.CallMetrics,
	log *slog.Logger,
) *SessionManager {
	if config.RetryInterval <= 0 {
		config.RetryInterval = DefaultRetryInterval
	}
	if config.Plugin == "" {
		config.Plugin = DefaultPlugin
	}
	return &SessionManager{
		state:    domain.UNINITIALIZED,
		ready:    make(chan struct{}),
		identity: identity,
		issuer:   issuer,
		provider: provider,
		config:   config,
		metrics:  metrics,
		log:      log,
	}
}

// EnsureSession returns the READY handle, or runs one initialization
// attempt when there is none yet. The attempt is shared by every caller and
// outlives any single caller's ctx: a cancelled caller returns ctx.Err()
// while the others still get the outcome.
func (m *SessionManager) EnsureSession(ctx context.Context) (contract.ISession, error) {
	if session, ok := m.Session(); ok {
		return session, nil
	}
	if m.State() == domain.CLOSED {
		return nil, errors.ErrSessionClosed
	}
	attemptCtx := context.WithoutCancel(ctx)
	results := m.group.DoChan(sessionKey, func() (any, error) {
		if session, ok := m.Session(); ok {
			return session, nil
		}
		return m.initialize(attemptCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-results:
		if res.Shared {
			m.log.Debug("Joined an initialization attempt in flight")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(contract.ISession), nil
	}
}

// Run retries EnsureSession at a fixed interval until a session is READY or
// ctx is done. The first attempt starts immediately.
func (m *SessionManager) Run(ctx context.Context) error {
	policy := backoff.WithContext(backoff.NewConstantBackOff(m.config.RetryInterval), ctx)
	return backoff.RetryNotify(func() error {
		_, err := m.EnsureSession(ctx)
		if goerrors.Is(err, errors.ErrSessionClosed) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, next time.Duration) {
		m.log.Warn("Session not ready, retrying", "error", err, "retry_in", next)
	})
}

// Session returns the handle only once it is READY.
func (m *SessionManager) Session() (contract.ISession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != domain.READY {
		return nil, false
	}
	return m.session, true
}

func (m *SessionManager) State() domain.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Ready is closed when the session becomes READY.
func (m *SessionManager) Ready() <-chan struct{} {
	return m.ready
}

// Close tears the session down. Later attempts fail with ErrSessionClosed.
func (m *SessionManager) Close(ctx context.Context) error {
	m.mu.Lock()
	session := m.session
	m.session = nil
	m.state = domain.CLOSED
	m.mu.Unlock()

	if session == nil {
		return nil
	}
	m.log.Info("Closing calling session", "session", session.ID())
	return session.Close(ctx)
}

func (m *SessionManager) initialize(ctx context.Context) (contract.ISession, error) {
	if !m.transition(domain.INITIALIZING) {
		return nil, errors.ErrSessionClosed
	}
	m.metrics.IncrSessionAttempts()
	m.log.Info("Initializing calling session", "app_id", m.config.AppID)

	session, err := m.attempt(ctx)
	if err != nil {
		m.transition(domain.FAILED)
		m.metrics.SessionFailed(err)
		m.log.Warn("Session attempt failed", "error", err)
		return nil, err
	}

	m.mu.Lock()
	if m.state == domain.CLOSED {
		m.mu.Unlock()
		m.discard(session)
		return nil, errors.ErrSessionClosed
	}
	m.session = session
	m.state = domain.READY
	close(m.ready)
	m.mu.Unlock()

	m.metrics.SessionReady()
	m.log.Info("Calling session ready", "session", session.ID())
	return session, nil
}

func (m *SessionManager) attempt(ctx context.Context) (contract.ISession, error) {
	user, err := m.identity.CurrentUser()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMissingIdentity, err)
	}
	if !user.IsComplete() {
		return nil, errors.ErrMissingIdentity
	}
	user = user.Trimmed()

	token, err := m.issuer.IssueToken(ctx, domain.TokenRequest{
		AppID:          m.config.AppID,
		UserID:         domain.Normalize(user.UserID),
		DisplayName:    user.DisplayName,
		ConversationID: m.config.ConversationID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrTokenIssuance, err)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", errors.ErrTokenIssuance)
	}

	session, err := m.provider.CreateSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if err = session.AttachPlugin(ctx, m.config.Plugin); err != nil {
		m.discard(session)
		return nil, fmt.Errorf("attach plugin %s: %w", m.config.Plugin, err)
	}
	if err = session.SetInvitationConfig(ctx, m.config.Invitation); err != nil {
		m.discard(session)
		return nil, fmt.Errorf("register invitation config: %w", err)
	}
	return session, nil
}

// transition moves to state unless the manager was closed.
func (m *SessionManager) transition(state domain.SessionState) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == domain.CLOSED {
		return false
	}
	m.state = state
	return true
}

// discard closes a session that never became READY.
func (m *SessionManager) discard(session contract.ISession) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := session.Close(ctx); err != nil {
		m.log.Warn("Failed to close abandoned session", "session", session.ID(), "error", err)
	}
}
