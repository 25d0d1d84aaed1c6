package internal

import (
	"call-lab/auth"
	"call-lab/infrastructure/provider"
	"call-lab/infrastructure/storage"
	"call-lab/observability"
	"call-lab/runtime"
	"call-lab/runtime/workers"
	"call-lab/services"
	goerrors "errors"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
)

// App is the calling core wired on top of local storage and the provider.
type App struct {
	Config       Config
	Log          *slog.Logger
	Local        *storage.LocalStore
	Repository   *storage.CallLogRepository
	Index        *storage.CallLogIndex
	Metrics      *observability.CallMetrics
	Sessions     *services.SessionManager
	Participants *services.ParticipantService
	Recorder     *services.CallLogService
	Invitations  *services.InvitationService
	History      *services.HistoryService
	Registry     *runtime.Registry
	Orchestrator *runtime.Orchestrator

	db *badger.DB
}

func NewApp(config Config, providerConfig provider.Config, log *slog.Logger) (*App, error) {
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("index opening failed: %w", err)
	}

	app := &App{Config: config, Log: log, db: db}
	app.Local = storage.NewLocalStore(db, log)
	app.Repository = storage.NewCallLogRepository(db, log)
	app.Index = storage.NewCallLogIndex(writer, log)
	app.Metrics = observability.NewCallMetrics(log)

	policy := services.MatchByID
	if config.StrictSelfMatch {
		policy = services.MatchStrict
	}
	app.Sessions = services.NewSessionManager(
		app.Local,
		auth.NewKitTokenIssuer(config.CallingServerSecret, config.TokenDuration),
		provider.NewClient(providerConfig, log),
		services.SessionConfig{
			AppID:          uint32(config.CallingAppID),
			ConversationID: config.CallingConversationID,
			Plugin:         config.CallingPlugin,
			Invitation:     config.InvitationConfig(),
			RetryInterval:  config.SessionRetryInterval,
		},
		app.Metrics, log,
	)
	app.Participants = services.NewParticipantService(app.Local, config.MediaBaseURL, policy, log)
	app.Recorder = services.NewCallLogService(app.Repository, app.Local, app.Index,
		config.MaxParallelLogWrites, app.Metrics, log)
	app.Invitations = services.NewInvitationService(app.Sessions, app.Participants, app.Recorder,
		config.InvitationTimeout, app.Metrics, log)
	app.History = services.NewHistoryService(app.Repository, app.Index, log)
	app.Registry = runtime.NewRegistry()
	app.Orchestrator = runtime.NewOrchestrator(log, workers.NewSupervisor(log), app.Registry,
		app.Sessions, app.Participants, app.Invitations, app.Metrics, config.MetricInterval)
	return app, nil
}

// DB exposes the underlying store for inspection tools.
func (a *App) DB() *badger.DB {
	return a.db
}

func (a *App) Close() error {
	a.Log.Info("Closing index and BadgerDB...")
	return goerrors.Join(a.Index.Close(), a.db.Close())
}
