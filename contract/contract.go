//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"call-lab/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IIdentitySource reads the signed-in user from device storage.
// Absent keys are returned as empty strings, not as errors.
type IIdentitySource interface {
	CurrentUser() (domain.CurrentUser, error)
}

type ITokenIssuer interface {
	IssueToken(ctx context.Context, request domain.TokenRequest) (string, error)
}

type ICallingProvider interface {
	CreateSession(ctx context.Context, token string) (ISession, error)
}

// ISession is a live handle on the calling provider.
type ISession interface {
	ID() string
	AttachPlugin(ctx context.Context, plugin string) error
	SetInvitationConfig(ctx context.Context, config domain.InvitationConfig) error
	Invite(ctx context.Context, invitation domain.CallInvitation) error
	Close(ctx context.Context) error
}

// ISessionReader is the read-only view of the session manager given to dispatchers.
type ISessionReader interface {
	Session() (ISession, bool)
	State() domain.SessionState
}

// ICallLogRepository stores call logs under logs/{ownerId}/calls/{recordId}.
type ICallLogRepository interface {
	UpsertOwner(ownerID string) error
	MergeOwner(ownerID string, fields map[string]any) error
	GetOwner(ownerID string) (map[string]any, error)
	AppendRecord(ownerID string, record domain.CallLogRecord) (string, error)
	ListRecords(ownerID string) ([]domain.CallLogRecord, error)
	SubscribeRecords(ctx context.Context, ownerID string, onChange func([]domain.CallLogRecord)) (func(), error)
}

// ICallLogCache keeps the owner's latest call history on the device.
type ICallLogCache interface {
	SaveCallLogs(ownerID string, records []domain.CallLogRecord) error
}

type ICallLogIndexer interface {
	Index(ctx context.Context, ownerID string, record domain.CallLogRecord) error
}

// ICallLogSearcher returns record ids of an owner matching a free-text query.
type ICallLogSearcher interface {
	Search(ctx context.Context, ownerID, text string, limit int) ([]string, error)
}

type ICallRecorder interface {
	RecordCall(ctx context.Context, call domain.CallEvent) error
}

// IMembershipSource is a live, change-notified view of room membership.
type IMembershipSource interface {
	Members(roomID string) []domain.Member
	Watch(roomID string) (<-chan []domain.Member, func())
}
