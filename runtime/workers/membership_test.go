package workers

import (
	"call-lab/domain"
	"call-lab/mocks"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type resolverFunc func(members []domain.Member) ([]domain.Participant, error)

func (f resolverFunc) ResolveMembers(members []domain.Member) ([]domain.Participant, error) {
	return f(members)
}

func idsResolver(members []domain.Member) ([]domain.Participant, error) {
	return lo.Map(members, func(m domain.Member, _ int) domain.Participant {
		return domain.Participant{ID: domain.Normalize(m.UserID)}
	}), nil
}

func TestMembershipWorker_ResolvesOnEveryChange(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	source := mocks.NewMockIMembershipSource(ctrl)

	updates := make(chan []domain.Member, 2)
	unwatched := make(chan struct{})
	source.EXPECT().Watch("!room").Return((<-chan []domain.Member)(updates), func() { close(unwatched) })

	var mu sync.Mutex
	var resolved [][]domain.Participant
	worker := NewMembershipWorker("!room", source, resolverFunc(idsResolver),
		func(roomID string, participants []domain.Participant) {
			req.Equal("!room", roomID)
			mu.Lock()
			defer mu.Unlock()
			resolved = append(resolved, participants)
		}, logs.GetLoggerFromLevel(slog.LevelDebug))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	updates <- []domain.Member{{UserID: "@a:x"}}
	updates <- []domain.Member{{UserID: "@a:x"}, {UserID: "@b:x"}}
	req.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(resolved) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	req.ErrorIs(<-done, context.Canceled)
	<-unwatched

	mu.Lock()
	defer mu.Unlock()
	req.Equal([]domain.Participant{{ID: "ax"}, {ID: "ax"}, {ID: "bx"}}, append(resolved[0], resolved[1]...))
}

func TestMembershipWorker_SkipsResolutionErrors(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	source := mocks.NewMockIMembershipSource(ctrl)

	updates := make(chan []domain.Member, 2)
	source.EXPECT().Watch("!room").Return((<-chan []domain.Member)(updates), func() {})

	calls := 0
	failing := resolverFunc(func([]domain.Member) ([]domain.Participant, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("signed out")
		}
		return []domain.Participant{{ID: "b"}}, nil
	})
	var got []domain.Participant
	worker := NewMembershipWorker("!room", source, failing, func(_ string, participants []domain.Participant) {
		got = participants
	}, slog.Default())

	updates <- nil
	updates <- nil
	close(updates)

	// A closed feed ends the worker without a restart
	req.NoError(worker.Run(context.Background()))
	req.Equal(2, calls)
	req.Equal([]domain.Participant{{ID: "b"}}, got)
}
