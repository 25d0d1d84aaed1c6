package services

import (
	"call-lab/domain"
	"call-lab/errors"
	"call-lab/mocks"
	"call-lab/observability"
	"context"
	goerrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type invitationFixture struct {
	sessions *mocks.MockISessionReader
	session  *mocks.MockISession
	identity *mocks.MockIIdentitySource
	recorder *mocks.MockICallRecorder
	metrics  *observability.CallMetrics
	service  *InvitationService
}

func newInvitationFixture(t *testing.T) invitationFixture {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := invitationFixture{
		sessions: mocks.NewMockISessionReader(ctrl),
		session:  mocks.NewMockISession(ctrl),
		identity: mocks.NewMockIIdentitySource(ctrl),
		recorder: mocks.NewMockICallRecorder(ctrl),
		metrics:  observability.NewCallMetrics(log),
	}
	participants := NewParticipantService(f.identity, mediaBase, MatchByID, log)
	f.service = NewInvitationService(f.sessions, participants, f.recorder, 0, f.metrics, log)
	return f
}

var (
	bob   = domain.Participant{RawID: "@bob:example.org", ID: "bobexampleorg", DisplayName: "Bob"}
	carol = domain.Participant{RawID: "@carol:example.org", ID: "carolexampleorg", DisplayName: "Carol"}
)

func TestInvitationService_Invite_OneInvitationForAllTargets(t *testing.T) {
	req := require.New(t)
	f := newInvitationFixture(t)
	f.sessions.EXPECT().Session().Return(f.session, true)
	f.identity.EXPECT().CurrentUser().Return(alice, nil)

	var sent domain.CallInvitation
	f.session.EXPECT().Invite(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invitation domain.CallInvitation) error {
			sent = invitation
			return nil
		}).Times(1)

	var recorded domain.CallEvent
	f.recorder.EXPECT().RecordCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, call domain.CallEvent) error {
			recorded = call
			return nil
		}).Times(1)

	err := f.service.Invite(context.Background(), "!room:example.org", []domain.Participant{bob, carol}, domain.VIDEO)
	req.NoError(err)

	req.Equal("!room:example.org", sent.RoomID)
	req.Equal([]domain.Callee{{UserID: "bobexampleorg", UserName: "Bob"}, {UserID: "carolexampleorg", UserName: "Carol"}}, sent.Callees)
	req.Equal(DefaultInvitationTimeout, sent.Timeout)
	req.Equal(domain.MediaProfile{Audio: true, Video: true}, sent.Media)

	req.False(recorded.Incoming)
	req.False(recorded.Missed)
	req.True(recorded.Video)
	req.Equal("aliceexampleorg", recorded.Owner.ID)
	req.Equal([]domain.Participant{bob, carol}, recorded.Participants)
	req.Equal("!room:example.org", recorded.ConversationID)
	req.False(recorded.At.IsZero())
	req.Equal(uint64(1), f.metrics.Snapshot().InvitationsSent)
}

func TestInvitationService_Invite_VoiceIsAudioOnly(t *testing.T) {
	req := require.New(t)
	f := newInvitationFixture(t)
	f.sessions.EXPECT().Session().Return(f.session, true)
	f.identity.EXPECT().CurrentUser().Return(alice, nil)
	f.session.EXPECT().Invite(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invitation domain.CallInvitation) error {
			req.Equal(domain.MediaProfile{Audio: true}, invitation.Media)
			req.Equal(domain.VOICE, invitation.Kind)
			return nil
		})
	f.recorder.EXPECT().RecordCall(gomock.Any(), gomock.Any()).Return(nil)

	req.NoError(f.service.Invite(context.Background(), "!room:example.org", []domain.Participant{bob}, domain.VOICE))
}

func TestInvitationService_Invite_SessionNotReady(t *testing.T) {
	req := require.New(t)
	f := newInvitationFixture(t)
	f.sessions.EXPECT().Session().Return(nil, false)
	f.sessions.EXPECT().State().Return(domain.INITIALIZING)
	f.recorder.EXPECT().RecordCall(gomock.Any(), gomock.Any()).Times(0)

	err := f.service.Invite(context.Background(), "!room:example.org", []domain.Participant{bob}, domain.VOICE)
	req.ErrorIs(err, errors.ErrSessionNotReady)
}

func TestInvitationService_Invite_RejectedWritesNoLog(t *testing.T) {
	req := require.New(t)
	f := newInvitationFixture(t)
	f.sessions.EXPECT().Session().Return(f.session, true)
	f.identity.EXPECT().CurrentUser().Return(alice, nil)
	f.session.EXPECT().Invite(gomock.Any(), gomock.Any()).Return(goerrors.New("callee offline"))
	f.recorder.EXPECT().RecordCall(gomock.Any(), gomock.Any()).Times(0)

	err := f.service.Invite(context.Background(), "!room:example.org", []domain.Participant{bob, carol}, domain.VIDEO)
	req.ErrorIs(err, errors.ErrInvitationFailed)
	req.ErrorContains(err, "callee offline")
	req.Equal(uint64(1), f.metrics.Snapshot().InvitationsFailed)
}

func TestInvitationService_Invite_RejectedWritesNoLogInAnyStore(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sessions := mocks.NewMockISessionReader(ctrl)
	session := mocks.NewMockISession(ctrl)
	identity := mocks.NewMockIIdentitySource(ctrl)
	repository := mocks.NewMockICallLogRepository(ctrl)
	cache := mocks.NewMockICallLogCache(ctrl)

	recorder := NewCallLogService(repository, cache, nil, 0, nil, log)
	service := NewInvitationService(sessions, NewParticipantService(identity, mediaBase, MatchByID, log),
		recorder, time.Minute, nil, log)

	sessions.EXPECT().Session().Return(session, true)
	identity.EXPECT().CurrentUser().Return(alice, nil)
	session.EXPECT().Invite(gomock.Any(), gomock.Any()).Return(goerrors.New("rejected"))
	repository.EXPECT().UpsertOwner(gomock.Any()).Times(0)
	repository.EXPECT().AppendRecord(gomock.Any(), gomock.Any()).Times(0)
	cache.EXPECT().SaveCallLogs(gomock.Any(), gomock.Any()).Times(0)

	err := service.Invite(context.Background(), "!room:example.org", []domain.Participant{bob, carol}, domain.VOICE)
	req.ErrorIs(err, errors.ErrInvitationFailed)
}

func TestInvitationService_Invite_RecorderFailureDoesNotFailCall(t *testing.T) {
	req := require.New(t)
	f := newInvitationFixture(t)
	f.sessions.EXPECT().Session().Return(f.session, true)
	f.identity.EXPECT().CurrentUser().Return(alice, nil)
	f.session.EXPECT().Invite(gomock.Any(), gomock.Any()).Return(nil)
	f.recorder.EXPECT().RecordCall(gomock.Any(), gomock.Any()).Return(goerrors.New("store down"))

	req.NoError(f.service.Invite(context.Background(), "!room:example.org", []domain.Participant{bob}, domain.VOICE))
}

func TestInvitationService_Invite_NoTargets(t *testing.T) {
	req := require.New(t)
	f := newInvitationFixture(t)
	f.sessions.EXPECT().Session().Return(f.session, true).Times(2)
	f.identity.EXPECT().CurrentUser().Return(alice, nil).Times(2)
	f.session.EXPECT().Invite(gomock.Any(), gomock.Any()).Times(0)

	err := f.service.Invite(context.Background(), "!room:example.org", nil, domain.VOICE)
	req.ErrorIs(err, errors.ErrNoParticipants)

	// Only the caller in the list
	self := domain.Participant{ID: "aliceexampleorg", DisplayName: "Alice"}
	err = f.service.Invite(context.Background(), "!room:example.org", []domain.Participant{self}, domain.VOICE)
	req.ErrorIs(err, errors.ErrNoParticipants)
}

func TestInvitationService_Invite_MissingIdentity(t *testing.T) {
	req := require.New(t)
	f := newInvitationFixture(t)
	f.sessions.EXPECT().Session().Return(f.session, true)
	f.identity.EXPECT().CurrentUser().Return(domain.CurrentUser{UserID: alice.UserID}, nil)
	f.session.EXPECT().Invite(gomock.Any(), gomock.Any()).Times(0)

	err := f.service.Invite(context.Background(), "!room:example.org", []domain.Participant{bob}, domain.VOICE)
	req.ErrorIs(err, errors.ErrMissingIdentity)
}
