package provider

import (
	"call-lab/domain"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

// fakeProvider mimics the calling provider REST API.
type fakeProvider struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   map[string]int
}

func (f *fakeProvider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get("Authorization"), Body: body,
	})
	status, forced := f.status[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if forced {
		http.Error(w, "forced failure", status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if r.Method == http.MethodPost && r.URL.Path == "/v1/sessions" {
		_, _ = w.Write([]byte(`{"session_id":"s-1"}`))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeProvider) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

type ClientSuite struct {
	suite.Suite
	fake   *fakeProvider
	server *httptest.Server
	client *Client
}

func (s *ClientSuite) SetupTest() {
	s.fake = &fakeProvider{status: map[string]int{}}
	s.server = httptest.NewServer(s.fake)
	s.client = NewClient(Config{BaseURL: s.server.URL, Timeout: 2 * time.Second}, slog.Default())
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientSuite) openSession() *Session {
	session, err := s.client.CreateSession(context.Background(), "tok")
	s.Require().NoError(err)
	s.Require().Equal("s-1", session.ID())
	return session.(*Session)
}

func (s *ClientSuite) TestCreateSession_SendsBearerToken() {
	s.openSession()
	req := s.fake.last()
	s.Equal(http.MethodPost, req.Method)
	s.Equal("/v1/sessions", req.Path)
	s.Equal("Bearer tok", req.Auth)
}

func (s *ClientSuite) TestCreateSession_Rejected() {
	s.fake.status["POST /v1/sessions"] = http.StatusUnauthorized
	_, err := s.client.CreateSession(context.Background(), "bad")
	var statusErr *StatusError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusUnauthorized, statusErr.Status)
	s.Equal("create session", statusErr.Op)
}

func (s *ClientSuite) TestAttachPlugin() {
	session := s.openSession()
	s.Require().NoError(session.AttachPlugin(context.Background(), "signaling"))
	req := s.fake.last()
	s.Equal("/v1/sessions/s-1/plugins", req.Path)
	s.Equal("signaling", req.Body["name"])
	s.Equal("Bearer tok", req.Auth)
}

func (s *ClientSuite) TestSetInvitationConfig() {
	session := s.openSession()
	config := domain.InvitationConfig{
		NotifyWhenInBackground: true,
		Ringtones:              domain.Ringtones{IncomingCallURL: "https://cdn/in.mp3"},
		BeforeJoining:          domain.DefaultRoomConfig(),
		AfterJoining:           domain.DefaultRoomConfig(),
	}
	s.Require().NoError(session.SetInvitationConfig(context.Background(), config))

	req := s.fake.last()
	s.Equal(http.MethodPut, req.Method)
	s.Equal("/v1/sessions/s-1/invitation-config", req.Path)
	s.Equal(true, req.Body["notify_when_app_running_in_background_or_quit"])
	s.Equal("https://cdn/in.mp3", req.Body["incoming_call_ringtone"])
	s.NotContains(req.Body, "outgoing_call_ringtone")
	before := req.Body["before_joining"].(map[string]any)
	s.Equal(float64(40), before["max_users"])
	s.Equal("Grid", before["layout"])
}

func (s *ClientSuite) TestInvite() {
	session := s.openSession()
	err := session.Invite(context.Background(), domain.CallInvitation{
		RoomID:  "!room:example.org",
		Callees: []domain.Callee{{UserID: "bob", UserName: "Bob"}, {UserID: "carol", UserName: "Carol"}},
		Kind:    domain.VIDEO,
		Timeout: time.Minute,
		Media:   domain.ProfileFor(domain.VIDEO),
	})
	s.Require().NoError(err)

	req := s.fake.last()
	s.Equal("/v1/sessions/s-1/invitations", req.Path)
	s.Equal("video", req.Body["type"])
	s.Equal(float64(60), req.Body["timeout_seconds"])
	s.Len(req.Body["callees"], 2)
	s.Equal(map[string]any{"audio": true, "video": true}, req.Body["media"])
}

func (s *ClientSuite) TestInvite_Rejected() {
	session := s.openSession()
	s.fake.status["POST /v1/sessions/s-1/invitations"] = http.StatusConflict
	err := session.Invite(context.Background(), domain.CallInvitation{Kind: domain.VOICE})
	var statusErr *StatusError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusConflict, statusErr.Status)
	s.Contains(statusErr.Body, "forced failure")
}

func (s *ClientSuite) TestClose_IgnoresUnknownSession() {
	session := s.openSession()
	s.Require().NoError(session.Close(context.Background()))
	s.Equal(http.MethodDelete, s.fake.last().Method)

	s.fake.status["DELETE /v1/sessions/s-1"] = http.StatusNotFound
	s.NoError(session.Close(context.Background()))
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}
