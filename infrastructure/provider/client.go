package provider

import (
	"call-lab/contract"
	"call-lab/domain"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"
)

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider %s: status %d: %s", e.Op, e.Status, e.Body)
}

// Client talks to the calling provider's REST API.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout).
		SetDebug(cfg.Debug)
	return &Client{http: c, log: log}
}

type createSessionResponse struct {
	SessionID string `json:"session_id"`
}

type pluginRequest struct {
	Name string `json:"name"`
}

type roomConfigBody struct {
	TurnOnMicrophoneWhenJoining bool   `json:"turn_on_microphone_when_joining"`
	ShowTextChat                bool   `json:"show_text_chat"`
	ShowUserList                bool   `json:"show_user_list"`
	MaxUsers                    int    `json:"max_users"`
	Layout                      string `json:"layout"`
	ShowScreenSharingButton     bool   `json:"show_screen_sharing_button"`
	ShowLayoutButton            bool   `json:"show_layout_button"`
	ShowPinButton               bool   `json:"show_pin_button"`
}

type invitationConfigRequest struct {
	NotifyWhenInBackground bool           `json:"notify_when_app_running_in_background_or_quit"`
	IncomingCallRingtone   string         `json:"incoming_call_ringtone,omitempty"`
	OutgoingCallRingtone   string         `json:"outgoing_call_ringtone,omitempty"`
	BeforeJoining          roomConfigBody `json:"before_joining"`
	AfterJoining           roomConfigBody `json:"after_joining"`
}

type callee struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

type media struct {
	Audio bool `json:"audio"`
	Video bool `json:"video"`
}

type invitationRequest struct {
	RoomID         string   `json:"room_id"`
	Callees        []callee `json:"callees"`
	Type           string   `json:"type"`
	TimeoutSeconds int      `json:"timeout_seconds"`
	Media          media    `json:"media"`
}

// CreateSession opens a session authenticated by token.
func (c *Client) CreateSession(ctx context.Context, token string) (contract.ISession, error) {
	var out createSessionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Post("/v1/sessions")
	if err := check("create session", resp, err); err != nil {
		return nil, err
	}
	if out.SessionID == "" {
		return nil, fmt.Errorf("provider create session: empty session id")
	}
	c.log.Debug("Provider session created", "session", out.SessionID)
	return &Session{id: out.SessionID, token: token, client: c}, nil
}

// Session is one open provider session. All calls carry the session token.
type Session struct {
	id     string
	token  string
	client *Client
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) AttachPlugin(ctx context.Context, plugin string) error {
	resp, err := s.request(ctx).
		SetBody(pluginRequest{Name: plugin}).
		Post("/v1/sessions/{id}/plugins")
	return check("attach plugin", resp, err)
}

func (s *Session) SetInvitationConfig(ctx context.Context, config domain.InvitationConfig) error {
	resp, err := s.request(ctx).
		SetBody(invitationConfigRequest{
			NotifyWhenInBackground: config.NotifyWhenInBackground,
			IncomingCallRingtone:   config.Ringtones.IncomingCallURL,
			OutgoingCallRingtone:   config.Ringtones.OutgoingCallURL,
			BeforeJoining:          toRoomConfigBody(config.BeforeJoining),
			AfterJoining:           toRoomConfigBody(config.AfterJoining),
		}).
		Put("/v1/sessions/{id}/invitation-config")
	return check("set invitation config", resp, err)
}

func (s *Session) Invite(ctx context.Context, invitation domain.CallInvitation) error {
	resp, err := s.request(ctx).
		SetBody(invitationRequest{
			RoomID: invitation.RoomID,
			Callees: lo.Map(invitation.Callees, func(c domain.Callee, _ int) callee {
				return callee{UserID: c.UserID, UserName: c.UserName}
			}),
			Type:           string(invitation.Kind),
			TimeoutSeconds: int(invitation.Timeout.Seconds()),
			Media:          media{Audio: invitation.Media.Audio, Video: invitation.Media.Video},
		}).
		Post("/v1/sessions/{id}/invitations")
	return check("invite", resp, err)
}

func (s *Session) Close(ctx context.Context) error {
	resp, err := s.request(ctx).Delete("/v1/sessions/{id}")
	if resp != nil && resp.StatusCode() == http.StatusNotFound {
		return nil
	}
	return check("close session", resp, err)
}

func (s *Session) request(ctx context.Context) *resty.Request {
	return s.client.http.R().
		SetContext(ctx).
		SetAuthToken(s.token).
		SetPathParam("id", s.id)
}

func toRoomConfigBody(c domain.RoomConfig) roomConfigBody {
	return roomConfigBody{
		TurnOnMicrophoneWhenJoining: c.TurnOnMicrophoneWhenJoining,
		ShowTextChat:                c.ShowTextChat,
		ShowUserList:                c.ShowUserList,
		MaxUsers:                    c.MaxUsers,
		Layout:                      string(c.Layout),
		ShowScreenSharingButton:     c.ShowScreenSharingButton,
		ShowLayoutButton:            c.ShowLayoutButton,
		ShowPinButton:               c.ShowPinButton,
	}
}

func check(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("provider %s: %w", op, err)
	}
	if resp.IsError() {
		return &StatusError{Op: op, Status: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}
