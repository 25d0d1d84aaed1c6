package domain

import (
	"time"
)

type CallKind string

const (
	VOICE CallKind = "voice"
	VIDEO CallKind = "video"
)

func (k CallKind) IsVideo() bool {
	return k == VIDEO
}

// MediaProfile tells the provider which tracks to publish when the call starts.
type MediaProfile struct {
	Audio bool
	Video bool
}

// ProfileFor returns audio-only for voice calls and audio+video for video calls.
func ProfileFor(kind CallKind) MediaProfile {
	return MediaProfile{Audio: true, Video: kind.IsVideo()}
}

// Callee is the provider-facing view of an invitation target.
type Callee struct {
	UserID   string
	UserName string
}

// CallInvitation only lives for the duration of a dispatch.
type CallInvitation struct {
	RoomID  string
	Callees []Callee
	Kind    CallKind
	Timeout time.Duration
	Media   MediaProfile
}

type Layout string

const (
	GRID    Layout = "Grid"
	SIDEBAR Layout = "Sidebar"
	AUTO    Layout = "Auto"
)

// RoomConfig holds the room defaults applied before and after joining a call.
type RoomConfig struct {
	TurnOnMicrophoneWhenJoining bool
	ShowTextChat                bool
	ShowUserList                bool
	MaxUsers                    int
	Layout                      Layout
	ShowScreenSharingButton     bool
	ShowLayoutButton            bool
	ShowPinButton               bool
}

func DefaultRoomConfig() RoomConfig {
	return RoomConfig{
		TurnOnMicrophoneWhenJoining: true,
		ShowTextChat:                false,
		ShowUserList:                true,
		MaxUsers:                    40,
		Layout:                      GRID,
		ShowScreenSharingButton:     false,
		ShowLayoutButton:            true,
		ShowPinButton:               true,
	}
}

type Ringtones struct {
	IncomingCallURL string
	OutgoingCallURL string
}

// InvitationConfig is registered once on every new session.
type InvitationConfig struct {
	NotifyWhenInBackground bool
	Ringtones              Ringtones
	BeforeJoining          RoomConfig
	AfterJoining           RoomConfig
}

// TokenRequest scopes a provider token to an application and a user.
// ConversationID is optional: an empty value issues a token valid for any room.
type TokenRequest struct {
	AppID          uint32 `validate:"required"`
	UserID         string `validate:"required,alphanum,max=64"`
	DisplayName    string `validate:"required,max=256"`
	ConversationID string `validate:"omitempty,max=255"`
}

type SessionState string

const (
	UNINITIALIZED SessionState = "UNINITIALIZED"
	INITIALIZING  SessionState = "INITIALIZING"
	FAILED        SessionState = "FAILED"
	READY         SessionState = "READY"
	CLOSED        SessionState = "CLOSED"
)
