// Package domain contains core concepts of the calling system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"strings"

	"github.com/samber/lo"
)

type MembershipState string

const (
	JOIN   MembershipState = "join"
	INVITE MembershipState = "invite"
	LEAVE  MembershipState = "leave"
	BAN    MembershipState = "ban"
	KNOCK  MembershipState = "knock"
)

// Member is one entry of a room membership list as produced by the
// membership provider. It is never mutated by this core.
type Member struct {
	UserID      string
	DisplayName string
	AvatarRef   string
	Membership  MembershipState
}

// IsCallable reports whether the member can receive a call invitation.
func (m Member) IsCallable() bool {
	return m.Membership != LEAVE && m.Membership != BAN
}

// CurrentUser is the signed-in user as read from the identity source.
// Absent values are empty strings.
type CurrentUser struct {
	UserID      string
	DisplayName string
	AvatarRef   string
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (u CurrentUser) Trimmed() CurrentUser {
	return CurrentUser{
		UserID:      strings.TrimSpace(u.UserID),
		DisplayName: strings.TrimSpace(u.DisplayName),
		AvatarRef:   strings.TrimSpace(u.AvatarRef),
	}
}

// IsComplete reports whether both the id and the display name are present.
func (u CurrentUser) IsComplete() bool {
	t := u.Trimmed()
	return Normalize(t.UserID) != "" && t.DisplayName != ""
}

// Participant is derived from a Member each time membership changes.
// It is never persisted as such.
type Participant struct {
	RawID       string
	ID          string // normalized
	DisplayName string
	AvatarURL   string
}

// DistinctParticipants drops participants without an id, participants whose id
// equals excludeID and later duplicates of an id already seen. Order is kept.
func DistinctParticipants(participants []Participant, excludeID string) []Participant {
	kept := lo.Filter(participants, func(p Participant, _ int) bool {
		return p.ID != "" && p.ID != excludeID
	})
	return lo.UniqBy(kept, func(p Participant) string {
		return p.ID
	})
}
