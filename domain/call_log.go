// Package domain contains core concepts of the calling system.
// This file defines call-log records and how one call event is replicated
// into one record per participant.
// Records are immutable once appended.
package domain

import (
	"call-lab/errors"
	"time"

	"github.com/samber/lo"
)

// CallLogRecord is one entry of an owner's call history.
// Names and ImageURLs are positionally aligned.
type CallLogRecord struct {
	ID            string
	Names         []string
	ImageURLs     []string
	Incoming      bool
	Missed        bool
	Video         bool
	RoomID        string
	UserCalledIDs []string
	Label         string
	CreatedAt     time.Time
}

// CallEvent is what the synchronizer receives after a dispatch.
// Owner is the participant running this process.
type CallEvent struct {
	Incoming       bool
	Video          bool
	Missed         bool
	Owner          Participant
	Participants   []Participant
	ConversationID string
	At             time.Time
}

// OwnedRecord pairs a record with the owner whose collection stores it.
type OwnedRecord struct {
	OwnerID string
	Record  CallLogRecord
}

// CallLabel renders the human label of a record, e.g. "Outgoing Audio Call"
// or "Incoming Video Group Call".
func CallLabel(incoming, video, group bool) string {
	direction := "Outgoing"
	if incoming {
		direction = "Incoming"
	}
	media := "Audio"
	if video {
		media = "Video"
	}
	suffix := "Call"
	if group {
		suffix = "Group Call"
	}
	return direction + " " + media + " " + suffix
}

// BuildCallLogs turns a call event into the records to append, the owner's
// record always first. Participants are de-duplicated and the owner is
// removed from them, so the result holds exactly one record per distinct
// participant including the owner.
func BuildCallLogs(call CallEvent) ([]OwnedRecord, error) {
	owner := call.Owner
	if owner.ID == "" {
		return nil, errors.ErrMissingIdentity
	}
	others := DistinctParticipants(call.Participants, owner.ID)
	switch len(others) {
	case 0:
		return nil, errors.ErrNoParticipants
	case 1:
		return buildDirectLogs(call, others[0]), nil
	default:
		return buildGroupLogs(call, others), nil
	}
}

func buildDirectLogs(call CallEvent, counterpart Participant) []OwnedRecord {
	owner := call.Owner
	involved := []string{owner.ID, counterpart.ID}
	if call.Incoming {
		involved = []string{counterpart.ID, owner.ID}
	}
	ownerRecord := CallLogRecord{
		Names:         []string{counterpart.DisplayName},
		ImageURLs:     []string{counterpart.AvatarURL},
		Incoming:      call.Incoming,
		Missed:        call.Missed,
		Video:         call.Video,
		RoomID:        call.ConversationID,
		UserCalledIDs: involved,
		Label:         CallLabel(call.Incoming, call.Video, false),
		CreatedAt:     call.At,
	}
	counterpartRecord := CallLogRecord{
		Names:         []string{owner.DisplayName},
		ImageURLs:     []string{owner.AvatarURL},
		Incoming:      true,
		Missed:        call.Missed,
		Video:         call.Video,
		RoomID:        call.ConversationID,
		UserCalledIDs: []string{owner.ID, counterpart.ID},
		Label:         CallLabel(true, call.Video, false),
		CreatedAt:     call.At,
	}
	return []OwnedRecord{
		{OwnerID: owner.ID, Record: ownerRecord},
		{OwnerID: counterpart.ID, Record: counterpartRecord},
	}
}

func buildGroupLogs(call CallEvent, others []Participant) []OwnedRecord {
	owner := call.Owner
	ordered := append([]Participant{owner}, others...)
	if call.Incoming {
		// callers first, the receiving owner last
		ordered = append(append([]Participant{}, others...), owner)
	}
	records := make([]OwnedRecord, 0, len(others)+1)
	records = append(records, OwnedRecord{
		OwnerID: owner.ID,
		Record: CallLogRecord{
			Names:         lo.Map(ordered, func(p Participant, _ int) string { return p.DisplayName }),
			ImageURLs:     lo.Map(ordered, func(p Participant, _ int) string { return p.AvatarURL }),
			Incoming:      call.Incoming,
			Missed:        call.Missed,
			Video:         call.Video,
			RoomID:        call.ConversationID,
			UserCalledIDs: lo.Map(ordered, func(p Participant, _ int) string { return p.ID }),
			Label:         CallLabel(call.Incoming, call.Video, true),
			CreatedAt:     call.At,
		},
	})
	for _, p := range others {
		records = append(records, OwnedRecord{
			OwnerID: p.ID,
			Record: CallLogRecord{
				Names:         []string{owner.DisplayName, p.DisplayName},
				ImageURLs:     []string{owner.AvatarURL, p.AvatarURL},
				Incoming:      true,
				Missed:        call.Missed,
				Video:         call.Video,
				RoomID:        call.ConversationID,
				UserCalledIDs: []string{owner.ID, p.ID},
				Label:         CallLabel(true, call.Video, true),
				CreatedAt:     call.At,
			},
		})
	}
	return records
}
