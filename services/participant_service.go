package services

import (
	"call-lab/contract"
	"call-lab/domain"
	"call-lab/errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

const (
	mediaScheme       = "mxc://"
	mediaDownloadPath = "/_matrix/media/r0/download/"
)

// SelfExclusion decides which membership entry is the current user.
type SelfExclusion int

const (
	// MatchByID excludes every member whose normalized id equals the current user's.
	MatchByID SelfExclusion = iota
	// MatchStrict also requires the display name and avatar reference to match.
	MatchStrict
)

type ParticipantService struct {
	identity     contract.IIdentitySource
	mediaBaseURL string
	policy       SelfExclusion
	log          *slog.Logger
}

func NewParticipantService(identity contract.IIdentitySource, mediaBaseURL string,
	policy SelfExclusion, log *slog.Logger) *ParticipantService {
	return &ParticipantService{
		identity:     identity,
		mediaBaseURL: strings.TrimRight(mediaBaseURL, "/"),
		policy:       policy,
		log:          log,
	}
}

// Resolve turns a membership list into call targets: the current user and
// members who left or were banned are dropped, membership order is kept and
// each normalized id appears once.
func (s *ParticipantService) Resolve(members []domain.Member, current domain.CurrentUser) []domain.Participant {
	current = current.Trimmed()
	callable := lo.Filter(members, func(m domain.Member, _ int) bool {
		return m.IsCallable() && !s.isSelf(m, current)
	})
	participants := lo.Map(callable, func(m domain.Member, _ int) domain.Participant {
		return s.toParticipant(m.UserID, m.DisplayName, m.AvatarRef)
	})
	return domain.DistinctParticipants(participants, "")
}

// ResolveMembers resolves members against the signed-in user.
func (s *ParticipantService) ResolveMembers(members []domain.Member) ([]domain.Participant, error) {
	current, err := s.identity.CurrentUser()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMissingIdentity, err)
	}
	return s.Resolve(members, current), nil
}

// Self returns the signed-in user as a participant.
func (s *ParticipantService) Self() (domain.Participant, error) {
	current, err := s.identity.CurrentUser()
	if err != nil {
		return domain.Participant{}, fmt.Errorf("%w: %v", errors.ErrMissingIdentity, err)
	}
	if !current.IsComplete() {
		return domain.Participant{}, errors.ErrMissingIdentity
	}
	current = current.Trimmed()
	return s.toParticipant(current.UserID, current.DisplayName, current.AvatarRef), nil
}

// ResolveAvatarURL rewrites mxc://{server}/{mediaId} into a download URL on
// the media host. Only the first two path segments are used. Anything else
// is returned unchanged.
func (s *ParticipantService) ResolveAvatarURL(ref string) string {
	rest, ok := strings.CutPrefix(ref, mediaScheme)
	if !ok {
		return ref
	}
	parts := strings.Split(rest, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		s.log.Debug("Malformed media reference", "ref", ref)
		return ref
	}
	return s.mediaBaseURL + mediaDownloadPath + parts[0] + "/" + parts[1]
}

func (s *ParticipantService) isSelf(m domain.Member, current domain.CurrentUser) bool {
	sameID := domain.Normalize(m.UserID) == domain.Normalize(current.UserID)
	if s.policy != MatchStrict {
		return sameID
	}
	return sameID &&
		strings.TrimSpace(m.DisplayName) == current.DisplayName &&
		strings.TrimSpace(m.AvatarRef) == current.AvatarRef
}

func (s *ParticipantService) toParticipant(rawID, displayName, avatarRef string) domain.Participant {
	return domain.Participant{
		RawID:       rawID,
		ID:          domain.Normalize(rawID),
		DisplayName: displayName,
		AvatarURL:   s.ResolveAvatarURL(avatarRef),
	}
}
