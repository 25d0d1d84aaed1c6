package storage

import (
	"call-lab/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_CurrentUser(t *testing.T) {
	req := require.New(t)
	store := NewLocalStore(openTestDB(t), testLogger())

	user, err := store.CurrentUser()
	req.NoError(err)
	req.Equal(domain.CurrentUser{}, user)
	req.False(user.IsComplete())

	signedIn := domain.CurrentUser{
		UserID:      "@alice:example.org",
		DisplayName: "Alice",
		AvatarRef:   "mxc://example.org/alice",
	}
	req.NoError(store.SignIn(signedIn))

	user, err = store.CurrentUser()
	req.NoError(err)
	req.Equal(signedIn, user)
}

func TestLocalStore_PartialIdentity(t *testing.T) {
	req := require.New(t)
	store := NewLocalStore(openTestDB(t), testLogger())

	req.NoError(store.Set(UserIDKey, "@alice:example.org"))

	user, err := store.CurrentUser()
	req.NoError(err)
	req.Equal("@alice:example.org", user.UserID)
	req.Empty(user.DisplayName)
	req.False(user.IsComplete())
}

func TestLocalStore_CallLogsCache(t *testing.T) {
	req := require.New(t)
	store := NewLocalStore(openTestDB(t), testLogger())

	records, err := store.CallLogs("alice")
	req.NoError(err)
	req.Empty(records)

	first := sampleRecord()
	first.ID = "0192f1c4-0000-7000-8000-000000000001"
	second := sampleRecord()
	second.ID = "0192f1c4-0000-7000-8000-000000000002"
	second.Incoming = true
	second.Label = "Incoming Video Call"

	req.NoError(store.SaveCallLogs("alice", []domain.CallLogRecord{first, second}))
	records, err = store.CallLogs("alice")
	req.NoError(err)
	req.Equal([]domain.CallLogRecord{first, second}, records)

	// Saving replaces the cache instead of appending to it
	req.NoError(store.SaveCallLogs("alice", []domain.CallLogRecord{second}))
	records, err = store.CallLogs("alice")
	req.NoError(err)
	req.Equal([]domain.CallLogRecord{second}, records)

	raw, err := store.Get("callLogs:alice")
	req.NoError(err)
	req.Contains(raw, "isVideoCall")
}
