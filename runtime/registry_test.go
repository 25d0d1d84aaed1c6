package runtime

import (
	"call-lab/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_JoinLeave(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given an empty room
	req.Empty(registry.Members("!room"))

	// When two participants join and one joins again with a new name
	registry.Join("!room", domain.Member{UserID: "@a:x", DisplayName: "A"})
	registry.Join("!room", domain.Member{UserID: "@b:x", DisplayName: "B"})
	registry.Join("!room", domain.Member{UserID: "@a:x", DisplayName: "A2"})

	// Then order of first appearance is kept
	members := registry.Members("!room")
	req.Len(members, 2)
	req.Equal("A2", members[0].DisplayName)
	req.Equal(domain.JOIN, members[0].Membership)

	// When one leaves the entry stays, marked as left
	registry.Leave("!room", "@b:x")
	registry.Leave("!room", "@unknown:x")
	members = registry.Members("!room")
	req.Len(members, 2)
	req.Equal(domain.LEAVE, members[1].Membership)

	// Other rooms are untouched
	req.Empty(registry.Members("!other"))
}

func TestRegistry_MembersIsACopy(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.Join("!room", domain.Member{UserID: "@a:x"})

	members := registry.Members("!room")
	members[0].UserID = "changed"
	req.Equal("@a:x", registry.Members("!room")[0].UserID)
}

func TestRegistry_Watch_LatestWins(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.Join("!room", domain.Member{UserID: "@a:x"})

	updates, unwatch := registry.Watch("!room")

	// Current list delivered right away
	req.Len(<-updates, 1)

	// A slow reader only sees the latest list
	registry.Join("!room", domain.Member{UserID: "@b:x"})
	registry.Join("!room", domain.Member{UserID: "@c:x"})
	req.Len(<-updates, 3)

	// Changes in another room are not delivered
	registry.Join("!other", domain.Member{UserID: "@z:x"})
	select {
	case <-updates:
		req.Fail("unexpected update")
	default:
	}

	unwatch()
	unwatch()
	_, ok := <-updates
	req.False(ok)

	// No watcher left, changes do not block
	registry.Join("!room", domain.Member{UserID: "@d:x"})
}

func TestRegistry_SetMembers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	updates, unwatch := registry.Watch("!room")
	defer unwatch()
	req.Empty(<-updates)

	registry.SetMembers("!room", []domain.Member{{UserID: "@a:x"}, {UserID: "@b:x", Membership: domain.BAN}})
	got := <-updates
	req.Len(got, 2)
	req.Equal(domain.BAN, got[1].Membership)
}
