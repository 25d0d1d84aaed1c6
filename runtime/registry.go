package runtime

import (
	"call-lab/domain"
	"slices"
	"sync"
)

// Registry is an in-memory, change-notified membership list per room.
// It is the membership source used when no chat client feeds the core.
type Registry struct {
	mu       sync.RWMutex
	members  map[string][]domain.Member
	watchers map[string]map[int]chan []domain.Member
	nextID   int
}

func NewRegistry() *Registry {
	return &Registry{
		members:  make(map[string][]domain.Member),
		watchers: make(map[string]map[int]chan []domain.Member),
	}
}

// SetMembers replaces the membership list of a room.
func (r *Registry) SetMembers(roomID string, members []domain.Member) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[roomID] = slices.Clone(members)
	r.notify(roomID)
}

// Join adds the member to the room, or updates it if its user id is
// already listed. Order of first appearance is kept.
func (r *Registry) Join(roomID string, member domain.Member) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if member.Membership == "" {
		member.Membership = domain.JOIN
	}
	members := r.members[roomID]
	idx := slices.IndexFunc(members, func(m domain.Member) bool { return m.UserID == member.UserID })
	if idx >= 0 {
		members[idx] = member
	} else {
		r.members[roomID] = append(members, member)
	}
	r.notify(roomID)
}

// Leave marks the member as gone. The entry stays in the list, like in the
// chat server's member list.
func (r *Registry) Leave(roomID, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	members := r.members[roomID]
	idx := slices.IndexFunc(members, func(m domain.Member) bool { return m.UserID == userID })
	if idx < 0 {
		return
	}
	members[idx].Membership = domain.LEAVE
	r.notify(roomID)
}

func (r *Registry) Members(roomID string) []domain.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.members[roomID])
}

// Watch returns a feed receiving the current list right away and the latest
// list after every change. A slow reader only misses intermediate lists.
// The returned function stops the feed and closes the channel.
func (r *Registry) Watch(roomID string) (<-chan []domain.Member, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch := make(chan []domain.Member, 1)
	id := r.nextID
	r.nextID++
	if r.watchers[roomID] == nil {
		r.watchers[roomID] = make(map[int]chan []domain.Member)
	}
	r.watchers[roomID][id] = ch
	ch <- slices.Clone(r.members[roomID])

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			delete(r.watchers[roomID], id)
			if len(r.watchers[roomID]) == 0 {
				delete(r.watchers, roomID)
			}
			close(ch)
		})
	}
}

// notify must be called with the write lock held: senders never race, so
// after draining the buffer the send cannot block.
func (r *Registry) notify(roomID string) {
	for _, ch := range r.watchers[roomID] {
		select {
		case <-ch:
		default:
		}
		ch <- slices.Clone(r.members[roomID])
	}
}
