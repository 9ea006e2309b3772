package notification

import (
	"sync"

	"github.com/campuspulse/aews/core"
)

// Store holds the three role-keyed notification feeds and their read state.
// Dispatch is synchronous: a read immediately following a write observes the
// write.
type Store struct {
	mu    sync.RWMutex
	state map[core.Role][]Notification
}

// NewStore seeds a store. A nil initial state uses Seed().
func NewStore(initial map[core.Role][]Notification) *Store {
	if initial == nil {
		initial = Seed()
	}
	return &Store{state: initial}
}

func (st *Store) dispatch(act action) {
	st.mu.Lock()
	st.state = reduce(st.state, act)
	st.mu.Unlock()
}

// Notifications returns the feed for a role in insertion order, or an empty
// list for an unknown role.
func (st *Store) Notifications(role core.Role) []Notification {
	st.mu.RLock()
	defer st.mu.RUnlock()
	list := st.state[role]
	out := make([]Notification, len(list))
	copy(out, list)
	return out
}

// UnreadCount counts the entries with Read == false for a role.
func (st *Store) UnreadCount(role core.Role) int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	var n int
	for _, notif := range st.state[role] {
		if !notif.Read {
			n++
		}
	}
	return n
}

// MarkRead transitions the entry matching (role, id) to read. No-op if no
// such entry exists.
func (st *Store) MarkRead(role core.Role, id int) {
	st.dispatch(action{kind: actionMarkRead, role: role, id: id})
}

// MarkAllRead transitions every entry for the role to read. Other roles'
// feeds are unaffected.
func (st *Store) MarkAllRead(role core.Role) {
	st.dispatch(action{kind: actionMarkAllRead, role: role})
}
