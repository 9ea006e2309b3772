package notification

import "github.com/campuspulse/aews/core"

type actionKind int

const (
	actionMarkRead actionKind = iota
	actionMarkAllRead
)

type action struct {
	kind actionKind
	role core.Role
	id   int
}

// reduce applies an action to the state and returns the next state. Pure:
// the input state and its lists are never mutated. Read is one-directional;
// no action reverts an entry to unread.
func reduce(state map[core.Role][]Notification, act action) map[core.Role][]Notification {
	list, ok := state[act.role]
	if !ok {
		return state
	}

	next := make(map[core.Role][]Notification, len(state))
	for role, l := range state {
		next[role] = l
	}

	updated := make([]Notification, len(list))
	for i, n := range list {
		switch act.kind {
		case actionMarkRead:
			if n.ID == act.id {
				n.Read = true
			}
		case actionMarkAllRead:
			n.Read = true
		}
		updated[i] = n
	}
	next[act.role] = updated
	return next
}
