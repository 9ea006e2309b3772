package session

import (
	"sync"

	"github.com/campuspulse/aews/core"
)

type (
	// Repository persists the single session record. Load returns a zero
	// Session (not an error) when no valid record exists.
	Repository interface {
		LoadSession() (Session, error)
		SaveSession(Session) error
		ClearSession() error
	}

	// Store is the single source of truth for "who is logged in and as
	// what role". The in-memory state stays authoritative even when
	// persistence fails; a failed write only costs durability across
	// restarts.
	Store struct {
		mu   sync.RWMutex
		repo Repository
		log  core.Logger
		curr Session
	}
)

// NewStore adopts the persisted session if it is fully formed; malformed or
// partial records read as an absent session.
func NewStore(repo Repository, log core.Logger) *Store {
	st := &Store{repo: repo, log: log}
	sess, err := repo.LoadSession()
	if err != nil {
		log.Warn("session: loading persisted state", err)
		return st
	}
	if sess.Present() {
		st.curr = sess
	}
	return st
}

// Login replaces the current session. A payload missing either the user or
// the role leaves the session unchanged; callers validate the login response
// upstream.
func (st *Store) Login(sess Session) {
	if !sess.Present() {
		return
	}
	usr := *sess.User
	st.mu.Lock()
	st.curr = Session{User: &usr, Role: sess.Role}
	st.persist()
	st.mu.Unlock()
}

// Logout clears the session and removes the persisted record. Idempotent.
func (st *Store) Logout() {
	st.mu.Lock()
	st.curr = Session{}
	if err := st.repo.ClearSession(); err != nil {
		st.log.Warn("session: clearing persisted state", err)
	}
	st.mu.Unlock()
}

// Update shallow-merges the set fields into the current user record and
// re-persists. No-op without a session or with an empty partial.
func (st *Store) Update(uu UpdateUser) {
	if uu.IsZero() {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.curr.Present() {
		return
	}
	usr := uu.apply(*st.curr.User)
	st.curr = Session{User: &usr, Role: st.curr.Role}
	st.persist()
}

// Snapshot returns a read-only projection of the session.
func (st *Store) Snapshot() Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if !st.curr.Present() {
		return Snapshot{}
	}
	usr := *st.curr.User
	return Snapshot{User: &usr, Role: st.curr.Role, IsAuthenticated: true}
}

// persist writes the full record in one go; callers hold the lock. Storage
// errors are logged and swallowed: the in-memory state remains authoritative
// for the rest of the process lifetime.
func (st *Store) persist() {
	if err := st.repo.SaveSession(st.curr); err != nil {
		st.log.Warn("session: persisting state", err)
	}
}
