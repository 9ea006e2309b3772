package tutorial

import (
	cache "github.com/patrickmn/go-cache"

	"github.com/campuspulse/aews/core"
)

// sessionDismissedKey marks the onboarding modal as dismissed for the rest of
// the process lifetime. Not persisted; a restart clears it.
const sessionDismissedKey = "tutorial_dismissed_this_session"

type (
	// Repository persists the per-user onboarding flags.
	Repository interface {
		Seen(userID string) (bool, error)
		SetSeen(userID string) error
		PlayEveryLogin(userID string) (bool, error)
		SetPlayEveryLogin(userID string, value bool) error
	}

	// Store decides, on each dashboard mount, whether the onboarding modal
	// shows. Lookups default to the safe side (seen, no replay) when no
	// user id is available so the modal never shows for an unresolved
	// session.
	Store struct {
		repo    Repository
		log     core.Logger
		session *cache.Cache
	}
)

func NewStore(repo Repository, log core.Logger) *Store {
	return &Store{
		repo:    repo,
		log:     log,
		session: cache.New(cache.NoExpiration, 0),
	}
}

// HasSeen reports whether the user has ever dismissed the tutorial for good.
func (st *Store) HasSeen(userID string) bool {
	if userID == "" {
		return true
	}
	seen, err := st.repo.Seen(userID)
	if err != nil {
		st.log.Warn("tutorial: reading seen flag", err)
		return true
	}
	return seen
}

func (st *Store) SetSeen(userID string) {
	if userID == "" {
		return
	}
	if err := st.repo.SetSeen(userID); err != nil {
		st.log.Warn("tutorial: persisting seen flag", err)
	}
}

// PlayEveryLogin reports whether the user opted to replay the tutorial every
// session.
func (st *Store) PlayEveryLogin(userID string) bool {
	if userID == "" {
		return false
	}
	play, err := st.repo.PlayEveryLogin(userID)
	if err != nil {
		st.log.Warn("tutorial: reading play-every-login flag", err)
		return false
	}
	return play
}

func (st *Store) SetPlayEveryLogin(userID string, value bool) {
	if userID == "" {
		return
	}
	if err := st.repo.SetPlayEveryLogin(userID, value); err != nil {
		st.log.Warn("tutorial: persisting play-every-login flag", err)
	}
}

func (st *Store) DismissedThisSession() bool {
	_, ok := st.session.Get(sessionDismissedKey)
	return ok
}

// Dismiss records a dismissal. A user who opted into replay-every-login only
// suppresses the modal for the rest of this session; everyone else marks the
// tutorial seen for good.
func (st *Store) Dismiss(userID string) {
	if st.PlayEveryLogin(userID) {
		st.session.Set(sessionDismissedKey, true, cache.NoExpiration)
		return
	}
	st.SetSeen(userID)
}

// ShouldShow decides whether the onboarding modal shows. explicit covers a
// caller-requested replay (e.g. navigating from Settings).
func (st *Store) ShouldShow(userID string, explicit bool) bool {
	if explicit {
		return true
	}
	if st.PlayEveryLogin(userID) {
		return !st.DismissedThisSession()
	}
	return !st.HasSeen(userID)
}
