package dummydb

import (
	"github.com/campuspulse/aews/core/session"
)

type sessionRepository struct {
	db *sessionTable
}

var _ session.Repository = (*sessionRepository)(nil)

func NewSessionRepository(db *DB) session.Repository {
	return &sessionRepository{db: db.session}
}

func (repo *sessionRepository) LoadSession() (session.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if repo.db.curr == nil {
		return session.Session{}, nil
	}
	sess := *repo.db.curr
	if sess.User != nil {
		usr := *sess.User
		sess.User = &usr
	}
	return sess, nil
}

func (repo *sessionRepository) SaveSession(sess session.Session) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if sess.User != nil {
		usr := *sess.User
		sess.User = &usr
	}
	repo.db.curr = &sess
	return nil
}

func (repo *sessionRepository) ClearSession() error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.curr = nil
	return nil
}
