package localstate

import (
	"github.com/campuspulse/aews/core/session"
)

// authKey holds the single session record. Stable across restarts; the
// session store validates the shape on load.
const authKey = "auth"

type sessionRepository struct {
	db *DB
}

var _ session.Repository = (*sessionRepository)(nil)

func NewSessionRepository(db *DB) session.Repository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) LoadSession() (session.Session, error) {
	var sess session.Session
	repo.db.read(authKey, &sess)
	return sess, nil
}

func (repo *sessionRepository) SaveSession(sess session.Session) error {
	return repo.db.write(authKey, sess)
}

func (repo *sessionRepository) ClearSession() error {
	return repo.db.delete(authKey)
}
