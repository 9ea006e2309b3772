package dummydb

import (
	"github.com/campuspulse/aews/core/tutorial"
)

type tutorialRepository struct {
	db *tutorialTable
}

var _ tutorial.Repository = (*tutorialRepository)(nil)

func NewTutorialRepository(db *DB) tutorial.Repository {
	return &tutorialRepository{db: db.tutorial}
}

func (repo *tutorialRepository) Seen(userID string) (bool, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.seen[userID], nil
}

func (repo *tutorialRepository) SetSeen(userID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.seen[userID] = true
	return nil
}

func (repo *tutorialRepository) PlayEveryLogin(userID string) (bool, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.play[userID], nil
}

func (repo *tutorialRepository) SetPlayEveryLogin(userID string, value bool) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.play[userID] = value
	return nil
}
