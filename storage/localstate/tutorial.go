package localstate

import (
	"github.com/campuspulse/aews/core/tutorial"
)

// Key layout: tutorial_seen_{userId}, play_tutorial_every_login_{userId}.
// These must stay stable across releases or users will see the tutorial
// again.
func seenKey(userID string) string { return "tutorial_seen_" + userID }
func playKey(userID string) string { return "play_tutorial_every_login_" + userID }

type tutorialRepository struct {
	db *DB
}

var _ tutorial.Repository = (*tutorialRepository)(nil)

func NewTutorialRepository(db *DB) tutorial.Repository {
	return &tutorialRepository{db: db}
}

func (repo *tutorialRepository) Seen(userID string) (bool, error) {
	var seen bool
	repo.db.read(seenKey(userID), &seen)
	return seen, nil
}

func (repo *tutorialRepository) SetSeen(userID string) error {
	return repo.db.write(seenKey(userID), true)
}

func (repo *tutorialRepository) PlayEveryLogin(userID string) (bool, error) {
	var play bool
	repo.db.read(playKey(userID), &play)
	return play, nil
}

func (repo *tutorialRepository) SetPlayEveryLogin(userID string, value bool) error {
	return repo.db.write(playKey(userID), value)
}
