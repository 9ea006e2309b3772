// Package dummydb provides in-memory repository implementations for tests
// and dry runs. Nothing survives the process.
package dummydb

import (
	"sync"

	"github.com/campuspulse/aews/core/session"
)

type (
	DB struct {
		session  *sessionTable
		tutorial *tutorialTable
	}

	sessionTable struct {
		sync.RWMutex
		curr *session.Session
	}

	tutorialTable struct {
		sync.RWMutex
		seen map[string]bool
		play map[string]bool
	}
)

func Open() (*DB, error) {
	db := &DB{
		session: &sessionTable{},
		tutorial: &tutorialTable{
			seen: make(map[string]bool),
			play: make(map[string]bool),
		},
	}
	return db, nil
}
