// Package localstate is the durable local key-value store backing the
// session and tutorial repositories. One JSON file per key under the state
// directory; each record is marshalled whole and written in a single call so
// no reader ever observes a partial record.
package localstate

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

type DB struct {
	mu  sync.Mutex
	dir string
}

func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "localstate: creating state dir")
	}
	return &DB{dir: dir}, nil
}

func (db *DB) path(key string) string {
	// keys embed user ids (emails, object ids); keep them filename-safe
	key = strings.NewReplacer("/", "_", string(os.PathSeparator), "_").Replace(key)
	return filepath.Join(db.dir, key+".json")
}

// read loads the record at key into out. A missing or unreadable or corrupt
// file reads as absent, not as an error; stale local state is never worth
// failing over.
func (db *DB) read(key string, out interface{}) bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	data, err := ioutil.ReadFile(db.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}

// write persists the full record in one write.
func (db *DB) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "localstate: marshalling "+key)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	if err := ioutil.WriteFile(db.path(key), data, 0o600); err != nil {
		return errors.Wrap(err, "localstate: writing "+key)
	}
	return nil
}

// delete removes the record at key. Removing an absent record is not an
// error.
func (db *DB) delete(key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := os.Remove(db.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "localstate: removing "+key)
	}
	return nil
}
