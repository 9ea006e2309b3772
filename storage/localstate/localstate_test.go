package localstate

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/campuspulse/aews/core"
	"github.com/campuspulse/aews/core/session"
)

func openDB(t *testing.T) *DB {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return db
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	db := openDB(t)
	repo := NewSessionRepository(db)
	sess := session.Session{
		User: &session.User{ID: "64f1", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@amu.edu"},
		Role: core.RoleInstructor,
	}

	if err := repo.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	got, err := repo.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if !got.Present() {
		t.Fatal("loaded session should be present")
	}
	if got.Role != sess.Role || *got.User != *sess.User {
		t.Errorf("loaded %+v, want %+v", got, sess)
	}
}

func TestSessionRepository_MissingReadsAbsent(t *testing.T) {
	repo := NewSessionRepository(openDB(t))

	got, err := repo.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if got.Present() {
		t.Errorf("expected absent session, got %+v", got)
	}
}

func TestSessionRepository_CorruptReadsAbsent(t *testing.T) {
	db := openDB(t)
	repo := NewSessionRepository(db)
	if err := ioutil.WriteFile(db.path(authKey), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := repo.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() failed: %v", err)
	}
	if got.Present() {
		t.Errorf("corrupt record must read as absent, got %+v", got)
	}
}

func TestSessionRepository_Clear(t *testing.T) {
	db := openDB(t)
	repo := NewSessionRepository(db)
	sess := session.Session{User: &session.User{ID: "64f1"}, Role: core.RoleAdmin}
	if err := repo.SaveSession(sess); err != nil {
		t.Fatal(err)
	}

	if err := repo.ClearSession(); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}
	if err := repo.ClearSession(); err != nil { // clearing twice is fine
		t.Fatalf("second ClearSession() failed: %v", err)
	}

	if got, _ := repo.LoadSession(); got.Present() {
		t.Errorf("session should be gone, got %+v", got)
	}
	if _, err := os.Stat(db.path(authKey)); !os.IsNotExist(err) {
		t.Error("record file should be removed")
	}
}

func TestTutorialRepository_RoundTrip(t *testing.T) {
	repo := NewTutorialRepository(openDB(t))
	userID := "64f1"

	if seen, _ := repo.Seen(userID); seen {
		t.Error("seen should default to false")
	}
	if play, _ := repo.PlayEveryLogin(userID); play {
		t.Error("play-every-login should default to false")
	}

	if err := repo.SetSeen(userID); err != nil {
		t.Fatal(err)
	}
	if err := repo.SetPlayEveryLogin(userID, true); err != nil {
		t.Fatal(err)
	}

	if seen, _ := repo.Seen(userID); !seen {
		t.Error("seen should be true")
	}
	if play, _ := repo.PlayEveryLogin(userID); !play {
		t.Error("play-every-login should be true")
	}

	if err := repo.SetPlayEveryLogin(userID, false); err != nil {
		t.Fatal(err)
	}
	if play, _ := repo.PlayEveryLogin(userID); play {
		t.Error("play-every-login should be false again")
	}
}

// The on-disk key layout carries user preferences across releases.
func TestTutorialRepository_KeyLayout(t *testing.T) {
	db := openDB(t)
	repo := NewTutorialRepository(db)
	if err := repo.SetSeen("64f1"); err != nil {
		t.Fatal(err)
	}
	if err := repo.SetPlayEveryLogin("64f1", true); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"tutorial_seen_64f1.json", "play_tutorial_every_login_64f1.json"} {
		if _, err := os.Stat(filepath.Join(db.dir, name)); err != nil {
			t.Errorf("expected record file %s: %v", name, err)
		}
	}
}

func TestDB_KeysAreFilenameSafe(t *testing.T) {
	db := openDB(t)
	repo := NewTutorialRepository(db)

	if err := repo.SetSeen("../escape"); err != nil {
		t.Fatalf("SetSeen() failed: %v", err)
	}

	entries, err := ioutil.ReadDir(db.dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one record in the state dir, got %d", len(entries))
	}
}
