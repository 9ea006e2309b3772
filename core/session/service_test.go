package session_test

import (
	"io/ioutil"
	"log"
	"testing"

	"github.com/volatiletech/null/v8"

	"github.com/campuspulse/aews/core"
	"github.com/campuspulse/aews/core/session"
	logsvc "github.com/campuspulse/aews/services/logger"
	dummydb "github.com/campuspulse/aews/storage/dummy"
)

func setup(t *testing.T) (*session.Store, session.Repository) {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := dummydb.NewSessionRepository(db)
	logger := logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))
	return session.NewStore(repo, logger), repo
}

func testUser() *session.User {
	return &session.User{
		ID:            "64f1c0ffee",
		Name:          "Dr. Sarah Johnson",
		Email:         "sarah.johnson@amu.edu",
		Department:    "Computer Science",
		ContactNumber: "555-0100",
		Status:        "active",
	}
}

func TestStore_LoginSnapshot(t *testing.T) {
	for _, role := range core.Roles() {
		t.Run(role.String(), func(t *testing.T) {
			st, _ := setup(t)
			usr := testUser()

			st.Login(session.Session{User: usr, Role: role})

			snap := st.Snapshot()
			if !snap.IsAuthenticated {
				t.Fatal("expected authenticated snapshot")
			}
			if snap.Role != role {
				t.Errorf("role = %v, want %v", snap.Role, role)
			}
			if *snap.User != *usr {
				t.Errorf("user = %+v, want %+v", snap.User, usr)
			}
		})
	}
}

func TestStore_LoginPartialIsNoop(t *testing.T) {
	tests := []struct {
		name string
		sess session.Session
	}{
		{name: "no user", sess: session.Session{Role: core.RoleAdmin}},
		{name: "no role", sess: session.Session{User: testUser()}},
		{name: "invalid role", sess: session.Session{User: testUser(), Role: core.Role("student")}},
		{name: "empty", sess: session.Session{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := setup(t)

			st.Login(tt.sess)

			snap := st.Snapshot()
			if snap.IsAuthenticated || snap.User != nil || snap.Role != "" {
				t.Errorf("session changed: %+v", snap)
			}
		})
	}
}

func TestStore_Logout(t *testing.T) {
	st, repo := setup(t)
	st.Login(session.Session{User: testUser(), Role: core.RoleInstructor})

	st.Logout()
	st.Logout() // idempotent

	snap := st.Snapshot()
	if snap.IsAuthenticated || snap.User != nil || snap.Role != "" {
		t.Errorf("expected absent session, got %+v", snap)
	}
	if sess, _ := repo.LoadSession(); sess.Present() {
		t.Error("persisted record should be gone")
	}
}

func TestStore_Update(t *testing.T) {
	t.Run("absent session is a no-op", func(t *testing.T) {
		st, repo := setup(t)

		st.Update(session.UpdateUser{Name: null.StringFrom("Someone")})

		if st.Snapshot().IsAuthenticated {
			t.Error("session should still be absent")
		}
		if sess, _ := repo.LoadSession(); sess.Present() {
			t.Error("nothing should have been persisted")
		}
	})

	t.Run("empty partial is a no-op", func(t *testing.T) {
		st, _ := setup(t)
		st.Login(session.Session{User: testUser(), Role: core.RoleInstructor})

		st.Update(session.UpdateUser{})

		if *st.Snapshot().User != *testUser() {
			t.Error("user should be unchanged")
		}
	})

	t.Run("shallow merge keeps role and unset fields", func(t *testing.T) {
		st, _ := setup(t)
		st.Login(session.Session{User: testUser(), Role: core.RoleInstructor})

		st.Update(session.UpdateUser{
			Name:          null.StringFrom("Dr. Sarah J. Lee"),
			ContactNumber: null.StringFrom("555-0199"),
		})

		snap := st.Snapshot()
		if snap.Role != core.RoleInstructor {
			t.Errorf("role changed to %v", snap.Role)
		}
		if snap.User.Name != "Dr. Sarah J. Lee" {
			t.Errorf("name = %q", snap.User.Name)
		}
		if snap.User.ContactNumber != "555-0199" {
			t.Errorf("contact = %q", snap.User.ContactNumber)
		}
		if snap.User.Email != testUser().Email || snap.User.Department != testUser().Department {
			t.Error("unset fields should be untouched")
		}
	})
}

func TestStore_PersistenceRoundTrip(t *testing.T) {
	st, repo := setup(t)
	logger := logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))
	st.Login(session.Session{User: testUser(), Role: core.RoleAMUStaff})

	// a fresh store over the same storage reproduces the session
	st2 := session.NewStore(repo, logger)

	snap := st2.Snapshot()
	if !snap.IsAuthenticated || snap.Role != core.RoleAMUStaff {
		t.Fatalf("round trip lost the session: %+v", snap)
	}
	if *snap.User != *testUser() {
		t.Errorf("user = %+v, want %+v", snap.User, testUser())
	}
}

func TestStore_SnapshotIsReadOnly(t *testing.T) {
	st, _ := setup(t)
	st.Login(session.Session{User: testUser(), Role: core.RoleAdmin})

	snap := st.Snapshot()
	snap.User.Name = "Mallory"

	if st.Snapshot().User.Name != testUser().Name {
		t.Error("mutating a snapshot must not affect the store")
	}
}
