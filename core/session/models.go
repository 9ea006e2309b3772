package session

import (
	"github.com/volatiletech/null/v8"

	"github.com/campuspulse/aews/core"
)

type (
	// User is the authenticated principal as returned by the login
	// endpoint. Unknown backend fields are dropped on purpose; the client
	// only ever reads these.
	User struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Email         string `json:"email"`
		Role          string `json:"role,omitempty"`
		Department    string `json:"department"`
		ContactNumber string `json:"contact_number"`
		Status        string `json:"status,omitempty"`
	}

	// Session is either fully absent (no user, no role) or fully present.
	// A partial session is never persisted nor exposed.
	Session struct {
		User *User     `json:"user"`
		Role core.Role `json:"role"`
	}

	// Snapshot is the read-only projection handed to consumers.
	Snapshot struct {
		User            *User
		Role            core.Role
		IsAuthenticated bool
	}

	// UpdateUser carries profile fields patched elsewhere. Role is not
	// updatable through this path.
	UpdateUser struct {
		Name          null.String `json:"name"`
		Email         null.String `json:"email"`
		Department    null.String `json:"department"`
		ContactNumber null.String `json:"contact_number"`
		Status        null.String `json:"status"`
	}
)

// Present reports whether the session is fully formed.
func (s Session) Present() bool {
	return s.User != nil && s.Role.Valid()
}

func (uu UpdateUser) IsZero() bool {
	return !uu.Name.Valid && !uu.Email.Valid && !uu.Department.Valid &&
		!uu.ContactNumber.Valid && !uu.Status.Valid
}

// apply shallow-merges the set fields into usr.
func (uu UpdateUser) apply(usr User) User {
	if uu.Name.Valid {
		usr.Name = uu.Name.String
	}
	if uu.Email.Valid {
		usr.Email = uu.Email.String
	}
	if uu.Department.Valid {
		usr.Department = uu.Department.String
	}
	if uu.ContactNumber.Valid {
		usr.ContactNumber = uu.ContactNumber.String
	}
	if uu.Status.Valid {
		usr.Status = uu.Status.String
	}
	return usr
}
