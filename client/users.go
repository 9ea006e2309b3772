package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/campuspulse/aews/core"
	"github.com/campuspulse/aews/core/session"
)

// User fetches a single user by id, any role.
func (c *Client) User(ctx context.Context, userID string) (session.User, error) {
	var usr session.User
	err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID), nil, nil, &usr, "User not found")
	return usr, err
}

// Users lists accounts, optionally filtered by role and a name/email search.
// A zero role means all roles.
func (c *Client) Users(ctx context.Context, role core.Role, search string) ([]session.User, error) {
	query := url.Values{}
	if role != "" {
		query.Set("role", role.String())
	}
	if s := core.CleanString(search); s != "" {
		query.Set("search", s)
	}
	var users []session.User
	if err := c.do(ctx, http.MethodGet, "/api/users", query, nil, &users, "Failed to load users"); err != nil {
		return nil, err
	}
	if users == nil {
		users = []session.User{}
	}
	return users, nil
}

// UpdateUser patches profile fields on a user; only set fields go over the
// wire. Returns the updated record.
func (c *Client) UpdateUser(ctx context.Context, userID string, uu session.UpdateUser) (session.User, error) {
	body := make(map[string]interface{})
	if uu.Name.Valid {
		body["name"] = uu.Name.String
	}
	if uu.Email.Valid {
		body["email"] = uu.Email.String
	}
	if uu.Department.Valid {
		body["department"] = uu.Department.String
	}
	if uu.ContactNumber.Valid {
		body["contact_number"] = uu.ContactNumber.String
	}
	if uu.Status.Valid {
		body["status"] = uu.Status.String
	}
	var usr session.User
	err := c.do(ctx, http.MethodPatch, "/api/users/"+url.PathEscape(userID), nil, body, &usr, "Update failed")
	return usr, err
}
