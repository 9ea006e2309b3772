package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/campuspulse/aews/core"
	"github.com/campuspulse/aews/core/session"
)

// Signup registers a new account. The account stays pending until an admin
// approves it and the email address is verified.
func (c *Client) Signup(ctx context.Context, in SignupInput) (Message, error) {
	in.Name = core.CleanString(in.Name)
	in.Email = core.CleanString(in.Email)
	in.ContactNumber = core.CleanString(in.ContactNumber)
	in.Department = core.CleanString(in.Department)
	if in.Role == "" {
		in.Role = core.RoleInstructor
	}
	var msg Message
	if err := validate(in); err != nil {
		return msg, err
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", nil, in, &msg, "Signup failed")
	return msg, err
}

// Login authenticates and returns the full session payload, ready to hand to
// session.Store.Login.
func (c *Client) Login(ctx context.Context, in LoginInput) (session.Session, error) {
	var sess session.Session
	if err := validate(in); err != nil {
		return sess, err
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, in, &sess, "Login failed")
	return sess, err
}

// VerifyEmail redeems the token from the verification email. Clicking the
// same link twice still reads as success.
func (c *Client) VerifyEmail(ctx context.Context, token string) (Message, error) {
	var msg Message
	query := url.Values{"token": {token}}
	err := c.do(ctx, http.MethodGet, "/api/auth/verify-email", query, nil, &msg, "Verification failed")
	return msg, err
}

// RequestPasswordReset asks for a reset link. The backend always answers 200
// to avoid leaking account existence.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (Message, error) {
	in := struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: core.CleanString(email)}
	var msg Message
	if err := validate(in); err != nil {
		return msg, err
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/forgot-password", nil, in, &msg, "Request failed")
	return msg, err
}

func (c *Client) ResetPassword(ctx context.Context, in ResetPasswordInput) (Message, error) {
	var msg Message
	if err := validate(in); err != nil {
		return msg, err
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", nil, in, &msg, "Reset failed")
	return msg, err
}
