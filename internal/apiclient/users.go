package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/iliyamo/register-my-marriage/internal/model"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Registered acknowledges a created account. User is set when the backend
// echoes it back.
type Registered struct {
	Message string
	User    *model.AuthUser
}

func (c *Client) Register(ctx context.Context, in RegisterRequest) (*Registered, error) {
	const op = "register"
	r, err := c.do(ctx, op, http.MethodPost, "/users/register/email", "", in)
	if err != nil {
		return nil, c.record(op, err)
	}
	if !r.ok() {
		return nil, c.record(op, &RegistrationFailedError{Reason: r.message()})
	}
	var out struct {
		Message string          `json:"message"`
		User    *model.AuthUser `json:"user"`
	}
	_ = json.Unmarshal(r.body, &out)
	return &Registered{Message: out.Message, User: out.User}, c.record(op, nil)
}

type LoginResult struct {
	User  model.AuthUser
	Token string
}

// Login exchanges credentials for a user and bearer token. Any non-2xx,
// and any 2xx lacking a token or a user, is an *AuthFailedError.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	const op = "login"
	in := map[string]string{"email": email, "password": password}
	r, err := c.do(ctx, op, http.MethodPost, "/users/login/User", "", in)
	if err != nil {
		return nil, c.record(op, err)
	}
	if !r.ok() {
		return nil, c.record(op, &AuthFailedError{Reason: r.message()})
	}
	var out struct {
		User  *model.AuthUser `json:"user"`
		Token string          `json:"token"`
	}
	if err := json.Unmarshal(r.body, &out); err != nil || out.User == nil || !out.User.Valid() || strings.TrimSpace(out.Token) == "" {
		c.log.WithField("op", op).Warn("apiclient: login answer without user or token")
		return nil, c.record(op, &AuthFailedError{})
	}
	return &LoginResult{User: *out.User, Token: strings.TrimSpace(out.Token)}, c.record(op, nil)
}
