package api

import (
	"context"
	"net/http"

	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// AuthResult is the backend's login payload: the bearer credential and
// the role it was issued for.
type AuthResult struct {
	Token    string        `json:"token"`
	UserType entities.Role `json:"userType"`
}

// Login exchanges credentials for a token. Storing the token in the
// session is the caller's responsibility.
func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	var res AuthResult
	err := c.call(ctx, request{
		name:     "users.login",
		method:   http.MethodPost,
		path:     "/api/users/login",
		body:     req,
		fallback: "login failed",
	}, &res)
	return res, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.call(ctx, request{
		name:     "users.register",
		method:   http.MethodPost,
		path:     "/api/users/register",
		body:     req,
		fallback: "registration failed",
	}, nil)
}
