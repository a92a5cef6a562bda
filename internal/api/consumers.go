package api

import (
	"context"
	"net/http"

	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
)

type UpdateProfileRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func (c *Client) Profile(ctx context.Context) (entities.ConsumerProfile, error) {
	var profile entities.ConsumerProfile
	err := c.read(ctx, request{
		name:     "consumers.profile",
		method:   http.MethodGet,
		path:     "/api/consumers/profile",
		authed:   true,
		fallback: "failed to fetch profile",
	}, &profile)
	return profile, err
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (entities.ConsumerProfile, error) {
	var profile entities.ConsumerProfile
	err := c.call(ctx, request{
		name:     "consumers.update_profile",
		method:   http.MethodPut,
		path:     "/api/consumers/profile",
		body:     req,
		authed:   true,
		fallback: "failed to update profile",
	}, &profile)
	return profile, err
}
