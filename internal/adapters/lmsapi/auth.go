package lmsapi

import (
	"context"
	"net/http"

	"github.com/lmsdesk/admin-ui/internal/domain/auth"
	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

var _ ports.AuthAPI = (*Client)(nil)

// loginResponse mirrors the upstream login payload.
type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		Avatar    string `json:"avatar"`
	} `json:"user"`
}

// Login exchanges credentials for a bearer token and the signed-in identity.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (ports.LoginResult, error) {
	var out loginResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/login",
		body: map[string]string{
			"email":    creds.Email,
			"password": creds.Password,
		},
	}, &out)
	if err != nil {
		return ports.LoginResult{}, err
	}
	if out.Token == "" {
		return ports.LoginResult{}, apperrors.Unauthorized("Unauthorized: Invalid credentials")
	}
	return ports.LoginResult{
		Token: out.Token,
		Identity: auth.Identity{
			FirstName: out.User.FirstName,
			LastName:  out.User.LastName,
			Email:     out.User.Email,
			Role:      auth.Role(out.User.Role),
			Avatar:    out.User.Avatar,
		},
	}, nil
}

// Me fetches the identity bound to a bearer token.
func (c *Client) Me(ctx context.Context, token string) (auth.Identity, error) {
	var out auth.Identity
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/auth/me",
		token:  token,
	}, &out)
	if err != nil {
		return auth.Identity{}, err
	}
	return out, nil
}

// UpdateDetails updates the signed-in user's profile and returns the
// server-confirmed identity.
func (c *Client) UpdateDetails(ctx context.Context, token string, req model.UpdateDetailsRequest) (auth.Identity, error) {
	var out auth.Identity
	err := c.do(ctx, call{
		method: http.MethodPut,
		path:   "/auth/updatedetails",
		token:  token,
		body:   req,
	}, &out)
	if err != nil {
		return auth.Identity{}, err
	}
	return out, nil
}
