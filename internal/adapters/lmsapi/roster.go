package lmsapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

var _ ports.RosterAPI = (*Client)(nil)

// rosterPath selects the endpoint family for a roster kind.
func rosterPath(kind model.UserKind) string {
	if kind == model.UserKindStudent {
		return "/admin/users/students"
	}
	return "/admin/users/instructors"
}

// List fetches the full roster of the given kind. Filtering happens locally;
// the upstream endpoint takes no query parameters.
func (c *Client) List(ctx context.Context, token string, kind model.UserKind) ([]model.User, error) {
	var out []model.User
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   rosterPath(kind),
		token:  token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a new roster member. Duplicate-email rejections surface
// as a conflict carrying the canonical UI message.
func (c *Client) Create(ctx context.Context, token string, kind model.UserKind, req model.CreateUserRequest) (model.User, error) {
	var out model.User
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   rosterPath(kind),
		token:  token,
		body:   req,
	}, &out)
	if err != nil {
		return model.User{}, normalizeCreateUserErr(err)
	}
	return out, nil
}

// ToggleActive flips a member's active flag. The returned user carries the
// status the server actually stored.
func (c *Client) ToggleActive(ctx context.Context, token string, kind model.UserKind, id string) (model.User, error) {
	var out model.User
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   rosterPath(kind) + "/" + id + "/toggle-active",
		token:  token,
	}, &out)
	if err != nil {
		return model.User{}, err
	}
	return out, nil
}

// normalizeCreateUserErr rewrites duplicate-email rejections into the
// message the roster forms display. The upstream backend reports duplicates
// either as a 409 or as a validation message mentioning the email field.
func normalizeCreateUserErr(err error) error {
	if apperrors.IsConflict(err) {
		return apperrors.Conflict(model.DuplicateEmailMessage)
	}
	msg := strings.ToLower(apperrors.MessageOf(err))
	if apperrors.CodeOf(err) == apperrors.ErrCodeValidation &&
		(strings.Contains(msg, "duplicate") || strings.Contains(msg, "already")) &&
		strings.Contains(msg, "email") {
		return apperrors.Conflict(model.DuplicateEmailMessage)
	}
	return err
}
