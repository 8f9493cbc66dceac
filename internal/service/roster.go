package service

import (
	"context"
	"fmt"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

// RosterServiceOptions groups dependencies for RosterService.
type RosterServiceOptions struct {
	API  ports.RosterAPI
	Kind model.UserKind
}

// RosterService manages one roster (instructors or students). Two instances
// share the implementation; the kind selects the upstream endpoint family.
type RosterService struct {
	api  ports.RosterAPI
	kind model.UserKind
}

// NewRosterService constructs a roster service for the given kind.
func NewRosterService(opts RosterServiceOptions) *RosterService {
	return &RosterService{api: opts.API, kind: opts.Kind}
}

// Kind reports which roster this service manages.
func (s *RosterService) Kind() model.UserKind { return s.kind }

// List fetches the full roster snapshot. Search filtering happens at the
// presentation layer over this snapshot, not upstream.
func (s *RosterService) List(ctx context.Context, token string) ([]model.User, error) {
	users, err := s.api.List(ctx, token, s.kind)
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", s.kind, err)
	}
	return users, nil
}

// Create enrolls a new roster member. The request must already be validated;
// upstream rejections come back typed for the form layer.
func (s *RosterService) Create(ctx context.Context, token string, req model.CreateUserRequest) (model.User, error) {
	req.Normalize()
	user, err := s.api.Create(ctx, token, s.kind, req)
	if err != nil {
		return model.User{}, fmt.Errorf("create %s: %w", s.kind, err)
	}
	return user, nil
}

// ToggleActive flips a member's active flag and returns the stored state.
// Callers render the returned record; the requested state is advisory only.
func (s *RosterService) ToggleActive(ctx context.Context, token, id string) (model.User, error) {
	if !model.IsObjectID(id) {
		return model.User{}, fmt.Errorf("toggle %s: invalid id %q", s.kind, id)
	}
	user, err := s.api.ToggleActive(ctx, token, s.kind, id)
	if err != nil {
		return model.User{}, fmt.Errorf("toggle %s: %w", s.kind, err)
	}
	return user, nil
}
