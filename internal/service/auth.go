package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainauth "github.com/lmsdesk/admin-ui/internal/domain/auth"
	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

// defaultSessionTTL bounds sessions whose bearer token carries no readable
// expiry claim.
const defaultSessionTTL = 24 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API        ports.AuthAPI
	Sessions   ports.SessionStore
	SessionTTL time.Duration
}

// AuthService orchestrates login, session restoration, and logout against
// the upstream LMS API, persisting sessions server-side.
type AuthService struct {
	api        ports.AuthAPI
	sessions   ports.SessionStore
	sessionTTL time.Duration
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		api:        opts.API,
		sessions:   opts.Sessions,
		sessionTTL: ttl,
	}
}

// Login exchanges credentials upstream and persists a new session. Nothing
// is stored when the upstream rejects the attempt.
func (s *AuthService) Login(ctx context.Context, creds ports.Credentials) (*domainauth.Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, apperrors.Validation("Email and password are required")
	}

	res, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("upstream login: %w", err)
	}

	session := domainauth.Session{
		ID:        uuid.NewString(),
		Token:     res.Token,
		FirstName: res.Identity.FirstName,
		LastName:  res.Identity.LastName,
		Email:     res.Identity.Email,
		Role:      res.Identity.Role,
		Avatar:    res.Identity.Avatar,
		ExpiresAt: s.tokenExpiry(res.Token),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &session, nil
}

// Restore re-verifies a stored session's bearer token against the upstream
// and refreshes the cached identity. Any verification failure removes the
// session; the caller treats that as not-authenticated, never as an error
// page.
func (s *AuthService) Restore(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	identity, err := s.api.Me(ctx, session.Token)
	if err != nil {
		if dErr := s.sessions.Delete(ctx, sessionID); dErr != nil {
			return nil, errors.Join(err, fmt.Errorf("delete session: %w", dErr))
		}
		return nil, fmt.Errorf("verify token: %w", err)
	}

	session.FirstName = identity.FirstName
	session.LastName = identity.LastName
	session.Email = identity.Email
	session.Role = identity.Role
	session.Avatar = identity.Avatar

	if err := s.sessions.Save(ctx, *session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID, cleaning up expired records.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// UpdateProfile pushes a profile edit upstream and syncs the stored session
// identity with the server-confirmed result.
func (s *AuthService) UpdateProfile(ctx context.Context, session *domainauth.Session, req model.UpdateDetailsRequest) (*domainauth.Session, error) {
	if session == nil {
		return nil, errors.New("session is required")
	}

	identity, err := s.api.UpdateDetails(ctx, session.Token, req)
	if err != nil {
		return nil, fmt.Errorf("update details: %w", err)
	}

	updated := *session
	updated.FirstName = identity.FirstName
	updated.LastName = identity.LastName
	updated.Email = identity.Email
	if identity.Avatar != "" {
		updated.Avatar = identity.Avatar
	}

	if err := s.sessions.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &updated, nil
}

// Logout removes a session. Removing a missing session is a no-op; the
// upstream is never called.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// tokenExpiry schedules session expiry as the earlier of the configured TTL
// and the bearer token's exp claim. The upstream signs and verifies tokens;
// the claim is read unverified here only to align the Redis TTL with the
// token lifetime.
func (s *AuthService) tokenExpiry(token string) time.Time {
	limit := time.Now().Add(s.sessionTTL)

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.After(time.Now()) && exp.Before(limit) {
			return exp.Time
		}
	}
	return limit
}
