package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents a user role as reported by the LMS backend.
// Kept in string form for easy persistence in the session record.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

// Identity is the authenticated principal as returned by the LMS backend's
// identity endpoints (login and /auth/me).
type Identity struct {
	FirstName string
	LastName  string
	Email     string
	Role      Role
	Avatar    string
}

// IsAdmin reports whether the identity carries the administrator role.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// Session is the server-side record persisted for a signed-in administrator.
// ID is an opaque identifier stored in the browser cookie; Token is the
// bearer credential attached to every upstream LMS API call.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Identity returns the identity fields of the session.
func (s Session) Identity() Identity {
	return Identity{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Role:      s.Role,
		Avatar:    s.Avatar,
	}
}

// FullName renders the display name used in the header and activity views.
func (s Session) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	default:
		return s.FirstName + " " + s.LastName
	}
}

// IsAdmin reports whether the session belongs to a platform administrator.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
