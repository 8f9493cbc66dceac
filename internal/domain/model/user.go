//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"regexp"
	"strings"
	"time"
)

const minPasswordLen = 6

// DuplicateEmailMessage is shown when the backend rejects a new roster
// member because the email is already taken.
const DuplicateEmailMessage = "This email is already registered"

// objectIDPattern matches the 24-character hexadecimal identifiers issued by
// the LMS backend for every entity.
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsObjectID reports whether s is a valid LMS entity identifier.
func IsObjectID(s string) bool { return objectIDPattern.MatchString(s) }

// UserKind distinguishes instructor and student rosters, which share one
// structural shape but live behind separate upstream endpoints.
type UserKind string

const (
	UserKindInstructor UserKind = "instructor"
	UserKindStudent    UserKind = "student"
)

// User is a roster entry (instructor or student) as returned by the LMS
// backend. JSON tags mirror the upstream wire contract.
type User struct {
	ID        string     `json:"_id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Avatar    string     `json:"avatar,omitempty"`
	Expertise string     `json:"expertise,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	Skills    []string   `json:"skills,omitempty"`
	Interests []string   `json:"interests,omitempty"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// FullName renders the display name used in list rows and detail views.
func (u *User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// CreateUserRequest carries the payload for enrolling an instructor or a
// student. Skills/Interests are the multi-valued list fields of the form;
// blank rows are dropped at submission time, not while editing.
type CreateUserRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Expertise string   `json:"expertise,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// Normalize trims scalar fields and drops blank list entries.
func (r *CreateUserRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Expertise = strings.TrimSpace(r.Expertise)
	r.Bio = strings.TrimSpace(r.Bio)
	r.Skills = CompactList(r.Skills)
	r.Interests = CompactList(r.Interests)
}

// FieldErrors validates the request and returns per-field messages keyed by
// form field name. An empty map means the request is valid. The messages are
// part of the UI contract and must not be reworded.
func (r *CreateUserRequest) FieldErrors() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(r.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "Email is required"
	}
	if len(r.Password) < minPasswordLen {
		errs["password"] = "Password is required and must be at least 6 characters long"
	}
	return errs
}

// UpdateDetailsRequest updates the signed-in user's own profile via the
// upstream /auth/updatedetails endpoint.
type UpdateDetailsRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// FieldErrors validates the profile update form.
func (r *UpdateDetailsRequest) FieldErrors() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(r.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "Email is required"
	}
	return errs
}
