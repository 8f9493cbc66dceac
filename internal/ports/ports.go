package ports

// Package ports defines interfaces (hexagonal ports) for the upstream LMS
// API and session persistence. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"
	"io"
	"time"

	domainauth "github.com/lmsdesk/admin-ui/internal/domain/auth"
	"github.com/lmsdesk/admin-ui/internal/domain/model"
)

//go:generate mockgen -source=ports.go -destination=portsmock/mocks.go -package=portsmock

// Credentials carries a login attempt against the LMS backend.
type Credentials struct {
	Email    string
	Password string
}

// LoginResult is the upstream login response: a bearer token plus the
// authenticated identity.
type LoginResult struct {
	Token    string
	Identity domainauth.Identity
}

// AuthAPI is the upstream authentication surface.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token and identity.
	Login(ctx context.Context, creds Credentials) (LoginResult, error)

	// Me verifies a bearer token and returns the identity it belongs to.
	Me(ctx context.Context, token string) (domainauth.Identity, error)

	// UpdateDetails updates the signed-in user's own profile.
	UpdateDetails(ctx context.Context, token string, req model.UpdateDetailsRequest) (domainauth.Identity, error)
}

// RosterAPI manages the instructor and student rosters. The two rosters
// share one structural contract behind separate endpoint families selected
// by model.UserKind.
type RosterAPI interface {
	List(ctx context.Context, token string, kind model.UserKind) ([]model.User, error)
	Create(ctx context.Context, token string, kind model.UserKind, req model.CreateUserRequest) (model.User, error)

	// ToggleActive flips the active flag and returns the server-confirmed
	// user; callers must reflect the returned status, not the requested one.
	ToggleActive(ctx context.Context, token string, kind model.UserKind, id string) (model.User, error)
}

// CourseAPI is the upstream course CRUD surface. Method names are
// resource-qualified because one adapter implements every upstream port.
type CourseAPI interface {
	ListCourses(ctx context.Context, token string) ([]model.Course, error)
	GetCourse(ctx context.Context, token, id string) (model.Course, error)
	CreateCourse(ctx context.Context, token string, req model.CourseRequest) (model.Course, error)
	UpdateCourse(ctx context.Context, token, id string, req model.CourseRequest) (model.Course, error)
	DeleteCourse(ctx context.Context, token, id string) error

	// UploadThumbnail and UploadPromoVideo issue multipart uploads and
	// return the stored media URL.
	UploadThumbnail(ctx context.Context, token, id string, media Upload) (string, error)
	UploadPromoVideo(ctx context.Context, token, id string, media Upload) (string, error)
}

// Upload is a multipart file payload forwarded to the upstream API.
type Upload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// TicketRange bounds a ticket listing by creation date.
type TicketRange struct {
	Start time.Time
	End   time.Time
}

// SupportAPI covers support tickets and contact-form submissions.
type SupportAPI interface {
	ListTickets(ctx context.Context, token string, rng TicketRange) ([]model.Ticket, error)
	ResolveTicket(ctx context.Context, token, id string, req model.ResolveTicketRequest) (model.Ticket, error)

	// DownloadTicket streams the upstream-generated PDF for a ticket. The
	// returned reader must be closed by the caller.
	DownloadTicket(ctx context.Context, token, id string) (io.ReadCloser, string, error)

	ListContacts(ctx context.Context, token string) ([]model.Contact, error)
}

// AnalyticsAPI fetches server-aggregated reporting data.
type AnalyticsAPI interface {
	Revenue(ctx context.Context, token string, tf model.Timeframe) (model.RevenueReport, error)
	TotalEnrollments(ctx context.Context, token string) (model.EnrollmentTotals, error)
	Enrollments(ctx context.Context, token string) ([]model.Enrollment, error)
	InstructorActivity(ctx context.Context, token string) ([]model.ActivityEntry, error)
	StudentActivity(ctx context.Context, token string) ([]model.ActivityEntry, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
