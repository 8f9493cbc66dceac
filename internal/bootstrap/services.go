package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/lmsdesk/admin-ui/config"
	"github.com/lmsdesk/admin-ui/internal/adapters/lmsapi"
	redisadapter "github.com/lmsdesk/admin-ui/internal/adapters/redis"
	"github.com/lmsdesk/admin-ui/internal/domain/model"
	"github.com/lmsdesk/admin-ui/internal/service"
	"github.com/redis/go-redis/v9"
)

// ServiceContainer holds every domain service the HTTP layer consumes.
type ServiceContainer struct {
	Auth        *service.AuthService
	Instructors *service.RosterService
	Students    *service.RosterService
	Courses     *service.CourseService
	Support     *service.SupportService
	Reports     *service.ReportsService
}

// ServiceDeps contains dependencies for building the service container.
type ServiceDeps struct {
	Config *config.AppConfig
	Redis  redis.UniversalClient
	Logger *slog.Logger
}

// NewServices wires the upstream API client and the session store into the
// domain services.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	client, err := lmsapi.NewClient(lmsapi.Config{
		BaseURL: deps.Config.Upstream.BaseURL,
		Timeout: deps.Config.Upstream.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build lms api client: %w", err)
	}

	sessions := redisadapter.NewSessionStore(deps.Redis)

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			API:        client,
			Sessions:   sessions,
			SessionTTL: deps.Config.Session.TTL,
		}),
		Instructors: service.NewRosterService(service.RosterServiceOptions{
			API:  client,
			Kind: model.UserKindInstructor,
		}),
		Students: service.NewRosterService(service.RosterServiceOptions{
			API:  client,
			Kind: model.UserKindStudent,
		}),
		Courses: service.NewCourseService(service.CourseServiceOptions{API: client}),
		Support: service.NewSupportService(service.SupportServiceOptions{API: client}),
		Reports: service.NewReportsService(service.ReportsServiceOptions{API: client}),
	}, nil
}
