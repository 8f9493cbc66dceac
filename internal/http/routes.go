package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/lmsdesk/admin-ui/internal/service"
)

// RouterServices bundles everything the router needs.
type RouterServices struct {
	Logger *slog.Logger
	Auth   *service.AuthService
	UI     *UIHandlers

	// StaticFS serves /static/ assets. Nil disables the route.
	StaticFS fs.FS
}

// NewRouter builds the full HTTP handler: public routes, the authenticated
// app behind the session guard, and the middleware chain.
func NewRouter(svcs RouterServices) http.Handler {
	mux := http.NewServeMux()

	registerPublicRoutes(mux, svcs)
	registerAppRoutes(mux, svcs)

	var handler http.Handler = mux
	handler = BrowserDetection()(handler)
	if svcs.UI != nil {
		handler = CookieSettings(svcs.UI.CookieDomain)(handler)
	}
	handler = Recover(svcs.Logger)(handler)
	handler = Logging(svcs.Logger)(handler)
	return handler
}

func registerPublicRoutes(mux *http.ServeMux, svcs RouterServices) {
	ui := svcs.UI

	mux.HandleFunc("GET /login", ui.LoginPage)
	mux.HandleFunc("POST /login", ui.LoginSubmit)
	mux.HandleFunc("GET /healthz", Healthz)

	if svcs.StaticFS != nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(svcs.StaticFS)))
	}
}

// registerAppRoutes mounts every authenticated page behind the session
// guard. The guard runs per request; there is no per-route opt-out.
func registerAppRoutes(mux *http.ServeMux, svcs RouterServices) {
	ui := svcs.UI
	app := http.NewServeMux()

	app.HandleFunc("GET /{$}", ui.Dashboard)
	app.HandleFunc("POST /logout", ui.Logout)
	app.HandleFunc("GET /auth/status", ui.AuthStatus)

	app.HandleFunc("GET /instructors", ui.InstructorsList)
	app.HandleFunc("GET /instructors/new", ui.InstructorNewForm)
	app.HandleFunc("GET /instructors/{id}", ui.InstructorView)
	app.HandleFunc("POST /instructors", ui.InstructorCreate)
	app.HandleFunc("POST /instructors/{id}/toggle-active", ui.InstructorToggleActive)

	app.HandleFunc("GET /students", ui.StudentsList)
	app.HandleFunc("GET /students/new", ui.StudentNewForm)
	app.HandleFunc("GET /students/{id}", ui.StudentView)
	app.HandleFunc("POST /students", ui.StudentCreate)
	app.HandleFunc("POST /students/{id}/toggle-active", ui.StudentToggleActive)

	app.HandleFunc("GET /courses", ui.CoursesList)
	app.HandleFunc("GET /courses/new", ui.CourseNewForm)
	app.HandleFunc("POST /courses", ui.CourseCreate)
	app.HandleFunc("GET /courses/{id}/edit", ui.CourseEditForm)
	app.HandleFunc("POST /courses/{id}", ui.CourseUpdate)
	app.HandleFunc("POST /courses/{id}/delete", ui.CourseDelete)
	app.HandleFunc("POST /courses/{id}/thumbnail", ui.CourseUploadThumbnail)
	app.HandleFunc("POST /courses/{id}/promo-video", ui.CourseUploadPromoVideo)
	app.HandleFunc("POST /forms/list-field", ui.ListFieldOp)

	app.HandleFunc("GET /memberships", ui.MembershipsPage)
	app.HandleFunc("GET /revenue", ui.RevenuePage)
	app.HandleFunc("GET /activity/instructors", ui.InstructorActivityPage)
	app.HandleFunc("GET /activity/students", ui.StudentActivityPage)

	app.HandleFunc("GET /tickets", ui.TicketsList)
	app.HandleFunc("GET /tickets/{id}", ui.TicketView)
	app.HandleFunc("POST /tickets/{id}/resolve", ui.TicketResolve)
	app.HandleFunc("GET /tickets/{id}/download", ui.TicketDownload)
	app.HandleFunc("GET /contacts", ui.ContactsList)

	app.HandleFunc("GET /settings", ui.SettingsPage)
	app.HandleFunc("POST /settings", ui.SettingsUpdate)
	app.HandleFunc("POST /settings/theme", ui.ThemeToggle)

	guarded := RequireAuthBrowser(svcs.Auth)(notFoundHandler(app, ui))
	mux.Handle("/", guarded)
}

// notFoundHandler replaces the mux's plain-text 404 with the app's own
// not-found page.
func notFoundHandler(next *http.ServeMux, ui *UIHandlers) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pattern := next.Handler(r); pattern == "" {
			ui.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
