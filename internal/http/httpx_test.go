package httpx

import (
	"log/slog"
	"testing"
	"testing/fstest"
	"time"

	domainauth "github.com/lmsdesk/admin-ui/internal/domain/auth"
	"github.com/stretchr/testify/require"
)

// testTemplateFS is a minimal template set exercising the same names the
// real templates define, so rendering paths run end to end in tests.
func testTemplateFS() fstest.MapFS {
	return fstest.MapFS{
		"layout.tmpl": &fstest.MapFile{Data: []byte(
			`{{define "layout"}}<title>{{.Title}}</title><h1>{{.PageTitle}}</h1>` +
				`{{if .Error}}<div class="alert">{{.ErrorMessage}}</div>{{end}}` +
				`{{renderContent .CurrentPage .}}{{end}}`,
		)},
		"login.tmpl": &fstest.MapFile{Data: []byte(
			`{{define "login"}}<title>{{.Title}}</title>` +
				`{{if .Error}}<div class="alert">{{.ErrorMessage}}</div>{{end}}` +
				`<form action="/login"><input name="email" value="{{.Email}}"></form>{{end}}`,
		)},
		"error.tmpl": &fstest.MapFile{Data: []byte(
			`{{define "error-layout"}}<h1>{{.PageTitle}}</h1><p>{{.Message}}</p>{{end}}`,
		)},
		"pages/dashboard.tmpl": &fstest.MapFile{Data: []byte(
			`{{define "dashboard-content"}}dashboard{{end}}`,
		)},
		"pages/instructors.tmpl": &fstest.MapFile{Data: []byte(
			`{{define "instructors-content"}}{{range .Users}}<tr>{{.Email}}</tr>{{end}}` +
				`{{if .TotalCount}}total={{.TotalCount}}{{end}}{{end}}` +
				`{{define "instructor-row"}}<tr id="instructor-{{.ID}}">{{.Email}}:{{.IsActive}}</tr>{{end}}`,
		)},
		"pages/roster_view.tmpl": &fstest.MapFile{Data: []byte(
			`{{define "roster-view-content"}}{{if .Error}}<div class="alert">{{.ErrorMessage}}</div>{{end}}` +
				`{{with .Member}}<h2>{{.FullName}}</h2>email={{.Email}}` +
				`{{if .Expertise}}expertise={{.Expertise}}{{end}}` +
				`{{range .Skills}}skill={{.}};{{end}}` +
				`active={{.IsActive}}{{end}}{{end}}`,
		)},
		"partials/list_field.tmpl": &fstest.MapFile{Data: []byte(
			`{{define "list-field-rows"}}{{$field := .Field}}` +
				`{{range $i, $v := .Rows}}<input name="{{$field}}" value="{{$v}}">{{end}}{{end}}`,
		)},
		"pages/instructor_form.tmpl": &fstest.MapFile{Data: []byte(
			`{{define "instructor-form-content"}}{{if .Error}}<div class="alert">{{.ErrorMessage}}</div>{{end}}` +
				`{{with .Errors}}{{range $k, $v := .}}[{{$k}}:{{$v}}]{{end}}{{end}}` +
				`{{with .FormData}}email={{.Email}}{{end}}{{end}}`,
		)},
	}
}

func newTestHandlers(t *testing.T) *UIHandlers {
	t.Helper()
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: testTemplateFS(),
		Logger:     slog.Default(),
	})
	require.NoError(t, err)
	return &UIHandlers{T: renderer, Logger: slog.Default()}
}

func testSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-1",
		Token:     "token-1",
		FirstName: "Pat",
		LastName:  "Admin",
		Email:     "pat@example.com",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}
