package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports/portsmock"
	"github.com/lmsdesk/admin-ui/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRosterHandlers(t *testing.T) (*UIHandlers, *portsmock.MockRosterAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := portsmock.NewMockRosterAPI(ctrl)

	h := newTestHandlers(t)
	h.Instructors = service.NewRosterService(service.RosterServiceOptions{
		API:  api,
		Kind: model.UserKindInstructor,
	})
	return h, api
}

func detailRequest(target, id string) *http.Request {
	r := listRequest(target)
	r.SetPathValue("id", id)
	return r
}

func TestInstructorViewRendersFullRecord(t *testing.T) {
	h, api := newRosterHandlers(t)
	api.EXPECT().
		List(gomock.Any(), "token-1", model.UserKindInstructor).
		Return([]model.User{
			{ID: "a1", FirstName: "Noor", LastName: "Haddad", Email: "noor@example.com",
				Expertise: "Databases", Skills: []string{"SQL", "Go"}, IsActive: true},
			{ID: "b2", FirstName: "Sam", LastName: "Ng", Email: "sam@example.com"},
		}, nil)

	w := httptest.NewRecorder()
	h.InstructorView(w, detailRequest("/instructors/a1", "a1"))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h2>Noor Haddad</h2>")
	assert.Contains(t, body, "email=noor@example.com")
	assert.Contains(t, body, "expertise=Databases")
	assert.Contains(t, body, "skill=SQL;skill=Go;")
	assert.Contains(t, body, "active=true")
	assert.NotContains(t, body, "sam@example.com")
}

func TestInstructorViewUnknownIDNotFound(t *testing.T) {
	h, api := newRosterHandlers(t)
	api.EXPECT().
		List(gomock.Any(), "token-1", model.UserKindInstructor).
		Return([]model.User{{ID: "a1", Email: "noor@example.com"}}, nil)

	r := detailRequest("/instructors/zzz", "zzz")
	r.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	h.InstructorView(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInstructorViewUnauthorizedRedirects(t *testing.T) {
	h, api := newRosterHandlers(t)
	api.EXPECT().
		List(gomock.Any(), "token-1", model.UserKindInstructor).
		Return(nil, apperrors.Unauthorized("Unauthorized: Invalid credentials"))

	r := detailRequest("/instructors/a1", "a1")
	r.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	h.InstructorView(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login?redirect_uri=")
}

func TestInstructorViewUpstreamErrorRendersPage(t *testing.T) {
	h, api := newRosterHandlers(t)
	api.EXPECT().
		List(gomock.Any(), "token-1", model.UserKindInstructor).
		Return(nil, apperrors.Unavailable("Network error: Unable to connect to the server"))

	w := httptest.NewRecorder()
	h.InstructorView(w, detailRequest("/instructors/a1", "a1"))

	assert.Contains(t, w.Body.String(), "Network error: Unable to connect to the server")
}
