package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFormService struct {
	calls     atomic.Int64
	createErr error
}

func (s *stubFormService) Create(_ context.Context, _ string, req *model.CreateUserRequest) (any, error) {
	s.calls.Add(1)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return model.User{Email: req.Email}, nil
}

func (s *stubFormService) Update(_ context.Context, _, _ string, _ *model.CreateUserRequest) (any, error) {
	s.calls.Add(1)
	return nil, s.createErr
}

func formRequest(form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/instructors", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Hx-Request", "true")
	return r.WithContext(SetSessionInContext(r.Context(), testSession()))
}

func validInstructorForm() url.Values {
	return url.Values{
		"firstName": {"Ada"},
		"lastName":  {"Lovelace"},
		"email":     {"ada@example.com"},
		"password":  {"hunter22"},
	}
}

func runForm(t *testing.T, form url.Values, svc *stubFormService, onErr ErrorHandler) *httptest.ResponseRecorder {
	t.Helper()
	h := newTestHandlers(t)
	w := httptest.NewRecorder()

	HandleForm(FormHandlerOpts[*model.CreateUserRequest]{
		W:           w,
		R:           formRequest(form),
		Mode:        FormModeCreate,
		Parser:      parseCreateUserForm,
		Service:     svc,
		Renderer:    h.renderDashboardPage,
		SuccessURL:  "/instructors",
		PageMeta:    PageMeta{Title: "New Instructor", PageTitle: "New Instructor", CurrentPage: PageInstructorForm},
		HandleError: onErr,
	})
	return w
}

func TestHandleFormSuccessRedirects(t *testing.T) {
	svc := &stubFormService{}
	w := runForm(t, validInstructorForm(), svc, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "/instructors", w.Header().Get("Hx-Redirect"))
	assert.EqualValues(t, 1, svc.calls.Load())
}

func TestHandleFormValidationShortCircuits(t *testing.T) {
	form := validInstructorForm()
	form.Set("password", "tiny")
	svc := &stubFormService{}

	w := runForm(t, form, svc, nil)

	assert.Zero(t, svc.calls.Load(), "invalid form must not reach the service")
	body := w.Body.String()
	assert.Contains(t, body, "Password is required and must be at least 6 characters long")
	assert.Contains(t, body, "Please fix the errors below.")
	assert.Contains(t, body, "email=ada@example.com", "entered values survive the re-render")
}

func TestHandleFormConflictRendersOnEmailField(t *testing.T) {
	svc := &stubFormService{createErr: apperrors.Conflict(model.DuplicateEmailMessage)}

	w := runForm(t, validInstructorForm(), svc, func(err error) (map[string]string, string) {
		if apperrors.IsConflict(err) {
			return map[string]string{"email": apperrors.MessageOf(err)}, errMsgFixBelow
		}
		return nil, ""
	})

	body := w.Body.String()
	assert.Contains(t, body, "[email:"+model.DuplicateEmailMessage+"]")
	assert.Contains(t, body, errMsgFixBelow)
}

func TestHandleFormUpstreamValidationMessageVerbatim(t *testing.T) {
	svc := &stubFormService{createErr: apperrors.Validation("Expertise is too long")}

	w := runForm(t, validInstructorForm(), svc, nil)
	assert.Contains(t, w.Body.String(), "Expertise is too long")
}

func TestHandleFormUnauthorizedUsesCentralPolicy(t *testing.T) {
	svc := &stubFormService{createErr: apperrors.Unauthorized("Unauthorized: Invalid credentials")}

	w := runForm(t, validInstructorForm(), svc, nil)

	// htmx requests get the login redirect via header.
	assert.Contains(t, w.Header().Get("Hx-Redirect"), "/login?redirect_uri=")
}

func TestHandleFormUnknownErrorGenericMessage(t *testing.T) {
	svc := &stubFormService{createErr: apperrors.Internal("pq: deadlock")}

	w := runForm(t, validInstructorForm(), svc, nil)

	body := w.Body.String()
	assert.Contains(t, body, "Unable to save. Please try again.")
	assert.NotContains(t, body, "deadlock", "internal detail must not leak")
}

func TestHandleFormRejectsUnknownMode(t *testing.T) {
	h := newTestHandlers(t)
	w := httptest.NewRecorder()

	HandleForm(FormHandlerOpts[*model.CreateUserRequest]{
		W:        w,
		R:        formRequest(validInstructorForm()),
		Mode:     FormMode("bogus"),
		Parser:   parseCreateUserForm,
		Service:  &stubFormService{},
		Renderer: h.renderDashboardPage,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}
