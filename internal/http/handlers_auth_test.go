package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	domainauth "github.com/lmsdesk/admin-ui/internal/domain/auth"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports"
	"github.com/lmsdesk/admin-ui/internal/ports/portsmock"
	"github.com/lmsdesk/admin-ui/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthHandlers(t *testing.T) (*UIHandlers, *portsmock.MockAuthAPI, *portsmock.MockSessionStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := portsmock.NewMockAuthAPI(ctrl)
	store := portsmock.NewMockSessionStore(ctrl)

	h := newTestHandlers(t)
	h.Auth = service.NewAuthService(service.AuthServiceOptions{
		API:      api,
		Sessions: store,
	})
	return h, api, store
}

func postLogin(form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Accept", "text/html")
	return r
}

func TestLoginSubmitSetsCookieAndRedirects(t *testing.T) {
	h, api, store := newAuthHandlers(t)

	api.EXPECT().
		Login(gomock.Any(), ports.Credentials{Email: "pat@example.com", Password: "hunter22"}).
		Return(ports.LoginResult{
			Token:    "jwt-token",
			Identity: domainauth.Identity{FirstName: "Pat", Email: "pat@example.com", Role: domainauth.RoleAdmin},
		}, nil)
	store.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)

	w := httptest.NewRecorder()
	h.LoginSubmit(w, postLogin(url.Values{
		"email":        {"pat@example.com"},
		"password":     {"hunter22"},
		"redirect_uri": {"/courses"},
	}))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/courses", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	var sessionCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == sessionCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	assert.NotEmpty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
	assert.Positive(t, sessionCookie.MaxAge, "cookie lifetime follows session expiry")
}

func TestLoginSubmitRejectedShowsUpstreamMessage(t *testing.T) {
	h, api, _ := newAuthHandlers(t)

	api.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(ports.LoginResult{}, apperrors.Unauthorized("Unauthorized: Invalid credentials"))

	w := httptest.NewRecorder()
	h.LoginSubmit(w, postLogin(url.Values{
		"email":    {"pat@example.com"},
		"password": {"wrong-pass"},
	}))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Unauthorized: Invalid credentials")
	assert.Contains(t, body, `value="pat@example.com"`, "email field keeps its value")
}

func TestLoginSubmitNetworkFailureMessage(t *testing.T) {
	h, api, _ := newAuthHandlers(t)

	api.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(ports.LoginResult{}, apperrors.Unavailable("Network error: Unable to connect to the server"))

	w := httptest.NewRecorder()
	h.LoginSubmit(w, postLogin(url.Values{
		"email":    {"pat@example.com"},
		"password": {"hunter22"},
	}))

	assert.Contains(t, w.Body.String(), "Network error: Unable to connect to the server")
}

func TestLoginSubmitSanitizesRedirect(t *testing.T) {
	h, api, store := newAuthHandlers(t)

	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(ports.LoginResult{Token: "tok"}, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	w := httptest.NewRecorder()
	h.LoginSubmit(w, postLogin(url.Values{
		"email":        {"pat@example.com"},
		"password":     {"hunter22"},
		"redirect_uri": {"https://evil.example.com/phish"},
	}))

	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestLogoutClearsCookieAndSession(t *testing.T) {
	h, _, store := newAuthHandlers(t)

	store.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)

	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.Header.Set("Accept", "text/html")
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	w := httptest.NewRecorder()

	h.Logout(w, r)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestAuthStatus(t *testing.T) {
	h := newTestHandlers(t)

	t.Run("authenticated", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		r = r.WithContext(SetSessionInContext(r.Context(), testSession()))
		w := httptest.NewRecorder()

		h.AuthStatus(w, r)

		assert.Contains(t, w.Body.String(), `"authenticated":true`)
		assert.Contains(t, w.Body.String(), "pat@example.com")
	})

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.AuthStatus(w, httptest.NewRequest(http.MethodGet, "/auth/status", nil))

		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})
}

