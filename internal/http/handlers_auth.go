package httpx

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lmsdesk/admin-ui/internal/domain/auth"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

// safeRedirectPath validates a post-login redirect target. Only same-origin
// absolute paths are allowed; anything else falls back to the dashboard.
func safeRedirectPath(raw string) string {
	if raw == "" {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return u.String()
}

func (h *UIHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, sess *auth.Session) {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// LoginPage renders the login form. Already-authenticated users are sent
// straight to their destination.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	redirectTo := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	// Restore re-checks the token upstream, so a revoked account cannot
	// bounce straight back into the app from the login page.
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		if _, err := h.Auth.Restore(r.Context(), c.Value); err == nil {
			http.Redirect(w, r, redirectTo, http.StatusSeeOther)
			return
		}
		clearCookie(w, r, sessionCookieName, h.CookieDomain)
	}

	data := basePageData(r, PageMeta{Title: "Sign In", PageTitle: "Sign In", CurrentPage: PageLogin})
	data["RedirectURI"] = redirectTo
	h.renderLoginPage(w, r, data)
}

// LoginSubmit handles the login form post.
func (h *UIHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form submission.", "/")
		return
	}

	redirectTo := safeRedirectPath(r.PostFormValue("redirect_uri"))
	creds := ports.Credentials{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	sess, err := h.Auth.Login(r.Context(), creds)
	if err != nil {
		h.logger().Info("login rejected",
			slog.String("email", creds.Email),
			slog.String("code", string(apperrors.CodeOf(err))),
		)
		h.renderLoginError(w, r, apperrors.MessageOf(err), redirectTo)
		return
	}

	h.setSessionCookie(w, r, sess)

	if IsHTMX(r) {
		HTMX(w).Redirect(redirectTo)
		return
	}
	http.Redirect(w, r, redirectTo, http.StatusSeeOther)
}

func (h *UIHandlers) renderLoginError(w http.ResponseWriter, r *http.Request, msg, redirectTo string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	data := basePageData(r, PageMeta{Title: "Sign In", PageTitle: "Sign In", CurrentPage: PageLogin})
	data["Error"] = true
	data["ErrorMessage"] = msg
	data["RedirectURI"] = redirectTo
	data["Email"] = r.PostFormValue("email")
	h.renderLoginPage(w, r, data)
}

func (h *UIHandlers) renderLoginPage(w http.ResponseWriter, _ *http.Request, data map[string]any) {
	if err := h.T.renderTemplate(w, "login", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Logout clears the session cookie and drops the server-side session.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		if err := h.Auth.Logout(r.Context(), c.Value); err != nil {
			h.logger().Warn("session delete failed", slog.Any("error", err))
		}
	}
	clearCookie(w, r, sessionCookieName, h.CookieDomain)

	if IsHTMX(r) {
		HTMX(w).Redirect("/login")
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// AuthStatus reports the current session as JSON.
func (h *UIHandlers) AuthStatus(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          sess.Identity(),
	})
}
