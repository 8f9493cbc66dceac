package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/lmsdesk/admin-ui/internal/domain/auth"
)

// sessionCookieName is the browser cookie carrying the opaque session ID.
const sessionCookieName = "session_id"

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionSource resolves a session cookie into a live session. Satisfied by
// *service.AuthService.
type SessionSource interface {
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// browserRequestKey is an unexported context key type for browser detection.
type browserRequestKey struct{}

// BrowserDetection returns a middleware that distinguishes browser requests
// from API requests so downstream handlers can pick HTML or JSON responses.
func BrowserDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), browserRequestKey{}, isBrowserRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// cookieDomainKey is an unexported context key type for the configured
// session-cookie domain.
type cookieDomainKey struct{}

// CookieSettings returns a middleware that records the configured cookie
// domain so cookie deletion carries the same attributes as cookie creation.
func CookieSettings(domain string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), cookieDomainKey{}, domain)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CookieDomainFromContext reports the configured session-cookie domain,
// empty when none was set.
func CookieDomainFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(cookieDomainKey{}).(string); ok {
		return val
	}
	return ""
}

// IsBrowserRequest returns true if the current request is from a browser.
func IsBrowserRequest(r *http.Request) bool {
	if val := r.Context().Value(browserRequestKey{}); val != nil {
		if isBrowser, ok := val.(bool); ok {
			return isBrowser
		}
	}
	return isBrowserRequest(r)
}

func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	if strings.HasPrefix(r.URL.Path, "/static/") {
		return false
	}
	if IsHTMX(r) {
		return true
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html")
}

// RequireAuthBrowser returns a middleware that requires a live session,
// evaluated on every request. Browser requests without one are redirected to
// the login page; API requests get a 401 JSON response. The session is
// injected into the request context for downstream handlers.
func RequireAuthBrowser(sessions SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessionFromRequest(r, sessions)
			if session == nil {
				Unauthorized(w, r)
				return
			}
			ctx := SetSessionInContext(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFromRequest resolves the session cookie, returning nil when absent
// or invalid.
func sessionFromRequest(r *http.Request, sessions SessionSource) *domainauth.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	session, err := sessions.GetSession(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return session
}

// Unauthorized is the single place that reacts to a missing or rejected
// session, whether detected by the guard middleware or by an upstream 401
// mid-request. It clears the session cookie, then redirects browsers to the
// login page and answers API callers with 401 JSON.
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, r, sessionCookieName, CookieDomainFromContext(r.Context()))

	if IsBrowserRequest(r) {
		redirectToLogin(w, r)
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "authentication_required",
		Err:     errors.New("authentication required"),
	})
}

// redirectToLogin sends browser requests to the login page with the current
// URL as redirect_uri so the user lands back where they were.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectPath := redirectPathForRequest(r)
	if redirectPath == "" {
		redirectPath = "/"
	}

	loginURL := "/login?redirect_uri=" + url.QueryEscape(redirectPath)
	if IsHTMX(r) {
		SetHXRedirect(w, loginURL)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

func redirectPathForRequest(r *http.Request) string {
	if IsHTMX(r) {
		if current := safeRedirectFromURL(r.Header.Get("Hx-Current-Url")); current != "" {
			return current
		}
		if referer := safeRedirectFromURL(r.Header.Get("Referer")); referer != "" {
			return referer
		}
	}
	return safeRedirectPath(r.URL.RequestURI())
}

func safeRedirectFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Host != "" && !u.IsAbs() {
		return ""
	}
	// For absolute URLs, use only the path/query portion to keep redirects
	// within the app.
	if u.IsAbs() {
		return safeRedirectPath(u.RequestURI())
	}
	return safeRedirectPath(raw)
}

// clearCookie expires a cookie, mirroring the attributes used when setting
// it so deletion works across browsers.
func clearCookie(w http.ResponseWriter, r *http.Request, name, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
