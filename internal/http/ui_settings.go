package httpx

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
)

var settingsMeta = PageMeta{Title: "Settings", PageTitle: "Settings", CurrentPage: PageSettings}

// SettingsPage renders the profile form prefilled from the session.
func (h *UIHandlers) SettingsPage(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		Unauthorized(w, r)
		return
	}

	data := NewTemplateData(r, settingsMeta).
		With("FormData", &model.UpdateDetailsRequest{
			FirstName: sess.FirstName,
			LastName:  sess.LastName,
			Email:     sess.Email,
		}).
		Build()
	h.renderDashboardPage(w, r, data)
}

// SettingsUpdate saves profile changes upstream and syncs the session so the
// header reflects the new name immediately.
func (h *UIHandlers) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		Unauthorized(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req := model.UpdateDetailsRequest{
		FirstName: strings.TrimSpace(r.PostFormValue("firstName")),
		LastName:  strings.TrimSpace(r.PostFormValue("lastName")),
		Email:     strings.TrimSpace(r.PostFormValue("email")),
	}

	if errs := req.FieldErrors(); len(errs) > 0 {
		data := NewTemplateData(r, settingsMeta).
			WithFieldErrors(errs).
			WithError(errMsgFixBelow).
			With("FormData", &req).
			Build()
		h.renderDashboardPage(w, r, data)
		return
	}

	updated, err := h.Auth.UpdateProfile(r.Context(), sess, req)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			Unauthorized(w, r)
			return
		}
		h.logger().Error("profile update failed", slog.Any("error", err))
		data := NewTemplateData(r, settingsMeta).
			WithError(apperrors.MessageOf(err)).
			With("FormData", &req).
			Build()
		h.renderDashboardPage(w, r, data)
		return
	}

	// Render against the refreshed session so the header name is current.
	r = r.WithContext(SetSessionInContext(r.Context(), updated))
	data := NewTemplateData(r, settingsMeta).
		With("Success", "Profile updated.").
		With("FormData", &model.UpdateDetailsRequest{
			FirstName: updated.FirstName,
			LastName:  updated.LastName,
			Email:     updated.Email,
		}).
		Build()
	h.renderDashboardPage(w, r, data)
}

// ThemeToggle flips the light/dark preference. The cookie is long-lived so
// the choice survives sessions.
func (h *UIHandlers) ThemeToggle(w http.ResponseWriter, r *http.Request) {
	next := themeDark
	if currentTheme(r) == themeDark {
		next = themeLight
	}

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookieName,
		Value:    next,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})

	if IsHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}
