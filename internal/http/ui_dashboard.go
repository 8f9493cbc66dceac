package httpx

import (
	"log/slog"
	"net/http"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
)

// Dashboard renders the landing page with the revenue and enrollment
// summaries fetched side by side.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Dashboard", PageTitle: "Dashboard", CurrentPage: PageDashboard}

	tf := model.ParseTimeframe(r.URL.Query().Get("timeframe"))
	summary, err := h.Reports.Dashboard(r.Context(), BearerToken(r.Context()), tf)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			Unauthorized(w, r)
			return
		}
		h.logger().Error("dashboard summary failed", slog.Any("error", err))
		data := NewTemplateData(r, meta).
			WithError(listErrorMessage(err, "Unable to load dashboard data.")).
			Build()
		h.renderDashboardPage(w, r, data)
		return
	}

	data := NewTemplateData(r, meta).
		With("Timeframe", string(tf)).
		With("Revenue", summary.Revenue).
		With("Enrollments", summary.Enrollments).
		Build()
	h.renderDashboardPage(w, r, data)
}
