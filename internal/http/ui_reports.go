package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
)

// RevenuePage renders the revenue report. Switching the timeframe selector
// issues a fresh fetch; the aggregation happens upstream.
func (h *UIHandlers) RevenuePage(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "Revenue", PageTitle: "Revenue", CurrentPage: PageRevenue}
	tf := model.ParseTimeframe(r.URL.Query().Get("timeframe"))

	report, err := h.Reports.Revenue(r.Context(), BearerToken(r.Context()), tf)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			Unauthorized(w, r)
			return
		}
		h.logger().Error("revenue report failed", slog.Any("error", err))
		data := NewTemplateData(r, meta).
			With("Timeframe", string(tf)).
			WithError(listErrorMessage(err, "Unable to load revenue data.")).
			Build()
		h.renderDashboardPage(w, r, data)
		return
	}

	data := NewTemplateData(r, meta).
		With("Timeframe", string(tf)).
		With("Report", report).
		Build()
	h.renderDashboardPage(w, r, data)
}

// MembershipsPage lists enrollments with the debounced name/course filter.
func (h *UIHandlers) MembershipsPage(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Enrollment]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context) ([]model.Enrollment, error) {
			return h.Reports.Enrollments(ctx, BearerToken(ctx))
		},
		SearchFields: func(e model.Enrollment) []string {
			fields := []string{e.StudentName(), e.CourseTitle}
			if e.Student != nil {
				fields = append(fields, e.Student.Email)
			}
			return fields
		},
		BasePath:     "/memberships",
		PageMeta:     PageMeta{Title: "Memberships", PageTitle: "Memberships", CurrentPage: PageMemberships},
		ItemsKey:     "Enrollments",
		ErrorMessage: "Unable to load memberships.",
	})
}

func (h *UIHandlers) InstructorActivityPage(w http.ResponseWriter, r *http.Request) {
	h.activityPage(w, r,
		PageMeta{Title: "Instructor Activity", PageTitle: "Instructor Activity", CurrentPage: PageInstructorActivity},
		h.Reports.InstructorActivity,
		"Unable to load instructor activity.",
	)
}

func (h *UIHandlers) StudentActivityPage(w http.ResponseWriter, r *http.Request) {
	h.activityPage(w, r,
		PageMeta{Title: "Student Activity", PageTitle: "Student Activity", CurrentPage: PageStudentActivity},
		h.Reports.StudentActivity,
		"Unable to load student activity.",
	)
}

func (h *UIHandlers) activityPage(
	w http.ResponseWriter,
	r *http.Request,
	meta PageMeta,
	fetch func(ctx context.Context, token string) ([]model.ActivityEntry, error),
	errMsg string,
) {
	HandleList(ListHandlerOpts[model.ActivityEntry]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context) ([]model.ActivityEntry, error) {
			return fetch(ctx, BearerToken(ctx))
		},
		SearchFields: func(e model.ActivityEntry) []string {
			return []string{e.Name, e.Email, e.Action}
		},
		EnrichData: func(b *TemplateDataBuilder, _ []model.ActivityEntry) {
			b.With("CurrentPagePath", r.URL.Path)
		},
		BasePath:     r.URL.Path,
		PageMeta:     meta,
		ItemsKey:     "Entries",
		ErrorMessage: errMsg,
	})
}
