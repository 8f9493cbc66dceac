package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports"
	"github.com/lmsdesk/admin-ui/internal/service"
)

const (
	coursesBasePath  = "/courses"
	maxUploadBytes   = 32 << 20
	listFieldMaxRows = 50
)

func courseSearchFields(c model.Course) []string {
	return []string{c.Title, c.Category, c.SubCategory}
}

// CoursesList renders the course catalog with search and pagination.
func (h *UIHandlers) CoursesList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Course]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context) ([]model.Course, error) {
			return h.Courses.List(ctx, BearerToken(ctx))
		},
		SearchFields: courseSearchFields,
		BasePath:     coursesBasePath,
		PageMeta:     PageMeta{Title: "Courses", PageTitle: "Courses", CurrentPage: PageCourses},
		ItemsKey:     "Courses",
		ErrorMessage: "Unable to load courses.",
	})
}

func (h *UIHandlers) CourseNewForm(w http.ResponseWriter, r *http.Request) {
	meta := PageMeta{Title: "New Course", PageTitle: "New Course", CurrentPage: PageCourseForm}

	instructors, err := h.Instructors.List(r.Context(), BearerToken(r.Context()))
	if err != nil {
		h.renderCourseFormError(w, r, meta, err)
		return
	}

	data := NewTemplateData(r, meta).
		With("Mode", FormModeCreate).
		With("Instructors", instructors).
		With("FormData", &model.CourseRequest{}).
		Build()
	h.renderDashboardPage(w, r, data)
}

func (h *UIHandlers) CourseEditForm(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	meta := PageMeta{Title: "Edit Course", PageTitle: "Edit Course", CurrentPage: PageCourseForm}

	course, err := h.Courses.Get(r.Context(), BearerToken(r.Context()), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			h.NotFound(w, r)
			return
		}
		h.renderCourseFormError(w, r, meta, err)
		return
	}

	instructors, err := h.Instructors.List(r.Context(), BearerToken(r.Context()))
	if err != nil {
		h.renderCourseFormError(w, r, meta, err)
		return
	}

	data := NewTemplateData(r, meta).
		With("Mode", FormModeEdit).
		With("CourseID", course.ID).
		With("Course", course).
		With("Instructors", instructors).
		With("FormData", courseToRequest(course)).
		Build()
	h.renderDashboardPage(w, r, data)
}

func (h *UIHandlers) renderCourseFormError(w http.ResponseWriter, r *http.Request, meta PageMeta, err error) {
	if apperrors.IsUnauthorized(err) {
		Unauthorized(w, r)
		return
	}
	h.logger().Error("course form load failed", slog.Any("error", err))
	data := NewTemplateData(r, meta).
		WithError(listErrorMessage(err, "Unable to load the course form.")).
		Build()
	h.renderDashboardPage(w, r, data)
}

func courseToRequest(c model.Course) *model.CourseRequest {
	return &model.CourseRequest{
		Title:            c.Title,
		Subtitle:         c.Subtitle,
		Description:      c.Description,
		InstructorID:     c.InstructorID,
		Category:         c.Category,
		SubCategory:      c.SubCategory,
		Language:         c.Language,
		Level:            c.Level,
		Duration:         c.Duration,
		Price:            c.Price,
		DiscountPrice:    c.DiscountPrice,
		Prerequisites:    c.Prerequisites,
		LearningOutcomes: c.LearningOutcomes,
	}
}

func (h *UIHandlers) CourseCreate(w http.ResponseWriter, r *http.Request) {
	h.courseSave(w, r, FormModeCreate)
}

func (h *UIHandlers) CourseUpdate(w http.ResponseWriter, r *http.Request) {
	h.courseSave(w, r, FormModeEdit)
}

func (h *UIHandlers) courseSave(w http.ResponseWriter, r *http.Request, mode FormMode) {
	meta := PageMeta{Title: "New Course", PageTitle: "New Course", CurrentPage: PageCourseForm}
	if mode == FormModeEdit {
		meta = PageMeta{Title: "Edit Course", PageTitle: "Edit Course", CurrentPage: PageCourseForm}
	}

	extra := map[string]any{}
	if instructors, err := h.Instructors.List(r.Context(), BearerToken(r.Context())); err == nil {
		extra["Instructors"] = instructors
	}
	if mode == FormModeEdit {
		extra["CourseID"] = r.PathValue("id")
	}

	HandleForm(FormHandlerOpts[*model.CourseRequest]{
		W:          w,
		R:          r,
		Mode:       mode,
		Parser:     parseCourseForm,
		Service:    courseFormService{svc: h.Courses},
		Renderer:   h.renderDashboardPage,
		SuccessURL: coursesBasePath,
		PageMeta:   meta,
		ExtraData:  extra,
	})
}

// parseCourseForm reads the course form. Numeric fields reject garbage
// before anything reaches the backend.
func parseCourseForm(r *http.Request) (*model.CourseRequest, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return &model.CourseRequest{}, map[string]string{"form": "Invalid form submission"}
	}

	req := &model.CourseRequest{
		Title:            r.PostFormValue("title"),
		Subtitle:         r.PostFormValue("subtitle"),
		Description:      r.PostFormValue("description"),
		InstructorID:     r.PostFormValue("instructorId"),
		Category:         r.PostFormValue("category"),
		SubCategory:      r.PostFormValue("subCategory"),
		Language:         r.PostFormValue("language"),
		Level:            r.PostFormValue("level"),
		Prerequisites:    r.PostForm["prerequisites"],
		LearningOutcomes: r.PostForm["learningOutcomes"],
	}

	numErrs := map[string]string{}
	req.Duration = parseFloatField(r, "duration", "Duration must be a number", numErrs)
	req.Price = parseFloatField(r, "price", "Price must be a number", numErrs)
	req.DiscountPrice = parseFloatField(r, "discountPrice", "Discount price must be a number", numErrs)

	req.Normalize()

	errs := req.FieldErrors()
	for field, msg := range numErrs {
		errs[field] = msg
	}
	return req, errs
}

func parseFloatField(r *http.Request, field, badMsg string, errs map[string]string) float64 {
	raw := strings.TrimSpace(r.PostFormValue(field))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs[field] = badMsg
		return 0
	}
	return v
}

type courseFormService struct {
	svc *service.CourseService
}

func (s courseFormService) Create(ctx context.Context, token string, req *model.CourseRequest) (any, error) {
	return s.svc.Create(ctx, token, *req)
}

func (s courseFormService) Update(ctx context.Context, token, id string, req *model.CourseRequest) (any, error) {
	return s.svc.Update(ctx, token, id, *req)
}

// CourseDelete removes a course and sends the client back to the catalog.
func (h *UIHandlers) CourseDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.Courses.Delete(r.Context(), BearerToken(r.Context()), id); err != nil {
		switch {
		case apperrors.IsUnauthorized(err):
			Unauthorized(w, r)
		case apperrors.IsNotFound(err):
			http.NotFound(w, r)
		default:
			h.logger().Error("course delete failed",
				slog.String("id", id),
				slog.Any("error", err),
			)
			http.Error(w, apperrors.MessageOf(err), http.StatusBadRequest)
		}
		return
	}

	if IsHTMX(r) {
		HTMX(w).Redirect(coursesBasePath)
		return
	}
	http.Redirect(w, r, coursesBasePath, http.StatusSeeOther)
}

// listFields names every multi-row form field the list-op endpoint serves.
var listFields = map[string]bool{
	"prerequisites":    true,
	"learningOutcomes": true,
	"skills":           true,
	"interests":        true,
}

// ListFieldOp applies one list-row transition (append, set, remove) and
// re-renders the rows partial for the htmx swap.
func (h *UIHandlers) ListFieldOp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	field := r.PostFormValue("field")
	if !listFields[field] {
		http.Error(w, "unknown list field", http.StatusBadRequest)
		return
	}

	rows := r.PostForm[field]
	if len(rows) > listFieldMaxRows {
		rows = rows[:listFieldMaxRows]
	}

	op := model.ListOp{Kind: model.ListOpKind(r.PostFormValue("op"))}
	if v := r.PostFormValue("index"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			op.Index = n
		}
	}
	op.Value = r.PostFormValue("value")

	rows = model.ApplyListOp(rows, op)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := h.T.t.ExecuteTemplate(w, "list-field-rows", map[string]any{
		"Field": field,
		"Rows":  rows,
	})
	if err != nil {
		h.logger().Error("list field render failed", slog.Any("error", err))
	}
}

// CourseUploadThumbnail replaces a course's thumbnail image.
func (h *UIHandlers) CourseUploadThumbnail(w http.ResponseWriter, r *http.Request) {
	h.courseUpload(w, r, "thumbnail", h.Courses.UploadThumbnail)
}

// CourseUploadPromoVideo replaces a course's promotional video.
func (h *UIHandlers) CourseUploadPromoVideo(w http.ResponseWriter, r *http.Request) {
	h.courseUpload(w, r, "video", h.Courses.UploadPromoVideo)
}

type uploadFunc func(ctx context.Context, token, id string, media ports.Upload) (string, error)

func (h *UIHandlers) courseUpload(w http.ResponseWriter, r *http.Request, field string, upload uploadFunc) {
	id := r.PathValue("id")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "upload too large or malformed", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := upload(r.Context(), BearerToken(r.Context()), id, ports.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	})
	if err != nil {
		switch {
		case apperrors.IsUnauthorized(err):
			Unauthorized(w, r)
		case apperrors.IsNotFound(err):
			http.NotFound(w, r)
		default:
			h.logger().Error("course media upload failed",
				slog.String("id", id),
				slog.String("field", field),
				slog.Any("error", err),
			)
			http.Error(w, apperrors.MessageOf(err), http.StatusBadRequest)
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}
