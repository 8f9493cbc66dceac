package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/service"
)

// rosterView bundles the page identity for one roster kind so instructors
// and students share the same handlers.
type rosterView struct {
	svc      *service.RosterService
	basePath string
	listMeta PageMeta
	formMeta PageMeta
	viewMeta PageMeta
	rowTmpl  string
	noun     string
}

func (h *UIHandlers) instructorsView() rosterView {
	return rosterView{
		svc:      h.Instructors,
		basePath: "/instructors",
		listMeta: PageMeta{Title: "Instructors", PageTitle: "Instructors", CurrentPage: PageInstructors},
		formMeta: PageMeta{Title: "New Instructor", PageTitle: "New Instructor", CurrentPage: PageInstructorForm},
		viewMeta: PageMeta{Title: "Instructor", PageTitle: "Instructor", CurrentPage: PageInstructorView},
		rowTmpl:  "instructor-row",
		noun:     "instructor",
	}
}

func (h *UIHandlers) studentsView() rosterView {
	return rosterView{
		svc:      h.Students,
		basePath: "/students",
		listMeta: PageMeta{Title: "Students", PageTitle: "Students", CurrentPage: PageStudents},
		formMeta: PageMeta{Title: "New Student", PageTitle: "New Student", CurrentPage: PageStudentForm},
		viewMeta: PageMeta{Title: "Student", PageTitle: "Student", CurrentPage: PageStudentView},
		rowTmpl:  "student-row",
		noun:     "student",
	}
}

func userSearchFields(u model.User) []string {
	return []string{u.FullName(), u.Email}
}

func (h *UIHandlers) InstructorsList(w http.ResponseWriter, r *http.Request) {
	h.rosterList(w, r, h.instructorsView())
}

func (h *UIHandlers) StudentsList(w http.ResponseWriter, r *http.Request) {
	h.rosterList(w, r, h.studentsView())
}

func (h *UIHandlers) rosterList(w http.ResponseWriter, r *http.Request, view rosterView) {
	HandleList(ListHandlerOpts[model.User]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context) ([]model.User, error) {
			return view.svc.List(ctx, BearerToken(ctx))
		},
		SearchFields: userSearchFields,
		BasePath:     view.basePath,
		PageMeta:     view.listMeta,
		ItemsKey:     "Users",
		ErrorMessage: "Unable to load " + view.noun + "s.",
	})
}

func (h *UIHandlers) InstructorView(w http.ResponseWriter, r *http.Request) {
	h.rosterDetail(w, r, h.instructorsView())
}

func (h *UIHandlers) StudentView(w http.ResponseWriter, r *http.Request) {
	h.rosterDetail(w, r, h.studentsView())
}

// rosterDetail renders one member's full record. The backend exposes no
// single-user read, so the record comes from the roster list.
func (h *UIHandlers) rosterDetail(w http.ResponseWriter, r *http.Request, view rosterView) {
	id := r.PathValue("id")

	user, err := h.findRosterUser(r.Context(), view, id)
	if err != nil {
		switch {
		case apperrors.IsUnauthorized(err):
			Unauthorized(w, r)
		case apperrors.IsNotFound(err):
			h.NotFound(w, r)
		default:
			h.logger().Error("roster member load failed", slog.String("id", id), slog.Any("error", err))
			data := NewTemplateData(r, view.viewMeta).
				WithError(listErrorMessage(err, "Unable to load the "+view.noun+".")).
				With("BasePath", view.basePath).
				With("Noun", view.noun).
				Build()
			h.renderDashboardPage(w, r, data)
		}
		return
	}

	meta := view.viewMeta
	meta.Title = user.FullName()
	meta.PageTitle = user.FullName()
	data := NewTemplateData(r, meta).
		With("Member", user).
		With("BasePath", view.basePath).
		With("Noun", view.noun).
		Build()
	h.renderDashboardPage(w, r, data)
}

func (h *UIHandlers) findRosterUser(ctx context.Context, view rosterView, id string) (*model.User, error) {
	users, err := view.svc.List(ctx, BearerToken(ctx))
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, apperrors.NotFound("User not found")
}

func (h *UIHandlers) InstructorNewForm(w http.ResponseWriter, r *http.Request) {
	h.rosterNewForm(w, r, h.instructorsView())
}

func (h *UIHandlers) StudentNewForm(w http.ResponseWriter, r *http.Request) {
	h.rosterNewForm(w, r, h.studentsView())
}

func (h *UIHandlers) rosterNewForm(w http.ResponseWriter, r *http.Request, view rosterView) {
	data := NewTemplateData(r, view.formMeta).
		With("Mode", FormModeCreate).
		With("BasePath", view.basePath).
		With("FormData", &model.CreateUserRequest{}).
		Build()
	h.renderDashboardPage(w, r, data)
}

func (h *UIHandlers) InstructorCreate(w http.ResponseWriter, r *http.Request) {
	h.rosterCreate(w, r, h.instructorsView())
}

func (h *UIHandlers) StudentCreate(w http.ResponseWriter, r *http.Request) {
	h.rosterCreate(w, r, h.studentsView())
}

func (h *UIHandlers) rosterCreate(w http.ResponseWriter, r *http.Request, view rosterView) {
	HandleForm(FormHandlerOpts[*model.CreateUserRequest]{
		W:          w,
		R:          r,
		Mode:       FormModeCreate,
		Parser:     parseCreateUserForm,
		Service:    rosterFormService{svc: view.svc},
		Renderer:   h.renderDashboardPage,
		SuccessURL: view.basePath,
		PageMeta:   view.formMeta,
		ExtraData:  map[string]any{"BasePath": view.basePath},
		HandleError: func(err error) (map[string]string, string) {
			// A duplicate email belongs on the email field, not the banner.
			if apperrors.IsConflict(err) {
				return map[string]string{"email": apperrors.MessageOf(err)}, errMsgFixBelow
			}
			return nil, ""
		},
	})
}

// parseCreateUserForm reads the enrollment form. List fields arrive as
// repeated inputs named skills/interests, one per row.
func parseCreateUserForm(r *http.Request) (*model.CreateUserRequest, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return &model.CreateUserRequest{}, map[string]string{"form": "Invalid form submission"}
	}

	req := &model.CreateUserRequest{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		Password:  r.PostFormValue("password"),
		Expertise: r.PostFormValue("expertise"),
		Bio:       r.PostFormValue("bio"),
		Skills:    r.PostForm["skills"],
		Interests: r.PostForm["interests"],
	}
	req.Normalize()
	return req, req.FieldErrors()
}

// rosterFormService adapts the roster service to the generic form handler.
// Rosters are create-only; members are deactivated, never edited here.
type rosterFormService struct {
	svc *service.RosterService
}

func (s rosterFormService) Create(ctx context.Context, token string, req *model.CreateUserRequest) (any, error) {
	return s.svc.Create(ctx, token, *req)
}

func (s rosterFormService) Update(_ context.Context, _, _ string, _ *model.CreateUserRequest) (any, error) {
	return nil, apperrors.Internal("roster members cannot be edited")
}

func (h *UIHandlers) InstructorToggleActive(w http.ResponseWriter, r *http.Request) {
	h.rosterToggleActive(w, r, h.instructorsView())
}

func (h *UIHandlers) StudentToggleActive(w http.ResponseWriter, r *http.Request) {
	h.rosterToggleActive(w, r, h.studentsView())
}

// rosterToggleActive flips the active flag and responds with the refreshed
// row rendered from the server-returned record.
func (h *UIHandlers) rosterToggleActive(w http.ResponseWriter, r *http.Request, view rosterView) {
	id := r.PathValue("id")

	user, err := view.svc.ToggleActive(r.Context(), BearerToken(r.Context()), id)
	if err != nil {
		switch {
		case apperrors.IsUnauthorized(err):
			Unauthorized(w, r)
		case apperrors.IsNotFound(err):
			http.NotFound(w, r)
		default:
			h.logger().Error("toggle active failed",
				slog.String("id", id),
				slog.Any("error", err),
			)
			http.Error(w, apperrors.MessageOf(err), http.StatusBadRequest)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.T.t.ExecuteTemplate(w, view.rowTmpl, user); err != nil {
		h.logger().Error("row render failed", slog.Any("error", err))
	}
}
