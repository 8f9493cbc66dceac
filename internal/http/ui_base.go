package httpx

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lmsdesk/admin-ui/internal/service"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100

	themeCookieName = "theme"
	themeDark       = "dark"
	themeLight      = "light"
)

// UIHandlers serves the server-rendered admin pages.
type UIHandlers struct {
	T           *TemplateRenderer
	Auth        *service.AuthService
	Instructors *service.RosterService
	Students    *service.RosterService
	Courses     *service.CourseService
	Support     *service.SupportService
	Reports     *service.ReportsService

	CookieDomain string
	IsDev        bool
	Logger       *slog.Logger
}

func (h *UIHandlers) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageMeta carries per-page titles for layout rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

type pageOpts struct {
	Page     int
	PageSize int
}

// getPageParams extracts pagination parameters from the query string.
func getPageParams(q url.Values) (page, pageSize int) {
	page, pageSize = defaultPage, defaultPageSize

	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := q.Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxPageSize {
			pageSize = n
		}
	}
	return page, pageSize
}

// buildPageURL rebuilds the current URL with updated pagination params,
// preserving other query parameters but dropping htmx internals.
func buildPageURL(basePath string, current url.Values, opts pageOpts) string {
	q := url.Values{}
	for key, values := range current {
		if strings.HasPrefix(key, "hx-") {
			continue
		}
		for _, v := range values {
			if v == "" {
				continue
			}
			q.Add(key, v)
		}
	}
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("page_size", strconv.Itoa(opts.PageSize))
	return basePath + "?" + q.Encode()
}

// currentTheme reads the theme preference cookie, defaulting to light.
func currentTheme(r *http.Request) string {
	if c, err := r.Cookie(themeCookieName); err == nil && c.Value == themeDark {
		return themeDark
	}
	return themeLight
}

// basePageData assembles the fields every page template expects.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":       meta.Title,
		"PageTitle":   meta.PageTitle,
		"CurrentPage": meta.CurrentPage,
		"Theme":       currentTheme(r),
	}
	if sess := GetSessionFromContext(r.Context()); sess != nil {
		data["IsAuthenticated"] = true
		data["User"] = sess.Identity()
		data["UserName"] = sess.FullName()
	} else {
		data["IsAuthenticated"] = false
	}
	return data
}

// renderDashboardPage writes either the full layout or, for htmx partial
// requests, just the page content plus out-of-band title updates.
func (h *UIHandlers) renderDashboardPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	meta := PageMeta{}
	if v, ok := data["Title"].(string); ok {
		meta.Title = v
	}
	if v, ok := data["PageTitle"].(string); ok {
		meta.PageTitle = v
	}
	if v, ok := data["CurrentPage"].(string); ok {
		meta.CurrentPage = v
	}

	if WantsPartial(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		SetHXPushURL(w, r.URL.String())
		fmt.Fprintf(w, "<title>%s</title>\n", template.HTMLEscapeString(meta.Title))
		fmt.Fprintf(w, `<h1 id="page-title" hx-swap-oob="true">%s</h1>`+"\n", template.HTMLEscapeString(meta.PageTitle))
		if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(meta.CurrentPage), data); err != nil {
			h.logger().Error("partial render failed",
				slog.String("page", meta.CurrentPage),
				slog.Any("error", err),
			)
		}
		return
	}

	if err := h.T.RenderFull(w, r, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NotFound renders the 404 page for browser requests and JSON otherwise.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if !IsBrowserRequest(r) {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found"})
		return
	}
	w.WriteHeader(http.StatusNotFound)
	data := basePageData(r, PageMeta{Title: "Page Not Found", PageTitle: "Page Not Found"})
	data["Message"] = "The page you are looking for does not exist."
	if err := h.T.RenderError(w, r, data); err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}
