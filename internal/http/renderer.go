package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the
// provided filesystem.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	renderer := &TemplateRenderer{logger: cfg.Logger}

	var t *template.Template
	t, err := template.New("root").Funcs(templateFuncs(&t)).ParseFS(cfg.TemplateFS,
		"*.tmpl",
		"pages/*.tmpl",
		"partials/*.tmpl",
	)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed", slog.Any("error", err))
		}
		return nil, err
	}
	renderer.t = t
	return renderer, nil
}

// templateFuncs builds the function map. The template pointer is filled in
// after parsing, so funcs that dispatch to other templates capture it by
// reference.
func templateFuncs(t **template.Template) template.FuncMap {
	return template.FuncMap{
		// renderContent dispatches the layout to the page's content template.
		"renderContent": func(currentPage string, data any) (template.HTML, error) {
			var buf bytes.Buffer
			if err := (*t).ExecuteTemplate(&buf, ContentTemplateFor(currentPage), data); err != nil {
				return "", err
			}
			return template.HTML(buf.String()), nil //nolint:gosec // rendered by our own templates
		},
		"formatDate": func(v any) string {
			return formatTime(v, "Jan 2, 2006")
		},
		"formatDateTime": func(v any) string {
			return formatTime(v, "Jan 2, 2006 15:04")
		},
		"currency": func(amount float64) string {
			return fmt.Sprintf("$%.2f", amount)
		},
		"add": func(a, b int) int { return a + b },
		// fieldErr looks up a field's validation message, tolerating pages
		// rendered with no Errors map at all.
		"fieldErr": func(errs any, key string) string {
			if m, ok := errs.(map[string]string); ok {
				return m[key]
			}
			return ""
		},
		// dict builds a map for passing multiple values to a partial.
		"dict": func(pairs ...any) (map[string]any, error) {
			if len(pairs)%2 != 0 {
				return nil, errors.New("dict requires an even number of arguments")
			}
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
				}
				m[key] = pairs[i+1]
			}
			return m, nil
		},
	}
}

// formatTime tolerates both time.Time and *time.Time, since optional
// timestamps arrive as pointers.
func formatTime(v any, layout string) string {
	switch ts := v.(type) {
	case time.Time:
		if ts.IsZero() {
			return ""
		}
		return ts.Format(layout)
	case *time.Time:
		if ts == nil || ts.IsZero() {
			return ""
		}
		return ts.Format(layout)
	default:
		return ""
	}
}

// RenderFull renders the full page (layout + page content).
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "layout", data)
}

// RenderError renders an error page using the error template.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "error-layout", data)
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, templateName, data); err != nil {
		r.logTemplateError(templateName, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		r.logTemplateError(templateName, err)
		return err
	}
	return nil
}

func (r *TemplateRenderer) logTemplateError(templateName string, err error) {
	if r.logger == nil || err == nil {
		return
	}
	r.logger.Error("template execution failed",
		slog.String("template", templateName),
		slog.Any("error", err),
	)
}
