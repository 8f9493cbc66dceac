package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
)

const errMsgFixBelow = "Please fix the errors below."

// FormParser parses form data from an HTTP request and returns the parsed
// data along with any field-level validation errors. A non-empty error map
// stops the submission before any upstream call is made.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormService defines the interface for services that back the generic form
// handler. The token is the session's upstream bearer credential.
type FormService[T any] interface {
	Create(ctx context.Context, token string, req T) (any, error)
	Update(ctx context.Context, token, id string, req T) (any, error)
}

// FormRenderer renders the form template with the given data.
type FormRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// ErrorHandler maps a service error to field errors and/or a general error
// message. Return nil and "" to fall through to the default handling.
type ErrorHandler func(err error) (fieldErrors map[string]string, generalError string)

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	W        http.ResponseWriter
	R        *http.Request
	Mode     FormMode
	Parser   FormParser[T]
	Service  FormService[T]
	Renderer FormRenderer
	// SuccessURL is where htmx navigates after a successful save.
	SuccessURL string
	PageMeta   PageMeta
	// ExtraData is merged into the template data when re-rendering on error.
	ExtraData map[string]any
	// GetID extracts the record ID for edit mode (defaults to the {id} path value).
	GetID func(r *http.Request) string
	// HandleError maps domain-specific service errors before the defaults run.
	HandleError ErrorHandler
	// ErrorStatus is the status code for validation re-renders (default 200
	// so htmx still swaps the form body).
	ErrorStatus int
}

// HandleForm is the generic form handler for create and edit workflows. It
// parses, validates, calls the service, classifies failures, and redirects
// on success. Validation failures never reach the upstream API, and the
// re-rendered form keeps the entered values.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if !validateFormOptions(opts) {
		return
	}

	id, ok := checkFormID(opts)
	if !ok {
		return
	}

	data, fieldErrors := opts.Parser(opts.R)
	if len(fieldErrors) > 0 {
		opts.renderFormError(fieldErrors, "", data)
		return
	}

	if err := executeFormOperation(opts, id, data); err != nil {
		handleFormServiceError(opts, err, data)
		return
	}

	HTMX(opts.W).Redirect(opts.SuccessURL)
}

func validateFormOptions[T any](opts FormHandlerOpts[T]) bool {
	if opts.Parser == nil || opts.Service == nil || opts.Renderer == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return false
	}

	switch opts.Mode {
	case FormModeEdit, FormModeCreate:
		return true
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return false
	}
}

// checkFormID returns the ID for edit mode, or "" and true for create mode.
func checkFormID[T any](opts FormHandlerOpts[T]) (string, bool) {
	if opts.Mode != FormModeEdit {
		return "", true
	}

	id := getFormID(opts)
	if id == "" {
		http.NotFound(opts.W, opts.R)
		return "", false
	}
	return id, true
}

func executeFormOperation[T any](opts FormHandlerOpts[T], id string, data T) error {
	token := BearerToken(opts.R.Context())
	if opts.Mode == FormModeEdit {
		_, err := opts.Service.Update(opts.R.Context(), token, id, data)
		return err
	}
	_, err := opts.Service.Create(opts.R.Context(), token, data)
	return err
}

func getFormID[T any](opts FormHandlerOpts[T]) string {
	if opts.GetID != nil {
		return opts.GetID(opts.R)
	}
	return opts.R.PathValue("id")
}

// handleFormServiceError classifies errors from service Create/Update calls.
func handleFormServiceError[T any](opts FormHandlerOpts[T], err error, data T) {
	// Teardown mid-submit: the user navigated away, nothing to render.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		http.Error(opts.W, "request canceled", http.StatusRequestTimeout)
		return
	}

	if opts.HandleError != nil {
		fieldErrors, generalError := opts.HandleError(err)
		if fieldErrors != nil || generalError != "" {
			opts.renderFormError(fieldErrors, generalError, data)
			return
		}
	}

	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeUnauthorized:
		Unauthorized(opts.W, opts.R)
	case apperrors.ErrCodeConflict, apperrors.ErrCodeValidation, apperrors.ErrCodeUnavailable:
		// Upstream messages render verbatim; the conflict rewrite happened
		// at the adapter.
		opts.renderFormError(nil, apperrors.MessageOf(err), data)
	case apperrors.ErrCodeCanceled:
		http.Error(opts.W, "request canceled", http.StatusRequestTimeout)
	default:
		opts.renderFormError(nil, "Unable to save. Please try again.", data)
	}
}

// renderFormError re-renders the form with errors, keeping the entered data.
func (fh FormHandlerOpts[T]) renderFormError(fieldErrors map[string]string, generalError string, data T) {
	if fh.ErrorStatus != 0 && len(fieldErrors) > 0 {
		fh.W.WriteHeader(fh.ErrorStatus)
	}

	templateData := NewTemplateData(fh.R, fh.PageMeta)

	if len(fieldErrors) > 0 {
		templateData.WithFieldErrors(fieldErrors)
	}
	if generalError != "" {
		templateData.WithError(generalError)
	} else if len(fieldErrors) > 0 {
		templateData.WithError(errMsgFixBelow)
	}

	templateData.With("Mode", fh.Mode)

	for k, v := range fh.ExtraData {
		templateData.With(k, v)
	}

	// FormData exposes the parsed struct so templates can repopulate inputs.
	templateData.With("FormData", data)

	fh.Renderer(fh.W, fh.R, templateData.Build())
}
