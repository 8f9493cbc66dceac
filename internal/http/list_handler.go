package httpx

import (
	"context"
	"net/http"

	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
)

// SnapshotFetcher fetches the full collection for a list view. One fetch per
// page load; refetches happen only through explicit navigation.
type SnapshotFetcher[T any] func(ctx context.Context) ([]T, error)

// SearchFields designates the fields of an item the search input matches
// against. Nil disables searching for the view.
type SearchFields[T any] func(item T) []string

// DataEnricher lets a view add custom data to the template after the
// snapshot is fetched and filtered.
type DataEnricher[T any] func(builder *TemplateDataBuilder, items []T)

// ListHandlerOpts contains all options for the generic list handler.
type ListHandlerOpts[T any] struct {
	// Handler is the UIHandlers instance for rendering (required).
	Handler *UIHandlers
	W       http.ResponseWriter
	R       *http.Request
	// Fetcher retrieves the snapshot (required).
	Fetcher SnapshotFetcher[T]
	// SearchFields enables the in-process substring filter when set. The
	// filter narrows the fetched snapshot; it never refetches.
	SearchFields SearchFields[T]
	// EnrichData optionally adds custom data after fetch and filter.
	EnrichData DataEnricher[T]
	// BasePath is the base URL path for pagination links.
	BasePath string
	// PageMeta contains page metadata for rendering.
	PageMeta PageMeta
	// ItemsKey is the template data key for the page of items.
	ItemsKey string
	// ErrorMessage is shown when the fetch fails for a reason that carries
	// no message of its own. Recovery is a page reload.
	ErrorMessage string
}

// HandleList is the generic list view handler: one snapshot fetch, local
// search filtering, pagination of the filtered snapshot, and error rendering
// in a single place.
func HandleList[T any](opts ListHandlerOpts[T]) {
	if opts.W == nil || opts.R == nil || opts.Handler == nil || opts.Fetcher == nil {
		if opts.W != nil {
			http.Error(opts.W, "Internal configuration error", http.StatusInternalServerError)
		}
		return
	}

	page, pageSize := getPageParams(opts.R.URL.Query())
	query := SearchQuery(opts.R.URL.Query())

	items, err := opts.Fetcher(opts.R.Context())
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			Unauthorized(opts.W, opts.R)
			return
		}
		opts.renderListError(page, pageSize, listErrorMessage(err, opts.ErrorMessage))
		return
	}

	filtered := FilterItems(items, query, opts.SearchFields)
	window, pg := paginate(filtered, page, pageSize)
	pg.BasePath = opts.BasePath

	builder := NewTemplateData(opts.R, opts.PageMeta).
		WithPagination(pg).
		With(opts.ItemsKey, window).
		With("Query", query)

	if opts.EnrichData != nil {
		opts.EnrichData(builder, window)
	}

	opts.Handler.renderDashboardPage(opts.W, opts.R, builder.Build())
}

// listErrorMessage prefers the classified upstream message for failures the
// user can act on (the network-error message in particular), falling back to
// the view's own wording.
func listErrorMessage(err error, fallback string) string {
	if apperrors.IsUnavailable(err) {
		return apperrors.MessageOf(err)
	}
	if fallback != "" {
		return fallback
	}
	return apperrors.MessageOf(err)
}

// paginate slices one page out of the filtered snapshot and computes the
// pagination metadata. The snapshot is complete, so counts are exact.
func paginate[T any](items []T, page, pageSize int) ([]T, PaginationData) {
	total := len(items)
	offset := (page - 1) * pageSize
	if offset >= total {
		// Past the end (often after the filter narrowed the snapshot):
		// clamp back to the last page with content.
		if total == 0 {
			page = 1
			offset = 0
		} else {
			page = (total - 1) / pageSize
			page++
			offset = (page - 1) * pageSize
		}
	}

	end := offset + pageSize
	if end > total {
		end = total
	}
	window := items[offset:end]

	pg := PaginationData{
		Page:       page,
		PageSize:   pageSize,
		HasPrev:    page > 1,
		HasNext:    end < total,
		TotalCount: total,
	}
	if len(window) > 0 {
		pg.StartIndex = offset + 1
		pg.EndIndex = offset + len(window)
	}
	return window, pg
}

// renderListError renders an error page with pagination metadata.
func (lh *ListHandlerOpts[T]) renderListError(page, pageSize int, errMsg string) {
	builder := NewTemplateData(lh.R, lh.PageMeta).
		WithPagination(PaginationData{Page: page, PageSize: pageSize, BasePath: lh.BasePath}).
		WithError(errMsg)
	lh.Handler.renderDashboardPage(lh.W, lh.R, builder.Build())
}
