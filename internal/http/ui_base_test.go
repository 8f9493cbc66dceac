package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPageParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{name: "defaults", query: "", page: 1, pageSize: 10},
		{name: "explicit values", query: "page=3&page_size=25", page: 3, pageSize: 25},
		{name: "zero page falls back", query: "page=0", page: 1, pageSize: 10},
		{name: "negative page falls back", query: "page=-2", page: 1, pageSize: 10},
		{name: "non numeric page falls back", query: "page=abc", page: 1, pageSize: 10},
		{name: "page size above cap falls back", query: "page_size=500", page: 1, pageSize: 10},
		{name: "page size at cap accepted", query: "page_size=100", page: 1, pageSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			page, pageSize := getPageParams(q)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.pageSize, pageSize)
		})
	}
}

func TestBuildPageURL(t *testing.T) {
	current := url.Values{
		"q":          {"golang"},
		"page":       {"1"},
		"hx-request": {"true"},
		"empty":      {""},
	}

	got := buildPageURL("/courses", current, pageOpts{Page: 2, PageSize: 10})

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "/courses", u.Path)

	q := u.Query()
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "10", q.Get("page_size"))
	assert.Equal(t, "golang", q.Get("q"))
	assert.NotContains(t, q, "hx-request")
	assert.NotContains(t, q, "empty")
}

func TestCurrentTheme(t *testing.T) {
	t.Run("no cookie defaults to light", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, themeLight, currentTheme(r))
	})

	t.Run("dark cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: themeCookieName, Value: themeDark})
		assert.Equal(t, themeDark, currentTheme(r))
	})

	t.Run("unknown value defaults to light", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: themeCookieName, Value: "sepia"})
		assert.Equal(t, themeLight, currentTheme(r))
	})
}

func TestTicketRangeFromQuery(t *testing.T) {
	t.Run("both bounds", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/tickets?startDate=2026-01-01&endDate=2026-01-31", nil)
		rng := ticketRangeFromQuery(r)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), rng.Start)
		assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), rng.End)
	})

	t.Run("missing params leave zero range", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/tickets", nil)
		rng := ticketRangeFromQuery(r)
		assert.True(t, rng.Start.IsZero())
		assert.True(t, rng.End.IsZero())
	})

	t.Run("unparseable date treated as unset", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/tickets?startDate=yesterday&endDate=2026-02-01", nil)
		rng := ticketRangeFromQuery(r)
		assert.True(t, rng.Start.IsZero())
		assert.False(t, rng.End.IsZero())
	})
}

func TestListFieldOp(t *testing.T) {
	h := newTestHandlers(t)

	post := func(t *testing.T, form url.Values) *httptest.ResponseRecorder {
		t.Helper()
		r := httptest.NewRequest(http.MethodPost, "/forms/list-field", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		h.ListFieldOp(w, r)
		return w
	}

	t.Run("append adds an empty row", func(t *testing.T) {
		w := post(t, url.Values{
			"field":         {"prerequisites"},
			"op":            {"append"},
			"prerequisites": {"Basic algebra"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, strings.Count(w.Body.String(), `name="prerequisites"`))
		assert.Contains(t, w.Body.String(), `value="Basic algebra"`)
	})

	t.Run("remove drops the indexed row", func(t *testing.T) {
		w := post(t, url.Values{
			"field":  {"skills"},
			"op":     {"remove"},
			"index":  {"0"},
			"skills": {"Go", "SQL"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `value="Go"`)
		assert.Contains(t, w.Body.String(), `value="SQL"`)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		w := post(t, url.Values{"field": {"secrets"}, "op": {"append"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
