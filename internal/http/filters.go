package httpx

import (
	"net/url"
	"strings"
)

// searchParam is the query key carrying the list search input.
const searchParam = "q"

// SearchQuery extracts and trims the list search input from query params.
func SearchQuery(q url.Values) string {
	return strings.TrimSpace(q.Get(searchParam))
}

// FilterItems narrows a fetched snapshot to items whose designated fields
// contain the query, case-insensitively. The snapshot was already fetched;
// filtering never issues another upstream call. An empty query returns the
// snapshot unchanged.
func FilterItems[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" || fields == nil {
		return items
	}
	needle := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesQuery(fields(item), needle) {
			out = append(out, item)
		}
	}
	return out
}

func matchesQuery(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
