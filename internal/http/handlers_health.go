package httpx

import "net/http"

// Healthz reports process liveness. Upstream reachability is intentionally
// not checked here; a dead LMS backend surfaces in the pages themselves.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
