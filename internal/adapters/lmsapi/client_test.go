package lmsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	raw, _ := json.Marshal(data)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"message": message,
		"data":    json.RawMessage(raw),
	})
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	require.Error(t, err)

	_, err = NewClient(Config{BaseURL: "  "})
	require.Error(t, err)
}

func TestLoginSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@example.com", body["email"])

		writeEnvelope(w, http.StatusOK, true, "", map[string]any{
			"token": "jwt-token",
			"user": map[string]string{
				"firstName": "Ada",
				"lastName":  "Lovelace",
				"email":     "admin@example.com",
				"role":      "admin",
			},
		})
	}))

	res, err := client.Login(context.Background(), ports.Credentials{
		Email:    "admin@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)
	assert.Equal(t, "Ada", res.Identity.FirstName)
	assert.True(t, res.Identity.IsAdmin())
}

func TestLoginRejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "", nil)
	}))

	_, err := client.Login(context.Background(), ports.Credentials{Email: "x", Password: "y"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Unauthorized: Invalid credentials", apperrors.MessageOf(err))
}

func TestLoginCarriesUpstreamMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "Account is deactivated", nil)
	}))

	_, err := client.Login(context.Background(), ports.Credentials{Email: "x", Password: "y"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Account is deactivated", apperrors.MessageOf(err))
}

func TestListRosterSendsBearerToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/admin/users/students", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, true, "", []map[string]any{
			{"_id": "507f1f77bcf86cd799439011", "firstName": "Sam", "isActive": true},
		})
	}))

	users, err := client.List(context.Background(), "tok-123", model.UserKindStudent)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Sam", users[0].FirstName)
	assert.True(t, users[0].IsActive)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		message string
	}{
		{"conflict status", http.StatusConflict, "Duplicate field value entered"},
		{"validation message", http.StatusBadRequest, "Email already exists"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tc.status, false, tc.message, nil)
			}))

			_, err := client.Create(context.Background(), "tok", model.UserKindInstructor, model.CreateUserRequest{
				FirstName: "Sam", LastName: "Ng", Email: "sam@example.com", Password: "secret1",
			})
			require.Error(t, err)
			assert.True(t, apperrors.IsConflict(err))
			assert.Equal(t, model.DuplicateEmailMessage, apperrors.MessageOf(err))
		})
	}
}

func TestToggleActiveReturnsServerState(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/admin/users/instructors/abc123abc123abc123abc123/toggle-active", r.URL.Path)
		writeEnvelope(w, http.StatusOK, true, "", map[string]any{
			"_id": "abc123abc123abc123abc123", "isActive": false,
		})
	}))

	u, err := client.ToggleActive(context.Background(), "tok", model.UserKindInstructor, "abc123abc123abc123abc123")
	require.NoError(t, err)
	assert.False(t, u.IsActive)
}

func TestNetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	client, err := NewClient(Config{BaseURL: base})
	require.NoError(t, err)

	_, err = client.ListCourses(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
	assert.Equal(t, NetworkErrorMessage, apperrors.MessageOf(err))
}

func TestCanceledContextIsCanceled(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeEnvelope(w, http.StatusOK, true, "", []model.Course{})
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListCourses(ctx, "tok")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeCanceled, apperrors.CodeOf(err))
}

func TestEnvelopeFailureSurfacesMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, false, "Course limit reached", nil)
	}))

	_, err := client.CreateCourse(context.Background(), "tok", model.CourseRequest{Title: "Go"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
	assert.Equal(t, "Course limit reached", apperrors.MessageOf(err))
}

func TestListTicketsDateRange(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-08-31", r.URL.Query().Get("endDate"))
		writeEnvelope(w, http.StatusOK, true, "", []map[string]any{
			{"_id": "t1", "subject": "Refund", "status": "open"},
		})
	}))

	rng := ports.TicketRange{
		Start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
	tickets, err := client.ListTickets(context.Background(), "tok", rng)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, model.TicketStatusOpen, tickets[0].Status)
}

func TestListTicketsOpenRangeOmitsParams(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("startDate"))
		assert.False(t, r.URL.Query().Has("endDate"))
		writeEnvelope(w, http.StatusOK, true, "", []model.Ticket{})
	}))

	_, err := client.ListTickets(context.Background(), "tok", ports.TicketRange{})
	require.NoError(t, err)
}

func TestDownloadTicketStreamsPDF(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/admin/tickets/t1/download", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		fmt.Fprint(w, "%PDF-1.4 fake")
	}))

	body, ct, err := client.DownloadTicket(context.Background(), "tok", "t1")
	require.NoError(t, err)
	defer body.Close()

	assert.Equal(t, "application/pdf", ct)
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

func TestDownloadTicketRejectsNonPDFBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html>maintenance page</html>")
	}))

	body, _, err := client.DownloadTicket(context.Background(), "tok", "t1")
	require.Error(t, err)
	assert.Nil(t, body)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestUploadThumbnail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/admin/courses/c1/thumbnail", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("thumbnail")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cover.png", header.Filename)

		writeEnvelope(w, http.StatusOK, true, "", map[string]string{
			"url": "https://cdn.example.com/cover.png",
		})
	}))

	url, err := client.UploadThumbnail(context.Background(), "tok", "c1", ports.Upload{
		Filename:    "cover.png",
		ContentType: "image/png",
		Reader:      strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cover.png", url)
}

func TestUploadPromoVideo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/admin/courses/c1/promo-video", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("promoVideo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "intro.mp4", header.Filename)

		writeEnvelope(w, http.StatusOK, true, "", map[string]string{
			"url": "https://cdn.example.com/intro.mp4",
		})
	}))

	url, err := client.UploadPromoVideo(context.Background(), "tok", "c1", ports.Upload{
		Filename:    "intro.mp4",
		ContentType: "video/mp4",
		Reader:      strings.NewReader("mp4-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/intro.mp4", url)
}

func TestNotFoundClassification(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, false, "Course not found", nil)
	}))

	_, err := client.GetCourse(context.Background(), "tok", "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Course not found", apperrors.MessageOf(err))
}
