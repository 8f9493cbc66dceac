package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

const ticketDateLayout = "2006-01-02"

// ticketRangeFromQuery reads the optional startDate/endDate filters.
// Unparseable values are treated as unset rather than failing the page.
func ticketRangeFromQuery(r *http.Request) ports.TicketRange {
	var rng ports.TicketRange
	if v := r.URL.Query().Get("startDate"); v != "" {
		if t, err := time.Parse(ticketDateLayout, v); err == nil {
			rng.Start = t
		}
	}
	if v := r.URL.Query().Get("endDate"); v != "" {
		if t, err := time.Parse(ticketDateLayout, v); err == nil {
			rng.End = t
		}
	}
	return rng
}

// TicketsList renders support tickets filtered by the submitted date range.
func (h *UIHandlers) TicketsList(w http.ResponseWriter, r *http.Request) {
	rng := ticketRangeFromQuery(r)

	HandleList(ListHandlerOpts[model.Ticket]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context) ([]model.Ticket, error) {
			return h.Support.ListTickets(ctx, BearerToken(ctx), rng)
		},
		SearchFields: func(t model.Ticket) []string {
			fields := []string{t.Subject}
			if t.User != nil {
				fields = append(fields, strings.TrimSpace(t.User.FirstName+" "+t.User.LastName), t.User.Email)
			}
			return fields
		},
		EnrichData: func(b *TemplateDataBuilder, _ []model.Ticket) {
			if !rng.Start.IsZero() {
				b.With("StartDate", rng.Start.Format(ticketDateLayout))
			}
			if !rng.End.IsZero() {
				b.With("EndDate", rng.End.Format(ticketDateLayout))
			}
		},
		BasePath:     "/tickets",
		PageMeta:     PageMeta{Title: "Support Tickets", PageTitle: "Support Tickets", CurrentPage: PageTickets},
		ItemsKey:     "Tickets",
		ErrorMessage: "Unable to load support tickets.",
	})
}

// TicketView shows a single ticket with its resolution form. The backend
// exposes no single-ticket read, so the record comes from the list.
func (h *UIHandlers) TicketView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	meta := PageMeta{Title: "Ticket", PageTitle: "Ticket", CurrentPage: PageTicketView}

	ticket, err := h.findTicket(r.Context(), id)
	if err != nil {
		switch {
		case apperrors.IsUnauthorized(err):
			Unauthorized(w, r)
		case apperrors.IsNotFound(err):
			h.NotFound(w, r)
		default:
			h.logger().Error("ticket load failed", slog.String("id", id), slog.Any("error", err))
			data := NewTemplateData(r, meta).
				WithError(listErrorMessage(err, "Unable to load the ticket.")).
				Build()
			h.renderDashboardPage(w, r, data)
		}
		return
	}

	data := NewTemplateData(r, meta).
		With("Ticket", ticket).
		Build()
	h.renderDashboardPage(w, r, data)
}

func (h *UIHandlers) findTicket(ctx context.Context, id string) (*model.Ticket, error) {
	tickets, err := h.Support.ListTickets(ctx, BearerToken(ctx), ports.TicketRange{})
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		if tickets[i].ID == id {
			return &tickets[i], nil
		}
	}
	return nil, apperrors.NotFound("Ticket not found")
}

// TicketResolve closes a ticket with the submitted resolution note and
// re-renders the ticket from the server-returned record.
func (h *UIHandlers) TicketResolve(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	req := model.ResolveTicketRequest{
		Resolution: strings.TrimSpace(r.PostFormValue("resolution")),
	}

	ticket, err := h.Support.ResolveTicket(r.Context(), BearerToken(r.Context()), id, req)
	if err != nil {
		switch {
		case apperrors.IsUnauthorized(err):
			Unauthorized(w, r)
		case apperrors.IsNotFound(err):
			http.NotFound(w, r)
		default:
			h.logger().Error("ticket resolve failed", slog.String("id", id), slog.Any("error", err))
			http.Error(w, apperrors.MessageOf(err), http.StatusBadRequest)
		}
		return
	}

	if IsHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := h.T.t.ExecuteTemplate(w, "ticket-detail", map[string]any{"Ticket": &ticket}); err != nil {
			h.logger().Error("ticket render failed", slog.Any("error", err))
		}
		return
	}
	http.Redirect(w, r, "/tickets/"+ticket.ID, http.StatusSeeOther)
}

// TicketDownload proxies the upstream PDF export, streaming it through with
// an attachment disposition.
func (h *UIHandlers) TicketDownload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	body, contentType, err := h.Support.DownloadTicket(r.Context(), BearerToken(r.Context()), id)
	if err != nil {
		switch {
		case apperrors.IsUnauthorized(err):
			Unauthorized(w, r)
		case apperrors.IsNotFound(err):
			http.NotFound(w, r)
		default:
			h.logger().Error("ticket download failed", slog.String("id", id), slog.Any("error", err))
			http.Error(w, apperrors.MessageOf(err), http.StatusBadGateway)
		}
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="ticket-`+id+`.pdf"`)
	if _, err := io.Copy(w, body); err != nil {
		h.logger().Warn("ticket download interrupted", slog.String("id", id), slog.Any("error", err))
	}
}

// ContactsList renders contact-form submissions.
func (h *UIHandlers) ContactsList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Contact]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context) ([]model.Contact, error) {
			return h.Support.ListContacts(ctx, BearerToken(ctx))
		},
		SearchFields: func(c model.Contact) []string {
			return []string{c.Name, c.Email, c.Subject}
		},
		BasePath:     "/contacts",
		PageMeta:     PageMeta{Title: "Contacts", PageTitle: "Contacts", CurrentPage: PageContacts},
		ItemsKey:     "Contacts",
		ErrorMessage: "Unable to load contacts.",
	})
}
