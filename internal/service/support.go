package service

import (
	"context"
	"fmt"
	"io"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

// SupportServiceOptions groups dependencies for SupportService.
type SupportServiceOptions struct {
	API ports.SupportAPI
}

// SupportService covers support tickets and contact-form submissions.
type SupportService struct {
	api ports.SupportAPI
}

// NewSupportService constructs a new SupportService.
func NewSupportService(opts SupportServiceOptions) *SupportService {
	return &SupportService{api: opts.API}
}

// ListTickets fetches tickets created inside the range; zero bounds leave
// the range open on that side.
func (s *SupportService) ListTickets(ctx context.Context, token string, rng ports.TicketRange) ([]model.Ticket, error) {
	if !rng.Start.IsZero() && !rng.End.IsZero() && rng.End.Before(rng.Start) {
		rng.Start, rng.End = rng.End, rng.Start
	}
	tickets, err := s.api.ListTickets(ctx, token, rng)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// ResolveTicket closes a ticket and returns the server-confirmed record; the
// rendered status comes from that record, not from the request.
func (s *SupportService) ResolveTicket(ctx context.Context, token, id string, req model.ResolveTicketRequest) (model.Ticket, error) {
	ticket, err := s.api.ResolveTicket(ctx, token, id, req)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("resolve ticket: %w", err)
	}
	return ticket, nil
}

// DownloadTicket streams the upstream-generated ticket PDF. The caller owns
// the returned reader.
func (s *SupportService) DownloadTicket(ctx context.Context, token, id string) (io.ReadCloser, string, error) {
	body, contentType, err := s.api.DownloadTicket(ctx, token, id)
	if err != nil {
		return nil, "", fmt.Errorf("download ticket: %w", err)
	}
	return body, contentType, nil
}

// ListContacts fetches contact-form submissions, newest handled upstream.
func (s *SupportService) ListContacts(ctx context.Context, token string) ([]model.Contact, error) {
	contacts, err := s.api.ListContacts(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}
