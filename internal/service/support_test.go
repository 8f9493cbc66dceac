package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	"github.com/lmsdesk/admin-ui/internal/ports"
	"github.com/lmsdesk/admin-ui/internal/ports/portsmock"
)

func TestListTicketsSwapsInvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := portsmock.NewMockSupportAPI(ctrl)
	svc := NewSupportService(SupportServiceOptions{API: api})

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	api.EXPECT().ListTickets(gomock.Any(), "tok", ports.TicketRange{Start: start, End: end}).
		Return([]model.Ticket{}, nil)

	// Bounds arrive reversed from the form; the service reorders them.
	_, err := svc.ListTickets(context.Background(), "tok", ports.TicketRange{Start: end, End: start})
	require.NoError(t, err)
}

func TestResolveTicketReturnsServerRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := portsmock.NewMockSupportAPI(ctrl)
	svc := NewSupportService(SupportServiceOptions{API: api})

	api.EXPECT().ResolveTicket(gomock.Any(), "tok", "t1", model.ResolveTicketRequest{Resolution: "refunded"}).
		Return(model.Ticket{ID: "t1", Status: model.TicketStatusResolved, Resolution: "refunded"}, nil)

	ticket, err := svc.ResolveTicket(context.Background(), "tok", "t1", model.ResolveTicketRequest{Resolution: "refunded"})
	require.NoError(t, err)
	assert.True(t, ticket.Resolved())
}
