package model

import "time"

// TicketStatus is the resolution lifecycle flag of a support ticket.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusResolved TicketStatus = "resolved"
)

// TicketUser is the embedded requester summary on a ticket.
type TicketUser struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Ticket is a support ticket raised against the platform.
type Ticket struct {
	ID         string       `json:"_id"`
	Subject    string       `json:"subject"`
	Message    string       `json:"message,omitempty"`
	Status     TicketStatus `json:"status"`
	User       *TicketUser  `json:"user,omitempty"`
	Resolution string       `json:"resolution,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// Resolved reports whether the ticket has been closed out.
func (t *Ticket) Resolved() bool { return t.Status == TicketStatusResolved }

// ResolveTicketRequest carries the resolution note sent with the resolve
// mutation.
type ResolveTicketRequest struct {
	Resolution string `json:"resolution,omitempty"`
}

// Contact is a contact-form submission. Read-only in this dashboard.
type Contact struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
