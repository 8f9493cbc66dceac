package lmsapi

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

var _ ports.SupportAPI = (*Client)(nil)

const ticketsPath = "/admin/tickets"

// dateLayout is the wire format for the ticket date-range filter.
const dateLayout = "2006-01-02"

// ListTickets fetches tickets created inside the given range. A zero bound
// leaves that side of the range open.
func (c *Client) ListTickets(ctx context.Context, token string, rng ports.TicketRange) ([]model.Ticket, error) {
	q := url.Values{}
	if !rng.Start.IsZero() {
		q.Set("startDate", rng.Start.Format(dateLayout))
	}
	if !rng.End.IsZero() {
		q.Set("endDate", rng.End.Format(dateLayout))
	}

	var out []model.Ticket
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   ticketsPath,
		token:  token,
		query:  q,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveTicket closes out a ticket and returns the server-confirmed record.
func (c *Client) ResolveTicket(ctx context.Context, token, id string, req model.ResolveTicketRequest) (model.Ticket, error) {
	var out model.Ticket
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   ticketsPath + "/" + id + "/resolve",
		token:  token,
		body:   req,
	}, &out)
	if err != nil {
		return model.Ticket{}, err
	}
	return out, nil
}

// DownloadTicket streams the upstream-generated ticket PDF. The caller owns
// the returned reader. PDFs bypass the JSON envelope entirely; a 2xx body
// that is not a PDF (a maintenance page, for instance) is an error, never
// served to the browser as an attachment.
func (c *Client) DownloadTicket(ctx context.Context, token, id string) (io.ReadCloser, string, error) {
	endpoint := c.baseURL + apiPrefix + ticketsPath + "/" + id + "/download"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "build upstream request")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", classifyTransportErr(ctx, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, "", classifyStatus(resp.StatusCode, "")
	}

	body := bufio.NewReader(resp.Body)
	magic, _ := body.Peek(len(pdfMagic))
	if !bytes.HasPrefix(magic, pdfMagic) {
		resp.Body.Close()
		return nil, "", apperrors.Unavailable("The ticket export is unavailable right now")
	}
	return &bufferedBody{Reader: body, closer: resp.Body}, "application/pdf", nil
}

var pdfMagic = []byte("%PDF")

// bufferedBody keeps the peeked bytes readable while closing the
// underlying response body.
type bufferedBody struct {
	*bufio.Reader
	closer io.Closer
}

func (b *bufferedBody) Close() error { return b.closer.Close() }

// ListContacts fetches contact-form submissions.
func (c *Client) ListContacts(ctx context.Context, token string) ([]model.Contact, error) {
	var out []model.Contact
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/contacts",
		token:  token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
